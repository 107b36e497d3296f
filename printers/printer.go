// Package printers contains the logic for printing probe outcomes
package printers

import (
	"os"

	"github.com/osping/osping/classify"
	"golang.org/x/term"
)

// Printer writes the user-facing result of one probe.
type Printer interface {
	// PrintOutcome writes the single classified result line for host.
	PrintOutcome(host string, outcome classify.Outcome)

	// PrintError writes error messages.
	PrintError(format string, args ...any)
}

// Config selects the printer implementation.
type Config struct {
	// NoColor forces plain output even on a terminal.
	NoColor bool
}

// NewPrinter returns a colorized printer when stdout is a terminal and
// color was not disabled, and a plain printer otherwise.
func NewPrinter(cfg Config) Printer {
	if cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return NewPlainPrinter()
	}

	return NewColorPrinter()
}

// outcomeLine renders the parts of the one-line message for an outcome:
// the category tag, then either the success message or the diagnostic.
func outcomeLine(host string, outcome classify.Outcome) (tag, message string) {
	if outcome.Kind == classify.Success {
		return outcome.Kind.Tag(), "Network ICMP Ping successful for host '" + host + "'"
	}

	return outcome.Kind.Tag(), outcome.Detail
}
