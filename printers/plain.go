package printers

import (
	"fmt"
	"os"

	"github.com/osping/osping/classify"
)

// PlainPrinter prints outcomes in a simple, uncolored text format.
type PlainPrinter struct{}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter() *PlainPrinter {
	return &PlainPrinter{}
}

// PrintOutcome prints the classified result line for host.
func (p *PlainPrinter) PrintOutcome(host string, outcome classify.Outcome) {
	tag, message := outcomeLine(host, outcome)
	fmt.Printf("%s: %s\n", tag, message)
}

// PrintError prints error messages to stderr.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
