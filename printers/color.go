package printers

import (
	"github.com/gookit/color"
	"github.com/osping/osping/classify"
)

// Color functions used when printing information
var (
	ColorGreen       = color.Green.Printf
	ColorLightGreen  = color.LightGreen.Printf
	ColorYellow      = color.Yellow.Printf
	ColorLightYellow = color.LightYellow.Printf
	ColorRed         = color.Red.Printf
)

// ColorPrinter prints outcomes with a color per category: green for
// success, red for a connection failure, yellow for DNS and invocation
// problems.
type ColorPrinter struct{}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter() *ColorPrinter {
	return &ColorPrinter{}
}

// PrintOutcome prints the classified result line for host.
func (p *ColorPrinter) PrintOutcome(host string, outcome classify.Outcome) {
	tag, message := outcomeLine(host, outcome)

	printf := colorFor(outcome.Kind)
	printf("%s: %s\n", tag, message)
}

// PrintError prints error messages.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	ColorRed(format+"\n", args...)
}

func colorFor(kind classify.Kind) func(format string, a ...any) {
	switch kind {
	case classify.Success:
		return ColorLightGreen
	case classify.ConnectionFailure:
		return ColorRed
	case classify.DNSIssue:
		return ColorYellow
	default:
		return ColorLightYellow
	}
}
