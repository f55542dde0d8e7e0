package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer centralizes human-facing output for commands. Everything
// goes to the error stream: standard output belongs to the copied data.
type Printer struct {
	Out    io.Writer
	Colors *ColorConfig
}

// NewPrinter returns a printer writing to stderr with default colors.
func NewPrinter() Printer {
	return Printer{Out: os.Stderr, Colors: NewColorConfig()}
}

// Success prints a success line with themed prefix.
func (p Printer) Success(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Colors.Success("✓"), msg)
}

// Info prints an informational line.
func (p Printer) Info(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Colors.Info("ℹ"), msg)
}

// Warn prints a warning line.
func (p Printer) Warn(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Colors.Warning("!"), msg)
}

// Error prints an error line.
func (p Printer) Error(msg string) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Colors.Error("✗"), msg)
}
