package isp

import (
	"fmt"
	"io"
)

// Printer is the print capability.
type Printer interface {
	Print(doc string)
}

// Scanner is the scan capability, independent of Printer.
type Scanner interface {
	Scan()
}

// SimplePrinter prints and nothing else.
type SimplePrinter struct {
	out io.Writer
}

// NewSimplePrinter constructs a print-only device.
func NewSimplePrinter(out io.Writer) *SimplePrinter {
	return &SimplePrinter{out: out}
}

// Print implements Printer.
func (p *SimplePrinter) Print(doc string) {
	fmt.Fprintf(p.out, "Printing: %s\n", doc)
}

// MultiFunctionPrinter supports both capabilities.
type MultiFunctionPrinter struct {
	out io.Writer
}

// NewMultiFunctionPrinter constructs a device that prints and scans.
func NewMultiFunctionPrinter(out io.Writer) *MultiFunctionPrinter {
	return &MultiFunctionPrinter{out: out}
}

// Print implements Printer.
func (m *MultiFunctionPrinter) Print(doc string) {
	fmt.Fprintf(m.out, "MFP print: %s\n", doc)
}

// Scan implements Scanner.
func (m *MultiFunctionPrinter) Scan() {
	fmt.Fprintln(m.out, "MFP scanning")
}

var (
	_ Printer = (*SimplePrinter)(nil)
	_ Printer = (*MultiFunctionPrinter)(nil)
	_ Scanner = (*MultiFunctionPrinter)(nil)
)
