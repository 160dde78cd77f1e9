package srp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Invoice is an immutable billing record.
type Invoice struct {
	ID     int
	Amount float64
}

// NewInvoice constructs an invoice record.
func NewInvoice(id int, amount float64) Invoice {
	return Invoice{ID: id, Amount: amount}
}

// InvoicePrinter renders invoices to a writer, one line per invoice.
// It knows nothing about persistence.
type InvoicePrinter struct {
	out io.Writer
}

// NewInvoicePrinter constructs a printer writing to out.
func NewInvoicePrinter(out io.Writer) *InvoicePrinter {
	return &InvoicePrinter{out: out}
}

// Print writes the human-readable line for inv.
func (p *InvoicePrinter) Print(inv Invoice) {
	fmt.Fprintf(p.out, "Invoice #%d amount=%s\n", inv.ID, FormatAmount(inv.Amount))
}

// InvoiceSaver persists invoices. The demo "persistence" is a confirmation
// line on the writer; swapping in real storage would not touch the printer.
type InvoiceSaver struct {
	out io.Writer
}

// NewInvoiceSaver constructs a saver writing confirmations to out.
func NewInvoiceSaver(out io.Writer) *InvoiceSaver {
	return &InvoiceSaver{out: out}
}

// Save emits the persistence confirmation for inv.
func (s *InvoiceSaver) Save(inv Invoice) {
	fmt.Fprintf(s.out, "Saved invoice %d\n", inv.ID)
}

// FormatAmount renders an amount the way the demo expects: shortest decimal
// form that round-trips, with ".0" kept for integral values (999 prints as
// "999.0", 999.5 as "999.5").
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
