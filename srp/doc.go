// Package srp demonstrates the single responsibility principle.
//
// Invoice is a plain value record. Rendering it (InvoicePrinter) and
// persisting it (InvoiceSaver) are separate types: each has exactly one
// reason to change, and neither knows the other exists.
package srp
