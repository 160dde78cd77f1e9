// Package solid is a small, runnable tour of the five SOLID principles in Go.
//
// Each principle gets its own package with a handful of toy types:
//
//   - srp: single responsibility (an invoice record plus two single-purpose operations)
//   - ocp: open/closed (a Shape capability, two variants, an aggregator closed for modification)
//   - lsp: liskov substitution (Bird/Flyable split so helpers depend on the narrowest capability)
//   - isp: interface segregation (Printer and Scanner as independent capabilities)
//   - dip: dependency inversion (a notification service wired against a MessageSender abstraction)
//
// Everything is wired explicitly in the composition root (cmd/solid) using the
// small di helper package; there is no reflection container and no framework.
//
// Run it with:
//
//	go run ./cmd/solid
//
// The program prints one line per demonstrated operation, in a fixed order,
// and exits.
package solid
