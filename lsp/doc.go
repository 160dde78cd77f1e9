// Package lsp demonstrates the liskov substitution principle.
//
// Instead of one Bird base that promises flight to every variant, the fly
// behavior lives in its own Flyable capability. LetItFly accepts Flyable
// only, so a non-flying variant cannot reach it: the substitution violation
// is rejected by the compiler, not discovered at runtime.
package lsp
