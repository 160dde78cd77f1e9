// Package ocp demonstrates the open/closed principle.
//
// AreaCalculator sums areas through the Shape capability only. Adding a new
// shape means adding a type that implements Shape; the calculator never
// changes and never branches on concrete types.
package ocp
