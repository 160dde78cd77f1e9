// Package isp demonstrates the interface segregation principle.
//
// Printing and scanning are separate capabilities. A basic device implements
// Printer only; a multifunction device implements both. No variant is forced
// to stub a method it cannot support, and clients name exactly the
// capability they use.
package isp
