// Package di is the small explicit-wiring helper used by the demo's
// composition root.
//
// A Component holds a constructed value plus a record of what was bound into
// it. Wiring happens through Binder functions applied in the composition
// root; invalid wiring (nil component, nil dependency, nil attach function,
// double-binding a key) surfaces as typed errors instead of panics.
//
// There is no container graph and no reflection: every binding is a plain
// function call written out where the program is assembled.
package di

import (
	"errors"
	"strconv"
)

// ErrNilComponent is returned when a binder is applied to a nil component or
// a component holding a nil value.
var ErrNilComponent = errors.New("di: nil component")

// Key identifies a binding in a component's record. Define keys as
// package-level constants in the composition root.
type Key string

// DuplicateKeyError is returned when a binder reuses a key already bound on
// the target component.
type DuplicateKeyError struct{ Key Key }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate binding key " + strconv.Quote(string(e.Key))
}

// NilDependencyError is returned when the dependency component for a key is
// nil or holds a nil value.
type NilDependencyError struct{ Key Key }

func (e NilDependencyError) Error() string {
	return "di: nil dependency for key " + strconv.Quote(string(e.Key))
}

// NilAttachError is returned when a binder is built with a nil attach
// function.
type NilAttachError struct{ Key Key }

func (e NilAttachError) Error() string {
	return "di: nil attach function for key " + strconv.Quote(string(e.Key))
}

// Component wraps a constructed value and records which keys were bound into
// it, for introspection in tests and debugging.
type Component[T any] struct {
	val   *T
	bound map[Key]struct{}
}

// New constructs a Component by calling ctor.
func New[T any](ctor func() *T) *Component[T] {
	return &Component[T]{val: ctor(), bound: make(map[Key]struct{})}
}

// Value returns the constructed value.
func (c *Component[T]) Value() *T {
	if c == nil {
		return nil
	}
	return c.val
}

// Bound reports whether key was bound into the component.
func (c *Component[T]) Bound(key Key) bool {
	if c == nil {
		return false
	}
	_, ok := c.bound[key]
	return ok
}

// Binder mutates a component in place and reports wiring failures.
type Binder[T any] func(*Component[T]) error

// Bind builds a Binder that attaches dep's value to the target under key.
//
// The returned binder fails with:
//   - ErrNilComponent if the target (or its value) is nil
//   - NilDependencyError if dep (or its value) is nil
//   - NilAttachError if attach is nil
//   - DuplicateKeyError if key was already bound on the target
func Bind[T any, D any](key Key, dep *Component[D], attach func(target *T, dependency *D)) Binder[T] {
	return func(c *Component[T]) error {
		if c == nil || c.val == nil {
			return ErrNilComponent
		}
		if dep == nil || dep.val == nil {
			return NilDependencyError{Key: key}
		}
		if attach == nil {
			return NilAttachError{Key: key}
		}
		if c.bound == nil {
			c.bound = make(map[Key]struct{})
		}
		if _, exists := c.bound[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		c.bound[key] = struct{}{}
		attach(c.val, dep.val)
		return nil
	}
}

// Apply runs binders in order, stopping at the first error. A nil binder is
// a no-op.
func (c *Component[T]) Apply(binders ...Binder[T]) error {
	for _, b := range binders {
		if b == nil {
			continue
		}
		if err := b(c); err != nil {
			return err
		}
	}
	return nil
}
