package lsp

import (
	"fmt"
	"io"
)

/*
Capabilities. Kept independent so a variant opts into exactly what it can do.
*/

// Bird is the feeding capability every bird variant has.
type Bird interface {
	Eat()
}

// Flyable is the flight capability. Only variants that can actually fly
// implement it.
type Flyable interface {
	Fly()
}

// Sparrow can eat and fly.
type Sparrow struct {
	out io.Writer
}

// NewSparrow constructs a sparrow reporting to out.
func NewSparrow(out io.Writer) *Sparrow {
	return &Sparrow{out: out}
}

// Eat implements Bird.
func (s *Sparrow) Eat() {
	fmt.Fprintln(s.out, "Sparrow pecks.")
}

// Fly implements Flyable.
func (s *Sparrow) Fly() {
	fmt.Fprintln(s.out, "Sparrow flies.")
}

// Penguin can eat but not fly, so it implements Bird only. There is no
// stubbed-out Fly that panics; the capability is simply absent.
type Penguin struct {
	out io.Writer
}

// NewPenguin constructs a penguin reporting to out.
func NewPenguin(out io.Writer) *Penguin {
	return &Penguin{out: out}
}

// Eat implements Bird.
func (p *Penguin) Eat() {
	fmt.Fprintln(p.out, "Penguin eats fish.")
}

var (
	_ Bird    = (*Sparrow)(nil)
	_ Flyable = (*Sparrow)(nil)
	_ Bird    = (*Penguin)(nil)
)

// LetItFly is typed against the narrowest capability it needs. Passing a
// *Penguin here does not compile.
func LetItFly(f Flyable) {
	f.Fly()
}
