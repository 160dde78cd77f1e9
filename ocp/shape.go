package ocp

import "math"

// Shape is the capability every variant must satisfy in full:
// report its own area.
type Shape interface {
	Area() float64
}

// Circle is a shape defined by its radius.
type Circle struct {
	Radius float64
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Rectangle is a shape defined by width and height.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns w·h.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

var (
	_ Shape = Circle{}
	_ Shape = Rectangle{}
)

// AreaCalculator aggregates shapes. It is closed for modification: new
// variants require no change here.
type AreaCalculator struct{}

// TotalArea sums the areas of shapes in order. An empty slice sums to zero.
func (AreaCalculator) TotalArea(shapes []Shape) float64 {
	var sum float64
	for _, s := range shapes {
		sum += s.Area()
	}
	return sum
}
