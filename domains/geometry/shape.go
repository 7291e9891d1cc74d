// Package geometry - Shape capability and providers
// Square is not a specialization of Rectangle: each shape owns its own
// representation and there is no shared mutable setter contract, so any
// shape substitutes for any other under Area.
package geometry

import (
	"math"
)

// Shape computes its own area
type Shape interface {
	// Area returns the shape's area
	Area() float64
}

// Rectangle is a width by height shape
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns width * height
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Square is an equal-sided shape with its own representation
type Square struct {
	Side float64
}

// Area returns side squared
func (s Square) Area() float64 {
	return s.Side * s.Side
}

// Circle is a radius-defined shape
type Circle struct {
	Radius float64
}

// Area returns pi * r^2
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
