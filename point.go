package canvas

import "math"

// Point represents a 2D point or vector, in either screen or canvas
// logical space depending on context.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in canvas logical space, stored as
// top-left position plus size. Element geometry is a Rect before rotation
// is applied.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Eq reports whether two rectangles are equal within a small epsilon.
func (r Rect) Eq(o Rect) bool {
	const eps = 1e-9
	return math.Abs(r.X-o.X) < eps &&
		math.Abs(r.Y-o.Y) < eps &&
		math.Abs(r.Width-o.Width) < eps &&
		math.Abs(r.Height-o.Height) < eps
}
