package geom

import "github.com/chewxy/math32"

// Point represents a 2D point or vector with float32 coordinates.
// The matrix mapping routines use Point both for positions and for
// displacement vectors.
type Point struct {
	X, Y float32
}

// Vector is a Point used as a displacement.
type Vector = Point

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
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
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite32(p.X) && isFinite32(p.Y)
}

// Point3 is a homogeneous 2D point (x, y, w).
type Point3 struct {
	X, Y, Z float32
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}
