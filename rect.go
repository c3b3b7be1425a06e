package geom

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner, Max the bottom-right corner in a y-down
// coordinate system. A Rect whose Min exceeds its Max is considered
// unsorted; Sort fixes it.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// RectLTRB creates a rectangle from its four edges.
func RectLTRB(left, top, right, bottom float32) Rect {
	return Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
}

// RectXYWH creates a rectangle from position and size.
func RectXYWH(x, y, width, height float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// EmptyRect returns an empty rectangle (inverted bounds for union operations).
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32,
		MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32,
		MaxY: -math.MaxFloat32,
	}
}

// BoundsOf returns the smallest rectangle containing all points.
// An empty slice yields the zero Rect.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return !(r.MinX < r.MaxX && r.MinY < r.MaxY)
}

// IsFinite reports whether all four edges are finite.
func (r Rect) IsFinite() bool {
	return isFinite32(r.MinX) && isFinite32(r.MinY) &&
		isFinite32(r.MaxX) && isFinite32(r.MaxY)
}

// Sort swaps edges as needed so that Min <= Max on both axes.
func (r *Rect) Sort() {
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
}

// Sorted returns a copy of r with Min <= Max on both axes.
func (r Rect) Sorted() Rect {
	r.Sort()
	return r
}

// ToQuad returns the four corners in clockwise order (y-down):
// top-left, top-right, bottom-right, bottom-left.
func (r Rect) ToQuad() [4]Point {
	return [4]Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}
