package geom

import "github.com/chewxy/math32"

// RSXform is a compressed rotation, uniform scale and translation:
//
//	| SCos  -SSin  Tx |
//	| SSin   SCos  Ty |
//
// where SCos and SSin are the cosine and sine of the angle multiplied by
// the scale.
type RSXform struct {
	SCos, SSin float32
	Tx, Ty     float32
}

// MakeRSXform returns the RSXform for the given scaled cosine/sine and
// translation.
func MakeRSXform(scos, ssin, tx, ty float32) RSXform {
	return RSXform{SCos: scos, SSin: ssin, Tx: tx, Ty: ty}
}

// MakeRSXformFromRadians returns the RSXform that scales by scale, rotates
// by radians about (ax, ay) and then translates that anchor to (tx, ty).
// Unlike SetRotate, the sine and cosine are not snapped to zero near
// quarter turns.
func MakeRSXformFromRadians(scale, radians, tx, ty, ax, ay float32) RSXform {
	s, c := math32.Sincos(radians)
	s *= scale
	c *= scale
	return RSXform{
		SCos: c,
		SSin: s,
		Tx:   tx + -c*ax + s*ay,
		Ty:   ty + -s*ax - c*ay,
	}
}

// RectStaysRect reports whether x maps axis-aligned rectangles to
// axis-aligned rectangles.
func (x RSXform) RectStaysRect() bool {
	return x.SCos == 0 || x.SSin == 0
}

// IsIdentity reports whether x is the identity transform.
func (x RSXform) IsIdentity() bool {
	return x.SCos == 1 && x.SSin == 0 && x.Tx == 0 && x.Ty == 0
}

// ToQuad maps the rectangle (0, 0, width, height) through x and returns
// its corners as top-left, top-right, bottom-right, bottom-left.
func (x RSXform) ToQuad(width, height float32) [4]Point {
	m00, m01, m02 := x.SCos, -x.SSin, x.Tx
	m10, m11, m12 := -m01, m00, x.Ty

	return [4]Point{
		{X: m02, Y: m12},
		{X: m00*width + m02, Y: m10*width + m12},
		{X: m00*width + m01*height + m02, Y: m10*width + m11*height + m12},
		{X: m01*height + m02, Y: m11*height + m12},
	}
}
