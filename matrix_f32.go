package geom

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Mat3 returns m as an x/image row-major 3x3 matrix.
func (m *Matrix) Mat3() f32.Mat3 {
	return f32.Mat3(m.mat)
}

// SetMat3 sets m from an x/image row-major 3x3 matrix.
func (m *Matrix) SetMat3(a f32.Mat3) {
	m.Set9([9]float32(a))
}

// Aff3 returns the affine part of m as an x/image row-major 2x3 matrix.
// It returns false if m has perspective.
func (m *Matrix) Aff3() (f32.Aff3, bool) {
	if m.HasPerspective() {
		return f32.Aff3{}, false
	}
	a := &m.mat
	return f32.Aff3{
		a[MScaleX], a[MSkewX], a[MTransX],
		a[MSkewY], a[MScaleY], a[MTransY],
	}, true
}

// SetAff3 sets m from an x/image row-major 2x3 affine matrix.
func (m *Matrix) SetAff3(a f32.Aff3) {
	m.mat = [9]float32{a[0], a[1], a[2], a[3], a[4], a[5], 0, 0, 1}
	m.setTypeMask(unknownMask)
}

// DrawAff3 returns the affine part of m in the float64 form taken by
// golang.org/x/image/draw transformers. It returns false if m has
// perspective.
func (m *Matrix) DrawAff3() (f64.Aff3, bool) {
	a, ok := m.Aff3()
	if !ok {
		return f64.Aff3{}, false
	}
	var d f64.Aff3
	for i, v := range a {
		d[i] = float64(v)
	}
	return d, true
}
