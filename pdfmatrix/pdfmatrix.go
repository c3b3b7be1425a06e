// Package pdfmatrix converts between geom.Matrix and the six-element
// affine matrices used by PDF content streams.
//
// A PDF matrix [a b c d e f] maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
// Composition follows PDF order: A.Mul(B) applies A first and then B, the
// reverse of geom.MakeConcat.
package pdfmatrix

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/geom"
)

// ToPDF returns m as a PDF matrix. It returns false if m has perspective,
// which PDF cannot express.
func ToPDF(m geom.Matrix) (matrix.Matrix, bool) {
	a, ok := m.AsAffine()
	if !ok {
		return matrix.Matrix{}, false
	}
	return matrix.Matrix{
		float64(a[geom.AScaleX]),
		float64(a[geom.ASkewY]),
		float64(a[geom.ASkewX]),
		float64(a[geom.AScaleY]),
		float64(a[geom.ATransX]),
		float64(a[geom.ATransY]),
	}, true
}

// FromPDF returns the geom.Matrix equivalent of the PDF matrix p.
// Coefficients are narrowed to float32.
func FromPDF(p matrix.Matrix) geom.Matrix {
	var m geom.Matrix
	m.SetAffine([6]float32{
		geom.AScaleX: float32(p[0]),
		geom.ASkewY:  float32(p[1]),
		geom.ASkewX:  float32(p[2]),
		geom.AScaleY: float32(p[3]),
		geom.ATransX: float32(p[4]),
		geom.ATransY: float32(p[5]),
	})
	return m
}

// Concat returns the PDF matrix that applies first and then second, the
// equivalent of geom.MakeConcat(second, first).
func Concat(first, second matrix.Matrix) matrix.Matrix {
	return first.Mul(second)
}
