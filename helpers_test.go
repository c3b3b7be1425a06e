package geom

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares float32 values with a small relative and absolute slack.
var approx = cmpopts.EquateApprox(1e-5, 1e-5)

// loose is approx for results that go through an inversion or a chain
// of concatenations.
var loose = cmpopts.EquateApprox(1e-4, 1e-4)

// checkTypeCache asserts that the cached classification of m matches a
// classification computed from scratch on the same coefficients.
func checkTypeCache(t *testing.T, m Matrix) {
	t.Helper()
	fresh := m.Get9()
	var f Matrix
	f.Set9(fresh)

	if got, want := m.Type(), f.Type(); got != want {
		t.Errorf("cached Type() = %v, fresh Type() = %v for %s", got, want, m.String())
	}
	if got, want := m.RectStaysRect(), f.RectStaysRect(); got != want {
		t.Errorf("cached RectStaysRect() = %v, fresh = %v for %s", got, want, m.String())
	}
}

// refMap maps (x, y) through the coefficients with float64 arithmetic.
func refMap(m Matrix, x, y float32) Point {
	a := m.Get9()
	fx, fy := float64(x), float64(y)
	px := float64(a[MScaleX])*fx + float64(a[MSkewX])*fy + float64(a[MTransX])
	py := float64(a[MSkewY])*fx + float64(a[MScaleY])*fy + float64(a[MTransY])
	w := float64(a[MPersp0])*fx + float64(a[MPersp1])*fy + float64(a[MPersp2])
	if w != 0 {
		w = 1 / w
	}
	return Point{X: float32(px * w), Y: float32(py * w)}
}

func diffMatrix(got, want Matrix, opts ...cmp.Option) string {
	return cmp.Diff(want.Get9(), got.Get9(), opts...)
}

// samplePoints covers the origin, unit axes and some off-axis values.
var samplePoints = []Point{
	{0, 0}, {1, 0}, {0, 1}, {1, 1}, {-3, 2.5}, {10, -7}, {0.25, 0.125},
}

// sampleMatrices returns one matrix per classification.
func sampleMatrices() map[string]Matrix {
	rotScale := MakeRotate(30)
	rotScale.PreScale(2, 0.5)
	rotScale.PostTranslate(4, -2)

	return map[string]Matrix{
		"identity":    Identity(),
		"translate":   MakeTranslate(3, -4),
		"scale":       MakeScale(2, -0.5),
		"scale+trans": MakeScaleTranslate(2, 3, 5, 6),
		"rotate 90":   MakeRotate(90),
		"rotate 30":   MakeRotate(30),
		"skew":        MakeSkew(0.5, 0.25),
		"affine":      rotScale,
		"perspective": MakeAll(1, 0.2, 3, 0.1, 2, -1, 0.01, 0.02, 1),
	}
}

// randomMatrix returns a well-conditioned matrix: a perturbed identity
// block, a translation of up to 10 and, if persp is set, a small
// perspective row.
func randomMatrix(r *rand.Rand, persp bool) Matrix {
	jitter := func(scale float64) float32 {
		return float32((r.Float64()*2 - 1) * scale)
	}
	m := MakeAll(
		1+jitter(0.5), jitter(0.3), jitter(10),
		jitter(0.3), 1+jitter(0.5), jitter(10),
		0, 0, 1)
	if persp {
		m.SetPersp0(jitter(0.001))
		m.SetPersp1(jitter(0.001))
	}
	return m
}
