package geom

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInvertIdentityIsExact(t *testing.T) {
	m := Identity()
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() of identity = false")
	}
	if want := Identity(); !inv.CheapEqual(want) {
		t.Errorf("Invert() of identity = %s, want bit-identical identity", inv.String())
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want [9]float32
	}{
		{"translate", MakeTranslate(3, 4), [9]float32{1, 0, -3, 0, 1, -4, 0, 0, 1}},
		{"scale", MakeScale(2, 4), [9]float32{0.5, 0, 0, 0, 0.25, 0, 0, 0, 1}},
		{"scale translate", MakeScaleTranslate(2, 4, 2, 4), [9]float32{0.5, 0, -1, 0, 0.25, -1, 0, 0, 1}},
		{"rotate 90", MakeRotate(90), [9]float32{0, 1, 0, -1, 0, 0, 0, 0, 1}},
		{"persp2", MakeAll(1, 0, 0, 0, 1, 0, 0, 0, 2), [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert() = false")
			}
			if diff := cmp.Diff(tt.want, inv.Get9(), approx); diff != "" {
				t.Errorf("Invert() (-want +got):\n%s", diff)
			}
			checkTypeCache(t, inv)
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	for name, m := range sampleMatrices() {
		t.Run(name, func(t *testing.T) {
			inv, ok := m.Invert()
			if !ok {
				t.Fatal("Invert() = false")
			}
			if !m.IsInvertible() {
				t.Error("IsInvertible() = false but Invert succeeded")
			}
			for _, p := range samplePoints {
				back := inv.MapPoint(m.MapPoint(p))
				if diff := cmp.Diff(p, back, loose); diff != "" {
					t.Errorf("round trip of %v (-want +got):\n%s", p, diff)
				}
			}

			product := MakeConcat(m, inv)
			want := Identity()
			if diff := diffMatrix(product, want, loose); diff != "" {
				t.Errorf("m * inv != identity (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvertRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	pointTol := cmpopts.EquateApprox(1e-4, 1e-3)
	for i := range 200 {
		m := randomMatrix(r, i%2 == 1)
		inv, ok := m.Invert()
		if !ok {
			t.Fatalf("case %d: Invert() = false for %s", i, m.String())
		}
		for range 8 {
			p := Point{
				X: float32(r.Float64()*200 - 100),
				Y: float32(r.Float64()*200 - 100),
			}
			back := inv.MapPoint(m.MapPoint(p))
			if diff := cmp.Diff(p, back, pointTol); diff != "" {
				t.Fatalf("case %d: round trip of %v through %s (-want +got):\n%s",
					i, p, m.String(), diff)
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero scale x", MakeScale(0, 1)},
		{"zero scale translate", MakeScaleTranslate(2, 0, 1, 1)},
		{"collinear rows", MakeAll(1, 2, 0, 2, 4, 0, 0, 0, 1)},
		{"tiny determinant", MakeAll(1e-6, 1e-6, 0, -1e-6, 1e-6, 0, 0, 0, 1)},
		{"singular perspective", MakeAll(1, 0, 0, 0, 1, 0, 1, 0, 0)},
		{"zero matrix", Matrix{}},
		{"invalid", InvalidMatrix()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.m.Invert(); ok {
				t.Error("Invert() = true, want false")
			}
			if tt.m.IsInvertible() {
				t.Error("IsInvertible() = true, want false")
			}
		})
	}
}

func TestInvertNonFinite(t *testing.T) {
	// det is 1, but the inverse translation overflows float32.
	m := MakeAll(1, 1e38, 0, 0, 1, 1e10, 0, 0, 1)
	if inv, ok := m.Invert(); ok {
		t.Errorf("Invert() = true with inverse %s, want false", inv.String())
	}
}
