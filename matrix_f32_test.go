package geom

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
)

func TestMat3RoundTrip(t *testing.T) {
	m := MakeAll(1, 2, 3, 4, 5, 6, 7, 8, 9)
	a := m.Mat3()
	if a != (f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("Mat3() = %v", a)
	}

	var back Matrix
	back.SetMat3(a)
	if !back.Equal(m) {
		t.Errorf("SetMat3(Mat3()) = %s, want %s", back.String(), m.String())
	}
}

func TestAff3(t *testing.T) {
	m := MakeScaleTranslate(2, 3, 4, 5)
	a, ok := m.Aff3()
	if !ok {
		t.Fatal("Aff3() = false for an affine matrix")
	}
	if a != (f32.Aff3{2, 0, 4, 0, 3, 5}) {
		t.Errorf("Aff3() = %v", a)
	}

	var back Matrix
	back.SetAff3(a)
	if !back.Equal(m) {
		t.Errorf("SetAff3(Aff3()) = %s, want %s", back.String(), m.String())
	}

	persp := MakeAll(1, 0, 0, 0, 1, 0, 0.5, 0, 1)
	if _, ok := persp.Aff3(); ok {
		t.Error("Aff3() = true for a perspective matrix")
	}
	if _, ok := persp.DrawAff3(); ok {
		t.Error("DrawAff3() = true for a perspective matrix")
	}
}

func TestDrawAff3Transform(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)

	m := MakeTranslate(1, 1)
	s2d, ok := m.DrawAff3()
	if !ok {
		t.Fatal("DrawAff3() = false")
	}

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.NearestNeighbor.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)

	if got := dst.RGBAAt(1, 1); got != red {
		t.Errorf("dst(1, 1) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("dst(0, 0) = %v, want transparent", got)
	}
}
