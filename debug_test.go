//go:build geomdebug

package geom

import "testing"

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestDebugMapRectScaleTranslatePanics(t *testing.T) {
	m := MakeRotate(30)
	expectPanic(t, "MapRectScaleTranslate on a rotation", func() {
		m.MapRectScaleTranslate(RectLTRB(0, 0, 1, 1))
	})
}

func TestDebugMapPointsShortDstPanics(t *testing.T) {
	m := MakeTranslate(1, 1)
	expectPanic(t, "MapPoints with short dst", func() {
		m.MapPoints(make([]Point, 1), make([]Point, 2))
	})
}

func TestDebugMapPointsOverlapPanics(t *testing.T) {
	m := MakeTranslate(1, 1)
	pts := make([]Point, 4)
	expectPanic(t, "MapPoints with partially overlapping slices", func() {
		m.MapPoints(pts[1:], pts[:3])
	})
}

func TestDebugMapPointsSameSliceAllowed(t *testing.T) {
	m := MakeTranslate(1, 1)
	pts := make([]Point, 4)
	m.MapPoints(pts, pts)
	if pts[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("in-place MapPoints = %v", pts[0])
	}
}
