package geom

import "testing"

const allTypes = TypeTranslate | TypeScale | TypeAffine | TypePerspective

func TestTypeClassification(t *testing.T) {
	tests := []struct {
		name          string
		m             Matrix
		want          TypeMask
		rectStaysRect bool
	}{
		{"identity", Identity(), TypeIdentity, true},
		{"translate", MakeTranslate(1, 2), TypeTranslate, true},
		{"scale", MakeScale(2, 3), TypeScale, true},
		{"zero scale x", MakeScale(0, 1), TypeScale, false},
		{"reflection", MakeScale(-1, 1), TypeScale, true},
		{"scale translate", MakeScaleTranslate(2, 3, 4, 5), TypeScale | TypeTranslate, true},
		{"rotate 90", MakeRotate(90), TypeAffine | TypeScale, true},
		{"rotate 270", MakeRotate(270), TypeAffine | TypeScale, true},
		{"rotate 45", MakeRotate(45), TypeAffine | TypeScale, false},
		{"skew", MakeSkew(1, 0), TypeAffine | TypeScale, false},
		{"axis swap", MakeAll(0, 1, 0, 1, 0, 0, 0, 0, 1), TypeAffine | TypeScale, true},
		{"skew with zero diagonal and one skew", MakeAll(0, 1, 0, 0, 0, 0, 0, 0, 1), TypeAffine | TypeScale, false},
		{"persp0", MakeAll(1, 0, 0, 0, 1, 0, 0.5, 0, 1), allTypes, false},
		{"persp2", MakeAll(1, 0, 0, 0, 1, 0, 0, 0, 2), allTypes, false},
		{"zero matrix", Matrix{}, allTypes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Type(); got != tt.want {
				t.Errorf("Type() = %v, want %v", got, tt.want)
			}
			if got := tt.m.RectStaysRect(); got != tt.rectStaysRect {
				t.Errorf("RectStaysRect() = %v, want %v", got, tt.rectStaysRect)
			}
			if got := tt.m.PreservesAxisAlignment(); got != tt.rectStaysRect {
				t.Errorf("PreservesAxisAlignment() = %v, want %v", got, tt.rectStaysRect)
			}
			if got, want := tt.m.HasPerspective(), tt.want&TypePerspective != 0; got != want {
				t.Errorf("HasPerspective() = %v, want %v", got, want)
			}
			checkTypeCache(t, tt.m)
		})
	}
}

func TestPerspectiveImpliesAllBits(t *testing.T) {
	m := MakeAll(1, 0, 0, 0, 1, 0, 0.5, 0, 1)
	if !m.HasPerspective() {
		t.Fatal("HasPerspective() = false")
	}
	if got := m.Type(); got != allTypes {
		t.Errorf("Type() = %v, want %v", got, allTypes)
	}
	if m.IsScaleTranslate() || m.IsTranslate() || m.IsIdentity() {
		t.Error("perspective matrix passed a narrower predicate")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name           string
		m              Matrix
		identity       bool
		translate      bool
		scaleTranslate bool
	}{
		{"identity", Identity(), true, true, true},
		{"translate", MakeTranslate(1, 0), false, true, true},
		{"scale", MakeScale(2, 2), false, false, true},
		{"scale translate", MakeScaleTranslate(2, 2, 1, 1), false, false, true},
		{"rotate", MakeRotate(30), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslate(); got != tt.translate {
				t.Errorf("IsTranslate() = %v, want %v", got, tt.translate)
			}
			if got := tt.m.IsScaleTranslate(); got != tt.scaleTranslate {
				t.Errorf("IsScaleTranslate() = %v, want %v", got, tt.scaleTranslate)
			}
		})
	}
}

func TestTypeMaskString(t *testing.T) {
	tests := []struct {
		mask TypeMask
		want string
	}{
		{TypeIdentity, "Identity"},
		{TypeTranslate, "Translate"},
		{TypeTranslate | TypeScale, "Translate|Scale"},
		{allTypes, "Translate|Scale|Affine|Perspective"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("TypeMask(%#x).String() = %q, want %q", uint8(tt.mask), got, tt.want)
		}
	}
}

func TestTypeIsIdempotent(t *testing.T) {
	for name, m := range sampleMatrices() {
		t.Run(name, func(t *testing.T) {
			m.DirtyMatrixTypeCache()
			before := m.Get9()
			first := m.Type()
			second := m.Type()
			if first != second {
				t.Errorf("Type() changed between calls: %v then %v", first, second)
			}
			if m.Get9() != before {
				t.Error("Type() modified the coefficients")
			}
		})
	}
}

func TestHasPerspectiveFastPath(t *testing.T) {
	m := MakeRotate(30)
	if m.loadTypeMask()&unknownMask == 0 {
		t.Fatal("rotation should start with an unknown mask")
	}
	if m.HasPerspective() {
		t.Error("HasPerspective() = true for a rotation")
	}
	if m.loadTypeMask()&unknownMask == 0 {
		t.Error("HasPerspective() computed the full mask instead of using the perspective-only bit")
	}

	var p Matrix
	p.SetAll(1, 0, 0, 0, 1, 0, 0, 0.25, 1)
	if !p.HasPerspective() {
		t.Error("HasPerspective() = false after SetAll with persp1")
	}
}

func TestDirtyMatrixTypeCache(t *testing.T) {
	m := Identity()
	m.mat[MTransX] = 5
	if !m.IsIdentity() {
		t.Fatal("stale cache should still report identity before dirtying")
	}
	m.DirtyMatrixTypeCache()
	if got := m.Type(); got != TypeTranslate {
		t.Errorf("Type() after DirtyMatrixTypeCache = %v, want Translate", got)
	}
}

func TestIsSimilarity(t *testing.T) {
	rotUniform := MakeRotate(30)
	rotUniform.PostScale(2, 2)
	rotNonUniform := MakeRotate(30)
	rotNonUniform.PostScale(2, 3)

	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translate", MakeTranslate(5, 5), true},
		{"uniform scale", MakeScale(2, 2), true},
		{"reflection", MakeScale(-2, 2), true},
		{"non-uniform scale", MakeScale(2, 3), false},
		{"zero scale", MakeScale(0, 0), false},
		{"rotate 30", MakeRotate(30), true},
		{"rotate then uniform scale", rotUniform, true},
		{"rotate then non-uniform scale", rotNonUniform, false},
		{"skew", MakeSkew(0.5, 0), false},
		{"perspective", MakeAll(1, 0, 0, 0, 1, 0, 0.1, 0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsSimilarity(NearlyZero); got != tt.want {
				t.Errorf("IsSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreservesRightAngles(t *testing.T) {
	rotThenScale := MakeRotate(30)
	rotThenScale.PostScale(2, 3)
	scaleThenRot := MakeRotate(90)
	scaleThenRot.PreScale(2, 3)

	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"non-uniform scale", MakeScale(2, 3), true},
		{"degenerate scale", MakeScale(0, 1), false},
		{"rotate 30", MakeRotate(30), true},
		{"scale then rotate", scaleThenRot, true},
		{"rotate then scale", rotThenScale, false},
		{"skew", MakeSkew(0.5, 0), false},
		{"perspective", MakeAll(1, 0, 0, 0, 1, 0, 0.1, 0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.PreservesRightAngles(NearlyZero); got != tt.want {
				t.Errorf("PreservesRightAngles() = %v, want %v", got, tt.want)
			}
		})
	}
}

// axisAligned reports whether the quad is an axis-aligned rectangle:
// consecutive edges are each horizontal or vertical.
func axisAligned(q [4]Point) bool {
	const eps = 1e-4
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		if !nearlyZero(a.X-b.X, eps) && !nearlyZero(a.Y-b.Y, eps) {
			return false
		}
	}
	return true
}

func TestRectStaysRectMatchesQuad(t *testing.T) {
	rects := []Rect{
		RectLTRB(0, 0, 1, 1),
		RectLTRB(-2, 3, 5, 7),
		RectXYWH(10, 10, 0.5, 20),
	}
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"scale", MakeScale(2, 0.5)},
		{"translate", MakeTranslate(3, -4)},
		{"rotate 90", MakeRotate(90)},
		{"rotate 180", MakeRotate(180)},
		{"rotate 270", MakeRotate(270)},
		{"reflection", MakeScale(-1, 1)},
		{"rotate 30", MakeRotate(30)},
		{"skew", MakeSkew(0.5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range rects {
				got := axisAligned(tt.m.MapRectToQuad(r))
				if want := tt.m.RectStaysRect(); got != want {
					t.Errorf("rect %v: quad axis-aligned = %v, RectStaysRect() = %v", r, got, want)
				}
			}
		})
	}
}
