package geom

import "strings"

// TypeMask classifies the geometric behavior of a Matrix. The mask is
// conservative: a bit may be set even when the matrix does not strictly
// need it (for example TypeScale for a pure rotation), but a bit is never
// missing when the behavior is present. When TypePerspective is set all
// other bits are set too.
type TypeMask uint8

const (
	// TypeIdentity means the matrix maps every point to itself.
	TypeIdentity TypeMask = 0
	// TypeTranslate means the matrix has a non-zero translation.
	TypeTranslate TypeMask = 0x01
	// TypeScale means the matrix may scale along either axis.
	TypeScale TypeMask = 0x02
	// TypeAffine means the matrix has skew or rotation.
	TypeAffine TypeMask = 0x04
	// TypePerspective means the bottom row is not (0, 0, 1).
	TypePerspective TypeMask = 0x08
)

// Private mask bits stored alongside the public ones.
const (
	rectStaysRectMask        uint8 = 0x10
	onlyPerspectiveValidMask uint8 = 0x40
	unknownMask              uint8 = 0x80

	orableMasks = uint8(TypeTranslate | TypeScale | TypeAffine | TypePerspective)
)

// String returns the set bits joined by "|", or "Identity".
func (t TypeMask) String() string {
	if t == TypeIdentity {
		return "Identity"
	}
	var parts []string
	for _, b := range []struct {
		bit  TypeMask
		name string
	}{
		{TypeTranslate, "Translate"},
		{TypeScale, "Scale"},
		{TypeAffine, "Affine"},
		{TypePerspective, "Perspective"},
	} {
		if t&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

func (m *Matrix) computePerspectiveTypeMask() uint8 {
	if m.mat[MPersp0] != 0 || m.mat[MPersp1] != 0 || m.mat[MPersp2] != 1 {
		// Perspective matrices claim every capability.
		return orableMasks
	}
	return onlyPerspectiveValidMask | unknownMask
}

func (m *Matrix) computeTypeMask() uint8 {
	a := &m.mat
	if a[MPersp0] != 0 || a[MPersp1] != 0 || a[MPersp2] != 1 {
		return orableMasks
	}

	var mask uint8
	if a[MTransX] != 0 || a[MTransY] != 0 {
		mask |= uint8(TypeTranslate)
	}

	if a[MSkewX] != 0 || a[MSkewY] != 0 {
		// Skew may also scale. Detecting a pure rotation is expensive, so
		// the scale bit is always set along with affine. This also keeps
		// a matrix and its inverse in the same class.
		mask |= uint8(TypeAffine | TypeScale)

		// Axis-swapping matrices keep rects rect: zero primary diagonal,
		// non-zero secondary diagonal.
		if a[MScaleX] == 0 && a[MScaleY] == 0 && a[MSkewX] != 0 && a[MSkewY] != 0 {
			mask |= rectStaysRectMask
		}
	} else {
		if a[MScaleX] != 1 || a[MScaleY] != 1 {
			mask |= uint8(TypeScale)
		}
		if a[MScaleX] != 0 && a[MScaleY] != 0 {
			mask |= rectStaysRectMask
		}
	}
	return mask
}

// Type returns the public classification of m, computing and caching it
// if needed.
func (m *Matrix) Type() TypeMask {
	mask := m.loadTypeMask()
	if mask&unknownMask != 0 {
		mask = m.computeTypeMask()
		m.setTypeMask(mask)
	}
	return TypeMask(mask & orableMasks)
}

// perspectiveTypeMaskOnly returns a mask whose TypePerspective bit is
// exact. Other bits are only meaningful if the full mask is known.
func (m *Matrix) perspectiveTypeMaskOnly() TypeMask {
	mask := m.loadTypeMask()
	if mask&unknownMask != 0 && mask&onlyPerspectiveValidMask == 0 {
		mask = m.computePerspectiveTypeMask()
		m.setTypeMask(mask)
	}
	return TypeMask(mask & orableMasks)
}

// isTriviallyIdentity reports whether the cached mask already says
// identity. It never computes the mask.
func (m *Matrix) isTriviallyIdentity() bool {
	mask := m.loadTypeMask()
	if mask&unknownMask != 0 {
		return false
	}
	return mask&orableMasks == 0
}

// DirtyMatrixTypeCache forces the next query to recompute the type mask.
// Callers that write coefficients through means other than the Matrix
// methods must call it.
func (m *Matrix) DirtyMatrixTypeCache() {
	m.setTypeMask(unknownMask)
}

// IsIdentity reports whether m is the identity.
func (m *Matrix) IsIdentity() bool {
	return m.Type() == TypeIdentity
}

// IsScaleTranslate reports whether m only scales and translates.
func (m *Matrix) IsScaleTranslate() bool {
	return m.Type()&^(TypeScale|TypeTranslate) == 0
}

// IsTranslate reports whether m only translates.
func (m *Matrix) IsTranslate() bool {
	return m.Type()&^TypeTranslate == 0
}

// HasPerspective reports whether the bottom row of m differs from (0, 0, 1).
func (m *Matrix) HasPerspective() bool {
	return m.perspectiveTypeMaskOnly()&TypePerspective != 0
}

// RectStaysRect reports whether m maps every axis-aligned rectangle to
// another axis-aligned rectangle. That holds for identity, scale and
// translate with non-zero scale, and rotations by multiples of 90
// degrees with or without reflection.
func (m *Matrix) RectStaysRect() bool {
	mask := m.loadTypeMask()
	if mask&unknownMask != 0 {
		mask = m.computeTypeMask()
		m.setTypeMask(mask)
	}
	return mask&rectStaysRectMask != 0
}

// PreservesAxisAlignment is a synonym for RectStaysRect.
func (m *Matrix) PreservesAxisAlignment() bool {
	return m.RectStaysRect()
}

func isDegenerate2x2(scaleX, skewX, skewY, scaleY float32) bool {
	perpDot := scaleX*scaleY - skewX*skewY
	return nearlyZero(perpDot, NearlyZero*NearlyZero)
}

// IsSimilarity reports whether m is composed only of translation,
// rotation, reflection and uniform scale, within tol. Pass NearlyZero
// when no better tolerance is known.
func (m *Matrix) IsSimilarity(tol float32) bool {
	mask := m.Type()
	if mask <= TypeTranslate {
		return true
	}
	if mask&TypePerspective != 0 {
		return false
	}

	mx := m.mat[MScaleX]
	my := m.mat[MScaleY]
	if mask&TypeAffine == 0 {
		return !nearlyZero(mx, NearlyZero) && nearlyEqual(abs32(mx), abs32(my), NearlyZero)
	}
	sx := m.mat[MSkewX]
	sy := m.mat[MSkewY]

	if isDegenerate2x2(mx, sx, sy, my) {
		return false
	}

	// Basis vectors must be 90 degree rotations of each other.
	return (nearlyEqual(mx, my, tol) && nearlyEqual(sx, -sy, tol)) ||
		(nearlyEqual(mx, -my, tol) && nearlyEqual(sx, sy, tol))
}

// PreservesRightAngles reports whether m maps perpendicular vectors to
// perpendicular vectors (rotation, reflection, non-uniform axis scale and
// translation), within tol.
func (m *Matrix) PreservesRightAngles(tol float32) bool {
	mask := m.Type()
	if mask <= TypeTranslate {
		return true
	}
	if mask&TypePerspective != 0 {
		return false
	}

	mx := m.mat[MScaleX]
	my := m.mat[MScaleY]
	sx := m.mat[MSkewX]
	sy := m.mat[MSkewY]

	if isDegenerate2x2(mx, sx, sy, my) {
		return false
	}

	// Basis vectors must be orthogonal.
	v0 := Point{X: mx, Y: sy}
	v1 := Point{X: sx, Y: my}
	return nearlyZero(v0.Dot(v1), tol*tol)
}
