package geom

import (
	"fmt"
	"math"
)

// Matrix is a 3x3 transformation matrix operating on homogeneous 2D
// coordinates (x, y, 1). Coefficients are stored in row-major order:
//
//	| ScaleX  SkewX   TransX |
//	| SkewY   ScaleY  TransY |
//	| Persp0  Persp1  Persp2 |
//
// A point (x, y) maps to:
//
//	w  = Persp0*x + Persp1*y + Persp2
//	x' = (ScaleX*x + SkewX*y + TransX) / w
//	y' = (SkewY*x + ScaleY*y + TransY) / w
//
// Matrix caches a classification of its coefficients (see TypeMask),
// computed lazily by the query methods. Because reading the
// classification may write the cache, a Matrix is not safe for
// concurrent use unless Type has been called first. Concurrent
// mutation always needs external synchronization.
//
// The zero value is the all-zero matrix, not the identity; use Identity.
type Matrix struct {
	mat [9]float32

	// typeMask is stored with unknownMask inverted so that the zero
	// Matrix starts out unclassified.
	typeMask uint8
}

// Indices into the nine coefficients, in row-major order.
const (
	MScaleX = iota
	MSkewX
	MTransX
	MSkewY
	MScaleY
	MTransY
	MPersp0
	MPersp1
	MPersp2
)

// Indices into a six-element affine array, in column-major order. This
// is the order used by PDF, Core Graphics and SVG "matrix(a b c d e f)".
const (
	AScaleX = iota
	ASkewY
	ASkewX
	AScaleY
	ATransX
	ATransY
)

func (m *Matrix) setTypeMask(mask uint8) {
	m.typeMask = mask ^ unknownMask
}

func (m *Matrix) loadTypeMask() uint8 {
	return m.typeMask ^ unknownMask
}

func (m *Matrix) orTypeMask(mask uint8) {
	m.setTypeMask(m.loadTypeMask() | mask)
}

func (m *Matrix) clearTypeMask(mask uint8) {
	m.setTypeMask(m.loadTypeMask() &^ mask)
}

// Identity returns the identity matrix.
func Identity() Matrix {
	var m Matrix
	m.Reset()
	return m
}

// InvalidMatrix returns a matrix with every coefficient set to
// math.MaxFloat32. It can stand in for "no matrix" where a value is
// required.
func InvalidMatrix() Matrix {
	var m Matrix
	for i := range m.mat {
		m.mat[i] = math.MaxFloat32
	}
	m.setTypeMask(uint8(TypeTranslate | TypeScale | TypeAffine | TypePerspective))
	return m
}

// MakeAll returns a matrix with the given nine coefficients.
func MakeAll(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2 float32) Matrix {
	var m Matrix
	m.SetAll(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2)
	return m
}

// MakeTranslate returns a matrix translating by (dx, dy).
func MakeTranslate(dx, dy float32) Matrix {
	var m Matrix
	m.SetTranslate(dx, dy)
	return m
}

// MakeScale returns a matrix scaling by (sx, sy) about the origin.
func MakeScale(sx, sy float32) Matrix {
	var m Matrix
	m.SetScale(sx, sy)
	return m
}

// MakeScaleAbout returns a matrix scaling by (sx, sy) about (px, py).
func MakeScaleAbout(sx, sy, px, py float32) Matrix {
	var m Matrix
	m.SetScaleAbout(sx, sy, px, py)
	return m
}

// MakeScaleTranslate returns a matrix that scales by (sx, sy) and then
// translates by (tx, ty).
func MakeScaleTranslate(sx, sy, tx, ty float32) Matrix {
	var m Matrix
	m.SetScaleTranslate(sx, sy, tx, ty)
	return m
}

// MakeRotate returns a matrix rotating by degrees about the origin.
// Positive degrees rotate clockwise in a y-down coordinate system.
func MakeRotate(degrees float32) Matrix {
	var m Matrix
	m.SetRotate(degrees)
	return m
}

// MakeRotateAbout returns a matrix rotating by degrees about (px, py).
func MakeRotateAbout(degrees, px, py float32) Matrix {
	var m Matrix
	m.SetRotateAbout(degrees, px, py)
	return m
}

// MakeSkew returns a matrix skewing by (kx, ky) about the origin.
func MakeSkew(kx, ky float32) Matrix {
	var m Matrix
	m.SetSkew(kx, ky)
	return m
}

// MakeConcat returns a * b.
func MakeConcat(a, b Matrix) Matrix {
	var m Matrix
	m.SetConcat(a, b)
	return m
}

// Reset sets m to the identity.
func (m *Matrix) Reset() {
	m.mat = [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	m.setTypeMask(uint8(TypeIdentity) | rectStaysRectMask)
}

// SetIdentity is a synonym for Reset.
func (m *Matrix) SetIdentity() {
	m.Reset()
}

// SetAll sets all nine coefficients.
func (m *Matrix) SetAll(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2 float32) {
	m.mat = [9]float32{scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2}
	m.setTypeMask(unknownMask)
}

// Set9 sets all nine coefficients from a row-major array.
func (m *Matrix) Set9(buf [9]float32) {
	m.mat = buf
	m.setTypeMask(unknownMask)
}

// Get9 returns the nine coefficients in row-major order.
func (m *Matrix) Get9() [9]float32 {
	return m.mat
}

// Get returns the coefficient at index i (MScaleX..MPersp2).
func (m *Matrix) Get(i int) float32 {
	return m.mat[i]
}

// Set changes the coefficient at index i and invalidates the cached type.
func (m *Matrix) Set(i int, v float32) {
	m.mat[i] = v
	m.setTypeMask(unknownMask)
}

// ScaleX returns the horizontal scale factor.
func (m *Matrix) ScaleX() float32 { return m.mat[MScaleX] }

// SkewX returns the horizontal skew factor.
func (m *Matrix) SkewX() float32 { return m.mat[MSkewX] }

// TranslateX returns the horizontal translation.
func (m *Matrix) TranslateX() float32 { return m.mat[MTransX] }

// SkewY returns the vertical skew factor.
func (m *Matrix) SkewY() float32 { return m.mat[MSkewY] }

// ScaleY returns the vertical scale factor.
func (m *Matrix) ScaleY() float32 { return m.mat[MScaleY] }

// TranslateY returns the vertical translation.
func (m *Matrix) TranslateY() float32 { return m.mat[MTransY] }

// Persp0 returns the input x perspective factor.
func (m *Matrix) Persp0() float32 { return m.mat[MPersp0] }

// Persp1 returns the input y perspective factor.
func (m *Matrix) Persp1() float32 { return m.mat[MPersp1] }

// Persp2 returns the perspective bias.
func (m *Matrix) Persp2() float32 { return m.mat[MPersp2] }

// SetScaleX sets the horizontal scale factor.
func (m *Matrix) SetScaleX(v float32) { m.Set(MScaleX, v) }

// SetSkewX sets the horizontal skew factor.
func (m *Matrix) SetSkewX(v float32) { m.Set(MSkewX, v) }

// SetTranslateX sets the horizontal translation.
func (m *Matrix) SetTranslateX(v float32) { m.Set(MTransX, v) }

// SetSkewY sets the vertical skew factor.
func (m *Matrix) SetSkewY(v float32) { m.Set(MSkewY, v) }

// SetScaleY sets the vertical scale factor.
func (m *Matrix) SetScaleY(v float32) { m.Set(MScaleY, v) }

// SetTranslateY sets the vertical translation.
func (m *Matrix) SetTranslateY(v float32) { m.Set(MTransY, v) }

// SetPersp0 sets the input x perspective factor.
func (m *Matrix) SetPersp0(v float32) { m.Set(MPersp0, v) }

// SetPersp1 sets the input y perspective factor.
func (m *Matrix) SetPersp1(v float32) { m.Set(MPersp1, v) }

// SetPersp2 sets the perspective bias.
func (m *Matrix) SetPersp2(v float32) { m.Set(MPersp2, v) }

// AffineIdentity returns the identity in six-element affine form.
func AffineIdentity() [6]float32 {
	return [6]float32{AScaleX: 1, AScaleY: 1}
}

// SetAffine sets m from a six-element affine array (AScaleX..ATransY).
// The perspective row becomes (0, 0, 1).
func (m *Matrix) SetAffine(affine [6]float32) {
	m.mat = [9]float32{
		affine[AScaleX], affine[ASkewX], affine[ATransX],
		affine[ASkewY], affine[AScaleY], affine[ATransY],
		0, 0, 1,
	}
	m.setTypeMask(unknownMask)
}

// AsAffine returns the six affine coefficients in column-major order.
// It returns false if m has perspective.
func (m *Matrix) AsAffine() ([6]float32, bool) {
	if m.HasPerspective() {
		return [6]float32{}, false
	}
	var a [6]float32
	a[AScaleX] = m.mat[MScaleX]
	a[ASkewY] = m.mat[MSkewY]
	a[ASkewX] = m.mat[MSkewX]
	a[AScaleY] = m.mat[MScaleY]
	a[ATransX] = m.mat[MTransX]
	a[ATransY] = m.mat[MTransY]
	return a, true
}

// IsFinite reports whether all nine coefficients are finite.
func (m *Matrix) IsFinite() bool {
	for _, v := range m.mat {
		if !isFinite32(v) {
			return false
		}
	}
	return true
}

// Equal reports whether m and other have numerically equal coefficients.
// NaN never compares equal and 0 equals -0.
func (m *Matrix) Equal(other Matrix) bool {
	return m.mat == other.mat
}

// CheapEqual reports whether m and other have bitwise identical
// coefficients. Identical NaN bit patterns compare equal, while 0 and -0
// do not.
func (m *Matrix) CheapEqual(other Matrix) bool {
	for i, v := range m.mat {
		if math.Float32bits(v) != math.Float32bits(other.mat[i]) {
			return false
		}
	}
	return true
}

// String formats the three rows of m.
func (m *Matrix) String() string {
	a := &m.mat
	return fmt.Sprintf("[%8.4f %8.4f %8.4f][%8.4f %8.4f %8.4f][%8.4f %8.4f %8.4f]",
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Dump writes m to the package logger at info level.
func (m *Matrix) Dump() {
	Logger().Info("geom: matrix", "value", m.String(), "type", m.Type())
}
