package geom

// invDeterminant returns 1/det(mat), or 0 if the determinant is too
// small to invert safely. The determinant is on the order of the cube of
// the coefficients, so it is compared against the cube of NearlyZero.
func invDeterminant(mat *[9]float32, isPersp bool) float64 {
	var det float64
	if isPersp {
		det = float64(mat[MScaleX])*dcross(float64(mat[MScaleY]), float64(mat[MPersp2]),
			float64(mat[MTransY]), float64(mat[MPersp1])) +
			float64(mat[MSkewX])*dcross(float64(mat[MTransY]), float64(mat[MPersp0]),
				float64(mat[MSkewY]), float64(mat[MPersp2])) +
			float64(mat[MTransX])*dcross(float64(mat[MSkewY]), float64(mat[MPersp1]),
				float64(mat[MScaleY]), float64(mat[MPersp0]))
	} else {
		det = dcross(float64(mat[MScaleX]), float64(mat[MScaleY]),
			float64(mat[MSkewX]), float64(mat[MSkewY]))
	}

	if nearlyZero(float32(det), NearlyZero*NearlyZero*NearlyZero) {
		return 0
	}
	return 1.0 / det
}

// computeInv writes the inverse of src into dst given the reciprocal of
// its determinant. dst and src must not alias. Without perspective the
// 2x2 block is inverted directly and the translation solved from it.
func computeInv(dst, src *[9]float32, invDet float64, isPersp bool) {
	s := func(i int) float64 { return float64(src[i]) }

	if isPersp {
		dst[MScaleX] = dcrossDScale(s(MScaleY), s(MPersp2), s(MTransY), s(MPersp1), invDet)
		dst[MSkewX] = dcrossDScale(s(MTransX), s(MPersp1), s(MSkewX), s(MPersp2), invDet)
		dst[MTransX] = dcrossDScale(s(MSkewX), s(MTransY), s(MTransX), s(MScaleY), invDet)

		dst[MSkewY] = dcrossDScale(s(MTransY), s(MPersp0), s(MSkewY), s(MPersp2), invDet)
		dst[MScaleY] = dcrossDScale(s(MScaleX), s(MPersp2), s(MTransX), s(MPersp0), invDet)
		dst[MTransY] = dcrossDScale(s(MTransX), s(MSkewY), s(MScaleX), s(MTransY), invDet)

		dst[MPersp0] = dcrossDScale(s(MSkewY), s(MPersp1), s(MScaleY), s(MPersp0), invDet)
		dst[MPersp1] = dcrossDScale(s(MSkewX), s(MPersp0), s(MScaleX), s(MPersp1), invDet)
		dst[MPersp2] = dcrossDScale(s(MScaleX), s(MScaleY), s(MSkewX), s(MSkewY), invDet)
		return
	}

	dst[MScaleX] = float32(s(MScaleY) * invDet)
	dst[MSkewX] = float32(-s(MSkewX) * invDet)
	dst[MTransX] = dcrossDScale(s(MSkewX), s(MTransY), s(MScaleY), s(MTransX), invDet)

	dst[MSkewY] = float32(-s(MSkewY) * invDet)
	dst[MScaleY] = float32(s(MScaleX) * invDet)
	dst[MTransY] = dcrossDScale(s(MSkewY), s(MTransX), s(MScaleX), s(MTransY), invDet)

	dst[MPersp0] = 0
	dst[MPersp1] = 0
	dst[MPersp2] = 1
}

// Invert returns the inverse of m. It returns false if m is singular or
// the inverse is not finite. The inverse of the identity is exactly the
// identity.
func (m *Matrix) Invert() (Matrix, bool) {
	if m.IsIdentity() {
		return Identity(), true
	}
	return m.invertNonIdentity()
}

// IsInvertible reports whether Invert would succeed.
func (m *Matrix) IsInvertible() bool {
	_, ok := m.Invert()
	return ok
}

func (m *Matrix) invertNonIdentity() (Matrix, bool) {
	mask := m.Type()

	if mask&^(TypeScale|TypeTranslate) == 0 {
		if mask&TypeScale == 0 {
			return MakeTranslate(-m.mat[MTransX], -m.mat[MTransY]), true
		}
		invX := m.mat[MScaleX]
		invY := m.mat[MScaleY]
		if invX == 0 || invY == 0 {
			return Matrix{}, false
		}
		invX = 1 / invX
		invY = 1 / invY

		var inv Matrix
		inv.mat = [9]float32{
			invX, 0, -m.mat[MTransX] * invX,
			0, invY, -m.mat[MTransY] * invY,
			0, 0, 1,
		}
		inv.setTypeMask(uint8(mask) | rectStaysRectMask)
		return inv, true
	}

	isPersp := mask&TypePerspective != 0
	invDet := invDeterminant(&m.mat, isPersp)
	if invDet == 0 {
		return Matrix{}, false
	}

	var inv Matrix
	computeInv(&inv.mat, &m.mat, invDet, isPersp)
	if !inv.IsFinite() {
		return Matrix{}, false
	}
	inv.setTypeMask(m.loadTypeMask())
	return inv, true
}
