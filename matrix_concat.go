package geom

func onlyScaleAndTranslate(mask TypeMask) bool {
	return mask&(TypeAffine|TypePerspective) == 0
}

// rowcol3 is the dot product of row r of a with column c of b.
func rowcol3(a *[9]float32, r int, b *[9]float32, c int) float32 {
	return float32(float64(a[r])*float64(b[c]) +
		float64(a[r+1])*float64(b[c+3]) +
		float64(a[r+2])*float64(b[c+6]))
}

// SetConcat sets m to a * b. Mapping a point through the result is the
// same as mapping it through b and then through a.
func (m *Matrix) SetConcat(a, b Matrix) {
	aType := a.Type()
	bType := b.Type()

	switch {
	case a.isTriviallyIdentity():
		*m = b
	case b.isTriviallyIdentity():
		*m = a
	case onlyScaleAndTranslate(aType | bType):
		m.SetScaleTranslate(
			a.mat[MScaleX]*b.mat[MScaleX],
			a.mat[MScaleY]*b.mat[MScaleY],
			a.mat[MScaleX]*b.mat[MTransX]+a.mat[MTransX],
			a.mat[MScaleY]*b.mat[MTransY]+a.mat[MTransY])
	case (aType|bType)&TypePerspective != 0:
		am, bm := &a.mat, &b.mat
		m.mat = [9]float32{
			rowcol3(am, 0, bm, 0), rowcol3(am, 0, bm, 1), rowcol3(am, 0, bm, 2),
			rowcol3(am, 3, bm, 0), rowcol3(am, 3, bm, 1), rowcol3(am, 3, bm, 2),
			rowcol3(am, 6, bm, 0), rowcol3(am, 6, bm, 1), rowcol3(am, 6, bm, 2),
		}
		m.setTypeMask(unknownMask)
	default:
		am, bm := &a.mat, &b.mat
		m.mat = [9]float32{
			muladdmul(am[MScaleX], bm[MScaleX], am[MSkewX], bm[MSkewY]),
			muladdmul(am[MScaleX], bm[MSkewX], am[MSkewX], bm[MScaleY]),
			muladdmul(am[MScaleX], bm[MTransX], am[MSkewX], bm[MTransY]) + am[MTransX],
			muladdmul(am[MSkewY], bm[MScaleX], am[MScaleY], bm[MSkewY]),
			muladdmul(am[MSkewY], bm[MSkewX], am[MScaleY], bm[MScaleY]),
			muladdmul(am[MSkewY], bm[MTransX], am[MScaleY], bm[MTransY]) + am[MTransY],
			0, 0, 1,
		}
		m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
	}
}

// PreConcat sets m to m * other: other is applied first when mapping.
func (m *Matrix) PreConcat(other Matrix) {
	if !other.IsIdentity() {
		m.SetConcat(*m, other)
	}
}

// PostConcat sets m to other * m: other is applied last when mapping.
func (m *Matrix) PostConcat(other Matrix) {
	if !other.IsIdentity() {
		m.SetConcat(other, *m)
	}
}

// PreTranslate sets m to m * T(dx, dy).
func (m *Matrix) PreTranslate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	if m.HasPerspective() {
		m.PreConcat(MakeTranslate(dx, dy))
		return
	}
	m.mat[MTransX] += m.mat[MScaleX]*dx + m.mat[MSkewX]*dy
	m.mat[MTransY] += m.mat[MSkewY]*dx + m.mat[MScaleY]*dy
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// PostTranslate sets m to T(dx, dy) * m.
func (m *Matrix) PostTranslate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	if m.HasPerspective() {
		m.PostConcat(MakeTranslate(dx, dy))
		return
	}
	m.mat[MTransX] += dx
	m.mat[MTransY] += dy
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// PreScale sets m to m * S(sx, sy).
func (m *Matrix) PreScale(sx, sy float32) {
	if sx == 1 && sy == 1 {
		return
	}

	// Scaling the first two columns is the full product; no concat needed.
	m.mat[MScaleX] *= sx
	m.mat[MSkewY] *= sx
	m.mat[MPersp0] *= sx

	m.mat[MSkewX] *= sy
	m.mat[MScaleY] *= sy
	m.mat[MPersp1] *= sy

	switch {
	case sx == 0 || sy == 0:
		// A zero factor can clear rect-stays-rect or perspective.
		m.setTypeMask(unknownMask)
	case m.mat[MScaleX] == 1 && m.mat[MScaleY] == 1 &&
		m.loadTypeMask()&uint8(TypePerspective|TypeAffine) == 0:
		m.clearTypeMask(uint8(TypeScale))
	default:
		m.orTypeMask(uint8(TypeScale))
	}
}

// PreScaleAbout sets m to m * S(sx, sy) about the pivot (px, py).
func (m *Matrix) PreScaleAbout(sx, sy, px, py float32) {
	if sx == 1 && sy == 1 {
		return
	}
	m.PreConcat(MakeScaleAbout(sx, sy, px, py))
}

// PostScale sets m to S(sx, sy) * m.
func (m *Matrix) PostScale(sx, sy float32) {
	if sx == 1 && sy == 1 {
		return
	}
	persp := m.HasPerspective()

	// Scaling the first two rows is the full product.
	m.mat[MScaleX] *= sx
	m.mat[MSkewX] *= sx
	m.mat[MTransX] *= sx

	m.mat[MSkewY] *= sy
	m.mat[MScaleY] *= sy
	m.mat[MTransY] *= sy

	if persp {
		// The bottom row is untouched, so the perspective mask still holds.
		return
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// PostScaleAbout sets m to S(sx, sy) about the pivot (px, py), times m.
func (m *Matrix) PostScaleAbout(sx, sy, px, py float32) {
	if sx == 1 && sy == 1 {
		return
	}
	m.PostConcat(MakeScaleAbout(sx, sy, px, py))
}

// PostIDiv sets m to S(1/divx, 1/divy) * m. It returns false and leaves
// m unchanged if either divisor is zero.
func (m *Matrix) PostIDiv(divx, divy int) bool {
	if divx == 0 || divy == 0 {
		return false
	}

	invX := 1 / float32(divx)
	invY := 1 / float32(divy)

	m.mat[MScaleX] *= invX
	m.mat[MSkewX] *= invX
	m.mat[MTransX] *= invX

	m.mat[MScaleY] *= invY
	m.mat[MSkewY] *= invY
	m.mat[MTransY] *= invY

	m.setTypeMask(unknownMask)
	return true
}

// PreRotate sets m to m * R(degrees).
func (m *Matrix) PreRotate(degrees float32) {
	m.PreConcat(MakeRotate(degrees))
}

// PreRotateAbout sets m to m * R(degrees) about the pivot (px, py).
func (m *Matrix) PreRotateAbout(degrees, px, py float32) {
	m.PreConcat(MakeRotateAbout(degrees, px, py))
}

// PostRotate sets m to R(degrees) * m.
func (m *Matrix) PostRotate(degrees float32) {
	m.PostConcat(MakeRotate(degrees))
}

// PostRotateAbout sets m to R(degrees) about the pivot (px, py), times m.
func (m *Matrix) PostRotateAbout(degrees, px, py float32) {
	m.PostConcat(MakeRotateAbout(degrees, px, py))
}

// PreSkew sets m to m * K(kx, ky).
func (m *Matrix) PreSkew(kx, ky float32) {
	m.PreConcat(MakeSkew(kx, ky))
}

// PreSkewAbout sets m to m * K(kx, ky) about the pivot (px, py).
func (m *Matrix) PreSkewAbout(kx, ky, px, py float32) {
	var k Matrix
	k.SetSkewAbout(kx, ky, px, py)
	m.PreConcat(k)
}

// PostSkew sets m to K(kx, ky) * m.
func (m *Matrix) PostSkew(kx, ky float32) {
	m.PostConcat(MakeSkew(kx, ky))
}

// PostSkewAbout sets m to K(kx, ky) about the pivot (px, py), times m.
func (m *Matrix) PostSkewAbout(kx, ky, px, py float32) {
	var k Matrix
	k.SetSkewAbout(kx, ky, px, py)
	m.PostConcat(k)
}
