package geom

// DecomposeScale factors m as S(sx, sy) * remaining, where sx and sy are
// the lengths of the two basis vectors of the 2x2 block. It returns false
// if m has perspective or either length is non-finite or nearly zero.
func (m *Matrix) DecomposeScale() (Size, Matrix, bool) {
	if m.HasPerspective() {
		return Size{}, Matrix{}, false
	}

	sx := Point{X: m.mat[MScaleX], Y: m.mat[MSkewY]}.Length()
	sy := Point{X: m.mat[MSkewX], Y: m.mat[MScaleY]}.Length()
	if !isFinite32(sx) || !isFinite32(sy) ||
		nearlyZero(sx, NearlyZero) || nearlyZero(sy, NearlyZero) {
		return Size{}, Matrix{}, false
	}

	remaining := *m
	remaining.PostScale(1/sx, 1/sy)
	return Size{Width: sx, Height: sy}, remaining, true
}

// scaleFactors returns the smallest and largest factor by which the 2x2
// block of m stretches a unit vector: the singular values of that block,
// found as the square roots of the eigenvalues of its A^T*A.
func (m *Matrix) scaleFactors() (minScale, maxScale float32, ok bool) {
	mask := m.Type()
	if mask&TypePerspective != 0 {
		return 0, 0, false
	}
	if mask == TypeIdentity {
		return 1, 1, true
	}

	a := &m.mat
	if mask&TypeAffine == 0 {
		minScale = abs32(a[MScaleX])
		maxScale = abs32(a[MScaleY])
		if minScale > maxScale {
			minScale, maxScale = maxScale, minScale
		}
		return minScale, maxScale, true
	}

	// [ea eb; eb ec] = A^T*A
	ea := muladdmul(a[MScaleX], a[MScaleX], a[MSkewY], a[MSkewY])
	eb := muladdmul(a[MScaleX], a[MSkewX], a[MScaleY], a[MSkewY])
	ec := muladdmul(a[MSkewX], a[MSkewX], a[MScaleY], a[MScaleY])

	bSqd := eb * eb
	if bSqd <= NearlyZero*NearlyZero {
		// Orthogonal columns: the eigenvalues are the diagonal.
		minScale, maxScale = min(ea, ec), max(ea, ec)
	} else {
		aminusc := ea - ec
		apluscdiv2 := (ea + ec) * 0.5
		x := sqrt32(aminusc*aminusc+4*bSqd) * 0.5
		minScale = apluscdiv2 - x
		maxScale = apluscdiv2 + x
	}

	if !isFinite32(minScale) || !isFinite32(maxScale) {
		return 0, 0, false
	}
	// Rounding in the dot products can push a nearly-zero eigenvalue
	// slightly negative.
	minScale = sqrt32(max(minScale, 0))
	maxScale = sqrt32(max(maxScale, 0))
	return minScale, maxScale, true
}

// MinScale returns the smallest factor by which m stretches a vector, or
// -1 if m has perspective or the computation overflows.
func (m *Matrix) MinScale() float32 {
	lo, _, ok := m.scaleFactors()
	if !ok {
		return -1
	}
	return lo
}

// MaxScale returns the largest factor by which m stretches a vector, or
// -1 if m has perspective or the computation overflows.
func (m *Matrix) MaxScale() float32 {
	_, hi, ok := m.scaleFactors()
	if !ok {
		return -1
	}
	return hi
}

// MinMaxScales returns the smallest and largest scale factors of m in
// that order. It returns false under the same conditions as MinScale.
func (m *Matrix) MinMaxScales() ([2]float32, bool) {
	lo, hi, ok := m.scaleFactors()
	if !ok {
		return [2]float32{}, false
	}
	return [2]float32{lo, hi}, true
}

// DecomposeUpper2x2 factors the 2x2 block of m as
// Rotate(rotation2) * Scale(scale) * Rotate(rotation1). Each rotation is
// returned as (cos, sin); a reflection, if any, ends up in scale. It
// returns false if the block is degenerate.
func (m *Matrix) DecomposeUpper2x2() (rotation1, scale, rotation2 Point, ok bool) {
	A := m.mat[MScaleX]
	B := m.mat[MSkewX]
	C := m.mat[MSkewY]
	D := m.mat[MScaleY]

	if isDegenerate2x2(A, B, C, D) {
		return Point{}, Point{}, Point{}, false
	}

	var (
		w1, w2     float64
		cos1, sin1 float32
		cos2, sin2 float32
	)

	// Polar decomposition M = Q*S.
	var (
		cosQ, sinQ float32
		sa, sb, sd float64
	)
	if nearlyEqual(B, C, NearlyZero) {
		cosQ, sinQ = 1, 0
		sa, sb, sd = float64(A), float64(B), float64(D)
	} else {
		cosQ = A + D
		sinQ = C - B
		reciplen := 1 / sqrt32(cosQ*cosQ+sinQ*sinQ)
		cosQ *= reciplen
		sinQ *= reciplen

		// S = Q^-1 * M; S is symmetric so Sc is skipped.
		sa = float64(A*cosQ + C*sinQ)
		sb = float64(B*cosQ + D*sinQ)
		sd = float64(-B*sinQ + D*cosQ)
	}

	// Eigen-decompose S = U*W*U^T.
	if nearlyZero(float32(sb), NearlyZero) {
		cos1, sin1 = 1, 0
		w1, w2 = sa, sd
		cos2, sin2 = cosQ, sinQ
	} else {
		diff := sa - sd
		discriminant := sqrt64(diff*diff + 4*sb*sb)
		trace := sa + sd
		if diff > 0 {
			w1 = 0.5 * (trace + discriminant)
			w2 = 0.5 * (trace - discriminant)
		} else {
			w1 = 0.5 * (trace - discriminant)
			w2 = 0.5 * (trace + discriminant)
		}

		cos1 = float32(sb)
		sin1 = float32(w1 - sa)
		reciplen := 1 / sqrt32(cos1*cos1+sin1*sin1)
		cos1 *= reciplen
		sin1 *= reciplen

		// rotation2 is Q*U, rotation1 is U^T.
		cos2 = cos1*cosQ - sin1*sinQ
		sin2 = sin1*cosQ + cos1*sinQ
		sin1 = -sin1
	}

	return Point{X: cos1, Y: sin1}, Point{X: float32(w1), Y: float32(w2)}, Point{X: cos2, Y: sin2}, true
}
