package geom

// SetTranslate sets m to translate by (dx, dy).
func (m *Matrix) SetTranslate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		m.Reset()
		return
	}
	m.mat = [9]float32{1, 0, dx, 0, 1, dy, 0, 0, 1}
	m.setTypeMask(uint8(TypeTranslate) | rectStaysRectMask)
}

// SetScale sets m to scale by (sx, sy) about the origin.
func (m *Matrix) SetScale(sx, sy float32) {
	if sx == 1 && sy == 1 {
		m.Reset()
		return
	}
	m.SetScaleTranslate(sx, sy, 0, 0)
}

// SetScaleAbout sets m to scale by (sx, sy) about the pivot (px, py).
func (m *Matrix) SetScaleAbout(sx, sy, px, py float32) {
	if sx == 1 && sy == 1 {
		m.Reset()
		return
	}
	m.SetScaleTranslate(sx, sy, px-sx*px, py-sy*py)
}

// SetScaleTranslate sets m to scale by (sx, sy) and then translate by
// (tx, ty). The type mask is computed directly.
func (m *Matrix) SetScaleTranslate(sx, sy, tx, ty float32) {
	m.mat = [9]float32{sx, 0, tx, 0, sy, ty, 0, 0, 1}

	var mask uint8
	if sx != 1 || sy != 1 {
		mask |= uint8(TypeScale)
	}
	if tx != 0 || ty != 0 {
		mask |= uint8(TypeTranslate)
	}
	if sx != 0 && sy != 0 {
		mask |= rectStaysRectMask
	}
	m.setTypeMask(mask)
}

// SetIDiv sets m to scale by (1/divx, 1/divy). It returns false and
// leaves m unchanged if either divisor is zero.
func (m *Matrix) SetIDiv(divx, divy int) bool {
	if divx == 0 || divy == 0 {
		return false
	}
	m.SetScale(1/float32(divx), 1/float32(divy))
	return true
}

// SetSinCos sets m to rotate by the angle whose sine and cosine are given,
// about the origin.
func (m *Matrix) SetSinCos(sinV, cosV float32) {
	m.mat = [9]float32{
		cosV, -sinV, 0,
		sinV, cosV, 0,
		0, 0, 1,
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// SetSinCosAbout sets m to rotate by the angle whose sine and cosine are
// given, about the pivot (px, py).
func (m *Matrix) SetSinCosAbout(sinV, cosV, px, py float32) {
	oneMinusCosV := 1 - cosV
	m.mat = [9]float32{
		cosV, -sinV, sinV*py + oneMinusCosV*px,
		sinV, cosV, -sinV*px + oneMinusCosV*py,
		0, 0, 1,
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// SetRotate sets m to rotate by degrees about the origin. Positive
// degrees rotate clockwise in a y-down coordinate system: (1, 0) maps to
// (0, 1) for 90 degrees.
func (m *Matrix) SetRotate(degrees float32) {
	sinV, cosV := sinCos(degreesToRadians(degrees))
	m.SetSinCos(sinV, cosV)
}

// SetRotateAbout sets m to rotate by degrees about the pivot (px, py).
func (m *Matrix) SetRotateAbout(degrees, px, py float32) {
	sinV, cosV := sinCos(degreesToRadians(degrees))
	m.SetSinCosAbout(sinV, cosV, px, py)
}

// SetRSXform sets m from a rotation-scale-translate transform.
func (m *Matrix) SetRSXform(xform RSXform) {
	m.mat = [9]float32{
		xform.SCos, -xform.SSin, xform.Tx,
		xform.SSin, xform.SCos, xform.Ty,
		0, 0, 1,
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// SetSkew sets m to skew by (kx, ky) about the origin.
func (m *Matrix) SetSkew(kx, ky float32) {
	m.mat = [9]float32{
		1, kx, 0,
		ky, 1, 0,
		0, 0, 1,
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// SetSkewAbout sets m to skew by (kx, ky) about the pivot (px, py).
func (m *Matrix) SetSkewAbout(kx, ky, px, py float32) {
	m.mat = [9]float32{
		1, kx, -kx * py,
		ky, 1, -ky * px,
		0, 0, 1,
	}
	m.setTypeMask(unknownMask | onlyPerspectiveValidMask)
}

// ScaleToFit selects how SetRectToRect fits a source rectangle into a
// destination with a different aspect ratio.
type ScaleToFit int

const (
	// ScaleToFitFill scales each axis independently to fill dst exactly.
	ScaleToFitFill ScaleToFit = iota
	// ScaleToFitStart keeps the aspect ratio and aligns to the left/top.
	ScaleToFitStart
	// ScaleToFitCenter keeps the aspect ratio and centers in dst.
	ScaleToFitCenter
	// ScaleToFitEnd keeps the aspect ratio and aligns to the right/bottom.
	ScaleToFitEnd
)

// String returns the fit mode name.
func (s ScaleToFit) String() string {
	switch s {
	case ScaleToFitFill:
		return "Fill"
	case ScaleToFitStart:
		return "Start"
	case ScaleToFitCenter:
		return "Center"
	case ScaleToFitEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// SetRectToRect sets m to map src onto dst using the fit mode. It
// returns false and sets m to identity if src is empty. An empty dst
// yields the all-zero scale.
func (m *Matrix) SetRectToRect(src, dst Rect, fit ScaleToFit) bool {
	if src.IsEmpty() {
		m.Reset()
		return false
	}
	if dst.IsEmpty() {
		m.SetScaleTranslate(0, 0, 0, 0)
		return true
	}

	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	xLarger := false

	if fit != ScaleToFitFill {
		if sx > sy {
			xLarger = true
			sx = sy
		} else {
			sy = sx
		}
	}

	tx := dst.MinX - src.MinX*sx
	ty := dst.MinY - src.MinY*sy
	if fit == ScaleToFitCenter || fit == ScaleToFitEnd {
		var diff float32
		if xLarger {
			diff = dst.Width() - src.Width()*sy
		} else {
			diff = dst.Height() - src.Height()*sy
		}
		if fit == ScaleToFitCenter {
			diff *= 0.5
		}
		if xLarger {
			tx += diff
		} else {
			ty += diff
		}
	}

	m.SetScaleTranslate(sx, sy, tx, ty)
	return true
}

// MakeRectToRect returns the matrix mapping src onto dst; see SetRectToRect.
func MakeRectToRect(src, dst Rect, fit ScaleToFit) (Matrix, bool) {
	var m Matrix
	ok := m.SetRectToRect(src, dst, fit)
	return m, ok
}
