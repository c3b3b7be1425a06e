package geom

// maxPolyPoints is the largest point count SetPolyToPoly accepts.
const maxPolyPoints = 4

func checkForZero(x float32) bool {
	return x*x == 0
}

func mulDiv(a, b, c float32) float32 {
	return float32(float64(a) * float64(b) / float64(c))
}

// polyToPoint derives a per-axis normalization scale from the polygon so
// the intermediate unit-square mapping stays well conditioned.
func polyToPoint(poly []Point) (Point, bool) {
	x, y := float32(1), float32(1)
	if len(poly) > 1 {
		pt1 := poly[1].Sub(poly[0])
		y = pt1.Length()
		if checkForZero(y) {
			return Point{}, false
		}
		var pt2 Point
		switch len(poly) {
		case 2:
			return Point{X: x, Y: y}, true
		case 3:
			pt2 = Point{X: poly[0].Y - poly[2].Y, Y: poly[2].X - poly[0].X}
		default:
			pt2 = Point{X: poly[0].Y - poly[3].Y, Y: poly[3].X - poly[0].X}
		}
		x = pt1.Dot(pt2) / y
	}
	return Point{X: x, Y: y}, true
}

func poly2Proc(src []Point, dst *Matrix, scale Point) bool {
	invScale := 1 / scale.Y
	dst.mat = [9]float32{
		(src[1].Y - src[0].Y) * invScale, (src[1].X - src[0].X) * invScale, src[0].X,
		(src[0].X - src[1].X) * invScale, (src[1].Y - src[0].Y) * invScale, src[0].Y,
		0, 0, 1,
	}
	dst.setTypeMask(unknownMask)
	return true
}

func poly3Proc(src []Point, dst *Matrix, scale Point) bool {
	invX := 1 / scale.X
	invY := 1 / scale.Y
	dst.mat = [9]float32{
		(src[2].X - src[0].X) * invX, (src[1].X - src[0].X) * invY, src[0].X,
		(src[2].Y - src[0].Y) * invX, (src[1].Y - src[0].Y) * invY, src[0].Y,
		0, 0, 1,
	}
	dst.setTypeMask(unknownMask)
	return true
}

// absGreater reports whether |a| > |b|.
func absGreater(a, b float32) bool {
	return abs32(a) > abs32(b)
}

func poly4Proc(src []Point, dst *Matrix, scale Point) bool {
	x0 := src[2].X - src[0].X
	y0 := src[2].Y - src[0].Y
	x1 := src[2].X - src[1].X
	y1 := src[2].Y - src[1].Y
	x2 := src[2].X - src[3].X
	y2 := src[2].Y - src[3].Y

	var a1, a2 float32
	if absGreater(x2, y2) {
		denom := mulDiv(x1, y2, x2) - y1
		if checkForZero(denom) {
			return false
		}
		a1 = (mulDiv(x0-x1, y2, x2) - y0 + y1) / denom
	} else {
		denom := x1 - mulDiv(y1, x2, y2)
		if checkForZero(denom) {
			return false
		}
		a1 = (x0 - x1 - mulDiv(y0-y1, x2, y2)) / denom
	}

	if absGreater(x1, y1) {
		denom := y2 - mulDiv(x2, y1, x1)
		if checkForZero(denom) {
			return false
		}
		a2 = (y0 - y2 - mulDiv(x0-x2, y1, x1)) / denom
	} else {
		denom := mulDiv(y2, x1, y1) - x2
		if checkForZero(denom) {
			return false
		}
		a2 = (mulDiv(y0-y2, x1, y1) - x0 + x2) / denom
	}

	invX := 1 / scale.X
	invY := 1 / scale.Y
	dst.mat = [9]float32{
		(a2*src[3].X + src[3].X - src[0].X) * invX,
		(a1*src[1].X + src[1].X - src[0].X) * invY,
		src[0].X,
		(a2*src[3].Y + src[3].Y - src[0].Y) * invX,
		(a1*src[1].Y + src[1].Y - src[0].Y) * invY,
		src[0].Y,
		a2 * invX,
		a1 * invY,
		1,
	}
	dst.setTypeMask(unknownMask)
	return true
}

var polyMapProcs = [...]func(src []Point, dst *Matrix, scale Point) bool{
	poly2Proc, poly3Proc, poly4Proc,
}

// SetPolyToPoly sets m to map the src points onto the dst points. One
// point gives a translation, two a similarity, three an affine transform
// and four a perspective transform. src and dst must have the same
// length, at most four. It returns false and leaves m unchanged when the
// mapping cannot be computed.
func (m *Matrix) SetPolyToPoly(src, dst []Point) bool {
	count := len(src)
	if count != len(dst) || count > maxPolyPoints {
		Logger().Warn("geom: SetPolyToPoly point count out of range",
			"src", len(src), "dst", len(dst), "max", maxPolyPoints)
		return false
	}

	switch count {
	case 0:
		m.Reset()
		return true
	case 1:
		m.SetTranslate(dst[0].X-src[0].X, dst[0].Y-src[0].Y)
		return true
	}

	scale, ok := polyToPoint(src)
	if !ok || nearlyZero(scale.X, NearlyZero) || nearlyZero(scale.Y, NearlyZero) {
		return false
	}

	proc := polyMapProcs[count-2]

	var tempMap Matrix
	if !proc(src, &tempMap, scale) {
		return false
	}
	result, ok := tempMap.Invert()
	if !ok {
		return false
	}
	if !proc(dst, &tempMap, scale) {
		return false
	}
	m.SetConcat(tempMap, result)
	return true
}
