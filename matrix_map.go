package geom

// mapXYProc maps a single point with a routine specialized for one
// matrix class.
type mapXYProc func(m *Matrix, x, y float32) Point

// mapPtsProc maps src into dst (len(dst) == len(src)) with a routine
// specialized for one matrix class.
type mapPtsProc func(m *Matrix, dst, src []Point)

// Both tables are indexed by Type(); every perspective index selects the
// perspective routine.
var mapXYProcs = [16]mapXYProc{
	identityXY, transXY, scaleXY, scaleTransXY,
	rotXY, rotTransXY, rotXY, rotTransXY,
	perspXY, perspXY, perspXY, perspXY,
	perspXY, perspXY, perspXY, perspXY,
}

var mapPtsProcs = [16]mapPtsProc{
	identityPts, transPts, scalePts, scalePts,
	affinePts, affinePts, affinePts, affinePts,
	perspPts, perspPts, perspPts, perspPts,
	perspPts, perspPts, perspPts, perspPts,
}

func identityXY(_ *Matrix, x, y float32) Point {
	return Point{X: x, Y: y}
}

func transXY(m *Matrix, x, y float32) Point {
	return Point{X: x + m.mat[MTransX], Y: y + m.mat[MTransY]}
}

func scaleXY(m *Matrix, x, y float32) Point {
	return Point{X: x * m.mat[MScaleX], Y: y * m.mat[MScaleY]}
}

func scaleTransXY(m *Matrix, x, y float32) Point {
	return Point{
		X: x*m.mat[MScaleX] + m.mat[MTransX],
		Y: y*m.mat[MScaleY] + m.mat[MTransY],
	}
}

func rotXY(m *Matrix, x, y float32) Point {
	return Point{
		X: x*m.mat[MScaleX] + y*m.mat[MSkewX],
		Y: x*m.mat[MSkewY] + y*m.mat[MScaleY],
	}
}

func rotTransXY(m *Matrix, x, y float32) Point {
	return Point{
		X: x*m.mat[MScaleX] + y*m.mat[MSkewX] + m.mat[MTransX],
		Y: x*m.mat[MSkewY] + y*m.mat[MScaleY] + m.mat[MTransY],
	}
}

func perspXY(m *Matrix, x, y float32) Point {
	a := &m.mat
	px := x*a[MScaleX] + y*a[MSkewX] + a[MTransX]
	py := x*a[MSkewY] + y*a[MScaleY] + a[MTransY]
	z := x*a[MPersp0] + y*a[MPersp1] + a[MPersp2]
	if z != 0 {
		z = 1 / z
	}
	return Point{X: px * z, Y: py * z}
}

func identityPts(_ *Matrix, dst, src []Point) {
	copy(dst, src)
}

func transPts(m *Matrix, dst, src []Point) {
	tx, ty := m.mat[MTransX], m.mat[MTransY]
	for i, p := range src {
		dst[i] = Point{X: p.X + tx, Y: p.Y + ty}
	}
}

func scalePts(m *Matrix, dst, src []Point) {
	sx, sy := m.mat[MScaleX], m.mat[MScaleY]
	tx, ty := m.mat[MTransX], m.mat[MTransY]
	for i, p := range src {
		dst[i] = Point{X: p.X*sx + tx, Y: p.Y*sy + ty}
	}
}

func affinePts(m *Matrix, dst, src []Point) {
	a := &m.mat
	sx, kx, tx := a[MScaleX], a[MSkewX], a[MTransX]
	ky, sy, ty := a[MSkewY], a[MScaleY], a[MTransY]
	for i, p := range src {
		dst[i] = Point{
			X: p.X*sx + p.Y*kx + tx,
			Y: p.X*ky + p.Y*sy + ty,
		}
	}
}

func perspPts(m *Matrix, dst, src []Point) {
	for i, p := range src {
		dst[i] = perspXY(m, p.X, p.Y)
	}
}

// MapPoints maps src through m into dst. dst must be at least as long
// as src, and the two slices must either be identical or not overlap.
func (m *Matrix) MapPoints(dst, src []Point) {
	if debugEnabled {
		debugCheckMapSlices(dst, src)
	}
	mapPtsProcs[m.Type()](m, dst[:len(src)], src)
}

// MapPointsInPlace maps pts through m, overwriting them.
func (m *Matrix) MapPointsInPlace(pts []Point) {
	m.MapPoints(pts, pts)
}

// MapXY maps the point (x, y) through m.
func (m *Matrix) MapXY(x, y float32) Point {
	return mapXYProcs[m.Type()](m, x, y)
}

// MapPoint maps p through m.
func (m *Matrix) MapPoint(p Point) Point {
	return m.MapXY(p.X, p.Y)
}

// MapHomogeneousPoints maps homogeneous points through the full 3x3
// matrix without dividing by w. The slices follow the MapPoints rules.
func (m *Matrix) MapHomogeneousPoints(dst, src []Point3) {
	dst = dst[:len(src)]
	if m.IsIdentity() {
		copy(dst, src)
		return
	}
	a := &m.mat
	for i, p := range src {
		dst[i] = Point3{
			X: p.X*a[MScaleX] + p.Y*a[MSkewX] + p.Z*a[MTransX],
			Y: p.X*a[MSkewY] + p.Y*a[MScaleY] + p.Z*a[MTransY],
			Z: p.X*a[MPersp0] + p.Y*a[MPersp1] + p.Z*a[MPersp2],
		}
	}
}

// MapVectors maps src through m ignoring translation. With perspective,
// each vector is mapped as a point and the mapped origin subtracted.
func (m *Matrix) MapVectors(dst, src []Point) {
	if m.HasPerspective() {
		proc := mapXYProcs[m.Type()]
		origin := proc(m, 0, 0)
		dst = dst[:len(src)]
		for i := len(src) - 1; i >= 0; i-- {
			dst[i] = proc(m, src[i].X, src[i].Y).Sub(origin)
		}
		return
	}

	tmp := *m
	tmp.mat[MTransX] = 0
	tmp.mat[MTransY] = 0
	tmp.clearTypeMask(uint8(TypeTranslate))
	tmp.MapPoints(dst, src)
}

// MapVector maps the vector (dx, dy) through m ignoring translation.
func (m *Matrix) MapVector(dx, dy float32) Point {
	var v [1]Point
	v[0] = Point{X: dx, Y: dy}
	m.MapVectors(v[:], v[:])
	return v[0]
}

// MapRect returns the bounds of src mapped through m. The boolean is
// RectStaysRect: true when the mapped corners already form an axis-aligned
// rectangle, so the bounds are exact rather than a containing box.
func (m *Matrix) MapRect(src Rect) (Rect, bool) {
	if m.RectStaysRect() {
		pts := [2]Point{{X: src.MinX, Y: src.MinY}, {X: src.MaxX, Y: src.MaxY}}
		m.MapPoints(pts[:], pts[:])
		dst := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[1].X, MaxY: pts[1].Y}
		dst.Sort()
		return dst, true
	}
	quad := src.ToQuad()
	m.MapPoints(quad[:], quad[:])
	return BoundsOf(quad[:]), false
}

// MapRectInPlace replaces r with its mapped bounds; see MapRect.
func (m *Matrix) MapRectInPlace(r *Rect) bool {
	dst, ok := m.MapRect(*r)
	*r = dst
	return ok
}

// MapRectScaleTranslate is MapRect for matrices that only scale and
// translate. Calling it on any other matrix is a programmer error;
// builds with the geomdebug tag panic.
func (m *Matrix) MapRectScaleTranslate(src Rect) Rect {
	if debugEnabled && !m.IsScaleTranslate() {
		panic("geom: MapRectScaleTranslate on a matrix that is not scale+translate")
	}
	sx, sy := m.mat[MScaleX], m.mat[MScaleY]
	tx, ty := m.mat[MTransX], m.mat[MTransY]

	x0 := src.MinX*sx + tx
	y0 := src.MinY*sy + ty
	x1 := src.MaxX*sx + tx
	y1 := src.MaxY*sy + ty
	return Rect{
		MinX: min(x0, x1),
		MinY: min(y0, y1),
		MaxX: max(x0, x1),
		MaxY: max(y0, y1),
	}
}

// MapRectToQuad maps the four corners of r without reducing them to
// bounds, in the order top-left, top-right, bottom-right, bottom-left.
func (m *Matrix) MapRectToQuad(r Rect) [4]Point {
	quad := r.ToQuad()
	m.MapPoints(quad[:], quad[:])
	return quad
}

// MapRadius returns the geometric mean of the lengths of the two axis
// vectors of the given radius after mapping.
func (m *Matrix) MapRadius(radius float32) float32 {
	vec := [2]Point{{X: radius}, {Y: radius}}
	m.MapVectors(vec[:], vec[:])
	d0 := vec[0].Length()
	d1 := vec[1].Length()
	return sqrt32(d0 * d1)
}
