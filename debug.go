//go:build geomdebug

package geom

import "unsafe"

// debugEnabled turns on precondition checks in hot paths.
const debugEnabled = true

// debugCheckMapSlices panics if dst is too short for src or if the two
// slices overlap without being identical.
func debugCheckMapSlices(dst, src []Point) {
	if len(dst) < len(src) {
		panic("geom: destination shorter than source")
	}
	if len(src) == 0 {
		return
	}
	const size = unsafe.Sizeof(Point{})
	d := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	if d == s {
		return
	}
	n := uintptr(len(src)) * size
	if d < s+n && s < d+n {
		panic("geom: source and destination partially overlap")
	}
}
