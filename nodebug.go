//go:build !geomdebug

package geom

const debugEnabled = false

func debugCheckMapSlices(_, _ []Point) {}
