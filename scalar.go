package geom

import (
	"math"

	"github.com/chewxy/math32"
)

// NearlyZero is the default tolerance used by the nearly-equal tests and
// by IsSimilarity/PreservesRightAngles callers that have no better bound.
const NearlyZero = float32(1.0 / (1 << 12))

func nearlyZero(x, tol float32) bool {
	return math32.Abs(x) <= tol
}

func nearlyEqual(x, y, tol float32) bool {
	return math32.Abs(x-y) <= tol
}

func isFinite32(x float32) bool {
	return !math32.IsInf(x, 0) && !math32.IsNaN(x)
}

func degreesToRadians(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

// sinCos returns the sine and cosine of radians, snapping results within
// NearlyZero of zero to exactly zero so quarter turns stay axis aligned.
func sinCos(radians float32) (sin, cos float32) {
	sin, cos = math32.Sincos(radians)
	if nearlyZero(sin, NearlyZero) {
		sin = 0
	}
	if nearlyZero(cos, NearlyZero) {
		cos = 0
	}
	return sin, cos
}

// muladdmul computes a*b + c*d with float64 intermediates.
func muladdmul(a, b, c, d float32) float32 {
	return float32(float64(a)*float64(b) + float64(c)*float64(d))
}

func dcross(a, b, c, d float64) float64 {
	return a*b - c*d
}

func dcrossDScale(a, b, c, d, scale float64) float32 {
	return float32(dcross(a, b, c, d) * scale)
}

func abs32(x float32) float32 {
	return math32.Abs(x)
}

func sqrt32(x float32) float32 {
	return math32.Sqrt(x)
}

func sqrt64(x float64) float64 {
	return math.Sqrt(x)
}
