package geom

import "errors"

var (
	// ErrShortBuffer is returned when a buffer is too small to hold a
	// serialized Matrix.
	ErrShortBuffer = errors.New("geom: buffer too short for matrix")

	// ErrTrailingData is returned when an encoded Matrix is followed by
	// extra bytes.
	ErrTrailingData = errors.New("geom: trailing data after matrix")

	// ErrNonFinite is returned when decoded coefficients are not all finite.
	ErrNonFinite = errors.New("geom: matrix has non-finite coefficients")
)
