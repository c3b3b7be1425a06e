// Package geom provides a 3x3 matrix for transforming 2D points, vectors
// and rectangles, with affine and perspective support.
//
// # Overview
//
// A Matrix holds nine float32 coefficients in row-major order plus a
// lazily computed classification of what it does (see TypeMask). Mapping
// routines dispatch on that classification, so translating a million
// points through a pure translation costs two additions per point rather
// than a full 3x3 multiply.
//
//	m := geom.MakeRotate(90)
//	m.PostTranslate(10, 0)
//	p := m.MapXY(1, 0) // (10, 1)
//
// # Composition
//
// Pre* methods apply the new transform before the existing one when
// mapping; Post* methods apply it after:
//
//	m.PreScale(2, 2)   // m = m * S
//	m.PostScale(2, 2)  // m = S * m
//
// # Coordinate System
//
// The y axis points down. Positive rotation angles are in degrees and turn
// the x axis toward the y axis (clockwise on screen).
//
// # Concurrency
//
// Query methods may write the cached classification, so a Matrix shared
// between goroutines must either be read only after calling Type once, or
// be guarded by the caller.
//
// # Debugging
//
// Building with -tags geomdebug enables argument checks that panic on
// misuse, such as MapPoints with partially overlapping slices.
//
// # Sub-packages
//
//   - gpu: packs matrices into WGSL uniform layouts.
//   - pdfmatrix: converts to and from PDF content-stream matrices.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
