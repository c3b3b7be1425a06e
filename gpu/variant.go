package gpu

import "github.com/gogpu/geom"

// Variant identifies the cheapest vertex transform able to apply a matrix.
type Variant uint8

const (
	// VariantIdentity needs no transform at all.
	VariantIdentity Variant = iota
	// VariantTranslate adds a constant offset.
	VariantTranslate
	// VariantScaleTranslate scales each axis and adds an offset.
	VariantScaleTranslate
	// VariantAffine applies a full 2x3 affine transform.
	VariantAffine
	// VariantPerspective applies the 3x3 matrix and divides by w.
	VariantPerspective
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantIdentity:
		return "Identity"
	case VariantTranslate:
		return "Translate"
	case VariantScaleTranslate:
		return "ScaleTranslate"
	case VariantAffine:
		return "Affine"
	case VariantPerspective:
		return "Perspective"
	default:
		return "Unknown"
	}
}

// VariantOf picks the Variant for m from its type mask.
func VariantOf(m geom.Matrix) Variant {
	t := m.Type()
	switch {
	case t&geom.TypePerspective != 0:
		return VariantPerspective
	case t&geom.TypeAffine != 0:
		return VariantAffine
	case t&geom.TypeScale != 0:
		return VariantScaleTranslate
	case t&geom.TypeTranslate != 0:
		return VariantTranslate
	default:
		return VariantIdentity
	}
}
