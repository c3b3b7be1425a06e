package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/geom"
)

// UniformSize is the byte size of a WGSL mat3x3<f32>: three columns, each
// padded to 16 bytes.
const UniformSize = 48

// PackUniform returns m laid out as a WGSL mat3x3<f32>: column-major,
// each column a vec3 followed by one padding float.
func PackUniform(m geom.Matrix) [12]float32 {
	a := m.Get9()
	return [12]float32{
		a[geom.MScaleX], a[geom.MSkewY], a[geom.MPersp0], 0,
		a[geom.MSkewX], a[geom.MScaleY], a[geom.MPersp1], 0,
		a[geom.MTransX], a[geom.MTransY], a[geom.MPersp2], 0,
	}
}

// AppendUniformBytes appends the little-endian bytes of PackUniform(m)
// to dst, ready for a uniform buffer write.
func AppendUniformBytes(dst []byte, m geom.Matrix) []byte {
	for _, v := range PackUniform(m) {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// PackAffine returns the two rows of the affine part of m as two vec4s,
// (ScaleX, SkewX, TransX, 0) and (SkewY, ScaleY, TransY, 0). It returns
// false if m has perspective.
func PackAffine(m geom.Matrix) ([8]float32, bool) {
	if m.HasPerspective() {
		return [8]float32{}, false
	}
	a := m.Get9()
	return [8]float32{
		a[geom.MScaleX], a[geom.MSkewX], a[geom.MTransX], 0,
		a[geom.MSkewY], a[geom.MScaleY], a[geom.MTransY], 0,
	}, true
}
