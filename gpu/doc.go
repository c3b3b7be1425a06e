// Package gpu prepares geom matrices for GPU pipelines.
//
// It selects a shader Variant from a matrix classification, packs the
// coefficients into WGSL uniform layouts, describes the matching bind
// group layout entry with gputypes, and compiles the reference transform
// vertex shader to SPIR-V with naga.
//
// Usage:
//
//	m := geom.MakeRotate(30)
//	buf := gpu.AppendUniformBytes(nil, m) // 48 bytes for mat3x3<f32>
//	entry := gpu.TransformBindingLayout(0)
package gpu
