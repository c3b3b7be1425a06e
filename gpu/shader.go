package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/geom"
	"github.com/gogpu/naga"
)

//go:embed shaders/transform.wgsl
var transformShaderSource string

// TransformShaderSource returns the WGSL vertex shader that applies a
// transform uniform laid out by PackUniform to a 2D position.
func TransformShaderSource() string {
	return transformShaderSource
}

// CompileTransformShader compiles TransformShaderSource to SPIR-V words.
func CompileTransformShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(transformShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile transform shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("gpu: compile transform shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	geom.Logger().Debug("gpu: compiled transform shader", "words", len(spirv))
	return spirv, nil
}
