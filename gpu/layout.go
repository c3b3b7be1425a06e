package gpu

import "github.com/gogpu/gputypes"

// TransformBindingLayout returns the bind group layout entry for a
// transform uniform at the given binding: a uniform buffer of at least
// UniformSize bytes visible to the vertex stage.
func TransformBindingLayout(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: UniformSize,
		},
	}
}
