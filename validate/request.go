// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package validate

import (
	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

// IndexSource selects the index buffer for an indexed draw.
type IndexSource struct {
	Buffer registry.Handle
	Format gputypes.IndexFormat
	// Offset is the byte offset of the first index within the buffer.
	Offset int
}

// TextureBinding assigns a texture (and optionally a sampler) to a unit
// for the duration of a draw.
type TextureBinding struct {
	Unit    int
	Texture registry.Handle
	// Sampler overrides the texture's own sampling state when nonzero.
	Sampler registry.Handle
}

// UniformBinding assigns a value to a named uniform of the program.
type UniformBinding struct {
	Name  string
	Value UniformValue
}

// UniformValue is a typed uniform payload. Construct with the Uniform*
// functions; the zero value has type float with value 0.
type UniformValue struct {
	typ  registry.ShaderType
	data [16]float32
	i    int32
}

// Type returns the shader type the value satisfies.
func (v UniformValue) Type() registry.ShaderType { return v.typ }

// Floats returns the float payload (valid for float, vector, and matrix
// values; the leading Type-dependent count of elements is meaningful).
func (v UniformValue) Floats() [16]float32 { return v.data }

// Int returns the integer payload (valid for int and sampler values; for
// samplers it is the texture unit).
func (v UniformValue) Int() int32 { return v.i }

// UniformFloat wraps a scalar float uniform value.
func UniformFloat(v float32) UniformValue {
	return UniformValue{typ: registry.TypeFloat, data: [16]float32{v}}
}

// UniformVec2 wraps a vec2 uniform value.
func UniformVec2(x, y float32) UniformValue {
	return UniformValue{typ: registry.TypeVec2, data: [16]float32{x, y}}
}

// UniformVec3 wraps a vec3 uniform value.
func UniformVec3(x, y, z float32) UniformValue {
	return UniformValue{typ: registry.TypeVec3, data: [16]float32{x, y, z}}
}

// UniformVec4 wraps a vec4 uniform value.
func UniformVec4(x, y, z, w float32) UniformValue {
	return UniformValue{typ: registry.TypeVec4, data: [16]float32{x, y, z, w}}
}

// UniformInt wraps a scalar int uniform value.
func UniformInt(v int32) UniformValue {
	return UniformValue{typ: registry.TypeInt, i: v}
}

// UniformMat4 wraps a column-major mat4 uniform value.
func UniformMat4(m [16]float32) UniformValue {
	return UniformValue{typ: registry.TypeMat4, data: m}
}

// UniformSampler points a sampler uniform at a texture unit. The unit must
// carry a texture binding in the same request.
func UniformSampler(unit int) UniformValue {
	return UniformValue{typ: registry.TypeSampler2D, i: int32(unit)}
}

// BlendState enables blending with the given factor pair.
type BlendState struct {
	Src gputypes.BlendFactor
	Dst gputypes.BlendFactor
}

// DepthState enables the depth test with the given comparison.
type DepthState struct {
	Compare gputypes.CompareFunction
}

// RenderState carries the per-draw fixed-function overrides. Nil Blend or
// Depth means the feature is switched off for the draw; a nil Viewport
// leaves the viewport untouched.
type RenderState struct {
	Blend    *BlendState
	Depth    *DepthState
	Viewport *state.Rect
}

// DrawRequest is an ephemeral description of one draw. It references
// resources by handle only; it is validated and either executed or
// rejected within a single call, never persisted.
type DrawRequest struct {
	Program registry.Handle
	Layout  registry.Handle
	// Buffers are the vertex sources; layout attributes select one by
	// index.
	Buffers  []registry.Handle
	Index    *IndexSource
	Textures []TextureBinding
	Uniforms []UniformBinding
	// Framebuffer is the render target; zero means the default
	// framebuffer.
	Framebuffer registry.Handle
	Mode        driver.Primitive
	// First and Count select the vertex range (non-indexed) or the
	// index range (indexed).
	First int
	Count int
	State RenderState
}

// DispatchRequest is an ephemeral description of one compute dispatch.
type DispatchRequest struct {
	Program registry.Handle
	Groups  [3]uint32
	// StorageBuffers bind buffers to indexed shader-storage slots.
	StorageBuffers []StorageBinding
	Uniforms       []UniformBinding
}

// StorageBinding binds a buffer to an indexed shader-storage slot.
type StorageBinding struct {
	Index  int
	Buffer registry.Handle
}

// UniformUpload is a resolved uniform write: reflected location plus the
// validated value.
type UniformUpload struct {
	Location int
	Value    UniformValue
}

// DrawCall is the final draw parameters after validation.
type DrawCall struct {
	Mode    driver.Enum
	First   int
	Count   int
	Indexed bool
	// IndexType and IndexOffset apply only to indexed calls.
	IndexType   driver.Enum
	IndexOffset int
}

// PreparedDraw is the minimal set of driver work one validated draw needs:
// the state transitions not already reflected in the cache, the uniform
// uploads, and the draw call itself.
type PreparedDraw struct {
	Transitions []state.Transition
	Uniforms    []UniformUpload
	Call        DrawCall
	// Suppressed counts binds the cache made unnecessary.
	Suppressed int
}

// PreparedDispatch is the dispatch counterpart of PreparedDraw.
type PreparedDispatch struct {
	Transitions []state.Transition
	Uniforms    []UniformUpload
	Groups      [3]uint32
	// Suppressed counts binds the cache made unnecessary.
	Suppressed int
}
