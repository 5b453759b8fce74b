// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package registry

import "github.com/gogpu/gputypes"

// Kind enumerates the resource kinds the layer tracks.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBuffer
	KindTexture
	KindProgram
	KindFramebuffer
	KindVertexLayout
	KindRenderbuffer
	KindSampler
	KindQuery
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	case KindProgram:
		return "program"
	case KindFramebuffer:
		return "framebuffer"
	case KindVertexLayout:
		return "vertex-layout"
	case KindRenderbuffer:
		return "renderbuffer"
	case KindSampler:
		return "sampler"
	case KindQuery:
		return "query"
	}
	return "invalid"
}

// Record describes one live (or revoked) driver-side resource.
//
// Kind, DriverID, and Meta are immutable for the record's lifetime, which
// is what makes shared read access from multiple draw requests safe. Only
// the validity flag ever changes, and only on the driving goroutine.
type Record struct {
	Kind     Kind
	DriverID uint32
	Meta     Metadata

	valid bool
}

// Valid reports whether the resource may still be referenced. It flips to
// false when the owning handle is destroyed and never flips back.
func (r *Record) Valid() bool { return r.valid }

// Metadata is the per-kind immutable description of a resource. It is
// stored exactly as supplied at creation and returned unchanged by lookups.
type Metadata interface {
	ResourceKind() Kind
}

// BufferUsage is the application's update-frequency hint for a buffer.
type BufferUsage uint8

const (
	UsageStatic BufferUsage = iota
	UsageDynamic
	UsageStream
)

func (u BufferUsage) String() string {
	switch u {
	case UsageDynamic:
		return "dynamic"
	case UsageStream:
		return "stream"
	}
	return "static"
}

// BufferMeta describes a buffer object.
type BufferMeta struct {
	// Size is the byte length of the buffer's data store.
	Size int
	// Usage is the update-frequency hint the store was allocated with.
	Usage BufferUsage
	// Immutable marks a store allocated through immutable buffer storage;
	// such a store can never be reallocated, only written in place.
	Immutable bool
}

func (BufferMeta) ResourceKind() Kind { return KindBuffer }

// TextureMeta describes a 2D texture.
type TextureMeta struct {
	Width     int
	Height    int
	Format    gputypes.TextureFormat
	MipLevels int
}

func (TextureMeta) ResourceKind() Kind { return KindTexture }

// RenderbufferMeta describes a renderbuffer.
type RenderbufferMeta struct {
	Width  int
	Height int
	Format gputypes.TextureFormat
}

func (RenderbufferMeta) ResourceKind() Kind { return KindRenderbuffer }

// VertexAttribute declares one attribute within a vertex layout.
type VertexAttribute struct {
	// Location is the shader attribute location the data feeds.
	Location int
	// Format is the component type and count of the stored data.
	Format gputypes.VertexFormat
	// Offset is the attribute's byte offset within one vertex.
	Offset int
	// Buffer indexes the draw request's vertex sources; attributes from
	// the same layout may pull from different buffers.
	Buffer int
}

// VertexLayoutMeta describes how vertex data is laid out in memory.
type VertexLayoutMeta struct {
	// Stride is the byte distance between consecutive vertices. Zero
	// means tightly packed (the widest attribute end defines the
	// effective stride).
	Stride     int
	Attributes []VertexAttribute
}

func (VertexLayoutMeta) ResourceKind() Kind { return KindVertexLayout }

// EffectiveStride returns the stride used for addressing: the declared
// stride, or the tight-packing extent when the stride is zero.
func (m VertexLayoutMeta) EffectiveStride(attrSize func(gputypes.VertexFormat) int) int {
	if m.Stride > 0 {
		return m.Stride
	}
	end := 0
	for _, a := range m.Attributes {
		if e := a.Offset + attrSize(a.Format); e > end {
			end = e
		}
	}
	return end
}

// ShaderType is the declared type of a program input or uniform, as
// reported by the shader collaborator's reflection.
type ShaderType uint8

const (
	TypeFloat ShaderType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeInt
	TypeMat4
	TypeSampler2D
)

func (t ShaderType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeVec2:
		return "vec2"
	case TypeVec3:
		return "vec3"
	case TypeVec4:
		return "vec4"
	case TypeInt:
		return "int"
	case TypeMat4:
		return "mat4"
	case TypeSampler2D:
		return "sampler2D"
	}
	return "unknown"
}

// ShaderAttribute is one reflected vertex input of a linked program.
type ShaderAttribute struct {
	Name     string
	Location int
	Type     ShaderType
}

// ShaderUniform is one reflected uniform of a linked program.
type ShaderUniform struct {
	Name     string
	Location int
	Type     ShaderType
}

// ProgramMeta is the reflected interface of a linked program. Reflection
// is produced by the shader collaborator and consumed here as an opaque,
// already-validated description.
type ProgramMeta struct {
	Attributes []ShaderAttribute
	Uniforms   []ShaderUniform
	// Compute marks a program usable only via dispatch, never draw.
	Compute bool
}

func (ProgramMeta) ResourceKind() Kind { return KindProgram }

// Uniform returns the reflected uniform with the given name.
func (m ProgramMeta) Uniform(name string) (ShaderUniform, bool) {
	for _, u := range m.Uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return ShaderUniform{}, false
}

// FramebufferMeta records a framebuffer's attachments. Attachment handles
// reference textures or renderbuffers in the same registry.
type FramebufferMeta struct {
	Width  int
	Height int
	Color  []Handle
	// Depth is the depth or combined depth/stencil attachment, or zero.
	Depth Handle
}

func (FramebufferMeta) ResourceKind() Kind { return KindFramebuffer }

// SamplerMeta describes a sampler object.
type SamplerMeta struct {
	MinFilter gputypes.FilterMode
	MagFilter gputypes.FilterMode
	WrapU     gputypes.AddressMode
	WrapV     gputypes.AddressMode
}

func (SamplerMeta) ResourceKind() Kind { return KindSampler }

// QueryKind selects what a query object counts.
type QueryKind uint8

const (
	QuerySamplesPassed QueryKind = iota
	QueryAnySamplesPassed
	QueryTimeElapsed
)

func (k QueryKind) String() string {
	switch k {
	case QueryAnySamplesPassed:
		return "any-samples-passed"
	case QueryTimeElapsed:
		return "time-elapsed"
	}
	return "samples-passed"
}

// QueryMeta describes a query object.
type QueryMeta struct {
	Kind QueryKind
}

func (QueryMeta) ResourceKind() Kind { return KindQuery }
