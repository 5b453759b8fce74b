// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package driver

// Enum is a raw driver enumerant (a GLenum).
type Enum uint32

// Driver is the entry-point table of a bind-then-use graphics driver.
//
// Implementations must be callable from the single goroutine that owns the
// underlying context; they are not required to tolerate concurrent use.
// Every method maps one-to-one onto a driver entry point and performs no
// bookkeeping of its own.
type Driver interface {
	// Introspection.

	// GetString returns a driver identity string (VERSION, VENDOR,
	// RENDERER, or EXTENSIONS on drivers that still report the
	// space-separated form).
	GetString(name Enum) string
	// GetStringi returns one element of an indexed string list
	// (EXTENSIONS on GL 3.0+ / ES 3.0+).
	GetStringi(name Enum, index uint32) string
	// GetInteger returns a scalar integer parameter (limits, counts).
	GetInteger(pname Enum) int
	// GetError pops the oldest pending driver error, or NO_ERROR.
	GetError() Enum
	// HasEntryPoint reports whether the named entry point resolved when
	// the driver was loaded. Fakes report every entry point present.
	HasEntryPoint(name string) bool

	// Buffers.

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BindBufferBase(target Enum, index uint32, id uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferStorage(target Enum, size int, data []byte, flags Enum)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferSubData(target Enum, offset int, data []byte)

	// Vertex arrays.

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride int, offset int)
	VertexAttribIPointer(index uint32, size int, typ Enum, stride int, offset int)

	// Textures and samplers.

	GenTexture() uint32
	DeleteTexture(id uint32)
	// ActiveTexture selects texture unit `unit` (the driver call takes
	// TEXTURE0+unit; implementations apply the offset).
	ActiveTexture(unit int)
	BindTexture(target Enum, id uint32)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int)

	GenSampler() uint32
	DeleteSampler(id uint32)
	BindSampler(unit int, id uint32)
	SamplerParameteri(id uint32, pname Enum, param int)

	// Programs and uniforms. Program objects are linked by an external
	// collaborator; the layer only deletes, activates, and feeds them.

	DeleteProgram(id uint32)
	UseProgram(id uint32)
	Uniform1f(location int, v float32)
	Uniform2f(location int, v0, v1 float32)
	Uniform3f(location int, v0, v1, v2 float32)
	Uniform4f(location int, v0, v1, v2, v3 float32)
	Uniform1i(location int, v int32)
	UniformMatrix4fv(location int, transpose bool, v [16]float32)

	// Framebuffers and renderbuffers.

	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex uint32, level int)
	FramebufferRenderbuffer(target, attachment Enum, rb uint32)
	CheckFramebufferStatus(target Enum) Enum

	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	BindRenderbuffer(id uint32)
	RenderbufferStorage(internalFormat Enum, width, height int)

	// Queries.

	GenQuery() uint32
	DeleteQuery(id uint32)
	BeginQuery(target Enum, id uint32)
	EndQuery(target Enum)
	GetQueryObject(id uint32, pname Enum) uint64

	// Fixed-function state.

	Enable(cap Enum)
	Disable(cap Enum)
	BlendFunc(src, dst Enum)
	DepthFunc(fn Enum)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float64)
	ClearStencil(s int)
	Clear(mask Enum)

	// Draws and dispatch.

	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, offset int)
	DispatchCompute(x, y, z uint32)
	MemoryBarrier(bits Enum)
}
