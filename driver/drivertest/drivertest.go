// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package drivertest provides a scriptable in-memory driver for tests and
// examples.
//
// The Fake records every call it receives, hands out monotonically
// increasing object IDs, and answers introspection queries from plain
// fields, so the layer above can be exercised — including its redundant-
// bind suppression and error paths — without a GPU or a window system.
package drivertest

import (
	"fmt"
	"strings"

	"github.com/tdoylend/glium/driver"
)

// Call is one recorded driver invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Fake implements driver.Driver in memory.
//
// The zero value is not usable; construct with New. Fields may be adjusted
// before (or between) calls to script driver behavior.
type Fake struct {
	// Version is the VERSION string the fake reports.
	Version string
	// Vendor and Renderer are the corresponding identity strings.
	Vendor   string
	Renderer string
	// Extensions is the extension list, reported via the indexed query.
	Extensions []string
	// Integers answers GetInteger; NUM_EXTENSIONS is answered from
	// Extensions regardless.
	Integers map[driver.Enum]int
	// Missing lists entry points HasEntryPoint denies.
	Missing map[string]bool
	// FramebufferStatus is returned by CheckFramebufferStatus.
	FramebufferStatus driver.Enum
	// QueryAvailable and QueryValue script GetQueryObject.
	QueryAvailable bool
	QueryValue     uint64

	calls  []Call
	errq   []driver.Enum
	nextID uint32
}

// New returns a fake reporting a capable desktop driver with common limits.
func New() *Fake {
	return &Fake{
		Version:  "4.5.0 drivertest",
		Vendor:   "glium",
		Renderer: "drivertest fake",
		Extensions: []string{
			"GL_ARB_buffer_storage",
			"GL_ARB_texture_storage",
			"GL_ARB_compute_shader",
			"GL_ARB_timer_query",
		},
		Integers: map[driver.Enum]int{
			driver.MAX_TEXTURE_SIZE:                   16384,
			driver.MAX_VERTEX_ATTRIBS:                 16,
			driver.MAX_COMBINED_TEXTURE_IMAGE_UNITS:   32,
			driver.MAX_COLOR_ATTACHMENTS:              8,
			driver.MAX_RENDERBUFFER_SIZE:              16384,
			driver.MAX_SHADER_STORAGE_BUFFER_BINDINGS: 8,
			driver.MAX_COMPUTE_WORK_GROUP_INVOCATIONS: 1024,
		},
		FramebufferStatus: driver.FRAMEBUFFER_COMPLETE,
		QueryAvailable:    true,
	}
}

// NewES returns a fake reporting an OpenGL ES 3.0 driver.
func NewES() *Fake {
	f := New()
	f.Version = "OpenGL ES 3.0 drivertest"
	f.Extensions = nil
	return f
}

// QueueError arranges for the next GetError call to return e. Queued
// errors are returned in order, then NO_ERROR.
func (f *Fake) QueueError(e driver.Enum) {
	f.errq = append(f.errq, e)
}

// Calls returns every recorded call in order.
func (f *Fake) Calls() []Call { return f.calls }

// CallCount returns how many times the named entry point was invoked.
func (f *Fake) CallCount(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// LastCall returns the most recent invocation of the named entry point.
func (f *Fake) LastCall(name string) (Call, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Name == name {
			return f.calls[i], true
		}
	}
	return Call{}, false
}

// ResetCalls clears the recorded call log, keeping all scripted behavior.
func (f *Fake) ResetCalls() { f.calls = nil }

func (f *Fake) record(name string, args ...any) {
	f.calls = append(f.calls, Call{Name: name, Args: args})
}

func (f *Fake) genID() uint32 {
	f.nextID++
	return f.nextID
}

// Introspection.

func (f *Fake) GetString(name driver.Enum) string {
	f.record("GetString", name)
	switch name {
	case driver.VERSION:
		return f.Version
	case driver.VENDOR:
		return f.Vendor
	case driver.RENDERER:
		return f.Renderer
	case driver.EXTENSIONS:
		// The legacy pre-3.0 form: one space-separated string.
		return strings.Join(f.Extensions, " ")
	}
	return ""
}

func (f *Fake) GetStringi(name driver.Enum, index uint32) string {
	f.record("GetStringi", name, index)
	if name == driver.EXTENSIONS && int(index) < len(f.Extensions) {
		return f.Extensions[index]
	}
	return ""
}

func (f *Fake) GetInteger(pname driver.Enum) int {
	f.record("GetInteger", pname)
	if pname == driver.NUM_EXTENSIONS {
		return len(f.Extensions)
	}
	return f.Integers[pname]
}

func (f *Fake) GetError() driver.Enum {
	if len(f.errq) == 0 {
		return driver.NO_ERROR
	}
	e := f.errq[0]
	f.errq = f.errq[1:]
	return e
}

func (f *Fake) HasEntryPoint(name string) bool {
	return !f.Missing[name]
}

// Buffers.

func (f *Fake) GenBuffer() uint32 {
	id := f.genID()
	f.record("GenBuffer", id)
	return id
}

func (f *Fake) DeleteBuffer(id uint32) { f.record("DeleteBuffer", id) }

func (f *Fake) BindBuffer(target driver.Enum, id uint32) {
	f.record("BindBuffer", target, id)
}

func (f *Fake) BindBufferBase(target driver.Enum, index uint32, id uint32) {
	f.record("BindBufferBase", target, index, id)
}

func (f *Fake) BufferData(target driver.Enum, size int, data []byte, usage driver.Enum) {
	f.record("BufferData", target, size, usage)
}

func (f *Fake) BufferStorage(target driver.Enum, size int, data []byte, flags driver.Enum) {
	f.record("BufferStorage", target, size, flags)
}

func (f *Fake) BufferSubData(target driver.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, len(data))
}

func (f *Fake) GetBufferSubData(target driver.Enum, offset int, data []byte) {
	f.record("GetBufferSubData", target, offset, len(data))
}

// Vertex arrays.

func (f *Fake) GenVertexArray() uint32 {
	id := f.genID()
	f.record("GenVertexArray", id)
	return id
}

func (f *Fake) DeleteVertexArray(id uint32) { f.record("DeleteVertexArray", id) }

func (f *Fake) BindVertexArray(id uint32) { f.record("BindVertexArray", id) }

func (f *Fake) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *Fake) VertexAttribPointer(index uint32, size int, typ driver.Enum, normalized bool, stride int, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (f *Fake) VertexAttribIPointer(index uint32, size int, typ driver.Enum, stride int, offset int) {
	f.record("VertexAttribIPointer", index, size, typ, stride, offset)
}

// Textures and samplers.

func (f *Fake) GenTexture() uint32 {
	id := f.genID()
	f.record("GenTexture", id)
	return id
}

func (f *Fake) DeleteTexture(id uint32) { f.record("DeleteTexture", id) }

func (f *Fake) ActiveTexture(unit int) { f.record("ActiveTexture", unit) }

func (f *Fake) BindTexture(target driver.Enum, id uint32) {
	f.record("BindTexture", target, id)
}

func (f *Fake) TexStorage2D(target driver.Enum, levels int, internalFormat driver.Enum, width, height int) {
	f.record("TexStorage2D", target, levels, internalFormat, width, height)
}

func (f *Fake) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, typ driver.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, typ)
}

func (f *Fake) TexSubImage2D(target driver.Enum, level int, x, y, width, height int, format, typ driver.Enum, data []byte) {
	f.record("TexSubImage2D", target, level, x, y, width, height, format, typ)
}

func (f *Fake) TexParameteri(target, pname driver.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Fake) GenSampler() uint32 {
	id := f.genID()
	f.record("GenSampler", id)
	return id
}

func (f *Fake) DeleteSampler(id uint32) { f.record("DeleteSampler", id) }

func (f *Fake) BindSampler(unit int, id uint32) {
	f.record("BindSampler", unit, id)
}

func (f *Fake) SamplerParameteri(id uint32, pname driver.Enum, param int) {
	f.record("SamplerParameteri", id, pname, param)
}

// Programs and uniforms.

func (f *Fake) DeleteProgram(id uint32) { f.record("DeleteProgram", id) }

func (f *Fake) UseProgram(id uint32) { f.record("UseProgram", id) }

func (f *Fake) Uniform1f(location int, v float32) { f.record("Uniform1f", location, v) }

func (f *Fake) Uniform2f(location int, v0, v1 float32) {
	f.record("Uniform2f", location, v0, v1)
}

func (f *Fake) Uniform3f(location int, v0, v1, v2 float32) {
	f.record("Uniform3f", location, v0, v1, v2)
}

func (f *Fake) Uniform4f(location int, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", location, v0, v1, v2, v3)
}

func (f *Fake) Uniform1i(location int, v int32) { f.record("Uniform1i", location, v) }

func (f *Fake) UniformMatrix4fv(location int, transpose bool, v [16]float32) {
	f.record("UniformMatrix4fv", location, transpose)
}

// Framebuffers and renderbuffers.

func (f *Fake) GenFramebuffer() uint32 {
	id := f.genID()
	f.record("GenFramebuffer", id)
	return id
}

func (f *Fake) DeleteFramebuffer(id uint32) { f.record("DeleteFramebuffer", id) }

func (f *Fake) BindFramebuffer(target driver.Enum, id uint32) {
	f.record("BindFramebuffer", target, id)
}

func (f *Fake) FramebufferTexture2D(target, attachment, texTarget driver.Enum, tex uint32, level int) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, tex, level)
}

func (f *Fake) FramebufferRenderbuffer(target, attachment driver.Enum, rb uint32) {
	f.record("FramebufferRenderbuffer", target, attachment, rb)
}

func (f *Fake) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	f.record("CheckFramebufferStatus", target)
	return f.FramebufferStatus
}

func (f *Fake) GenRenderbuffer() uint32 {
	id := f.genID()
	f.record("GenRenderbuffer", id)
	return id
}

func (f *Fake) DeleteRenderbuffer(id uint32) { f.record("DeleteRenderbuffer", id) }

func (f *Fake) BindRenderbuffer(id uint32) { f.record("BindRenderbuffer", id) }

func (f *Fake) RenderbufferStorage(internalFormat driver.Enum, width, height int) {
	f.record("RenderbufferStorage", internalFormat, width, height)
}

// Queries.

func (f *Fake) GenQuery() uint32 {
	id := f.genID()
	f.record("GenQuery", id)
	return id
}

func (f *Fake) DeleteQuery(id uint32) { f.record("DeleteQuery", id) }

func (f *Fake) BeginQuery(target driver.Enum, id uint32) {
	f.record("BeginQuery", target, id)
}

func (f *Fake) EndQuery(target driver.Enum) { f.record("EndQuery", target) }

func (f *Fake) GetQueryObject(id uint32, pname driver.Enum) uint64 {
	f.record("GetQueryObject", id, pname)
	if pname == driver.QUERY_RESULT_AVAILABLE {
		if f.QueryAvailable {
			return 1
		}
		return 0
	}
	return f.QueryValue
}

// Fixed-function state.

func (f *Fake) Enable(cap driver.Enum) { f.record("Enable", cap) }

func (f *Fake) Disable(cap driver.Enum) { f.record("Disable", cap) }

func (f *Fake) BlendFunc(src, dst driver.Enum) { f.record("BlendFunc", src, dst) }

func (f *Fake) DepthFunc(fn driver.Enum) { f.record("DepthFunc", fn) }

func (f *Fake) Viewport(x, y, width, height int) {
	f.record("Viewport", x, y, width, height)
}

func (f *Fake) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }

func (f *Fake) ClearDepth(d float64) { f.record("ClearDepth", d) }

func (f *Fake) ClearStencil(s int) { f.record("ClearStencil", s) }

func (f *Fake) Clear(mask driver.Enum) { f.record("Clear", mask) }

// Draws and dispatch.

func (f *Fake) DrawArrays(mode driver.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *Fake) DrawElements(mode driver.Enum, count int, typ driver.Enum, offset int) {
	f.record("DrawElements", mode, count, typ, offset)
}

func (f *Fake) DispatchCompute(x, y, z uint32) {
	f.record("DispatchCompute", x, y, z)
}

func (f *Fake) MemoryBarrier(bits driver.Enum) { f.record("MemoryBarrier", bits) }

var _ driver.Driver = (*Fake)(nil)
