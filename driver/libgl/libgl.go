// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package libgl loads the system OpenGL library and exposes it as a
// driver.Driver. Entry points are resolved at load time; the ones the
// platform lacks are reported absent through HasEntryPoint so the
// capability probe can gate the features that need them.
//
// A GL must only be used from the OS thread that owns the current native
// context. Callers are expected to have made a context current before
// Load.
package libgl

import (
	"fmt"
	"unsafe"

	"github.com/tdoylend/glium/driver"
)

// GL is a loaded OpenGL entry-point table.
type GL struct {
	missing map[string]bool

	getString        func(uint32) string
	getStringi       func(uint32, uint32) string
	getIntegerv      func(uint32, *int32)
	getError         func() uint32
	genBuffers       func(int32, *uint32)
	deleteBuffers    func(int32, *uint32)
	bindBuffer       func(uint32, uint32)
	bindBufferBase   func(uint32, uint32, uint32)
	bufferData       func(uint32, uintptr, unsafe.Pointer, uint32)
	bufferStorage    func(uint32, uintptr, unsafe.Pointer, uint32)
	bufferSubData    func(uint32, uintptr, uintptr, unsafe.Pointer)
	getBufferSubData func(uint32, uintptr, uintptr, unsafe.Pointer)

	genVertexArrays         func(int32, *uint32)
	deleteVertexArrays      func(int32, *uint32)
	bindVertexArray         func(uint32)
	enableVertexAttribArray func(uint32)
	vertexAttribPointer     func(uint32, int32, uint32, bool, int32, uintptr)
	vertexAttribIPointer    func(uint32, int32, uint32, int32, uintptr)

	genTextures    func(int32, *uint32)
	deleteTextures func(int32, *uint32)
	activeTexture  func(uint32)
	bindTexture    func(uint32, uint32)
	texStorage2D   func(uint32, int32, uint32, int32, int32)
	texImage2D     func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	texSubImage2D  func(uint32, int32, int32, int32, int32, int32, uint32, uint32, unsafe.Pointer)
	texParameteri  func(uint32, uint32, int32)

	genSamplers       func(int32, *uint32)
	deleteSamplers    func(int32, *uint32)
	bindSampler       func(uint32, uint32)
	samplerParameteri func(uint32, uint32, int32)

	deleteProgram    func(uint32)
	useProgram       func(uint32)
	uniform1f        func(int32, float32)
	uniform2f        func(int32, float32, float32)
	uniform3f        func(int32, float32, float32, float32)
	uniform4f        func(int32, float32, float32, float32, float32)
	uniform1i        func(int32, int32)
	uniformMatrix4fv func(int32, int32, bool, *float32)

	genFramebuffers         func(int32, *uint32)
	deleteFramebuffers      func(int32, *uint32)
	bindFramebuffer         func(uint32, uint32)
	framebufferTexture2D    func(uint32, uint32, uint32, uint32, int32)
	framebufferRenderbuffer func(uint32, uint32, uint32, uint32)
	checkFramebufferStatus  func(uint32) uint32

	genRenderbuffers    func(int32, *uint32)
	deleteRenderbuffers func(int32, *uint32)
	bindRenderbuffer    func(uint32, uint32)
	renderbufferStorage func(uint32, uint32, int32, int32)

	genQueries          func(int32, *uint32)
	deleteQueries       func(int32, *uint32)
	beginQuery          func(uint32, uint32)
	endQuery            func(uint32)
	getQueryObjectui64v func(uint32, uint32, *uint64)
	getQueryObjectuiv   func(uint32, uint32, *uint32)

	enable       func(uint32)
	disable      func(uint32)
	blendFunc    func(uint32, uint32)
	depthFunc    func(uint32)
	viewport     func(int32, int32, int32, int32)
	clearColor   func(float32, float32, float32, float32)
	clearDepth   func(float64)
	clearDepthf  func(float32)
	clearStencil func(int32)
	clear        func(uint32)

	drawArrays      func(uint32, int32, int32)
	drawElements    func(uint32, int32, uint32, uintptr)
	dispatchCompute func(uint32, uint32, uint32)
	memoryBarrier   func(uint32)
}

var _ driver.Driver = (*GL)(nil)

// bind resolves every entry point the Driver interface names. Optional
// entry points that fail to resolve leave their slot nil and are recorded
// in g.missing; the mandatory baseline is checked by Load.
func (g *GL) bind(resolve func(fptr any, name string) bool) {
	g.missing = make(map[string]bool)
	reg := func(fptr any, name string) {
		if !resolve(fptr, name) {
			g.missing[name] = true
		}
	}

	reg(&g.getString, "glGetString")
	reg(&g.getStringi, "glGetStringi")
	reg(&g.getIntegerv, "glGetIntegerv")
	reg(&g.getError, "glGetError")

	reg(&g.genBuffers, "glGenBuffers")
	reg(&g.deleteBuffers, "glDeleteBuffers")
	reg(&g.bindBuffer, "glBindBuffer")
	reg(&g.bindBufferBase, "glBindBufferBase")
	reg(&g.bufferData, "glBufferData")
	reg(&g.bufferStorage, "glBufferStorage")
	reg(&g.bufferSubData, "glBufferSubData")
	reg(&g.getBufferSubData, "glGetBufferSubData")

	reg(&g.genVertexArrays, "glGenVertexArrays")
	reg(&g.deleteVertexArrays, "glDeleteVertexArrays")
	reg(&g.bindVertexArray, "glBindVertexArray")
	reg(&g.enableVertexAttribArray, "glEnableVertexAttribArray")
	reg(&g.vertexAttribPointer, "glVertexAttribPointer")
	reg(&g.vertexAttribIPointer, "glVertexAttribIPointer")

	reg(&g.genTextures, "glGenTextures")
	reg(&g.deleteTextures, "glDeleteTextures")
	reg(&g.activeTexture, "glActiveTexture")
	reg(&g.bindTexture, "glBindTexture")
	reg(&g.texStorage2D, "glTexStorage2D")
	reg(&g.texImage2D, "glTexImage2D")
	reg(&g.texSubImage2D, "glTexSubImage2D")
	reg(&g.texParameteri, "glTexParameteri")

	reg(&g.genSamplers, "glGenSamplers")
	reg(&g.deleteSamplers, "glDeleteSamplers")
	reg(&g.bindSampler, "glBindSampler")
	reg(&g.samplerParameteri, "glSamplerParameteri")

	reg(&g.deleteProgram, "glDeleteProgram")
	reg(&g.useProgram, "glUseProgram")
	reg(&g.uniform1f, "glUniform1f")
	reg(&g.uniform2f, "glUniform2f")
	reg(&g.uniform3f, "glUniform3f")
	reg(&g.uniform4f, "glUniform4f")
	reg(&g.uniform1i, "glUniform1i")
	reg(&g.uniformMatrix4fv, "glUniformMatrix4fv")

	reg(&g.genFramebuffers, "glGenFramebuffers")
	reg(&g.deleteFramebuffers, "glDeleteFramebuffers")
	reg(&g.bindFramebuffer, "glBindFramebuffer")
	reg(&g.framebufferTexture2D, "glFramebufferTexture2D")
	reg(&g.framebufferRenderbuffer, "glFramebufferRenderbuffer")
	reg(&g.checkFramebufferStatus, "glCheckFramebufferStatus")

	reg(&g.genRenderbuffers, "glGenRenderbuffers")
	reg(&g.deleteRenderbuffers, "glDeleteRenderbuffers")
	reg(&g.bindRenderbuffer, "glBindRenderbuffer")
	reg(&g.renderbufferStorage, "glRenderbufferStorage")

	reg(&g.genQueries, "glGenQueries")
	reg(&g.deleteQueries, "glDeleteQueries")
	reg(&g.beginQuery, "glBeginQuery")
	reg(&g.endQuery, "glEndQuery")
	reg(&g.getQueryObjectui64v, "glGetQueryObjectui64v")
	reg(&g.getQueryObjectuiv, "glGetQueryObjectuiv")

	reg(&g.enable, "glEnable")
	reg(&g.disable, "glDisable")
	reg(&g.blendFunc, "glBlendFunc")
	reg(&g.depthFunc, "glDepthFunc")
	reg(&g.viewport, "glViewport")
	reg(&g.clearColor, "glClearColor")
	reg(&g.clearDepth, "glClearDepth")
	reg(&g.clearDepthf, "glClearDepthf")
	reg(&g.clearStencil, "glClearStencil")
	reg(&g.clear, "glClear")

	reg(&g.drawArrays, "glDrawArrays")
	reg(&g.drawElements, "glDrawElements")
	reg(&g.dispatchCompute, "glDispatchCompute")
	reg(&g.memoryBarrier, "glMemoryBarrier")
}

// baseline lists the entry points without which the layer cannot run at
// all. Everything else degrades through the capability table.
var baseline = []string{
	"glGetString", "glGetIntegerv", "glGetError",
	"glGenBuffers", "glDeleteBuffers", "glBindBuffer", "glBufferData",
	"glBufferSubData",
	"glGenTextures", "glDeleteTextures", "glActiveTexture", "glBindTexture",
	"glTexImage2D", "glTexSubImage2D", "glTexParameteri",
	"glDeleteProgram", "glUseProgram",
	"glGenFramebuffers", "glDeleteFramebuffers", "glBindFramebuffer",
	"glEnable", "glDisable", "glBlendFunc", "glDepthFunc", "glViewport",
	"glClearColor", "glClearStencil", "glClear",
	"glDrawArrays", "glDrawElements",
}

// checkBaseline verifies the non-negotiable entry points resolved.
func checkBaseline(g *GL) error {
	for _, name := range baseline {
		if g.missing[name] {
			return fmt.Errorf("libgl: required entry point %s is missing", name)
		}
	}
	if g.missing["glClearDepth"] && g.missing["glClearDepthf"] {
		return fmt.Errorf("libgl: neither glClearDepth nor glClearDepthf resolved")
	}
	return nil
}

func dataPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (g *GL) HasEntryPoint(name string) bool { return !g.missing[name] }

func (g *GL) GetString(name driver.Enum) string { return g.getString(uint32(name)) }

func (g *GL) GetStringi(name driver.Enum, index uint32) string {
	if g.getStringi == nil {
		return ""
	}
	return g.getStringi(uint32(name), index)
}

func (g *GL) GetInteger(pname driver.Enum) int {
	var v int32
	g.getIntegerv(uint32(pname), &v)
	return int(v)
}

func (g *GL) GetError() driver.Enum { return driver.Enum(g.getError()) }

func (g *GL) GenBuffer() uint32 {
	var id uint32
	g.genBuffers(1, &id)
	return id
}

func (g *GL) DeleteBuffer(id uint32) { g.deleteBuffers(1, &id) }

func (g *GL) BindBuffer(target driver.Enum, id uint32) { g.bindBuffer(uint32(target), id) }

func (g *GL) BindBufferBase(target driver.Enum, index uint32, id uint32) {
	g.bindBufferBase(uint32(target), index, id)
}

func (g *GL) BufferData(target driver.Enum, size int, data []byte, usage driver.Enum) {
	g.bufferData(uint32(target), uintptr(size), dataPtr(data), uint32(usage))
}

func (g *GL) BufferStorage(target driver.Enum, size int, data []byte, flags driver.Enum) {
	g.bufferStorage(uint32(target), uintptr(size), dataPtr(data), uint32(flags))
}

func (g *GL) BufferSubData(target driver.Enum, offset int, data []byte) {
	g.bufferSubData(uint32(target), uintptr(offset), uintptr(len(data)), dataPtr(data))
}

func (g *GL) GetBufferSubData(target driver.Enum, offset int, data []byte) {
	g.getBufferSubData(uint32(target), uintptr(offset), uintptr(len(data)), dataPtr(data))
}

func (g *GL) GenVertexArray() uint32 {
	var id uint32
	g.genVertexArrays(1, &id)
	return id
}

func (g *GL) DeleteVertexArray(id uint32) { g.deleteVertexArrays(1, &id) }

func (g *GL) BindVertexArray(id uint32) { g.bindVertexArray(id) }

func (g *GL) EnableVertexAttribArray(index uint32) { g.enableVertexAttribArray(index) }

func (g *GL) VertexAttribPointer(index uint32, size int, typ driver.Enum, normalized bool, stride int, offset int) {
	g.vertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), uintptr(offset))
}

func (g *GL) VertexAttribIPointer(index uint32, size int, typ driver.Enum, stride int, offset int) {
	g.vertexAttribIPointer(index, int32(size), uint32(typ), int32(stride), uintptr(offset))
}

func (g *GL) GenTexture() uint32 {
	var id uint32
	g.genTextures(1, &id)
	return id
}

func (g *GL) DeleteTexture(id uint32) { g.deleteTextures(1, &id) }

func (g *GL) ActiveTexture(unit int) { g.activeTexture(uint32(driver.TEXTURE0) + uint32(unit)) }

func (g *GL) BindTexture(target driver.Enum, id uint32) { g.bindTexture(uint32(target), id) }

func (g *GL) TexStorage2D(target driver.Enum, levels int, internalFormat driver.Enum, width, height int) {
	g.texStorage2D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (g *GL) TexImage2D(target driver.Enum, level int, internalFormat driver.Enum, width, height int, format, typ driver.Enum, data []byte) {
	g.texImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(typ), dataPtr(data))
}

func (g *GL) TexSubImage2D(target driver.Enum, level int, x, y, width, height int, format, typ driver.Enum, data []byte) {
	g.texSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), dataPtr(data))
}

func (g *GL) TexParameteri(target, pname driver.Enum, param int) {
	g.texParameteri(uint32(target), uint32(pname), int32(param))
}

func (g *GL) GenSampler() uint32 {
	var id uint32
	g.genSamplers(1, &id)
	return id
}

func (g *GL) DeleteSampler(id uint32) { g.deleteSamplers(1, &id) }

func (g *GL) BindSampler(unit int, id uint32) { g.bindSampler(uint32(unit), id) }

func (g *GL) SamplerParameteri(id uint32, pname driver.Enum, param int) {
	g.samplerParameteri(id, uint32(pname), int32(param))
}

func (g *GL) DeleteProgram(id uint32) { g.deleteProgram(id) }

func (g *GL) UseProgram(id uint32) { g.useProgram(id) }

func (g *GL) Uniform1f(location int, v float32) { g.uniform1f(int32(location), v) }

func (g *GL) Uniform2f(location int, v0, v1 float32) { g.uniform2f(int32(location), v0, v1) }

func (g *GL) Uniform3f(location int, v0, v1, v2 float32) {
	g.uniform3f(int32(location), v0, v1, v2)
}

func (g *GL) Uniform4f(location int, v0, v1, v2, v3 float32) {
	g.uniform4f(int32(location), v0, v1, v2, v3)
}

func (g *GL) Uniform1i(location int, v int32) { g.uniform1i(int32(location), v) }

func (g *GL) UniformMatrix4fv(location int, transpose bool, v [16]float32) {
	g.uniformMatrix4fv(int32(location), 1, transpose, &v[0])
}

func (g *GL) GenFramebuffer() uint32 {
	var id uint32
	g.genFramebuffers(1, &id)
	return id
}

func (g *GL) DeleteFramebuffer(id uint32) { g.deleteFramebuffers(1, &id) }

func (g *GL) BindFramebuffer(target driver.Enum, id uint32) { g.bindFramebuffer(uint32(target), id) }

func (g *GL) FramebufferTexture2D(target, attachment, texTarget driver.Enum, tex uint32, level int) {
	g.framebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), tex, int32(level))
}

func (g *GL) FramebufferRenderbuffer(target, attachment driver.Enum, rb uint32) {
	g.framebufferRenderbuffer(uint32(target), uint32(attachment), uint32(driver.RENDERBUFFER), rb)
}

func (g *GL) CheckFramebufferStatus(target driver.Enum) driver.Enum {
	return driver.Enum(g.checkFramebufferStatus(uint32(target)))
}

func (g *GL) GenRenderbuffer() uint32 {
	var id uint32
	g.genRenderbuffers(1, &id)
	return id
}

func (g *GL) DeleteRenderbuffer(id uint32) { g.deleteRenderbuffers(1, &id) }

func (g *GL) BindRenderbuffer(id uint32) { g.bindRenderbuffer(uint32(driver.RENDERBUFFER), id) }

func (g *GL) RenderbufferStorage(internalFormat driver.Enum, width, height int) {
	g.renderbufferStorage(uint32(driver.RENDERBUFFER), uint32(internalFormat), int32(width), int32(height))
}

func (g *GL) GenQuery() uint32 {
	var id uint32
	g.genQueries(1, &id)
	return id
}

func (g *GL) DeleteQuery(id uint32) { g.deleteQueries(1, &id) }

func (g *GL) BeginQuery(target driver.Enum, id uint32) { g.beginQuery(uint32(target), id) }

func (g *GL) EndQuery(target driver.Enum) { g.endQuery(uint32(target)) }

func (g *GL) GetQueryObject(id uint32, pname driver.Enum) uint64 {
	if g.getQueryObjectui64v != nil {
		var v uint64
		g.getQueryObjectui64v(id, uint32(pname), &v)
		return v
	}
	var v uint32
	g.getQueryObjectuiv(id, uint32(pname), &v)
	return uint64(v)
}

func (g *GL) Enable(cap driver.Enum) { g.enable(uint32(cap)) }

func (g *GL) Disable(cap driver.Enum) { g.disable(uint32(cap)) }

func (g *GL) BlendFunc(src, dst driver.Enum) { g.blendFunc(uint32(src), uint32(dst)) }

func (g *GL) DepthFunc(fn driver.Enum) { g.depthFunc(uint32(fn)) }

func (g *GL) Viewport(x, y, width, height int) {
	g.viewport(int32(x), int32(y), int32(width), int32(height))
}

func (g *GL) ClearColor(r, gr, b, a float32) { g.clearColor(r, gr, b, a) }

// ClearDepth prefers the double-precision desktop entry point and falls
// back to the ES float form.
func (g *GL) ClearDepth(d float64) {
	if g.clearDepth != nil {
		g.clearDepth(d)
		return
	}
	g.clearDepthf(float32(d))
}

func (g *GL) ClearStencil(s int) { g.clearStencil(int32(s)) }

func (g *GL) Clear(mask driver.Enum) { g.clear(uint32(mask)) }

func (g *GL) DrawArrays(mode driver.Enum, first, count int) {
	g.drawArrays(uint32(mode), int32(first), int32(count))
}

func (g *GL) DrawElements(mode driver.Enum, count int, typ driver.Enum, offset int) {
	g.drawElements(uint32(mode), int32(count), uint32(typ), uintptr(offset))
}

func (g *GL) DispatchCompute(x, y, z uint32) { g.dispatchCompute(x, y, z) }

func (g *GL) MemoryBarrier(bits driver.Enum) { g.memoryBarrier(uint32(bits)) }
