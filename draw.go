// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
	"github.com/tdoylend/glium/validate"
)

// Primitive selects the topology of a draw.
type Primitive = driver.Primitive

const (
	Points        = driver.Points
	Lines         = driver.Lines
	LineStrip     = driver.LineStrip
	Triangles     = driver.Triangles
	TriangleStrip = driver.TriangleStrip
	TriangleFan   = driver.TriangleFan
)

// Handle-free request vocabulary, shared with the validator.
type (
	UniformBinding = validate.UniformBinding
	UniformValue   = validate.UniformValue
	BlendState     = validate.BlendState
	DepthState     = validate.DepthState
	Rect           = state.Rect
)

// Uniform value constructors.
func UniformFloat(v float32) UniformValue { return validate.UniformFloat(v) }
func UniformVec2(x, y float32) UniformValue { return validate.UniformVec2(x, y) }
func UniformVec3(x, y, z float32) UniformValue { return validate.UniformVec3(x, y, z) }
func UniformVec4(x, y, z, w float32) UniformValue { return validate.UniformVec4(x, y, z, w) }
func UniformInt(v int32) UniformValue { return validate.UniformInt(v) }
func UniformMat4(m [16]float32) UniformValue { return validate.UniformMat4(m) }
func UniformSampler(unit int) UniformValue { return validate.UniformSampler(unit) }

// IndexBinding selects the index buffer for an indexed draw.
type IndexBinding struct {
	Buffer Buffer
	Format gputypes.IndexFormat
	// Offset is the byte offset of the first index within the buffer.
	Offset int
}

// TextureSlot assigns a texture (and optionally a sampler) to a unit for
// one draw.
type TextureSlot struct {
	Unit    int
	Texture Texture
	// Sampler overrides the texture's own sampling state when non-nil.
	Sampler *Sampler
}

// DrawCommand describes one draw in full. Commands are ephemeral: they
// are validated and either executed or rejected within the Draw call,
// never retained.
type DrawCommand struct {
	Program Program
	Layout  VertexLayout
	// Buffers are the vertex sources; layout attributes select one by
	// index.
	Buffers  []Buffer
	Index    *IndexBinding
	Textures []TextureSlot
	Uniforms []UniformBinding
	// Framebuffer is the render target; nil means the default
	// framebuffer.
	Framebuffer *Framebuffer
	Mode        Primitive
	// First and Count select the vertex range (non-indexed) or the
	// index range (indexed).
	First int
	Count int
	// Blend and Depth switch those features on with the given
	// parameters; nil switches them off for this draw. A nil Viewport
	// leaves the viewport untouched.
	Blend    *BlendState
	Depth    *DepthState
	Viewport *Rect
}

func (cmd *DrawCommand) request() validate.DrawRequest {
	req := validate.DrawRequest{
		Program: cmd.Program.h,
		Layout:  cmd.Layout.h,
		Mode:    cmd.Mode,
		First:   cmd.First,
		Count:   cmd.Count,
		State: validate.RenderState{
			Blend:    cmd.Blend,
			Depth:    cmd.Depth,
			Viewport: cmd.Viewport,
		},
	}
	if len(cmd.Buffers) > 0 {
		req.Buffers = make([]registry.Handle, len(cmd.Buffers))
		for i, b := range cmd.Buffers {
			req.Buffers[i] = b.h
		}
	}
	if cmd.Index != nil {
		req.Index = &validate.IndexSource{
			Buffer: cmd.Index.Buffer.h,
			Format: cmd.Index.Format,
			Offset: cmd.Index.Offset,
		}
	}
	if len(cmd.Textures) > 0 {
		req.Textures = make([]validate.TextureBinding, len(cmd.Textures))
		for i, ts := range cmd.Textures {
			req.Textures[i] = validate.TextureBinding{Unit: ts.Unit, Texture: ts.Texture.h}
			if ts.Sampler != nil {
				req.Textures[i].Sampler = ts.Sampler.h
			}
		}
	}
	req.Uniforms = cmd.Uniforms
	if cmd.Framebuffer != nil {
		req.Framebuffer = cmd.Framebuffer.h
	}
	return req
}

// Draw validates cmd and, if it is sound, issues exactly the driver calls
// needed: state transitions the cache does not already reflect, uniform
// uploads, and the draw itself. On a validation error no driver call is
// made and the driver state is untouched.
func (c *Context) Draw(cmd DrawCommand) error {
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	req := cmd.request()
	prep, err := validate.Prepare(&req, c.reg, c.cache, c.table)
	if err != nil {
		return err
	}
	c.applyTransitions(prep.Transitions)
	c.cache.NoteSuppressedBinds(prep.Suppressed)
	for _, u := range prep.Uniforms {
		c.uploadUniform(u)
	}
	if prep.Call.Indexed {
		c.drv.DrawElements(prep.Call.Mode, prep.Call.Count, prep.Call.IndexType, prep.Call.IndexOffset)
	} else {
		c.drv.DrawArrays(prep.Call.Mode, prep.Call.First, prep.Call.Count)
	}
	c.drawsIssued++
	return c.finish("draw", prep.Transitions)
}

// StorageSlot binds a buffer to an indexed shader-storage slot for a
// dispatch.
type StorageSlot struct {
	Index  int
	Buffer Buffer
}

// DispatchCommand describes one compute dispatch.
type DispatchCommand struct {
	Program        Program
	Groups         [3]uint32
	StorageBuffers []StorageSlot
	Uniforms       []UniformBinding
}

// Dispatch validates cmd and launches the compute grid. A memory barrier
// follows the dispatch so later commands observe its writes.
func (c *Context) Dispatch(cmd DispatchCommand) error {
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	req := validate.DispatchRequest{
		Program:  cmd.Program.h,
		Groups:   cmd.Groups,
		Uniforms: cmd.Uniforms,
	}
	if len(cmd.StorageBuffers) > 0 {
		req.StorageBuffers = make([]validate.StorageBinding, len(cmd.StorageBuffers))
		for i, sb := range cmd.StorageBuffers {
			req.StorageBuffers[i] = validate.StorageBinding{Index: sb.Index, Buffer: sb.Buffer.h}
		}
	}
	prep, err := validate.PrepareDispatch(&req, c.reg, c.cache, c.table)
	if err != nil {
		return err
	}
	c.applyTransitions(prep.Transitions)
	c.cache.NoteSuppressedBinds(prep.Suppressed)
	for _, u := range prep.Uniforms {
		c.uploadUniform(u)
	}
	c.drv.DispatchCompute(prep.Groups[0], prep.Groups[1], prep.Groups[2])
	c.drv.MemoryBarrier(driver.ALL_BARRIER_BITS)
	return c.finish("dispatch", prep.Transitions)
}

// ClearCommand clears buffers of a render target. Nil aspect pointers are
// left untouched.
type ClearCommand struct {
	// Framebuffer is the target; nil means the default framebuffer.
	Framebuffer *Framebuffer
	Color       *[4]float32
	Depth       *float64
	Stencil     *int
}

// Clear issues the requested buffer clears.
func (c *Context) Clear(cmd ClearCommand) error {
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	var h registry.Handle
	var id uint32
	if cmd.Framebuffer != nil {
		rec, err := c.resolve(cmd.Framebuffer.h, registry.KindFramebuffer)
		if err != nil {
			return err
		}
		h, id = cmd.Framebuffer.h, rec.DriverID
	}
	c.bindScratch(state.DrawFramebuffer(), h, id)
	var mask driver.Enum
	if cmd.Color != nil {
		c.drv.ClearColor(cmd.Color[0], cmd.Color[1], cmd.Color[2], cmd.Color[3])
		mask |= driver.COLOR_BUFFER_BIT
	}
	if cmd.Depth != nil {
		c.drv.ClearDepth(*cmd.Depth)
		mask |= driver.DEPTH_BUFFER_BIT
	}
	if cmd.Stencil != nil {
		c.drv.ClearStencil(*cmd.Stencil)
		mask |= driver.STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		c.drv.Clear(mask)
	}
	return c.finish("clear", nil)
}
