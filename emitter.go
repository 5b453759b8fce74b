// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
	"github.com/tdoylend/glium/validate"
)

// applyTransitions issues the validator's transition list and records each
// one in the cache as it lands.
func (c *Context) applyTransitions(trs []state.Transition) {
	for _, tr := range trs {
		c.applyTransition(tr)
		c.cache.Apply(tr)
		switch tr.Kind {
		case state.TransitionBind, state.TransitionVertexPointers:
			c.cache.NoteIssued()
		}
	}
}

func (c *Context) applyTransition(tr state.Transition) {
	switch tr.Kind {
	case state.TransitionBind:
		c.bindTarget(tr.Target, tr.DriverID)
	case state.TransitionVertexPointers:
		v := tr.Vertex
		c.drv.BindVertexArray(v.LayoutID)
		for _, a := range v.Attrs {
			c.drv.BindBuffer(driver.ARRAY_BUFFER, a.BufferID)
			c.drv.EnableVertexAttribArray(uint32(a.Location))
			if a.Integer {
				c.drv.VertexAttribIPointer(uint32(a.Location), a.Components, a.Type, v.Stride, a.Offset)
			} else {
				c.drv.VertexAttribPointer(uint32(a.Location), a.Components, a.Type, a.Normalized, v.Stride, a.Offset)
			}
		}
		if !v.Config.Index.IsZero() {
			// The element-array binding is part of the VAO.
			c.drv.BindBuffer(driver.ELEMENT_ARRAY_BUFFER, v.IndexID)
		}
	case state.TransitionEnable:
		c.drv.Enable(tr.Feature.Enum())
	case state.TransitionDisable:
		c.drv.Disable(tr.Feature.Enum())
	case state.TransitionBlendFunc:
		c.drv.BlendFunc(tr.SrcFactor, tr.DstFactor)
	case state.TransitionDepthFunc:
		c.drv.DepthFunc(tr.DepthFn)
	case state.TransitionViewport:
		c.drv.Viewport(tr.Viewport.X, tr.Viewport.Y, tr.Viewport.Width, tr.Viewport.Height)
	}
}

func (c *Context) bindTarget(t state.Target, id uint32) {
	switch t.Kind() {
	case state.TargetArrayBuffer:
		c.drv.BindBuffer(driver.ARRAY_BUFFER, id)
	case state.TargetPixelUnpackBuffer:
		c.drv.BindBuffer(driver.PIXEL_UNPACK_BUFFER, id)
	case state.TargetProgram:
		c.drv.UseProgram(id)
	case state.TargetVertexArray:
		c.drv.BindVertexArray(id)
	case state.TargetDrawFramebuffer:
		c.drv.BindFramebuffer(driver.DRAW_FRAMEBUFFER, id)
	case state.TargetReadFramebuffer:
		c.drv.BindFramebuffer(driver.READ_FRAMEBUFFER, id)
	case state.TargetRenderbuffer:
		c.drv.BindRenderbuffer(id)
	case state.TargetTextureUnit:
		c.drv.ActiveTexture(t.Index())
		c.drv.BindTexture(driver.TEXTURE_2D, id)
	case state.TargetSamplerUnit:
		c.drv.BindSampler(t.Index(), id)
	case state.TargetStorageBufferBase:
		c.drv.BindBufferBase(driver.SHADER_STORAGE_BUFFER, uint32(t.Index()), id)
	}
}

func (c *Context) uploadUniform(u validate.UniformUpload) {
	v := u.Value
	f := v.Floats()
	switch v.Type() {
	case registry.TypeFloat:
		c.drv.Uniform1f(u.Location, f[0])
	case registry.TypeVec2:
		c.drv.Uniform2f(u.Location, f[0], f[1])
	case registry.TypeVec3:
		c.drv.Uniform3f(u.Location, f[0], f[1], f[2])
	case registry.TypeVec4:
		c.drv.Uniform4f(u.Location, f[0], f[1], f[2], f[3])
	case registry.TypeInt, registry.TypeSampler2D:
		c.drv.Uniform1i(u.Location, v.Int())
	case registry.TypeMat4:
		c.drv.UniformMatrix4fv(u.Location, false, f)
	}
}

// finish polls the driver error queue once a command has been issued. On
// error it downgrades every slot the command touched to unknown, logs the
// failure, and wraps it as a DriverExecutionError.
func (c *Context) finish(op string, trs []state.Transition) error {
	code := c.drv.GetError()
	if code == driver.NO_ERROR {
		return nil
	}
	c.drainErrors()
	for _, tr := range trs {
		c.cache.Invalidate(tr)
	}
	c.log.Error("glium: driver rejected validated work",
		"op", op,
		"error", driver.ErrorString(code),
		"transitions", len(trs),
	)
	return &DriverExecutionError{Op: op, Code: code}
}

// bindScratch establishes a bind on a single cached slot outside a
// prepared transition list (uploads, creation paths), with suppression
// accounting.
func (c *Context) bindScratch(t state.Target, h registry.Handle, id uint32) {
	if cur, known := c.cache.Current(t); known && cur == h {
		c.cache.NoteSuppressed()
		return
	}
	c.bindTarget(t, id)
	if h.IsZero() {
		c.cache.SetUnbound(t)
	} else {
		c.cache.SetBound(t, h)
	}
	c.cache.NoteIssued()
}
