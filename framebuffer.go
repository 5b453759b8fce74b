// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
	"github.com/tdoylend/glium/validate"
)

// RenderbufferDesc describes a renderbuffer to create.
type RenderbufferDesc struct {
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// Renderbuffer is a handle to a driver renderbuffer owned by a Context.
// Renderbuffers can only be framebuffer attachments, never sampled.
type Renderbuffer struct {
	ctx *Context
	h   registry.Handle
}

// CreateRenderbuffer allocates a renderbuffer.
func (c *Context) CreateRenderbuffer(desc RenderbufferDesc) (Renderbuffer, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Renderbuffer{}, ErrContextClosed
	}
	maxSize := c.table.Limit(caps.MaxRenderbufferSize)
	if desc.Width <= 0 || desc.Height <= 0 {
		return Renderbuffer{}, fmt.Errorf("%w: renderbuffer dimensions must be positive", ErrInvalidDescriptor)
	}
	if desc.Width > maxSize || desc.Height > maxSize {
		return Renderbuffer{}, fmt.Errorf("%w: %dx%d exceeds the device limit %d", ErrInvalidDescriptor, desc.Width, desc.Height, maxSize)
	}
	if !validate.TextureFormatSupported(desc.Format) {
		return Renderbuffer{}, fmt.Errorf("%w: unsupported renderbuffer format", ErrInvalidDescriptor)
	}

	internal, _, _, _, _ := validate.TextureFormatInfo(desc.Format)
	id := c.drv.GenRenderbuffer()
	c.drv.BindRenderbuffer(id)
	c.drv.RenderbufferStorage(internal, desc.Width, desc.Height)
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		c.drainErrors()
		c.drv.DeleteRenderbuffer(id)
		c.cache.SetUnknown(state.Renderbuffer())
		return Renderbuffer{}, &DriverAllocationError{Resource: "renderbuffer", Code: code}
	}

	h := c.reg.Insert(registry.KindRenderbuffer, id, registry.RenderbufferMeta{
		Width:  desc.Width,
		Height: desc.Height,
		Format: desc.Format,
	})
	c.cache.SetBound(state.Renderbuffer(), h)
	c.log.Debug("glium: renderbuffer created",
		"handle", h.String(), "width", desc.Width, "height", desc.Height)
	return Renderbuffer{ctx: c, h: h}, nil
}

// Destroy deletes the renderbuffer.
func (r Renderbuffer) Destroy() error { return r.ctx.destroy(r.h) }

// Attachment names one framebuffer attachment: exactly one of Texture or
// Renderbuffer must be set.
type Attachment struct {
	Texture      *Texture
	Renderbuffer *Renderbuffer
	// Level is the texture mip level to attach (textures only).
	Level int
}

func (a Attachment) handle() registry.Handle {
	if a.Texture != nil {
		return a.Texture.h
	}
	if a.Renderbuffer != nil {
		return a.Renderbuffer.h
	}
	return registry.Handle{}
}

// FramebufferDesc describes a framebuffer as a set of attachments. All
// attachments must share dimensions.
type FramebufferDesc struct {
	Color []Attachment
	Depth *Attachment
}

// Framebuffer is a handle to a driver framebuffer owned by a Context.
type Framebuffer struct {
	ctx *Context
	h   registry.Handle
}

// CreateFramebuffer validates the attachment set, builds the framebuffer,
// and confirms completeness with the driver.
func (c *Context) CreateFramebuffer(desc FramebufferDesc) (Framebuffer, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Framebuffer{}, ErrContextClosed
	}
	if len(desc.Color) > c.table.Limit(caps.MaxColorAttachments) {
		return Framebuffer{}, fmt.Errorf("%w: %d color attachments exceed the device limit %d",
			ErrInvalidDescriptor, len(desc.Color), c.table.Limit(caps.MaxColorAttachments))
	}

	meta := registry.FramebufferMeta{}
	for _, att := range desc.Color {
		meta.Color = append(meta.Color, att.handle())
	}
	if desc.Depth != nil {
		meta.Depth = desc.Depth.handle()
	}
	var err error
	meta.Width, meta.Height, err = c.attachmentSize(meta)
	if err != nil {
		return Framebuffer{}, err
	}
	if err := validate.CheckFramebufferAttachments(c.reg, meta); err != nil {
		return Framebuffer{}, err
	}

	id := c.drv.GenFramebuffer()
	c.drv.BindFramebuffer(driver.DRAW_FRAMEBUFFER, id)
	rollback := func() {
		c.drainErrors()
		c.drv.DeleteFramebuffer(id)
		c.cache.SetUnknown(state.DrawFramebuffer())
	}
	for i, att := range desc.Color {
		point := driver.COLOR_ATTACHMENT0 + driver.Enum(i)
		c.attach(point, att)
	}
	if desc.Depth != nil {
		point := driver.Enum(driver.DEPTH_ATTACHMENT)
		if h := desc.Depth.Texture; h != nil {
			if rec, ok := c.reg.Lookup(h.h); ok && validate.HasStencil(rec.Meta.(registry.TextureMeta).Format) {
				point = driver.DEPTH_STENCIL_ATTACHMENT
			}
		} else if rb := desc.Depth.Renderbuffer; rb != nil {
			if rec, ok := c.reg.Lookup(rb.h); ok && validate.HasStencil(rec.Meta.(registry.RenderbufferMeta).Format) {
				point = driver.DEPTH_STENCIL_ATTACHMENT
			}
		}
		c.attach(point, *desc.Depth)
	}

	if status := c.drv.CheckFramebufferStatus(driver.DRAW_FRAMEBUFFER); status != driver.FRAMEBUFFER_COMPLETE {
		rollback()
		return Framebuffer{}, &FramebufferCompatibilityError{
			Reason: fmt.Sprintf("driver reports incomplete framebuffer (status 0x%04x)", uint32(status)),
		}
	}
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		rollback()
		return Framebuffer{}, &DriverAllocationError{Resource: "framebuffer", Code: code}
	}

	h := c.reg.Insert(registry.KindFramebuffer, id, meta)
	c.cache.SetBound(state.DrawFramebuffer(), h)
	c.log.Debug("glium: framebuffer created",
		"handle", h.String(), "width", meta.Width, "height", meta.Height,
		"color", len(meta.Color), "depth", !meta.Depth.IsZero())
	return Framebuffer{ctx: c, h: h}, nil
}

func (c *Context) attach(point driver.Enum, att Attachment) {
	switch {
	case att.Texture != nil:
		if rec, ok := c.reg.Lookup(att.Texture.h); ok {
			c.drv.FramebufferTexture2D(driver.DRAW_FRAMEBUFFER, point, driver.TEXTURE_2D, rec.DriverID, att.Level)
		}
	case att.Renderbuffer != nil:
		if rec, ok := c.reg.Lookup(att.Renderbuffer.h); ok {
			c.drv.FramebufferRenderbuffer(driver.DRAW_FRAMEBUFFER, point, rec.DriverID)
		}
	}
}

// attachmentSize derives the framebuffer dimensions from its first live
// attachment.
func (c *Context) attachmentSize(meta registry.FramebufferMeta) (int, int, error) {
	handles := append([]registry.Handle{}, meta.Color...)
	if !meta.Depth.IsZero() {
		handles = append(handles, meta.Depth)
	}
	for _, h := range handles {
		rec, ok := c.reg.Lookup(h)
		if !ok {
			continue
		}
		switch m := rec.Meta.(type) {
		case registry.TextureMeta:
			return m.Width, m.Height, nil
		case registry.RenderbufferMeta:
			return m.Width, m.Height, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: framebuffer has no live attachments", ErrInvalidDescriptor)
}

// Destroy deletes the framebuffer. Its attachments are not affected.
func (f Framebuffer) Destroy() error { return f.ctx.destroy(f.h) }
