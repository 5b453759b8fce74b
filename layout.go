// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/validate"
)

// VertexAttributeDesc declares one attribute within a vertex layout.
type VertexAttributeDesc = registry.VertexAttribute

// VertexLayoutDesc describes how vertex data is laid out in memory. A
// zero Stride means tightly packed.
type VertexLayoutDesc struct {
	Stride     int
	Attributes []VertexAttributeDesc
}

// VertexLayout is a handle to a vertex layout (a driver vertex array
// object) owned by a Context.
type VertexLayout struct {
	ctx *Context
	h   registry.Handle
}

// CreateVertexLayout validates and records a vertex layout. The backing
// vertex array object is allocated now; its attribute pointers are
// specified lazily at the first draw, when the actual source buffers are
// known.
func (c *Context) CreateVertexLayout(desc VertexLayoutDesc) (VertexLayout, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return VertexLayout{}, ErrContextClosed
	}
	meta := registry.VertexLayoutMeta{Stride: desc.Stride, Attributes: desc.Attributes}
	if err := validate.CheckLayout(meta, c.table.Limit(caps.MaxVertexAttributes)); err != nil {
		return VertexLayout{}, err
	}

	id := c.drv.GenVertexArray()
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		c.drainErrors()
		c.drv.DeleteVertexArray(id)
		return VertexLayout{}, &DriverAllocationError{Resource: "vertex layout", Code: code}
	}

	h := c.reg.Insert(registry.KindVertexLayout, id, meta)
	c.log.Debug("glium: vertex layout created",
		"handle", h.String(), "attributes", len(desc.Attributes), "stride", desc.Stride)
	return VertexLayout{ctx: c, h: h}, nil
}

// Destroy deletes the layout and its vertex array object.
func (l VertexLayout) Destroy() error { return l.ctx.destroy(l.h) }
