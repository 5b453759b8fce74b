// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"fmt"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

// BufferUsage hints how often the buffer's contents will change.
type BufferUsage = registry.BufferUsage

const (
	UsageStatic  = registry.UsageStatic
	UsageDynamic = registry.UsageDynamic
	UsageStream  = registry.UsageStream
)

// BufferDesc describes a buffer to create. Either Size or Data must be
// set; when both are, len(Data) must equal Size.
type BufferDesc struct {
	Size  int
	Data  []byte
	Usage BufferUsage
}

// Buffer is a handle to a driver buffer object owned by a Context.
type Buffer struct {
	ctx *Context
	h   registry.Handle
}

// CreateBuffer allocates a buffer. When the driver supports immutable
// buffer storage the allocation uses it; either way the buffer remains
// writable through Write. Driver refusal rolls the allocation back and
// returns a DriverAllocationError.
func (c *Context) CreateBuffer(desc BufferDesc) (Buffer, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Buffer{}, ErrContextClosed
	}
	size := desc.Size
	if size == 0 {
		size = len(desc.Data)
	}
	if size <= 0 {
		return Buffer{}, fmt.Errorf("%w: buffer size must be positive", ErrInvalidDescriptor)
	}
	if desc.Data != nil && len(desc.Data) != size {
		return Buffer{}, fmt.Errorf("%w: %d bytes of data for a %d-byte buffer", ErrInvalidDescriptor, len(desc.Data), size)
	}

	id := c.drv.GenBuffer()
	c.drv.BindBuffer(driver.ARRAY_BUFFER, id)
	immutable := c.table.Supports(caps.FeatureBufferStorage)
	if immutable {
		c.drv.BufferStorage(driver.ARRAY_BUFFER, size, desc.Data, driver.DYNAMIC_STORAGE_BIT)
	} else {
		c.drv.BufferData(driver.ARRAY_BUFFER, size, desc.Data, usageEnum(desc.Usage))
	}
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		c.drainErrors()
		c.drv.DeleteBuffer(id)
		c.cache.SetUnknown(state.ArrayBuffer())
		return Buffer{}, &DriverAllocationError{Resource: "buffer", Code: code}
	}

	h := c.reg.Insert(registry.KindBuffer, id, registry.BufferMeta{
		Size:      size,
		Usage:     desc.Usage,
		Immutable: immutable,
	})
	c.cache.SetBound(state.ArrayBuffer(), h)
	c.log.Debug("glium: buffer created",
		"handle", h.String(), "size", size, "immutable", immutable)
	return Buffer{ctx: c, h: h}, nil
}

func usageEnum(u BufferUsage) driver.Enum {
	switch u {
	case UsageDynamic:
		return driver.DYNAMIC_DRAW
	case UsageStream:
		return driver.STREAM_DRAW
	}
	return driver.STATIC_DRAW
}

// Size returns the buffer's byte size, or zero if the buffer was
// destroyed.
func (b Buffer) Size() int {
	c := b.ctx
	c.enter()
	defer c.leave()
	rec, ok := c.reg.Lookup(b.h)
	if !ok {
		return 0
	}
	return rec.Meta.(registry.BufferMeta).Size
}

// Write replaces the byte range [offset, offset+len(data)) of the buffer.
func (b Buffer) Write(offset int, data []byte) error {
	c := b.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	rec, err := c.resolve(b.h, registry.KindBuffer)
	if err != nil {
		return err
	}
	meta := rec.Meta.(registry.BufferMeta)
	if offset < 0 || offset+len(data) > meta.Size {
		return fmt.Errorf("%w: write [%d,%d) into a %d-byte buffer", ErrBufferRange, offset, offset+len(data), meta.Size)
	}
	if len(data) == 0 {
		return nil
	}
	c.bindScratch(state.ArrayBuffer(), b.h, rec.DriverID)
	c.drv.BufferSubData(driver.ARRAY_BUFFER, offset, data)
	return c.finish("buffer write", nil)
}

// Read copies the byte range [offset, offset+len(dst)) of the buffer into
// dst. It requires the buffer readback capability (desktop GL).
func (b Buffer) Read(offset int, dst []byte) error {
	c := b.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	if err := c.table.Require(caps.FeatureBufferReadback, "Buffer.Read"); err != nil {
		return err
	}
	rec, err := c.resolve(b.h, registry.KindBuffer)
	if err != nil {
		return err
	}
	meta := rec.Meta.(registry.BufferMeta)
	if offset < 0 || offset+len(dst) > meta.Size {
		return fmt.Errorf("%w: read [%d,%d) from a %d-byte buffer", ErrBufferRange, offset, offset+len(dst), meta.Size)
	}
	if len(dst) == 0 {
		return nil
	}
	c.bindScratch(state.ArrayBuffer(), b.h, rec.DriverID)
	c.drv.GetBufferSubData(driver.ARRAY_BUFFER, offset, dst)
	return c.finish("buffer read", nil)
}

// Destroy deletes the buffer. Cache slots it was bound to become unbound;
// the handle never resolves again.
func (b Buffer) Destroy() error { return b.ctx.destroy(b.h) }
