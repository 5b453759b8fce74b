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

// TextureDesc describes a 2D texture to create.
type TextureDesc struct {
	Width  int
	Height int
	Format gputypes.TextureFormat
	// MipLevels is the mip chain length; zero means 1.
	MipLevels int
}

// Texture is a handle to a driver texture object owned by a Context.
type Texture struct {
	ctx *Context
	h   registry.Handle
}

// CreateTexture allocates a 2D texture. Storage is immutable
// (TexStorage2D) when the driver supports it, per-level TexImage2D
// otherwise. Creation-time binds go to the scratch texture unit so units
// draws use are never silently disturbed.
func (c *Context) CreateTexture(desc TextureDesc) (Texture, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Texture{}, ErrContextClosed
	}
	maxSize := c.table.Limit(caps.MaxTextureSize)
	if desc.Width <= 0 || desc.Height <= 0 {
		return Texture{}, fmt.Errorf("%w: texture dimensions must be positive", ErrInvalidDescriptor)
	}
	if desc.Width > maxSize || desc.Height > maxSize {
		return Texture{}, fmt.Errorf("%w: %dx%d exceeds the device limit %d", ErrInvalidDescriptor, desc.Width, desc.Height, maxSize)
	}
	if !validate.TextureFormatSupported(desc.Format) {
		return Texture{}, fmt.Errorf("%w: unsupported texture format", ErrInvalidDescriptor)
	}
	levels := desc.MipLevels
	if levels <= 0 {
		levels = 1
	}

	internal, upFmt, upTyp, _, _ := validate.TextureFormatInfo(desc.Format)
	id := c.drv.GenTexture()
	c.drv.ActiveTexture(c.scratchUnit)
	c.drv.BindTexture(driver.TEXTURE_2D, id)
	if c.table.Supports(caps.FeatureTextureStorage) {
		c.drv.TexStorage2D(driver.TEXTURE_2D, levels, internal, desc.Width, desc.Height)
	} else {
		w, h := desc.Width, desc.Height
		for level := 0; level < levels; level++ {
			c.drv.TexImage2D(driver.TEXTURE_2D, level, internal, w, h, upFmt, upTyp, nil)
			w, h = mipDim(w), mipDim(h)
		}
	}
	c.drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MIN_FILTER, int(driver.LINEAR))
	c.drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MAG_FILTER, int(driver.LINEAR))
	c.drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_S, int(driver.CLAMP_TO_EDGE))
	c.drv.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_T, int(driver.CLAMP_TO_EDGE))
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		c.drainErrors()
		c.drv.DeleteTexture(id)
		c.cache.SetUnknown(state.TextureUnit(c.scratchUnit))
		return Texture{}, &DriverAllocationError{Resource: "texture", Code: code}
	}

	h := c.reg.Insert(registry.KindTexture, id, registry.TextureMeta{
		Width:     desc.Width,
		Height:    desc.Height,
		Format:    desc.Format,
		MipLevels: levels,
	})
	c.cache.SetBound(state.TextureUnit(c.scratchUnit), h)
	c.log.Debug("glium: texture created",
		"handle", h.String(), "width", desc.Width, "height", desc.Height, "levels", levels)
	return Texture{ctx: c, h: h}, nil
}

func mipDim(d int) int {
	if d > 1 {
		return d / 2
	}
	return 1
}

// Upload replaces the region [x,x+w) x [y,y+h) of the given mip level.
// data must hold exactly w*h pixels in the texture's format.
func (t Texture) Upload(level, x, y, w, h int, data []byte) error {
	c := t.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	rec, err := c.resolve(t.h, registry.KindTexture)
	if err != nil {
		return err
	}
	meta := rec.Meta.(registry.TextureMeta)
	if level < 0 || level >= meta.MipLevels {
		return fmt.Errorf("%w: level %d of %d", ErrTextureRegion, level, meta.MipLevels)
	}
	lw, lh := meta.Width, meta.Height
	for i := 0; i < level; i++ {
		lw, lh = mipDim(lw), mipDim(lh)
	}
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > lw || y+h > lh {
		return fmt.Errorf("%w: region %dx%d at (%d,%d) in a %dx%d level", ErrTextureRegion, w, h, x, y, lw, lh)
	}
	_, upFmt, upTyp, bpp, _ := validate.TextureFormatInfo(meta.Format)
	if want := w * h * bpp; len(data) != want {
		return fmt.Errorf("%w: %d bytes of data for a %d-byte region", ErrTextureRegion, len(data), want)
	}

	// Uploads read client memory; a lingering pixel-unpack buffer would
	// silently hijack the data pointer.
	c.bindScratch(state.PixelUnpackBuffer(), registry.Handle{}, 0)
	c.bindScratch(state.TextureUnit(c.scratchUnit), t.h, rec.DriverID)
	c.drv.ActiveTexture(c.scratchUnit)
	c.drv.TexSubImage2D(driver.TEXTURE_2D, level, x, y, w, h, upFmt, upTyp, data)
	return c.finish("texture upload", nil)
}

// Destroy deletes the texture.
func (t Texture) Destroy() error { return t.ctx.destroy(t.h) }
