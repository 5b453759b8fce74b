// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
)

// SamplerDesc describes a sampler object. Zero values mean linear
// filtering and clamp-to-edge addressing.
type SamplerDesc struct {
	MinFilter gputypes.FilterMode
	MagFilter gputypes.FilterMode
	WrapU     gputypes.AddressMode
	WrapV     gputypes.AddressMode
}

// Sampler is a handle to a driver sampler object owned by a Context.
type Sampler struct {
	ctx *Context
	h   registry.Handle
}

// CreateSampler allocates a sampler object. Requires the sampler-objects
// capability (GL 3.3 / ES 3.0).
func (c *Context) CreateSampler(desc SamplerDesc) (Sampler, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Sampler{}, ErrContextClosed
	}
	if err := c.table.Require(caps.FeatureSamplerObjects, "CreateSampler"); err != nil {
		return Sampler{}, err
	}

	id := c.drv.GenSampler()
	c.drv.SamplerParameteri(id, driver.TEXTURE_MIN_FILTER, int(filterEnum(desc.MinFilter)))
	c.drv.SamplerParameteri(id, driver.TEXTURE_MAG_FILTER, int(filterEnum(desc.MagFilter)))
	c.drv.SamplerParameteri(id, driver.TEXTURE_WRAP_S, int(addressEnum(desc.WrapU)))
	c.drv.SamplerParameteri(id, driver.TEXTURE_WRAP_T, int(addressEnum(desc.WrapV)))
	if code := c.drv.GetError(); code != driver.NO_ERROR {
		c.drainErrors()
		c.drv.DeleteSampler(id)
		return Sampler{}, &DriverAllocationError{Resource: "sampler", Code: code}
	}

	h := c.reg.Insert(registry.KindSampler, id, registry.SamplerMeta{
		MinFilter: desc.MinFilter,
		MagFilter: desc.MagFilter,
		WrapU:     desc.WrapU,
		WrapV:     desc.WrapV,
	})
	c.log.Debug("glium: sampler created", "handle", h.String())
	return Sampler{ctx: c, h: h}, nil
}

func filterEnum(f gputypes.FilterMode) driver.Enum {
	if f == gputypes.FilterModeNearest {
		return driver.NEAREST
	}
	return driver.LINEAR
}

func addressEnum(a gputypes.AddressMode) driver.Enum {
	switch a {
	case gputypes.AddressModeRepeat:
		return driver.REPEAT
	case gputypes.AddressModeMirrorRepeat:
		return driver.MIRRORED_REPEAT
	}
	return driver.CLAMP_TO_EDGE
}

// Destroy deletes the sampler.
func (s Sampler) Destroy() error { return s.ctx.destroy(s.h) }
