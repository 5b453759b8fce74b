// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"log/slog"
	"sync/atomic"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

// Options configures NewContext.
type Options struct {
	// Logger overrides the package logger for this context. Nil uses
	// the logger configured with SetLogger.
	Logger *slog.Logger

	// TrustInitialState treats the driver's default state as unbound
	// instead of unknown. Only safe for a context no other code has
	// touched since creation.
	TrustInitialState bool
}

// Context is the safety layer's facade: it owns the handle registry, the
// state cache, and the capability table, and it is the only component
// that issues driver calls.
//
// A Context is confined to the single goroutine that owns the underlying
// driver context. Concurrent entry panics.
type Context struct {
	drv   driver.Driver
	table *caps.Table
	reg   *registry.Registry
	cache *state.Cache
	log   *slog.Logger

	inUse  atomic.Bool
	closed bool

	drawsIssued uint64

	// scratchUnit is the texture unit used for creation-time and upload
	// binds, kept away from the units draws use.
	scratchUnit int
}

// NewContext probes the driver and builds a ready Context. It fails with
// a caps.ConfigurationError when the driver is below the shader-capable
// baseline (OpenGL 2.0 / OpenGL ES 2.0).
//
// The cache starts all-unknown: the capability probe, or whoever created
// the native context, may have left arbitrary bindings behind.
func NewContext(drv driver.Driver, opts Options) (*Context, error) {
	table, err := caps.Build(drv)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	c := &Context{
		drv:         drv,
		table:       table,
		reg:         registry.New(),
		cache:       state.NewCache(),
		log:         log,
		scratchUnit: table.Limit(caps.MaxTextureUnits) - 1,
	}
	if c.scratchUnit < 0 {
		c.scratchUnit = 0
	}
	if opts.TrustInitialState {
		c.trustDefaults()
	}
	c.log.Info("glium: context ready",
		"version", table.Version().String(),
		"vendor", table.Vendor(),
		"renderer", table.Renderer(),
		"extensions", len(table.Extensions()),
	)
	return c, nil
}

// trustDefaults records the freshly created driver context's known
// default state: nothing bound anywhere.
func (c *Context) trustDefaults() {
	c.cache.SetUnbound(state.ArrayBuffer())
	c.cache.SetUnbound(state.PixelUnpackBuffer())
	c.cache.SetUnbound(state.Program())
	c.cache.SetUnbound(state.VertexArray())
	c.cache.SetUnbound(state.DrawFramebuffer())
	c.cache.SetUnbound(state.ReadFramebuffer())
	c.cache.SetUnbound(state.Renderbuffer())
	for _, f := range []state.Feature{state.FeatureBlend, state.FeatureDepthTest, state.FeatureScissorTest, state.FeatureCullFace} {
		c.cache.SetFeature(f, false)
	}
}

// enter takes the single-goroutine guard. Misuse is a programming error,
// so it is loud.
func (c *Context) enter() {
	if !c.inUse.CompareAndSwap(false, true) {
		panic("concurrent use of glium.Context")
	}
}

func (c *Context) leave() { c.inUse.Store(false) }

// Capabilities returns the context's capability table. The table is
// immutable and safe for concurrent reads.
func (c *Context) Capabilities() *caps.Table { return c.table }

// InvalidateCachedState discards everything the cache believes about the
// driver. Call it after external code has issued raw driver calls behind
// the layer's back; the next command re-establishes all state explicitly.
func (c *Context) InvalidateCachedState() {
	c.enter()
	defer c.leave()
	c.cache.InvalidateAll()
	c.log.Debug("glium: cached driver state invalidated")
}

// Stats reports the context's suppression counters and live resource
// count.
type Stats struct {
	// BindsIssued and BindsSuppressed count state transitions that
	// reached the driver versus those the cache proved redundant.
	BindsIssued     uint64
	BindsSuppressed uint64
	DrawsIssued     uint64
	LiveResources   int
}

// Stats returns a snapshot of the context's counters.
func (c *Context) Stats() Stats {
	c.enter()
	defer c.leave()
	cs := c.cache.Stats()
	return Stats{
		BindsIssued:     cs.BindsIssued,
		BindsSuppressed: cs.BindsSuppressed,
		DrawsIssued:     c.drawsIssued,
		LiveResources:   c.reg.Len(),
	}
}

// Close deletes every live resource and rejects further use. Close is
// idempotent.
func (c *Context) Close() error {
	c.enter()
	defer c.leave()
	if c.closed {
		return nil
	}
	handles := c.reg.LiveHandles()
	for _, h := range handles {
		rec, ok := c.reg.Invalidate(h)
		if !ok {
			continue
		}
		c.deleteDriverObject(rec)
	}
	c.drainErrors()
	c.cache.InvalidateAll()
	c.closed = true
	c.log.Info("glium: context closed", "released", len(handles))
	return nil
}

// destroy is the single choke point every resource destroy goes through:
// driver delete, registry invalidate, cache scrub. After it returns, every
// cache slot that referenced the handle is known-unbound and the handle
// can never resolve again.
func (c *Context) destroy(h registry.Handle) error {
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	rec, ok := c.reg.Invalidate(h)
	if !ok {
		return &InvalidHandleError{Handle: h}
	}
	c.deleteDriverObject(rec)
	scrubbed := c.cache.ScrubHandle(h)
	c.drainErrors()
	c.log.Debug("glium: resource destroyed",
		"handle", h.String(), "kind", rec.Kind.String(), "scrubbed", len(scrubbed))
	return nil
}

func (c *Context) deleteDriverObject(rec registry.Record) {
	switch rec.Kind {
	case registry.KindBuffer:
		c.drv.DeleteBuffer(rec.DriverID)
	case registry.KindTexture:
		c.drv.DeleteTexture(rec.DriverID)
	case registry.KindProgram:
		c.drv.DeleteProgram(rec.DriverID)
	case registry.KindFramebuffer:
		c.drv.DeleteFramebuffer(rec.DriverID)
	case registry.KindVertexLayout:
		c.drv.DeleteVertexArray(rec.DriverID)
	case registry.KindRenderbuffer:
		c.drv.DeleteRenderbuffer(rec.DriverID)
	case registry.KindSampler:
		c.drv.DeleteSampler(rec.DriverID)
	case registry.KindQuery:
		c.drv.DeleteQuery(rec.DriverID)
	}
}

// resolve looks a handle up in this context's registry, insisting on a
// kind.
func (c *Context) resolve(h registry.Handle, want registry.Kind) (*registry.Record, error) {
	rec, ok := c.reg.Lookup(h)
	if !ok {
		return nil, &InvalidHandleError{Handle: h, Want: want}
	}
	if rec.Kind != want {
		return nil, &InvalidHandleError{Handle: h, Want: want, Got: rec.Kind}
	}
	return rec, nil
}

// drainErrors empties the driver error queue without acting on it. Used
// on paths where errors are tolerated (deletes during teardown).
func (c *Context) drainErrors() {
	for c.drv.GetError() != driver.NO_ERROR {
	}
}
