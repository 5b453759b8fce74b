// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package state shadows the driver's implicit binding state in user space.
//
// Bind-then-use drivers keep a single mutable global: which buffer is bound
// to each target, which program is active, which texture sits on each
// unit. Package state models that global as an owned cache with one slot
// per bindable target, read and written only through its own interface.
// The emitter consults the cache to collapse redundant binds into zero
// driver calls; the validator reads it to compute the minimal transition
// set for a draw.
//
// Every slot is tri-state: unknown, unbound, or bound to a handle. The
// cache must always either equal the driver's true state or be strictly
// unknown. Any path that can mutate driver state behind the cache's back
// (a collaborator issuing raw calls, a failed draw) downgrades affected
// slots to unknown so the next use re-verifies instead of trusting stale
// data.
package state

import (
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
)

// TargetKind classifies a Target so the emitter can map it onto the
// matching driver bind call.
type TargetKind uint8

const (
	TargetArrayBuffer TargetKind = iota
	TargetPixelUnpackBuffer
	TargetProgram
	TargetVertexArray
	TargetDrawFramebuffer
	TargetReadFramebuffer
	TargetRenderbuffer
	TargetTextureUnit
	TargetSamplerUnit
	TargetStorageBufferBase
	TargetActiveQuery
)

// Target names one bindable slot in the driver's implicit state.
// Targets are comparable and used as cache keys.
type Target struct {
	kind  TargetKind
	index int
}

// Kind reports which bindable slot family the target belongs to.
func (t Target) Kind() TargetKind { return t.kind }

// Index is the unit or binding index for indexed targets, and the query
// target enum for TargetActiveQuery.
func (t Target) Index() int { return t.index }

// ArrayBuffer is the generic vertex data binding point.
func ArrayBuffer() Target { return Target{kind: TargetArrayBuffer} }

// PixelUnpackBuffer is the texture upload source binding point.
func PixelUnpackBuffer() Target { return Target{kind: TargetPixelUnpackBuffer} }

// Program is the active-program slot.
func Program() Target { return Target{kind: TargetProgram} }

// VertexArray is the bound vertex-array-object slot.
func VertexArray() Target { return Target{kind: TargetVertexArray} }

// DrawFramebuffer is the render target slot.
func DrawFramebuffer() Target { return Target{kind: TargetDrawFramebuffer} }

// ReadFramebuffer is the readback source slot.
func ReadFramebuffer() Target { return Target{kind: TargetReadFramebuffer} }

// Renderbuffer is the renderbuffer binding point.
func Renderbuffer() Target { return Target{kind: TargetRenderbuffer} }

// TextureUnit is texture unit i's 2D binding point.
func TextureUnit(i int) Target { return Target{kind: TargetTextureUnit, index: i} }

// SamplerUnit is texture unit i's sampler binding point.
func SamplerUnit(i int) Target { return Target{kind: TargetSamplerUnit, index: i} }

// StorageBufferBase is indexed shader-storage binding point i.
func StorageBufferBase(i int) Target { return Target{kind: TargetStorageBufferBase, index: i} }

// ActiveQuery is the active-query slot for one query target enum.
func ActiveQuery(target driver.Enum) Target {
	return Target{kind: TargetActiveQuery, index: int(target)}
}

func (t Target) String() string {
	switch t.kind {
	case TargetArrayBuffer:
		return "array-buffer"
	case TargetPixelUnpackBuffer:
		return "pixel-unpack-buffer"
	case TargetProgram:
		return "program"
	case TargetVertexArray:
		return "vertex-array"
	case TargetDrawFramebuffer:
		return "draw-framebuffer"
	case TargetReadFramebuffer:
		return "read-framebuffer"
	case TargetRenderbuffer:
		return "renderbuffer"
	case TargetTextureUnit:
		return "texture-unit[" + itoa(t.index) + "]"
	case TargetSamplerUnit:
		return "sampler-unit[" + itoa(t.index) + "]"
	case TargetStorageBufferBase:
		return "storage-buffer-base[" + itoa(t.index) + "]"
	case TargetActiveQuery:
		return "active-query"
	}
	return "unknown-target"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// Feature names a driver feature switch (glEnable/glDisable state).
type Feature uint8

const (
	FeatureBlend Feature = iota
	FeatureDepthTest
	FeatureScissorTest
	FeatureCullFace
)

// Enum returns the raw driver capability enum for the feature.
func (f Feature) Enum() driver.Enum {
	switch f {
	case FeatureDepthTest:
		return driver.DEPTH_TEST
	case FeatureScissorTest:
		return driver.SCISSOR_TEST
	case FeatureCullFace:
		return driver.CULL_FACE
	}
	return driver.BLEND
}

func (f Feature) String() string {
	switch f {
	case FeatureDepthTest:
		return "depth-test"
	case FeatureScissorTest:
		return "scissor-test"
	case FeatureCullFace:
		return "cull-face"
	}
	return "blend"
}

// Rect is a viewport rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// VertexConfig records which sources a vertex-array object was last
// configured with: one buffer per layout attribute slot plus the element
// array binding the VAO holds. Re-drawing a layout with the same sources
// needs no attribute re-specification.
type VertexConfig struct {
	Buffers []registry.Handle
	Index   registry.Handle
}

// Equal reports whether two configs name the same sources.
func (v VertexConfig) Equal(o VertexConfig) bool {
	if v.Index != o.Index || len(v.Buffers) != len(o.Buffers) {
		return false
	}
	for i := range v.Buffers {
		if v.Buffers[i] != o.Buffers[i] {
			return false
		}
	}
	return true
}

// references reports whether the config mentions handle h.
func (v VertexConfig) references(h registry.Handle) bool {
	if v.Index == h {
		return true
	}
	for _, b := range v.Buffers {
		if b == h {
			return true
		}
	}
	return false
}

type slotState struct {
	known bool
	h     registry.Handle
}

type blendState struct {
	known    bool
	src, dst driver.Enum
}

type depthState struct {
	known bool
	fn    driver.Enum
}

type viewportState struct {
	known bool
	rect  Rect
}

// Stats counts how often the cache let the emitter skip a driver call.
type Stats struct {
	// BindsIssued counts state transitions that reached the driver.
	BindsIssued uint64
	// BindsSuppressed counts transitions skipped because the cache
	// already reflected the desired state.
	BindsSuppressed uint64
}

// Cache is the shadow copy of the driver's binding state.
//
// A fresh cache knows nothing: every slot is unknown until the emitter
// records a transition. Confined to the driving goroutine; no locking.
type Cache struct {
	slots    map[Target]slotState
	features map[Feature]bool
	blend    blendState
	depth    depthState
	viewport viewportState
	vertex   map[registry.Handle]VertexConfig
	stats    Stats
}

// NewCache returns a cache with every slot unknown.
func NewCache() *Cache {
	return &Cache{
		slots:    make(map[Target]slotState),
		features: make(map[Feature]bool),
		vertex:   make(map[registry.Handle]VertexConfig),
	}
}

// Current returns the handle bound to target, if the slot's state is
// known. A known slot with a zero handle means "unbound". known=false
// means the true driver state must be assumed arbitrary.
func (c *Cache) Current(t Target) (h registry.Handle, known bool) {
	s, ok := c.slots[t]
	if !ok || !s.known {
		return registry.Handle{}, false
	}
	return s.h, true
}

// SetBound records that target now holds h. Pure bookkeeping; no driver
// call is made here.
func (c *Cache) SetBound(t Target, h registry.Handle) {
	c.slots[t] = slotState{known: true, h: h}
}

// SetUnbound records that target is known to hold nothing.
func (c *Cache) SetUnbound(t Target) {
	c.slots[t] = slotState{known: true}
}

// SetUnknown downgrades target to unknown, forcing the next use to
// re-bind rather than trust a possibly stale value.
func (c *Cache) SetUnknown(t Target) {
	delete(c.slots, t)
}

// FeatureState returns a feature switch's cached position.
func (c *Cache) FeatureState(f Feature) (enabled, known bool) {
	enabled, known = c.features[f]
	return enabled, known
}

// SetFeature records a feature switch's position.
func (c *Cache) SetFeature(f Feature, enabled bool) {
	c.features[f] = enabled
}

// SetFeatureUnknown forgets a feature switch's position.
func (c *Cache) SetFeatureUnknown(f Feature) {
	delete(c.features, f)
}

// BlendFunc returns the cached blend factor pair.
func (c *Cache) BlendFunc() (src, dst driver.Enum, known bool) {
	return c.blend.src, c.blend.dst, c.blend.known
}

// SetBlendFunc records the blend factor pair.
func (c *Cache) SetBlendFunc(src, dst driver.Enum) {
	c.blend = blendState{known: true, src: src, dst: dst}
}

// DepthFunc returns the cached depth comparison function.
func (c *Cache) DepthFunc() (fn driver.Enum, known bool) {
	return c.depth.fn, c.depth.known
}

// SetDepthFunc records the depth comparison function.
func (c *Cache) SetDepthFunc(fn driver.Enum) {
	c.depth = depthState{known: true, fn: fn}
}

// Viewport returns the cached viewport rectangle.
func (c *Cache) Viewport() (Rect, bool) {
	return c.viewport.rect, c.viewport.known
}

// SetViewport records the viewport rectangle.
func (c *Cache) SetViewport(r Rect) {
	c.viewport = viewportState{known: true, rect: r}
}

// VertexConfig returns the sources a vertex-array object was last
// configured with.
func (c *Cache) VertexConfig(layout registry.Handle) (VertexConfig, bool) {
	cfg, ok := c.vertex[layout]
	return cfg, ok
}

// SetVertexConfig records a vertex-array object's configured sources.
func (c *Cache) SetVertexConfig(layout registry.Handle, cfg VertexConfig) {
	c.vertex[layout] = cfg
}

// ScrubHandle marks every slot referencing h as unbound and drops vertex
// configurations that mention it. Called on resource destruction: deleting
// a bound object is legal at the driver level (the driver unbinds it), so
// the slot's new ground truth is "unbound", not "unknown".
//
// The affected targets are returned for diagnostics.
func (c *Cache) ScrubHandle(h registry.Handle) []Target {
	if h.IsZero() {
		return nil
	}
	var affected []Target
	for t, s := range c.slots {
		if s.known && s.h == h {
			c.slots[t] = slotState{known: true}
			affected = append(affected, t)
		}
	}
	for layout, cfg := range c.vertex {
		if layout == h || cfg.references(h) {
			delete(c.vertex, layout)
		}
	}
	return affected
}

// InvalidateAll downgrades the entire cache to unknown. Used when a
// collaborator has issued raw driver calls behind the layer's back, and
// after a driver execution error of unknown extent.
func (c *Cache) InvalidateAll() {
	clear(c.slots)
	clear(c.features)
	clear(c.vertex)
	c.blend = blendState{}
	c.depth = depthState{}
	c.viewport = viewportState{}
}

// NoteIssued counts a transition that reached the driver.
func (c *Cache) NoteIssued() { c.stats.BindsIssued++ }

// NoteSuppressed counts a transition skipped thanks to the cache.
func (c *Cache) NoteSuppressed() { c.stats.BindsSuppressed++ }

// NoteSuppressedBinds counts n transitions skipped thanks to the cache.
func (c *Cache) NoteSuppressedBinds(n int) { c.stats.BindsSuppressed += uint64(n) }

// Stats returns the suppression counters.
func (c *Cache) Stats() Stats { return c.stats }
