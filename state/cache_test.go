// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package state

import (
	"testing"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
)

func newHandle(t *testing.T, r *registry.Registry, id uint32) registry.Handle {
	t.Helper()
	return r.Insert(registry.KindBuffer, id, registry.BufferMeta{Size: 16})
}

func TestFreshCacheIsUnknown(t *testing.T) {
	c := NewCache()
	targets := []Target{
		ArrayBuffer(), Program(), VertexArray(), DrawFramebuffer(),
		TextureUnit(0), TextureUnit(7), SamplerUnit(2), StorageBufferBase(1),
	}
	for _, tgt := range targets {
		if _, known := c.Current(tgt); known {
			t.Errorf("fresh cache claims to know %v", tgt)
		}
	}
	if _, known := c.FeatureState(FeatureBlend); known {
		t.Error("fresh cache claims to know blend state")
	}
	if _, known := c.Viewport(); known {
		t.Error("fresh cache claims to know the viewport")
	}
}

func TestSetIdempotence(t *testing.T) {
	r := registry.New()
	c := NewCache()
	h := newHandle(t, r, 5)

	c.SetBound(ArrayBuffer(), h)
	got1, known1 := c.Current(ArrayBuffer())
	c.SetBound(ArrayBuffer(), h)
	got2, known2 := c.Current(ArrayBuffer())

	if !known1 || !known2 || got1 != h || got2 != h {
		t.Errorf("repeated SetBound changed the slot: (%v,%v) then (%v,%v)", got1, known1, got2, known2)
	}
}

func TestUnboundVersusUnknown(t *testing.T) {
	r := registry.New()
	c := NewCache()
	h := newHandle(t, r, 1)

	c.SetBound(Program(), h)
	c.SetUnbound(Program())
	got, known := c.Current(Program())
	if !known || !got.IsZero() {
		t.Errorf("Current after SetUnbound = (%v, %v), want (zero, true)", got, known)
	}

	c.SetUnknown(Program())
	if _, known := c.Current(Program()); known {
		t.Error("slot still known after SetUnknown")
	}
}

func TestScrubHandle(t *testing.T) {
	r := registry.New()
	c := NewCache()
	buf := newHandle(t, r, 1)
	other := newHandle(t, r, 2)
	layout := r.Insert(registry.KindVertexLayout, 3, registry.VertexLayoutMeta{})

	c.SetBound(ArrayBuffer(), buf)
	c.SetBound(TextureUnit(4), other)
	c.SetVertexConfig(layout, VertexConfig{Buffers: []registry.Handle{buf}})

	affected := c.ScrubHandle(buf)
	if len(affected) != 1 || affected[0] != ArrayBuffer() {
		t.Errorf("affected targets = %v, want [array-buffer]", affected)
	}

	got, known := c.Current(ArrayBuffer())
	if !known || !got.IsZero() {
		t.Errorf("scrubbed slot = (%v, %v), want known-unbound", got, known)
	}
	if got, known := c.Current(TextureUnit(4)); !known || got != other {
		t.Error("scrub touched an unrelated slot")
	}
	if _, ok := c.VertexConfig(layout); ok {
		t.Error("vertex config referencing the handle survived the scrub")
	}
}

func TestScrubZeroHandleIsNoop(t *testing.T) {
	c := NewCache()
	c.SetUnbound(Program())
	if affected := c.ScrubHandle(registry.Handle{}); affected != nil {
		t.Errorf("scrubbing the zero handle affected %v", affected)
	}
	// The unbound program slot must not be reported as holding the zero
	// handle.
	if got, known := c.Current(Program()); !known || !got.IsZero() {
		t.Errorf("program slot = (%v, %v), want known-unbound", got, known)
	}
}

func TestInvalidateAll(t *testing.T) {
	r := registry.New()
	c := NewCache()
	h := newHandle(t, r, 1)

	c.SetBound(Program(), h)
	c.SetFeature(FeatureBlend, true)
	c.SetBlendFunc(driver.SRC_ALPHA, driver.ONE_MINUS_SRC_ALPHA)
	c.SetViewport(Rect{Width: 640, Height: 480})

	c.InvalidateAll()

	if _, known := c.Current(Program()); known {
		t.Error("slot known after InvalidateAll")
	}
	if _, known := c.FeatureState(FeatureBlend); known {
		t.Error("feature known after InvalidateAll")
	}
	if _, _, known := c.BlendFunc(); known {
		t.Error("blend func known after InvalidateAll")
	}
	if _, known := c.Viewport(); known {
		t.Error("viewport known after InvalidateAll")
	}
}

func TestApplyBind(t *testing.T) {
	r := registry.New()
	c := NewCache()
	h := newHandle(t, r, 9)

	c.Apply(Transition{Kind: TransitionBind, Target: TextureUnit(2), Handle: h, DriverID: 9})
	if got, known := c.Current(TextureUnit(2)); !known || got != h {
		t.Errorf("Current = (%v, %v), want (%v, true)", got, known, h)
	}

	c.Apply(Transition{Kind: TransitionBind, Target: TextureUnit(2)})
	if got, known := c.Current(TextureUnit(2)); !known || !got.IsZero() {
		t.Errorf("Current after unbind = (%v, %v), want known-unbound", got, known)
	}
}

func TestApplyVertexPointers(t *testing.T) {
	r := registry.New()
	c := NewCache()
	layout := r.Insert(registry.KindVertexLayout, 1, registry.VertexLayoutMeta{})
	buf := newHandle(t, r, 2)
	idx := newHandle(t, r, 3)

	cfg := VertexConfig{Buffers: []registry.Handle{buf}, Index: idx}
	c.Apply(Transition{
		Kind: TransitionVertexPointers,
		Vertex: &VertexTransition{
			Layout:     layout,
			LayoutID:   1,
			Config:     cfg,
			LastBuffer: buf,
		},
	})

	if got, known := c.Current(VertexArray()); !known || got != layout {
		t.Errorf("vertex-array slot = (%v, %v), want layout", got, known)
	}
	if got, known := c.Current(ArrayBuffer()); !known || got != buf {
		t.Errorf("array-buffer slot = (%v, %v), want last bound buffer", got, known)
	}
	got, ok := c.VertexConfig(layout)
	if !ok || !got.Equal(cfg) {
		t.Errorf("VertexConfig = (%+v, %v), want recorded config", got, ok)
	}
}

func TestInvalidateTransition(t *testing.T) {
	r := registry.New()
	c := NewCache()
	h := newHandle(t, r, 1)

	c.SetBound(Program(), h)
	c.Invalidate(Transition{Kind: TransitionBind, Target: Program(), Handle: h})
	if _, known := c.Current(Program()); known {
		t.Error("slot known after Invalidate of its transition")
	}

	c.SetFeature(FeatureDepthTest, true)
	c.Invalidate(Transition{Kind: TransitionEnable, Feature: FeatureDepthTest})
	if _, known := c.FeatureState(FeatureDepthTest); known {
		t.Error("feature known after Invalidate")
	}
}

func TestFeatureAndValueState(t *testing.T) {
	c := NewCache()

	c.SetFeature(FeatureCullFace, false)
	enabled, known := c.FeatureState(FeatureCullFace)
	if !known || enabled {
		t.Errorf("FeatureState = (%v, %v), want known-disabled", enabled, known)
	}

	c.SetDepthFunc(driver.LEQUAL)
	fn, known := c.DepthFunc()
	if !known || fn != driver.LEQUAL {
		t.Errorf("DepthFunc = (%#x, %v), want LEQUAL", fn, known)
	}

	c.SetViewport(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vp, known := c.Viewport()
	if !known || vp != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Viewport = (%+v, %v)", vp, known)
	}
}

func TestStats(t *testing.T) {
	c := NewCache()
	c.NoteIssued()
	c.NoteSuppressed()
	c.NoteSuppressed()
	s := c.Stats()
	if s.BindsIssued != 1 || s.BindsSuppressed != 2 {
		t.Errorf("Stats = %+v, want issued=1 suppressed=2", s)
	}
}
