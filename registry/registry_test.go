// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestInsertLookupRoundTrip(t *testing.T) {
	r := New()
	meta := BufferMeta{Size: 64, Usage: UsageStatic}
	h := r.Insert(KindBuffer, 7, meta)

	rec, ok := r.Lookup(h)
	if !ok {
		t.Fatal("Lookup missed a freshly inserted handle")
	}
	if !rec.Valid() {
		t.Error("fresh record should be valid")
	}
	if rec.Kind != KindBuffer {
		t.Errorf("Kind = %v, want buffer", rec.Kind)
	}
	if rec.DriverID != 7 {
		t.Errorf("DriverID = %d, want 7", rec.DriverID)
	}
	if got := rec.Meta.(BufferMeta); got != meta {
		t.Errorf("Meta = %+v, want %+v", got, meta)
	}
}

func TestZeroHandle(t *testing.T) {
	r := New()
	var h Handle
	if !h.IsZero() {
		t.Error("zero Handle should report IsZero")
	}
	if _, ok := r.Lookup(h); ok {
		t.Error("zero handle should not resolve")
	}
	if _, ok := r.Invalidate(h); ok {
		t.Error("invalidating the zero handle should be a no-op")
	}
}

func TestInvalidate(t *testing.T) {
	r := New()
	h := r.Insert(KindTexture, 3, TextureMeta{Width: 16, Height: 16, Format: gputypes.TextureFormatRGBA8Unorm, MipLevels: 1})

	rec, ok := r.Lookup(h)
	if !ok {
		t.Fatal("lookup missed")
	}

	gone, ok := r.Invalidate(h)
	if !ok {
		t.Fatal("Invalidate missed a live handle")
	}
	if gone.DriverID != 3 {
		t.Errorf("revoked DriverID = %d, want 3", gone.DriverID)
	}
	if _, ok := r.Lookup(h); ok {
		t.Error("destroyed handle must not resolve")
	}
	if rec.Valid() {
		t.Error("record held across destroy must report validity=false")
	}
	if _, ok := r.Invalidate(h); ok {
		t.Error("double Invalidate should be a no-op")
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

// No sequence of create/destroy may let a stale handle resolve, even after
// its slot has been recycled for a new resource.
func TestStaleHandleAfterSlotReuse(t *testing.T) {
	r := New()
	old := r.Insert(KindBuffer, 1, BufferMeta{Size: 4})
	r.Invalidate(old)

	fresh := r.Insert(KindBuffer, 2, BufferMeta{Size: 8})
	if fresh == old {
		t.Fatal("recycled slot must not reissue an identical handle")
	}
	if _, ok := r.Lookup(old); ok {
		t.Error("stale handle resolved after its slot was reused")
	}
	rec, ok := r.Lookup(fresh)
	if !ok || rec.DriverID != 2 {
		t.Errorf("fresh handle lookup = (%+v, %v), want DriverID 2", rec, ok)
	}
}

func TestCreateDestroySequences(t *testing.T) {
	r := New()
	var handles []Handle
	for i := 0; i < 100; i++ {
		handles = append(handles, r.Insert(KindBuffer, uint32(i), BufferMeta{Size: i}))
		if i%3 == 0 {
			r.Invalidate(handles[i/2])
		}
	}
	for _, h := range handles {
		rec, ok := r.Lookup(h)
		if ok && !rec.Valid() {
			t.Fatal("lookup returned an invalid record")
		}
	}
	for _, h := range r.LiveHandles() {
		r.Invalidate(h)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after destroying everything, want 0", r.Len())
	}
	for _, h := range handles {
		if _, ok := r.Lookup(h); ok {
			t.Fatal("handle resolved after destroy")
		}
	}
}

func TestLiveHandles(t *testing.T) {
	r := New()
	a := r.Insert(KindBuffer, 1, BufferMeta{Size: 1})
	b := r.Insert(KindTexture, 2, TextureMeta{Width: 1, Height: 1, Format: gputypes.TextureFormatR8Unorm, MipLevels: 1})
	r.Invalidate(a)

	live := r.LiveHandles()
	if len(live) != 1 || live[0] != b {
		t.Errorf("LiveHandles = %v, want just the texture handle", live)
	}
}

func TestEffectiveStride(t *testing.T) {
	size := func(f gputypes.VertexFormat) int {
		if f == gputypes.VertexFormatFloat32x2 {
			return 8
		}
		return 12
	}
	m := VertexLayoutMeta{Attributes: []VertexAttribute{
		{Location: 0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
		{Location: 1, Format: gputypes.VertexFormatFloat32x2, Offset: 12},
	}}
	if got := m.EffectiveStride(size); got != 20 {
		t.Errorf("tight-packed stride = %d, want 20", got)
	}
	m.Stride = 32
	if got := m.EffectiveStride(size); got != 32 {
		t.Errorf("declared stride = %d, want 32", got)
	}
}
