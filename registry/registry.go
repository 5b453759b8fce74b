// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package registry owns the mapping from opaque resource handles to their
// metadata. It is the single source of truth for which driver-side objects
// exist and whether a handle held by the application is still alive.
//
// The registry is pure bookkeeping: it never issues driver calls. The
// facade layer allocates and deletes driver objects and records the result
// here, which keeps the registry (and everything built on it, like the
// validator) testable without a driver present.
//
// Handles are an index plus a generation. Invalidating a record bumps the
// slot's generation before the slot can be reused, so a stale handle held
// after destruction can never resolve to a newer resource: lookups with an
// old generation simply miss. This gives use-after-destroy detection as
// checked data rather than as a memory-safety accident.
package registry

// Handle is an opaque reference to a registered resource.
//
// The zero Handle references nothing and is used throughout the library to
// mean "no resource" (e.g. the default framebuffer).
type Handle struct {
	idx uint32 // slot index + 1; 0 means the zero Handle
	gen uint32
}

// IsZero reports whether h is the zero "no resource" handle.
func (h Handle) IsZero() bool { return h.idx == 0 }

// String identifies the handle for diagnostics.
func (h Handle) String() string {
	if h.IsZero() {
		return "handle(none)"
	}
	return "handle(" + uitoa(h.idx-1) + "." + uitoa(h.gen) + ")"
}

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[pos:])
}

type slot struct {
	gen  uint32
	live bool
	rec  Record
}

// Registry is an arena of resource records.
//
// It is confined to the context's driving goroutine, like every mutable
// component of the layer, and performs no locking.
type Registry struct {
	slots []slot
	free  []uint32
	live  int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Insert registers a live resource and returns its owning handle.
func (r *Registry) Insert(kind Kind, driverID uint32, meta Metadata) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = uint32(len(r.slots) - 1)
	}
	s := &r.slots[idx]
	s.live = true
	s.rec = Record{Kind: kind, DriverID: driverID, Meta: meta, valid: true}
	r.live++
	return Handle{idx: idx + 1, gen: s.gen}
}

// Lookup resolves a handle to its record.
//
// It fails soft: a zero, stale, or never-issued handle returns (nil, false)
// rather than panicking. Callers that cannot tolerate a missing resource
// treat the miss as a usage error.
func (r *Registry) Lookup(h Handle) (*Record, bool) {
	s := r.slot(h)
	if s == nil || !s.live {
		return nil, false
	}
	return &s.rec, true
}

// Invalidate revokes a handle. The record's validity flips to false, the
// slot's generation is bumped so outstanding copies of the handle miss
// forever, and the slot becomes reusable.
//
// The revoked record is returned so the caller can release the driver-side
// object it describes. Invalidating a zero or stale handle is a no-op.
func (r *Registry) Invalidate(h Handle) (Record, bool) {
	s := r.slot(h)
	if s == nil || !s.live {
		return Record{}, false
	}
	rec := s.rec
	s.rec.valid = false
	s.live = false
	s.gen++
	s.rec = Record{}
	r.free = append(r.free, h.idx-1)
	r.live--
	return rec, true
}

// Len returns the number of live records.
func (r *Registry) Len() int { return r.live }

// LiveHandles returns a handle for every live record, in slot order.
// The facade uses this to tear down remaining resources on Close.
func (r *Registry) LiveHandles() []Handle {
	out := make([]Handle, 0, r.live)
	for i := range r.slots {
		if r.slots[i].live {
			out = append(out, Handle{idx: uint32(i) + 1, gen: r.slots[i].gen})
		}
	}
	return out
}

func (r *Registry) slot(h Handle) *slot {
	if h.idx == 0 || int(h.idx) > len(r.slots) {
		return nil
	}
	s := &r.slots[h.idx-1]
	if s.gen != h.gen {
		return nil
	}
	return s
}
