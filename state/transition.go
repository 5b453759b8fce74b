// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package state

import (
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
)

// TransitionKind identifies the type of a state transition.
type TransitionKind uint8

const (
	// TransitionBind binds a resource (or nothing) to a target slot.
	TransitionBind TransitionKind = iota
	// TransitionVertexPointers reconfigures a vertex-array object's
	// attribute sources.
	TransitionVertexPointers
	// TransitionEnable flips a feature switch on.
	TransitionEnable
	// TransitionDisable flips a feature switch off.
	TransitionDisable
	// TransitionBlendFunc sets the blend factor pair.
	TransitionBlendFunc
	// TransitionDepthFunc sets the depth comparison function.
	TransitionDepthFunc
	// TransitionViewport sets the viewport rectangle.
	TransitionViewport
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionBind:
		return "bind"
	case TransitionVertexPointers:
		return "vertex-pointers"
	case TransitionEnable:
		return "enable"
	case TransitionDisable:
		return "disable"
	case TransitionBlendFunc:
		return "blend-func"
	case TransitionDepthFunc:
		return "depth-func"
	case TransitionViewport:
		return "viewport"
	}
	return "unknown"
}

// AttributePointer is one resolved attribute specification within a
// vertex-pointers transition: everything the emitter needs to issue the
// pointer call without further lookups.
type AttributePointer struct {
	Location   int
	Components int
	Type       driver.Enum
	Normalized bool
	// Integer selects the integer pointer entry point (no float
	// conversion) for integer shader inputs.
	Integer  bool
	Offset   int
	BufferID uint32
}

// VertexTransition carries a vertex-pointers transition's payload.
type VertexTransition struct {
	Layout   registry.Handle
	LayoutID uint32
	Stride   int
	Attrs    []AttributePointer
	// Config is the source set the VAO holds after the transition.
	Config VertexConfig
	// IndexID is the element-array buffer to bind into the VAO, if
	// Config.Index is nonzero.
	IndexID uint32
	// LastBuffer is the handle left on the array-buffer target after
	// the attribute pointers are specified.
	LastBuffer registry.Handle
}

// Transition is one driver state change the emitter must perform. It is a
// typed command struct: Kind selects which of the payload fields apply.
type Transition struct {
	Kind TransitionKind

	// TransitionBind.
	Target   Target
	Handle   registry.Handle // zero = unbind
	DriverID uint32

	// TransitionVertexPointers.
	Vertex *VertexTransition

	// TransitionEnable / TransitionDisable.
	Feature Feature

	// TransitionBlendFunc.
	SrcFactor, DstFactor driver.Enum

	// TransitionDepthFunc.
	DepthFn driver.Enum

	// TransitionViewport.
	Viewport Rect
}

// Apply records the transition's effect, making the cache match the driver
// state the emitter just established. Apply never issues driver calls.
func (c *Cache) Apply(t Transition) {
	switch t.Kind {
	case TransitionBind:
		if t.Handle.IsZero() {
			c.SetUnbound(t.Target)
		} else {
			c.SetBound(t.Target, t.Handle)
		}
	case TransitionVertexPointers:
		v := t.Vertex
		c.SetBound(VertexArray(), v.Layout)
		c.SetVertexConfig(v.Layout, v.Config)
		if !v.LastBuffer.IsZero() {
			c.SetBound(ArrayBuffer(), v.LastBuffer)
		}
	case TransitionEnable:
		c.SetFeature(t.Feature, true)
	case TransitionDisable:
		c.SetFeature(t.Feature, false)
	case TransitionBlendFunc:
		c.SetBlendFunc(t.SrcFactor, t.DstFactor)
	case TransitionDepthFunc:
		c.SetDepthFunc(t.DepthFn)
	case TransitionViewport:
		c.SetViewport(t.Viewport)
	}
}

// Invalidate downgrades the slots the transition touches to unknown. Used
// after a driver execution error, when the true state of exactly those
// slots can no longer be trusted.
func (c *Cache) Invalidate(t Transition) {
	switch t.Kind {
	case TransitionBind:
		c.SetUnknown(t.Target)
	case TransitionVertexPointers:
		c.SetUnknown(VertexArray())
		c.SetUnknown(ArrayBuffer())
		delete(c.vertex, t.Vertex.Layout)
	case TransitionEnable, TransitionDisable:
		c.SetFeatureUnknown(t.Feature)
	case TransitionBlendFunc:
		c.blend = blendState{}
	case TransitionDepthFunc:
		c.depth = depthState{}
	case TransitionViewport:
		c.viewport = viewportState{}
	}
}
