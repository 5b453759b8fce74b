// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package glium is a safety and ergonomics layer over stateful,
// bind-then-use graphics drivers of the OpenGL family.
//
// The raw driver API is a large mutable state machine: resources are
// bound to implicit targets and subsequent calls operate on whatever
// happens to be bound. glium replaces that with explicit, validated
// commands. Callers describe a draw or dispatch in full — program,
// vertex sources, textures, uniforms, render target — and the layer
// checks the description against its own records before a single driver
// call is made. Invalid work is rejected with a typed error instead of
// corrupting driver state or rendering garbage.
//
// # Architecture
//
//	driver     — the raw entry-point table (and driver/libgl to load one)
//	caps       — immutable capability table built at startup
//	registry   — generation-checked handles for every resource
//	state      — shadow copy of the driver's bindable state
//	validate   — pure request validation and transition planning
//	glium      — the Context facade; the only component issuing calls
//
// # Usage
//
//	drv, err := libgl.Load()
//	if err != nil { ... }
//	ctx, err := glium.NewContext(drv, glium.Options{})
//	if err != nil { ... }
//	defer ctx.Close()
//
//	vbo, err := ctx.CreateBuffer(glium.BufferDesc{Data: vertices})
//	...
//	err = ctx.Draw(glium.DrawCommand{
//		Program: prog,
//		Layout:  layout,
//		Buffers: []glium.Buffer{vbo},
//		Mode:    glium.Triangles,
//		Count:   3,
//	})
//
// Redundant state changes are suppressed automatically: drawing twice
// with the same program issues one UseProgram. If external code mutates
// the driver behind the layer's back, call
// [Context.InvalidateCachedState] before the next command.
//
// A Context is confined to the single goroutine that owns the underlying
// driver context. Concurrent use panics.
package glium
