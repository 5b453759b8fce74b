// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package driver defines the function-table interface to the underlying
// graphics driver, along with the enum vocabulary and version parsing the
// rest of the library needs.
//
// The driver exposed by OpenGL-class APIs is a set of free functions bound
// to an implicit, thread-local context. Driver abstracts that set as a
// plain Go interface so the safety layer above it can be exercised against
// a real shared library (see driver/libgl) or a scriptable in-memory fake
// (see driver/drivertest) without changing a line of engine code.
//
// Nothing in this package tracks state or validates calls. Higher layers
// own that; Driver implementations are expected to be dumb pipes into the
// native entry points.
package driver
