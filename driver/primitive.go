// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package driver

// Primitive selects how a draw call assembles vertices.
type Primitive uint8

const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// Enum returns the raw driver mode for the primitive.
func (p Primitive) Enum() Enum {
	switch p {
	case Points:
		return 0x0000
	case Lines:
		return 0x0001
	case LineStrip:
		return 0x0003
	case TriangleStrip:
		return 0x0005
	case TriangleFan:
		return 0x0006
	default:
		return 0x0004 // TRIANGLES
	}
}

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	}
	return "unknown"
}
