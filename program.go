// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"fmt"

	"github.com/tdoylend/glium/registry"
)

// Reflected program interface types.
type (
	ShaderType      = registry.ShaderType
	ShaderAttribute = registry.ShaderAttribute
	ShaderUniform   = registry.ShaderUniform
)

const (
	TypeFloat     = registry.TypeFloat
	TypeVec2      = registry.TypeVec2
	TypeVec3      = registry.TypeVec3
	TypeVec4      = registry.TypeVec4
	TypeInt       = registry.TypeInt
	TypeMat4      = registry.TypeMat4
	TypeSampler2D = registry.TypeSampler2D
)

// ProgramDesc hands an externally linked program to the layer. Shader
// compilation and linking are a collaborator's job; the layer takes
// ownership of the linked object plus its reflected interface and deletes
// it on Destroy or Close.
type ProgramDesc struct {
	// DriverID is the linked driver program object.
	DriverID   uint32
	Attributes []ShaderAttribute
	Uniforms   []ShaderUniform
	// Compute marks a program usable only via Dispatch, never Draw.
	Compute bool
}

// Program is a handle to an adopted program owned by a Context.
type Program struct {
	ctx *Context
	h   registry.Handle
}

// AdoptProgram records an externally linked program and its reflection.
func (c *Context) AdoptProgram(desc ProgramDesc) (Program, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Program{}, ErrContextClosed
	}
	if desc.DriverID == 0 {
		return Program{}, fmt.Errorf("%w: program driver id is zero", ErrInvalidDescriptor)
	}
	seen := make(map[string]bool, len(desc.Uniforms))
	for _, u := range desc.Uniforms {
		if seen[u.Name] {
			return Program{}, fmt.Errorf("%w: duplicate uniform %q", ErrInvalidDescriptor, u.Name)
		}
		seen[u.Name] = true
	}

	h := c.reg.Insert(registry.KindProgram, desc.DriverID, registry.ProgramMeta{
		Attributes: desc.Attributes,
		Uniforms:   desc.Uniforms,
		Compute:    desc.Compute,
	})
	c.log.Debug("glium: program adopted",
		"handle", h.String(), "attributes", len(desc.Attributes),
		"uniforms", len(desc.Uniforms), "compute", desc.Compute)
	return Program{ctx: c, h: h}, nil
}

// Destroy deletes the program object.
func (p Program) Destroy() error { return p.ctx.destroy(p.h) }
