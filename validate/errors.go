// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/tdoylend/glium/registry"
)

// InvalidHandleError reports a request referencing a handle that does not
// resolve to a live resource of the expected kind. This is always a caller
// usage defect (destroyed resource, zero handle, or kind confusion), never
// a driver error: it is raised before any driver call.
type InvalidHandleError struct {
	Handle registry.Handle
	// Want is the resource kind the request slot requires.
	Want registry.Kind
	// Got is the kind actually found, or KindInvalid when the handle
	// did not resolve at all.
	Got registry.Kind
}

func (e *InvalidHandleError) Error() string {
	if e.Got == registry.KindInvalid {
		if e.Want == registry.KindInvalid {
			return fmt.Sprintf("validate: %v does not resolve to a live resource", e.Handle)
		}
		return fmt.Sprintf("validate: %v does not resolve to a live %v", e.Handle, e.Want)
	}
	return fmt.Sprintf("validate: %v is a %v, want a %v", e.Handle, e.Got, e.Want)
}

// AttributeMismatchError reports a vertex attribute that cannot be fed
// from the request's vertex sources: missing layout entry, incompatible
// format, or a byte range exceeding the source buffer.
type AttributeMismatchError struct {
	// Attribute is the shader-side attribute name, when known.
	Attribute string
	Location  int
	Reason    string
}

func (e *AttributeMismatchError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("validate: attribute at location %d: %s", e.Location, e.Reason)
	}
	return fmt.Sprintf("validate: attribute %q (location %d): %s", e.Attribute, e.Location, e.Reason)
}

// IndexRangeError reports an index source whose element type or length
// cannot cover the requested draw.
type IndexRangeError struct {
	Reason string
}

func (e *IndexRangeError) Error() string {
	return "validate: index range: " + e.Reason
}

// UniformTypeError reports a uniform binding that does not match the
// active program's reflected uniform list.
type UniformTypeError struct {
	Name string
	// Want is the reflected type; Got the supplied value's type. Both
	// are zero when the uniform does not exist at all.
	Want   registry.ShaderType
	Got    registry.ShaderType
	Reason string
}

func (e *UniformTypeError) Error() string {
	if e.Name == "" {
		return "validate: " + e.Reason
	}
	if e.Reason != "" {
		return fmt.Sprintf("validate: uniform %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("validate: uniform %q: have %v, program declares %v", e.Name, e.Got, e.Want)
}

// FramebufferCompatibilityError reports a framebuffer whose attachments
// cannot be rendered to together.
type FramebufferCompatibilityError struct {
	Reason string
}

func (e *FramebufferCompatibilityError) Error() string {
	return "validate: framebuffer: " + e.Reason
}
