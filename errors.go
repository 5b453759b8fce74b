// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"errors"
	"fmt"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/validate"
)

var (
	// ErrContextClosed is returned by every operation after Close.
	ErrContextClosed = errors.New("glium: context is closed")

	// ErrInvalidDescriptor is returned when a resource descriptor is
	// malformed before any driver call is attempted.
	ErrInvalidDescriptor = errors.New("glium: invalid resource descriptor")

	// ErrBufferRange is returned when a read or write range falls
	// outside the buffer.
	ErrBufferRange = errors.New("glium: byte range exceeds buffer bounds")

	// ErrTextureRegion is returned when an upload region falls outside
	// the texture level.
	ErrTextureRegion = errors.New("glium: region exceeds texture bounds")

	// ErrQueryActive is returned by Query.Begin while another query of
	// the same target is running.
	ErrQueryActive = errors.New("glium: a query is already active on this target")

	// ErrQueryNotActive is returned by Query.End when the query was
	// never begun.
	ErrQueryNotActive = errors.New("glium: query is not active")
)

// DriverAllocationError reports that the driver refused to allocate a
// resource (usually out of memory). The partial allocation is rolled back
// before the error is returned.
type DriverAllocationError struct {
	// Resource names what was being allocated ("buffer", "texture", ...).
	Resource string
	Code     driver.Enum
}

func (e *DriverAllocationError) Error() string {
	return fmt.Sprintf("glium: driver refused %s allocation: %s", e.Resource, driver.ErrorString(e.Code))
}

// DriverExecutionError reports a driver error raised by a command that
// passed validation. It indicates a layer or driver defect, not caller
// misuse. The cache slots the command touched are marked unknown before
// the error is returned, so subsequent commands re-establish state
// explicitly.
type DriverExecutionError struct {
	// Op names the failed command ("draw", "dispatch", "buffer write").
	Op   string
	Code driver.Enum
}

func (e *DriverExecutionError) Error() string {
	return fmt.Sprintf("glium: %s failed after validation: driver reported %s", e.Op, driver.ErrorString(e.Code))
}

// Validation error types, re-exported so callers matching on command
// errors need only this package.
type (
	InvalidHandleError            = validate.InvalidHandleError
	AttributeMismatchError        = validate.AttributeMismatchError
	IndexRangeError               = validate.IndexRangeError
	UniformTypeError              = validate.UniformTypeError
	FramebufferCompatibilityError = validate.FramebufferCompatibilityError
)
