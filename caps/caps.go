// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package caps builds the capability table: a process-wide, immutable
// description of what the active driver can do.
//
// The table is built exactly once per driver context, then consulted by
// value everywhere else. Feature availability varies with driver version
// and extension set at runtime; resolving it once at initialization turns
// per-call capability probing into a plain map read that is side-effect
// free and safe for concurrent use.
package caps

import (
	"fmt"
	"strings"

	"github.com/tdoylend/glium/driver"
)

// Feature names an optional driver capability the layer can exploit.
type Feature uint8

const (
	// FeatureComputeShader allows dispatching compute programs.
	FeatureComputeShader Feature = iota
	// FeatureSamplerObjects allows sampler state separate from textures.
	FeatureSamplerObjects
	// FeatureBufferStorage allows immutable buffer data stores.
	FeatureBufferStorage
	// FeatureTextureStorage allows immutable texture allocation.
	FeatureTextureStorage
	// FeatureBufferReadback allows reading buffer contents back.
	FeatureBufferReadback
	// FeatureTimerQuery allows time-elapsed query objects.
	FeatureTimerQuery
)

func (f Feature) String() string {
	switch f {
	case FeatureComputeShader:
		return "compute-shader"
	case FeatureSamplerObjects:
		return "sampler-objects"
	case FeatureBufferStorage:
		return "buffer-storage"
	case FeatureTextureStorage:
		return "texture-storage"
	case FeatureBufferReadback:
		return "buffer-readback"
	case FeatureTimerQuery:
		return "timer-query"
	}
	return "unknown-feature"
}

// Limit names a numeric driver limit.
type Limit uint8

const (
	MaxTextureSize Limit = iota
	MaxVertexAttributes
	MaxTextureUnits
	MaxColorAttachments
	MaxRenderbufferSize
	MaxStorageBufferBindings
	MaxComputeInvocations
)

func (l Limit) String() string {
	switch l {
	case MaxTextureSize:
		return "max-texture-size"
	case MaxVertexAttributes:
		return "max-vertex-attributes"
	case MaxTextureUnits:
		return "max-texture-units"
	case MaxColorAttachments:
		return "max-color-attachments"
	case MaxRenderbufferSize:
		return "max-renderbuffer-size"
	case MaxStorageBufferBindings:
		return "max-storage-buffer-bindings"
	case MaxComputeInvocations:
		return "max-compute-invocations"
	}
	return "unknown-limit"
}

var limitEnums = map[Limit]driver.Enum{
	MaxTextureSize:           driver.MAX_TEXTURE_SIZE,
	MaxVertexAttributes:      driver.MAX_VERTEX_ATTRIBS,
	MaxTextureUnits:          driver.MAX_COMBINED_TEXTURE_IMAGE_UNITS,
	MaxColorAttachments:      driver.MAX_COLOR_ATTACHMENTS,
	MaxRenderbufferSize:      driver.MAX_RENDERBUFFER_SIZE,
	MaxStorageBufferBindings: driver.MAX_SHADER_STORAGE_BUFFER_BINDINGS,
	MaxComputeInvocations:    driver.MAX_COMPUTE_WORK_GROUP_INVOCATIONS,
}

// entryPointNames are the optional entry points the table records. Core
// entry points present since the baseline version are not tracked.
var entryPointNames = []string{
	"glBufferStorage",
	"glGetBufferSubData",
	"glTexStorage2D",
	"glGenSamplers",
	"glBindBufferBase",
	"glVertexAttribIPointer",
	"glDispatchCompute",
	"glMemoryBarrier",
	"glBeginQuery",
	"glGetQueryObjectui64v",
}

// ConfigurationError reports a driver below the supported baseline (or an
// unintelligible version report). It is fatal: the layer requires a
// shader-capable driver and there is nothing to retry.
type ConfigurationError struct {
	// Raw is the version string as reported by the driver.
	Raw string
	// Reason describes what was wrong with it.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("caps: unsupported driver (%s): %q", e.Reason, e.Raw)
}

// CapabilityError reports an operation that requires a feature the active
// driver does not have. Like validation errors it is raised before any
// driver call is issued.
type CapabilityError struct {
	Feature Feature
	Op      string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("caps: %s requires the %s capability, which this driver lacks", e.Op, e.Feature)
}

// Table is the immutable capability table. Safe for concurrent reads.
type Table struct {
	version  driver.Version
	vendor   string
	renderer string

	extensions map[string]struct{}
	limits     map[Limit]int
	features   map[Feature]bool
	entries    map[string]bool
}

// Build queries the driver once and freezes the result.
//
// It fails with *ConfigurationError if the reported version cannot be
// parsed or is below the shader-capable baseline (OpenGL 2.0 / ES 2.0).
func Build(drv driver.Driver) (*Table, error) {
	raw := drv.GetString(driver.VERSION)
	v, err := driver.ParseVersion(raw)
	if err != nil {
		return nil, &ConfigurationError{Raw: raw, Reason: "unparseable version"}
	}
	if !v.AtLeast(driver.OpenGL, 2, 0) && !v.AtLeast(driver.OpenGLES, 2, 0) {
		return nil, &ConfigurationError{Raw: raw, Reason: "below shader-capable baseline"}
	}

	t := &Table{
		version:    v,
		vendor:     drv.GetString(driver.VENDOR),
		renderer:   drv.GetString(driver.RENDERER),
		extensions: make(map[string]struct{}),
		limits:     make(map[Limit]int),
		features:   make(map[Feature]bool),
		entries:    make(map[string]bool),
	}

	// Extension list: indexed query on modern drivers, one big string on
	// the baseline ones.
	if v.AtLeast(driver.OpenGL, 3, 0) || v.AtLeast(driver.OpenGLES, 3, 0) {
		n := drv.GetInteger(driver.NUM_EXTENSIONS)
		for i := 0; i < n; i++ {
			if ext := drv.GetStringi(driver.EXTENSIONS, uint32(i)); ext != "" {
				t.extensions[ext] = struct{}{}
			}
		}
	} else {
		for _, ext := range strings.Fields(drv.GetString(driver.EXTENSIONS)) {
			t.extensions[ext] = struct{}{}
		}
	}

	for limit, pname := range limitEnums {
		t.limits[limit] = drv.GetInteger(pname)
	}
	for _, name := range entryPointNames {
		t.entries[name] = drv.HasEntryPoint(name)
	}

	t.features[FeatureComputeShader] = t.entries["glDispatchCompute"] &&
		(v.AtLeast(driver.OpenGL, 4, 3) || v.AtLeast(driver.OpenGLES, 3, 1) ||
			t.Extension("GL_ARB_compute_shader"))
	t.features[FeatureSamplerObjects] = t.entries["glGenSamplers"] &&
		(v.AtLeast(driver.OpenGL, 3, 3) || v.AtLeast(driver.OpenGLES, 3, 0) ||
			t.Extension("GL_ARB_sampler_objects"))
	t.features[FeatureBufferStorage] = t.entries["glBufferStorage"] &&
		(v.AtLeast(driver.OpenGL, 4, 4) ||
			t.Extension("GL_ARB_buffer_storage") || t.Extension("GL_EXT_buffer_storage"))
	t.features[FeatureTextureStorage] = t.entries["glTexStorage2D"] &&
		(v.AtLeast(driver.OpenGL, 4, 2) || v.AtLeast(driver.OpenGLES, 3, 0) ||
			t.Extension("GL_ARB_texture_storage"))
	// GetBufferSubData never made it into ES.
	t.features[FeatureBufferReadback] = v.API == driver.OpenGL &&
		t.entries["glGetBufferSubData"]
	t.features[FeatureTimerQuery] = t.entries["glGetQueryObjectui64v"] &&
		(v.AtLeast(driver.OpenGL, 3, 3) ||
			t.Extension("GL_ARB_timer_query") || t.Extension("GL_EXT_disjoint_timer_query"))

	return t, nil
}

// Version returns the parsed driver version.
func (t *Table) Version() driver.Version { return t.version }

// Vendor returns the driver's VENDOR string.
func (t *Table) Vendor() string { return t.vendor }

// Renderer returns the driver's RENDERER string.
func (t *Table) Renderer() string { return t.renderer }

// Supports reports whether the driver has the feature.
func (t *Table) Supports(f Feature) bool { return t.features[f] }

// Limit returns the driver's value for a numeric limit.
func (t *Table) Limit(l Limit) int { return t.limits[l] }

// Extension reports whether the named extension is present.
func (t *Table) Extension(name string) bool {
	_, ok := t.extensions[name]
	return ok
}

// Extensions returns the extension names in no particular order.
func (t *Table) Extensions() []string {
	out := make([]string, 0, len(t.extensions))
	for ext := range t.extensions {
		out = append(out, ext)
	}
	return out
}

// HasEntryPoint reports whether the named optional entry point resolved.
func (t *Table) HasEntryPoint(name string) bool { return t.entries[name] }

// Require returns a *CapabilityError for op unless the feature is present.
func (t *Table) Require(f Feature, op string) error {
	if t.features[f] {
		return nil
	}
	return &CapabilityError{Feature: f, Op: op}
}
