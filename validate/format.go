// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package validate

import (
	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
)

// vertexFormatInfo describes one vertex data format: component layout plus
// the raw pointer-call parameters.
type vertexFormatInfo struct {
	components int
	size       int // total bytes
	typ        driver.Enum
	normalized bool
	// integer marks formats that feed integer shader inputs without
	// float conversion.
	integer bool
}

var vertexFormats = map[gputypes.VertexFormat]vertexFormatInfo{
	gputypes.VertexFormatFloat32:   {1, 4, driver.FLOAT, false, false},
	gputypes.VertexFormatFloat32x2: {2, 8, driver.FLOAT, false, false},
	gputypes.VertexFormatFloat32x3: {3, 12, driver.FLOAT, false, false},
	gputypes.VertexFormatFloat32x4: {4, 16, driver.FLOAT, false, false},
	gputypes.VertexFormatFloat16x2: {2, 4, driver.HALF_FLOAT, false, false},
	gputypes.VertexFormatFloat16x4: {4, 8, driver.HALF_FLOAT, false, false},
	gputypes.VertexFormatUint32:    {1, 4, driver.UNSIGNED_INT, false, true},
	gputypes.VertexFormatSint32:    {1, 4, driver.INT, false, true},
	gputypes.VertexFormatUint8x4:   {4, 4, driver.UNSIGNED_BYTE, false, true},
	gputypes.VertexFormatUnorm8x4:  {4, 4, driver.UNSIGNED_BYTE, true, false},
	gputypes.VertexFormatSnorm8x4:  {4, 4, driver.BYTE, true, false},
	gputypes.VertexFormatUint16x2:  {2, 4, driver.UNSIGNED_SHORT, false, true},
	gputypes.VertexFormatSint16x2:  {2, 4, driver.SHORT, false, true},
	gputypes.VertexFormatUnorm16x2: {2, 4, driver.UNSIGNED_SHORT, true, false},
}

// VertexFormatSize returns the byte size of one element of the format, or
// zero for formats the layer does not know.
func VertexFormatSize(f gputypes.VertexFormat) int {
	return vertexFormats[f].size
}

// compatible reports whether data in format f can feed a shader input of
// type t. Float inputs accept float and normalized formats with matching
// component counts; integer inputs require a non-normalized integer format.
func compatible(f vertexFormatInfo, t registry.ShaderType) bool {
	switch t {
	case registry.TypeFloat:
		return f.components == 1 && !f.integer
	case registry.TypeVec2:
		return f.components == 2 && !f.integer
	case registry.TypeVec3:
		return f.components == 3 && !f.integer
	case registry.TypeVec4:
		return f.components == 4 && !f.integer
	case registry.TypeInt:
		return f.components == 1 && f.integer
	}
	return false
}

// indexFormatInfo describes an index element type. maxValue is 64-bit so
// that maxValue+1 is safe even for the full uint32 range on 32-bit ints.
type indexFormatInfo struct {
	size     int
	maxValue int64
	typ      driver.Enum
}

var indexFormats = map[gputypes.IndexFormat]indexFormatInfo{
	gputypes.IndexFormatUint16: {2, 1<<16 - 1, driver.UNSIGNED_SHORT},
	gputypes.IndexFormatUint32: {4, 1<<32 - 1, driver.UNSIGNED_INT},
}

// texFormatInfo maps a texture format to its driver parameters and
// attachment class.
type texFormatInfo struct {
	internal      driver.Enum
	uploadFormat  driver.Enum
	uploadType    driver.Enum
	bytesPerPixel int
	depth         bool
	stencil       bool
}

var textureFormats = map[gputypes.TextureFormat]texFormatInfo{
	gputypes.TextureFormatR8Unorm:    {driver.R8, driver.RED, driver.UNSIGNED_BYTE, 1, false, false},
	gputypes.TextureFormatRG8Unorm:   {driver.RG8, driver.RG, driver.UNSIGNED_BYTE, 2, false, false},
	gputypes.TextureFormatRGBA8Unorm: {driver.RGBA8, driver.RGBA, driver.UNSIGNED_BYTE, 4, false, false},
	gputypes.TextureFormatRGBA8UnormSrgb: {driver.SRGB8_ALPHA8, driver.RGBA, driver.UNSIGNED_BYTE, 4, false, false},
	gputypes.TextureFormatBGRA8Unorm: {driver.RGBA8, driver.BGRA, driver.UNSIGNED_BYTE, 4, false, false},
	gputypes.TextureFormatR32Float:   {driver.R32F, driver.RED, driver.FLOAT, 4, false, false},
	gputypes.TextureFormatRG32Float:  {driver.RG32F, driver.RG, driver.FLOAT, 8, false, false},
	gputypes.TextureFormatRGBA16Float: {driver.RGBA16F, driver.RGBA, driver.HALF_FLOAT, 8, false, false},
	gputypes.TextureFormatRGBA32Float: {driver.RGBA32F, driver.RGBA, driver.FLOAT, 16, false, false},
	gputypes.TextureFormatDepth24Plus: {driver.DEPTH_COMPONENT24, driver.DEPTH_COMPONENT, driver.UNSIGNED_INT, 4, true, false},
	gputypes.TextureFormatDepth32Float: {driver.DEPTH_COMPONENT32F, driver.DEPTH_COMPONENT, driver.FLOAT, 4, true, false},
	gputypes.TextureFormatDepth24PlusStencil8: {driver.DEPTH24_STENCIL8, driver.DEPTH_STENCIL, driver.UNSIGNED_INT, 4, true, true},
}

// TextureFormatSupported reports whether the layer knows how to express
// the format to the driver.
func TextureFormatSupported(f gputypes.TextureFormat) bool {
	_, ok := textureFormats[f]
	return ok
}

// TextureFormatInfo exposes the driver-facing parameters of a format for
// the emitter: sized internal format, upload format/type pair, and bytes
// per pixel.
func TextureFormatInfo(f gputypes.TextureFormat) (internal, uploadFormat, uploadType driver.Enum, bytesPerPixel int, ok bool) {
	info, ok := textureFormats[f]
	return info.internal, info.uploadFormat, info.uploadType, info.bytesPerPixel, ok
}

// IsDepthFormat reports whether the format is a depth or depth/stencil
// format (and therefore only valid as a depth attachment).
func IsDepthFormat(f gputypes.TextureFormat) bool {
	return textureFormats[f].depth
}

// HasStencil reports whether the format carries a stencil aspect, which
// selects the combined depth/stencil attachment point.
func HasStencil(f gputypes.TextureFormat) bool {
	return textureFormats[f].stencil
}

var blendFactors = map[gputypes.BlendFactor]driver.Enum{
	gputypes.BlendFactorZero:             driver.ZERO,
	gputypes.BlendFactorOne:              driver.ONE,
	gputypes.BlendFactorSrc:              driver.SRC_COLOR,
	gputypes.BlendFactorOneMinusSrc:      driver.ONE_MINUS_SRC_COLOR,
	gputypes.BlendFactorSrcAlpha:         driver.SRC_ALPHA,
	gputypes.BlendFactorOneMinusSrcAlpha: driver.ONE_MINUS_SRC_ALPHA,
	gputypes.BlendFactorDst:              driver.DST_COLOR,
	gputypes.BlendFactorOneMinusDst:      driver.ONE_MINUS_DST_COLOR,
	gputypes.BlendFactorDstAlpha:         driver.DST_ALPHA,
	gputypes.BlendFactorOneMinusDstAlpha: driver.ONE_MINUS_DST_ALPHA,
}

var compareFuncs = map[gputypes.CompareFunction]driver.Enum{
	gputypes.CompareFunctionNever:        driver.NEVER,
	gputypes.CompareFunctionLess:         driver.LESS,
	gputypes.CompareFunctionEqual:        driver.EQUAL,
	gputypes.CompareFunctionLessEqual:    driver.LEQUAL,
	gputypes.CompareFunctionGreater:      driver.GREATER,
	gputypes.CompareFunctionNotEqual:     driver.NOTEQUAL,
	gputypes.CompareFunctionGreaterEqual: driver.GEQUAL,
	gputypes.CompareFunctionAlways:       driver.ALWAYS,
}
