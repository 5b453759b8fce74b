// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package driver

// Driver enumerants, named as the native API names them. Only the values
// this layer actually touches are listed.
const (
	// Errors.
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	// Identity strings.
	VENDOR         Enum = 0x1F00
	RENDERER       Enum = 0x1F01
	VERSION        Enum = 0x1F02
	EXTENSIONS     Enum = 0x1F03
	NUM_EXTENSIONS Enum = 0x821D

	// Buffer targets.
	ARRAY_BUFFER          Enum = 0x8892
	ELEMENT_ARRAY_BUFFER  Enum = 0x8893
	PIXEL_UNPACK_BUFFER   Enum = 0x88EC
	UNIFORM_BUFFER        Enum = 0x8A11
	SHADER_STORAGE_BUFFER Enum = 0x90D2

	// Buffer usage hints and storage flags.
	STREAM_DRAW         Enum = 0x88E0
	STATIC_DRAW         Enum = 0x88E4
	DYNAMIC_DRAW        Enum = 0x88E8
	MAP_READ_BIT        Enum = 0x0001
	DYNAMIC_STORAGE_BIT Enum = 0x0100

	// Texture targets, units, and parameters.
	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE0           Enum = 0x84C0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803

	// Filters and wrap modes.
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	REPEAT                 Enum = 0x2901
	CLAMP_TO_EDGE          Enum = 0x812F
	MIRRORED_REPEAT        Enum = 0x8370

	// Pixel and attribute component types.
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	HALF_FLOAT     Enum = 0x140B

	// Sized internal formats.
	R8               Enum = 0x8229
	RG8              Enum = 0x822B
	RGBA8            Enum = 0x8058
	SRGB8_ALPHA8     Enum = 0x8C43
	R32F             Enum = 0x822E
	RG32F            Enum = 0x8230
	RGBA16F          Enum = 0x881A
	RGBA32F          Enum = 0x8814
	DEPTH_COMPONENT24  Enum = 0x81A6
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0
	STENCIL_INDEX8     Enum = 0x8D48

	// Unsized upload formats.
	RED           Enum = 0x1903
	RG            Enum = 0x8227
	RGBA          Enum = 0x1908
	BGRA          Enum = 0x80E1
	DEPTH_COMPONENT Enum = 0x1902
	DEPTH_STENCIL   Enum = 0x84F9

	// Framebuffers and renderbuffers.
	FRAMEBUFFER              Enum = 0x8D40
	READ_FRAMEBUFFER         Enum = 0x8CA8
	DRAW_FRAMEBUFFER         Enum = 0x8CA9
	RENDERBUFFER             Enum = 0x8D41
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5

	FRAMEBUFFER_INCOMPLETE_ATTACHMENT Enum = 0x8CD6
	FRAMEBUFFER_UNSUPPORTED           Enum = 0x8CDD

	// Feature switches.
	BLEND        Enum = 0x0BE2
	DEPTH_TEST   Enum = 0x0B71
	SCISSOR_TEST Enum = 0x0C11
	CULL_FACE    Enum = 0x0B44

	// Blend factors.
	ZERO                Enum = 0x0000
	ONE                 Enum = 0x0001
	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305
	DST_COLOR           Enum = 0x0306
	ONE_MINUS_DST_COLOR Enum = 0x0307

	// Depth comparison functions.
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// Clear masks.
	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000

	// Queries.
	SAMPLES_PASSED         Enum = 0x8914
	ANY_SAMPLES_PASSED     Enum = 0x8C2F
	TIME_ELAPSED           Enum = 0x88BF
	QUERY_RESULT           Enum = 0x8866
	QUERY_RESULT_AVAILABLE Enum = 0x8867

	// Limits.
	MAX_TEXTURE_SIZE                    Enum = 0x0D33
	MAX_VERTEX_ATTRIBS                  Enum = 0x8869
	MAX_COMBINED_TEXTURE_IMAGE_UNITS    Enum = 0x8B4D
	MAX_COLOR_ATTACHMENTS               Enum = 0x8CDF
	MAX_RENDERBUFFER_SIZE               Enum = 0x84E8
	MAX_SHADER_STORAGE_BUFFER_BINDINGS  Enum = 0x90DD
	MAX_COMPUTE_WORK_GROUP_INVOCATIONS  Enum = 0x90EB

	// Memory barrier bits.
	SHADER_STORAGE_BARRIER_BIT Enum = 0x2000
	ALL_BARRIER_BITS           Enum = 0xFFFFFFFF
)

// ErrorString names a driver error code for diagnostics.
func ErrorString(e Enum) string {
	switch e {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return "UNKNOWN_ERROR"
}
