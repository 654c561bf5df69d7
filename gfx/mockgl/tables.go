// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mockgl

import (
	"golang.org/x/exp/maps"

	gl "github.com/google/ion/gfx/glenum"
)

// The argument categories validated by the entry points. An argument
// outside its set raises INVALID_ENUM.
var (
	capabilities = gl.NewSet(
		gl.BLEND, gl.CULL_FACE, gl.DEPTH_TEST, gl.DITHER, gl.MULTISAMPLE,
		gl.POLYGON_OFFSET_FILL, gl.SAMPLE_ALPHA_TO_COVERAGE, gl.SAMPLE_COVERAGE,
		gl.SCISSOR_TEST, gl.STENCIL_TEST, gl.POINT_SPRITE, gl.PROGRAM_POINT_SIZE,
		gl.RASTERIZER_DISCARD, gl.PRIMITIVE_RESTART_FIXED_INDEX, gl.DEBUG_OUTPUT,
		gl.DEBUG_OUTPUT_SYNCHRONOUS, gl.SAMPLE_SHADING, gl.SAMPLE_MASK,
		gl.CLIP_DISTANCE0, gl.CLIP_DISTANCE1, gl.CLIP_DISTANCE2, gl.CLIP_DISTANCE3,
		gl.CLIP_DISTANCE4, gl.CLIP_DISTANCE5, gl.CLIP_DISTANCE6, gl.CLIP_DISTANCE7,
	)

	blendEquations = gl.NewSet(
		gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT, gl.MIN, gl.MAX,
	)

	blendFactors = gl.NewSet(
		gl.ZERO, gl.ONE, gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR, gl.DST_COLOR,
		gl.ONE_MINUS_DST_COLOR, gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.DST_ALPHA,
		gl.ONE_MINUS_DST_ALPHA, gl.CONSTANT_COLOR, gl.ONE_MINUS_CONSTANT_COLOR,
		gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA, gl.SRC_ALPHA_SATURATE,
	)

	faces      = gl.NewSet(gl.FRONT, gl.BACK, gl.FRONT_AND_BACK)
	frontFaces = gl.NewSet(gl.CW, gl.CCW)

	compareFuncs = gl.NewSet(
		gl.NEVER, gl.LESS, gl.EQUAL, gl.LEQUAL, gl.GREATER, gl.NOTEQUAL,
		gl.GEQUAL, gl.ALWAYS,
	)

	stencilOps = gl.NewSet(
		gl.KEEP, gl.ZERO, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT,
		gl.INCR_WRAP, gl.DECR_WRAP,
	)

	hintTargets = gl.NewSet(gl.GENERATE_MIPMAP_HINT, gl.FRAGMENT_SHADER_DERIVATIVE_HINT)
	hintModes   = gl.NewSet(gl.FASTEST, gl.NICEST, gl.DONT_CARE)

	pixelStoreNames = gl.NewSet(gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT)

	drawModes = gl.NewSet(
		gl.POINTS, gl.LINES, gl.LINE_LOOP, gl.LINE_STRIP, gl.TRIANGLES,
		gl.TRIANGLE_STRIP, gl.TRIANGLE_FAN,
	)

	indexTypes = gl.NewSet(gl.UNSIGNED_BYTE, gl.UNSIGNED_SHORT, gl.UNSIGNED_INT)

	textureTargets = gl.NewSet(
		gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D, gl.TEXTURE_2D_ARRAY,
		gl.TEXTURE_2D_MULTISAMPLE, gl.TEXTURE_2D_MULTISAMPLE_ARRAY, gl.TEXTURE_3D,
		gl.TEXTURE_CUBE_MAP, gl.TEXTURE_CUBE_MAP_ARRAY, gl.TEXTURE_EXTERNAL_OES,
	)

	cubeFaces = gl.NewSet(
		gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
	)

	// image2DTargets accept TexImage2D and friends.
	image2DTargets = gl.NewSet(gl.TEXTURE_2D, gl.TEXTURE_1D_ARRAY).Union(cubeFaces)

	// image3DTargets accept TexImage3D and friends.
	image3DTargets = gl.NewSet(gl.TEXTURE_3D, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_CUBE_MAP_ARRAY)

	minFilters = gl.NewSet(
		gl.NEAREST, gl.LINEAR, gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST,
		gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR,
	)
	magFilters = gl.NewSet(gl.NEAREST, gl.LINEAR)
	wrapModes  = gl.NewSet(gl.REPEAT, gl.CLAMP_TO_EDGE, gl.MIRRORED_REPEAT, gl.CLAMP_TO_BORDER)

	compareModes = gl.NewSet(gl.NONE, gl.COMPARE_REF_TO_TEXTURE)
	swizzles     = gl.NewSet(gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA, gl.ZERO, gl.ONE)

	bufferTargets = gl.NewSet(
		gl.ARRAY_BUFFER, gl.ELEMENT_ARRAY_BUFFER, gl.COPY_READ_BUFFER,
		gl.COPY_WRITE_BUFFER, gl.PIXEL_PACK_BUFFER, gl.PIXEL_UNPACK_BUFFER,
		gl.TRANSFORM_FEEDBACK_BUFFER, gl.UNIFORM_BUFFER,
	)

	bufferUsages = gl.NewSet(
		gl.STREAM_DRAW, gl.STREAM_READ, gl.STREAM_COPY, gl.STATIC_DRAW,
		gl.STATIC_READ, gl.STATIC_COPY, gl.DYNAMIC_DRAW, gl.DYNAMIC_READ,
		gl.DYNAMIC_COPY,
	)

	bufferAccess = gl.NewSet(gl.READ_ONLY, gl.WRITE_ONLY, gl.READ_WRITE)

	attribTypes = gl.NewSet(
		gl.BYTE, gl.UNSIGNED_BYTE, gl.SHORT, gl.UNSIGNED_SHORT, gl.INT,
		gl.UNSIGNED_INT, gl.FLOAT, gl.HALF_FLOAT, gl.FIXED,
		gl.UNSIGNED_INT_2_10_10_10_REV,
	)

	framebufferTargets  = gl.NewSet(gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER, gl.READ_FRAMEBUFFER)
	colorAttachments    = gl.NewSet(gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2, gl.COLOR_ATTACHMENT3)
	attachments         = colorAttachments.With(gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT)
	drawBufferTargets   = colorAttachments.With(gl.NONE, gl.BACK, gl.FRONT)
	renderbufferTargets = gl.NewSet(gl.RENDERBUFFER)

	shaderTypes = gl.NewSet(gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, gl.GEOMETRY_SHADER, gl.COMPUTE_SHADER)

	precisionTypes = gl.NewSet(
		gl.LOW_FLOAT, gl.MEDIUM_FLOAT, gl.HIGH_FLOAT, gl.LOW_INT, gl.MEDIUM_INT, gl.HIGH_INT,
	)

	labelTypes = gl.NewSet(
		gl.TEXTURE, gl.FRAMEBUFFER, gl.RENDERBUFFER, gl.BUFFER_OBJECT, gl.SAMPLER,
		gl.VERTEX_ARRAY_OBJECT, gl.PROGRAM_OBJECT, gl.SHADER_OBJECT,
		gl.QUERY_OBJECT, gl.TRANSFORM_FEEDBACK,
	)

	debugSources = gl.NewSet(
		gl.DEBUG_SOURCE_API, gl.DEBUG_SOURCE_WINDOW_SYSTEM, gl.DEBUG_SOURCE_SHADER_COMPILER,
		gl.DEBUG_SOURCE_THIRD_PARTY, gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_SOURCE_OTHER,
	)
	debugTypes = gl.NewSet(
		gl.DEBUG_TYPE_ERROR, gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR, gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR,
		gl.DEBUG_TYPE_PORTABILITY, gl.DEBUG_TYPE_PERFORMANCE, gl.DEBUG_TYPE_OTHER,
		gl.DEBUG_TYPE_MARKER, gl.DEBUG_TYPE_PUSH_GROUP, gl.DEBUG_TYPE_POP_GROUP,
	)
	debugSeverities = gl.NewSet(
		gl.DEBUG_SEVERITY_HIGH, gl.DEBUG_SEVERITY_MEDIUM, gl.DEBUG_SEVERITY_LOW,
		gl.DEBUG_SEVERITY_NOTIFICATION,
	)
	// debugInsertSources are the sources an application may insert.
	debugInsertSources = gl.NewSet(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_SOURCE_THIRD_PARTY)
)

var (
	pixelFormats = gl.NewSet(
		gl.ALPHA, gl.LUMINANCE, gl.LUMINANCE_ALPHA, gl.RED, gl.RG, gl.RGB, gl.RGBA,
		gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER,
		gl.DEPTH_COMPONENT, gl.DEPTH_STENCIL, gl.STENCIL_INDEX,
	)

	pixelTypes = gl.NewSet(
		gl.BYTE, gl.UNSIGNED_BYTE, gl.SHORT, gl.UNSIGNED_SHORT, gl.INT,
		gl.UNSIGNED_INT, gl.FLOAT, gl.HALF_FLOAT, gl.HALF_FLOAT_OES,
		gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1, gl.UNSIGNED_SHORT_5_6_5,
		gl.UNSIGNED_INT_2_10_10_10_REV, gl.UNSIGNED_INT_24_8,
		gl.UNSIGNED_INT_10F_11F_11F_REV, gl.UNSIGNED_INT_5_9_9_9_REV,
		gl.FLOAT_32_UNSIGNED_INT_24_8_REV,
	)

	// packedTypeFormats are the only formats a packed pixel type can be
	// used with.
	packedTypeFormats = map[gl.Enum]gl.Enum{
		gl.UNSIGNED_SHORT_5_6_5:           gl.RGB,
		gl.UNSIGNED_SHORT_4_4_4_4:         gl.RGBA,
		gl.UNSIGNED_SHORT_5_5_5_1:         gl.RGBA,
		gl.UNSIGNED_INT_2_10_10_10_REV:    gl.RGBA,
		gl.UNSIGNED_INT_10F_11F_11F_REV:   gl.RGB,
		gl.UNSIGNED_INT_5_9_9_9_REV:       gl.RGB,
		gl.UNSIGNED_INT_24_8:              gl.DEPTH_STENCIL,
		gl.FLOAT_32_UNSIGNED_INT_24_8_REV: gl.DEPTH_STENCIL,
	}

	// sizedFormats maps each sized internal format to its base format.
	sizedFormats = map[gl.Enum]gl.Enum{
		gl.R8: gl.RED, gl.R16F: gl.RED, gl.R32F: gl.RED,
		gl.RG8: gl.RG, gl.RG16F: gl.RG, gl.RG32F: gl.RG,
		gl.RGB8: gl.RGB, gl.RGB565: gl.RGB, gl.RGB16F: gl.RGB, gl.RGB32F: gl.RGB,
		gl.R11F_G11F_B10F: gl.RGB, gl.RGB9_E5: gl.RGB, gl.SRGB8: gl.RGB,
		gl.RGBA8: gl.RGBA, gl.RGBA4: gl.RGBA, gl.RGB5_A1: gl.RGBA, gl.RGBA16F: gl.RGBA,
		gl.RGBA32F: gl.RGBA, gl.RGB10_A2: gl.RGBA, gl.SRGB8_ALPHA8: gl.RGBA,
		gl.R8I: gl.RED_INTEGER, gl.R8UI: gl.RED_INTEGER, gl.R16I: gl.RED_INTEGER,
		gl.R16UI: gl.RED_INTEGER, gl.R32I: gl.RED_INTEGER, gl.R32UI: gl.RED_INTEGER,
		gl.RG8I: gl.RG_INTEGER, gl.RG8UI: gl.RG_INTEGER,
		gl.DEPTH_COMPONENT16: gl.DEPTH_COMPONENT, gl.DEPTH_COMPONENT24: gl.DEPTH_COMPONENT,
		gl.DEPTH_COMPONENT32F: gl.DEPTH_COMPONENT,
		gl.DEPTH24_STENCIL8:   gl.DEPTH_STENCIL, gl.DEPTH32F_STENCIL8: gl.DEPTH_STENCIL,
		gl.STENCIL_INDEX8: gl.STENCIL_INDEX,
	}

	// internalFormats are the unsized and sized texture formats.
	internalFormats = pixelFormats.Union(gl.NewSet(maps.Keys(sizedFormats)...))
)

// baseFormat returns the unsized format of an internal format, or 0 if it
// is not a texture format.
func baseFormat(internal gl.Enum) gl.Enum {
	if pixelFormats.Contains(internal) {
		return internal
	}
	return sizedFormats[internal]
}
