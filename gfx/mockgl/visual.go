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
	"strings"

	gl "github.com/google/ion/gfx/glenum"
)

// DefaultExtensions is the EXTENSIONS list of a new Visual.
var DefaultExtensions = []string{
	"GL_OES_blend_func_separate",
	"GL_OES_blend_subtract",
	"GL_APPLE_clip_distance",
	"GL_OES_compressed_ETC1_RGB8_texture",
	"GL_ARB_compute_shader",
	"GL_EXT_debug_label",
	"GL_EXT_debug_marker",
	"GL_ARB_debug_output",
	"GL_OES_depth24",
	"GL_OES_depth32",
	"GL_OES_depth_texture",
	"GL_EXT_discard_framebuffer",
	"GL_EXT_disjoint_timer_query",
	"GL_EXT_draw_buffers",
	"GL_EXT_draw_instanced",
	"GL_OES_EGL_image",
	"GL_OES_EGL_image_external",
	"GL_OES_element_index_uint",
	"GL_OES_fbo_render_mipmap",
	"GL_EXT_frag_depth",
	"GL_OES_fragment_precision_high",
	"GL_EXT_framebuffer_blit",
	"GL_QCOM_framebuffer_foveated",
	"GL_APPLE_framebuffer_multisample",
	"GL_EXT_framebuffer_multisample",
	"GL_OES_framebuffer_object",
	"GL_ARB_geometry_shader4",
	"GL_EXT_gpu_shader4",
	"GL_EXT_instanced_arrays",
	"GL_OES_map_buffer_range",
	"GL_OES_mapbuffer",
	"GL_ARB_multisample",
	"GL_EXT_multisampled_render_to_texture",
	"GL_OVR_multiview",
	"GL_OVR_multiview2",
	"GL_OVR_multiview_multisampled_render_to_texture",
	"GL_OES_packed_depth_stencil",
	"GL_EXT_protected_textures",
	"GL_OES_rgb8_rgba8",
	"GL_OES_sample_shading",
	"GL_EXT_shader_texture_lod",
	"GL_NV_sRGB_formats",
	"GL_OES_standard_derivatives",
	"GL_OES_stencil8",
	"GL_ARB_sync",
	"GL_OES_texture_3D",
	"GL_EXT_texture_array",
	"GL_NV_texture_barrier",
	"GL_EXT_texture_compression_dxt1",
	"GL_ANGLE_texture_compression_dxt5",
	"GL_IMG_texture_compression_pvrtc",
	"GL_EXT_texture_compression_s3tc",
	"GL_NV_texture_compression_s3tc",
	"GL_OES_texture_cube_map",
	"GL_ARB_texture_cube_map_array",
	"GL_EXT_texture_filter_anisotropic",
	"GL_OES_texture_float",
	"GL_QCOM_texture_foveated",
	"GL_OES_texture_half_float",
	"GL_EXT_texture_lod_bias",
	"GL_APPLE_texture_max_level",
	"GL_OES_texture_mirrored_repeat",
	"GL_ARB_texture_multisample",
	"GL_EXT_texture_rg",
	"GL_OES_texture_stencil8",
	"GL_EXT_texture_storage",
	"GL_ARB_texture_storage_multisample",
	"GL_ARB_texture_swizzle",
	"GL_EXT_texture_type_2_10_10_10_REV",
	"GL_QCOM_tiled_rendering",
	"GL_ARB_transform_feedback2",
	"GL_OES_vertex_array_object",
}

const (
	defaultVendor   = "Google"
	defaultRenderer = "Ion fake OpenGL / ES"
	defaultVersion  = "3.3 Ion OpenGL / ES"
	defaultGLSL     = "1.10 Ion"
)

// Visual is the state of one mock GL context. Every Manager created on a
// Visual sees the same objects, bindings, error register and call count.
// A Visual must not be used from more than one goroutine at a time.
type Visual struct {
	width, height int32
	caps          Capabilities

	vendor      string
	renderer    string
	version     string
	glsl        string
	extensions  []string
	profileMask uint32

	err         gl.Enum
	errReported bool
	calls       int
	maxBuffer   int64
	forced      map[string]bool

	fixed        fixedState
	textures     textureState
	samplers     samplerState
	buffers      bufferState
	arrays       vertexArrayState
	framebuffers framebufferState
	programs     programState
	debug        debugState
	queries      queryState
	syncs        syncState
	feedback     feedbackState
}

// NewVisual returns the state of a new context with a default framebuffer
// of the given size.
func NewVisual(width, height int, caps Capabilities) *Visual {
	v := &Visual{
		width:      int32(width),
		height:     int32(height),
		caps:       caps,
		vendor:     defaultVendor,
		renderer:   defaultRenderer,
		version:    defaultVersion,
		glsl:       defaultGLSL,
		extensions: append([]string{}, DefaultExtensions...),
		err:        gl.NO_ERROR,
		forced:     map[string]bool{},
	}
	v.fixed = newFixedState(v.width, v.height)
	v.textures = newTextureState()
	v.samplers = newSamplerState()
	v.buffers = newBufferState()
	v.arrays = newVertexArrayState()
	v.framebuffers = newFramebufferState()
	v.programs = newProgramState()
	v.debug = newDebugState(int(caps.MaxDebugLoggedMessages))
	v.queries = newQueryState()
	v.syncs = newSyncState()
	v.feedback = newFeedbackState()
	return v
}

// Width returns the width of the default framebuffer.
func (v *Visual) Width() int { return int(v.width) }

// Height returns the height of the default framebuffer.
func (v *Visual) Height() int { return int(v.height) }

// Caps returns the capabilities of the visual. Changes made through the
// returned pointer are seen by every manager of the visual.
func (v *Visual) Caps() *Capabilities { return &v.caps }

// CallCount returns the number of GL calls made on the visual.
func (v *Visual) CallCount() int { return v.calls }

// ResetCallCount sets the call count back to zero.
func (v *Visual) ResetCallCount() { v.calls = 0 }

// setError stores err unless an error is already pending.
func (v *Visual) setError(err gl.Enum) {
	if v.err == gl.NO_ERROR {
		v.err = err
		v.errReported = false
	}
}

// takeError returns and clears the pending error.
func (v *Visual) takeError() gl.Enum {
	err := v.err
	v.err = gl.NO_ERROR
	v.errReported = false
	return err
}

func (v *Visual) extensionsString() string {
	return strings.Join(v.extensions, " ")
}

func splitExtensions(s string) []string {
	return strings.Fields(s)
}
