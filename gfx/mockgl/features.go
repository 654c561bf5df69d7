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
	"fmt"
	"strings"
)

// Flavor is the API family named by the VERSION string.
type Flavor int

const (
	Desktop Flavor = iota
	ES
	Web
)

func (f Flavor) String() string {
	switch f {
	case Desktop:
		return "Desktop"
	case ES:
		return "ES"
	case Web:
		return "Web"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Profile is the context profile selected by CONTEXT_PROFILE_MASK.
type Profile int

const (
	CoreProfile Profile = iota
	CompatibilityProfile
)

func (p Profile) String() string {
	if p == CoreProfile {
		return "Core"
	}
	return "Compatibility"
}

// FunctionGroup is a set of related entry points and features that are
// available or not as a unit.
type FunctionGroup int

const (
	BindBufferIndexed FunctionGroup = iota
	BlendMinMax
	ClipDistance
	ComputeShader
	CopyBufferSubData
	Core
	DebugLabel
	DebugMarker
	DebugOutput
	DefaultTessellationLevels
	DepthTexture
	DiscardFramebuffer
	DrawBuffer
	DrawBuffers
	DrawInstanced
	EglImage
	ElementIndex32Bit
	FramebufferBlit
	FramebufferFoveated
	FramebufferTargets
	FramebufferTextureLayer
	GeometryShader
	GetString
	GpuShader4
	ImplicitMultisample
	InstancedArrays
	InvalidateFramebuffer
	MapBuffer
	MapBufferBase
	MapBufferRange
	MultipleColorAttachments
	MultisampleCapability
	MultisampleFramebufferResolve
	Multiview
	MultiviewImplicitMultisample
	PointSize
	ProtectedTextures
	RasterizerDiscardCapability
	Raw
	ReadBuffer
	RenderbufferMultisample
	Rgba8
	SamplerObjects
	SampleShading
	ShaderFramebufferFetch
	ShadowSamplers
	StandardDerivatives
	SyncObjects
	TessellationShader
	Texture3D
	TextureArray1D
	TextureArray2D
	TextureBarrier
	TextureCubeMapArray
	TextureFilterAnisotropic
	TextureFoveated
	TextureLod
	TextureMipmapRange
	TextureMultisample
	TextureStorage
	TextureStorageMultisample
	TextureSwizzle
	TiledRendering
	TransformFeedback
	VertexArrays
	functionGroupCount
)

// versions holds the minimum version per Flavor at which a group is part of
// the core API. Zero means never.
type versions [3]int

type groupRule struct {
	name       string
	core       versions
	extensions string
	renderers  string
}

var groupRules = [functionGroupCount]groupRule{
	BindBufferIndexed:             {"BindBufferIndexed", versions{30, 30, 20}, "", ""},
	BlendMinMax:                   {"BlendMinMax", versions{14, 30, 20}, "EXT_blend_minmax", ""},
	ClipDistance:                  {"ClipDistance", versions{31, 0, 0}, "clip_distance,EXT_clip_cull_distance", ""},
	ComputeShader:                 {"ComputeShader", versions{43, 31, 0}, "ARB_compute_shader", ""},
	CopyBufferSubData:             {"CopyBufferSubData", versions{31, 30, 0}, "copy_buffer", ""},
	Core:                          {"Core", versions{10, 20, 10}, "", ""},
	DebugLabel:                    {"DebugLabel", versions{0, 0, 0}, "EXT_debug_label", ""},
	DebugMarker:                   {"DebugMarker", versions{0, 0, 0}, "EXT_debug_marker", ""},
	DebugOutput:                   {"DebugOutput", versions{43, 32, 0}, "ARB_debug_output,KHR_debug,WEBGL_debug", ""},
	DefaultTessellationLevels:     {"DefaultTessellationLevels", versions{40, 0, 0}, "ARB_tessellation_shader", ""},
	DepthTexture:                  {"DepthTexture", versions{14, 0, 0}, "depth_texture", ""},
	DiscardFramebuffer:            {"DiscardFramebuffer", versions{0, 0, 0}, "EXT_discard_framebuffer", ""},
	DrawBuffer:                    {"DrawBuffer", versions{10, 0, 0}, "", ""},
	DrawBuffers:                   {"DrawBuffers", versions{30, 30, 20}, "draw_buffers", ""},
	DrawInstanced:                 {"DrawInstanced", versions{33, 30, 20}, "draw_instanced,instanced_arrays", ""},
	EglImage:                      {"EglImage", versions{0, 0, 0}, "EGL_image", ""},
	ElementIndex32Bit:             {"ElementIndex32Bit", versions{12, 30, 0}, "element_index_uint", ""},
	FramebufferBlit:               {"FramebufferBlit", versions{20, 30, 20}, "framebuffer_blit,CHROMIUM_framebuffer_multisample", ""},
	FramebufferFoveated:           {"FramebufferFoveated", versions{0, 0, 0}, "QCOM_framebuffer_foveated", ""},
	FramebufferTargets:            {"FramebufferTargets", versions{31, 30, 20}, "", ""},
	FramebufferTextureLayer:       {"FramebufferTextureLayer", versions{30, 30, 20}, "geometry_shader4,geometry_program4", ""},
	GeometryShader:                {"GeometryShader", versions{32, 32, 0}, "ARB_geometry_shader4", ""},
	GetString:                     {"GetString", versions{30, 30, 0}, "", ""},
	GpuShader4:                    {"GpuShader4", versions{30, 30, 0}, "gpu_shader4", ""},
	ImplicitMultisample:           {"ImplicitMultisample", versions{0, 0, 0}, "EXT_multisampled_render_to_texture", ""},
	InstancedArrays:               {"InstancedArrays", versions{33, 30, 20}, "instanced_arrays", ""},
	InvalidateFramebuffer:         {"InvalidateFramebuffer", versions{43, 30, 0}, "", ""},
	MapBuffer:                     {"MapBuffer", versions{15, 0, 0}, "mapbuffer,vertex_buffer_object", "Vivante GC1000,VideoCore IV HW"},
	MapBufferBase:                 {"MapBufferBase", versions{15, 30, 0}, "mapbuffer,vertex_buffer_object", "Vivante GC1000,VideoCore IV HW"},
	MapBufferRange:                {"MapBufferRange", versions{30, 30, 0}, "map_buffer_range", "Vivante GC1000,VideoCore IV HW"},
	MultipleColorAttachments:      {"MultipleColorAttachments", versions{31, 30, 20}, "NV_fbo_color_attachments", ""},
	MultisampleCapability:         {"MultisampleCapability", versions{13, 0, 0}, "ARB_multisample,EXT_multisample_compatibility", ""},
	MultisampleFramebufferResolve: {"MultisampleFramebufferResolve", versions{0, 0, 0}, "APPLE_framebuffer_multisample", ""},
	Multiview:                     {"Multiview", versions{0, 0, 0}, "multiview2", ""},
	MultiviewImplicitMultisample:  {"MultiviewImplicitMultisample", versions{0, 0, 0}, "multiview_multisampled_render_to_texture", ""},
	PointSize:                     {"PointSize", versions{10, 0, 0}, "", ""},
	ProtectedTextures:             {"ProtectedTextures", versions{0, 0, 0}, "protected_textures", ""},
	RasterizerDiscardCapability:   {"RasterizerDiscardCapability", versions{30, 30, 0}, "transform_feedback", ""},
	Raw:                           {"Raw", versions{0, 0, 0}, "", ""},
	ReadBuffer:                    {"ReadBuffer", versions{10, 30, 20}, "", ""},
	RenderbufferMultisample:       {"RenderbufferMultisample", versions{30, 30, 20}, "framebuffer_multisample", ""},
	Rgba8:                         {"Rgba8", versions{20, 30, 20}, "OES_rgb8_rgba8", ""},
	SamplerObjects:                {"SamplerObjects", versions{33, 30, 20}, "sampler_objects", "Mali ,Mali-,SwiftShader"},
	SampleShading:                 {"SampleShading", versions{40, 32, 0}, "sample_shading", ""},
	ShaderFramebufferFetch:        {"ShaderFramebufferFetch", versions{0, 0, 0}, "EXT_shader_framebuffer_fetch", ""},
	ShadowSamplers:                {"ShadowSamplers", versions{14, 30, 20}, "EXT_shadow_samplers", ""},
	StandardDerivatives:           {"StandardDerivatives", versions{20, 30, 0}, "OES_standard_derivatives", ""},
	SyncObjects:                   {"Sync", versions{32, 30, 20}, "sync", ""},
	TessellationShader:            {"TessellationShader", versions{40, 32, 0}, "tessellation_shader", ""},
	Texture3D:                     {"Texture3D", versions{13, 30, 20}, "texture_3d", ""},
	TextureArray1D:                {"TextureArray1D", versions{30, 0, 0}, "texture_array", ""},
	TextureArray2D:                {"TextureArray2D", versions{30, 30, 20}, "texture_array", ""},
	TextureBarrier:                {"TextureBarrier", versions{45, 0, 0}, "texture_barrier", ""},
	TextureCubeMapArray:           {"TextureCubeMapArray", versions{40, 32, 0}, "texture_cube_map_array", ""},
	TextureFilterAnisotropic:      {"TextureFilterAnisotropic", versions{46, 0, 0}, "EXT_texture_filter_anisotropic", ""},
	TextureFoveated:               {"TextureFoveated", versions{0, 0, 0}, "QCOM_texture_foveated", ""},
	TextureLod:                    {"TextureLod", versions{12, 30, 20}, "", ""},
	TextureMipmapRange:            {"TextureMipmapRange", versions{32, 30, 20}, "", ""},
	TextureMultisample:            {"TextureMultisample", versions{32, 31, 0}, "texture_multisample", ""},
	TextureStorage:                {"TextureStorage", versions{42, 30, 20}, "texture_storage", ""},
	TextureStorageMultisample:     {"TextureStorageMultisample", versions{42, 31, 0}, "texture_storage_multisample", ""},
	TextureSwizzle:                {"TextureSwizzle", versions{33, 30, 0}, "texture_swizzle", ""},
	TiledRendering:                {"TiledRendering", versions{0, 0, 0}, "QCOM_tiled_rendering", ""},
	TransformFeedback:             {"TransformFeedback", versions{30, 30, 0}, "transform_feedback", ""},
	VertexArrays:                  {"VertexArrays", versions{30, 30, 20}, "vertex_array_object", "Internet Explorer"},
}

func (g FunctionGroup) String() string {
	if g >= 0 && g < functionGroupCount {
		return groupRules[g].name
	}
	return fmt.Sprintf("FunctionGroup(%d)", int(g))
}

// FunctionGroups returns every function group in declaration order.
func FunctionGroups() []FunctionGroup {
	out := make([]FunctionGroup, functionGroupCount)
	for i := range out {
		out[i] = FunctionGroup(i)
	}
	return out
}

// glInfo is what a manager derives from the strings of its visual.
type glInfo struct {
	version  int
	flavor   Flavor
	profile  Profile
	renderer string
	groups   [functionGroupCount]bool
}

// parseVersion returns the version number of s as major*10+minor, taken
// from the digits either side of the first '.', or 0.
func parseVersion(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot <= 0 || dot+1 >= len(s) {
		return 0
	}
	major, minor := s[dot-1], s[dot+1]
	if major < '0' || major > '9' || minor < '0' || minor > '9' {
		return 0
	}
	return int(major-'0')*10 + int(minor-'0')
}

// parseVersionString returns the flavor and version of a VERSION string.
// Unparsable versions fall back to 2.0.
func parseVersionString(s string) (Flavor, int) {
	flavor := Desktop
	if i := strings.Index(s, "WebGL"); i >= 0 {
		flavor = Web
		s = s[i:]
	} else if strings.Contains(s, "GL ES") || strings.Contains(s, "GL/ES") || strings.Contains(s, "GL / ES") {
		flavor = ES
	}
	version := parseVersion(s)
	if version == 0 {
		version = 20
	}
	return flavor, version
}

// extensionSupported returns true if one of the extensions is name preceded
// by a non-empty prefix of upper case letters and underscores, such as
// "GL_OES_" or "GLX_SGI_".
func extensionSupported(extensions []string, name string) bool {
	if name == "" {
		return false
	}
	for _, ext := range extensions {
		if !strings.HasSuffix(ext, name) || len(ext) == len(name) {
			continue
		}
		prefix := ext[:len(ext)-len(name)]
		if strings.IndexFunc(prefix, func(r rune) bool {
			return !(r == '_' || (r >= 'A' && r <= 'Z'))
		}) < 0 {
			return true
		}
	}
	return false
}

// supported applies a group rule to the info and extensions.
func (i *glInfo) supported(rule groupRule, extensions []string) bool {
	if rule.renderers != "" {
		for _, r := range strings.Split(rule.renderers, ",") {
			if strings.Contains(i.renderer, r) {
				return false
			}
		}
	}
	if min := rule.core[i.flavor]; min != 0 && i.version >= min {
		return true
	}
	if rule.extensions == "" {
		return false
	}
	for _, ext := range strings.Split(rule.extensions, ",") {
		if extensionSupported(extensions, ext) {
			return true
		}
	}
	return false
}
