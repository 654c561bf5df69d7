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
	"math/bits"

	gl "github.com/google/ion/gfx/glenum"
)

// sampling holds the parameters shared by textures and sampler objects.
type sampling struct {
	minFilter     gl.Enum
	magFilter     gl.Enum
	wrapS         gl.Enum
	wrapT         gl.Enum
	wrapR         gl.Enum
	compareMode   gl.Enum
	compareFunc   gl.Enum
	minLOD        float32
	maxLOD        float32
	maxAnisotropy float32
}

func defaultSampling() sampling {
	return sampling{
		minFilter:     gl.NEAREST_MIPMAP_LINEAR,
		magFilter:     gl.LINEAR,
		wrapS:         gl.REPEAT,
		wrapT:         gl.REPEAT,
		wrapR:         gl.REPEAT,
		compareMode:   gl.NONE,
		compareFunc:   gl.LEQUAL,
		minLOD:        -1000,
		maxLOD:        1000,
		maxAnisotropy: 1,
	}
}

// set applies a sampling parameter. handled is false if pname is not a
// sampling parameter; otherwise err is the error the value raises.
func (s *sampling) set(pname gl.Enum, v float64, maxAnisotropy float32) (err gl.Enum, handled bool) {
	e := gl.Enum(uint32(v))
	check := func(set gl.Set, dst *gl.Enum) gl.Enum {
		if !set.Contains(e) {
			return gl.INVALID_ENUM
		}
		*dst = e
		return gl.NO_ERROR
	}
	switch pname {
	case gl.TEXTURE_MIN_FILTER:
		return check(minFilters, &s.minFilter), true
	case gl.TEXTURE_MAG_FILTER:
		return check(magFilters, &s.magFilter), true
	case gl.TEXTURE_WRAP_S:
		return check(wrapModes, &s.wrapS), true
	case gl.TEXTURE_WRAP_T:
		return check(wrapModes, &s.wrapT), true
	case gl.TEXTURE_WRAP_R:
		return check(wrapModes, &s.wrapR), true
	case gl.TEXTURE_COMPARE_MODE:
		return check(compareModes, &s.compareMode), true
	case gl.TEXTURE_COMPARE_FUNC:
		return check(compareFuncs, &s.compareFunc), true
	case gl.TEXTURE_MIN_LOD:
		s.minLOD = float32(v)
		return gl.NO_ERROR, true
	case gl.TEXTURE_MAX_LOD:
		s.maxLOD = float32(v)
		return gl.NO_ERROR, true
	case gl.TEXTURE_MAX_ANISOTROPY_EXT:
		if v < 1 || v > float64(maxAnisotropy) {
			return gl.INVALID_VALUE, true
		}
		s.maxAnisotropy = float32(v)
		return gl.NO_ERROR, true
	}
	return gl.NO_ERROR, false
}

func (s *sampling) get(pname gl.Enum) (param, bool) {
	switch pname {
	case gl.TEXTURE_MIN_FILTER:
		return enums(s.minFilter), true
	case gl.TEXTURE_MAG_FILTER:
		return enums(s.magFilter), true
	case gl.TEXTURE_WRAP_S:
		return enums(s.wrapS), true
	case gl.TEXTURE_WRAP_T:
		return enums(s.wrapT), true
	case gl.TEXTURE_WRAP_R:
		return enums(s.wrapR), true
	case gl.TEXTURE_COMPARE_MODE:
		return enums(s.compareMode), true
	case gl.TEXTURE_COMPARE_FUNC:
		return enums(s.compareFunc), true
	case gl.TEXTURE_MIN_LOD:
		return floats(s.minLOD), true
	case gl.TEXTURE_MAX_LOD:
		return floats(s.maxLOD), true
	case gl.TEXTURE_MAX_ANISOTROPY_EXT:
		return floats(s.maxAnisotropy), true
	}
	return param{}, false
}

type imageKey struct {
	target gl.Enum
	level  int32
}

// texImage is one level of one face of a texture.
type texImage struct {
	width, height, depth int32
	format               gl.Enum
	compressed           bool
}

type texture struct {
	sampling
	target               gl.Enum
	baseLevel            int32
	maxLevel             int32
	swizzle              [4]gl.Enum
	immutable            bool
	immutableLevels      int32
	samples              int32
	fixedSampleLocations bool
	images               map[imageKey]texImage
}

func newTexture() *texture {
	return &texture{
		sampling: defaultSampling(),
		maxLevel: 1000,
		swizzle:  [4]gl.Enum{gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA},
		images:   map[imageKey]texImage{},
	}
}

type unitTarget struct {
	unit   int32
	target gl.Enum
}

type textureState struct {
	objects *objectTable[texture]
	// defaults are the objects used while name 0 is bound, one per target.
	defaults map[gl.Enum]*texture
	active   int32
	bindings map[unitTarget]uint32
}

func newTextureState() textureState {
	return textureState{
		objects:  newObjectTable[texture](),
		defaults: map[gl.Enum]*texture{},
		bindings: map[unitTarget]uint32{},
	}
}

var textureBindings = map[gl.Enum]gl.Enum{
	gl.TEXTURE_BINDING_1D_ARRAY:             gl.TEXTURE_1D_ARRAY,
	gl.TEXTURE_BINDING_2D:                   gl.TEXTURE_2D,
	gl.TEXTURE_BINDING_2D_ARRAY:             gl.TEXTURE_2D_ARRAY,
	gl.TEXTURE_BINDING_2D_MULTISAMPLE:       gl.TEXTURE_2D_MULTISAMPLE,
	gl.TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY: gl.TEXTURE_2D_MULTISAMPLE_ARRAY,
	gl.TEXTURE_BINDING_3D:                   gl.TEXTURE_3D,
	gl.TEXTURE_BINDING_CUBE_MAP:             gl.TEXTURE_CUBE_MAP,
	gl.TEXTURE_BINDING_CUBE_MAP_ARRAY:       gl.TEXTURE_CUBE_MAP_ARRAY,
	gl.TEXTURE_BINDING_EXTERNAL_OES:         gl.TEXTURE_EXTERNAL_OES,
}

// bindingTarget returns the target a cube map face is bound through.
func bindingTarget(target gl.Enum) gl.Enum {
	if cubeFaces.Contains(target) {
		return gl.TEXTURE_CUBE_MAP
	}
	return target
}

// boundTexture returns the texture bound to target on the active unit.
// Name 0 selects the default texture of the target.
func (m *Manager) boundTexture(target gl.Enum) (uint32, *texture) {
	t := &m.v.textures
	target = bindingTarget(target)
	name := t.bindings[unitTarget{t.active, target}]
	if name != 0 {
		return name, t.objects.get(name)
	}
	tex, ok := t.defaults[target]
	if !ok {
		tex = newTexture()
		tex.target = target
		t.defaults[target] = tex
	}
	return 0, tex
}

// GenTextures allocates n texture names into ids.
func (m *Manager) GenTextures(n int32, ids []uint32) {
	defer m.call("GenTextures", n, ids)()
	genNames(m, m.v.textures.objects, n, ids, newTexture)
}

// DeleteTextures deletes textures, unbinding them from every unit and
// detaching them from the bound framebuffers.
func (m *Manager) DeleteTextures(n int32, ids []uint32) {
	defer m.call("DeleteTextures", n, ids)()
	t := &m.v.textures
	deleteNames(m, t.objects, n, ids, func(name uint32, _ *texture) {
		for k, bound := range t.bindings {
			if bound == name {
				delete(t.bindings, k)
			}
		}
		m.detachFromFramebuffers(gl.TEXTURE, name)
	})
}

// IsTexture returns true for live texture names. The default texture,
// name 0, always exists.
func (m *Manager) IsTexture(name uint32) bool {
	defer m.call("IsTexture", name)()
	return name == 0 || m.v.textures.objects.has(name)
}

// ActiveTexture selects the texture unit that binds and texture calls
// affect.
func (m *Manager) ActiveTexture(unit gl.Enum) {
	defer m.call("ActiveTexture", unit)()
	if unit < gl.TEXTURE0 || int64(unit-gl.TEXTURE0) >= int64(m.v.caps.MaxCombinedTextureImageUnits) {
		m.fail(gl.INVALID_ENUM, "invalid texture unit %v", unit)
		return
	}
	m.v.textures.active = int32(unit - gl.TEXTURE0)
}

// BindTexture binds a texture to target on the active unit.
func (m *Manager) BindTexture(target gl.Enum, name uint32) {
	defer m.call("BindTexture", target, name)()
	if !m.checkEnum(textureTargets, target, "texture target") {
		return
	}
	t := &m.v.textures
	if name != 0 {
		tex := t.objects.get(name)
		if tex == nil {
			m.fail(gl.INVALID_VALUE, "unknown texture %d", name)
			return
		}
		if tex.target != 0 && tex.target != target {
			m.fail(gl.INVALID_OPERATION, "texture %d was created as %v", name, tex.target)
			return
		}
		tex.target = target
	}
	t.bindings[unitTarget{t.active, target}] = name
}

func (m *Manager) texParameter(target, pname gl.Enum, v float64) {
	if !m.checkEnum(textureTargets, target, "texture target") {
		return
	}
	_, tex := m.boundTexture(target)
	if err, ok := tex.set(pname, v, m.v.caps.MaxTextureMaxAnisotropy); ok {
		if err != gl.NO_ERROR {
			m.fail(err, "invalid value %v for %v", v, pname)
		}
		return
	}
	switch pname {
	case gl.TEXTURE_BASE_LEVEL, gl.TEXTURE_MAX_LEVEL:
		if v < 0 {
			m.fail(gl.INVALID_VALUE, "negative %v", pname)
			return
		}
		if pname == gl.TEXTURE_BASE_LEVEL {
			tex.baseLevel = int32(v)
		} else {
			tex.maxLevel = int32(v)
		}
	case gl.TEXTURE_SWIZZLE_R, gl.TEXTURE_SWIZZLE_G, gl.TEXTURE_SWIZZLE_B, gl.TEXTURE_SWIZZLE_A:
		e := gl.Enum(uint32(v))
		if m.checkEnum(swizzles, e, "swizzle") {
			tex.swizzle[pname-gl.TEXTURE_SWIZZLE_R] = e
		}
	default:
		m.fail(gl.INVALID_ENUM, "invalid texture parameter %v", pname)
	}
}

// TexParameteri sets a parameter of the texture bound to target.
func (m *Manager) TexParameteri(target, pname gl.Enum, param int32) {
	defer m.call("TexParameteri", target, pname, param)()
	m.texParameter(target, pname, float64(param))
}

// TexParameterf sets a parameter of the texture bound to target.
func (m *Manager) TexParameterf(target, pname gl.Enum, param float32) {
	defer m.call("TexParameterf", target, pname, param)()
	m.texParameter(target, pname, float64(param))
}

// TexParameteriv sets a parameter from the first value of params.
func (m *Manager) TexParameteriv(target, pname gl.Enum, params []int32) {
	defer m.call("TexParameteriv", target, pname, nil)()
	if len(params) == 0 {
		m.fail(gl.INVALID_VALUE, "no value")
		return
	}
	m.texParameter(target, pname, float64(params[0]))
}

// TexParameterfv sets a parameter from the first value of params.
func (m *Manager) TexParameterfv(target, pname gl.Enum, params []float32) {
	defer m.call("TexParameterfv", target, pname, params)()
	if len(params) == 0 {
		m.fail(gl.INVALID_VALUE, "no value")
		return
	}
	m.texParameter(target, pname, float64(params[0]))
}

func (m *Manager) getTexParameter(target, pname gl.Enum) param {
	if !m.checkEnum(textureTargets, target, "texture target") {
		return param{}
	}
	_, tex := m.boundTexture(target)
	if p, ok := tex.get(pname); ok {
		return p
	}
	switch pname {
	case gl.TEXTURE_BASE_LEVEL:
		return ints(tex.baseLevel)
	case gl.TEXTURE_MAX_LEVEL:
		return ints(tex.maxLevel)
	case gl.TEXTURE_SWIZZLE_R, gl.TEXTURE_SWIZZLE_G, gl.TEXTURE_SWIZZLE_B, gl.TEXTURE_SWIZZLE_A:
		return enums(tex.swizzle[pname-gl.TEXTURE_SWIZZLE_R])
	case gl.TEXTURE_IMMUTABLE_FORMAT:
		return bools(tex.immutable)
	case gl.TEXTURE_IMMUTABLE_LEVELS:
		return ints(tex.immutableLevels)
	case gl.TEXTURE_SAMPLES:
		return ints(tex.samples)
	}
	m.fail(gl.INVALID_ENUM, "invalid texture parameter %v", pname)
	return param{}
}

// GetTexParameteriv returns a parameter of the texture bound to target,
// or 0 after an error.
func (m *Manager) GetTexParameteriv(target, pname gl.Enum) int32 {
	defer m.call("GetTexParameteriv", target, pname, nil)()
	if p := m.getTexParameter(target, pname); len(p.values) > 0 {
		return int32(p.int64At(0))
	}
	return 0
}

// GetTexParameterfv returns a parameter of the texture bound to target,
// or 0 after an error.
func (m *Manager) GetTexParameterfv(target, pname gl.Enum) float32 {
	defer m.call("GetTexParameterfv", target, pname, nil)()
	if p := m.getTexParameter(target, pname); len(p.values) > 0 {
		return float32(p.values[0])
	}
	return 0
}

// imageSizeLimits returns the largest width, height and depth of an image
// of target.
func (m *Manager) imageSizeLimits(target gl.Enum) (w, h, d int32) {
	c := &m.v.caps
	switch bindingTarget(target) {
	case gl.TEXTURE_CUBE_MAP:
		return c.MaxCubeMapTextureSize, c.MaxCubeMapTextureSize, 1
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		return c.MaxCubeMapTextureSize, c.MaxCubeMapTextureSize, c.MaxArrayTextureLayers
	case gl.TEXTURE_1D_ARRAY:
		return c.MaxTextureSize, c.MaxArrayTextureLayers, 1
	case gl.TEXTURE_2D_ARRAY, gl.TEXTURE_2D_MULTISAMPLE_ARRAY:
		return c.MaxTextureSize, c.MaxTextureSize, c.MaxArrayTextureLayers
	case gl.TEXTURE_3D:
		return c.Max3DTextureSize, c.Max3DTextureSize, c.Max3DTextureSize
	}
	return c.MaxTextureSize, c.MaxTextureSize, 1
}

func isCube(target gl.Enum) bool {
	return bindingTarget(target) == gl.TEXTURE_CUBE_MAP || target == gl.TEXTURE_CUBE_MAP_ARRAY
}

// checkSize validates the dimensions of a new image, raising INVALID_VALUE
// for negative, oversized or non-square cube map images.
func (m *Manager) checkSize(target gl.Enum, width, height, depth int32) bool {
	if width < 0 || height < 0 || depth < 0 {
		m.fail(gl.INVALID_VALUE, "negative size %dx%dx%d", width, height, depth)
		return false
	}
	mw, mh, md := m.imageSizeLimits(target)
	if width > mw || height > mh || depth > md {
		m.fail(gl.INVALID_VALUE, "size %dx%dx%d exceeds %dx%dx%d", width, height, depth, mw, mh, md)
		return false
	}
	if isCube(target) && width != height {
		m.fail(gl.INVALID_VALUE, "cube map image %dx%d is not square", width, height)
		return false
	}
	return true
}

func (m *Manager) checkLevel(level int32) bool {
	if level < 0 {
		m.fail(gl.INVALID_VALUE, "negative level %d", level)
		return false
	}
	return true
}

func (m *Manager) checkBorder(border int32) bool {
	if border != 0 {
		m.fail(gl.INVALID_VALUE, "border must be 0, got %d", border)
		return false
	}
	return true
}

func (m *Manager) checkMutable(tex *texture) bool {
	if tex.immutable {
		m.fail(gl.INVALID_OPERATION, "texture storage is immutable")
		return false
	}
	return true
}

// checkPixels validates a client pixel format and type against each other
// and, when internal is non-zero, against the internal format.
func (m *Manager) checkPixels(internal, format, typ gl.Enum) bool {
	if !m.checkEnum(pixelFormats, format, "pixel format") ||
		!m.checkEnum(pixelTypes, typ, "pixel type") {
		return false
	}
	if internal != 0 && !internalFormats.Contains(internal) {
		m.fail(gl.INVALID_VALUE, "invalid internal format %v", internal)
		return false
	}
	if want, ok := packedTypeFormats[typ]; ok && want != format {
		m.fail(gl.INVALID_OPERATION, "type %v requires format %v, got %v", typ, want, format)
		return false
	}
	if internal != 0 && baseFormat(internal) != format {
		m.fail(gl.INVALID_OPERATION, "internal format %v does not match format %v", internal, format)
		return false
	}
	return true
}

func (m *Manager) texImage(target gl.Enum, level int32, internal gl.Enum, width, height, depth, border int32, format, typ gl.Enum) {
	if !m.checkLevel(level) || !m.checkPixels(internal, format, typ) ||
		!m.checkSize(target, width, height, depth) || !m.checkBorder(border) {
		return
	}
	_, tex := m.boundTexture(target)
	if !m.checkMutable(tex) {
		return
	}
	tex.images[imageKey{target, level}] = texImage{width, height, depth, format, false}
}

// TexImage2D defines a two dimensional image of the bound texture. A nil
// pixels leaves the contents undefined.
func (m *Manager) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, border int32, format, typ gl.Enum, pixels []byte) {
	defer m.call("TexImage2D", target, level, internalFormat, width, height, border, format, typ, pixels)()
	if m.checkEnum(image2DTargets, target, "texture target") {
		m.texImage(target, level, internalFormat, width, height, 1, border, format, typ)
	}
}

// TexImage3D defines a three dimensional image of the bound texture.
func (m *Manager) TexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth, border int32, format, typ gl.Enum, pixels []byte) {
	defer m.call("TexImage3D", target, level, internalFormat, width, height, depth, border, format, typ, pixels)()
	if m.checkEnum(image3DTargets, target, "texture target") {
		m.texImage(target, level, internalFormat, width, height, depth, border, format, typ)
	}
}

// subImage validates a region of an existing image of the bound texture
// and returns the image, or false after raising an error.
func (m *Manager) subImage(target gl.Enum, level, x, y, z, width, height, depth int32) (texImage, bool) {
	if !m.checkLevel(level) {
		return texImage{}, false
	}
	if x < 0 || y < 0 || z < 0 {
		m.fail(gl.INVALID_VALUE, "negative offset %d,%d,%d", x, y, z)
		return texImage{}, false
	}
	if width < 0 || height < 0 || depth < 0 {
		m.fail(gl.INVALID_VALUE, "negative size %dx%dx%d", width, height, depth)
		return texImage{}, false
	}
	_, tex := m.boundTexture(target)
	img, ok := tex.images[imageKey{target, level}]
	if !ok {
		m.fail(gl.INVALID_OPERATION, "level %d of %v has no image", level, target)
		return texImage{}, false
	}
	if x+width > img.width || y+height > img.height || z+depth > img.depth {
		m.fail(gl.INVALID_VALUE, "region exceeds the %dx%dx%d image", img.width, img.height, img.depth)
		return texImage{}, false
	}
	return img, true
}

func (m *Manager) texSubImage(target gl.Enum, level, x, y, z, width, height, depth int32, format, typ gl.Enum) {
	if !m.checkPixels(0, format, typ) {
		return
	}
	img, ok := m.subImage(target, level, x, y, z, width, height, depth)
	if ok && baseFormat(img.format) != format {
		m.fail(gl.INVALID_OPERATION, "format %v does not match the image format %v", format, img.format)
	}
}

// TexSubImage2D replaces a region of a two dimensional image.
func (m *Manager) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int32, format, typ gl.Enum, pixels []byte) {
	defer m.call("TexSubImage2D", target, level, xoffset, yoffset, width, height, format, typ, pixels)()
	if m.checkEnum(image2DTargets, target, "texture target") {
		m.texSubImage(target, level, xoffset, yoffset, 0, width, height, 1, format, typ)
	}
}

// TexSubImage3D replaces a region of a three dimensional image.
func (m *Manager) TexSubImage3D(target gl.Enum, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ gl.Enum, pixels []byte) {
	defer m.call("TexSubImage3D", target, level, xoffset, yoffset, zoffset, width, height, depth, format, typ, pixels)()
	if m.checkEnum(image3DTargets, target, "texture target") {
		m.texSubImage(target, level, xoffset, yoffset, zoffset, width, height, depth, format, typ)
	}
}

// CopyTexImage2D defines an image from the read framebuffer.
func (m *Manager) CopyTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, x, y, width, height, border int32) {
	defer m.call("CopyTexImage2D", target, level, internalFormat, x, y, width, height, border)()
	if !m.checkEnum(image2DTargets, target, "texture target") || !m.checkLevel(level) ||
		!m.checkEnum(internalFormats, internalFormat, "internal format") ||
		!m.checkSize(target, width, height, 1) || !m.checkBorder(border) ||
		!m.checkReadFramebuffer() {
		return
	}
	_, tex := m.boundTexture(target)
	if m.checkMutable(tex) {
		tex.images[imageKey{target, level}] = texImage{width, height, 1, baseFormat(internalFormat), false}
	}
}

// CopyTexSubImage2D replaces a region of an image from the read
// framebuffer.
func (m *Manager) CopyTexSubImage2D(target gl.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	defer m.call("CopyTexSubImage2D", target, level, xoffset, yoffset, x, y, width, height)()
	if m.checkEnum(image2DTargets, target, "texture target") {
		if _, ok := m.subImage(target, level, xoffset, yoffset, 0, width, height, 1); ok {
			m.checkReadFramebuffer()
		}
	}
}

// CopyTexSubImage3D replaces a region of one layer of an image from the
// read framebuffer.
func (m *Manager) CopyTexSubImage3D(target gl.Enum, level, xoffset, yoffset, zoffset, x, y, width, height int32) {
	defer m.call("CopyTexSubImage3D", target, level, xoffset, yoffset, zoffset, x, y, width, height)()
	if m.checkEnum(image3DTargets, target, "texture target") {
		if _, ok := m.subImage(target, level, xoffset, yoffset, zoffset, width, height, 1); ok {
			m.checkReadFramebuffer()
		}
	}
}

func (m *Manager) isCompressedFormat(format gl.Enum) bool {
	for _, f := range m.v.caps.CompressedTextureFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (m *Manager) checkCompressed(format gl.Enum, imageSize int32) bool {
	if !m.isCompressedFormat(format) {
		m.fail(gl.INVALID_ENUM, "%v is not a compressed format", format)
		return false
	}
	if imageSize < 0 {
		m.fail(gl.INVALID_VALUE, "negative image size %d", imageSize)
		return false
	}
	return true
}

func (m *Manager) compressedTexImage(target gl.Enum, level int32, internal gl.Enum, width, height, depth, border, imageSize int32) {
	if !m.checkLevel(level) || !m.checkCompressed(internal, imageSize) ||
		!m.checkSize(target, width, height, depth) || !m.checkBorder(border) {
		return
	}
	_, tex := m.boundTexture(target)
	if m.checkMutable(tex) {
		tex.images[imageKey{target, level}] = texImage{width, height, depth, internal, true}
	}
}

// CompressedTexImage2D defines a two dimensional image from compressed
// data.
func (m *Manager) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, border, imageSize int32, data []byte) {
	defer m.call("CompressedTexImage2D", target, level, internalFormat, width, height, border, imageSize, data)()
	if m.checkEnum(image2DTargets, target, "texture target") {
		m.compressedTexImage(target, level, internalFormat, width, height, 1, border, imageSize)
	}
}

// CompressedTexImage3D defines a three dimensional image from compressed
// data.
func (m *Manager) CompressedTexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth, border, imageSize int32, data []byte) {
	defer m.call("CompressedTexImage3D", target, level, internalFormat, width, height, depth, border, imageSize, data)()
	if m.checkEnum(image3DTargets, target, "texture target") {
		m.compressedTexImage(target, level, internalFormat, width, height, depth, border, imageSize)
	}
}

func (m *Manager) compressedTexSubImage(target gl.Enum, level, x, y, z, width, height, depth int32, format gl.Enum, imageSize int32) {
	if !m.checkLevel(level) {
		return
	}
	if x < 0 || y < 0 || z < 0 || width < 0 || height < 0 || depth < 0 {
		m.fail(gl.INVALID_VALUE, "negative region")
		return
	}
	if !m.checkCompressed(format, imageSize) {
		return
	}
	img, ok := m.subImage(target, level, x, y, z, width, height, depth)
	if ok && img.format != format {
		m.fail(gl.INVALID_OPERATION, "format %v does not match the image format %v", format, img.format)
	}
}

// CompressedTexSubImage2D replaces a region of a compressed image.
func (m *Manager) CompressedTexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int32, format gl.Enum, imageSize int32, data []byte) {
	defer m.call("CompressedTexSubImage2D", target, level, xoffset, yoffset, width, height, format, imageSize, data)()
	if m.checkEnum(image2DTargets, target, "texture target") {
		m.compressedTexSubImage(target, level, xoffset, yoffset, 0, width, height, 1, format, imageSize)
	}
}

// CompressedTexSubImage3D replaces a region of a compressed image.
func (m *Manager) CompressedTexSubImage3D(target gl.Enum, level, xoffset, yoffset, zoffset, width, height, depth int32, format gl.Enum, imageSize int32, data []byte) {
	defer m.call("CompressedTexSubImage3D", target, level, xoffset, yoffset, zoffset, width, height, depth, format, imageSize, data)()
	if m.checkEnum(image3DTargets, target, "texture target") {
		m.compressedTexSubImage(target, level, xoffset, yoffset, zoffset, width, height, depth, format, imageSize)
	}
}

var mipmapTargets = gl.NewSet(
	gl.TEXTURE_1D_ARRAY, gl.TEXTURE_2D, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_3D,
	gl.TEXTURE_CUBE_MAP, gl.TEXTURE_CUBE_MAP_ARRAY,
)

func isPowerOfTwo(v int32) bool {
	return v > 0 && v&(v-1) == 0
}

// maxLevels returns the length of the full mipmap chain of an image whose
// largest dimension is size.
func maxLevels(size int32) int32 {
	if size <= 0 {
		return 0
	}
	return int32(bits.Len32(uint32(size)))
}

// GenerateMipmap fills the mipmap chain of the bound texture from its base
// image, which must have power of two dimensions.
func (m *Manager) GenerateMipmap(target gl.Enum) {
	defer m.call("GenerateMipmap", target)()
	if !m.checkEnum(mipmapTargets, target, "texture target") {
		return
	}
	_, tex := m.boundTexture(target)
	face := target
	if target == gl.TEXTURE_CUBE_MAP {
		face = gl.TEXTURE_CUBE_MAP_POSITIVE_X
	}
	base, ok := tex.images[imageKey{face, tex.baseLevel}]
	if !ok {
		m.fail(gl.INVALID_OPERATION, "%v has no base image", target)
		return
	}
	if !isPowerOfTwo(base.width) || !isPowerOfTwo(base.height) {
		m.fail(gl.INVALID_OPERATION, "base image %dx%d is not a power of two", base.width, base.height)
		return
	}
	img := base
	for level := tex.baseLevel + 1; img.width > 1 || img.height > 1; level++ {
		img.width = max32(img.width/2, 1)
		img.height = max32(img.height/2, 1)
		if target == gl.TEXTURE_3D {
			img.depth = max32(img.depth/2, 1)
		}
		tex.images[imageKey{face, level}] = img
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

var (
	storage2DTargets = gl.NewSet(gl.TEXTURE_2D, gl.TEXTURE_1D_ARRAY, gl.TEXTURE_CUBE_MAP)
	storage3DTargets = gl.NewSet(gl.TEXTURE_3D, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_CUBE_MAP_ARRAY)
)

// storageTexture returns the named texture bound to target, raising
// INVALID_OPERATION if the default texture is bound.
func (m *Manager) storageTexture(target gl.Enum) *texture {
	name, tex := m.boundTexture(target)
	if name == 0 {
		m.fail(gl.INVALID_OPERATION, "no texture bound to %v", target)
		return nil
	}
	return tex
}

func (m *Manager) texStorage(target gl.Enum, levels int32, internal gl.Enum, width, height, depth int32) {
	tex := m.storageTexture(target)
	if tex == nil {
		return
	}
	if levels < 1 {
		m.fail(gl.INVALID_VALUE, "levels %d must be positive", levels)
		return
	}
	if !m.checkEnum(internalFormats, internal, "internal format") {
		return
	}
	if width < 1 || height < 1 || depth < 1 {
		m.fail(gl.INVALID_VALUE, "size %dx%dx%d must be positive", width, height, depth)
		return
	}
	if !m.checkSize(target, width, height, depth) {
		return
	}
	largest := width
	switch target {
	case gl.TEXTURE_1D_ARRAY:
	case gl.TEXTURE_3D:
		largest = max32(width, max32(height, depth))
	default:
		largest = max32(width, height)
	}
	if levels > maxLevels(largest) {
		m.fail(gl.INVALID_OPERATION, "%d levels exceed the %d of a %d texel image", levels, maxLevels(largest), largest)
		return
	}
	if !m.checkMutable(tex) {
		return
	}
	tex.immutable = true
	tex.immutableLevels = levels
	faces := []gl.Enum{target}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = cubeFaceList
	}
	format := baseFormat(internal)
	for level := int32(0); level < levels; level++ {
		img := texImage{
			width:  max32(width>>uint(level), 1),
			height: max32(height>>uint(level), 1),
			depth:  depth,
			format: format,
		}
		switch target {
		case gl.TEXTURE_1D_ARRAY:
			img.height = height
		case gl.TEXTURE_3D:
			img.depth = max32(depth>>uint(level), 1)
		}
		for _, f := range faces {
			tex.images[imageKey{f, level}] = img
		}
	}
}

var cubeFaceList = []gl.Enum{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// TexStorage2D allocates immutable storage for all levels of a two
// dimensional texture.
func (m *Manager) TexStorage2D(target gl.Enum, levels int32, internalFormat gl.Enum, width, height int32) {
	defer m.call("TexStorage2D", target, levels, internalFormat, width, height)()
	if m.checkEnum(storage2DTargets, target, "texture target") {
		m.texStorage(target, levels, internalFormat, width, height, 1)
	}
}

// TexStorage3D allocates immutable storage for all levels of a three
// dimensional texture.
func (m *Manager) TexStorage3D(target gl.Enum, levels int32, internalFormat gl.Enum, width, height, depth int32) {
	defer m.call("TexStorage3D", target, levels, internalFormat, width, height, depth)()
	if m.checkEnum(storage3DTargets, target, "texture target") {
		m.texStorage(target, levels, internalFormat, width, height, depth)
	}
}

// multisample defines the single image of a multisample texture. tooMany
// is the error raised when samples exceeds MAX_SAMPLES.
func (m *Manager) multisample(tex *texture, target gl.Enum, samples int32, internal gl.Enum, width, height, depth int32, fixed bool, tooMany gl.Enum) bool {
	if samples > m.v.caps.MaxSamples {
		m.fail(tooMany, "%d samples exceed %d", samples, m.v.caps.MaxSamples)
		return false
	}
	if !m.checkEnum(internalFormats, internal, "internal format") ||
		!m.checkSize(target, width, height, depth) || !m.checkMutable(tex) {
		return false
	}
	tex.samples = samples
	tex.fixedSampleLocations = fixed
	tex.images[imageKey{target, 0}] = texImage{width, height, depth, baseFormat(internal), false}
	return true
}

// TexImage2DMultisample defines the image of a multisample texture.
func (m *Manager) TexImage2DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32, fixedSampleLocations bool) {
	defer m.call("TexImage2DMultisample", target, samples, internalFormat, width, height, fixedSampleLocations)()
	if m.checkEnum(gl.NewSet(gl.TEXTURE_2D_MULTISAMPLE), target, "texture target") {
		_, tex := m.boundTexture(target)
		m.multisample(tex, target, samples, internalFormat, width, height, 1, fixedSampleLocations, gl.INVALID_OPERATION)
	}
}

// TexImage3DMultisample defines the image of a multisample array texture.
func (m *Manager) TexImage3DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height, depth int32, fixedSampleLocations bool) {
	defer m.call("TexImage3DMultisample", target, samples, internalFormat, width, height, depth, fixedSampleLocations)()
	if m.checkEnum(gl.NewSet(gl.TEXTURE_2D_MULTISAMPLE_ARRAY), target, "texture target") {
		_, tex := m.boundTexture(target)
		m.multisample(tex, target, samples, internalFormat, width, height, depth, fixedSampleLocations, gl.INVALID_OPERATION)
	}
}

func (m *Manager) texStorageMultisample(target gl.Enum, samples int32, internal gl.Enum, width, height, depth int32, fixed bool) {
	tex := m.storageTexture(target)
	if tex == nil {
		return
	}
	if width < 1 || height < 1 || depth < 1 {
		m.fail(gl.INVALID_VALUE, "size %dx%dx%d must be positive", width, height, depth)
		return
	}
	if m.multisample(tex, target, samples, internal, width, height, depth, fixed, gl.INVALID_VALUE) {
		tex.immutable = true
		tex.immutableLevels = 1
	}
}

// TexStorage2DMultisample allocates immutable storage for a multisample
// texture.
func (m *Manager) TexStorage2DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32, fixedSampleLocations bool) {
	defer m.call("TexStorage2DMultisample", target, samples, internalFormat, width, height, fixedSampleLocations)()
	if m.checkEnum(gl.NewSet(gl.TEXTURE_2D_MULTISAMPLE), target, "texture target") {
		m.texStorageMultisample(target, samples, internalFormat, width, height, 1, fixedSampleLocations)
	}
}

// TexStorage3DMultisample allocates immutable storage for a multisample
// array texture.
func (m *Manager) TexStorage3DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height, depth int32, fixedSampleLocations bool) {
	defer m.call("TexStorage3DMultisample", target, samples, internalFormat, width, height, depth, fixedSampleLocations)()
	if m.checkEnum(gl.NewSet(gl.TEXTURE_2D_MULTISAMPLE_ARRAY), target, "texture target") {
		m.texStorageMultisample(target, samples, internalFormat, width, height, depth, fixedSampleLocations)
	}
}

// GetMultisamplefv returns the position of a sample of the multisample
// texture bound on the active unit. val is unchanged on error.
func (m *Manager) GetMultisamplefv(pname gl.Enum, index uint32, val []float32) {
	defer m.call("GetMultisamplefv", pname, index, val)()
	if pname != gl.SAMPLE_POSITION {
		m.fail(gl.INVALID_ENUM, "invalid multisample parameter %v", pname)
		return
	}
	name, tex := m.boundTexture(gl.TEXTURE_2D_MULTISAMPLE)
	if name == 0 || tex.samples == 0 {
		m.fail(gl.INVALID_OPERATION, "no multisample texture is bound")
		return
	}
	if int64(index) >= int64(tex.samples) {
		m.fail(gl.INVALID_VALUE, "sample %d out of range", index)
		return
	}
	if len(val) >= 2 {
		pos := float32(index) / float32(tex.samples)
		val[0], val[1] = pos, pos
	}
}

func (m *Manager) textureQuery(pname gl.Enum) (param, bool) {
	t := &m.v.textures
	if pname == gl.ACTIVE_TEXTURE {
		return enums(gl.TEXTURE0 + gl.Enum(t.active)), true
	}
	if target, ok := textureBindings[pname]; ok {
		return uints(t.bindings[unitTarget{t.active, target}]), true
	}
	return param{}, false
}
