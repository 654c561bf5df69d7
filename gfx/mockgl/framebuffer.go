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
	gl "github.com/google/ion/gfx/glenum"
)

// attachmentPoints lists the attachment points in the order they are
// checked for completeness.
var attachmentPoints = []gl.Enum{
	gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1, gl.COLOR_ATTACHMENT2, gl.COLOR_ATTACHMENT3,
	gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT,
}

// unsizedBits are the component sizes assumed for unsized texture formats.
var unsizedBits = map[gl.Enum]gl.ComponentBits{
	gl.RGBA:            {Red: 8, Green: 8, Blue: 8, Alpha: 8},
	gl.RGB:             {Red: 8, Green: 8, Blue: 8},
	gl.RG:              {Red: 8, Green: 8},
	gl.RED:             {Red: 8},
	gl.ALPHA:           {Alpha: 8},
	gl.LUMINANCE:       {Red: 8},
	gl.LUMINANCE_ALPHA: {Red: 8, Alpha: 8},
	gl.DEPTH_COMPONENT: {Depth: 16},
	gl.DEPTH_STENCIL:   {Depth: 24, Stencil: 8},
}

func componentBits(format gl.Enum) gl.ComponentBits {
	if b, ok := gl.FormatBits(format); ok {
		return b
	}
	return unsizedBits[format]
}

// defaultBits are the sizes of the buffers of framebuffer 0.
var defaultBits = gl.ComponentBits{Red: 8, Green: 8, Blue: 8, Alpha: 8, Depth: 16, Stencil: 8}

type attachment struct {
	// kind is TEXTURE, RENDERBUFFER or NONE.
	kind  gl.Enum
	name  uint32
	level int32
	// face is the cube map face of a cube map texture, otherwise 0.
	face gl.Enum
}

type framebuffer struct {
	attachments map[gl.Enum]attachment
}

func newFramebuffer() *framebuffer {
	return &framebuffer{attachments: map[gl.Enum]attachment{}}
}

type renderbuffer struct {
	width, height int32
	format        gl.Enum
	samples       int32
}

func newRenderbuffer() *renderbuffer { return &renderbuffer{format: gl.RGBA4} }

type framebufferState struct {
	objects       *objectTable[framebuffer]
	renderbuffers *objectTable[renderbuffer]
	draw, read    uint32
	renderbuffer  uint32
}

func newFramebufferState() framebufferState {
	return framebufferState{
		objects:       newObjectTable[framebuffer](),
		renderbuffers: newObjectTable[renderbuffer](),
	}
}

// image is the storage an attachment refers to.
type image struct {
	width, height int32
	format        gl.Enum
	samples       int32
}

// attachedImage returns the storage of an attachment, or false if it has
// none.
func (m *Manager) attachedImage(a attachment) (image, bool) {
	switch a.kind {
	case gl.RENDERBUFFER:
		rb := m.v.framebuffers.renderbuffers.get(a.name)
		if rb == nil || rb.width == 0 || rb.height == 0 {
			return image{}, false
		}
		return image{rb.width, rb.height, rb.format, rb.samples}, true
	case gl.TEXTURE:
		tex := m.v.textures.objects.get(a.name)
		if tex == nil {
			return image{}, false
		}
		target := tex.target
		if a.face != 0 {
			target = a.face
		}
		img, ok := tex.images[imageKey{target, a.level}]
		if !ok || img.width == 0 || img.height == 0 {
			return image{}, false
		}
		return image{img.width, img.height, img.format, tex.samples}, true
	}
	return image{}, false
}

// status returns the completeness of a framebuffer. nil is framebuffer 0,
// which is always complete.
func (m *Manager) status(fb *framebuffer) gl.Enum {
	if fb == nil {
		return gl.FRAMEBUFFER_COMPLETE
	}
	images := []image{}
	for _, point := range attachmentPoints {
		a, ok := fb.attachments[point]
		if !ok {
			continue
		}
		img, ok := m.attachedImage(a)
		if !ok {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		bits := componentBits(img.format)
		switch point {
		case gl.DEPTH_ATTACHMENT:
			ok = bits.Depth > 0
		case gl.STENCIL_ATTACHMENT:
			ok = bits.Stencil > 0
		default:
			ok = bits.HasColor()
		}
		if !ok {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	for _, img := range images[1:] {
		if img.width != images[0].width || img.height != images[0].height {
			return gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		}
	}
	for _, img := range images[1:] {
		if img.samples != images[0].samples {
			return gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
		}
	}
	return gl.FRAMEBUFFER_COMPLETE
}

// framebufferFor returns the name bound to a framebuffer target.
// FRAMEBUFFER refers to the draw framebuffer.
func (m *Manager) framebufferFor(target gl.Enum) uint32 {
	if target == gl.READ_FRAMEBUFFER {
		return m.v.framebuffers.read
	}
	return m.v.framebuffers.draw
}

func (m *Manager) checkFramebuffer(name uint32, what string) bool {
	if s := m.status(m.v.framebuffers.objects.get(name)); s != gl.FRAMEBUFFER_COMPLETE {
		m.fail(gl.INVALID_FRAMEBUFFER_OPERATION, "%s framebuffer %d is incomplete: %v", what, name, s)
		return false
	}
	return true
}

// checkDrawFramebuffer raises INVALID_FRAMEBUFFER_OPERATION if the draw
// framebuffer is incomplete.
func (m *Manager) checkDrawFramebuffer() bool {
	return m.checkFramebuffer(m.v.framebuffers.draw, "draw")
}

// checkReadFramebuffer raises INVALID_FRAMEBUFFER_OPERATION if the read
// framebuffer is incomplete.
func (m *Manager) checkReadFramebuffer() bool {
	return m.checkFramebuffer(m.v.framebuffers.read, "read")
}

// detachFromFramebuffers removes an object of kind TEXTURE or
// RENDERBUFFER from every framebuffer it is attached to.
func (m *Manager) detachFromFramebuffers(kind gl.Enum, name uint32) {
	for _, fb := range m.v.framebuffers.objects.live {
		for point, a := range fb.attachments {
			if a.kind == kind && a.name == name {
				delete(fb.attachments, point)
			}
		}
	}
}

// GenFramebuffers allocates n framebuffer names into ids.
func (m *Manager) GenFramebuffers(n int32, ids []uint32) {
	defer m.call("GenFramebuffers", n, ids)()
	genNames(m, m.v.framebuffers.objects, n, ids, newFramebuffer)
}

// DeleteFramebuffers deletes framebuffers. Bound framebuffers are
// replaced by framebuffer 0.
func (m *Manager) DeleteFramebuffers(n int32, ids []uint32) {
	defer m.call("DeleteFramebuffers", n, ids)()
	s := &m.v.framebuffers
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *framebuffer) {
		if s.draw == name {
			s.draw = 0
		}
		if s.read == name {
			s.read = 0
		}
	})
}

// IsFramebuffer returns true for 0 and live framebuffer names.
func (m *Manager) IsFramebuffer(name uint32) bool {
	defer m.call("IsFramebuffer", name)()
	return name == 0 || m.v.framebuffers.objects.has(name)
}

// BindFramebuffer binds a framebuffer. FRAMEBUFFER binds both the draw
// and the read framebuffer.
func (m *Manager) BindFramebuffer(target gl.Enum, name uint32) {
	defer m.call("BindFramebuffer", target, name)()
	if !m.checkEnum(framebufferTargets, target, "framebuffer target") {
		return
	}
	s := &m.v.framebuffers
	if name != 0 && !s.objects.has(name) {
		m.fail(gl.INVALID_OPERATION, "unknown framebuffer %d", name)
		return
	}
	if target != gl.READ_FRAMEBUFFER {
		s.draw = name
	}
	if target != gl.DRAW_FRAMEBUFFER {
		s.read = name
	}
}

// CheckFramebufferStatus returns the completeness of the framebuffer
// bound to target.
func (m *Manager) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	defer m.call("CheckFramebufferStatus", target)()
	if !m.checkEnum(framebufferTargets, target, "framebuffer target") {
		return 0
	}
	return m.status(m.v.framebuffers.objects.get(m.framebufferFor(target)))
}

// attachTarget returns the framebuffer bound to target, raising
// INVALID_OPERATION for framebuffer 0.
func (m *Manager) attachTarget(target gl.Enum) *framebuffer {
	fb := m.v.framebuffers.objects.get(m.framebufferFor(target))
	if fb == nil {
		m.fail(gl.INVALID_OPERATION, "framebuffer 0 has no attachments")
	}
	return fb
}

var framebufferTextureTargets = gl.NewSet(gl.TEXTURE_2D, gl.TEXTURE_2D_MULTISAMPLE).Union(cubeFaces)

// FramebufferTexture2D attaches a level of a texture. Texture 0 detaches
// the attachment point.
func (m *Manager) FramebufferTexture2D(target, point, textarget gl.Enum, texture uint32, level int32) {
	defer m.call("FramebufferTexture2D", target, point, textarget, texture, level)()
	if !m.checkEnum(framebufferTargets, target, "framebuffer target") ||
		!m.checkEnum(attachments, point, "attachment") ||
		!m.checkEnum(framebufferTextureTargets, textarget, "texture target") {
		return
	}
	fb := m.attachTarget(target)
	if fb == nil {
		return
	}
	if texture == 0 {
		delete(fb.attachments, point)
		return
	}
	tex := m.v.textures.objects.get(texture)
	if tex == nil {
		m.fail(gl.INVALID_OPERATION, "unknown texture %d", texture)
		return
	}
	if tex.target != bindingTarget(textarget) {
		m.fail(gl.INVALID_OPERATION, "texture %d is a %v, not a %v", texture, tex.target, textarget)
		return
	}
	if level < 0 {
		m.fail(gl.INVALID_VALUE, "negative level %d", level)
		return
	}
	a := attachment{kind: gl.TEXTURE, name: texture, level: level}
	if cubeFaces.Contains(textarget) {
		a.face = textarget
	}
	fb.attachments[point] = a
}

// FramebufferRenderbuffer attaches a renderbuffer. Renderbuffer 0
// detaches the attachment point.
func (m *Manager) FramebufferRenderbuffer(target, point, rbtarget gl.Enum, name uint32) {
	defer m.call("FramebufferRenderbuffer", target, point, rbtarget, name)()
	if !m.checkEnum(framebufferTargets, target, "framebuffer target") ||
		!m.checkEnum(attachments, point, "attachment") ||
		!m.checkEnum(renderbufferTargets, rbtarget, "renderbuffer target") {
		return
	}
	fb := m.attachTarget(target)
	if fb == nil {
		return
	}
	if name == 0 {
		delete(fb.attachments, point)
		return
	}
	if !m.v.framebuffers.renderbuffers.has(name) {
		m.fail(gl.INVALID_OPERATION, "unknown renderbuffer %d", name)
		return
	}
	fb.attachments[point] = attachment{kind: gl.RENDERBUFFER, name: name}
}

// GetFramebufferAttachmentParameteriv returns a parameter of an
// attachment of the framebuffer bound to target.
func (m *Manager) GetFramebufferAttachmentParameteriv(target, point, pname gl.Enum) int32 {
	defer m.call("GetFramebufferAttachmentParameteriv", target, point, pname)()
	if !m.checkEnum(framebufferTargets, target, "framebuffer target") ||
		!m.checkEnum(attachments, point, "attachment") {
		return 0
	}
	switch pname {
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE, gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME,
		gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL, gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE,
		gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER:
	default:
		m.fail(gl.INVALID_ENUM, "invalid attachment parameter %v", pname)
		return 0
	}
	fb := m.attachTarget(target)
	if fb == nil {
		return 0
	}
	a, ok := fb.attachments[point]
	if pname == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE {
		if !ok {
			return int32(gl.NONE)
		}
		return int32(a.kind)
	}
	if !ok || (a.kind != gl.TEXTURE && pname != gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME) {
		m.fail(gl.INVALID_ENUM, "%v is not defined for this attachment", pname)
		return 0
	}
	switch pname {
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
		return int32(a.name)
	case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
		return a.level
	case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE:
		return int32(a.face)
	}
	return 0
}

// GenRenderbuffers allocates n renderbuffer names into ids.
func (m *Manager) GenRenderbuffers(n int32, ids []uint32) {
	defer m.call("GenRenderbuffers", n, ids)()
	genNames(m, m.v.framebuffers.renderbuffers, n, ids, newRenderbuffer)
}

// DeleteRenderbuffers deletes renderbuffers, unbinding them and removing
// them from every framebuffer.
func (m *Manager) DeleteRenderbuffers(n int32, ids []uint32) {
	defer m.call("DeleteRenderbuffers", n, ids)()
	s := &m.v.framebuffers
	deleteNames(m, s.renderbuffers, n, ids, func(name uint32, _ *renderbuffer) {
		if s.renderbuffer == name {
			s.renderbuffer = 0
		}
		m.detachFromFramebuffers(gl.RENDERBUFFER, name)
	})
}

// IsRenderbuffer returns true for 0 and live renderbuffer names.
func (m *Manager) IsRenderbuffer(name uint32) bool {
	defer m.call("IsRenderbuffer", name)()
	return name == 0 || m.v.framebuffers.renderbuffers.has(name)
}

// BindRenderbuffer binds a renderbuffer.
func (m *Manager) BindRenderbuffer(target gl.Enum, name uint32) {
	defer m.call("BindRenderbuffer", target, name)()
	if !m.checkEnum(renderbufferTargets, target, "renderbuffer target") {
		return
	}
	if name != 0 && !m.v.framebuffers.renderbuffers.has(name) {
		m.fail(gl.INVALID_OPERATION, "unknown renderbuffer %d", name)
		return
	}
	m.v.framebuffers.renderbuffer = name
}

// boundRenderbuffer returns the bound renderbuffer, raising
// INVALID_OPERATION if there is none.
func (m *Manager) boundRenderbuffer() *renderbuffer {
	rb := m.v.framebuffers.renderbuffers.get(m.v.framebuffers.renderbuffer)
	if rb == nil {
		m.fail(gl.INVALID_OPERATION, "no renderbuffer bound")
	}
	return rb
}

func (m *Manager) renderbufferStorage(target gl.Enum, samples int32, format gl.Enum, width, height int32) {
	if !m.checkEnum(renderbufferTargets, target, "renderbuffer target") {
		return
	}
	rb := m.boundRenderbuffer()
	if rb == nil || !m.checkEnum(gl.RenderbufferFormats, format, "renderbuffer format") {
		return
	}
	max := m.v.caps.MaxRenderbufferSize
	switch {
	case width < 0 || height < 0:
		m.fail(gl.INVALID_VALUE, "negative size %dx%d", width, height)
	case width >= max || height >= max:
		m.fail(gl.INVALID_VALUE, "size %dx%d is not below %d", width, height, max)
	case samples < 0 || samples > m.v.caps.MaxSamples:
		m.fail(gl.INVALID_VALUE, "%d samples is not in [0, %d]", samples, m.v.caps.MaxSamples)
	default:
		*rb = renderbuffer{width, height, format, samples}
	}
}

// RenderbufferStorage allocates the storage of the bound renderbuffer.
func (m *Manager) RenderbufferStorage(target, format gl.Enum, width, height int32) {
	defer m.call("RenderbufferStorage", target, format, width, height)()
	m.renderbufferStorage(target, 0, format, width, height)
}

// RenderbufferStorageMultisample allocates multisample storage for the
// bound renderbuffer.
func (m *Manager) RenderbufferStorageMultisample(target gl.Enum, samples int32, format gl.Enum, width, height int32) {
	defer m.call("RenderbufferStorageMultisample", target, samples, format, width, height)()
	m.renderbufferStorage(target, samples, format, width, height)
}

// GetRenderbufferParameteriv returns a parameter of the bound
// renderbuffer.
func (m *Manager) GetRenderbufferParameteriv(target, pname gl.Enum) int32 {
	defer m.call("GetRenderbufferParameteriv", target, pname)()
	if !m.checkEnum(renderbufferTargets, target, "renderbuffer target") {
		return 0
	}
	switch pname {
	case gl.RENDERBUFFER_WIDTH, gl.RENDERBUFFER_HEIGHT, gl.RENDERBUFFER_INTERNAL_FORMAT,
		gl.RENDERBUFFER_SAMPLES, gl.RENDERBUFFER_RED_SIZE, gl.RENDERBUFFER_GREEN_SIZE,
		gl.RENDERBUFFER_BLUE_SIZE, gl.RENDERBUFFER_ALPHA_SIZE, gl.RENDERBUFFER_DEPTH_SIZE,
		gl.RENDERBUFFER_STENCIL_SIZE:
	default:
		m.fail(gl.INVALID_ENUM, "invalid renderbuffer parameter %v", pname)
		return 0
	}
	rb := m.boundRenderbuffer()
	if rb == nil {
		return 0
	}
	bits := gl.ComponentBits{}
	if rb.width > 0 && rb.height > 0 {
		bits = componentBits(rb.format)
	}
	switch pname {
	case gl.RENDERBUFFER_WIDTH:
		return rb.width
	case gl.RENDERBUFFER_HEIGHT:
		return rb.height
	case gl.RENDERBUFFER_INTERNAL_FORMAT:
		return int32(rb.format)
	case gl.RENDERBUFFER_SAMPLES:
		return rb.samples
	case gl.RENDERBUFFER_RED_SIZE:
		return int32(bits.Red)
	case gl.RENDERBUFFER_GREEN_SIZE:
		return int32(bits.Green)
	case gl.RENDERBUFFER_BLUE_SIZE:
		return int32(bits.Blue)
	case gl.RENDERBUFFER_ALPHA_SIZE:
		return int32(bits.Alpha)
	case gl.RENDERBUFFER_DEPTH_SIZE:
		return int32(bits.Depth)
	default:
		return int32(bits.Stencil)
	}
}

// ReadPixels reads a block of pixels from the read framebuffer into data.
// The mock has no pixel contents, so data is cleared.
func (m *Manager) ReadPixels(x, y, width, height int32, format, typ gl.Enum, data []byte) {
	defer m.call("ReadPixels", x, y, width, height, format, typ, data)()
	if width < 0 || height < 0 {
		m.fail(gl.INVALID_VALUE, "negative size %dx%d", width, height)
		return
	}
	if !m.checkPixels(0, format, typ) || !m.checkReadFramebuffer() {
		return
	}
	for i := range data {
		data[i] = 0
	}
}

// colorImage returns the image at COLOR_ATTACHMENT0 of a framebuffer.
func (m *Manager) colorImage(fb *framebuffer) (image, bool) {
	a, ok := fb.attachments[gl.COLOR_ATTACHMENT0]
	if !ok {
		return image{}, false
	}
	return m.attachedImage(a)
}

// ResolveMultisampleFramebuffer resolves the multisample color buffer of
// the read framebuffer into the single sample draw framebuffer.
func (m *Manager) ResolveMultisampleFramebuffer() {
	defer m.call("ResolveMultisampleFramebuffer")()
	if !m.checkDrawFramebuffer() || !m.checkReadFramebuffer() {
		return
	}
	s := &m.v.framebuffers
	read, draw := s.objects.get(s.read), s.objects.get(s.draw)
	if read == nil || draw == nil {
		m.fail(gl.INVALID_OPERATION, "framebuffer 0 cannot be resolved")
		return
	}
	src, srcOK := m.colorImage(read)
	dst, dstOK := m.colorImage(draw)
	switch {
	case !srcOK:
		m.fail(gl.INVALID_OPERATION, "read framebuffer has no color attachment")
	case !dstOK:
		m.fail(gl.INVALID_OPERATION, "draw framebuffer has no color attachment")
	case src.samples == 0:
		m.fail(gl.INVALID_OPERATION, "read framebuffer is not multisampled")
	case dst.samples > 0:
		m.fail(gl.INVALID_OPERATION, "draw framebuffer is multisampled")
	case src.width != dst.width || src.height != dst.height:
		m.fail(gl.INVALID_OPERATION, "read size %dx%d differs from draw size %dx%d",
			src.width, src.height, dst.width, dst.height)
	case !componentBits(src.format).Covers(componentBits(dst.format).Color()):
		m.fail(gl.INVALID_OPERATION, "read format %v lacks components of draw format %v", src.format, dst.format)
	}
}

// drawBits returns the component sizes of the draw framebuffer and its
// sample count.
func (m *Manager) drawBits() (gl.ComponentBits, int32) {
	fb := m.v.framebuffers.objects.get(m.v.framebuffers.draw)
	if fb == nil {
		return defaultBits, 1
	}
	bits := gl.ComponentBits{}
	samples := int32(0)
	if img, ok := m.colorImage(fb); ok {
		c := componentBits(img.format)
		bits.Red, bits.Green, bits.Blue, bits.Alpha = c.Red, c.Green, c.Blue, c.Alpha
		samples = img.samples
	}
	if a, ok := fb.attachments[gl.DEPTH_ATTACHMENT]; ok {
		if img, ok := m.attachedImage(a); ok {
			bits.Depth = componentBits(img.format).Depth
		}
	}
	if a, ok := fb.attachments[gl.STENCIL_ATTACHMENT]; ok {
		if img, ok := m.attachedImage(a); ok {
			bits.Stencil = componentBits(img.format).Stencil
		}
	}
	return bits, samples
}

func (m *Manager) framebufferQuery(pname gl.Enum) (param, bool) {
	s := &m.v.framebuffers
	switch pname {
	case gl.DRAW_FRAMEBUFFER_BINDING:
		return uints(s.draw), true
	case gl.READ_FRAMEBUFFER_BINDING:
		return uints(s.read), true
	case gl.RENDERBUFFER_BINDING:
		return uints(s.renderbuffer), true
	}
	bits, samples := m.drawBits()
	switch pname {
	case gl.RED_BITS:
		return ints(int32(bits.Red)), true
	case gl.GREEN_BITS:
		return ints(int32(bits.Green)), true
	case gl.BLUE_BITS:
		return ints(int32(bits.Blue)), true
	case gl.ALPHA_BITS:
		return ints(int32(bits.Alpha)), true
	case gl.DEPTH_BITS:
		return ints(int32(bits.Depth)), true
	case gl.STENCIL_BITS:
		return ints(int32(bits.Stencil)), true
	case gl.SAMPLES:
		return ints(samples), true
	case gl.SAMPLE_BUFFERS:
		// Framebuffer 0 is single sampled.
		if s.draw != 0 && samples > 0 {
			return ints(1), true
		}
		return ints(0), true
	}
	return param{}, false
}
