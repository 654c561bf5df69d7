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

package mockgl_test

import (
	"testing"

	"github.com/google/ion/core/assert"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

func genFramebuffer(m *mockgl.Manager, target gl.Enum) uint32 {
	ids := []uint32{0}
	m.GenFramebuffers(1, ids)
	m.BindFramebuffer(target, ids[0])
	return ids[0]
}

func genRenderbuffer(m *mockgl.Manager, samples int32, format gl.Enum, width, height int32) uint32 {
	ids := []uint32{0}
	m.GenRenderbuffers(1, ids)
	m.BindRenderbuffer(gl.RENDERBUFFER, ids[0])
	m.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format, width, height)
	return ids[0]
}

func TestFramebufferBinding(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("zero").ThatBoolean(m.IsFramebuffer(0)).IsTrue()
	assert.For("default complete").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_COMPLETE)

	fb := genFramebuffer(m, gl.DRAW_FRAMEBUFFER)
	assert.For("draw").ThatInteger(int(getInteger(m, gl.DRAW_FRAMEBUFFER_BINDING))).Equals(int(fb))
	assert.For("read").ThatInteger(int(getInteger(m, gl.READ_FRAMEBUFFER_BINDING))).Equals(0)
	m.BindFramebuffer(gl.FRAMEBUFFER, fb)
	assert.For("both").ThatInteger(int(getInteger(m, gl.READ_FRAMEBUFFER_BINDING))).Equals(int(fb))

	m.BindFramebuffer(gl.FRAMEBUFFER, 12)
	expectError(assert, m, "unknown", gl.INVALID_OPERATION)
	m.BindFramebuffer(gl.RENDERBUFFER, fb)
	expectError(assert, m, "target", gl.INVALID_ENUM)
	m.CheckFramebufferStatus(gl.TEXTURE_2D)
	expectError(assert, m, "status target", gl.INVALID_ENUM)

	m.DeleteFramebuffers(1, []uint32{fb})
	assert.For("deleted").ThatBoolean(m.IsFramebuffer(fb)).IsFalse()
	assert.For("draw reset").ThatInteger(int(getInteger(m, gl.DRAW_FRAMEBUFFER_BINDING))).Equals(0)
	assert.For("read reset").ThatInteger(int(getInteger(m, gl.READ_FRAMEBUFFER_BINDING))).Equals(0)
}

func TestFramebufferCompleteness(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	genFramebuffer(m, gl.FRAMEBUFFER)
	assert.For("empty").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT)
	m.Clear(uint32(gl.COLOR_BUFFER_BIT))
	expectError(assert, m, "clear incomplete", gl.INVALID_FRAMEBUFFER_OPERATION)
	m.DrawArrays(gl.TRIANGLES, 0, 3)
	expectError(assert, m, "draw incomplete", gl.INVALID_FRAMEBUFFER_OPERATION)

	color := genRenderbuffer(m, 0, gl.RGBA4, 32, 32)
	m.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, color)
	expectError(assert, m, "attach", gl.NO_ERROR)
	assert.For("complete").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_COMPLETE)
	assert.For("red bits").ThatInteger(int(getInteger(m, gl.RED_BITS))).Equals(4)
	assert.For("depth bits").ThatInteger(int(getInteger(m, gl.DEPTH_BITS))).Equals(0)
	m.Clear(uint32(gl.COLOR_BUFFER_BIT))
	expectError(assert, m, "clear", gl.NO_ERROR)

	depth := genRenderbuffer(m, 0, gl.DEPTH_COMPONENT16, 16, 16)
	m.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
	assert.For("dimensions").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, 32, 32)
	assert.For("depth complete").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_COMPLETE)
	assert.For("depth bits").ThatInteger(int(getInteger(m, gl.DEPTH_BITS))).Equals(16)

	m.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, color)
	assert.For("stencil format").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT)
	m.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, 0)

	multi := genRenderbuffer(m, 4, gl.RGBA4, 32, 32)
	m.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.RENDERBUFFER, multi)
	assert.For("samples").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE)

	m.DeleteRenderbuffers(1, []uint32{multi})
	assert.For("detached").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_COMPLETE)
	assert.For("type").ThatEnum(gl.Enum(m.GetFramebufferAttachmentParameteriv(
		gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE))).Equals(gl.NONE)
}

func TestFramebufferTextures(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	tex := genTexture(m, gl.TEXTURE_2D)
	m.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 32, 32, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	expectError(assert, m, "framebuffer 0", gl.INVALID_OPERATION)

	genFramebuffer(m, gl.FRAMEBUFFER)
	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	expectError(assert, m, "attach", gl.NO_ERROR)
	assert.For("complete").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_COMPLETE)

	param := func(pname gl.Enum) int32 {
		return m.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, pname)
	}
	assert.For("type").ThatEnum(gl.Enum(param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE))).Equals(gl.TEXTURE)
	assert.For("name").ThatInteger(int(param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME))).Equals(int(tex))
	assert.For("level").ThatInteger(int(param(gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL))).Equals(0)
	param(gl.BLEND)
	expectError(assert, m, "pname", gl.INVALID_ENUM)

	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_CUBE_MAP_POSITIVE_X, tex, 0)
	expectError(assert, m, "wrong kind", gl.INVALID_OPERATION)
	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, 99, 0)
	expectError(assert, m, "unknown", gl.INVALID_OPERATION)
	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, -1)
	expectError(assert, m, "level", gl.INVALID_VALUE)
	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.BLEND, gl.TEXTURE_2D, tex, 0)
	expectError(assert, m, "point", gl.INVALID_ENUM)

	m.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 1)
	assert.For("missing level").ThatEnum(m.CheckFramebufferStatus(gl.FRAMEBUFFER)).Equals(gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT)

	m.DeleteTextures(1, []uint32{tex})
	assert.For("detached").ThatEnum(gl.Enum(param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE))).Equals(gl.NONE)
	param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME)
	expectError(assert, m, "no attachment", gl.INVALID_ENUM)
}

func TestRenderbuffers(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, 4, 4)
	expectError(assert, m, "nothing bound", gl.INVALID_OPERATION)
	assert.For("zero").ThatBoolean(m.IsRenderbuffer(0)).IsTrue()

	rb := genRenderbuffer(m, 0, gl.RGB565, 64, 32)
	assert.For("live").ThatBoolean(m.IsRenderbuffer(rb)).IsTrue()
	assert.For("binding").ThatInteger(int(getInteger(m, gl.RENDERBUFFER_BINDING))).Equals(int(rb))
	param := func(pname gl.Enum) int {
		return int(m.GetRenderbufferParameteriv(gl.RENDERBUFFER, pname))
	}
	assert.For("width").ThatInteger(param(gl.RENDERBUFFER_WIDTH)).Equals(64)
	assert.For("height").ThatInteger(param(gl.RENDERBUFFER_HEIGHT)).Equals(32)
	assert.For("format").ThatEnum(gl.Enum(param(gl.RENDERBUFFER_INTERNAL_FORMAT))).Equals(gl.RGB565)
	assert.For("green").ThatInteger(param(gl.RENDERBUFFER_GREEN_SIZE)).Equals(6)
	assert.For("alpha").ThatInteger(param(gl.RENDERBUFFER_ALPHA_SIZE)).Equals(0)
	param(gl.BLEND)
	expectError(assert, m, "pname", gl.INVALID_ENUM)

	for _, test := range []struct {
		name          string
		samples       int32
		format        gl.Enum
		width, height int32
		expect        gl.Enum
	}{
		{"largest", 0, gl.RGBA8, 4095, 1, gl.NO_ERROR},
		{"at the limit", 0, gl.RGBA8, 4096, 1, gl.INVALID_VALUE},
		{"negative", 0, gl.RGBA8, 1, -1, gl.INVALID_VALUE},
		{"format", 0, gl.RGBA, 1, 1, gl.INVALID_ENUM},
		{"samples", 17, gl.RGBA8, 1, 1, gl.INVALID_VALUE},
	} {
		m.RenderbufferStorageMultisample(gl.RENDERBUFFER, test.samples, test.format, test.width, test.height)
		expectError(assert, m, test.name, test.expect)
	}
	m.BindRenderbuffer(gl.RENDERBUFFER, 9)
	expectError(assert, m, "unknown", gl.INVALID_OPERATION)
	m.BindRenderbuffer(gl.FRAMEBUFFER, rb)
	expectError(assert, m, "target", gl.INVALID_ENUM)

	m.DeleteRenderbuffers(1, []uint32{rb})
	assert.For("unbound").ThatInteger(int(getInteger(m, gl.RENDERBUFFER_BINDING))).Equals(0)
}

func TestDefaultFramebufferBits(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	for _, test := range []struct {
		pname  gl.Enum
		expect int
	}{
		{gl.RED_BITS, 8},
		{gl.ALPHA_BITS, 8},
		{gl.DEPTH_BITS, 16},
		{gl.STENCIL_BITS, 8},
		{gl.SAMPLES, 1},
		{gl.SAMPLE_BUFFERS, 0},
	} {
		assert.For("%v", test.pname).ThatInteger(int(getInteger(m, test.pname))).Equals(test.expect)
	}
}

func TestReadPixels(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	data := []byte{1, 2, 3, 4}
	m.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, data)
	expectError(assert, m, "read", gl.NO_ERROR)
	assert.For("cleared").ThatSlice(data).Equals([]byte{0, 0, 0, 0})
	m.ReadPixels(0, 0, -1, 1, gl.RGBA, gl.UNSIGNED_BYTE, data)
	expectError(assert, m, "size", gl.INVALID_VALUE)
	m.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.BLEND, data)
	expectError(assert, m, "type", gl.INVALID_ENUM)

	genFramebuffer(m, gl.READ_FRAMEBUFFER)
	m.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, data)
	expectError(assert, m, "incomplete", gl.INVALID_FRAMEBUFFER_OPERATION)
}

func TestResolveMultisampleFramebuffer(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "framebuffer 0", gl.INVALID_OPERATION)

	genFramebuffer(m, gl.READ_FRAMEBUFFER)
	multi := genRenderbuffer(m, 4, gl.RGBA8, 16, 16)
	m.FramebufferRenderbuffer(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, multi)
	genFramebuffer(m, gl.DRAW_FRAMEBUFFER)
	single := genRenderbuffer(m, 0, gl.RGBA8, 16, 16)
	m.FramebufferRenderbuffer(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, single)
	expectError(assert, m, "setup", gl.NO_ERROR)
	assert.For("samples").ThatInteger(int(getInteger(m, gl.SAMPLES))).Equals(0)

	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "resolve", gl.NO_ERROR)

	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, 8, 8)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "size", gl.INVALID_OPERATION)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RGB8, 16, 16)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "fewer components", gl.NO_ERROR)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RG8, 16, 16)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "red green", gl.NO_ERROR)

	m.BindRenderbuffer(gl.RENDERBUFFER, multi)
	m.RenderbufferStorageMultisample(gl.RENDERBUFFER, 4, gl.RGBA4, 16, 16)
	m.BindRenderbuffer(gl.RENDERBUFFER, single)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, 16, 16)
	expectError(assert, m, "narrow read", gl.NO_ERROR)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "fewer bits", gl.INVALID_OPERATION)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA4, 16, 16)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "same bits", gl.NO_ERROR)
	m.RenderbufferStorage(gl.RENDERBUFFER, gl.R8, 16, 16)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "wider red", gl.INVALID_OPERATION)
	m.RenderbufferStorageMultisample(gl.RENDERBUFFER, 2, gl.RGBA8, 16, 16)
	m.ResolveMultisampleFramebuffer()
	expectError(assert, m, "multisampled draw", gl.INVALID_OPERATION)
}

func TestDrawCalls(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	for _, test := range []struct {
		name   string
		call   func()
		expect gl.Enum
	}{
		{"arrays", func() { m.DrawArrays(gl.TRIANGLE_STRIP, 0, 4) }, gl.NO_ERROR},
		{"arrays mode", func() { m.DrawArrays(gl.BLEND, 0, 4) }, gl.INVALID_ENUM},
		{"arrays count", func() { m.DrawArrays(gl.POINTS, 0, -1) }, gl.INVALID_VALUE},
		{"elements", func() { m.DrawElements(gl.LINES, 6, gl.UNSIGNED_SHORT, 0) }, gl.NO_ERROR},
		{"elements type", func() { m.DrawElements(gl.LINES, 6, gl.FLOAT, 0) }, gl.INVALID_ENUM},
		{"instanced", func() { m.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 10) }, gl.NO_ERROR},
		{"instances", func() { m.DrawArraysInstanced(gl.TRIANGLES, 0, 3, -1) }, gl.INVALID_VALUE},
		{"elements instanced", func() { m.DrawElementsInstanced(gl.TRIANGLE_FAN, 3, gl.UNSIGNED_INT, 0, 2) }, gl.NO_ERROR},
		{"elements instances", func() { m.DrawElementsInstanced(gl.TRIANGLE_FAN, 3, gl.UNSIGNED_INT, 0, -2) }, gl.INVALID_VALUE},
		{"flush", m.Flush, gl.NO_ERROR},
		{"finish", m.Finish, gl.NO_ERROR},
	} {
		test.call()
		expectError(assert, m, test.name, test.expect)
	}
}
