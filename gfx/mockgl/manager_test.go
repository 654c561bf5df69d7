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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/ion/core/assert"
	"github.com/google/ion/core/log"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

func newManager(t *testing.T) (context.Context, *mockgl.Manager) {
	ctx := log.Testing(t)
	v := mockgl.NewVisual(400, 300, mockgl.DefaultCapabilities())
	return ctx, mockgl.New(ctx, v)
}

// expectError checks and clears the pending error.
func expectError(assert assert.Manager, m *mockgl.Manager, what string, want gl.Enum) {
	assert.For(what).ThatEnum(m.GetError()).Equals(want)
}

func getInteger(m *mockgl.Manager, pname gl.Enum) int32 {
	v := []int32{0}
	m.GetIntegerv(pname, v)
	return v[0]
}

func TestErrorsAreSticky(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	expectError(assert, m, "initial", gl.NO_ERROR)

	m.Enable(gl.TEXTURE_2D)
	m.LineWidth(-1)
	expectError(assert, m, "first error kept", gl.INVALID_ENUM)
	expectError(assert, m, "cleared", gl.NO_ERROR)

	m.SetErrorCode(gl.OUT_OF_MEMORY)
	expectError(assert, m, "set error", gl.OUT_OF_MEMORY)
	m.SetErrorCode(gl.Enum(0x1234))
	expectError(assert, m, "any code", gl.Enum(0x1234))
}

func TestCallCount(t *testing.T) {
	assert := assert.To(t)
	ctx, m := newManager(t)
	m.ResetCallCount()
	m.Enable(gl.BLEND)
	m.Flush()
	m.GetError()
	assert.For("calls").ThatInteger(m.CallCount()).Equals(2)

	other := mockgl.New(ctx, m.Visual())
	other.Finish()
	assert.For("shared calls").ThatInteger(m.CallCount()).Equals(3)
	assert.For("shared state").ThatBoolean(other.IsEnabled(gl.BLEND)).IsTrue()

	m.ResetCallCount()
	assert.For("reset").ThatInteger(other.CallCount()).Equals(0)
}

func TestTrace(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	buf := &bytes.Buffer{}
	m.SetTraceWriter(buf)
	m.Enable(gl.DEPTH_TEST)
	m.Clear(uint32(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT))
	m.ClearColor(0.5, 1, 0, 0.25)
	m.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.InsertEventMarker("frame")
	m.SetTraceWriter(nil)
	m.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.For("lines").ThatSlice(lines).Equals([]string{
		"Enable(GL_DEPTH_TEST)",
		"Clear(GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT)",
		"ClearColor(0.5, 1, 0, 0.25)",
		"BindBuffer(GL_ARRAY_BUFFER, 0x0)",
		`InsertEventMarker("frame")`,
	})
}

func TestErrorChecking(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("default").ThatBoolean(m.IsErrorCheckingEnabled()).IsFalse()
	m.EnableErrorChecking(true)
	assert.For("enabled").ThatBoolean(m.IsErrorCheckingEnabled()).IsTrue()
	m.EnableErrorChecking(false)
	assert.For("disabled").ThatBoolean(m.IsErrorCheckingEnabled()).IsFalse()
}

func TestForcedFunctionFailure(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	ids := []uint32{0}
	m.SetForceFunctionFailure("GenBuffers", true)
	m.GenBuffers(1, ids)
	expectError(assert, m, "forced", gl.INVALID_OPERATION)
	assert.For("no name").ThatInteger(int(ids[0])).Equals(0)

	m.SetForceFunctionFailure("GenBuffers", false)
	m.GenBuffers(1, ids)
	expectError(assert, m, "cleared", gl.NO_ERROR)
	assert.For("name").ThatInteger(int(ids[0])).Equals(1)
}

func TestMaxBufferSize(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("default").ThatInteger(int(m.MaxBufferSize())).Equals(0)
	ids := []uint32{0}
	m.GenBuffers(1, ids)
	m.BindBuffer(gl.ARRAY_BUFFER, ids[0])
	m.SetMaxBufferSize(16)
	m.BufferData(gl.ARRAY_BUFFER, 32, nil, gl.STATIC_DRAW)
	expectError(assert, m, "too big", gl.OUT_OF_MEMORY)
	m.BufferData(gl.ARRAY_BUFFER, 16, nil, gl.STATIC_DRAW)
	expectError(assert, m, "fits", gl.NO_ERROR)
}

func TestVersionInfo(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("default version").ThatInteger(m.GLVersion()).Equals(33)
	assert.For("default flavor").ThatEnum(m.Flavor()).Equals(mockgl.ES)
	assert.For("default profile").ThatEnum(m.Profile()).Equals(mockgl.CoreProfile)

	for _, test := range []struct {
		version string
		flavor  mockgl.Flavor
		number  int
	}{
		{"3.0 Ion OpenGL", mockgl.Desktop, 30},
		{"2.0 Ion OpenGL ES", mockgl.ES, 20},
		{"1.2 Ion WebGL", mockgl.Web, 20},
		{"OpenGL ES 2.0 (WebGL 1.0)", mockgl.Web, 10},
		{"4.6.0 NVIDIA", mockgl.Desktop, 46},
		{"nonsense", mockgl.Desktop, 20},
	} {
		m.SetVersionString(test.version)
		assert.For("%q flavor", test.version).ThatEnum(m.Flavor()).Equals(test.flavor)
		assert.For("%q version", test.version).ThatInteger(m.GLVersion()).Equals(test.number)
		assert.For("%q string", test.version).ThatString(m.GetString(gl.VERSION)).Equals(test.version)
	}

	m.SetVersionString("4.5 desktop")
	assert.For("desktop profile").ThatEnum(m.Profile()).Equals(mockgl.CompatibilityProfile)
	m.SetContextProfileMask(uint32(gl.CONTEXT_CORE_PROFILE_BIT))
	assert.For("core").ThatEnum(m.Profile()).Equals(mockgl.CoreProfile)
	assert.For("mask").ThatInteger(int(getInteger(m, gl.CONTEXT_PROFILE_MASK))).Equals(int(gl.CONTEXT_CORE_PROFILE_BIT))
}

func TestIdentificationStrings(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("vendor").ThatString(m.GetString(gl.VENDOR)).Equals("Google")
	assert.For("renderer").ThatString(m.GetString(gl.RENDERER)).Equals("Ion fake OpenGL / ES")
	m.SetVendorString("Acme")
	m.SetRendererString("Acme GPU")
	assert.For("vendor").ThatString(m.GetString(gl.VENDOR)).Equals("Acme")
	assert.For("renderer").ThatString(m.GLRenderer()).Equals("Acme GPU")
	m.GetString(gl.BLEND)
	expectError(assert, m, "bad name", gl.INVALID_ENUM)

	m.SetExtensionsString("GL_OES_foo  GL_EXT_bar")
	assert.For("extensions").ThatString(m.GetString(gl.EXTENSIONS)).Equals("GL_OES_foo GL_EXT_bar")
	assert.For("count").ThatInteger(int(getInteger(m, gl.NUM_EXTENSIONS))).Equals(2)
	assert.For("index 1").ThatString(m.GetStringi(gl.EXTENSIONS, 1)).Equals("GL_EXT_bar")
	m.GetStringi(gl.EXTENSIONS, 2)
	expectError(assert, m, "index out of range", gl.INVALID_VALUE)
	m.GetStringi(gl.VENDOR, 0)
	expectError(assert, m, "bad indexed name", gl.INVALID_ENUM)
}

func TestExtensionSupport(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	m.SetExtensionsString("GL_OES_texture_3D GLX_SGI_swap_control foo_bar")
	for _, test := range []struct {
		name     string
		expected bool
	}{
		{"texture_3D", true},
		{"OES_texture_3D", true},
		{"swap_control", true},
		{"GL_OES_texture_3D", false},
		{"bar", false},
		{"texture", false},
		{"", false},
	} {
		assert.For(test.name).ThatBoolean(m.IsExtensionSupported(test.name)).Equals(test.expected)
	}
}

func TestFunctionGroups(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("core").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.Core)).IsTrue()
	assert.For("vertex arrays").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.VertexArrays)).IsTrue()
	assert.For("tiled").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.TiledRendering)).IsTrue()
	assert.For("sync").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.SyncObjects)).IsTrue()

	m.SetExtensionsString("")
	assert.For("no tiled extension").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.TiledRendering)).IsFalse()
	m.SetExtensionsString("GL_QCOM_tiled_rendering")
	assert.For("tiled by extension").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.TiledRendering)).IsTrue()

	m.SetVersionString("OpenGL ES 2.0")
	m.SetExtensionsString("")
	assert.For("es2 vertex arrays").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.VertexArrays)).IsFalse()
	m.SetExtensionsString("GL_OES_vertex_array_object")
	assert.For("es2 vao extension").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.VertexArrays)).IsTrue()

	m.SetRendererString("Internet Explorer")
	assert.For("blocked renderer").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.VertexArrays)).IsFalse()

	m.EnableFunctionGroup(mockgl.VertexArrays, true)
	assert.For("forced on").ThatBoolean(m.IsFunctionGroupAvailable(mockgl.VertexArrays)).IsTrue()
	assert.For("name").ThatString(mockgl.VertexArrays.String()).Equals("VertexArrays")
	assert.For("groups").ThatInteger(len(mockgl.FunctionGroups())).Equals(int(mockgl.VertexArrays) + 1)
}

func TestCapabilitiesTOML(t *testing.T) {
	assert := assert.To(t)
	caps, err := mockgl.ParseCapabilities([]byte("MaxTextureSize = 1024\nMaxViewportDims = [640, 480]\n"))
	assert.For("parse").ThatError(err).Succeeded()
	assert.For("set").ThatInteger(int(caps.MaxTextureSize)).Equals(1024)
	assert.For("dims").ThatSlice(caps.MaxViewportDims).Equals([]int32{640, 480})
	assert.For("default kept").ThatInteger(int(caps.MaxVertexAttribs)).Equals(32)

	_, err = mockgl.ParseCapabilities([]byte("NoSuchLimit = 1\n"))
	assert.For("unknown key").ThatError(err).Failed()

	data, err := caps.TOML()
	assert.For("encode").ThatError(err).Succeeded()
	back, err := mockgl.ParseCapabilities(data)
	assert.For("decode").ThatError(err).Succeeded()
	assert.For("round trip").ThatInteger(int(back.MaxTextureSize)).Equals(1024)
}

func TestCapabilitiesAreShared(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("default").ThatInteger(int(getInteger(m, gl.MAX_TEXTURE_SIZE))).Equals(8192)
	m.Caps().MaxTextureSize = 256
	assert.For("changed").ThatInteger(int(getInteger(m, gl.MAX_TEXTURE_SIZE))).Equals(256)
	assert.For("visual").ThatInteger(int(m.Visual().Caps().MaxTextureSize)).Equals(256)
}
