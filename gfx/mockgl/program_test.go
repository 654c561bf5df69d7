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
	"fmt"
	"strings"
	"testing"

	"github.com/google/ion/core/assert"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

const vertexSource = `
attribute vec3 aPosition;
attribute mat4 aMatrix;
attribute vec2 aTexCoord;
uniform mat4 uModelView;
uniform float uWeights[3];
uniform sampler2D uSampler;
uniform ivec2 uCount;
uniform bool uFlag;
varying vec2 vTexCoord;
void main() {
  vTexCoord = aTexCoord;
  gl_Position = uModelView * aMatrix * vec4(aPosition, 1.);
}
`

const fragmentSource = `
precision mediump float;
uniform vec4 uColor;
uniform sampler2D uSampler;
varying vec2 vTexCoord;
void main() {
  gl_FragColor = uColor * texture2D(uSampler, vTexCoord);
}
`

func compileShader(m *mockgl.Manager, stage gl.Enum, source string) uint32 {
	s := m.CreateShader(stage)
	m.ShaderSource(s, 1, []string{source})
	m.CompileShader(s)
	return s
}

// buildProgram links a program from the vertex and fragment sources,
// calling bind before linking.
func buildProgram(m *mockgl.Manager, vertex, fragment string, bind func(prog uint32)) uint32 {
	prog := m.CreateProgram()
	m.AttachShader(prog, compileShader(m, gl.VERTEX_SHADER, vertex))
	m.AttachShader(prog, compileShader(m, gl.FRAGMENT_SHADER, fragment))
	if bind != nil {
		bind(prog)
	}
	m.LinkProgram(prog)
	return prog
}

func TestShaders(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	assert.For("bad stage").ThatInteger(int(m.CreateShader(gl.BLEND))).Equals(0)
	expectError(assert, m, "bad stage", gl.INVALID_ENUM)

	s := m.CreateShader(gl.VERTEX_SHADER)
	assert.For("is shader").ThatBoolean(m.IsShader(s)).IsTrue()
	assert.For("unknown").ThatBoolean(m.IsShader(s + 1)).IsFalse()
	assert.For("type").ThatEnum(gl.Enum(m.GetShaderiv(s, gl.SHADER_TYPE))).Equals(gl.VERTEX_SHADER)
	assert.For("no source").ThatInteger(int(m.GetShaderiv(s, gl.SHADER_SOURCE_LENGTH))).Equals(0)

	m.ShaderSource(s, 2, []string{"uniform ", "float f;", "ignored"})
	assert.For("source").ThatString(m.GetShaderSource(s, 100)).Equals("uniform float f;")
	assert.For("truncated").ThatString(m.GetShaderSource(s, 5)).Equals("unif")
	assert.For("length").ThatInteger(int(m.GetShaderiv(s, gl.SHADER_SOURCE_LENGTH))).Equals(17)
	m.ShaderSource(s, -1, nil)
	expectError(assert, m, "negative count", gl.INVALID_VALUE)

	m.CompileShader(s)
	assert.For("compiled").ThatInteger(int(m.GetShaderiv(s, gl.COMPILE_STATUS))).Equals(1)
	assert.For("empty log").ThatInteger(int(m.GetShaderiv(s, gl.INFO_LOG_LENGTH))).Equals(0)

	m.ShaderSource(s, 1, []string{"#else\nuniform float f;"})
	m.CompileShader(s)
	expectError(assert, m, "compile failure", gl.NO_ERROR)
	assert.For("failed").ThatInteger(int(m.GetShaderiv(s, gl.COMPILE_STATUS))).Equals(0)
	assert.For("log").ThatString(m.GetShaderInfoLog(s, 256)).HasPrefix("ERROR: ")
	assert.For("log length").ThatInteger(int(m.GetShaderiv(s, gl.INFO_LOG_LENGTH))).IsAtLeast(8)

	m.GetShaderiv(s, gl.BLEND)
	expectError(assert, m, "pname", gl.INVALID_ENUM)
	m.CompileShader(99)
	expectError(assert, m, "unknown", gl.INVALID_VALUE)
	m.GetShaderInfoLog(s, -1)
	expectError(assert, m, "negative size", gl.INVALID_VALUE)

	m.DeleteShader(s)
	assert.For("flagged").ThatInteger(int(m.GetShaderiv(s, gl.DELETE_STATUS))).Equals(1)
	assert.For("still a shader").ThatBoolean(m.IsShader(s)).IsTrue()
	m.ShaderSource(s, 1, []string{""})
	expectError(assert, m, "deleted", gl.INVALID_OPERATION)
}

func TestShaderCompilerQueries(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	min, max, bits := m.GetShaderPrecisionFormat(gl.FRAGMENT_SHADER, gl.HIGH_FLOAT)
	assert.For("min").ThatInteger(int(min)).Equals(127)
	assert.For("max").ThatInteger(int(max)).Equals(127)
	assert.For("bits").ThatInteger(int(bits)).Equals(23)
	m.GetShaderPrecisionFormat(gl.FRAGMENT_SHADER, gl.FLOAT)
	expectError(assert, m, "precision", gl.INVALID_ENUM)
	m.ReleaseShaderCompiler()
	expectError(assert, m, "release", gl.INVALID_OPERATION)
	m.ShaderBinary([]uint32{1}, gl.NONE, nil)
	expectError(assert, m, "binary", gl.INVALID_OPERATION)
}

func TestProgramAttachment(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	prog := m.CreateProgram()
	vs := m.CreateShader(gl.VERTEX_SHADER)
	fs := m.CreateShader(gl.FRAGMENT_SHADER)
	assert.For("is program").ThatBoolean(m.IsProgram(prog)).IsTrue()

	m.AttachShader(prog, vs)
	m.AttachShader(prog, fs)
	expectError(assert, m, "attach", gl.NO_ERROR)
	m.AttachShader(prog, vs)
	expectError(assert, m, "attach twice", gl.INVALID_OPERATION)
	vs2 := m.CreateShader(gl.VERTEX_SHADER)
	m.AttachShader(prog, vs2)
	expectError(assert, m, "second vertex shader", gl.INVALID_OPERATION)
	m.AttachShader(prog+10, vs)
	expectError(assert, m, "bad program", gl.INVALID_VALUE)
	m.AttachShader(prog, fs+10)
	expectError(assert, m, "bad shader", gl.INVALID_VALUE)

	assert.For("count").ThatInteger(int(m.GetProgramiv(prog, gl.ATTACHED_SHADERS))).Equals(2)
	assert.For("attached").ThatSlice(m.GetAttachedShaders(prog, 1)).Equals([]uint32{vs})
	m.DetachShader(prog, vs)
	assert.For("detached").ThatSlice(m.GetAttachedShaders(prog, 4)).Equals([]uint32{fs})
	m.DetachShader(prog, vs)
	expectError(assert, m, "detach twice", gl.INVALID_OPERATION)
	m.GetAttachedShaders(prog, -1)
	expectError(assert, m, "negative count", gl.INVALID_VALUE)
}

func TestLinkFailures(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	prog := m.CreateProgram()
	m.AttachShader(prog, m.CreateShader(gl.VERTEX_SHADER))
	m.LinkProgram(prog)
	expectError(assert, m, "not compiled", gl.NO_ERROR)
	assert.For("status").ThatInteger(int(m.GetProgramiv(prog, gl.LINK_STATUS))).Equals(0)
	assert.For("log").ThatString(m.GetProgramInfoLog(prog, 256)).Contains("not compiled")
	m.UseProgram(prog)
	expectError(assert, m, "use unlinked", gl.INVALID_OPERATION)
	assert.For("location").ThatInteger(int(m.GetUniformLocation(prog, "u"))).Equals(-1)
	expectError(assert, m, "unlinked location", gl.INVALID_OPERATION)

	attribs := &strings.Builder{}
	for i := 0; i < 9; i++ {
		fmt.Fprintf(attribs, "attribute mat4 m%d;\n", i)
	}
	prog = buildProgram(m, attribs.String(), fragmentSource, nil)
	assert.For("too many attributes").ThatInteger(int(m.GetProgramiv(prog, gl.LINK_STATUS))).Equals(0)

	m.ValidateProgram(prog)
	assert.For("not valid").ThatInteger(int(m.GetProgramiv(prog, gl.VALIDATE_STATUS))).Equals(0)
	m.GetProgramiv(prog, gl.BLEND)
	expectError(assert, m, "pname", gl.INVALID_ENUM)
}

func TestAttributes(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	prog := buildProgram(m, vertexSource, fragmentSource, nil)
	assert.For("linked").ThatInteger(int(m.GetProgramiv(prog, gl.LINK_STATUS))).Equals(1)
	assert.For("count").ThatInteger(int(m.GetProgramiv(prog, gl.ACTIVE_ATTRIBUTES))).Equals(3)
	assert.For("max length").ThatInteger(int(m.GetProgramiv(prog, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH))).Equals(10)
	assert.For("position").ThatInteger(int(m.GetAttribLocation(prog, "aPosition"))).Equals(0)
	assert.For("matrix").ThatInteger(int(m.GetAttribLocation(prog, "aMatrix"))).Equals(1)
	assert.For("texcoord").ThatInteger(int(m.GetAttribLocation(prog, "aTexCoord"))).Equals(5)
	assert.For("missing").ThatInteger(int(m.GetAttribLocation(prog, "aNormal"))).Equals(-1)

	name, size, typ := m.GetActiveAttrib(prog, 1, 64)
	assert.For("name").ThatString(name).Equals("aMatrix")
	assert.For("size").ThatInteger(int(size)).Equals(1)
	assert.For("type").ThatEnum(typ).Equals(gl.FLOAT_MAT4)
	name, _, _ = m.GetActiveAttrib(prog, 1, 3)
	assert.For("truncated").ThatString(name).Equals("aM")
	m.GetActiveAttrib(prog, 3, 64)
	expectError(assert, m, "index", gl.INVALID_VALUE)

	prog = buildProgram(m, vertexSource, fragmentSource, func(prog uint32) {
		m.BindAttribLocation(prog, 2, "aTexCoord")
	})
	assert.For("bound").ThatInteger(int(m.GetAttribLocation(prog, "aTexCoord"))).Equals(2)
	assert.For("position").ThatInteger(int(m.GetAttribLocation(prog, "aPosition"))).Equals(0)
	assert.For("matrix after binding").ThatInteger(int(m.GetAttribLocation(prog, "aMatrix"))).Equals(3)

	max := uint32(getInteger(m, gl.MAX_VERTEX_ATTRIBS))
	m.BindAttribLocation(prog, max, "aPosition")
	expectError(assert, m, "index too large", gl.INVALID_VALUE)
	m.BindAttribLocation(prog, 0, "gl_Vertex")
	expectError(assert, m, "reserved", gl.INVALID_OPERATION)
}

func TestUniformLocations(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	prog := buildProgram(m, vertexSource, fragmentSource, nil)
	assert.For("count").ThatInteger(int(m.GetProgramiv(prog, gl.ACTIVE_UNIFORMS))).Equals(6)
	assert.For("max length").ThatInteger(int(m.GetProgramiv(prog, gl.ACTIVE_UNIFORM_MAX_LENGTH))).Equals(11)

	for _, test := range []struct {
		name   string
		expect int
	}{
		{"uModelView", 0},
		{"uWeights", 1},
		{"uWeights[0]", 1},
		{"uWeights[2]", 3},
		{"uWeights[3]", -1},
		{"uWeights[", -1},
		{"uSampler", 4},
		{"uCount", 5},
		{"uFlag", 6},
		{"uColor", 7},
		{"uMissing", -1},
	} {
		assert.For(test.name).ThatInteger(int(m.GetUniformLocation(prog, test.name))).Equals(test.expect)
	}

	name, size, typ := m.GetActiveUniform(prog, 1, 64)
	assert.For("name").ThatString(name).Equals("uWeights")
	assert.For("size").ThatInteger(int(size)).Equals(3)
	assert.For("type").ThatEnum(typ).Equals(gl.FLOAT)
	name, _, typ = m.GetActiveUniform(prog, 5, 64)
	assert.For("fragment uniform").ThatString(name).Equals("uColor")
	assert.For("fragment type").ThatEnum(typ).Equals(gl.FLOAT_VEC4)
	m.GetActiveUniform(prog, 6, 64)
	expectError(assert, m, "index", gl.INVALID_VALUE)
}

func TestUniformValues(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	prog := buildProgram(m, vertexSource, fragmentSource, nil)
	loc := func(name string) int32 { return m.GetUniformLocation(prog, name) }

	m.Uniform4f(loc("uColor"), 1, 2, 3, 4)
	expectError(assert, m, "no program", gl.INVALID_OPERATION)
	m.UseProgram(prog)
	assert.For("current").ThatInteger(int(getInteger(m, gl.CURRENT_PROGRAM))).Equals(int(prog))

	floats := make([]float32, 16)
	m.Uniform4f(loc("uColor"), 1, 2, 3, 4)
	m.GetUniformfv(prog, loc("uColor"), floats)
	assert.For("color").ThatSlice(floats[:4]).Equals([]float32{1, 2, 3, 4})

	ints := make([]int32, 2)
	m.Uniform2i(loc("uCount"), 3, -4)
	m.GetUniformiv(prog, loc("uCount"), ints)
	assert.For("count").ThatSlice(ints).Equals([]int32{3, -4})

	m.Uniform1i(loc("uSampler"), 2)
	m.GetUniformiv(prog, loc("uSampler"), ints)
	assert.For("sampler").ThatInteger(int(ints[0])).Equals(2)

	m.Uniform1i(loc("uFlag"), 1)
	m.Uniform1f(loc("uFlag"), 0)
	expectError(assert, m, "bools accept ints and floats", gl.NO_ERROR)

	m.Uniform1fv(loc("uWeights"), 3, []float32{0.25, 0.5, 0.75})
	m.GetUniformfv(prog, loc("uWeights[2]"), floats)
	assert.For("last weight").ThatFloat(float64(floats[0])).Equals(0.75, 0)
	m.Uniform1fv(loc("uWeights[1]"), 5, []float32{1, 2, 3, 4, 5})
	expectError(assert, m, "past the end", gl.NO_ERROR)
	m.GetUniformfv(prog, loc("uWeights[2]"), floats)
	assert.For("clipped").ThatFloat(float64(floats[0])).Equals(2, 0)
	m.GetUniformfv(prog, loc("uWeights"), floats)
	assert.For("untouched").ThatFloat(float64(floats[0])).Equals(0.25, 0)

	identity := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	m.UniformMatrix4fv(loc("uModelView"), 1, false, identity)
	m.GetUniformfv(prog, loc("uModelView"), floats)
	assert.For("matrix").ThatSlice(floats).Equals(identity)
	m.UniformMatrix4fv(loc("uModelView"), 1, true, identity)
	expectError(assert, m, "transpose", gl.INVALID_VALUE)

	for _, test := range []struct {
		name   string
		call   func()
		expect gl.Enum
	}{
		{"ignored location", func() { m.Uniform1f(-1, 1) }, gl.NO_ERROR},
		{"bad location", func() { m.Uniform1f(100, 1) }, gl.INVALID_OPERATION},
		{"wrong width", func() { m.Uniform1f(loc("uColor"), 1) }, gl.INVALID_OPERATION},
		{"wrong kind", func() { m.Uniform4i(loc("uColor"), 1, 2, 3, 4) }, gl.INVALID_OPERATION},
		{"float sampler", func() { m.Uniform1f(loc("uSampler"), 1) }, gl.INVALID_OPERATION},
		{"unsigned", func() { m.Uniform2ui(loc("uCount"), 1, 2) }, gl.INVALID_OPERATION},
		{"not an array", func() { m.Uniform4fv(loc("uColor"), 2, make([]float32, 8)) }, gl.INVALID_OPERATION},
		{"negative count", func() { m.Uniform1fv(loc("uWeights"), -1, nil) }, gl.INVALID_VALUE},
		{"matrix width", func() { m.UniformMatrix3fv(loc("uModelView"), 1, false, make([]float32, 9)) }, gl.INVALID_OPERATION},
		{"get bad location", func() { m.GetUniformfv(prog, 100, floats) }, gl.INVALID_OPERATION},
	} {
		test.call()
		expectError(assert, m, test.name, test.expect)
	}

	m.DeleteProgram(prog)
	assert.For("no longer current").ThatInteger(int(getInteger(m, gl.CURRENT_PROGRAM))).Equals(0)
	assert.For("flagged").ThatInteger(int(m.GetProgramiv(prog, gl.DELETE_STATUS))).Equals(1)
	m.UseProgram(prog)
	expectError(assert, m, "use deleted", gl.INVALID_OPERATION)
}
