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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/google/ion/analytics/discrepancy"
	"github.com/google/ion/core/assert"
	"github.com/google/ion/core/log"
	"github.com/google/ion/gfx/mockgl"
	"github.com/google/ion/gfx/shaderinput"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf
	err := app.Run(append([]string{"iontool", "--no-color"}, args...))
	return buf.String(), err
}

func TestEnums(t *testing.T) {
	assert := assert.To(t)
	out, err := run(t, "enums", "GL_BLEND", "texture_2d", "0x0DE1", "2929")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("by name").ThatString(out).Contains("GL_BLEND: 0x0BE2 (3042)")
	assert.For("without prefix").ThatString(out).Contains("texture_2d: 0x0DE1 (3553)")
	assert.For("by hex").ThatString(out).Contains("0x0DE1: GL_TEXTURE_2D")
	assert.For("by decimal").ThatString(out).Contains("0x0B71: GL_DEPTH_TEST")

	out, err = run(t, "enums", "--bits", "0x4100")
	assert.For("bits err").ThatError(err).Succeeded()
	assert.For("bits").ThatString(out).Contains("clear bits GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT")

	_, err = run(t, "enums", "GL_NOT_AN_ENUM", "GL_BLEND")
	assert.For("missing").ThatError(err).HasMessage("no enum matches GL_NOT_AN_ENUM")
	_, err = run(t, "enums")
	assert.For("no args").ThatError(err).Failed()
}

func TestParseValue(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		in     string
		expect uint32
		ok     bool
	}{
		{"3042", 3042, true},
		{"0xBE2", 0xBE2, true},
		{"0XbE2", 0xBE2, true},
		{"GL_BLEND", 0, false},
		{"-1", 0, false},
		{"0x100000000", 0, false},
	} {
		e, ok := parseValue(test.in)
		assert.For("%s ok", test.in).ThatBoolean(ok).Equals(test.ok)
		if ok {
			assert.For(test.in).ThatInteger(int(e)).Equals(int(test.expect))
		}
	}
}

func TestDiscrepancy(t *testing.T) {
	assert := assert.To(t)
	out, err := run(t, "discrepancy", "5")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("single").ThatString(out).Equals("0.5 over [5, 5] (0 samples)\n")

	_, err = run(t, "discrepancy", "1", "1", "1")
	assert.For("no range").ThatError(err).HasCause(discrepancy.ErrEmptyRange)
	_, err = run(t, "discrepancy", "1", "two")
	assert.For("not a number").ThatError(err).Failed()

	even, err := measure([]float64{0, 1, 2, 3, 4}, false)
	assert.For("even err").ThatError(err).Succeeded()
	uneven, err := measure([]float64{0, 1, 2, 3, 10}, false)
	assert.For("uneven err").ThatError(err).Succeeded()
	assert.For("gap").ThatFloat(uneven.Discrepancy).IsAtLeast(even.Discrepancy + 1)

	relative, err := measure([]float64{0, 1, 2, 3, 10}, true)
	assert.For("relative err").ThatError(err).Succeeded()
	assert.For("normalized").ThatFloat(relative.Discrepancy).IsAtMost(1)
}

func TestReadTimestamps(t *testing.T) {
	assert := assert.To(t)
	got, err := readTimestamps(strings.NewReader("# frame times\n0.5\n\n  1.25\n2\n"))
	assert.For("err").ThatError(err).Succeeded()
	assert.For("timestamps").ThatSlice(got).Equals([]float64{0.5, 1.25, 2})
	_, err = readTimestamps(strings.NewReader("1\nnope\n"))
	assert.For("bad line").ThatError(err).Failed()
}

func TestCaps(t *testing.T) {
	assert := assert.To(t)
	out, err := run(t, "caps")
	assert.For("err").ThatError(err).Succeeded()
	caps, err := mockgl.ParseCapabilities([]byte(out))
	assert.For("parse").ThatError(err).Succeeded()
	assert.For("round trip").That(caps.MaxTextureSize).Equals(mockgl.DefaultCapabilities().MaxTextureSize)

	path := filepath.Join(t.TempDir(), "caps.toml")
	assert.For("write").ThatError(os.WriteFile(path, []byte("MaxTextureSize = 1024\n"), 0666)).Succeeded()
	out, err = run(t, "caps", "--caps", path, "GL_MAX_TEXTURE_SIZE", "max_viewport_dims")
	assert.For("query err").ThatError(err).Succeeded()
	assert.For("loaded").ThatString(out).Contains("GL_MAX_TEXTURE_SIZE = 1024\n")
	assert.For("pair").ThatString(out).Contains("GL_MAX_VIEWPORT_DIMS = 8192 8192\n")

	_, err = run(t, "caps", "GL_RGBA")
	assert.For("not state").ThatError(err).HasMessage("GL_RGBA cannot be queried: invalid enumerant")
	_, err = run(t, "caps", "GL_NOPE")
	assert.For("unknown").ThatError(err).Failed()
	_, err = run(t, "caps", "--caps", filepath.Join(t.TempDir(), "missing.toml"))
	assert.For("missing file").ThatError(err).Failed()
}

func writeShader(t *testing.T, dir, name, source string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReflectShaders(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	dir := t.TempDir()
	vert := writeShader(t, dir, "basic.vert", `
attribute vec3 aPosition;
attribute ivec2 aIndex;
uniform mat4 uMatrix;
uniform float uWeights[4];
varying vec2 vCoord;
void main() { gl_Position = uMatrix * vec4(aPosition, 1.); }
`)
	frag := writeShader(t, dir, "basic.frag", `
precision mediump float;
uniform sampler2D uTexture;
varying vec2 vCoord;
void main() { gl_FragColor = texture2D(uTexture, vCoord); }
`)
	broken := writeShader(t, dir, "broken.frag", "#endif\n")

	reports, err := reflectShaders(ctx, mockgl.DefaultCapabilities(), []string{vert, frag, broken}, 2)
	assert.For("err").ThatError(err).Succeeded()
	assert.For("reports").ThatSlice(reports).IsLength(3)

	r := reports[0]
	assert.For("compiled").ThatBoolean(r.compiled).IsTrue()
	assert.For("attributes").ThatSlice(r.registry.Attributes()).IsLength(1)
	assert.For("position").That(r.registry.Find("aPosition").Type).Equals(shaderinput.FloatVector3Attribute)
	assert.For("matrix").That(r.registry.Find("uMatrix").Type).Equals(shaderinput.Matrix4x4Uniform)
	assert.For("array doc").ThatString(r.registry.Find("uWeights").Doc).Equals("basic.vert, 4 elements")
	assert.For("untyped").ThatSlice(r.untyped).IsLength(1)
	assert.For("untyped name").ThatString(r.untyped[0].Name).Equals("aIndex")

	assert.For("texture").That(reports[1].registry.Find("uTexture").Type).Equals(shaderinput.TextureUniform)
	assert.For("broken").ThatBoolean(reports[2].compiled).IsFalse()
	assert.For("log").ThatString(reports[2].infoLog).Contains("#endif without matching #ifdef")

	buf := &bytes.Buffer{}
	reports[2].print(buf)
	assert.For("printed").ThatString(buf.String()).Contains("broken.frag (GL_FRAGMENT_SHADER): failed")

	_, err = reflectShaders(ctx, mockgl.DefaultCapabilities(), []string{filepath.Join(dir, "x.txt")}, 1)
	assert.For("extension").ThatError(err).Failed()

	_, err = reflectShaders(ctx, mockgl.DefaultCapabilities(), []string{filepath.Join(dir, "a.txt"), vert, filepath.Join(dir, "b.txt")}, 2)
	assert.For("first error").ThatError(err).Failed()
	assert.For("first error").ThatString(err.Error()).Contains("a.txt")
	assert.For("second error").ThatString(err.Error()).Contains("b.txt")
}

func TestLogFile(t *testing.T) {
	assert := assert.To(t)
	dir := t.TempDir()
	broken := writeShader(t, dir, "broken.frag", "#endif\n")
	path := filepath.Join(dir, "iontool.log")
	run(t, "--log-file", path, "shaders", broken)
	data, err := os.ReadFile(path)
	assert.For("read").ThatError(err).Succeeded()
	assert.For("log").ThatString(string(data)).Contains("Compilation failed")
}
