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

package glenum_test

import (
	"testing"

	"github.com/google/ion/core/assert"
	"github.com/google/ion/gfx/glenum"
)

func TestEnumValues(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		e     glenum.Enum
		value uint32
	}{
		{glenum.INVALID_ENUM, 0x0500},
		{glenum.RGBA4, 0x8056},
		{glenum.COMPRESSED_RGB_S3TC_DXT1_EXT, 0x83F0},
		{glenum.TEXTURE_2D, 0x0DE1},
		{glenum.DEBUG_SEVERITY_LOW, 0x9148},
		{glenum.TIME_ELAPSED_EXT, 0x88BF},
	} {
		assert.For("%v", test.e).ThatInteger(int(test.e)).Equals(int(test.value))
	}
}

func TestString(t *testing.T) {
	assert := assert.To(t)
	assert.For("named").ThatString(glenum.TEXTURE_CUBE_MAP).Equals("GL_TEXTURE_CUBE_MAP")
	assert.For("zero").ThatString(glenum.Enum(0)).Equals("GL_NONE")
	assert.For("alias").ThatString(glenum.DRAW_FRAMEBUFFER_BINDING).Equals("GL_FRAMEBUFFER_BINDING")
	assert.For("unknown").ThatString(glenum.Enum(0x1234567)).Equals("0x1234567")
	assert.For("known").ThatBoolean(glenum.Enum(0x1234567).Known()).IsFalse()
}

func TestLookup(t *testing.T) {
	assert := assert.To(t)
	e, ok := glenum.Lookup("GL_RGB565")
	assert.For("prefixed ok").ThatBoolean(ok).IsTrue()
	assert.For("prefixed").ThatEnum(e).Equals(glenum.RGB565)
	e, ok = glenum.Lookup("STENCIL_INDEX8")
	assert.For("bare ok").ThatBoolean(ok).IsTrue()
	assert.For("bare").ThatEnum(e).Equals(glenum.STENCIL_INDEX8)
	_, ok = glenum.Lookup("GL_NOT_AN_ENUM")
	assert.For("missing").ThatBoolean(ok).IsFalse()
	names := glenum.ByValue(glenum.FRAMEBUFFER_BINDING)
	assert.For("aliases").ThatSlice(names).Equals([]string{"GL_FRAMEBUFFER_BINDING", "GL_DRAW_FRAMEBUFFER_BINDING"})
	assert.For("names").ThatSlice(glenum.Names()).IsNotEmpty()
}

func TestSet(t *testing.T) {
	assert := assert.To(t)
	s := glenum.NewSet(glenum.FRONT, glenum.BACK)
	assert.For("contains").ThatBoolean(s.Contains(glenum.BACK)).IsTrue()
	assert.For("missing").ThatBoolean(s.Contains(glenum.FRONT_AND_BACK)).IsFalse()
	u := s.With(glenum.FRONT_AND_BACK)
	assert.For("union").ThatInteger(u.Len()).Equals(3)
	assert.For("unchanged").ThatInteger(s.Len()).Equals(2)
	var empty glenum.Set
	assert.For("zero set").ThatBoolean(empty.Contains(glenum.NONE)).IsFalse()
	assert.For("zero union").ThatInteger(empty.Union(s).Len()).Equals(2)
}

func TestBitfield(t *testing.T) {
	assert := assert.To(t)
	both := uint32(glenum.COLOR_BUFFER_BIT | glenum.DEPTH_BUFFER_BIT)
	assert.For("clear").ThatString(glenum.ClearBits.Format(both)).Equals("GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT")
	assert.For("unknown clear bit").ThatString(glenum.ClearBits.Format(uint32(glenum.DEPTH_BUFFER_BIT) | 1)).Equals("0x101")
	assert.For("map").ThatString(glenum.MapBits.Format(uint32(glenum.MAP_READ_BIT | 0x100))).Equals("0x101")
	assert.For("map read").ThatString(glenum.MapBits.Format(uint32(glenum.MAP_READ_BIT))).Equals("GL_MAP_READ_BIT")
	assert.For("valid").ThatBoolean(glenum.MapBits.Valid(0x3f)).IsTrue()
	assert.For("invalid").ThatBoolean(glenum.MapBits.Valid(0x40)).IsFalse()
}

func TestErrorString(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		e    glenum.Enum
		want string
	}{
		{glenum.INVALID_ENUM, "invalid enumerant"},
		{glenum.INVALID_VALUE, "invalid value"},
		{glenum.INVALID_OPERATION, "invalid operation"},
		{glenum.OUT_OF_MEMORY, "out of memory"},
		{glenum.INVALID_FRAMEBUFFER_OPERATION, "invalid framebuffer operation"},
		{glenum.Enum(0x1234), "unknown error"},
	} {
		assert.For("%v", test.e).ThatString(glenum.ErrorString(test.e)).Equals(test.want)
	}
}

func TestFormatBits(t *testing.T) {
	assert := assert.To(t)
	b, ok := glenum.FormatBits(glenum.RGB565)
	assert.For("rgb565 ok").ThatBoolean(ok).IsTrue()
	assert.For("rgb565").That(b).Equals(glenum.ComponentBits{Red: 5, Green: 6, Blue: 5})
	d, _ := glenum.FormatBits(glenum.DEPTH24_STENCIL8)
	assert.For("d24s8").That(d).Equals(glenum.ComponentBits{Depth: 24, Stencil: 8})
	rgba8, _ := glenum.FormatBits(glenum.RGBA8)
	rgba4, _ := glenum.FormatBits(glenum.RGBA4)
	assert.For("rgba8 covers rgb565").ThatBoolean(rgba8.Covers(b)).IsTrue()
	assert.For("rgb565 covers rgba8").ThatBoolean(b.Covers(rgba8)).IsFalse()
	assert.For("rgba4 covers rgb565").ThatBoolean(rgba4.Covers(b)).IsFalse()
	assert.For("rgba8 covers rgba4").ThatBoolean(rgba8.Covers(rgba4)).IsTrue()
	assert.For("color").That(d.Color()).Equals(glenum.ComponentBits{})
	_, ok = glenum.FormatBits(glenum.RGBA)
	assert.For("unsized").ThatBoolean(ok).IsFalse()
}
