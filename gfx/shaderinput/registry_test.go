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

package shaderinput_test

import (
	"testing"

	"github.com/google/ion/core/assert"
	"github.com/google/ion/core/log"
	"github.com/google/ion/gfx/shaderinput"
)

func TestRegistryIDsAreUnique(t *testing.T) {
	assert := assert.To(t)
	a := shaderinput.NewRegistry()
	b := shaderinput.NewRegistry()
	c := shaderinput.NewRegistry()
	assert.For("b after a").ThatBoolean(b.ID() > a.ID()).IsTrue()
	assert.For("c after b").ThatBoolean(c.ID() > b.ID()).IsTrue()
	assert.For("global").ThatBoolean(shaderinput.Global().ID() != a.ID()).IsTrue()
}

func TestParseName(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name  string
		base  string
		index int
		ok    bool
	}{
		{"uColor", "uColor", 0, true},
		{"uArray[3]", "uArray", 3, true},
		{"uArray[0]", "uArray", 0, true},
		{"", "", 0, false},
		{"a]2[", "", 0, false},
		{"a[2", "", 0, false},
		{"a2]", "", 0, false},
		{"[2]", "", 0, false},
		{"a[]", "", 0, false},
		{"a[x]", "", 0, false},
		{"a[-1]", "", 0, false},
		{"a[1][2]", "", 0, false},
	} {
		base, index, ok := shaderinput.ParseName(test.name)
		assert.For("%q ok", test.name).ThatBoolean(ok).Equals(test.ok)
		assert.For("%q base", test.name).ThatString(base).Equals(test.base)
		assert.For("%q index", test.name).ThatInteger(index).Equals(test.index)
	}
}

func TestAdd(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(log.Testing(t))
	reg := shaderinput.NewRegistry()

	assert.For("add int").ThatBoolean(reg.Add(ctx, shaderinput.UniformSpec("myInt", shaderinput.IntUniform, "an int", nil))).IsTrue()
	assert.For("add float").ThatBoolean(reg.Add(ctx, shaderinput.UniformSpec("myFloat", shaderinput.FloatUniform, "a float", nil))).IsTrue()
	assert.For("add attrib").ThatBoolean(reg.Add(ctx, shaderinput.AttributeSpec("myVec", shaderinput.FloatVector3Attribute, "a vec"))).IsTrue()
	assert.For("add array").ThatBoolean(reg.Add(ctx, shaderinput.UniformSpec("myArray[4]", shaderinput.FloatUniform, "", nil))).IsTrue()
	assert.For("no messages").ThatBoolean(checker.HasAnyMessages()).IsFalse()

	uniforms := reg.Uniforms()
	assert.For("uniforms").ThatInteger(len(uniforms)).Equals(3)
	assert.For("attributes").ThatInteger(len(reg.Attributes())).Equals(1)
	assert.For("float index").ThatInteger(uniforms[1].Index).Equals(1)
	assert.For("attrib index").ThatInteger(reg.Attributes()[0].Index).Equals(0)
	assert.For("registry id").ThatBoolean(uniforms[0].RegistryID == reg.ID()).IsTrue()
	assert.For("registry").That(uniforms[0].Registry).Equals(reg)

	assert.For("duplicate").ThatBoolean(reg.Add(ctx, shaderinput.UniformSpec("myInt", shaderinput.IntUniform, "", nil))).IsFalse()
	assert.For("duplicate warning").ThatBoolean(checker.HasMessage(log.Warning, "already present in registry")).IsTrue()
	checker.Clear()

	// Same name with a different kind is still a duplicate.
	assert.For("duplicate kind").ThatBoolean(reg.Add(ctx, shaderinput.AttributeSpec("myFloat", shaderinput.FloatAttribute, ""))).IsFalse()
	assert.For("duplicate kind warning").ThatBoolean(checker.HasMessage(log.Warning, "already present in registry")).IsTrue()
	checker.Clear()

	for _, bad := range []string{"a]2[", "a[2"} {
		assert.For("invalid %q", bad).ThatBoolean(reg.Add(ctx, shaderinput.UniformSpec(bad, shaderinput.IntUniform, "", nil))).IsFalse()
		assert.For("invalid %q warning", bad).ThatBoolean(checker.HasMessage(log.Warning, "invalid input name")).IsTrue()
		checker.Clear()
	}
	assert.For("unchanged").ThatInteger(len(reg.Uniforms())).Equals(3)
	assert.For("largest").ThatBoolean(shaderinput.LargestRegistrySize() >= 3).IsTrue()
}

func TestAddDoesNotCheckIncludes(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(log.Testing(t))
	inner := shaderinput.NewRegistry()
	outer := shaderinput.NewRegistry()
	inner.Add(ctx, shaderinput.UniformSpec("uShared", shaderinput.FloatUniform, "", nil))
	assert.For("include").ThatBoolean(outer.Include(ctx, inner)).IsTrue()
	assert.For("add shadowing").ThatBoolean(outer.Add(ctx, shaderinput.UniformSpec("uShared", shaderinput.FloatUniform, "", nil))).IsTrue()
	assert.For("no messages").ThatBoolean(checker.HasAnyMessages()).IsFalse()
	assert.For("unique").ThatBoolean(outer.CheckInputsAreUnique(ctx)).IsFalse()
	assert.For("warning").ThatBoolean(checker.HasMessage(log.Warning, "defines duplicate input 'uShared'")).IsTrue()
}

func TestGlobalRegistry(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(log.Testing(t))
	global := shaderinput.Global()
	assert.For("same instance").That(shaderinput.Global()).Equals(global)

	attributes := []string{"aVertex", "aColor", "aNormal", "aTexCoords"}
	for i, name := range attributes {
		s := global.FindKind(name, shaderinput.Attribute)
		if assert.For(name).That(s).IsNotNil() {
			assert.For("%s index", name).ThatInteger(s.Index).Equals(i)
			assert.For("%s type", name).That(s.Type).Equals(shaderinput.BufferObjectElementAttribute)
		}
	}
	uniforms := []string{"uViewportSize", "uProjectionMatrix", "uModelviewMatrix", "uBaseColor"}
	for i, name := range uniforms {
		s := global.FindKind(name, shaderinput.Uniform)
		if assert.For(name).That(s).IsNotNil() {
			assert.For("%s index", name).ThatInteger(s.Index).Equals(i)
		}
	}
	assert.For("combiner").ThatBoolean(global.Find("uModelviewMatrix").Combine != nil).IsTrue()
	assert.For("no combiner").ThatBoolean(global.Find("uProjectionMatrix").Combine == nil).IsTrue()

	reg1 := shaderinput.NewRegistry()
	reg2 := shaderinput.NewRegistry()
	assert.For("reg1 global").ThatBoolean(reg1.IncludeGlobal(ctx)).IsTrue()
	assert.For("reg2 global").ThatBoolean(reg2.IncludeGlobal(ctx)).IsTrue()
	assert.For("no messages").ThatBoolean(checker.HasAnyMessages()).IsFalse()
	assert.For("reg1 includes reg2").ThatBoolean(reg1.Include(ctx, reg2)).IsFalse()
	assert.For("error").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input")).IsTrue()

	fresh := shaderinput.NewContext()
	assert.For("fresh global").That(fresh.Global()).NotEquals(global)
	assert.For("fresh stable").That(fresh.Global()).Equals(fresh.Global())
}

func TestCombineMatrices(t *testing.T) {
	assert := assert.To(t)
	translate := shaderinput.Identity4
	translate[0][3] = 2
	scale := shaderinput.Identity4
	scale[0][0] = 3
	combine := shaderinput.Global().Find("uModelviewMatrix").Combine
	got := combine(translate, scale).(shaderinput.Matrix4)
	assert.For("scaled").ThatFloat(float64(got[0][0])).Equals(3, 0)
	assert.For("translated").ThatFloat(float64(got[0][3])).Equals(2, 0)
	assert.For("identity").That(shaderinput.Identity4.Mul(scale)).Equals(scale)
}

func TestInclude(t *testing.T) {
	assert := assert.To(t)
	ctx, checker := log.Check(log.Testing(t))
	reg1 := shaderinput.NewRegistry()
	reg2 := shaderinput.NewRegistry()
	reg3 := shaderinput.NewRegistry()
	reg4 := shaderinput.NewRegistry()

	add := func(r *shaderinput.Registry, s shaderinput.Spec) {
		assert.For("add %s", s.Name).ThatBoolean(r.Add(ctx, s)).IsTrue()
	}
	add(reg1, shaderinput.UniformSpec("myInt", shaderinput.IntUniform, "doc0", nil))
	add(reg2, shaderinput.UniformSpec("myFloat", shaderinput.FloatUniform, "doc1", nil))
	add(reg3, shaderinput.UniformSpec("myVec2f", shaderinput.FloatVector2Uniform, "doc2", nil))
	add(reg1, shaderinput.AttributeSpec("myVec4f", shaderinput.FloatVector4Attribute, "doc3"))
	add(reg2, shaderinput.AttributeSpec("myBufferElement", shaderinput.BufferObjectElementAttribute, "doc4"))
	add(reg3, shaderinput.AttributeSpec("myFloatAttrib", shaderinput.FloatAttribute, "doc5"))
	// Conflicts with reg2, even though the kinds differ.
	add(reg4, shaderinput.AttributeSpec("myFloat", shaderinput.FloatAttribute, "doc1"))
	add(reg4, shaderinput.AttributeSpec("myVec3f", shaderinput.FloatVector3Attribute, "doc6"))
	// Conflicts with reg3.
	add(reg4, shaderinput.UniformSpec("myVec2f", shaderinput.FloatVector2Uniform, "doc7", nil))
	assert.For("no messages").ThatBoolean(checker.HasAnyMessages()).IsFalse()

	for _, r := range []*shaderinput.Registry{reg1, reg2, reg3, reg4} {
		assert.For("self %d", r.ID()).ThatBoolean(r.Include(ctx, r)).IsFalse()
		assert.For("self error %d", r.ID()).ThatBoolean(checker.HasMessage(log.Error, "cannot include itself")).IsTrue()
		checker.Clear()
	}

	assert.For("reg2 <- reg4").ThatBoolean(reg2.Include(ctx, reg4)).IsFalse()
	assert.For("myFloat").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input 'myFloat'")).IsTrue()
	assert.For("reg4 <- reg2").ThatBoolean(reg4.Include(ctx, reg2)).IsFalse()
	assert.For("myFloat").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input 'myFloat'")).IsTrue()
	checker.Clear()
	assert.For("reg3 <- reg4").ThatBoolean(reg3.Include(ctx, reg4)).IsFalse()
	assert.For("myVec2f").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input 'myVec2f'")).IsTrue()
	assert.For("reg4 <- reg3").ThatBoolean(reg4.Include(ctx, reg3)).IsFalse()
	assert.For("myVec2f").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input 'myVec2f'")).IsTrue()
	checker.Clear()

	assert.For("reg2 <- reg3").ThatBoolean(reg2.Include(ctx, reg3)).IsTrue()
	assert.For("reg1 <- reg2").ThatBoolean(reg1.Include(ctx, reg2)).IsTrue()
	assert.For("no messages").ThatBoolean(checker.HasAnyMessages()).IsFalse()

	assert.For("reg1 <- reg4").ThatBoolean(reg1.Include(ctx, reg4)).IsFalse()
	assert.For("reg1 <- reg3").ThatBoolean(reg1.Include(ctx, reg3)).IsFalse()
	assert.For("reg1 <- reg2 again").ThatBoolean(reg1.Include(ctx, reg2)).IsFalse()
	assert.For("errors").ThatBoolean(checker.HasMessage(log.Error, "both define the shader input")).IsTrue()
	checker.Clear()

	// Cycles are refused even when no names collide.
	empty1 := shaderinput.NewRegistry()
	empty2 := shaderinput.NewRegistry()
	assert.For("empty include").ThatBoolean(empty1.Include(ctx, empty2)).IsTrue()
	assert.For("cycle").ThatBoolean(empty2.Include(ctx, empty1)).IsFalse()
	assert.For("cycle error").ThatBoolean(checker.HasMessage(log.Error, "already includes")).IsTrue()
	checker.Clear()

	assert.For("reg1 includes").ThatSlice(reg1.Includes()).Equals([]*shaderinput.Registry{reg2})
	assert.For("reg2 includes").ThatSlice(reg2.Includes()).Equals([]*shaderinput.Registry{reg3})

	for _, test := range []struct {
		name  string
		kind  shaderinput.Kind
		owner *shaderinput.Registry
	}{
		{"myInt", shaderinput.Uniform, reg1},
		{"myFloat", shaderinput.Uniform, reg2},
		{"myVec2f", shaderinput.Uniform, reg3},
		{"myVec4f", shaderinput.Attribute, reg1},
		{"myBufferElement", shaderinput.Attribute, reg2},
		{"myFloatAttrib", shaderinput.Attribute, reg3},
	} {
		s := reg1.FindKind(test.name, test.kind)
		if assert.For("find %s", test.name).That(s).IsNotNil() {
			assert.For("%s registry", test.name).That(s.Registry).Equals(test.owner)
			assert.For("%s registry id", test.name).ThatBoolean(s.RegistryID == test.owner.ID()).IsTrue()
		}
		assert.For("contains %s", test.name).ThatBoolean(reg1.Contains(test.name)).IsTrue()
	}
	assert.For("myVec3f").That(reg1.FindKind("myVec3f", shaderinput.Uniform)).IsNil()
	assert.For("myFloat attribute").That(reg1.FindKind("myFloat", shaderinput.Attribute)).IsNil()
	assert.For("contains myVec3f").ThatBoolean(reg1.Contains("myVec3f")).IsFalse()

	assert.For("nil reg1").ThatBoolean(reg1.Include(ctx, nil)).IsFalse()
	assert.For("nil reg4").ThatBoolean(reg4.Include(ctx, nil)).IsFalse()
	checker.Clear()

	for _, r := range []*shaderinput.Registry{reg1, reg2, reg3, reg4} {
		assert.For("unique %d", r.ID()).ThatBoolean(r.CheckInputsAreUnique(ctx)).IsTrue()
	}
	assert.For("no warnings").ThatBoolean(checker.HasAnyMessages()).IsFalse()

	// Create an artificial duplicate.
	add(reg3, shaderinput.UniformSpec("myInt", shaderinput.IntUniform, "doc0", nil))
	assert.For("reg1 unique").ThatBoolean(reg1.CheckInputsAreUnique(ctx)).IsFalse()
	assert.For("duplicate").ThatBoolean(checker.HasMessage(log.Warning, "duplicate input")).IsTrue()
	assert.For("reg2 unique").ThatBoolean(reg2.CheckInputsAreUnique(ctx)).IsTrue()
	assert.For("reg3 unique").ThatBoolean(reg3.CheckInputsAreUnique(ctx)).IsTrue()
	assert.For("reg4 unique").ThatBoolean(reg4.CheckInputsAreUnique(ctx)).IsTrue()
}
