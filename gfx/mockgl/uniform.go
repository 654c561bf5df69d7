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
	"github.com/google/ion/gfx/shaderinput"
)

type uniformKind int

const (
	floatUniform uniformKind = iota
	intUniform
	uintUniform
	boolUniform
	matrixUniform
	samplerUniform
)

// uniformType describes how a uniform type is set. width is the number of
// vector components, or the number of columns of a square matrix.
type uniformType struct {
	kind  uniformKind
	width int
}

// Types missing from the table are samplers.
var uniformTypes = map[gl.Enum]uniformType{
	gl.FLOAT:             {floatUniform, 1},
	gl.FLOAT_VEC2:        {floatUniform, 2},
	gl.FLOAT_VEC3:        {floatUniform, 3},
	gl.FLOAT_VEC4:        {floatUniform, 4},
	gl.INT:               {intUniform, 1},
	gl.INT_VEC2:          {intUniform, 2},
	gl.INT_VEC3:          {intUniform, 3},
	gl.INT_VEC4:          {intUniform, 4},
	gl.UNSIGNED_INT:      {uintUniform, 1},
	gl.UNSIGNED_INT_VEC2: {uintUniform, 2},
	gl.UNSIGNED_INT_VEC3: {uintUniform, 3},
	gl.UNSIGNED_INT_VEC4: {uintUniform, 4},
	gl.BOOL:              {boolUniform, 1},
	gl.FLOAT_MAT2:        {matrixUniform, 2},
	gl.FLOAT_MAT3:        {matrixUniform, 3},
	gl.FLOAT_MAT4:        {matrixUniform, 4},
}

func typeOfUniform(t gl.Enum) uniformType {
	if u, ok := uniformTypes[t]; ok {
		return u
	}
	return uniformType{samplerUniform, 1}
}

// components is the number of scalars in one element of the type.
func (u uniformType) components() int {
	if u.kind == matrixUniform {
		return u.width * u.width
	}
	return u.width
}

// accepts returns true if a setter of the given kind and width may set a
// uniform of type u.
func (u uniformType) accepts(kind uniformKind, width int) bool {
	switch {
	case u.kind == samplerUniform:
		return kind == intUniform && width == 1
	case u.kind == boolUniform:
		return kind != matrixUniform && width == u.width
	}
	return u.kind == kind && u.width == width
}

// uniformSlot is the value at one uniform location: a whole non-array
// uniform or one element of an array.
type uniformSlot struct {
	uniform int
	element int
	value   []float64
}

func newUniformSlot(uniform int, t gl.Enum, element int) uniformSlot {
	return uniformSlot{
		uniform: uniform,
		element: element,
		value:   make([]float64, typeOfUniform(t).components()),
	}
}

// GetUniformLocation returns the location of a uniform, or -1. Array
// elements are named "name[i]"; "name" is the same as "name[0]".
func (m *Manager) GetUniformLocation(prog uint32, name string) int32 {
	defer m.call("GetUniformLocation", prog, name)()
	p := m.linkedProgram(prog)
	if p == nil {
		return -1
	}
	base, index, ok := shaderinput.ParseName(name)
	if !ok {
		return -1
	}
	v, ok := findVariable(p.uniforms, base)
	if !ok || int32(index) >= v.size {
		return -1
	}
	return v.location + int32(index)
}

// setUniform stores count elements of values at loc in the current
// program, starting at the element loc names.
func (m *Manager) setUniform(loc, count int32, kind uniformKind, width int, values []float64) {
	if count < 0 {
		m.fail(gl.INVALID_VALUE, "negative count %d", count)
		return
	}
	p := m.currentProgram()
	switch {
	case p == nil:
		m.fail(gl.INVALID_OPERATION, "no current program")
		return
	case loc == -1:
		return
	case loc < 0 || int(loc) >= len(p.slots):
		m.fail(gl.INVALID_OPERATION, "invalid uniform location %d", loc)
		return
	}
	slot := p.slots[loc]
	u := p.uniforms[slot.uniform]
	t := typeOfUniform(u.typ)
	switch {
	case !t.accepts(kind, width):
		m.fail(gl.INVALID_OPERATION, "uniform %s of type %v cannot be set with %d values of this type", u.name, u.typ, width)
		return
	case count > 1 && u.size == 1:
		m.fail(gl.INVALID_OPERATION, "uniform %s is not an array", u.name)
		return
	}
	n := t.components()
	for e := 0; e < int(count) && slot.element+e < int(u.size); e++ {
		if (e+1)*n > len(values) {
			break
		}
		copy(p.slots[int(loc)+e].value, values[e*n:(e+1)*n])
	}
}

func float32s(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func int32s(v []int32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func uint32s(v []uint32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// Uniform1f sets a float uniform of the current program.
func (m *Manager) Uniform1f(loc int32, v0 float32) {
	defer m.call("Uniform1f", loc, v0)()
	m.setUniform(loc, 1, floatUniform, 1, float32s([]float32{v0}))
}

// Uniform2f sets a vec2 uniform of the current program.
func (m *Manager) Uniform2f(loc int32, v0, v1 float32) {
	defer m.call("Uniform2f", loc, v0, v1)()
	m.setUniform(loc, 1, floatUniform, 2, float32s([]float32{v0, v1}))
}

// Uniform3f sets a vec3 uniform of the current program.
func (m *Manager) Uniform3f(loc int32, v0, v1, v2 float32) {
	defer m.call("Uniform3f", loc, v0, v1, v2)()
	m.setUniform(loc, 1, floatUniform, 3, float32s([]float32{v0, v1, v2}))
}

// Uniform4f sets a vec4 uniform of the current program.
func (m *Manager) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	defer m.call("Uniform4f", loc, v0, v1, v2, v3)()
	m.setUniform(loc, 1, floatUniform, 4, float32s([]float32{v0, v1, v2, v3}))
}

// Uniform1i sets an int or sampler uniform of the current program.
func (m *Manager) Uniform1i(loc int32, v0 int32) {
	defer m.call("Uniform1i", loc, v0)()
	m.setUniform(loc, 1, intUniform, 1, int32s([]int32{v0}))
}

// Uniform2i sets an ivec2 uniform of the current program.
func (m *Manager) Uniform2i(loc int32, v0, v1 int32) {
	defer m.call("Uniform2i", loc, v0, v1)()
	m.setUniform(loc, 1, intUniform, 2, int32s([]int32{v0, v1}))
}

// Uniform3i sets an ivec3 uniform of the current program.
func (m *Manager) Uniform3i(loc int32, v0, v1, v2 int32) {
	defer m.call("Uniform3i", loc, v0, v1, v2)()
	m.setUniform(loc, 1, intUniform, 3, int32s([]int32{v0, v1, v2}))
}

// Uniform4i sets an ivec4 uniform of the current program.
func (m *Manager) Uniform4i(loc int32, v0, v1, v2, v3 int32) {
	defer m.call("Uniform4i", loc, v0, v1, v2, v3)()
	m.setUniform(loc, 1, intUniform, 4, int32s([]int32{v0, v1, v2, v3}))
}

// Uniform1ui sets a uint uniform of the current program.
func (m *Manager) Uniform1ui(loc int32, v0 uint32) {
	defer m.call("Uniform1ui", loc, v0)()
	m.setUniform(loc, 1, uintUniform, 1, uint32s([]uint32{v0}))
}

// Uniform2ui sets a uvec2 uniform of the current program.
func (m *Manager) Uniform2ui(loc int32, v0, v1 uint32) {
	defer m.call("Uniform2ui", loc, v0, v1)()
	m.setUniform(loc, 1, uintUniform, 2, uint32s([]uint32{v0, v1}))
}

// Uniform3ui sets a uvec3 uniform of the current program.
func (m *Manager) Uniform3ui(loc int32, v0, v1, v2 uint32) {
	defer m.call("Uniform3ui", loc, v0, v1, v2)()
	m.setUniform(loc, 1, uintUniform, 3, uint32s([]uint32{v0, v1, v2}))
}

// Uniform4ui sets a uvec4 uniform of the current program.
func (m *Manager) Uniform4ui(loc int32, v0, v1, v2, v3 uint32) {
	defer m.call("Uniform4ui", loc, v0, v1, v2, v3)()
	m.setUniform(loc, 1, uintUniform, 4, uint32s([]uint32{v0, v1, v2, v3}))
}

// Uniform1fv sets count float elements starting at loc.
func (m *Manager) Uniform1fv(loc, count int32, v []float32) {
	defer m.call("Uniform1fv", loc, count, v)()
	m.setUniform(loc, count, floatUniform, 1, float32s(v))
}

// Uniform2fv sets count vec2 elements starting at loc.
func (m *Manager) Uniform2fv(loc, count int32, v []float32) {
	defer m.call("Uniform2fv", loc, count, v)()
	m.setUniform(loc, count, floatUniform, 2, float32s(v))
}

// Uniform3fv sets count vec3 elements starting at loc.
func (m *Manager) Uniform3fv(loc, count int32, v []float32) {
	defer m.call("Uniform3fv", loc, count, v)()
	m.setUniform(loc, count, floatUniform, 3, float32s(v))
}

// Uniform4fv sets count vec4 elements starting at loc.
func (m *Manager) Uniform4fv(loc, count int32, v []float32) {
	defer m.call("Uniform4fv", loc, count, v)()
	m.setUniform(loc, count, floatUniform, 4, float32s(v))
}

// Uniform1iv sets count int or sampler elements starting at loc.
func (m *Manager) Uniform1iv(loc, count int32, v []int32) {
	defer m.call("Uniform1iv", loc, count, v)()
	m.setUniform(loc, count, intUniform, 1, int32s(v))
}

// Uniform2iv sets count ivec2 elements starting at loc.
func (m *Manager) Uniform2iv(loc, count int32, v []int32) {
	defer m.call("Uniform2iv", loc, count, v)()
	m.setUniform(loc, count, intUniform, 2, int32s(v))
}

// Uniform3iv sets count ivec3 elements starting at loc.
func (m *Manager) Uniform3iv(loc, count int32, v []int32) {
	defer m.call("Uniform3iv", loc, count, v)()
	m.setUniform(loc, count, intUniform, 3, int32s(v))
}

// Uniform4iv sets count ivec4 elements starting at loc.
func (m *Manager) Uniform4iv(loc, count int32, v []int32) {
	defer m.call("Uniform4iv", loc, count, v)()
	m.setUniform(loc, count, intUniform, 4, int32s(v))
}

// Uniform1uiv sets count uint elements starting at loc.
func (m *Manager) Uniform1uiv(loc, count int32, v []uint32) {
	defer m.call("Uniform1uiv", loc, count, v)()
	m.setUniform(loc, count, uintUniform, 1, uint32s(v))
}

// Uniform2uiv sets count uvec2 elements starting at loc.
func (m *Manager) Uniform2uiv(loc, count int32, v []uint32) {
	defer m.call("Uniform2uiv", loc, count, v)()
	m.setUniform(loc, count, uintUniform, 2, uint32s(v))
}

// Uniform3uiv sets count uvec3 elements starting at loc.
func (m *Manager) Uniform3uiv(loc, count int32, v []uint32) {
	defer m.call("Uniform3uiv", loc, count, v)()
	m.setUniform(loc, count, uintUniform, 3, uint32s(v))
}

// Uniform4uiv sets count uvec4 elements starting at loc.
func (m *Manager) Uniform4uiv(loc, count int32, v []uint32) {
	defer m.call("Uniform4uiv", loc, count, v)()
	m.setUniform(loc, count, uintUniform, 4, uint32s(v))
}

// uniformMatrix sets count square matrices of the given width. Matrices
// are column major; transposition is not supported.
func (m *Manager) uniformMatrix(loc, count int32, width int, transpose bool, v []float32) {
	if count >= 0 && transpose {
		m.fail(gl.INVALID_VALUE, "transpose must be false")
		return
	}
	m.setUniform(loc, count, matrixUniform, width, float32s(v))
}

// UniformMatrix2fv sets count mat2 elements starting at loc.
func (m *Manager) UniformMatrix2fv(loc, count int32, transpose bool, v []float32) {
	defer m.call("UniformMatrix2fv", loc, count, transpose, columns{2, v})()
	m.uniformMatrix(loc, count, 2, transpose, v)
}

// UniformMatrix3fv sets count mat3 elements starting at loc.
func (m *Manager) UniformMatrix3fv(loc, count int32, transpose bool, v []float32) {
	defer m.call("UniformMatrix3fv", loc, count, transpose, columns{3, v})()
	m.uniformMatrix(loc, count, 3, transpose, v)
}

// UniformMatrix4fv sets count mat4 elements starting at loc.
func (m *Manager) UniformMatrix4fv(loc, count int32, transpose bool, v []float32) {
	defer m.call("UniformMatrix4fv", loc, count, transpose, columns{4, v})()
	m.uniformMatrix(loc, count, 4, transpose, v)
}

// uniformValue returns the value at loc of a linked program.
func (m *Manager) uniformValue(prog uint32, loc int32) []float64 {
	p := m.linkedProgram(prog)
	switch {
	case p == nil:
		return nil
	case loc < 0 || int(loc) >= len(p.slots):
		m.fail(gl.INVALID_OPERATION, "invalid uniform location %d", loc)
		return nil
	}
	return p.slots[loc].value
}

// GetUniformfv stores the value at loc of a program in params.
func (m *Manager) GetUniformfv(prog uint32, loc int32, params []float32) {
	defer m.call("GetUniformfv", prog, loc, nil)()
	for i, v := range m.uniformValue(prog, loc) {
		if i < len(params) {
			params[i] = float32(v)
		}
	}
}

// GetUniformiv stores the value at loc of a program in params.
func (m *Manager) GetUniformiv(prog uint32, loc int32, params []int32) {
	defer m.call("GetUniformiv", prog, loc, nil)()
	for i, v := range m.uniformValue(prog, loc) {
		if i < len(params) {
			params[i] = int32(v)
		}
	}
}

// GetUniformuiv stores the value at loc of a program in params.
func (m *Manager) GetUniformuiv(prog uint32, loc int32, params []uint32) {
	defer m.call("GetUniformuiv", prog, loc, nil)()
	for i, v := range m.uniformValue(prog, loc) {
		if i < len(params) {
			params[i] = uint32(v)
		}
	}
}
