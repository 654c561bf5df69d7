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
	"golang.org/x/exp/maps"

	gl "github.com/google/ion/gfx/glenum"
)

type vertexAttrib struct {
	enabled    bool
	size       int32
	stride     int32
	typ        gl.Enum
	normalized bool
	buffer     uint32
	pointer    uintptr
	divisor    uint32
}

var defaultAttrib = vertexAttrib{size: 4, typ: gl.FLOAT}

type vertexArray struct {
	elements uint32
	attribs  map[uint32]*vertexAttrib
}

func newVertexArray() *vertexArray {
	return &vertexArray{attribs: map[uint32]*vertexAttrib{}}
}

// attrib returns the attribute at index, creating it with default values.
func (a *vertexArray) attrib(index uint32) *vertexAttrib {
	at, ok := a.attribs[index]
	if !ok {
		at = &vertexAttrib{}
		*at = defaultAttrib
		a.attribs[index] = at
	}
	return at
}

type vertexArrayState struct {
	objects *objectTable[vertexArray]
	// def is vertex array 0.
	def   *vertexArray
	bound uint32
	// current holds the generic attribute values set with VertexAttrib*.
	// They are not part of any vertex array.
	current map[uint32][4]float32
}

func newVertexArrayState() vertexArrayState {
	return vertexArrayState{
		objects: newObjectTable[vertexArray](),
		def:     newVertexArray(),
		current: map[uint32][4]float32{},
	}
}

func (m *Manager) boundArray() *vertexArray {
	s := &m.v.arrays
	if a := s.objects.get(s.bound); a != nil {
		return a
	}
	return s.def
}

func (m *Manager) checkAttribIndex(index uint32) bool {
	if int64(index) >= int64(m.v.caps.MaxVertexAttribs) {
		m.fail(gl.INVALID_VALUE, "attribute index %d out of range", index)
		return false
	}
	return true
}

func (m *Manager) detachBufferFromArrays(name uint32) {
	s := &m.v.arrays
	for _, a := range append(maps.Values(s.objects.live), s.def) {
		if a.elements == name {
			a.elements = 0
		}
		for _, at := range a.attribs {
			if at.buffer == name {
				at.buffer = 0
			}
		}
	}
}

// GenVertexArrays allocates n vertex array names into ids.
func (m *Manager) GenVertexArrays(n int32, ids []uint32) {
	defer m.call("GenVertexArrays", n, ids)()
	genNames(m, m.v.arrays.objects, n, ids, newVertexArray)
}

// DeleteVertexArrays deletes vertex arrays. Deleting the bound array
// binds array 0.
func (m *Manager) DeleteVertexArrays(n int32, ids []uint32) {
	defer m.call("DeleteVertexArrays", n, ids)()
	s := &m.v.arrays
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *vertexArray) {
		if s.bound == name {
			s.bound = 0
		}
	})
}

// IsVertexArray returns true for 0 and live vertex array names.
func (m *Manager) IsVertexArray(name uint32) bool {
	defer m.call("IsVertexArray", name)()
	return name == 0 || m.v.arrays.objects.has(name)
}

// BindVertexArray makes a vertex array current.
func (m *Manager) BindVertexArray(name uint32) {
	defer m.call("BindVertexArray", name)()
	if name != 0 && !m.v.arrays.objects.has(name) {
		m.fail(gl.INVALID_OPERATION, "unknown vertex array %d", name)
		return
	}
	m.v.arrays.bound = name
}

// EnableVertexAttribArray enables an attribute of the bound vertex array.
func (m *Manager) EnableVertexAttribArray(index uint32) {
	defer m.call("EnableVertexAttribArray", index)()
	if m.checkAttribIndex(index) {
		m.boundArray().attrib(index).enabled = true
	}
}

// DisableVertexAttribArray disables an attribute of the bound vertex
// array.
func (m *Manager) DisableVertexAttribArray(index uint32) {
	defer m.call("DisableVertexAttribArray", index)()
	if m.checkAttribIndex(index) {
		m.boundArray().attrib(index).enabled = false
	}
}

// VertexAttribPointer sources an attribute from the bound ARRAY_BUFFER at
// offset.
func (m *Manager) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset uintptr) {
	defer m.call("VertexAttribPointer", index, size, typ, normalized, stride, offset)()
	if !m.checkAttribIndex(index) {
		return
	}
	if size < 1 || size > 4 {
		m.fail(gl.INVALID_VALUE, "attribute size %d is not in [1, 4]", size)
		return
	}
	if stride < 0 {
		m.fail(gl.INVALID_VALUE, "negative stride %d", stride)
		return
	}
	if !m.checkEnum(attribTypes, typ, "attribute type") {
		return
	}
	at := m.boundArray().attrib(index)
	at.size, at.typ, at.normalized, at.stride = size, typ, normalized, stride
	at.pointer = offset
	at.buffer = m.v.buffers.bindings[gl.ARRAY_BUFFER]
}

// VertexAttribDivisor sets the instancing divisor of an attribute.
func (m *Manager) VertexAttribDivisor(index, divisor uint32) {
	defer m.call("VertexAttribDivisor", index, divisor)()
	if m.checkAttribIndex(index) {
		m.boundArray().attrib(index).divisor = divisor
	}
}

// vertexAttrib sets the generic value of an attribute. Missing components
// default to 0, 0, 1.
func (m *Manager) vertexAttrib(index uint32, v []float32) {
	if !m.checkAttribIndex(index) {
		return
	}
	value := [4]float32{0, 0, 0, 1}
	copy(value[:], v)
	m.v.arrays.current[index] = value
}

func (m *Manager) currentAttrib(index uint32) [4]float32 {
	if v, ok := m.v.arrays.current[index]; ok {
		return v
	}
	return [4]float32{0, 0, 0, 1}
}

// VertexAttrib1f sets the generic value of an attribute.
func (m *Manager) VertexAttrib1f(index uint32, x float32) {
	defer m.call("VertexAttrib1f", index, x)()
	m.vertexAttrib(index, []float32{x})
}

// VertexAttrib2f sets the generic value of an attribute.
func (m *Manager) VertexAttrib2f(index uint32, x, y float32) {
	defer m.call("VertexAttrib2f", index, x, y)()
	m.vertexAttrib(index, []float32{x, y})
}

// VertexAttrib3f sets the generic value of an attribute.
func (m *Manager) VertexAttrib3f(index uint32, x, y, z float32) {
	defer m.call("VertexAttrib3f", index, x, y, z)()
	m.vertexAttrib(index, []float32{x, y, z})
}

// VertexAttrib4f sets the generic value of an attribute.
func (m *Manager) VertexAttrib4f(index uint32, x, y, z, w float32) {
	defer m.call("VertexAttrib4f", index, x, y, z, w)()
	m.vertexAttrib(index, []float32{x, y, z, w})
}

func firstN(v []float32, n int) []float32 {
	if len(v) < n {
		return v
	}
	return v[:n]
}

// VertexAttrib1fv sets the generic value of an attribute from v[0].
func (m *Manager) VertexAttrib1fv(index uint32, v []float32) {
	defer m.call("VertexAttrib1fv", index, v)()
	m.vertexAttrib(index, firstN(v, 1))
}

// VertexAttrib2fv sets the generic value of an attribute from v[0:2].
func (m *Manager) VertexAttrib2fv(index uint32, v []float32) {
	defer m.call("VertexAttrib2fv", index, v)()
	m.vertexAttrib(index, firstN(v, 2))
}

// VertexAttrib3fv sets the generic value of an attribute from v[0:3].
func (m *Manager) VertexAttrib3fv(index uint32, v []float32) {
	defer m.call("VertexAttrib3fv", index, v)()
	m.vertexAttrib(index, firstN(v, 3))
}

// VertexAttrib4fv sets the generic value of an attribute from v[0:4].
func (m *Manager) VertexAttrib4fv(index uint32, v []float32) {
	defer m.call("VertexAttrib4fv", index, v)()
	m.vertexAttrib(index, firstN(v, 4))
}

func (m *Manager) getVertexAttrib(index uint32, pname gl.Enum) (param, bool) {
	if !m.checkAttribIndex(index) {
		return param{}, false
	}
	at := defaultAttrib
	if a, ok := m.boundArray().attribs[index]; ok {
		at = *a
	}
	switch pname {
	case gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return uints(at.buffer), true
	case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
		return bools(at.enabled), true
	case gl.VERTEX_ATTRIB_ARRAY_SIZE:
		return ints(at.size), true
	case gl.VERTEX_ATTRIB_ARRAY_STRIDE:
		return ints(at.stride), true
	case gl.VERTEX_ATTRIB_ARRAY_TYPE:
		return enums(at.typ), true
	case gl.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return bools(at.normalized), true
	case gl.VERTEX_ATTRIB_ARRAY_INTEGER:
		return bools(false), true
	case gl.VERTEX_ATTRIB_ARRAY_DIVISOR:
		return uints(at.divisor), true
	case gl.CURRENT_VERTEX_ATTRIB:
		v := m.currentAttrib(index)
		return floats(v[:]...), true
	}
	m.fail(gl.INVALID_ENUM, "invalid attribute parameter %v", pname)
	return param{}, false
}

// GetVertexAttribiv stores a parameter of an attribute of the bound
// vertex array in params.
func (m *Manager) GetVertexAttribiv(index uint32, pname gl.Enum, params []int32) {
	defer m.call("GetVertexAttribiv", index, pname, nil)()
	if p, ok := m.getVertexAttrib(index, pname); ok {
		for i := 0; i < len(p.values) && i < len(params); i++ {
			params[i] = int32(p.int64At(i))
		}
	}
}

// GetVertexAttribfv stores a parameter of an attribute of the bound
// vertex array in params.
func (m *Manager) GetVertexAttribfv(index uint32, pname gl.Enum, params []float32) {
	defer m.call("GetVertexAttribfv", index, pname, nil)()
	if p, ok := m.getVertexAttrib(index, pname); ok {
		for i := 0; i < len(p.values) && i < len(params); i++ {
			params[i] = float32(p.values[i])
		}
	}
}

// GetVertexAttribPointerv returns the offset set by VertexAttribPointer.
func (m *Manager) GetVertexAttribPointerv(index uint32, pname gl.Enum) uintptr {
	defer m.call("GetVertexAttribPointerv", index, pname)()
	if !m.checkAttribIndex(index) {
		return 0
	}
	if pname != gl.VERTEX_ATTRIB_ARRAY_POINTER {
		m.fail(gl.INVALID_ENUM, "invalid attribute pointer %v", pname)
		return 0
	}
	if at, ok := m.boundArray().attribs[index]; ok {
		return at.pointer
	}
	return 0
}

func (m *Manager) vertexArrayQuery(pname gl.Enum) (param, bool) {
	if pname == gl.VERTEX_ARRAY_BINDING {
		return uints(m.v.arrays.bound), true
	}
	return param{}, false
}
