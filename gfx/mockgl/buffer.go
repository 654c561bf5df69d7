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

type buffer struct {
	data  []byte
	usage gl.Enum

	mapped      bool
	access      gl.Enum
	accessFlags uint32
	mapOffset   int64
	mapLength   int64
}

func newBuffer() *buffer {
	return &buffer{usage: gl.STATIC_DRAW, access: gl.READ_WRITE}
}

func (b *buffer) size() int64 { return int64(len(b.data)) }

// outOfRange returns true if size bytes at offset do not fit in limit bytes.
// offset and size must not be negative.
func outOfRange(offset, size, limit int64) bool {
	return offset > limit || size > limit-offset
}

func (b *buffer) unmap() {
	b.mapped = false
	b.access = gl.READ_WRITE
	b.accessFlags = 0
	b.mapOffset, b.mapLength = 0, 0
}

type bufferState struct {
	objects *objectTable[buffer]
	// bindings holds every target except ELEMENT_ARRAY_BUFFER, which is
	// part of the bound vertex array.
	bindings map[gl.Enum]uint32
}

func newBufferState() bufferState {
	return bufferState{objects: newObjectTable[buffer](), bindings: map[gl.Enum]uint32{}}
}

var bufferBindings = map[gl.Enum]gl.Enum{
	gl.ARRAY_BUFFER_BINDING:              gl.ARRAY_BUFFER,
	gl.COPY_READ_BUFFER_BINDING:          gl.COPY_READ_BUFFER,
	gl.COPY_WRITE_BUFFER_BINDING:         gl.COPY_WRITE_BUFFER,
	gl.PIXEL_PACK_BUFFER_BINDING:         gl.PIXEL_PACK_BUFFER,
	gl.PIXEL_UNPACK_BUFFER_BINDING:       gl.PIXEL_UNPACK_BUFFER,
	gl.UNIFORM_BUFFER_BINDING:            gl.UNIFORM_BUFFER,
	gl.TRANSFORM_FEEDBACK_BUFFER_BINDING: gl.TRANSFORM_FEEDBACK_BUFFER,
}

// binding returns the name of the buffer bound to target.
func (m *Manager) bufferBinding(target gl.Enum) uint32 {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		return m.boundArray().elements
	}
	return m.v.buffers.bindings[target]
}

// boundBuffer validates target and returns the buffer bound to it. It
// raises INVALID_ENUM for a bad target and INVALID_OPERATION if nothing is
// bound.
func (m *Manager) boundBuffer(target gl.Enum) *buffer {
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return nil
	}
	b := m.v.buffers.objects.get(m.bufferBinding(target))
	if b == nil {
		m.fail(gl.INVALID_OPERATION, "no buffer bound to %v", target)
	}
	return b
}

// GenBuffers allocates n buffer names into ids.
func (m *Manager) GenBuffers(n int32, ids []uint32) {
	defer m.call("GenBuffers", n, ids)()
	genNames(m, m.v.buffers.objects, n, ids, newBuffer)
}

// DeleteBuffers deletes buffers, removing them from every target, vertex
// array and attribute they are bound to.
func (m *Manager) DeleteBuffers(n int32, ids []uint32) {
	defer m.call("DeleteBuffers", n, ids)()
	s := &m.v.buffers
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *buffer) {
		for target, bound := range s.bindings {
			if bound == name {
				delete(s.bindings, target)
			}
		}
		m.detachBufferFromArrays(name)
		m.detachBufferFromFeedback(name)
	})
}

// IsBuffer returns true for 0 and live buffer names.
func (m *Manager) IsBuffer(name uint32) bool {
	defer m.call("IsBuffer", name)()
	return name == 0 || m.v.buffers.objects.has(name)
}

// BindBuffer binds a buffer to target. ELEMENT_ARRAY_BUFFER is bound in
// the current vertex array.
func (m *Manager) BindBuffer(target gl.Enum, name uint32) {
	defer m.call("BindBuffer", target, name)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return
	}
	if name != 0 && !m.v.buffers.objects.has(name) {
		m.fail(gl.INVALID_VALUE, "unknown buffer %d", name)
		return
	}
	m.bindBuffer(target, name)
}

func (m *Manager) bindBuffer(target gl.Enum, name uint32) {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		m.boundArray().elements = name
		return
	}
	m.v.buffers.bindings[target] = name
}

// BufferData replaces the store of the bound buffer with size bytes,
// copied from data when it is not nil.
func (m *Manager) BufferData(target gl.Enum, size int64, data []byte, usage gl.Enum) {
	defer m.call("BufferData", target, size, data, usage)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return
	}
	if size < 0 {
		m.fail(gl.INVALID_VALUE, "negative size %d", size)
		return
	}
	if !m.checkEnum(bufferUsages, usage, "buffer usage") {
		return
	}
	b := m.boundBuffer(target)
	if b == nil {
		return
	}
	if max := m.v.maxBuffer; max > 0 && size > max {
		m.fail(gl.OUT_OF_MEMORY, "size %d is above the limit of %d", size, max)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
	b.unmap()
}

// BufferSubData copies data into the bound buffer at offset.
func (m *Manager) BufferSubData(target gl.Enum, offset, size int64, data []byte) {
	defer m.call("BufferSubData", target, offset, size, data)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return
	}
	if offset < 0 || size < 0 {
		m.fail(gl.INVALID_VALUE, "negative offset %d or size %d", offset, size)
		return
	}
	b := m.boundBuffer(target)
	if b == nil {
		return
	}
	if outOfRange(offset, size, b.size()) {
		m.fail(gl.INVALID_VALUE, "%d bytes at offset %d are beyond the buffer size %d",
			size, offset, b.size())
		return
	}
	if b.mapped {
		m.fail(gl.INVALID_OPERATION, "buffer is mapped")
		return
	}
	copy(b.data[offset:offset+size], data)
}

// CopyBufferSubData copies size bytes between the buffers bound to two
// targets.
func (m *Manager) CopyBufferSubData(readTarget, writeTarget gl.Enum, readOffset, writeOffset, size int64) {
	defer m.call("CopyBufferSubData", readTarget, writeTarget, readOffset, writeOffset, size)()
	if !m.checkEnum(bufferTargets, readTarget, "read target") ||
		!m.checkEnum(bufferTargets, writeTarget, "write target") {
		return
	}
	if readOffset < 0 || writeOffset < 0 || size < 0 {
		m.fail(gl.INVALID_VALUE, "negative offset or size")
		return
	}
	src, dst := m.boundBuffer(readTarget), m.boundBuffer(writeTarget)
	if src == nil || dst == nil {
		return
	}
	switch {
	case src.mapped || dst.mapped:
		m.fail(gl.INVALID_OPERATION, "buffer is mapped")
	case outOfRange(readOffset, size, src.size()):
		m.fail(gl.INVALID_VALUE, "read range is beyond the buffer size %d", src.size())
	case outOfRange(writeOffset, size, dst.size()):
		m.fail(gl.INVALID_VALUE, "write range is beyond the buffer size %d", dst.size())
	case src == dst && readOffset < writeOffset+size && writeOffset < readOffset+size:
		m.fail(gl.INVALID_VALUE, "read and write ranges overlap")
	default:
		copy(dst.data[writeOffset:writeOffset+size], src.data[readOffset:readOffset+size])
	}
}

// GetBufferParameteriv returns a parameter of the bound buffer.
func (m *Manager) GetBufferParameteriv(target, pname gl.Enum) int32 {
	defer m.call("GetBufferParameteriv", target, pname)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return 0
	}
	switch pname {
	case gl.BUFFER_SIZE, gl.BUFFER_USAGE, gl.BUFFER_ACCESS, gl.BUFFER_MAPPED,
		gl.BUFFER_ACCESS_FLAGS, gl.BUFFER_MAP_LENGTH, gl.BUFFER_MAP_OFFSET:
	default:
		m.fail(gl.INVALID_ENUM, "invalid buffer parameter %v", pname)
		return 0
	}
	b := m.boundBuffer(target)
	if b == nil {
		return 0
	}
	switch pname {
	case gl.BUFFER_SIZE:
		return int32(b.size())
	case gl.BUFFER_USAGE:
		return int32(b.usage)
	case gl.BUFFER_ACCESS:
		return int32(b.access)
	case gl.BUFFER_MAPPED:
		if b.mapped {
			return 1
		}
		return 0
	case gl.BUFFER_ACCESS_FLAGS:
		return int32(b.accessFlags)
	case gl.BUFFER_MAP_LENGTH:
		return int32(b.mapLength)
	default:
		return int32(b.mapOffset)
	}
}

// accessFlags converts a MapBuffer access enum to MapBufferRange bits.
func accessFlags(access gl.Enum) uint32 {
	switch access {
	case gl.READ_ONLY:
		return uint32(gl.MAP_READ_BIT)
	case gl.WRITE_ONLY:
		return uint32(gl.MAP_WRITE_BIT)
	}
	return uint32(gl.MAP_READ_BIT | gl.MAP_WRITE_BIT)
}

// MapBuffer maps the whole bound buffer. The returned slice aliases the
// buffer store until it is unmapped.
func (m *Manager) MapBuffer(target, access gl.Enum) []byte {
	defer m.call("MapBuffer", target, access)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return nil
	}
	b := m.boundBuffer(target)
	if b == nil || !m.checkEnum(bufferAccess, access, "buffer access") {
		return nil
	}
	if b.mapped {
		m.fail(gl.INVALID_OPERATION, "buffer is already mapped")
		return nil
	}
	b.mapped = true
	b.access = access
	b.accessFlags = accessFlags(access)
	b.mapOffset, b.mapLength = 0, b.size()
	return b.data
}

// MapBufferRange maps length bytes of the bound buffer from offset.
func (m *Manager) MapBufferRange(target gl.Enum, offset, length int64, access uint32) []byte {
	defer m.call("MapBufferRange", target, offset, length, bitfieldArg{gl.MapBits, access})()
	b := m.boundBuffer(target)
	if b == nil {
		return nil
	}
	const (
		read       = uint32(gl.MAP_READ_BIT)
		write      = uint32(gl.MAP_WRITE_BIT)
		readDenied = uint32(gl.MAP_INVALIDATE_RANGE_BIT | gl.MAP_INVALIDATE_BUFFER_BIT | gl.MAP_UNSYNCHRONIZED_BIT)
		flush      = uint32(gl.MAP_FLUSH_EXPLICIT_BIT)
	)
	switch {
	case offset < 0 || length < 0:
		m.fail(gl.INVALID_VALUE, "negative offset %d or length %d", offset, length)
	case outOfRange(offset, length, b.size()):
		m.fail(gl.INVALID_VALUE, "%d bytes at offset %d are beyond the buffer size %d",
			length, offset, b.size())
	case !gl.MapBits.Valid(access):
		m.fail(gl.INVALID_VALUE, "invalid access bits %s", gl.MapBits.Format(access))
	case access&(read|write) == 0:
		m.fail(gl.INVALID_OPERATION, "access needs MAP_READ_BIT or MAP_WRITE_BIT")
	case access&read != 0 && access&readDenied != 0:
		m.fail(gl.INVALID_OPERATION, "read access with %s", gl.MapBits.Format(access&readDenied))
	case access&flush != 0 && access&write == 0:
		m.fail(gl.INVALID_OPERATION, "MAP_FLUSH_EXPLICIT_BIT without MAP_WRITE_BIT")
	case b.mapped:
		m.fail(gl.INVALID_OPERATION, "buffer is already mapped")
	default:
		b.mapped = true
		switch access & (read | write) {
		case read:
			b.access = gl.READ_ONLY
		case write:
			b.access = gl.WRITE_ONLY
		default:
			b.access = gl.READ_WRITE
		}
		b.accessFlags = access
		b.mapOffset, b.mapLength = offset, length
		return b.data[offset : offset+length : offset+length]
	}
	return nil
}

// FlushMappedBufferRange marks a range of an explicitly flushed mapping as
// modified. The range is relative to the start of the mapping.
func (m *Manager) FlushMappedBufferRange(target gl.Enum, offset, length int64) {
	defer m.call("FlushMappedBufferRange", target, offset, length)()
	b := m.boundBuffer(target)
	if b == nil {
		return
	}
	switch {
	case !b.mapped || b.accessFlags&uint32(gl.MAP_FLUSH_EXPLICIT_BIT) == 0:
		m.fail(gl.INVALID_OPERATION, "buffer is not mapped with MAP_FLUSH_EXPLICIT_BIT")
	case offset < 0 || length < 0:
		m.fail(gl.INVALID_VALUE, "negative offset %d or length %d", offset, length)
	case outOfRange(offset, length, b.mapLength):
		m.fail(gl.INVALID_VALUE, "%d bytes at offset %d are beyond the mapped length %d",
			length, offset, b.mapLength)
	}
}

// UnmapBuffer releases the mapping of the bound buffer.
func (m *Manager) UnmapBuffer(target gl.Enum) bool {
	defer m.call("UnmapBuffer", target)()
	b := m.boundBuffer(target)
	if b == nil {
		return false
	}
	if !b.mapped {
		m.fail(gl.INVALID_OPERATION, "buffer is not mapped")
		return false
	}
	b.unmap()
	return true
}

// GetBufferPointerv returns the mapped range of the bound buffer, or nil
// if it is not mapped.
func (m *Manager) GetBufferPointerv(target, pname gl.Enum) []byte {
	defer m.call("GetBufferPointerv", target, pname)()
	if !m.checkEnum(bufferTargets, target, "buffer target") {
		return nil
	}
	if pname != gl.BUFFER_MAP_POINTER {
		m.fail(gl.INVALID_ENUM, "invalid buffer pointer %v", pname)
		return nil
	}
	b := m.boundBuffer(target)
	if b == nil || !b.mapped {
		return nil
	}
	return b.data[b.mapOffset : b.mapOffset+b.mapLength : b.mapOffset+b.mapLength]
}

func (m *Manager) bufferQuery(pname gl.Enum) (param, bool) {
	if pname == gl.ELEMENT_ARRAY_BUFFER_BINDING {
		return uints(m.boundArray().elements), true
	}
	if target, ok := bufferBindings[pname]; ok {
		return uints(m.v.buffers.bindings[target]), true
	}
	return param{}, false
}
