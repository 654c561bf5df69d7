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

// indexedBuffer is a buffer bound to an indexed binding point. A size of 0
// binds the whole buffer.
type indexedBuffer struct {
	buffer       uint32
	offset, size int64
}

type transformFeedback struct {
	active  bool
	paused  bool
	mode    gl.Enum
	buffers map[uint32]indexedBuffer
}

func newTransformFeedback() *transformFeedback {
	return &transformFeedback{buffers: map[uint32]indexedBuffer{}}
}

// feedbackState holds the transform feedback objects. def is used while
// name 0 is bound.
type feedbackState struct {
	objects *objectTable[transformFeedback]
	def     *transformFeedback
	bound   uint32
}

func newFeedbackState() feedbackState {
	return feedbackState{
		objects: newObjectTable[transformFeedback](),
		def:     newTransformFeedback(),
	}
}

var (
	feedbackModes       = gl.NewSet(gl.POINTS, gl.LINES, gl.TRIANGLES)
	feedbackBufferModes = gl.NewSet(gl.INTERLEAVED_ATTRIBS, gl.SEPARATE_ATTRIBS)
	feedbackTargets     = gl.NewSet(gl.TRANSFORM_FEEDBACK)
	indexedTargets      = gl.NewSet(gl.TRANSFORM_FEEDBACK_BUFFER)
)

// primitiveFamily maps a draw mode to the transform feedback mode it
// captures as.
func primitiveFamily(mode gl.Enum) gl.Enum {
	switch mode {
	case gl.LINES, gl.LINE_LOOP, gl.LINE_STRIP:
		return gl.LINES
	case gl.TRIANGLES, gl.TRIANGLE_STRIP, gl.TRIANGLE_FAN:
		return gl.TRIANGLES
	}
	return mode
}

func (m *Manager) boundFeedback() *transformFeedback {
	s := &m.v.feedback
	if f := s.objects.get(s.bound); f != nil {
		return f
	}
	return s.def
}

func (m *Manager) isFeedbackActive() bool { return m.boundFeedback().active }

func (m *Manager) isFeedbackPaused() bool { return m.boundFeedback().paused }

// checkFeedbackDraw raises INVALID_OPERATION if transform feedback is
// capturing primitives of a different kind than mode.
func (m *Manager) checkFeedbackDraw(mode gl.Enum) bool {
	f := m.boundFeedback()
	if f.active && !f.paused && primitiveFamily(mode) != f.mode {
		m.fail(gl.INVALID_OPERATION, "draw mode %v does not match transform feedback mode %v", mode, f.mode)
		return false
	}
	return true
}

// detachBufferFromFeedback removes a deleted buffer from every transform
// feedback object.
func (m *Manager) detachBufferFromFeedback(name uint32) {
	s := &m.v.feedback
	for _, f := range append(maps.Values(s.objects.live), s.def) {
		for index, b := range f.buffers {
			if b.buffer == name {
				delete(f.buffers, index)
			}
		}
	}
}

// GenTransformFeedbacks allocates n transform feedback names into ids.
func (m *Manager) GenTransformFeedbacks(n int32, ids []uint32) {
	defer m.call("GenTransformFeedbacks", n, ids)()
	genNames(m, m.v.feedback.objects, n, ids, newTransformFeedback)
}

// DeleteTransformFeedbacks deletes transform feedback objects. Active
// objects cannot be deleted.
func (m *Manager) DeleteTransformFeedbacks(n int32, ids []uint32) {
	defer m.call("DeleteTransformFeedbacks", n, ids)()
	s := &m.v.feedback
	for i := 0; i < int(n) && i < len(ids); i++ {
		if f := s.objects.get(ids[i]); f != nil && f.active {
			m.fail(gl.INVALID_OPERATION, "transform feedback %d is active", ids[i])
			return
		}
	}
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *transformFeedback) {
		if s.bound == name {
			s.bound = 0
		}
	})
}

// IsTransformFeedback returns true if name is a transform feedback object.
func (m *Manager) IsTransformFeedback(name uint32) bool {
	defer m.call("IsTransformFeedback", name)()
	return m.v.feedback.objects.has(name)
}

// BindTransformFeedback binds a transform feedback object. The binding
// cannot change while feedback is active and not paused.
func (m *Manager) BindTransformFeedback(target gl.Enum, name uint32) {
	defer m.call("BindTransformFeedback", target, name)()
	s := &m.v.feedback
	switch {
	case !m.checkEnum(feedbackTargets, target, "transform feedback target"):
	case m.isFeedbackActive() && !m.isFeedbackPaused():
		m.fail(gl.INVALID_OPERATION, "transform feedback is active")
	case name != 0 && !s.objects.has(name):
		m.fail(gl.INVALID_OPERATION, "invalid transform feedback %d", name)
	default:
		s.bound = name
	}
}

// BeginTransformFeedback starts capturing primitives of the given kind.
func (m *Manager) BeginTransformFeedback(mode gl.Enum) {
	defer m.call("BeginTransformFeedback", mode)()
	if !m.checkEnum(feedbackModes, mode, "transform feedback mode") {
		return
	}
	f := m.boundFeedback()
	p := m.currentProgram()
	switch {
	case f.active:
		m.fail(gl.INVALID_OPERATION, "transform feedback is already active")
	case p == nil:
		m.fail(gl.INVALID_OPERATION, "no current program")
	case len(p.feedback) == 0:
		m.fail(gl.INVALID_OPERATION, "current program has no transform feedback varyings")
	default:
		f.active, f.paused, f.mode = true, false, mode
	}
}

// PauseTransformFeedback suspends capturing.
func (m *Manager) PauseTransformFeedback() {
	defer m.call("PauseTransformFeedback")()
	f := m.boundFeedback()
	if !f.active || f.paused {
		m.fail(gl.INVALID_OPERATION, "transform feedback is not active or already paused")
		return
	}
	f.paused = true
}

// ResumeTransformFeedback resumes paused capturing.
func (m *Manager) ResumeTransformFeedback() {
	defer m.call("ResumeTransformFeedback")()
	f := m.boundFeedback()
	if !f.active || !f.paused {
		m.fail(gl.INVALID_OPERATION, "transform feedback is not paused")
		return
	}
	f.paused = false
}

// EndTransformFeedback stops capturing.
func (m *Manager) EndTransformFeedback() {
	defer m.call("EndTransformFeedback")()
	f := m.boundFeedback()
	if !f.active {
		m.fail(gl.INVALID_OPERATION, "transform feedback is not active")
		return
	}
	f.active, f.paused = false, false
}

// TransformFeedbackVaryings selects the varyings a program captures,
// taking effect at the next link.
func (m *Manager) TransformFeedbackVaryings(prog uint32, varyings []string, bufferMode gl.Enum) {
	defer m.call("TransformFeedbackVaryings", prog, varyings, bufferMode)()
	p := m.program(prog)
	switch {
	case p == nil:
	case !m.checkEnum(feedbackBufferModes, bufferMode, "buffer mode"):
	case bufferMode == gl.SEPARATE_ATTRIBS && len(varyings) > int(m.v.caps.MaxTransformFeedbackSeparateAttribs):
		m.fail(gl.INVALID_VALUE, "%d separate varyings exceed the limit", len(varyings))
	default:
		p.feedbackNames = append([]string{}, varyings...)
		p.feedbackMode = bufferMode
	}
}

// GetTransformFeedbackVarying returns the name, size and type of a
// captured varying of a linked program.
func (m *Manager) GetTransformFeedbackVarying(prog, index uint32, bufSize int32) (name string, size int32, typ gl.Enum) {
	defer m.call("GetTransformFeedbackVarying", prog, index, bufSize)()
	p := m.linkedProgram(prog)
	if p == nil {
		return "", 0, 0
	}
	return m.activeVariable(p.feedback, index, bufSize)
}

// bindBufferIndexed binds a range of a buffer to an indexed binding point
// and to the generic binding of the target.
func (m *Manager) bindBufferIndexed(target gl.Enum, index, buffer uint32, offset, size int64) {
	f := m.boundFeedback()
	switch {
	case index >= uint32(m.v.caps.MaxTransformFeedbackSeparateAttribs):
		m.fail(gl.INVALID_VALUE, "binding index %d out of range", index)
	case buffer != 0 && !m.v.buffers.objects.has(buffer):
		m.fail(gl.INVALID_VALUE, "invalid buffer %d", buffer)
	case f.active:
		m.fail(gl.INVALID_OPERATION, "transform feedback is active")
	default:
		if buffer == 0 {
			delete(f.buffers, index)
		} else {
			f.buffers[index] = indexedBuffer{buffer, offset, size}
		}
		m.bindBuffer(target, buffer)
	}
}

// BindBufferBase binds a whole buffer to an indexed binding point.
func (m *Manager) BindBufferBase(target gl.Enum, index, buffer uint32) {
	defer m.call("BindBufferBase", target, index, buffer)()
	if m.checkEnum(indexedTargets, target, "indexed buffer target") {
		m.bindBufferIndexed(target, index, buffer, 0, 0)
	}
}

// BindBufferRange binds size bytes of a buffer from offset to an indexed
// binding point. Both must be multiples of 4.
func (m *Manager) BindBufferRange(target gl.Enum, index, buffer uint32, offset, size int64) {
	defer m.call("BindBufferRange", target, index, buffer, offset, size)()
	if !m.checkEnum(indexedTargets, target, "indexed buffer target") {
		return
	}
	if buffer != 0 && (offset < 0 || size <= 0 || offset%4 != 0 || size%4 != 0) {
		m.fail(gl.INVALID_VALUE, "invalid range at %d of size %d", offset, size)
		return
	}
	m.bindBufferIndexed(target, index, buffer, offset, size)
}

// GetIntegeri_v returns the buffer bound to an indexed binding point.
func (m *Manager) GetIntegeri_v(pname gl.Enum, index uint32) int64 {
	defer m.call("GetIntegeri_v", pname, index)()
	if index >= uint32(m.v.caps.MaxTransformFeedbackSeparateAttribs) {
		m.fail(gl.INVALID_VALUE, "binding index %d out of range", index)
		return 0
	}
	b := m.boundFeedback().buffers[index]
	switch pname {
	case gl.TRANSFORM_FEEDBACK_BUFFER_BINDING:
		return int64(b.buffer)
	}
	m.fail(gl.INVALID_ENUM, "invalid indexed state %v", pname)
	return 0
}

func (m *Manager) feedbackQuery(pname gl.Enum) (param, bool) {
	f := m.boundFeedback()
	switch pname {
	case gl.TRANSFORM_FEEDBACK_BINDING:
		return uints(m.v.feedback.bound), true
	case gl.TRANSFORM_FEEDBACK_ACTIVE:
		return bools(f.active), true
	case gl.TRANSFORM_FEEDBACK_PAUSED:
		return bools(f.paused), true
	}
	return param{}, false
}
