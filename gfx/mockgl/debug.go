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
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emirpasic/gods/queues/circularbuffer"

	gl "github.com/google/ion/gfx/glenum"
)

// DebugMessage is a message of the debug output.
type DebugMessage struct {
	Source   gl.Enum
	Type     gl.Enum
	ID       uint32
	Severity gl.Enum
	Message  string
}

// DebugCallback receives debug output, along with the user parameter it
// was registered with.
type DebugCallback func(msg DebugMessage, userParam interface{})

// debugRule is one DebugMessageControl call. DONT_CARE matches anything;
// an empty id set matches every id.
type debugRule struct {
	source, typ, severity gl.Enum
	ids                   mapset.Set[uint32]
	enabled               bool
}

func (r debugRule) matches(msg DebugMessage) bool {
	return (r.source == gl.DONT_CARE || r.source == msg.Source) &&
		(r.typ == gl.DONT_CARE || r.typ == msg.Type) &&
		(r.severity == gl.DONT_CARE || r.severity == msg.Severity) &&
		(r.ids.Cardinality() == 0 || r.ids.Contains(msg.ID))
}

type labelKey struct {
	typ  gl.Enum
	name uint32
}

type debugState struct {
	callback  DebugCallback
	userParam interface{}
	rules     []debugRule
	// log holds messages while no callback is set. Once it is full the
	// oldest message is evicted.
	log    *circularbuffer.Queue
	labels map[labelKey]string
}

func newDebugState(size int) debugState {
	if size <= 0 {
		size = 1
	}
	return debugState{
		log:    circularbuffer.New(size),
		labels: map[labelKey]string{},
	}
}

// enabled returns true if msg passes the message filter. Low severity
// messages are off until enabled.
func (s *debugState) enabled(msg DebugMessage) bool {
	on := msg.Severity != gl.DEBUG_SEVERITY_LOW
	for _, r := range s.rules {
		if r.matches(msg) {
			on = r.enabled
		}
	}
	return on
}

func (m *Manager) debugMessage(msg DebugMessage) {
	s := &m.v.debug
	switch {
	case !s.enabled(msg):
	case s.callback != nil:
		s.callback(msg, s.userParam)
	default:
		s.log.Enqueue(msg)
	}
}

// reportAPIError sends a failed call to the debug output.
func (m *Manager) reportAPIError(text string) {
	m.debugMessage(DebugMessage{
		Source:   gl.DEBUG_SOURCE_API,
		Type:     gl.DEBUG_TYPE_ERROR,
		Severity: gl.DEBUG_SEVERITY_HIGH,
		Message:  text,
	})
}

// DebugMessageCallback sets the function receiving debug output. While it
// is nil, messages are stored in the message log.
func (m *Manager) DebugMessageCallback(cb DebugCallback, userParam interface{}) {
	defer m.call("DebugMessageCallback", cb != nil, userParam)()
	m.v.debug.callback, m.v.debug.userParam = cb, userParam
}

// DebugMessageControl enables or disables the messages matching source,
// type and severity, or the listed ids of one source and type.
func (m *Manager) DebugMessageControl(source, typ, severity gl.Enum, ids []uint32, enabled bool) {
	defer m.call("DebugMessageControl", source, typ, severity, ids, enabled)()
	if !m.checkEnum(debugSources.With(gl.DONT_CARE), source, "debug source") ||
		!m.checkEnum(debugTypes.With(gl.DONT_CARE), typ, "debug type") ||
		!m.checkEnum(debugSeverities.With(gl.DONT_CARE), severity, "debug severity") {
		return
	}
	if len(ids) > 0 {
		if source == gl.DONT_CARE || typ == gl.DONT_CARE {
			m.fail(gl.INVALID_OPERATION, "message ids need a source and a type")
			return
		}
		if severity != gl.DONT_CARE {
			m.fail(gl.INVALID_OPERATION, "message ids cannot be combined with a severity")
			return
		}
	}
	m.v.debug.rules = append(m.v.debug.rules, debugRule{
		source:   source,
		typ:      typ,
		severity: severity,
		ids:      mapset.NewThreadUnsafeSet(ids...),
		enabled:  enabled,
	})
}

// DebugMessageInsert sends an application message to the debug output.
func (m *Manager) DebugMessageInsert(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	defer m.call("DebugMessageInsert", source, typ, id, severity, message)()
	if !m.checkEnum(debugInsertSources, source, "debug source") ||
		!m.checkEnum(debugTypes, typ, "debug type") ||
		!m.checkEnum(debugSeverities, severity, "debug severity") {
		return
	}
	if len(message) >= int(m.v.caps.MaxDebugMessageLength) {
		m.fail(gl.INVALID_VALUE, "message of length %d is too long", len(message))
		return
	}
	m.debugMessage(DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message})
}

// GetDebugMessageLog removes and returns at most count messages from the
// message log, oldest first.
func (m *Manager) GetDebugMessageLog(count uint32) []DebugMessage {
	defer m.call("GetDebugMessageLog", count)()
	out := []DebugMessage{}
	for uint32(len(out)) < count {
		v, ok := m.v.debug.log.Dequeue()
		if !ok {
			break
		}
		out = append(out, v.(DebugMessage))
	}
	return out
}

// GetPointerv returns the debug callback or its user parameter.
func (m *Manager) GetPointerv(pname gl.Enum) interface{} {
	defer m.call("GetPointerv", pname)()
	switch pname {
	case gl.DEBUG_CALLBACK_FUNCTION:
		if m.v.debug.callback == nil {
			return nil
		}
		return m.v.debug.callback
	case gl.DEBUG_CALLBACK_USER_PARAM:
		return m.v.debug.userParam
	}
	m.fail(gl.INVALID_ENUM, "invalid pointer %v", pname)
	return nil
}

func (m *Manager) debugQuery(pname gl.Enum) (param, bool) {
	s := &m.v.debug
	switch pname {
	case gl.DEBUG_LOGGED_MESSAGES:
		return ints(int32(s.log.Size())), true
	case gl.DEBUG_NEXT_LOGGED_MESSAGE_LENGTH:
		if v, ok := s.log.Peek(); ok {
			return ints(int32(len(v.(DebugMessage).Message)) + 1), true
		}
		return ints(0), true
	}
	return param{}, false
}

// objectExists returns true if name is a live object of a label type.
func (m *Manager) objectExists(typ gl.Enum, name uint32) bool {
	v := m.v
	switch typ {
	case gl.TEXTURE:
		return v.textures.objects.has(name)
	case gl.FRAMEBUFFER:
		return v.framebuffers.objects.has(name)
	case gl.RENDERBUFFER:
		return v.framebuffers.renderbuffers.has(name)
	case gl.BUFFER_OBJECT:
		return v.buffers.objects.has(name)
	case gl.SAMPLER:
		return v.samplers.objects.has(name)
	case gl.VERTEX_ARRAY_OBJECT:
		return v.arrays.objects.has(name)
	case gl.PROGRAM_OBJECT:
		return v.programs.programs.has(name)
	case gl.SHADER_OBJECT:
		return v.programs.shaders.has(name)
	case gl.QUERY_OBJECT:
		return v.queries.objects.has(name)
	case gl.TRANSFORM_FEEDBACK:
		return v.feedback.objects.has(name)
	}
	return false
}

// LabelObject sets the label of an object to the first length bytes of
// label. An empty label removes it.
func (m *Manager) LabelObject(typ gl.Enum, name uint32, length int32, label string) {
	defer m.call("LabelObject", typ, name, length, label)()
	if !m.checkEnum(labelTypes, typ, "object type") {
		return
	}
	switch {
	case !m.objectExists(typ, name):
		m.fail(gl.INVALID_OPERATION, "no %v object %d", typ, name)
		return
	case length < 0:
		m.fail(gl.INVALID_VALUE, "negative label length %d", length)
		return
	}
	if int(length) < len(label) {
		label = label[:length]
	}
	key := labelKey{typ, name}
	if label == "" {
		delete(m.v.debug.labels, key)
	} else {
		m.v.debug.labels[key] = label
	}
}

// GetObjectLabel returns the label of an object, truncated to bufSize-1
// bytes.
func (m *Manager) GetObjectLabel(typ gl.Enum, name uint32, bufSize int32) string {
	defer m.call("GetObjectLabel", typ, name, bufSize)()
	if !m.checkEnum(labelTypes, typ, "object type") {
		return ""
	}
	switch {
	case bufSize < 0:
		m.fail(gl.INVALID_VALUE, "negative buffer size %d", bufSize)
		return ""
	case !m.objectExists(typ, name):
		m.fail(gl.INVALID_OPERATION, "no %v object %d", typ, name)
		return ""
	}
	return truncate(m.v.debug.labels[labelKey{typ, name}], bufSize)
}

// InsertEventMarker has no visible effect.
func (m *Manager) InsertEventMarker(marker string) {
	defer m.call("InsertEventMarker", marker)()
}

// PushGroupMarker has no visible effect.
func (m *Manager) PushGroupMarker(marker string) {
	defer m.call("PushGroupMarker", marker)()
}

// PopGroupMarker has no visible effect.
func (m *Manager) PopGroupMarker() {
	defer m.call("PopGroupMarker")()
}
