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
	"strings"
	"testing"

	"github.com/google/ion/core/assert"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

func TestDebugMessageLog(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	m.Enable(gl.FRAMEBUFFER)
	expectError(assert, m, "bad enable", gl.INVALID_ENUM)
	assert.For("logged").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(1)

	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 7, gl.DEBUG_SEVERITY_NOTIFICATION, "frame")
	assert.For("inserted").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(2)
	next := int(getInteger(m, gl.DEBUG_NEXT_LOGGED_MESSAGE_LENGTH))

	msgs := m.GetDebugMessageLog(1)
	assert.For("count").ThatSlice(msgs).IsLength(1)
	assert.For("source").ThatEnum(msgs[0].Source).Equals(gl.DEBUG_SOURCE_API)
	assert.For("type").ThatEnum(msgs[0].Type).Equals(gl.DEBUG_TYPE_ERROR)
	assert.For("severity").ThatEnum(msgs[0].Severity).Equals(gl.DEBUG_SEVERITY_HIGH)
	assert.For("message").ThatString(msgs[0].Message).Contains("Enable")
	assert.For("next length").ThatInteger(next).Equals(len(msgs[0].Message) + 1)

	msgs = m.GetDebugMessageLog(10)
	assert.For("rest").ThatSlice(msgs).IsLength(1)
	assert.For("id").ThatInteger(int(msgs[0].ID)).Equals(7)
	assert.For("text").ThatString(msgs[0].Message).Equals("frame")
	assert.For("drained").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(0)
	assert.For("no next").ThatInteger(int(getInteger(m, gl.DEBUG_NEXT_LOGGED_MESSAGE_LENGTH))).Equals(0)

	max := int(getInteger(m, gl.MAX_DEBUG_LOGGED_MESSAGES))
	for i := 0; i < max+2; i++ {
		m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, uint32(i), gl.DEBUG_SEVERITY_MEDIUM, "spam")
	}
	assert.For("full").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(max)
	msgs = m.GetDebugMessageLog(uint32(max + 2))
	assert.For("full log").ThatSlice(msgs).IsLength(max)
	assert.For("oldest evicted").ThatInteger(int(msgs[0].ID)).Equals(2)
	assert.For("newest kept").ThatInteger(int(msgs[max-1].ID)).Equals(max + 1)
}

func TestDebugMessageInsertErrors(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	long := strings.Repeat("x", int(getInteger(m, gl.MAX_DEBUG_MESSAGE_LENGTH)))
	for _, test := range []struct {
		name             string
		source, typ, sev gl.Enum
		message          string
		expect           gl.Enum
	}{
		{"third party", gl.DEBUG_SOURCE_THIRD_PARTY, gl.DEBUG_TYPE_PORTABILITY, gl.DEBUG_SEVERITY_HIGH, "ok", gl.NO_ERROR},
		{"api source", gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_OTHER, gl.DEBUG_SEVERITY_HIGH, "no", gl.INVALID_ENUM},
		{"type", gl.DEBUG_SOURCE_APPLICATION, gl.BLEND, gl.DEBUG_SEVERITY_HIGH, "no", gl.INVALID_ENUM},
		{"severity", gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, gl.DONT_CARE, "no", gl.INVALID_ENUM},
		{"too long", gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, gl.DEBUG_SEVERITY_HIGH, long, gl.INVALID_VALUE},
		{"longest", gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, gl.DEBUG_SEVERITY_HIGH, long[1:], gl.NO_ERROR},
	} {
		m.DebugMessageInsert(test.source, test.typ, 1, test.sev, test.message)
		expectError(assert, m, test.name, test.expect)
	}
}

func TestDebugMessageCallback(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	got := []mockgl.DebugMessage{}
	var param interface{}
	cb := func(msg mockgl.DebugMessage, userParam interface{}) {
		got = append(got, msg)
		param = userParam
	}
	m.DebugMessageCallback(cb, "user")
	assert.For("function").That(m.GetPointerv(gl.DEBUG_CALLBACK_FUNCTION) != nil).Equals(true)
	assert.For("param").That(m.GetPointerv(gl.DEBUG_CALLBACK_USER_PARAM)).Equals("user")
	m.GetPointerv(gl.BLEND)
	expectError(assert, m, "pointer", gl.INVALID_ENUM)

	assert.For("delivered").ThatSlice(got).IsLength(1)
	assert.For("user param").That(param).Equals("user")
	assert.For("not logged").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(0)

	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 3, gl.DEBUG_SEVERITY_LOW, "quiet")
	assert.For("low severity off").ThatSlice(got).IsLength(1)

	m.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DEBUG_SEVERITY_LOW, nil, true)
	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 3, gl.DEBUG_SEVERITY_LOW, "quiet")
	assert.For("low severity on").ThatSlice(got).IsLength(2)

	m.DebugMessageControl(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, gl.DONT_CARE, []uint32{3}, false)
	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 3, gl.DEBUG_SEVERITY_HIGH, "muted")
	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 4, gl.DEBUG_SEVERITY_HIGH, "heard")
	assert.For("id filter").ThatSlice(got).IsLength(3)
	assert.For("heard").ThatString(got[2].Message).Equals("heard")

	m.DebugMessageCallback(nil, nil)
	assert.For("no function").That(m.GetPointerv(gl.DEBUG_CALLBACK_FUNCTION)).IsNil()
	m.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 4, gl.DEBUG_SEVERITY_HIGH, "logged")
	assert.For("back to the log").ThatInteger(int(getInteger(m, gl.DEBUG_LOGGED_MESSAGES))).Equals(1)
}

func TestDebugMessageControlErrors(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	for _, test := range []struct {
		name             string
		source, typ, sev gl.Enum
		ids              []uint32
		expect           gl.Enum
	}{
		{"everything", gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, nil, gl.NO_ERROR},
		{"ids", gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, gl.DONT_CARE, []uint32{1, 2}, gl.NO_ERROR},
		{"source", gl.BLEND, gl.DONT_CARE, gl.DONT_CARE, nil, gl.INVALID_ENUM},
		{"type", gl.DONT_CARE, gl.BLEND, gl.DONT_CARE, nil, gl.INVALID_ENUM},
		{"severity", gl.DONT_CARE, gl.DONT_CARE, gl.BLEND, nil, gl.INVALID_ENUM},
		{"ids without source", gl.DONT_CARE, gl.DEBUG_TYPE_ERROR, gl.DONT_CARE, []uint32{1}, gl.INVALID_OPERATION},
		{"ids with severity", gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, gl.DEBUG_SEVERITY_HIGH, []uint32{1}, gl.INVALID_OPERATION},
	} {
		m.DebugMessageControl(test.source, test.typ, test.sev, test.ids, true)
		expectError(assert, m, test.name, test.expect)
	}
}

func TestObjectLabels(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	tex := genTexture(m, gl.TEXTURE_2D)
	m.LabelObject(gl.TEXTURE, tex, 5, "sky box")
	assert.For("label").ThatString(m.GetObjectLabel(gl.TEXTURE, tex, 64)).Equals("sky b")
	assert.For("truncated").ThatString(m.GetObjectLabel(gl.TEXTURE, tex, 3)).Equals("sk")
	assert.For("other kind").ThatString(m.GetObjectLabel(gl.SAMPLER, tex, 64)).Equals("")
	expectError(assert, m, "no sampler", gl.INVALID_OPERATION)

	prog := m.CreateProgram()
	m.LabelObject(gl.PROGRAM_OBJECT, prog, 6, "shader")
	assert.For("program").ThatString(m.GetObjectLabel(gl.PROGRAM_OBJECT, prog, 64)).Equals("shader")
	m.LabelObject(gl.PROGRAM_OBJECT, prog, 0, "")
	assert.For("removed").ThatString(m.GetObjectLabel(gl.PROGRAM_OBJECT, prog, 64)).Equals("")

	m.LabelObject(gl.BLEND, tex, 1, "x")
	expectError(assert, m, "type", gl.INVALID_ENUM)
	m.LabelObject(gl.BUFFER_OBJECT, 5, 1, "x")
	expectError(assert, m, "no buffer", gl.INVALID_OPERATION)
	m.LabelObject(gl.TEXTURE, tex, -1, "x")
	expectError(assert, m, "length", gl.INVALID_VALUE)
	m.GetObjectLabel(gl.TEXTURE, tex, -1)
	expectError(assert, m, "buffer size", gl.INVALID_VALUE)
}

func TestMarkers(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	m.ResetCallCount()
	m.PushGroupMarker("group")
	m.InsertEventMarker("event")
	m.PopGroupMarker()
	expectError(assert, m, "markers", gl.NO_ERROR)
	assert.For("counted").ThatInteger(m.CallCount()).Equals(3)
}
