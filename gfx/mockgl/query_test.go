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
	"testing"

	"github.com/google/ion/core/assert"
	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/mockgl"
)

func genQuery(m *mockgl.Manager) uint32 {
	ids := []uint32{0}
	m.GenQueries(1, ids)
	return ids[0]
}

func TestTimerQueries(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	q := genQuery(m)
	assert.For("is query").ThatBoolean(m.IsQuery(q)).IsTrue()
	assert.For("bits").ThatInteger(int(m.GetQueryiv(gl.TIME_ELAPSED_EXT, gl.QUERY_COUNTER_BITS_EXT))).Equals(64)

	m.BeginQuery(gl.TIME_ELAPSED_EXT, q)
	expectError(assert, m, "begin", gl.NO_ERROR)
	assert.For("current").ThatInteger(int(m.GetQueryiv(gl.TIME_ELAPSED_EXT, gl.CURRENT_QUERY_EXT))).Equals(int(q))
	m.BeginQuery(gl.TIME_ELAPSED_EXT, q)
	expectError(assert, m, "begin twice", gl.INVALID_OPERATION)
	m.GetQueryObjectiv(q, gl.QUERY_RESULT_EXT)
	expectError(assert, m, "result while active", gl.INVALID_OPERATION)

	m.EndQuery(gl.TIME_ELAPSED_EXT)
	assert.For("available").ThatInteger(int(m.GetQueryObjectuiv(q, gl.QUERY_RESULT_AVAILABLE_EXT))).Equals(1)
	elapsed := m.GetQueryObjecti64v(q, gl.QUERY_RESULT_EXT)
	assert.For("elapsed").ThatInteger(int(elapsed)).IsAtLeast(1)
	assert.For("unsigned").That(m.GetQueryObjectui64v(q, gl.QUERY_RESULT_EXT)).Equals(uint64(elapsed))
	m.EndQuery(gl.TIME_ELAPSED_EXT)
	expectError(assert, m, "end twice", gl.INVALID_OPERATION)

	m.QueryCounter(q, gl.TIMESTAMP_EXT)
	first := m.GetQueryObjecti64v(q, gl.QUERY_RESULT_EXT)
	ts := []int64{0}
	m.GetInteger64v(gl.TIMESTAMP_EXT, ts)
	assert.For("timestamps increase").ThatInteger(int(ts[0])).IsAtLeast(int(first) + 1)
	disjoint := []bool{true}
	m.GetBooleanv(gl.GPU_DISJOINT_EXT, disjoint)
	assert.For("disjoint").ThatBoolean(disjoint[0]).IsFalse()

	for _, test := range []struct {
		name   string
		call   func()
		expect gl.Enum
	}{
		{"begin target", func() { m.BeginQuery(gl.TIMESTAMP_EXT, q) }, gl.INVALID_ENUM},
		{"begin unknown", func() { m.BeginQuery(gl.TIME_ELAPSED_EXT, q+1) }, gl.INVALID_OPERATION},
		{"counter target", func() { m.QueryCounter(q, gl.TIME_ELAPSED_EXT) }, gl.INVALID_ENUM},
		{"counter unknown", func() { m.QueryCounter(q+1, gl.TIMESTAMP_EXT) }, gl.INVALID_OPERATION},
		{"result unknown", func() { m.GetQueryObjectiv(q+1, gl.QUERY_RESULT_EXT) }, gl.INVALID_OPERATION},
		{"result pname", func() { m.GetQueryObjectiv(q, gl.BLEND) }, gl.INVALID_ENUM},
		{"query target", func() { m.GetQueryiv(gl.BLEND, gl.CURRENT_QUERY_EXT) }, gl.INVALID_ENUM},
		{"query pname", func() { m.GetQueryiv(gl.TIMESTAMP_EXT, gl.BLEND) }, gl.INVALID_ENUM},
	} {
		test.call()
		expectError(assert, m, test.name, test.expect)
	}

	m.BeginQuery(gl.TIME_ELAPSED_EXT, q)
	m.DeleteQueries(1, []uint32{q})
	assert.For("deleted").ThatBoolean(m.IsQuery(q)).IsFalse()
	assert.For("ended").ThatInteger(int(m.GetQueryiv(gl.TIME_ELAPSED_EXT, gl.CURRENT_QUERY_EXT))).Equals(0)
}

func TestFenceSync(t *testing.T) {
	assert := assert.To(t)
	_, m := newManager(t)
	s := m.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	assert.For("is sync").ThatBoolean(m.IsSync(s)).IsTrue()
	assert.For("type").ThatEnum(gl.Enum(m.GetSynciv(s, gl.OBJECT_TYPE))).Equals(gl.SYNC_FENCE)
	assert.For("condition").ThatEnum(gl.Enum(m.GetSynciv(s, gl.SYNC_CONDITION))).Equals(gl.SYNC_GPU_COMMANDS_COMPLETE)
	assert.For("unsignaled").ThatEnum(gl.Enum(m.GetSynciv(s, gl.SYNC_STATUS))).Equals(gl.UNSIGNALED)

	flush := uint32(gl.SYNC_FLUSH_COMMANDS_BIT)
	assert.For("first wait").ThatEnum(m.ClientWaitSync(s, flush, 0)).Equals(gl.CONDITION_SATISFIED)
	assert.For("signaled").ThatEnum(gl.Enum(m.GetSynciv(s, gl.SYNC_STATUS))).Equals(gl.SIGNALED)
	assert.For("second wait").ThatEnum(m.ClientWaitSync(s, 0, 0)).Equals(gl.ALREADY_SIGNALED)

	other := m.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	m.WaitSync(other, 0, mockgl.TimeoutIgnored)
	assert.For("server wait").ThatEnum(gl.Enum(m.GetSynciv(other, gl.SYNC_STATUS))).Equals(gl.SIGNALED)

	for _, test := range []struct {
		name   string
		call   func()
		expect gl.Enum
	}{
		{"condition", func() { m.FenceSync(gl.BLEND, 0) }, gl.INVALID_ENUM},
		{"fence flags", func() { m.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 1) }, gl.INVALID_VALUE},
		{"wait unknown", func() { m.WaitSync(s+10, 0, mockgl.TimeoutIgnored) }, gl.INVALID_OPERATION},
		{"wait flags", func() { m.WaitSync(s, 1, mockgl.TimeoutIgnored) }, gl.INVALID_VALUE},
		{"wait timeout", func() { m.WaitSync(s, 0, 10) }, gl.INVALID_VALUE},
		{"client unknown", func() { m.ClientWaitSync(s+10, 0, 0) }, gl.INVALID_VALUE},
		{"client flags", func() { m.ClientWaitSync(s, 2, 0) }, gl.INVALID_VALUE},
		{"pname", func() { m.GetSynciv(s, gl.BLEND) }, gl.INVALID_ENUM},
		{"delete zero", func() { m.DeleteSync(0) }, gl.NO_ERROR},
		{"delete unknown", func() { m.DeleteSync(s + 10) }, gl.INVALID_VALUE},
	} {
		test.call()
		expectError(assert, m, test.name, test.expect)
	}

	m.DeleteSync(s)
	assert.For("deleted").ThatBoolean(m.IsSync(s)).IsFalse()
	assert.For("failed wait").ThatEnum(m.ClientWaitSync(s, 0, 0)).Equals(gl.WAIT_FAILED)
	expectError(assert, m, "wait deleted", gl.INVALID_VALUE)
}
