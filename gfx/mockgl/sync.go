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

// TimeoutIgnored is the only timeout WaitSync accepts.
const TimeoutIgnored uint64 = 0xffffffffffffffff

// Sync is the handle of a fence sync object. The zero value is no object.
type Sync uint32

type fence struct {
	signaled bool
}

// syncState holds the fences. A fence is signaled by the first wait on it.
type syncState struct {
	objects *objectTable[fence]
}

func newSyncState() syncState {
	return syncState{objects: newObjectTable[fence]()}
}

// FenceSync returns a new unsignaled fence.
func (m *Manager) FenceSync(condition gl.Enum, flags uint32) Sync {
	defer m.call("FenceSync", condition, flags)()
	switch {
	case condition != gl.SYNC_GPU_COMMANDS_COMPLETE:
		m.fail(gl.INVALID_ENUM, "invalid sync condition %v", condition)
		return 0
	case flags != 0:
		m.fail(gl.INVALID_VALUE, "sync flags must be 0, got 0x%x", flags)
		return 0
	case m.forced(m.current):
		m.fail(gl.INVALID_OPERATION, "forced failure")
		return 0
	}
	return Sync(m.v.syncs.objects.gen(&fence{}))
}

// DeleteSync deletes a fence. Deleting 0 is ignored.
func (m *Manager) DeleteSync(s Sync) {
	defer m.call("DeleteSync", s)()
	if s != 0 && !m.v.syncs.objects.remove(uint32(s)) {
		m.fail(gl.INVALID_VALUE, "invalid sync %d", s)
	}
}

// IsSync returns true if s is a fence.
func (m *Manager) IsSync(s Sync) bool {
	defer m.call("IsSync", s)()
	return m.v.syncs.objects.has(uint32(s))
}

// WaitSync signals a fence as if the server had waited on it.
func (m *Manager) WaitSync(s Sync, flags uint32, timeout uint64) {
	defer m.call("WaitSync", s, flags, timeout)()
	f := m.v.syncs.objects.get(uint32(s))
	switch {
	case f == nil:
		m.fail(gl.INVALID_OPERATION, "invalid sync %d", s)
	case flags != 0:
		m.fail(gl.INVALID_VALUE, "sync flags must be 0, got 0x%x", flags)
	case timeout != TimeoutIgnored:
		m.fail(gl.INVALID_VALUE, "timeout must be ignored, got %d", timeout)
	default:
		f.signaled = true
	}
}

// ClientWaitSync signals a fence, returning ALREADY_SIGNALED if it was
// signaled before the call.
func (m *Manager) ClientWaitSync(s Sync, flags uint32, timeout uint64) gl.Enum {
	defer m.call("ClientWaitSync", s, bitfieldArg{gl.SyncBits, flags}, timeout)()
	f := m.v.syncs.objects.get(uint32(s))
	switch {
	case f == nil:
		m.fail(gl.INVALID_VALUE, "invalid sync %d", s)
		return gl.WAIT_FAILED
	case !gl.SyncBits.Valid(flags):
		m.fail(gl.INVALID_VALUE, "invalid sync flags 0x%x", flags)
		return gl.WAIT_FAILED
	case f.signaled:
		return gl.ALREADY_SIGNALED
	}
	f.signaled = true
	return gl.CONDITION_SATISFIED
}

// GetSynciv returns a property of a fence.
func (m *Manager) GetSynciv(s Sync, pname gl.Enum) int32 {
	defer m.call("GetSynciv", s, pname)()
	f := m.v.syncs.objects.get(uint32(s))
	if f == nil {
		m.fail(gl.INVALID_VALUE, "invalid sync %d", s)
		return 0
	}
	switch pname {
	case gl.OBJECT_TYPE:
		return int32(gl.SYNC_FENCE)
	case gl.SYNC_STATUS:
		if f.signaled {
			return int32(gl.SIGNALED)
		}
		return int32(gl.UNSIGNALED)
	case gl.SYNC_CONDITION:
		return int32(gl.SYNC_GPU_COMMANDS_COMPLETE)
	case gl.SYNC_FLAGS:
		return 0
	}
	m.fail(gl.INVALID_ENUM, "invalid sync parameter %v", pname)
	return 0
}
