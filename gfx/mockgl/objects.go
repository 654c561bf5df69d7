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
	"golang.org/x/exp/slices"

	gl "github.com/google/ion/gfx/glenum"
)

// objectTable issues names for one kind of GL object. Names start at 1,
// increase monotonically and are never reused, even after deletion.
type objectTable[T any] struct {
	last    uint32
	live    map[uint32]*T
	deleted map[uint32]struct{}
}

func newObjectTable[T any]() *objectTable[T] {
	return &objectTable[T]{
		live:    map[uint32]*T{},
		deleted: map[uint32]struct{}{},
	}
}

// gen allocates a new name and stores o under it.
func (t *objectTable[T]) gen(o *T) uint32 {
	t.last++
	t.live[t.last] = o
	return t.last
}

// get returns the live object with the given name, or nil.
func (t *objectTable[T]) get(name uint32) *T {
	if name == 0 {
		return nil
	}
	return t.live[name]
}

func (t *objectTable[T]) has(name uint32) bool {
	return t.get(name) != nil
}

// wasDeleted returns true if name was issued and then deleted.
func (t *objectTable[T]) wasDeleted(name uint32) bool {
	_, ok := t.deleted[name]
	return ok
}

// remove deletes the object, returning false if it was not live.
func (t *objectTable[T]) remove(name uint32) bool {
	if !t.has(name) {
		return false
	}
	delete(t.live, name)
	t.deleted[name] = struct{}{}
	return true
}

// names returns the live names in ascending order.
func (t *objectTable[T]) names() []uint32 {
	names := maps.Keys(t.live)
	slices.Sort(names)
	return names
}

func (t *objectTable[T]) len() int { return len(t.live) }

// genNames allocates n objects into ids, raising INVALID_VALUE if n is
// negative and INVALID_OPERATION if the current call is forced to fail.
func genNames[T any](m *Manager, t *objectTable[T], n int32, ids []uint32, create func() *T) {
	if n < 0 {
		m.fail(gl.INVALID_VALUE, "negative count %d", n)
		return
	}
	if m.forced(m.current) {
		m.fail(gl.INVALID_OPERATION, "forced failure")
		return
	}
	for i := 0; i < int(n) && i < len(ids); i++ {
		ids[i] = t.gen(create())
	}
}

// deleteNames deletes the live objects named in ids, calling release for
// each before it is removed. Unknown names are ignored.
func deleteNames[T any](m *Manager, t *objectTable[T], n int32, ids []uint32, release func(name uint32, o *T)) {
	if n < 0 {
		m.fail(gl.INVALID_VALUE, "negative count %d", n)
		return
	}
	for i := 0; i < int(n) && i < len(ids); i++ {
		if o := t.get(ids[i]); o != nil {
			if release != nil {
				release(ids[i], o)
			}
			t.remove(ids[i])
		}
	}
}
