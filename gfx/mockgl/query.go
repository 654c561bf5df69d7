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

// tick is how far the query clock advances on each timer operation, in
// nanoseconds.
const tick = 1000

type query struct {
	target    gl.Enum
	begin     int64
	result    int64
	available bool
}

// queryState holds the disjoint timer queries. Time is a counter advanced
// by every timer operation, so elapsed times and timestamps are always
// positive and increasing.
type queryState struct {
	objects *objectTable[query]
	active  uint32
	clock   int64
}

func newQueryState() queryState {
	return queryState{objects: newObjectTable[query]()}
}

func (s *queryState) now() int64 {
	s.clock += tick
	return s.clock
}

var (
	queryTargets       = gl.NewSet(gl.TIME_ELAPSED_EXT, gl.TIMESTAMP_EXT)
	queryResultParams  = gl.NewSet(gl.QUERY_RESULT_EXT, gl.QUERY_RESULT_AVAILABLE_EXT)
	queryCounterTarget = gl.NewSet(gl.TIMESTAMP_EXT)
	queryBeginTargets  = gl.NewSet(gl.TIME_ELAPSED_EXT)
)

// GenQueries allocates n query names into ids.
func (m *Manager) GenQueries(n int32, ids []uint32) {
	defer m.call("GenQueries", n, ids)()
	genNames(m, m.v.queries.objects, n, ids, func() *query { return &query{} })
}

// DeleteQueries deletes queries. Deleting the active query ends it.
func (m *Manager) DeleteQueries(n int32, ids []uint32) {
	defer m.call("DeleteQueries", n, ids)()
	s := &m.v.queries
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *query) {
		if s.active == name {
			s.active = 0
		}
	})
}

// IsQuery returns true if name is a query.
func (m *Manager) IsQuery(name uint32) bool {
	defer m.call("IsQuery", name)()
	return m.v.queries.objects.has(name)
}

// BeginQuery starts timing with the query name.
func (m *Manager) BeginQuery(target gl.Enum, name uint32) {
	defer m.call("BeginQuery", target, name)()
	s := &m.v.queries
	if !m.checkEnum(queryBeginTargets, target, "query target") {
		return
	}
	q := s.objects.get(name)
	switch {
	case s.active != 0:
		m.fail(gl.INVALID_OPERATION, "query %d is already active", s.active)
	case q == nil:
		m.fail(gl.INVALID_OPERATION, "invalid query %d", name)
	default:
		*q = query{target: target, begin: s.now()}
		s.active = name
	}
}

// EndQuery stops the active query, making its result available.
func (m *Manager) EndQuery(target gl.Enum) {
	defer m.call("EndQuery", target)()
	s := &m.v.queries
	if !m.checkEnum(queryBeginTargets, target, "query target") {
		return
	}
	if s.active == 0 {
		m.fail(gl.INVALID_OPERATION, "no active query")
		return
	}
	q := s.objects.get(s.active)
	q.result, q.available = s.now()-q.begin, true
	s.active = 0
}

// QueryCounter records the current time in the query name.
func (m *Manager) QueryCounter(name uint32, target gl.Enum) {
	defer m.call("QueryCounter", name, target)()
	s := &m.v.queries
	if !m.checkEnum(queryCounterTarget, target, "query target") {
		return
	}
	q := s.objects.get(name)
	switch {
	case q == nil:
		m.fail(gl.INVALID_OPERATION, "invalid query %d", name)
	case name == s.active:
		m.fail(gl.INVALID_OPERATION, "query %d is active", name)
	default:
		*q = query{target: target, result: s.now(), available: true}
	}
}

// GetQueryiv returns a parameter of a query target.
func (m *Manager) GetQueryiv(target, pname gl.Enum) int32 {
	defer m.call("GetQueryiv", target, pname)()
	if !m.checkEnum(queryTargets, target, "query target") {
		return 0
	}
	switch pname {
	case gl.QUERY_COUNTER_BITS_EXT:
		return 64
	case gl.CURRENT_QUERY_EXT:
		if target == gl.TIME_ELAPSED_EXT {
			return int32(m.v.queries.active)
		}
		return 0
	}
	m.fail(gl.INVALID_ENUM, "invalid query parameter %v", pname)
	return 0
}

// queryObject returns the result or availability of a finished query.
func (m *Manager) queryObject(name uint32, pname gl.Enum) int64 {
	s := &m.v.queries
	q := s.objects.get(name)
	switch {
	case q == nil:
		m.fail(gl.INVALID_OPERATION, "invalid query %d", name)
		return 0
	case name == s.active:
		m.fail(gl.INVALID_OPERATION, "query %d is active", name)
		return 0
	case !m.checkEnum(queryResultParams, pname, "query parameter"):
		return 0
	case pname == gl.QUERY_RESULT_AVAILABLE_EXT:
		if q.available {
			return 1
		}
		return 0
	}
	return q.result
}

// GetQueryObjectiv returns the result or availability of a query.
func (m *Manager) GetQueryObjectiv(name uint32, pname gl.Enum) int32 {
	defer m.call("GetQueryObjectiv", name, pname)()
	return int32(m.queryObject(name, pname))
}

// GetQueryObjectuiv returns the result or availability of a query.
func (m *Manager) GetQueryObjectuiv(name uint32, pname gl.Enum) uint32 {
	defer m.call("GetQueryObjectuiv", name, pname)()
	return uint32(m.queryObject(name, pname))
}

// GetQueryObjecti64v returns the result or availability of a query.
func (m *Manager) GetQueryObjecti64v(name uint32, pname gl.Enum) int64 {
	defer m.call("GetQueryObjecti64v", name, pname)()
	return m.queryObject(name, pname)
}

// GetQueryObjectui64v returns the result or availability of a query.
func (m *Manager) GetQueryObjectui64v(name uint32, pname gl.Enum) uint64 {
	defer m.call("GetQueryObjectui64v", name, pname)()
	return uint64(m.queryObject(name, pname))
}

func (m *Manager) queryQuery(pname gl.Enum) (param, bool) {
	switch pname {
	case gl.TIMESTAMP_EXT:
		return int64s(m.v.queries.now()), true
	case gl.GPU_DISJOINT_EXT:
		return bools(false), true
	}
	return param{}, false
}
