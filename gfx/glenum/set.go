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

package glenum

import mapset "github.com/deckarep/golang-set/v2"

// Set is an immutable set of enums, used to check that an argument is one of
// the values allowed for it.
type Set struct {
	set mapset.Set[Enum]
}

// NewSet returns a set holding values.
func NewSet(values ...Enum) Set {
	return Set{mapset.NewThreadUnsafeSet(values...)}
}

// Contains returns true if e is in the set.
func (s Set) Contains(e Enum) bool {
	return s.set != nil && s.set.Contains(e)
}

// Len returns the number of enums in the set.
func (s Set) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Cardinality()
}

// Union returns a new set holding the members of s and o.
func (s Set) Union(o Set) Set {
	switch {
	case s.set == nil:
		return o
	case o.set == nil:
		return s
	}
	return Set{s.set.Union(o.set)}
}

// With returns a new set holding the members of s and values.
func (s Set) With(values ...Enum) Set {
	return s.Union(NewSet(values...))
}
