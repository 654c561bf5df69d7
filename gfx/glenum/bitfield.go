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

import (
	"fmt"
	"strings"
)

// Bit is one named bit of a Bitfield.
type Bit struct {
	Name  string
	Value Enum
}

// Bitfield is an ordered list of single bit enums that can be or'ed together.
// Several bits share values with other enums, so each carries its own name.
type Bitfield []Bit

var (
	// ClearBits are the bits accepted by Clear.
	ClearBits = Bitfield{
		{"GL_COLOR_BUFFER_BIT", COLOR_BUFFER_BIT},
		{"GL_DEPTH_BUFFER_BIT", DEPTH_BUFFER_BIT},
		{"GL_STENCIL_BUFFER_BIT", STENCIL_BUFFER_BIT},
	}
	// MapBits are the access bits accepted by MapBufferRange.
	MapBits = Bitfield{
		{"GL_MAP_READ_BIT", MAP_READ_BIT},
		{"GL_MAP_WRITE_BIT", MAP_WRITE_BIT},
		{"GL_MAP_INVALIDATE_RANGE_BIT", MAP_INVALIDATE_RANGE_BIT},
		{"GL_MAP_INVALIDATE_BUFFER_BIT", MAP_INVALIDATE_BUFFER_BIT},
		{"GL_MAP_FLUSH_EXPLICIT_BIT", MAP_FLUSH_EXPLICIT_BIT},
		{"GL_MAP_UNSYNCHRONIZED_BIT", MAP_UNSYNCHRONIZED_BIT},
	}
	// ProfileBits are the bits of CONTEXT_PROFILE_MASK.
	ProfileBits = Bitfield{
		{"GL_CONTEXT_CORE_PROFILE_BIT", CONTEXT_CORE_PROFILE_BIT},
		{"GL_CONTEXT_COMPATIBILITY_PROFILE_BIT", CONTEXT_COMPATIBILITY_PROFILE_BIT},
	}
	// SyncBits are the flags accepted by ClientWaitSync.
	SyncBits = Bitfield{
		{"GL_SYNC_FLUSH_COMMANDS_BIT", SYNC_FLUSH_COMMANDS_BIT},
	}
)

// Mask returns all the bits of the field or'ed together.
func (b Bitfield) Mask() uint32 {
	m := uint32(0)
	for _, bit := range b {
		m |= uint32(bit.Value)
	}
	return m
}

// Valid returns true if v only holds bits of the field.
func (b Bitfield) Valid(v uint32) bool {
	return v&^b.Mask() == 0
}

// Format returns v as "GL_A | GL_B" if every set bit belongs to the field,
// otherwise as a hexadecimal number.
func (b Bitfield) Format(v uint32) string {
	if v == 0 || !b.Valid(v) {
		return fmt.Sprintf("0x%x", v)
	}
	names := []string{}
	for _, bit := range b {
		if v&uint32(bit.Value) != 0 {
			names = append(names, bit.Name)
		}
	}
	return strings.Join(names, " | ")
}
