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

// Errors is the set of values GetError can return.
var Errors = NewSet(
	NO_ERROR,
	INVALID_ENUM,
	INVALID_VALUE,
	INVALID_OPERATION,
	OUT_OF_MEMORY,
	INVALID_FRAMEBUFFER_OPERATION,
)

// ErrorString returns the human readable description of a GL error code.
func ErrorString(e Enum) string {
	switch e {
	case NO_ERROR:
		return "no error"
	case INVALID_ENUM:
		return "invalid enumerant"
	case INVALID_VALUE:
		return "invalid value"
	case INVALID_OPERATION:
		return "invalid operation"
	case OUT_OF_MEMORY:
		return "out of memory"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	default:
		return "unknown error"
	}
}
