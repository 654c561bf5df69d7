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
	"fmt"
	"strconv"
	"strings"

	gl "github.com/google/ion/gfx/glenum"
)

// bitfieldArg is a bitfield argument, traced by the names of its bits.
type bitfieldArg struct {
	field gl.Bitfield
	value uint32
}

// columns is a matrix argument, traced column by column.
type columns struct {
	n      int
	values []float32
}

// formatCall returns the trace line of a call, such as
// "Clear(GL_COLOR_BUFFER_BIT | GL_DEPTH_BUFFER_BIT)".
func formatCall(name string, args []interface{}) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatArg(a)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func formatArg(a interface{}) string {
	switch a := a.(type) {
	case nil:
		return "NULL"
	case gl.Enum:
		return a.String()
	case bitfieldArg:
		return a.field.Format(a.value)
	case bool:
		if a {
			return "GL_TRUE"
		}
		return "GL_FALSE"
	case uint32:
		return fmt.Sprintf("0x%x", a)
	case uintptr:
		return fmt.Sprintf("0x%x", a)
	case float32:
		return strconv.FormatFloat(float64(a), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(a, 'g', -1, 64)
	case string:
		return strconv.Quote(a)
	case []string:
		quoted := make([]string, len(a))
		for i, s := range a {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case []float32:
		if a == nil {
			return "NULL"
		}
		return "[" + joinFloats(a) + "]"
	case columns:
		if a.values == nil {
			return "NULL"
		}
		cols := []string{}
		for i := 0; i < len(a.values); i += a.n {
			end := i + a.n
			if end > len(a.values) {
				end = len(a.values)
			}
			cols = append(cols, joinFloats(a.values[i:end]))
		}
		return "[" + strings.Join(cols, " | ") + "]"
	case []byte:
		if a == nil {
			return "NULL"
		}
		return fmt.Sprintf("[%d bytes]", len(a))
	default:
		return fmt.Sprint(a)
	}
}

func joinFloats(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return strings.Join(parts, "; ")
}
