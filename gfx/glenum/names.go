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

// Package glenum holds the GL enumerant vocabulary used by the mock GL
// implementation: the numeric values, their symbolic names, bitfield
// decoding and the sets used to validate enum arguments.
package glenum

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	byName  = map[string]Enum{}
	byValue = map[Enum][]string{}
)

func init() {
	for _, e := range table {
		byName[e.name] = e.value
		byValue[e.value] = append(byValue[e.value], e.name)
	}
}

// String returns the GL_ name of the enum, or its hexadecimal value if the
// value has no name.
func (e Enum) String() string {
	if names, ok := byValue[e]; ok {
		return names[0]
	}
	return fmt.Sprintf("0x%X", uint32(e))
}

// Known returns true if the value has a symbolic name.
func (e Enum) Known() bool {
	_, ok := byValue[e]
	return ok
}

// Lookup returns the enum with the given name. The GL_ prefix is optional.
func Lookup(name string) (Enum, bool) {
	if !strings.HasPrefix(name, "GL_") {
		name = "GL_" + name
	}
	e, ok := byName[name]
	return e, ok
}

// ByValue returns every name that has the value v, in declaration order.
func ByValue(v Enum) []string {
	return slices.Clone(byValue[v])
}

// Names returns every known name, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
