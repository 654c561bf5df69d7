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

package shaderinput

import (
	"strconv"
	"strings"
)

// ParseName splits an input name of the form "name" or "name[N]" into the
// base name and the array index. ok is false for names with unbalanced or
// misplaced brackets, or a non-numeric index.
func ParseName(s string) (base string, index int, ok bool) {
	lb := strings.IndexByte(s, '[')
	rb := strings.IndexByte(s, ']')
	switch {
	case s == "":
		return "", 0, false
	case lb < 0 && rb < 0:
		return s, 0, true
	case lb <= 0 || rb != len(s)-1 || rb < lb:
		return "", 0, false
	}
	digits := s[lb+1 : rb]
	if digits == "" || strings.ContainsAny(digits, "[]+-") {
		return "", 0, false
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	return s[:lb], i, true
}
