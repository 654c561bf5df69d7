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

package assert

import "fmt"

// OnEnum is the result of calling ThatEnum on an Assertion.
// It provides assertion tests for named enumerated values such as GL
// constants, printing the names of both sides on failure.
type OnEnum struct {
	Assertion
	value fmt.Stringer
}

// ThatEnum returns an OnEnum for enumerated value assertions.
func (a Assertion) ThatEnum(value fmt.Stringer) OnEnum {
	return OnEnum{Assertion: a, value: value}
}

// Equals asserts that the supplied enum is equal to the expected enum.
func (o OnEnum) Equals(expect fmt.Stringer) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// NotEquals asserts that the supplied enum is not equal to the test enum.
func (o OnEnum) NotEquals(test fmt.Stringer) bool {
	return o.Compare(o.value, "!=", test).Test(o.value != test)
}

// IsOneOf asserts that the supplied enum is one of the listed enums.
func (o OnEnum) IsOneOf(set ...fmt.Stringer) bool {
	values := make([]interface{}, len(set))
	found := false
	for i, s := range set {
		values[i] = s
		found = found || s == o.value
	}
	return o.Compare(o.value, "one of", values...).Test(found)
}
