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

package assert_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/ion/core/assert"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) {
	fmt.Fprintln(&f.fatal, args...)
}
func (f *fakeT) Error(args ...interface{}) {
	fmt.Fprintln(&f.error, args...)
}
func (f *fakeT) Log(args ...interface{}) {
	fmt.Fprintln(&f.log, args...)
}

type color int

func (c color) String() string {
	switch c {
	case 1:
		return "RED"
	case 2:
		return "GREEN"
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func TestManager(t *testing.T) {
	const (
		expectLog   = "Info:manager test\n    log to info\n"
		expectError = "Error:manager test\n    log to error\n"
		expectFatal = "Critical:manager test\n    log to fatal\n"
	)
	fake := &fakeT{}
	assert.To(fake).For("manager test").Log("log to info")
	assert.To(fake).For("manager test").Error("log to error")
	assert.To(fake).For("manager test").Fatal("log to fatal")
	if fake.log.String() != expectLog {
		t.Errorf("For info got %q expected %q", fake.log.String(), expectLog)
	}
	if fake.error.String() != expectError {
		t.Errorf("For error got %q expected %q", fake.error.String(), expectError)
	}
	if fake.fatal.String() != expectFatal {
		t.Errorf("For fatal got %q expected %q", fake.fatal.String(), expectFatal)
	}
}

func TestPassingAssertionsAreSilent(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	a.For("int").ThatInteger(3).IsBetween(1, 4)
	a.For("float").ThatFloat(0.25).Equals(0.2501, 0.001)
	a.For("bool").ThatBoolean(true).IsTrue()
	a.For("string").ThatString([]byte("GL_TEXTURE_2D")).HasPrefix("GL_")
	a.For("slice").ThatSlice([]int{1, 2}).Equals([]int{1, 2})
	a.For("floats").ThatSlice([]float32{0.1, 1}).EqualsWithin([]float64{0.1, 1}, 1e-6)
	a.For("enum").ThatEnum(color(1)).IsOneOf(color(2), color(1))
	a.For("value").That([]string{"x"}).DeepEquals([]string{"x"})
	a.For("error").ThatError(nil).Succeeded()
	if s := fake.error.String() + fake.fatal.String(); s != "" {
		t.Errorf("Unexpected failure output %q", s)
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	a.For("enum").ThatEnum(color(1)).Equals(color(2))
	a.For("slice").ThatSlice([]int{1}).IsEmpty()
	a.For("error").ThatError(errors.New("boom")).Succeeded()
	a.For("deep").That(map[int]int{1: 2}).DeepEquals(map[int]int{1: 3})
	got := fake.error.String()
	for _, want := range []string{"RED", "GREEN", "empty", "boom", "deep"} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("Failure output %q missing %q", got, want)
		}
	}
}

func ExampleOnInteger_Equals() {
	assert.To(nil).For("count").ThatInteger(1).Equals(2)
	// Output:
	// Error:count
	//     Got       1
	//     Expect == 2
}
