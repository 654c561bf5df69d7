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

// Package fault holds the error types shared by the ion packages.
package fault

// Const is the type for constant error values.
// Sentinel errors that tests compare against with == are declared as
//
//	const ErrSomething = fault.Const("something went wrong")
type Const string

func (e Const) Error() string { return string(e) }

// InvalidErrorType is returned by From when the value is not an error.
const InvalidErrorType = Const("Invalid type for error")

// From converts a recovered panic value into an error.
func From(value interface{}) error {
	switch err := value.(type) {
	case nil:
		return nil
	case error:
		return err
	case string:
		return Const(err)
	default:
		return InvalidErrorType
	}
}
