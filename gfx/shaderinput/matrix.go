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

// Matrix4 is a 4x4 float matrix stored in row-major order.
type Matrix4 [4][4]float32

// Identity4 is the 4x4 identity matrix.
var Identity4 = Matrix4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Mul returns the product m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r][k] * o[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// CombineMatrices is a CombineFunc that accumulates transformations by
// multiplying the old matrix by the new one.
func CombineMatrices(old, new Value) Value {
	return old.(Matrix4).Mul(new.(Matrix4))
}
