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

// ComponentBits is the number of bits each component of a sized internal
// format holds.
type ComponentBits struct {
	Red, Green, Blue, Alpha int
	Depth, Stencil          int
}

// HasColor returns true if any color component is present.
func (b ComponentBits) HasColor() bool {
	return b.Red+b.Green+b.Blue+b.Alpha > 0
}

// Covers returns true if every component present in o is also present in b
// with at least as many bits.
func (b ComponentBits) Covers(o ComponentBits) bool {
	has := func(mine, theirs int) bool { return mine >= theirs }
	return has(b.Red, o.Red) && has(b.Green, o.Green) && has(b.Blue, o.Blue) &&
		has(b.Alpha, o.Alpha) && has(b.Depth, o.Depth) && has(b.Stencil, o.Stencil)
}

// Color returns b with the depth and stencil sizes cleared.
func (b ComponentBits) Color() ComponentBits {
	b.Depth, b.Stencil = 0, 0
	return b
}

var formatBits = map[Enum]ComponentBits{
	RGB565:             {Red: 5, Green: 6, Blue: 5},
	RGBA4:              {Red: 4, Green: 4, Blue: 4, Alpha: 4},
	RGB5_A1:            {Red: 5, Green: 5, Blue: 5, Alpha: 1},
	RGB8:               {Red: 8, Green: 8, Blue: 8},
	RGBA8:              {Red: 8, Green: 8, Blue: 8, Alpha: 8},
	R8:                 {Red: 8},
	RG8:                {Red: 8, Green: 8},
	DEPTH_COMPONENT16:  {Depth: 16},
	DEPTH_COMPONENT24:  {Depth: 24},
	DEPTH_COMPONENT32F: {Depth: 32},
	STENCIL_INDEX8:     {Stencil: 8},
	DEPTH24_STENCIL8:   {Depth: 24, Stencil: 8},
	DEPTH32F_STENCIL8:  {Depth: 32, Stencil: 8},
}

// RenderbufferFormats is the set of internal formats RenderbufferStorage
// accepts.
var RenderbufferFormats = NewSet(
	RGB565, RGBA4, RGB5_A1, RGB8, RGBA8, R8, RG8,
	DEPTH_COMPONENT16, DEPTH_COMPONENT24, DEPTH_COMPONENT32F,
	STENCIL_INDEX8, DEPTH24_STENCIL8, DEPTH32F_STENCIL8,
)

// FormatBits returns the component sizes of a sized internal format.
func FormatBits(format Enum) (ComponentBits, bool) {
	b, ok := formatBits[format]
	return b, ok
}
