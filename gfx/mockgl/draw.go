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
	gl "github.com/google/ion/gfx/glenum"
)

// checkDraw validates the arguments shared by every draw call.
func (m *Manager) checkDraw(mode gl.Enum, count, instances int32) bool {
	if !m.checkEnum(drawModes, mode, "draw mode") {
		return false
	}
	if count < 0 || instances < 0 {
		m.fail(gl.INVALID_VALUE, "negative count %d or instance count %d", count, instances)
		return false
	}
	return true
}

// draw runs the checks that depend on context state rather than the
// arguments of the call.
func (m *Manager) draw(mode gl.Enum) {
	if m.checkFeedbackDraw(mode) {
		m.checkDrawFramebuffer()
	}
}

// DrawArrays draws count vertices from first.
func (m *Manager) DrawArrays(mode gl.Enum, first, count int32) {
	defer m.call("DrawArrays", mode, first, count)()
	if m.checkDraw(mode, count, 0) {
		m.draw(mode)
	}
}

// DrawElements draws count indices read from the element array buffer at
// offset.
func (m *Manager) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset uintptr) {
	defer m.call("DrawElements", mode, count, typ, offset)()
	if m.checkDraw(mode, count, 0) && m.checkEnum(indexTypes, typ, "index type") {
		m.draw(mode)
	}
}

// DrawArraysInstanced draws instances copies of count vertices.
func (m *Manager) DrawArraysInstanced(mode gl.Enum, first, count, instances int32) {
	defer m.call("DrawArraysInstanced", mode, first, count, instances)()
	if m.checkDraw(mode, count, instances) {
		m.draw(mode)
	}
}

// DrawElementsInstanced draws instances copies of count indices.
func (m *Manager) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset uintptr, instances int32) {
	defer m.call("DrawElementsInstanced", mode, count, typ, offset, instances)()
	if m.checkDraw(mode, count, instances) && m.checkEnum(indexTypes, typ, "index type") {
		m.draw(mode)
	}
}

// Clear clears the buffers selected by mask in the draw framebuffer.
func (m *Manager) Clear(mask uint32) {
	defer m.call("Clear", bitfieldArg{gl.ClearBits, mask})()
	if !gl.ClearBits.Valid(mask) {
		m.fail(gl.INVALID_VALUE, "invalid clear mask 0x%x", mask)
		return
	}
	m.checkDrawFramebuffer()
}

// Flush has no effect other than being counted and traced.
func (m *Manager) Flush() {
	defer m.call("Flush")()
}

// Finish has no effect other than being counted and traced.
func (m *Manager) Finish() {
	defer m.call("Finish")()
}
