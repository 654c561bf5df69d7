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

// Package mockgl is a software model of an OpenGL / ES context. It keeps
// the complete context state, validates every call against the error
// conditions of the GL specifications and reports failures through the GL
// error register and debug output, so that rendering code can be tested
// without a GPU.
package mockgl

import (
	"context"
	"fmt"
	"io"

	"github.com/google/ion/core/log"
	gl "github.com/google/ion/gfx/glenum"
)

// Manager is the GL entry point surface of a Visual. Several managers may
// be created on one visual; they share all context state but each has its
// own tracing, error checking and function group settings.
type Manager struct {
	ctx         context.Context
	v           *Visual
	trace       io.Writer
	checkErrors bool
	info        glInfo
	current     string
}

// New returns a manager of the visual. Messages are logged to ctx.
func New(ctx context.Context, v *Visual) *Manager {
	m := &Manager{ctx: ctx, v: v}
	m.InitGLInfo()
	return m
}

// Visual returns the visual the manager operates on.
func (m *Manager) Visual() *Visual { return m.v }

// Caps returns the capabilities of the visual.
func (m *Manager) Caps() *Capabilities { return &m.v.caps }

// Close releases the manager, warning if an error was never retrieved.
func (m *Manager) Close() {
	if m.v.err != gl.NO_ERROR {
		log.W(m.ctx, "Manager destroyed with uncaught GL error %v (%s)",
			m.v.err, gl.ErrorString(m.v.err))
	}
}

// call counts and traces an entry point. The returned function must be
// deferred; it reports a new error when error checking is enabled.
func (m *Manager) call(name string, args ...interface{}) func() {
	m.v.calls++
	m.current = name
	if m.trace != nil {
		fmt.Fprintln(m.trace, formatCall(name, args))
	}
	return m.done
}

func (m *Manager) done() {
	if m.checkErrors && m.v.err != gl.NO_ERROR && !m.v.errReported {
		m.v.errReported = true
		log.E(m.ctx, "GL error after %s: %s", m.current, gl.ErrorString(m.v.err))
	}
}

// fail raises err and reports it through debug output.
func (m *Manager) fail(err gl.Enum, format string, args ...interface{}) {
	m.v.setError(err)
	m.reportAPIError(fmt.Sprintf("%s in %s: %s",
		gl.ErrorString(err), m.current, fmt.Sprintf(format, args...)))
}

// GetError returns and clears the pending error. It is not counted as a
// call.
func (m *Manager) GetError() gl.Enum { return m.v.takeError() }

// SetErrorCode raises err as if a call had failed with it. Any value may
// be used, including ones that are not GL error codes.
func (m *Manager) SetErrorCode(err gl.Enum) { m.v.setError(err) }

// EnableErrorChecking turns on logging of every error raised by a call.
func (m *Manager) EnableErrorChecking(enable bool) { m.checkErrors = enable }

// IsErrorCheckingEnabled returns true if errors are logged as they occur.
func (m *Manager) IsErrorCheckingEnabled() bool { return m.checkErrors }

// SetTraceWriter sets where calls are traced, one per line. nil disables
// tracing.
func (m *Manager) SetTraceWriter(w io.Writer) { m.trace = w }

// CallCount returns the number of calls made on the visual.
func (m *Manager) CallCount() int { return m.v.CallCount() }

// ResetCallCount sets the call count of the visual back to zero.
func (m *Manager) ResetCallCount() { m.v.ResetCallCount() }

// SetMaxBufferSize sets the largest size BufferData accepts before
// raising OUT_OF_MEMORY. Zero means no limit.
func (m *Manager) SetMaxBufferSize(size int64) { m.v.maxBuffer = size }

// MaxBufferSize returns the limit set by SetMaxBufferSize.
func (m *Manager) MaxBufferSize() int64 { return m.v.maxBuffer }

// SetForceFunctionFailure makes the named Gen function fail with
// INVALID_OPERATION until it is cleared.
func (m *Manager) SetForceFunctionFailure(name string, fail bool) {
	if fail {
		m.v.forced[name] = true
	} else {
		delete(m.v.forced, name)
	}
}

func (m *Manager) forced(name string) bool { return m.v.forced[name] }

// SetExtensionsString replaces the space separated EXTENSIONS list.
func (m *Manager) SetExtensionsString(s string) {
	m.v.extensions = splitExtensions(s)
	m.InitGLInfo()
}

// SetVendorString replaces the VENDOR string.
func (m *Manager) SetVendorString(s string) {
	m.v.vendor = s
	m.InitGLInfo()
}

// SetRendererString replaces the RENDERER string.
func (m *Manager) SetRendererString(s string) {
	m.v.renderer = s
	m.InitGLInfo()
}

// SetVersionString replaces the VERSION string.
func (m *Manager) SetVersionString(s string) {
	m.v.version = s
	m.InitGLInfo()
}

// SetContextProfileMask replaces the value of CONTEXT_PROFILE_MASK.
func (m *Manager) SetContextProfileMask(mask uint32) {
	m.v.profileMask = mask
	m.InitGLInfo()
}

// InitGLInfo derives the version, flavor, profile and function group
// availability from the strings of the visual.
func (m *Manager) InitGLInfo() {
	v := m.v
	info := glInfo{renderer: v.renderer}
	info.flavor, info.version = parseVersionString(v.version)
	// Only desktop contexts have a compatibility profile.
	info.profile = CoreProfile
	if info.flavor == Desktop && v.profileMask&uint32(gl.CONTEXT_CORE_PROFILE_BIT) == 0 {
		info.profile = CompatibilityProfile
	}
	for g := FunctionGroup(0); g < functionGroupCount; g++ {
		info.groups[g] = info.supported(groupRules[g], v.extensions)
	}
	// Vertex arrays are sometimes advertised without working.
	if info.groups[VertexArrays] && m.forced("GenVertexArrays") {
		info.groups[VertexArrays] = false
	}
	m.info = info
}

// GLVersion returns the version as major*10+minor.
func (m *Manager) GLVersion() int { return m.info.version }

// GLVersionString returns the VERSION string the info was derived from.
func (m *Manager) GLVersionString() string { return m.v.version }

// GLRenderer returns the RENDERER string.
func (m *Manager) GLRenderer() string { return m.v.renderer }

// Flavor returns the API family of the context.
func (m *Manager) Flavor() Flavor { return m.info.flavor }

// Profile returns the context profile.
func (m *Manager) Profile() Profile { return m.info.profile }

// IsExtensionSupported returns true if an extension named name after its
// vendor prefix is in the EXTENSIONS list.
func (m *Manager) IsExtensionSupported(name string) bool {
	return extensionSupported(m.v.extensions, name)
}

// IsFunctionGroupAvailable returns true if the group is supported and
// enabled.
func (m *Manager) IsFunctionGroupAvailable(g FunctionGroup) bool {
	return g >= 0 && g < functionGroupCount && m.info.groups[g]
}

// EnableFunctionGroup overrides the availability of a group.
func (m *Manager) EnableFunctionGroup(g FunctionGroup, enable bool) {
	if g >= 0 && g < functionGroupCount {
		m.info.groups[g] = enable
	}
}
