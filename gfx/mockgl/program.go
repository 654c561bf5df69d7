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
	"strings"

	gl "github.com/google/ion/gfx/glenum"
	"github.com/google/ion/gfx/glsl"
)

type shader struct {
	stage    gl.Enum
	source   string
	compiled bool
	deleted  bool
	infoLog  string
	parsed   *glsl.Shader
}

// variable is an active attribute, uniform or varying of a linked program.
type variable struct {
	name     string
	typ      gl.Enum
	size     int32
	location int32
}

type program struct {
	deleted   bool
	linked    bool
	validated bool
	infoLog   string
	shaders   []uint32
	bindings  map[string]uint32

	attribs  []variable
	uniforms []variable
	varyings []variable
	slots    []uniformSlot

	feedbackNames []string
	feedbackMode  gl.Enum
	feedback      []variable
}

func newProgram() *program {
	return &program{bindings: map[string]uint32{}, feedbackMode: gl.INTERLEAVED_ATTRIBS}
}

func (p *program) attached(name uint32) bool {
	for _, s := range p.shaders {
		if s == name {
			return true
		}
	}
	return false
}

// Shaders and programs are only ever flagged for deletion, so that their
// state stays queryable.
type programState struct {
	shaders  *objectTable[shader]
	programs *objectTable[program]
	current  uint32
}

func newProgramState() programState {
	return programState{
		shaders:  newObjectTable[shader](),
		programs: newObjectTable[program](),
	}
}

// shader returns the named shader, raising INVALID_VALUE if there is none.
func (m *Manager) shader(name uint32) *shader {
	s := m.v.programs.shaders.get(name)
	if s == nil {
		m.fail(gl.INVALID_VALUE, "invalid shader %d", name)
	}
	return s
}

// program returns the named program, raising INVALID_VALUE if there is
// none.
func (m *Manager) program(name uint32) *program {
	p := m.v.programs.programs.get(name)
	if p == nil {
		m.fail(gl.INVALID_VALUE, "invalid program %d", name)
	}
	return p
}

// liveProgram is program that also raises INVALID_OPERATION for programs
// flagged for deletion.
func (m *Manager) liveProgram(name uint32) *program {
	p := m.program(name)
	if p != nil && p.deleted {
		m.fail(gl.INVALID_OPERATION, "program %d is deleted", name)
		return nil
	}
	return p
}

// linkedProgram is program that also raises INVALID_OPERATION for
// programs that were not successfully linked.
func (m *Manager) linkedProgram(name uint32) *program {
	p := m.program(name)
	if p != nil && !p.linked {
		m.fail(gl.INVALID_OPERATION, "program %d is not linked", name)
		return nil
	}
	return p
}

func (m *Manager) currentProgram() *program {
	return m.v.programs.programs.get(m.v.programs.current)
}

// CreateShader returns the name of a new shader of the given stage, or 0
// if the stage is invalid.
func (m *Manager) CreateShader(stage gl.Enum) uint32 {
	defer m.call("CreateShader", stage)()
	if !m.checkEnum(shaderTypes, stage, "shader type") {
		return 0
	}
	if m.forced(m.current) {
		m.fail(gl.INVALID_OPERATION, "forced failure")
		return 0
	}
	return m.v.programs.shaders.gen(&shader{stage: stage})
}

// DeleteShader flags a shader for deletion.
func (m *Manager) DeleteShader(name uint32) {
	defer m.call("DeleteShader", name)()
	if s := m.shader(name); s != nil {
		s.deleted = true
	}
}

// IsShader returns true if name is a shader.
func (m *Manager) IsShader(name uint32) bool {
	defer m.call("IsShader", name)()
	return m.v.programs.shaders.has(name)
}

// ShaderSource replaces the source of a shader with the concatenation of
// the first count strings.
func (m *Manager) ShaderSource(name uint32, count int32, sources []string) {
	defer m.call("ShaderSource", name, count, sources)()
	s := m.shader(name)
	switch {
	case s == nil:
	case count < 0:
		m.fail(gl.INVALID_VALUE, "negative count %d", count)
	case s.deleted:
		m.fail(gl.INVALID_OPERATION, "shader %d is deleted", name)
	default:
		if int(count) < len(sources) {
			sources = sources[:count]
		}
		s.source = strings.Join(sources, "")
	}
}

// truncate returns s cut to fit a buffer of bufSize bytes including the
// terminator.
func truncate(s string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if len(s) >= int(bufSize) {
		return s[:bufSize-1]
	}
	return s
}

// GetShaderSource returns the source of a shader, truncated to bufSize-1
// bytes.
func (m *Manager) GetShaderSource(name uint32, bufSize int32) string {
	defer m.call("GetShaderSource", name, bufSize)()
	s := m.shader(name)
	switch {
	case s == nil:
		return ""
	case bufSize < 0:
		m.fail(gl.INVALID_VALUE, "negative buffer size %d", bufSize)
		return ""
	}
	return truncate(s.source, bufSize)
}

// CompileShader parses the source of a shader. Preprocessor errors fail
// the compilation and are stored in the info log.
func (m *Manager) CompileShader(name uint32) {
	defer m.call("CompileShader", name)()
	s := m.shader(name)
	switch {
	case s == nil:
		return
	case s.deleted:
		m.fail(gl.INVALID_OPERATION, "shader %d is deleted", name)
		return
	}
	parsed, err := glsl.Parse(m.ctx, s.stage, s.source)
	if err != nil {
		s.compiled, s.parsed = false, nil
		s.infoLog = fmt.Sprintf("ERROR: %v", err)
		return
	}
	s.compiled, s.parsed, s.infoLog = true, parsed, ""
}

// logLength is the length of a log or source including its terminator.
func logLength(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s)) + 1
}

// GetShaderiv returns a parameter of a shader.
func (m *Manager) GetShaderiv(name uint32, pname gl.Enum) int32 {
	defer m.call("GetShaderiv", name, pname)()
	s := m.shader(name)
	if s == nil {
		return 0
	}
	switch pname {
	case gl.DELETE_STATUS:
		return boolInt(s.deleted)
	case gl.COMPILE_STATUS:
		return boolInt(s.compiled)
	case gl.SHADER_TYPE:
		return int32(s.stage)
	case gl.SHADER_SOURCE_LENGTH:
		return logLength(s.source)
	case gl.INFO_LOG_LENGTH:
		return logLength(s.infoLog)
	}
	m.fail(gl.INVALID_ENUM, "invalid shader parameter %v", pname)
	return 0
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// GetShaderInfoLog returns the compile log of a shader, truncated to
// bufSize-1 bytes.
func (m *Manager) GetShaderInfoLog(name uint32, bufSize int32) string {
	defer m.call("GetShaderInfoLog", name, bufSize)()
	s := m.shader(name)
	switch {
	case s == nil:
		return ""
	case bufSize < 0:
		m.fail(gl.INVALID_VALUE, "negative buffer size %d", bufSize)
		return ""
	}
	return truncate(s.infoLog, bufSize)
}

var precisions = map[gl.Enum][3]int32{
	gl.LOW_FLOAT:    {7, 7, 8},
	gl.MEDIUM_FLOAT: {15, 15, 10},
	gl.HIGH_FLOAT:   {127, 127, 23},
	gl.LOW_INT:      {7, 7, 8},
	gl.MEDIUM_INT:   {15, 15, 10},
	gl.HIGH_INT:     {127, 127, 23},
}

// GetShaderPrecisionFormat returns the log2 range and the precision of a
// numeric format of a shader stage.
func (m *Manager) GetShaderPrecisionFormat(stage, precision gl.Enum) (rangeMin, rangeMax, bits int32) {
	defer m.call("GetShaderPrecisionFormat", stage, precision)()
	if !m.checkEnum(shaderTypes, stage, "shader type") ||
		!m.checkEnum(precisionTypes, precision, "precision type") {
		return 0, 0, 0
	}
	p := precisions[precision]
	return p[0], p[1], p[2]
}

// ReleaseShaderCompiler is not supported.
func (m *Manager) ReleaseShaderCompiler() {
	defer m.call("ReleaseShaderCompiler")()
	m.fail(gl.INVALID_OPERATION, "shader compiler cannot be released")
}

// ShaderBinary is not supported: no binary format is accepted.
func (m *Manager) ShaderBinary(shaders []uint32, format gl.Enum, binary []byte) {
	defer m.call("ShaderBinary", shaders, format, binary)()
	m.fail(gl.INVALID_OPERATION, "unsupported binary format %v", format)
}

// CreateProgram returns the name of a new program.
func (m *Manager) CreateProgram() uint32 {
	defer m.call("CreateProgram")()
	if m.forced(m.current) {
		m.fail(gl.INVALID_OPERATION, "forced failure")
		return 0
	}
	return m.v.programs.programs.gen(newProgram())
}

// DeleteProgram flags a program for deletion. Deleting the current program
// makes no program current.
func (m *Manager) DeleteProgram(name uint32) {
	defer m.call("DeleteProgram", name)()
	if p := m.program(name); p != nil {
		p.deleted = true
		if m.v.programs.current == name {
			m.v.programs.current = 0
		}
	}
}

// IsProgram returns true if name is a program.
func (m *Manager) IsProgram(name uint32) bool {
	defer m.call("IsProgram", name)()
	return m.v.programs.programs.has(name)
}

// AttachShader attaches a shader to a program.
func (m *Manager) AttachShader(prog, name uint32) {
	defer m.call("AttachShader", prog, name)()
	p := m.program(prog)
	if p == nil {
		return
	}
	s := m.shader(name)
	if s == nil {
		return
	}
	if p.attached(name) {
		m.fail(gl.INVALID_OPERATION, "shader %d is already attached to program %d", name, prog)
		return
	}
	for _, other := range p.shaders {
		if o := m.v.programs.shaders.get(other); o != nil && o.stage == s.stage {
			m.fail(gl.INVALID_OPERATION, "program %d already has %v shader %d", prog, s.stage, other)
			return
		}
	}
	p.shaders = append(p.shaders, name)
}

// DetachShader detaches a shader from a program.
func (m *Manager) DetachShader(prog, name uint32) {
	defer m.call("DetachShader", prog, name)()
	p := m.program(prog)
	if p == nil || m.shader(name) == nil {
		return
	}
	for i, s := range p.shaders {
		if s == name {
			p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
			return
		}
	}
	m.fail(gl.INVALID_OPERATION, "shader %d is not attached to program %d", name, prog)
}

// GetAttachedShaders returns at most maxCount shaders attached to a
// program, in attachment order.
func (m *Manager) GetAttachedShaders(prog uint32, maxCount int32) []uint32 {
	defer m.call("GetAttachedShaders", prog, maxCount)()
	p := m.program(prog)
	switch {
	case p == nil:
		return nil
	case maxCount < 0:
		m.fail(gl.INVALID_VALUE, "negative count %d", maxCount)
		return nil
	}
	n := len(p.shaders)
	if n > int(maxCount) {
		n = int(maxCount)
	}
	return append([]uint32{}, p.shaders[:n]...)
}

// slotCount is the number of attribute slots a value of type t takes.
func slotCount(t gl.Enum) int32 {
	if u, ok := uniformTypes[t]; ok && u.kind == matrixUniform {
		return int32(u.width)
	}
	return 1
}

// LinkProgram links the attached shaders. A link failure is not a GL
// error: it clears LINK_STATUS and fills the info log.
func (m *Manager) LinkProgram(prog uint32) {
	defer m.call("LinkProgram", prog)()
	p := m.liveProgram(prog)
	if p == nil {
		return
	}
	if m.isFeedbackActive() && m.v.programs.current == prog {
		m.fail(gl.INVALID_OPERATION, "program %d is used by active transform feedback", prog)
		return
	}
	p.linked, p.validated = false, false
	p.attribs, p.uniforms, p.varyings, p.slots, p.feedback = nil, nil, nil, nil, nil
	if err := m.link(p); err != nil {
		p.infoLog = fmt.Sprintf("ERROR: %v", err)
		return
	}
	p.linked, p.infoLog = true, ""
}

func (m *Manager) link(p *program) error {
	shaders := make([]*shader, 0, len(p.shaders))
	for _, name := range p.shaders {
		s := m.v.programs.shaders.get(name)
		if !s.compiled {
			return fmt.Errorf("shader %d is not compiled", name)
		}
		shaders = append(shaders, s)
	}

	seen := map[string]bool{}
	used := map[int32]bool{}
	for _, s := range shaders {
		if s.stage != gl.VERTEX_SHADER {
			continue
		}
		for _, d := range s.parsed.Filter(glsl.Attribute) {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			v := variable{name: d.Name, typ: d.Type, size: int32(d.Count()), location: -1}
			if loc, ok := p.bindings[d.Name]; ok {
				v.location = int32(loc)
				for i := int32(0); i < slotCount(d.Type); i++ {
					used[v.location+i] = true
				}
			}
			p.attribs = append(p.attribs, v)
		}
		for _, d := range s.parsed.Filter(glsl.Varying) {
			p.varyings = append(p.varyings, variable{name: d.Name, typ: d.Type, size: int32(d.Count())})
		}
	}
	next := int32(0)
	for i := range p.attribs {
		a := &p.attribs[i]
		if a.location >= 0 {
			continue
		}
		n := slotCount(a.typ)
		for !free(used, next, n) {
			next++
		}
		a.location = next
		for j := int32(0); j < n; j++ {
			used[next+j] = true
		}
		next += n
	}
	if next > m.v.caps.MaxVertexAttribs {
		return fmt.Errorf("too many vertex attributes")
	}

	seen = map[string]bool{}
	for _, s := range shaders {
		for _, d := range s.parsed.Filter(glsl.Uniform) {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			u := variable{name: d.Name, typ: d.Type, size: int32(d.Count()), location: int32(len(p.slots))}
			p.uniforms = append(p.uniforms, u)
			for e := 0; e < d.Count(); e++ {
				p.slots = append(p.slots, newUniformSlot(len(p.uniforms)-1, d.Type, e))
			}
		}
	}

	for _, name := range p.feedbackNames {
		v, ok := findVariable(p.varyings, name)
		if !ok {
			return fmt.Errorf("transform feedback varying %q is not declared", name)
		}
		p.feedback = append(p.feedback, v)
	}
	return nil
}

func free(used map[int32]bool, start, n int32) bool {
	for i := start; i < start+n; i++ {
		if used[i] {
			return false
		}
	}
	return true
}

func findVariable(vars []variable, name string) (variable, bool) {
	for _, v := range vars {
		if v.name == name {
			return v, true
		}
	}
	return variable{}, false
}

// ValidateProgram sets the validation status of a program to its link
// status.
func (m *Manager) ValidateProgram(prog uint32) {
	defer m.call("ValidateProgram", prog)()
	if p := m.liveProgram(prog); p != nil {
		p.validated = p.linked
	}
}

// UseProgram makes a linked program current. 0 makes no program current.
func (m *Manager) UseProgram(prog uint32) {
	defer m.call("UseProgram", prog)()
	if m.isFeedbackActive() && !m.isFeedbackPaused() {
		m.fail(gl.INVALID_OPERATION, "transform feedback is active")
		return
	}
	if prog == 0 {
		m.v.programs.current = 0
		return
	}
	p := m.liveProgram(prog)
	switch {
	case p == nil:
	case !p.linked:
		m.fail(gl.INVALID_OPERATION, "program %d is not linked", prog)
	default:
		m.v.programs.current = prog
	}
}

func maxNameLength(vars []variable) int32 {
	n := int32(0)
	for _, v := range vars {
		if l := int32(len(v.name)) + 1; l > n {
			n = l
		}
	}
	return n
}

// GetProgramiv returns a parameter of a program.
func (m *Manager) GetProgramiv(prog uint32, pname gl.Enum) int32 {
	defer m.call("GetProgramiv", prog, pname)()
	p := m.program(prog)
	if p == nil {
		return 0
	}
	switch pname {
	case gl.DELETE_STATUS:
		return boolInt(p.deleted)
	case gl.LINK_STATUS:
		return boolInt(p.linked)
	case gl.VALIDATE_STATUS:
		return boolInt(p.validated)
	case gl.INFO_LOG_LENGTH:
		return logLength(p.infoLog)
	case gl.ATTACHED_SHADERS:
		return int32(len(p.shaders))
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(p.attribs))
	case gl.ACTIVE_ATTRIBUTE_MAX_LENGTH:
		return maxNameLength(p.attribs)
	case gl.ACTIVE_UNIFORMS:
		return int32(len(p.uniforms))
	case gl.ACTIVE_UNIFORM_MAX_LENGTH:
		return maxNameLength(p.uniforms)
	case gl.TRANSFORM_FEEDBACK_BUFFER_MODE:
		return int32(p.feedbackMode)
	case gl.TRANSFORM_FEEDBACK_VARYINGS:
		return int32(len(p.feedback))
	case gl.TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH:
		return maxNameLength(p.feedback)
	}
	m.fail(gl.INVALID_ENUM, "invalid program parameter %v", pname)
	return 0
}

// GetProgramInfoLog returns the link log of a program, truncated to
// bufSize-1 bytes.
func (m *Manager) GetProgramInfoLog(prog uint32, bufSize int32) string {
	defer m.call("GetProgramInfoLog", prog, bufSize)()
	p := m.program(prog)
	switch {
	case p == nil:
		return ""
	case bufSize < 0:
		m.fail(gl.INVALID_VALUE, "negative buffer size %d", bufSize)
		return ""
	}
	return truncate(p.infoLog, bufSize)
}

// BindAttribLocation requests a location for an attribute, taking effect
// at the next link.
func (m *Manager) BindAttribLocation(prog, index uint32, name string) {
	defer m.call("BindAttribLocation", prog, index, name)()
	p := m.program(prog)
	switch {
	case p == nil:
	case index >= uint32(m.v.caps.MaxVertexAttribs):
		m.fail(gl.INVALID_VALUE, "attribute index %d out of range", index)
	case p.deleted:
		m.fail(gl.INVALID_OPERATION, "program %d is deleted", prog)
	case strings.HasPrefix(name, "gl_"):
		m.fail(gl.INVALID_OPERATION, "reserved attribute name %q", name)
	default:
		p.bindings[name] = index
	}
}

// GetAttribLocation returns the location of an active attribute, or -1.
// Matrices report the location of their first column.
func (m *Manager) GetAttribLocation(prog uint32, name string) int32 {
	defer m.call("GetAttribLocation", prog, name)()
	p := m.liveProgram(prog)
	switch {
	case p == nil:
		return -1
	case !p.linked:
		m.fail(gl.INVALID_OPERATION, "program %d is not linked", prog)
		return -1
	}
	if v, ok := findVariable(p.attribs, name); ok {
		return v.location
	}
	return -1
}

// activeVariable returns the index'th entry of vars, validating the
// arguments shared by the GetActive* calls.
func (m *Manager) activeVariable(vars []variable, index uint32, bufSize int32) (string, int32, gl.Enum) {
	switch {
	case index >= uint32(len(vars)):
		m.fail(gl.INVALID_VALUE, "index %d out of range", index)
	case bufSize < 0:
		m.fail(gl.INVALID_VALUE, "negative buffer size %d", bufSize)
	default:
		v := vars[index]
		return truncate(v.name, bufSize), v.size, v.typ
	}
	return "", 0, 0
}

// GetActiveAttrib returns the name, array size and type of an active
// attribute.
func (m *Manager) GetActiveAttrib(prog, index uint32, bufSize int32) (name string, size int32, typ gl.Enum) {
	defer m.call("GetActiveAttrib", prog, index, bufSize)()
	p := m.program(prog)
	if p == nil {
		return "", 0, 0
	}
	return m.activeVariable(p.attribs, index, bufSize)
}

// GetActiveUniform returns the name, array size and type of an active
// uniform.
func (m *Manager) GetActiveUniform(prog, index uint32, bufSize int32) (name string, size int32, typ gl.Enum) {
	defer m.call("GetActiveUniform", prog, index, bufSize)()
	p := m.program(prog)
	if p == nil {
		return "", 0, 0
	}
	return m.activeVariable(p.uniforms, index, bufSize)
}

func (m *Manager) programQuery(pname gl.Enum) (param, bool) {
	switch pname {
	case gl.CURRENT_PROGRAM:
		return uints(m.v.programs.current), true
	}
	return param{}, false
}
