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
	"math"

	gl "github.com/google/ion/gfx/glenum"
)

type stencilFace struct {
	fn        gl.Enum
	ref       int32
	valueMask uint32
	writeMask uint32
	fail      gl.Enum
	depthFail gl.Enum
	depthPass gl.Enum
}

// fixedState is the fixed function part of the context.
type fixedState struct {
	enabled map[gl.Enum]bool

	blendColor         [4]float32
	blendEquationRGB   gl.Enum
	blendEquationAlpha gl.Enum
	blendSrcRGB        gl.Enum
	blendDstRGB        gl.Enum
	blendSrcAlpha      gl.Enum
	blendDstAlpha      gl.Enum

	clearColor   [4]float32
	clearDepth   float32
	clearStencil int32
	colorMask    [4]bool
	cullFace     gl.Enum
	depthFunc    gl.Enum
	depthRange   [2]float32
	depthMask    bool
	frontFace    gl.Enum
	hints        map[gl.Enum]gl.Enum
	lineWidth    float32
	pointSize    float32

	packAlignment   int32
	unpackAlignment int32

	polygonOffsetFactor float32
	polygonOffsetUnits  float32

	sampleCoverageValue  float32
	sampleCoverageInvert bool
	sampleMask           map[uint32]uint32
	minSampleShading     float32

	scissor  [4]int32
	viewport [4]int32

	front, back stencilFace

	drawBuffer gl.Enum
	readBuffer gl.Enum
}

func newFixedState(width, height int32) fixedState {
	face := stencilFace{
		fn:        gl.ALWAYS,
		valueMask: 0xffffffff,
		writeMask: 0xffffffff,
		fail:      gl.KEEP,
		depthFail: gl.KEEP,
		depthPass: gl.KEEP,
	}
	return fixedState{
		enabled:             map[gl.Enum]bool{gl.DITHER: true},
		blendEquationRGB:    gl.FUNC_ADD,
		blendEquationAlpha:  gl.FUNC_ADD,
		blendSrcRGB:         gl.ONE,
		blendDstRGB:         gl.ZERO,
		blendSrcAlpha:       gl.ONE,
		blendDstAlpha:       gl.ZERO,
		clearDepth:          1,
		colorMask:           [4]bool{true, true, true, true},
		cullFace:            gl.BACK,
		depthFunc:           gl.LESS,
		depthRange:          [2]float32{0, 1},
		depthMask:           true,
		frontFace:           gl.CCW,
		hints:               map[gl.Enum]gl.Enum{},
		lineWidth:           1,
		pointSize:           1,
		packAlignment:       4,
		unpackAlignment:     4,
		sampleCoverageValue: 1,
		sampleMask:          map[uint32]uint32{},
		scissor:             [4]int32{0, 0, width, height},
		viewport:            [4]int32{0, 0, width, height},
		front:               face,
		back:                face,
		drawBuffer:          gl.BACK,
		readBuffer:          gl.BACK,
	}
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// checkEnum raises INVALID_ENUM and returns false if e is not in set.
func (m *Manager) checkEnum(set gl.Set, e gl.Enum, what string) bool {
	if !set.Contains(e) {
		m.fail(gl.INVALID_ENUM, "invalid %s %v", what, e)
		return false
	}
	return true
}

// Enable turns on a capability.
func (m *Manager) Enable(c gl.Enum) {
	defer m.call("Enable", c)()
	if m.checkEnum(capabilities, c, "capability") {
		m.v.fixed.enabled[c] = true
	}
}

// Disable turns off a capability.
func (m *Manager) Disable(c gl.Enum) {
	defer m.call("Disable", c)()
	if m.checkEnum(capabilities, c, "capability") {
		m.v.fixed.enabled[c] = false
	}
}

// IsEnabled returns true if the capability is on.
func (m *Manager) IsEnabled(c gl.Enum) bool {
	defer m.call("IsEnabled", c)()
	if !m.checkEnum(capabilities, c, "capability") {
		return false
	}
	return m.v.fixed.enabled[c]
}

// BlendColor sets the constant blend color. Components are clamped to
// [0, 1].
func (m *Manager) BlendColor(r, g, b, a float32) {
	defer m.call("BlendColor", r, g, b, a)()
	m.v.fixed.blendColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// BlendEquation sets the RGB and alpha blend equations.
func (m *Manager) BlendEquation(mode gl.Enum) {
	defer m.call("BlendEquation", mode)()
	if m.checkEnum(blendEquations, mode, "blend equation") {
		m.v.fixed.blendEquationRGB, m.v.fixed.blendEquationAlpha = mode, mode
	}
}

// BlendEquationSeparate sets the RGB and alpha blend equations separately.
func (m *Manager) BlendEquationSeparate(rgb, alpha gl.Enum) {
	defer m.call("BlendEquationSeparate", rgb, alpha)()
	if m.checkEnum(blendEquations, rgb, "blend equation") &&
		m.checkEnum(blendEquations, alpha, "blend equation") {
		m.v.fixed.blendEquationRGB, m.v.fixed.blendEquationAlpha = rgb, alpha
	}
}

// BlendFunc sets the source and destination blend factors.
func (m *Manager) BlendFunc(src, dst gl.Enum) {
	defer m.call("BlendFunc", src, dst)()
	if m.checkEnum(blendFactors, src, "blend factor") &&
		m.checkEnum(blendFactors, dst, "blend factor") {
		f := &m.v.fixed
		f.blendSrcRGB, f.blendSrcAlpha = src, src
		f.blendDstRGB, f.blendDstAlpha = dst, dst
	}
}

// BlendFuncSeparate sets the RGB and alpha blend factors separately.
func (m *Manager) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	defer m.call("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)()
	for _, e := range []gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha} {
		if !m.checkEnum(blendFactors, e, "blend factor") {
			return
		}
	}
	f := &m.v.fixed
	f.blendSrcRGB, f.blendDstRGB = srcRGB, dstRGB
	f.blendSrcAlpha, f.blendDstAlpha = srcAlpha, dstAlpha
}

// ClearColor sets the color used by Clear. Components are clamped to
// [0, 1].
func (m *Manager) ClearColor(r, g, b, a float32) {
	defer m.call("ClearColor", r, g, b, a)()
	m.v.fixed.clearColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// ClearDepthf sets the depth used by Clear, clamped to [0, 1].
func (m *Manager) ClearDepthf(d float32) {
	defer m.call("ClearDepthf", d)()
	m.v.fixed.clearDepth = clamp01(d)
}

// ClearStencil sets the stencil value used by Clear.
func (m *Manager) ClearStencil(s int32) {
	defer m.call("ClearStencil", s)()
	m.v.fixed.clearStencil = s
}

// ColorMask sets which color components are written.
func (m *Manager) ColorMask(r, g, b, a bool) {
	defer m.call("ColorMask", r, g, b, a)()
	m.v.fixed.colorMask = [4]bool{r, g, b, a}
}

// CullFace sets which faces are culled.
func (m *Manager) CullFace(mode gl.Enum) {
	defer m.call("CullFace", mode)()
	if m.checkEnum(faces, mode, "cull face mode") {
		m.v.fixed.cullFace = mode
	}
}

// DepthFunc sets the depth comparison.
func (m *Manager) DepthFunc(fn gl.Enum) {
	defer m.call("DepthFunc", fn)()
	if m.checkEnum(compareFuncs, fn, "depth function") {
		m.v.fixed.depthFunc = fn
	}
}

// DepthMask sets whether depth is written.
func (m *Manager) DepthMask(flag bool) {
	defer m.call("DepthMask", flag)()
	m.v.fixed.depthMask = flag
}

// DepthRangef sets the depth range, each value clamped to [0, 1].
func (m *Manager) DepthRangef(near, far float32) {
	defer m.call("DepthRangef", near, far)()
	m.v.fixed.depthRange = [2]float32{clamp01(near), clamp01(far)}
}

// FrontFace sets the winding of front facing polygons.
func (m *Manager) FrontFace(mode gl.Enum) {
	defer m.call("FrontFace", mode)()
	if m.checkEnum(frontFaces, mode, "front face mode") {
		m.v.fixed.frontFace = mode
	}
}

// Hint sets an implementation hint.
func (m *Manager) Hint(target, mode gl.Enum) {
	defer m.call("Hint", target, mode)()
	if m.checkEnum(hintTargets, target, "hint target") &&
		m.checkEnum(hintModes, mode, "hint mode") {
		m.v.fixed.hints[target] = mode
	}
}

func (f *fixedState) hint(target gl.Enum) gl.Enum {
	if mode, ok := f.hints[target]; ok {
		return mode
	}
	return gl.DONT_CARE
}

// LineWidth sets the rasterized width of lines.
func (m *Manager) LineWidth(width float32) {
	defer m.call("LineWidth", width)()
	if width <= 0 {
		m.fail(gl.INVALID_VALUE, "line width %v must be positive", width)
		return
	}
	m.v.fixed.lineWidth = width
}

// PixelStorei sets the pack or unpack row alignment.
func (m *Manager) PixelStorei(pname gl.Enum, param int32) {
	defer m.call("PixelStorei", pname, param)()
	if !m.checkEnum(pixelStoreNames, pname, "pixel store parameter") {
		return
	}
	switch param {
	case 1, 2, 4, 8:
	default:
		m.fail(gl.INVALID_VALUE, "alignment %d is not 1, 2, 4 or 8", param)
		return
	}
	if pname == gl.PACK_ALIGNMENT {
		m.v.fixed.packAlignment = param
	} else {
		m.v.fixed.unpackAlignment = param
	}
}

// PointSize sets the rasterized size of points.
func (m *Manager) PointSize(size float32) {
	defer m.call("PointSize", size)()
	if size <= 0 {
		m.fail(gl.INVALID_VALUE, "point size %v must be positive", size)
		return
	}
	m.v.fixed.pointSize = size
}

// PolygonOffset sets the depth offset of polygons.
func (m *Manager) PolygonOffset(factor, units float32) {
	defer m.call("PolygonOffset", factor, units)()
	m.v.fixed.polygonOffsetFactor = factor
	m.v.fixed.polygonOffsetUnits = units
}

// SampleCoverage sets the multisample coverage value, clamped to [0, 1].
func (m *Manager) SampleCoverage(value float32, invert bool) {
	defer m.call("SampleCoverage", value, invert)()
	m.v.fixed.sampleCoverageValue = clamp01(value)
	m.v.fixed.sampleCoverageInvert = invert
}

// SampleMaski sets one word of the sample mask.
func (m *Manager) SampleMaski(index uint32, mask uint32) {
	defer m.call("SampleMaski", index, mask)()
	if int32(index) < 0 || int32(index) >= m.v.caps.MaxSampleMaskWords {
		m.fail(gl.INVALID_VALUE, "sample mask word %d out of range", index)
		return
	}
	m.v.fixed.sampleMask[index] = mask
}

// MinSampleShading sets the minimum fraction of samples shaded.
func (m *Manager) MinSampleShading(value float32) {
	defer m.call("MinSampleShading", value)()
	m.v.fixed.minSampleShading = clamp01(value)
}

func (m *Manager) checkBox(what string, x, y, width, height int32) bool {
	if width < 0 || height < 0 {
		m.fail(gl.INVALID_VALUE, "negative %s size %dx%d", what, width, height)
		return false
	}
	return true
}

// Scissor sets the scissor box.
func (m *Manager) Scissor(x, y, width, height int32) {
	defer m.call("Scissor", x, y, width, height)()
	if m.checkBox("scissor", x, y, width, height) {
		m.v.fixed.scissor = [4]int32{x, y, width, height}
	}
}

// Viewport sets the viewport.
func (m *Manager) Viewport(x, y, width, height int32) {
	defer m.call("Viewport", x, y, width, height)()
	if m.checkBox("viewport", x, y, width, height) {
		m.v.fixed.viewport = [4]int32{x, y, width, height}
	}
}

// stencilFaces returns the faces selected by face, or nil after raising
// INVALID_ENUM.
func (m *Manager) stencilFaces(face gl.Enum) []*stencilFace {
	f := &m.v.fixed
	switch face {
	case gl.FRONT:
		return []*stencilFace{&f.front}
	case gl.BACK:
		return []*stencilFace{&f.back}
	case gl.FRONT_AND_BACK:
		return []*stencilFace{&f.front, &f.back}
	}
	m.fail(gl.INVALID_ENUM, "invalid stencil face %v", face)
	return nil
}

func (m *Manager) stencilFunc(face, fn gl.Enum, ref int32, mask uint32) {
	faces := m.stencilFaces(face)
	if faces == nil || !m.checkEnum(compareFuncs, fn, "stencil function") {
		return
	}
	for _, s := range faces {
		s.fn, s.ref, s.valueMask = fn, ref, mask
	}
}

// StencilFunc sets the stencil test of both faces.
func (m *Manager) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	defer m.call("StencilFunc", fn, ref, mask)()
	m.stencilFunc(gl.FRONT_AND_BACK, fn, ref, mask)
}

// StencilFuncSeparate sets the stencil test of the selected faces.
func (m *Manager) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) {
	defer m.call("StencilFuncSeparate", face, fn, ref, mask)()
	m.stencilFunc(face, fn, ref, mask)
}

func (m *Manager) stencilMask(face gl.Enum, mask uint32) {
	for _, s := range m.stencilFaces(face) {
		s.writeMask = mask
	}
}

// StencilMask sets the stencil write mask of both faces.
func (m *Manager) StencilMask(mask uint32) {
	defer m.call("StencilMask", mask)()
	m.stencilMask(gl.FRONT_AND_BACK, mask)
}

// StencilMaskSeparate sets the stencil write mask of the selected faces.
func (m *Manager) StencilMaskSeparate(face gl.Enum, mask uint32) {
	defer m.call("StencilMaskSeparate", face, mask)()
	m.stencilMask(face, mask)
}

func (m *Manager) stencilOp(face, fail, zfail, zpass gl.Enum) {
	faces := m.stencilFaces(face)
	if faces == nil {
		return
	}
	for _, op := range []gl.Enum{fail, zfail, zpass} {
		if !m.checkEnum(stencilOps, op, "stencil operation") {
			return
		}
	}
	for _, s := range faces {
		s.fail, s.depthFail, s.depthPass = fail, zfail, zpass
	}
}

// StencilOp sets the stencil operations of both faces.
func (m *Manager) StencilOp(fail, zfail, zpass gl.Enum) {
	defer m.call("StencilOp", fail, zfail, zpass)()
	m.stencilOp(gl.FRONT_AND_BACK, fail, zfail, zpass)
}

// StencilOpSeparate sets the stencil operations of the selected faces.
func (m *Manager) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	defer m.call("StencilOpSeparate", face, fail, zfail, zpass)()
	m.stencilOp(face, fail, zfail, zpass)
}

func (m *Manager) checkDrawBuffer(mode gl.Enum) bool {
	if !m.checkEnum(drawBufferTargets, mode, "buffer") {
		return false
	}
	if mode >= gl.COLOR_ATTACHMENT0 && int32(mode-gl.COLOR_ATTACHMENT0) >= m.v.caps.MaxColorAttachments {
		m.fail(gl.INVALID_OPERATION, "%v exceeds the color attachments", mode)
		return false
	}
	return true
}

// DrawBuffer selects the color buffer drawn to.
func (m *Manager) DrawBuffer(mode gl.Enum) {
	defer m.call("DrawBuffer", mode)()
	if m.checkDrawBuffer(mode) {
		m.v.fixed.drawBuffer = mode
	}
}

// ReadBuffer selects the color buffer read from.
func (m *Manager) ReadBuffer(mode gl.Enum) {
	defer m.call("ReadBuffer", mode)()
	if m.checkDrawBuffer(mode) {
		m.v.fixed.readBuffer = mode
	}
}

// GetString returns one of the identification strings.
func (m *Manager) GetString(name gl.Enum) string {
	defer m.call("GetString", name)()
	switch name {
	case gl.VENDOR:
		return m.v.vendor
	case gl.RENDERER:
		return m.v.renderer
	case gl.VERSION:
		return m.v.version
	case gl.SHADING_LANGUAGE_VERSION:
		return m.v.glsl
	case gl.EXTENSIONS:
		return m.v.extensionsString()
	}
	m.fail(gl.INVALID_ENUM, "invalid string name %v", name)
	return ""
}

// GetStringi returns one entry of an indexed string list.
func (m *Manager) GetStringi(name gl.Enum, index uint32) string {
	defer m.call("GetStringi", name, index)()
	if name != gl.EXTENSIONS {
		m.fail(gl.INVALID_ENUM, "invalid indexed string name %v", name)
		return ""
	}
	if int(index) >= len(m.v.extensions) {
		m.fail(gl.INVALID_VALUE, "extension index %d out of range", index)
		return ""
	}
	return m.v.extensions[index]
}

// param is the value of a state query, converted on the way out to the
// type the query asks for.
type param struct {
	values []float64
	float  bool
}

func ints(v ...int32) param {
	p := param{values: make([]float64, len(v))}
	for i, x := range v {
		p.values[i] = float64(x)
	}
	return p
}

func uints(v ...uint32) param {
	p := param{values: make([]float64, len(v))}
	for i, x := range v {
		p.values[i] = float64(x)
	}
	return p
}

func int64s(v ...int64) param {
	p := param{values: make([]float64, len(v))}
	for i, x := range v {
		p.values[i] = float64(x)
	}
	return p
}

func enums(v ...gl.Enum) param {
	p := param{values: make([]float64, len(v))}
	for i, x := range v {
		p.values[i] = float64(x)
	}
	return p
}

func floats(v ...float32) param {
	p := param{values: make([]float64, len(v)), float: true}
	for i, x := range v {
		p.values[i] = float64(x)
	}
	return p
}

func bools(v ...bool) param {
	p := param{values: make([]float64, len(v))}
	for i, x := range v {
		if x {
			p.values[i] = 1
		}
	}
	return p
}

func (p param) int64At(i int) int64 {
	if p.float {
		return int64(math.Round(p.values[i]))
	}
	return int64(p.values[i])
}

// stateQuery answers the pnames of one part of the context.
type stateQuery func(pname gl.Enum) (param, bool)

// query looks up pname in every part of the context, raising INVALID_ENUM
// if none knows it.
func (m *Manager) query(pname gl.Enum) (param, bool) {
	for _, q := range []stateQuery{
		m.fixedQuery,
		m.capsQuery,
		m.infoQuery,
		m.textureQuery,
		m.samplerQuery,
		m.bufferQuery,
		m.vertexArrayQuery,
		m.framebufferQuery,
		m.programQuery,
		m.debugQuery,
		m.queryQuery,
		m.feedbackQuery,
	} {
		if p, ok := q(pname); ok {
			return p, true
		}
	}
	m.fail(gl.INVALID_ENUM, "invalid state %v", pname)
	return param{}, false
}

// GetIntegerv stores the value of pname in data. Float state is rounded.
func (m *Manager) GetIntegerv(pname gl.Enum, data []int32) {
	defer m.call("GetIntegerv", pname, nil)()
	if p, ok := m.query(pname); ok {
		for i := 0; i < len(p.values) && i < len(data); i++ {
			data[i] = int32(p.int64At(i))
		}
	}
}

// GetInteger64v stores the value of pname in data.
func (m *Manager) GetInteger64v(pname gl.Enum, data []int64) {
	defer m.call("GetInteger64v", pname, nil)()
	if p, ok := m.query(pname); ok {
		for i := 0; i < len(p.values) && i < len(data); i++ {
			data[i] = p.int64At(i)
		}
	}
}

// GetFloatv stores the value of pname in data.
func (m *Manager) GetFloatv(pname gl.Enum, data []float32) {
	defer m.call("GetFloatv", pname, nil)()
	if p, ok := m.query(pname); ok {
		for i := 0; i < len(p.values) && i < len(data); i++ {
			data[i] = float32(p.values[i])
		}
	}
}

// GetBooleanv stores the value of pname in data. Non-zero values are true.
func (m *Manager) GetBooleanv(pname gl.Enum, data []bool) {
	defer m.call("GetBooleanv", pname, nil)()
	if p, ok := m.query(pname); ok {
		for i := 0; i < len(p.values) && i < len(data); i++ {
			data[i] = p.values[i] != 0
		}
	}
}

func (m *Manager) fixedQuery(pname gl.Enum) (param, bool) {
	f := &m.v.fixed
	if capabilities.Contains(pname) {
		return bools(f.enabled[pname]), true
	}
	switch pname {
	case gl.BLEND_COLOR:
		return floats(f.blendColor[:]...), true
	case gl.BLEND_EQUATION_RGB:
		return enums(f.blendEquationRGB), true
	case gl.BLEND_EQUATION_ALPHA:
		return enums(f.blendEquationAlpha), true
	case gl.BLEND_SRC_RGB:
		return enums(f.blendSrcRGB), true
	case gl.BLEND_DST_RGB:
		return enums(f.blendDstRGB), true
	case gl.BLEND_SRC_ALPHA:
		return enums(f.blendSrcAlpha), true
	case gl.BLEND_DST_ALPHA:
		return enums(f.blendDstAlpha), true
	case gl.COLOR_CLEAR_VALUE:
		return floats(f.clearColor[:]...), true
	case gl.COLOR_WRITEMASK:
		return bools(f.colorMask[:]...), true
	case gl.CULL_FACE_MODE:
		return enums(f.cullFace), true
	case gl.DEPTH_CLEAR_VALUE:
		return floats(f.clearDepth), true
	case gl.DEPTH_FUNC:
		return enums(f.depthFunc), true
	case gl.DEPTH_RANGE:
		return floats(f.depthRange[:]...), true
	case gl.DEPTH_WRITEMASK:
		return bools(f.depthMask), true
	case gl.FRONT_FACE:
		return enums(f.frontFace), true
	case gl.GENERATE_MIPMAP_HINT, gl.FRAGMENT_SHADER_DERIVATIVE_HINT:
		return enums(f.hint(pname)), true
	case gl.LINE_WIDTH:
		return floats(f.lineWidth), true
	case gl.PACK_ALIGNMENT:
		return ints(f.packAlignment), true
	case gl.UNPACK_ALIGNMENT:
		return ints(f.unpackAlignment), true
	case gl.POINT_SIZE:
		return floats(f.pointSize), true
	case gl.POLYGON_OFFSET_FACTOR:
		return floats(f.polygonOffsetFactor), true
	case gl.POLYGON_OFFSET_UNITS:
		return floats(f.polygonOffsetUnits), true
	case gl.SAMPLE_COVERAGE_VALUE:
		return floats(f.sampleCoverageValue), true
	case gl.SAMPLE_COVERAGE_INVERT:
		return bools(f.sampleCoverageInvert), true
	case gl.SAMPLE_MASK_VALUE:
		words := make([]uint32, m.v.caps.MaxSampleMaskWords)
		for i := range words {
			words[i] = f.sampleMask[uint32(i)]
		}
		return uints(words...), true
	case gl.MIN_SAMPLE_SHADING_VALUE:
		return floats(f.minSampleShading), true
	case gl.SCISSOR_BOX:
		return ints(f.scissor[:]...), true
	case gl.VIEWPORT:
		return ints(f.viewport[:]...), true
	case gl.STENCIL_FUNC:
		return enums(f.front.fn), true
	case gl.STENCIL_REF:
		return ints(f.front.ref), true
	case gl.STENCIL_VALUE_MASK:
		return uints(f.front.valueMask), true
	case gl.STENCIL_WRITEMASK:
		return uints(f.front.writeMask), true
	case gl.STENCIL_FAIL:
		return enums(f.front.fail), true
	case gl.STENCIL_PASS_DEPTH_FAIL:
		return enums(f.front.depthFail), true
	case gl.STENCIL_PASS_DEPTH_PASS:
		return enums(f.front.depthPass), true
	case gl.STENCIL_BACK_FUNC:
		return enums(f.back.fn), true
	case gl.STENCIL_BACK_REF:
		return ints(f.back.ref), true
	case gl.STENCIL_BACK_VALUE_MASK:
		return uints(f.back.valueMask), true
	case gl.STENCIL_BACK_WRITEMASK:
		return uints(f.back.writeMask), true
	case gl.STENCIL_BACK_FAIL:
		return enums(f.back.fail), true
	case gl.STENCIL_BACK_PASS_DEPTH_FAIL:
		return enums(f.back.depthFail), true
	case gl.STENCIL_BACK_PASS_DEPTH_PASS:
		return enums(f.back.depthPass), true
	case gl.STENCIL_CLEAR_VALUE:
		return ints(f.clearStencil), true
	case gl.DRAW_BUFFER, gl.DRAW_BUFFER0:
		return enums(f.drawBuffer), true
	case gl.READ_BUFFER:
		return enums(f.readBuffer), true
	}
	return param{}, false
}

func (m *Manager) capsQuery(pname gl.Enum) (param, bool) {
	c := &m.v.caps
	switch pname {
	case gl.ALIASED_LINE_WIDTH_RANGE:
		return floats(c.AliasedLineWidthRange...), true
	case gl.ALIASED_POINT_SIZE_RANGE:
		return floats(c.AliasedPointSizeRange...), true
	case gl.COMPRESSED_TEXTURE_FORMATS:
		return enums(c.CompressedTextureFormats...), true
	case gl.NUM_COMPRESSED_TEXTURE_FORMATS:
		return ints(int32(len(c.CompressedTextureFormats))), true
	case gl.SHADER_BINARY_FORMATS:
		return ints(c.ShaderBinaryFormats...), true
	case gl.NUM_SHADER_BINARY_FORMATS:
		return ints(int32(len(c.ShaderBinaryFormats))), true
	case gl.IMPLEMENTATION_COLOR_READ_FORMAT:
		return enums(c.ImplementationColorReadFormat), true
	case gl.IMPLEMENTATION_COLOR_READ_TYPE:
		return enums(c.ImplementationColorReadType), true
	case gl.MAX_3D_TEXTURE_SIZE:
		return ints(c.Max3DTextureSize), true
	case gl.MAX_ARRAY_TEXTURE_LAYERS:
		return ints(c.MaxArrayTextureLayers), true
	case gl.MAX_COLOR_ATTACHMENTS:
		return ints(c.MaxColorAttachments), true
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return ints(c.MaxCombinedTextureImageUnits), true
	case gl.MAX_CUBE_MAP_TEXTURE_SIZE:
		return ints(c.MaxCubeMapTextureSize), true
	case gl.MAX_DEBUG_GROUP_STACK_DEPTH:
		return ints(c.MaxDebugGroupStackDepth), true
	case gl.MAX_DEBUG_LOGGED_MESSAGES:
		return ints(c.MaxDebugLoggedMessages), true
	case gl.MAX_DEBUG_MESSAGE_LENGTH:
		return ints(c.MaxDebugMessageLength), true
	case gl.MAX_DRAW_BUFFERS:
		return ints(c.MaxDrawBuffers), true
	case gl.MAX_FRAGMENT_UNIFORM_COMPONENTS:
		return ints(c.MaxFragmentUniformComponents), true
	case gl.MAX_FRAGMENT_UNIFORM_VECTORS:
		return ints(c.MaxFragmentUniformVectors), true
	case gl.MAX_LABEL_LENGTH:
		return ints(c.MaxLabelLength), true
	case gl.MAX_RENDERBUFFER_SIZE:
		return ints(c.MaxRenderbufferSize), true
	case gl.MAX_SAMPLE_MASK_WORDS:
		return ints(c.MaxSampleMaskWords), true
	case gl.MAX_SAMPLES:
		return ints(c.MaxSamples), true
	case gl.MAX_SERVER_WAIT_TIMEOUT:
		return int64s(c.MaxServerWaitTimeout), true
	case gl.MAX_TEXTURE_IMAGE_UNITS:
		return ints(c.MaxTextureImageUnits), true
	case gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT:
		return floats(c.MaxTextureMaxAnisotropy), true
	case gl.MAX_TEXTURE_SIZE:
		return ints(c.MaxTextureSize), true
	case gl.MAX_TRANSFORM_FEEDBACK_INTERLEAVED_COMPONENTS:
		return ints(c.MaxTransformFeedbackInterleavedComponents), true
	case gl.MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS:
		return ints(c.MaxTransformFeedbackSeparateAttribs), true
	case gl.MAX_TRANSFORM_FEEDBACK_SEPARATE_COMPONENTS:
		return ints(c.MaxTransformFeedbackSeparateComponents), true
	case gl.MAX_VARYING_VECTORS:
		return ints(c.MaxVaryingVectors), true
	case gl.MAX_VERTEX_ATTRIBS:
		return ints(c.MaxVertexAttribs), true
	case gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS:
		return ints(c.MaxVertexTextureImageUnits), true
	case gl.MAX_VERTEX_UNIFORM_COMPONENTS:
		return ints(c.MaxVertexUniformComponents), true
	case gl.MAX_VERTEX_UNIFORM_VECTORS:
		return ints(c.MaxVertexUniformVectors), true
	case gl.MAX_VIEWPORT_DIMS:
		return ints(c.MaxViewportDims...), true
	}
	return param{}, false
}

func (m *Manager) infoQuery(pname gl.Enum) (param, bool) {
	switch pname {
	case gl.SHADER_COMPILER:
		return bools(false), true
	case gl.SUBPIXEL_BITS:
		return ints(4), true
	case gl.NUM_EXTENSIONS:
		return ints(int32(len(m.v.extensions))), true
	case gl.MAJOR_VERSION:
		return ints(int32(m.info.version / 10)), true
	case gl.MINOR_VERSION:
		return ints(int32(m.info.version % 10)), true
	case gl.CONTEXT_PROFILE_MASK:
		return uints(m.v.profileMask), true
	case gl.CONTEXT_FLAGS:
		return ints(0), true
	}
	return param{}, false
}
