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

type sampler struct {
	sampling
}

func newSampler() *sampler { return &sampler{sampling: defaultSampling()} }

type samplerState struct {
	objects *objectTable[sampler]
	// units maps texture units to the sampler bound to them.
	units map[int32]uint32
}

func newSamplerState() samplerState {
	return samplerState{objects: newObjectTable[sampler](), units: map[int32]uint32{}}
}

// GenSamplers allocates n sampler names into ids.
func (m *Manager) GenSamplers(n int32, ids []uint32) {
	defer m.call("GenSamplers", n, ids)()
	genNames(m, m.v.samplers.objects, n, ids, newSampler)
}

// DeleteSamplers deletes samplers, unbinding them from every unit.
func (m *Manager) DeleteSamplers(n int32, ids []uint32) {
	defer m.call("DeleteSamplers", n, ids)()
	s := &m.v.samplers
	deleteNames(m, s.objects, n, ids, func(name uint32, _ *sampler) {
		for unit, bound := range s.units {
			if bound == name {
				delete(s.units, unit)
			}
		}
	})
}

// IsSampler returns true for live sampler names.
func (m *Manager) IsSampler(name uint32) bool {
	defer m.call("IsSampler", name)()
	return m.v.samplers.objects.has(name)
}

// BindSampler binds a sampler to a texture unit. Name 0 unbinds.
func (m *Manager) BindSampler(unit uint32, name uint32) {
	defer m.call("BindSampler", unit, name)()
	if int64(unit) >= int64(m.v.caps.MaxCombinedTextureImageUnits) {
		m.fail(gl.INVALID_VALUE, "texture unit %d out of range", unit)
		return
	}
	if name != 0 && !m.v.samplers.objects.has(name) {
		m.fail(gl.INVALID_OPERATION, "unknown sampler %d", name)
		return
	}
	m.v.samplers.units[int32(unit)] = name
}

func (m *Manager) samplerParameter(name uint32, pname gl.Enum, v float64) {
	s := m.v.samplers.objects.get(name)
	if s == nil {
		m.fail(gl.INVALID_VALUE, "unknown sampler %d", name)
		return
	}
	err, ok := s.set(pname, v, m.v.caps.MaxTextureMaxAnisotropy)
	switch {
	case !ok:
		m.fail(gl.INVALID_ENUM, "invalid sampler parameter %v", pname)
	case err != gl.NO_ERROR:
		m.fail(err, "invalid value %v for %v", v, pname)
	}
}

// SamplerParameteri sets a parameter of a sampler.
func (m *Manager) SamplerParameteri(name uint32, pname gl.Enum, param int32) {
	defer m.call("SamplerParameteri", name, pname, param)()
	m.samplerParameter(name, pname, float64(param))
}

// SamplerParameterf sets a parameter of a sampler.
func (m *Manager) SamplerParameterf(name uint32, pname gl.Enum, param float32) {
	defer m.call("SamplerParameterf", name, pname, param)()
	m.samplerParameter(name, pname, float64(param))
}

// SamplerParameteriv sets a parameter from the first value of params.
func (m *Manager) SamplerParameteriv(name uint32, pname gl.Enum, params []int32) {
	defer m.call("SamplerParameteriv", name, pname, nil)()
	if len(params) == 0 {
		m.fail(gl.INVALID_VALUE, "no value")
		return
	}
	m.samplerParameter(name, pname, float64(params[0]))
}

// SamplerParameterfv sets a parameter from the first value of params.
func (m *Manager) SamplerParameterfv(name uint32, pname gl.Enum, params []float32) {
	defer m.call("SamplerParameterfv", name, pname, params)()
	if len(params) == 0 {
		m.fail(gl.INVALID_VALUE, "no value")
		return
	}
	m.samplerParameter(name, pname, float64(params[0]))
}

func (m *Manager) getSamplerParameter(name uint32, pname gl.Enum) param {
	s := m.v.samplers.objects.get(name)
	if s == nil {
		m.fail(gl.INVALID_VALUE, "unknown sampler %d", name)
		return param{}
	}
	p, ok := s.get(pname)
	if !ok {
		m.fail(gl.INVALID_ENUM, "invalid sampler parameter %v", pname)
	}
	return p
}

// GetSamplerParameteriv returns a parameter of a sampler, or 0 after an
// error.
func (m *Manager) GetSamplerParameteriv(name uint32, pname gl.Enum) int32 {
	defer m.call("GetSamplerParameteriv", name, pname, nil)()
	if p := m.getSamplerParameter(name, pname); len(p.values) > 0 {
		return int32(p.int64At(0))
	}
	return 0
}

// GetSamplerParameterfv returns a parameter of a sampler, or 0 after an
// error.
func (m *Manager) GetSamplerParameterfv(name uint32, pname gl.Enum) float32 {
	defer m.call("GetSamplerParameterfv", name, pname, nil)()
	if p := m.getSamplerParameter(name, pname); len(p.values) > 0 {
		return float32(p.values[0])
	}
	return 0
}

func (m *Manager) samplerQuery(pname gl.Enum) (param, bool) {
	if pname == gl.SAMPLER_BINDING {
		return uints(m.v.samplers.units[m.v.textures.active]), true
	}
	return param{}, false
}
