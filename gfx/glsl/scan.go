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

package glsl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/ion/gfx/glenum"
)

// Storage is the storage qualifier of a declaration.
type Storage int

const (
	// Attribute is a per-vertex input of a vertex shader.
	Attribute Storage = iota
	// Uniform is a per-draw constant.
	Uniform
	// Varying is passed from the vertex to the fragment stage.
	Varying
	// Output is a fragment shader output.
	Output
)

func (s Storage) String() string {
	switch s {
	case Attribute:
		return "attribute"
	case Uniform:
		return "uniform"
	case Varying:
		return "varying"
	case Output:
		return "out"
	default:
		return "Storage(" + strconv.Itoa(int(s)) + ")"
	}
}

// Declaration is a single named shader input or output.
type Declaration struct {
	Storage Storage
	Type    glenum.Enum
	Name    string
	// Size is the number of array elements, or 0 if the declaration is not
	// an array.
	Size int
}

// IsArray returns true if the declaration is an array.
func (d Declaration) IsArray() bool { return d.Size > 0 }

// Count returns the number of elements, 1 for non-arrays.
func (d Declaration) Count() int {
	if d.Size > 0 {
		return d.Size
	}
	return 1
}

var types = map[string]glenum.Enum{
	"bool":  glenum.BOOL,
	"float": glenum.FLOAT,
	"vec2":  glenum.FLOAT_VEC2,
	"vec3":  glenum.FLOAT_VEC3,
	"vec4":  glenum.FLOAT_VEC4,
	"int":   glenum.INT,
	"ivec2": glenum.INT_VEC2,
	"ivec3": glenum.INT_VEC3,
	"ivec4": glenum.INT_VEC4,
	"uint":  glenum.UNSIGNED_INT,
	"uvec2": glenum.UNSIGNED_INT_VEC2,
	"uvec3": glenum.UNSIGNED_INT_VEC3,
	"uvec4": glenum.UNSIGNED_INT_VEC4,
	"mat2":  glenum.FLOAT_MAT2,
	"mat3":  glenum.FLOAT_MAT3,
	"mat4":  glenum.FLOAT_MAT4,

	"sampler1D":              glenum.SAMPLER_1D,
	"sampler1DArray":         glenum.SAMPLER_1D_ARRAY,
	"sampler1DArrayShadow":   glenum.SAMPLER_1D_ARRAY_SHADOW,
	"sampler1DShadow":        glenum.SAMPLER_1D_SHADOW,
	"sampler2D":              glenum.SAMPLER_2D,
	"sampler2DArray":         glenum.SAMPLER_2D_ARRAY,
	"sampler2DArrayShadow":   glenum.SAMPLER_2D_ARRAY_SHADOW,
	"sampler2DShadow":        glenum.SAMPLER_2D_SHADOW,
	"sampler2DMS":            glenum.SAMPLER_2D_MULTISAMPLE,
	"sampler3D":              glenum.SAMPLER_3D,
	"samplerCube":            glenum.SAMPLER_CUBE,
	"samplerCubeArray":       glenum.SAMPLER_CUBE_MAP_ARRAY,
	"samplerCubeArrayShadow": glenum.SAMPLER_CUBE_MAP_ARRAY_SHADOW,
	"samplerCubeShadow":      glenum.SAMPLER_CUBE_SHADOW,
	"samplerExternalOES":     glenum.SAMPLER_EXTERNAL_OES,
	"isampler1D":             glenum.INT_SAMPLER_1D,
	"isampler1DArray":        glenum.INT_SAMPLER_1D_ARRAY,
	"isampler2D":             glenum.INT_SAMPLER_2D,
	"isampler2DArray":        glenum.INT_SAMPLER_2D_ARRAY,
	"isampler3D":             glenum.INT_SAMPLER_3D,
	"isamplerCube":           glenum.INT_SAMPLER_CUBE,
	"isamplerCubeArray":      glenum.INT_SAMPLER_CUBE_MAP_ARRAY,
	"usampler1D":             glenum.UNSIGNED_INT_SAMPLER_1D,
	"usampler1DArray":        glenum.UNSIGNED_INT_SAMPLER_1D_ARRAY,
	"usampler2D":             glenum.UNSIGNED_INT_SAMPLER_2D,
	"usampler2DArray":        glenum.UNSIGNED_INT_SAMPLER_2D_ARRAY,
	"usampler3D":             glenum.UNSIGNED_INT_SAMPLER_3D,
	"usamplerCube":           glenum.UNSIGNED_INT_SAMPLER_CUBE,
	"usamplerCubeArray":      glenum.UNSIGNED_INT_SAMPLER_CUBE_MAP_ARRAY,
}

// TypeOf returns the GL type of the named GLSL type.
func TypeOf(name string) (glenum.Enum, bool) {
	t, ok := types[name]
	return t, ok
}

// Qualifiers that may precede the storage qualifier or the type.
var ignored = map[string]bool{
	"highp": true, "mediump": true, "lowp": true,
	"flat": true, "smooth": true, "noperspective": true,
	"centroid": true, "invariant": true, "const": true,
}

var (
	layout      = regexp.MustCompile(`layout\s*\([^)]*\)`)
	punctuation = strings.NewReplacer("[", " [ ", "]", " ] ", ",", " , ")
)

// Scan returns the declarations of the preprocessed source of a shader of
// the given stage, in source order. Declarations of unknown types and
// repeated declarations of the same name are dropped. Array sizes may be
// integer literals or macros defined to one.
func Scan(stage glenum.Enum, res Result) []Declaration {
	out := []Declaration{}
	seen := map[string]bool{}
	for _, stmt := range strings.Split(res.Text(), ";") {
		stmt = layout.ReplaceAllString(stmt, " ")
		if i := strings.LastIndexAny(stmt, "{}"); i >= 0 {
			stmt = stmt[i+1:]
		}
		if strings.ContainsAny(stmt, "()") {
			continue
		}
		tokens := strings.Fields(punctuation.Replace(stmt))
		for len(tokens) > 0 && ignored[tokens[0]] {
			tokens = tokens[1:]
		}
		if len(tokens) < 3 {
			continue
		}
		storage, ok := storageOf(stage, tokens[0])
		if !ok {
			continue
		}
		tokens = tokens[1:]
		for len(tokens) > 0 && ignored[tokens[0]] {
			tokens = tokens[1:]
		}
		if len(tokens) < 2 {
			continue
		}
		ty, ok := types[tokens[0]]
		if !ok {
			continue
		}
		for _, decl := range splitNames(tokens[1:]) {
			d, ok := declaration(decl, res.Defines)
			if !ok || seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			d.Storage, d.Type = storage, ty
			out = append(out, d)
		}
	}
	return out
}

func storageOf(stage glenum.Enum, qualifier string) (Storage, bool) {
	switch qualifier {
	case "uniform":
		return Uniform, true
	case "attribute":
		return Attribute, stage == glenum.VERTEX_SHADER
	case "varying":
		return Varying, true
	case "in":
		if stage == glenum.VERTEX_SHADER {
			return Attribute, true
		}
		return Varying, true
	case "out":
		if stage == glenum.VERTEX_SHADER {
			return Varying, true
		}
		return Output, true
	}
	return 0, false
}

func splitNames(tokens []string) [][]string {
	out := [][]string{}
	cur := []string{}
	for _, t := range tokens {
		if t == "," {
			out = append(out, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, t)
	}
	return append(out, cur)
}

// declaration parses "name" or "name [ size ]".
func declaration(tokens []string, defines map[string]string) (Declaration, bool) {
	switch {
	case len(tokens) == 1:
		return Declaration{Name: tokens[0]}, true
	case len(tokens) == 4 && tokens[1] == "[" && tokens[3] == "]":
		size, err := strconv.Atoi(tokens[2])
		if err != nil {
			if v, ok := defines[tokens[2]]; ok {
				size, err = strconv.Atoi(strings.TrimSpace(v))
			}
		}
		if err != nil || size <= 0 {
			return Declaration{}, false
		}
		return Declaration{Name: tokens[0], Size: size}, true
	}
	return Declaration{}, false
}
