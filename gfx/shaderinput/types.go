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

// Package shaderinput holds the registries of named shader attributes and
// uniforms that shapes and shaders agree on.
package shaderinput

import "fmt"

// Kind says whether a spec describes a vertex attribute or a uniform.
type Kind int

const (
	Attribute Kind = iota
	Uniform
)

func (k Kind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValueType is the type of the value held by an attribute or uniform.
type ValueType int

const (
	InvalidType ValueType = iota

	// Attribute value types.
	FloatAttribute
	FloatVector2Attribute
	FloatVector3Attribute
	FloatVector4Attribute
	FloatMatrix2x2Attribute
	FloatMatrix3x3Attribute
	FloatMatrix4x4Attribute
	BufferObjectElementAttribute

	// Uniform value types.
	IntUniform
	UnsignedIntUniform
	FloatUniform
	IntVector2Uniform
	IntVector3Uniform
	IntVector4Uniform
	UnsignedIntVector2Uniform
	UnsignedIntVector3Uniform
	UnsignedIntVector4Uniform
	FloatVector2Uniform
	FloatVector3Uniform
	FloatVector4Uniform
	Matrix2x2Uniform
	Matrix3x3Uniform
	Matrix4x4Uniform
	TextureUniform
	CubeMapTextureUniform
)

var typeNames = map[ValueType]string{
	FloatAttribute:               "Float",
	FloatVector2Attribute:        "FloatVector2",
	FloatVector3Attribute:        "FloatVector3",
	FloatVector4Attribute:        "FloatVector4",
	FloatMatrix2x2Attribute:      "FloatMatrix2x2",
	FloatMatrix3x3Attribute:      "FloatMatrix3x3",
	FloatMatrix4x4Attribute:      "FloatMatrix4x4",
	BufferObjectElementAttribute: "BufferObjectElement",
	IntUniform:                   "Int",
	UnsignedIntUniform:           "UnsignedInt",
	FloatUniform:                 "Float",
	IntVector2Uniform:            "IntVector2",
	IntVector3Uniform:            "IntVector3",
	IntVector4Uniform:            "IntVector4",
	UnsignedIntVector2Uniform:    "UnsignedIntVector2",
	UnsignedIntVector3Uniform:    "UnsignedIntVector3",
	UnsignedIntVector4Uniform:    "UnsignedIntVector4",
	FloatVector2Uniform:          "FloatVector2",
	FloatVector3Uniform:          "FloatVector3",
	FloatVector4Uniform:          "FloatVector4",
	Matrix2x2Uniform:             "Matrix2x2",
	Matrix3x3Uniform:             "Matrix3x3",
	Matrix4x4Uniform:             "Matrix4x4",
	TextureUniform:               "Texture",
	CubeMapTextureUniform:        "CubeMapTexture",
}

func (t ValueType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Kind returns whether t is an attribute or a uniform type.
func (t ValueType) Kind() Kind {
	if t >= IntUniform {
		return Uniform
	}
	return Attribute
}

// Valid returns true if t is one of the declared value types.
func (t ValueType) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Value is the value carried by a shader input. Matrix uniforms hold a
// Matrix4, vectors hold fixed size arrays and scalars hold the Go scalar.
type Value interface{}

// CombineFunc merges a newly pushed value with the one it replaces.
type CombineFunc func(old, new Value) Value

// GenerateFunc expands a value into the values of derived inputs.
type GenerateFunc func(current Value) []Value

// Spec describes a single named input.
type Spec struct {
	Name     string
	Type     ValueType
	Doc      string
	Combine  CombineFunc
	Generate GenerateFunc

	// Set when the spec is added to a registry.
	Index      int
	RegistryID int64
	Registry   *Registry
}

// AttributeSpec returns the spec of a vertex attribute.
func AttributeSpec(name string, ty ValueType, doc string) Spec {
	return Spec{Name: name, Type: ty, Doc: doc}
}

// UniformSpec returns the spec of a uniform. combine may be nil.
func UniformSpec(name string, ty ValueType, doc string, combine CombineFunc) Spec {
	return Spec{Name: name, Type: ty, Doc: doc, Combine: combine}
}

// Kind returns whether the spec is for an attribute or a uniform.
func (s *Spec) Kind() Kind { return s.Type.Kind() }

func (s Spec) String() string {
	return fmt.Sprintf("%v %v %s", s.Type.Kind(), s.Type, s.Name)
}
