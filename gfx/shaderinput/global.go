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

import (
	"context"
	"sync"
)

// Context owns a lazily built global registry. Tests that need a pristine
// global registry create their own Context, everything else uses the
// package level Global.
type Context struct {
	once   sync.Once
	global *Registry
}

var defaultContext = NewContext()

// NewContext returns a new Context whose global registry has not been
// built yet.
func NewContext() *Context { return &Context{} }

// Global returns the global registry of the context, building it on first
// use.
func (c *Context) Global() *Registry {
	c.once.Do(func() { c.global = newGlobalRegistry() })
	return c.global
}

// Global returns the process wide registry holding the standard inputs.
func Global() *Registry { return defaultContext.Global() }

func newGlobalRegistry() *Registry {
	ctx := context.Background()
	r := NewRegistry()
	r.Add(ctx, AttributeSpec("aVertex", BufferObjectElementAttribute, "Vertex position."))
	r.Add(ctx, AttributeSpec("aColor", BufferObjectElementAttribute, "Vertex color."))
	r.Add(ctx, AttributeSpec("aNormal", BufferObjectElementAttribute, "Normal direction."))
	r.Add(ctx, AttributeSpec("aTexCoords", BufferObjectElementAttribute, "Texture coordinates."))

	r.Add(ctx, UniformSpec("uViewportSize", IntVector2Uniform, "Viewport Size.", nil))
	r.Add(ctx, UniformSpec("uProjectionMatrix", Matrix4x4Uniform, "Projection matrix.", nil))
	r.Add(ctx, UniformSpec("uModelviewMatrix", Matrix4x4Uniform, "Cumulative modelview matrix.", CombineMatrices))
	r.Add(ctx, UniformSpec("uBaseColor", FloatVector4Uniform, "Base color for shapes.", nil))
	return r
}
