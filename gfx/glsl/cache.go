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
	"context"

	lru "github.com/hashicorp/golang-lru"

	"github.com/google/ion/core/log"
	"github.com/google/ion/gfx/glenum"
)

// DefaultCacheSize is the number of parsed shaders kept by the default cache.
const DefaultCacheSize = 256

// Shader is a parsed shader. It is shared between all users of a cache and
// must not be modified.
type Shader struct {
	Stage        glenum.Enum
	Result       Result
	Declarations []Declaration
}

// Filter returns the declarations with the given storage qualifier.
func (s *Shader) Filter(storage Storage) []Declaration {
	out := []Declaration{}
	for _, d := range s.Declarations {
		if d.Storage == storage {
			out = append(out, d)
		}
	}
	return out
}

type cacheKey struct {
	stage  glenum.Enum
	source string
}

type cacheEntry struct {
	shader *Shader
	err    error
}

// Cache memoizes Parse by stage and source text.
type Cache struct {
	entries *lru.Cache
}

// NewCache returns a cache holding at most size parsed shaders.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &Cache{entries: entries}
}

var defaultCache = NewCache(DefaultCacheSize)

// Parse preprocesses and scans source using the default cache.
func Parse(ctx context.Context, stage glenum.Enum, source string) (*Shader, error) {
	return defaultCache.Parse(ctx, stage, source)
}

// Parse preprocesses and scans source. Preprocessor warnings are logged on
// every call, including the ones answered from the cache.
func (c *Cache) Parse(ctx context.Context, stage glenum.Enum, source string) (*Shader, error) {
	key := cacheKey{stage, source}
	var e cacheEntry
	if v, ok := c.entries.Get(key); ok {
		e = v.(cacheEntry)
	} else {
		e = parse(stage, source)
		c.entries.Add(key, e)
	}
	if e.err != nil {
		return nil, e.err
	}
	for _, w := range e.shader.Result.Warnings {
		log.W(ctx, "%s", w)
	}
	return e.shader, nil
}

// Len returns the number of cached shaders.
func (c *Cache) Len() int { return c.entries.Len() }

func parse(stage glenum.Enum, source string) cacheEntry {
	res, err := Preprocess(source)
	if err != nil {
		return cacheEntry{err: err}
	}
	return cacheEntry{shader: &Shader{
		Stage:        stage,
		Result:       res,
		Declarations: Scan(stage, res),
	}}
}
