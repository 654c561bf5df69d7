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
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/google/ion/core/log"
)

var (
	registryCount int64
	largestSize   int64
)

// Registry is a namespace of attribute and uniform specs. A registry may
// include other registries, in which case their specs are visible through
// it as well. No name may be defined twice across a registry and the
// registries it transitively includes.
type Registry struct {
	id int64

	mu         sync.RWMutex
	attributes []*Spec
	uniforms   []*Spec
	byName     map[string]*Spec
	includes   []*Registry
}

// NewRegistry returns a new empty registry with a unique id.
func NewRegistry() *Registry {
	return &Registry{
		id:     atomic.AddInt64(&registryCount, 1),
		byName: map[string]*Spec{},
	}
}

// ID returns the unique identifier of the registry. Identifiers are
// assigned in creation order and never reused.
func (r *Registry) ID() int64 { return r.id }

// LargestRegistrySize returns the largest number of attributes or uniforms
// held by any single registry so far.
func LargestRegistrySize() int { return int(atomic.LoadInt64(&largestSize)) }

func updateLargestSize(size int64) {
	for {
		cur := atomic.LoadInt64(&largestSize)
		if size <= cur || atomic.CompareAndSwapInt64(&largestSize, cur, size) {
			return
		}
	}
}

// Add appends spec to the attributes or uniforms of the registry, depending
// on the kind of its value type. Add returns false if the registry already
// defines an input with the same name, or if the name is not a valid input
// name. Includes are not consulted: use CheckInputsAreUnique to find
// collisions with included registries.
func (r *Registry) Add(ctx context.Context, spec Spec) bool {
	kind := spec.Type.Kind()
	if _, _, ok := ParseName(spec.Name); !ok {
		log.W(ctx, "Can't add %v spec for '%s': invalid input name.", kind, spec.Name)
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[spec.Name]; dup {
		log.W(ctx, "Can't add %v spec for '%s': already present in registry %d", kind, spec.Name, r.id)
		return false
	}
	s := spec
	s.RegistryID = r.id
	s.Registry = r
	var size int
	switch kind {
	case Attribute:
		s.Index = len(r.attributes)
		r.attributes = append(r.attributes, &s)
		size = len(r.attributes)
	default:
		s.Index = len(r.uniforms)
		r.uniforms = append(r.uniforms, &s)
		size = len(r.uniforms)
	}
	r.byName[s.Name] = &s
	updateLargestSize(int64(size))
	return true
}

// Contains returns true if the registry or any registry it includes defines
// an input called name.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.byName[name]; ok {
		return true
	}
	for _, inc := range r.includes {
		if inc.Contains(name) {
			return true
		}
	}
	return false
}

// Find returns the spec called name from the registry or its includes, or
// nil if there is none. Included registries are searched first.
func (r *Registry) Find(name string) *Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inc := range r.includes {
		if s := inc.Find(name); s != nil {
			return s
		}
	}
	return r.byName[name]
}

// FindKind is like Find but only returns a spec of the given kind.
func (r *Registry) FindKind(name string, kind Kind) *Spec {
	if s := r.Find(name); s != nil && s.Kind() == kind {
		return s
	}
	return nil
}

// Attributes returns the attribute specs added to this registry, in order.
func (r *Registry) Attributes() []*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.attributes)
}

// Uniforms returns the uniform specs added to this registry, in order.
func (r *Registry) Uniforms() []*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.uniforms)
}

// Includes returns the registries directly included by this registry.
func (r *Registry) Includes() []*Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.includes)
}

// Include makes the specs of other visible through r. It fails if other is
// nil, is r itself, or if any name is defined both by r or its includes and
// by other or its includes.
func (r *Registry) Include(ctx context.Context, other *Registry) bool {
	switch {
	case other == nil:
		log.E(ctx, "Can't include a nil registry in registry %d", r.id)
		return false
	case other == r:
		log.E(ctx, "Can't include registry %d in registry %d because a registry cannot include itself", other.id, r.id)
		return false
	case other.reaches(r):
		log.E(ctx, "Can't include registry %d in registry %d because it already includes registry %d", other.id, r.id, r.id)
		return false
	}
	mine := r.names()
	theirs := other.names()
	if common := mine.Intersect(theirs); common.Cardinality() > 0 {
		clash := common.ToSlice()
		slices.Sort(clash)
		log.E(ctx, "Can't include registry %d in registry %d because they or their includes both define the shader input '%s'", other.id, r.id, clash[0])
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.includes = append(r.includes, other)
	return true
}

// IncludeGlobal includes the global registry of the default context.
func (r *Registry) IncludeGlobal(ctx context.Context) bool {
	return r.Include(ctx, Global())
}

// CheckInputsAreUnique returns false if the same name is defined more than
// once across the registry and its includes. Each duplicate is logged.
func (r *Registry) CheckInputsAreUnique(ctx context.Context) bool {
	r.mu.RLock()
	seen := maps.Clone(r.byName)
	includes := slices.Clone(r.includes)
	r.mu.RUnlock()

	unique := true
	for _, inc := range includes {
		entries := inc.entries()
		names := maps.Keys(entries)
		slices.Sort(names)
		for _, name := range names {
			if prev, ok := seen[name]; ok {
				log.W(ctx, "Registry %d defines duplicate input '%s' which is also defined in registry %d",
					prev.RegistryID, name, entries[name].RegistryID)
				unique = false
				continue
			}
			seen[name] = entries[name]
		}
	}
	return unique
}

// entries returns every spec visible through r by name. Where a name is
// defined more than once, the registry's own spec wins over the includes,
// and earlier includes win over later ones.
func (r *Registry) entries() map[string]*Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := maps.Clone(r.byName)
	for _, inc := range r.includes {
		for name, s := range inc.entries() {
			if _, ok := out[name]; !ok {
				out[name] = s
			}
		}
	}
	return out
}

// reaches returns true if target is r or is transitively included by r.
func (r *Registry) reaches(target *Registry) bool {
	if r == target {
		return true
	}
	for _, inc := range r.Includes() {
		if inc.reaches(target) {
			return true
		}
	}
	return false
}

func (r *Registry) names() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(maps.Keys(r.entries())...)
}
