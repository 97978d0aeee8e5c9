// seehuhn.de/go/lineart - vector line-art generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package effect

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrNotFound is returned when an effect name is not registered.
	ErrNotFound = errors.New("effect not found")

	// ErrDuplicate is returned when an effect name is registered twice.
	ErrDuplicate = errors.New("effect already registered")
)

// Constructor creates a new instance of an effect.
type Constructor func() Effect

// Registry maps effect names to constructors.  A Registry is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor.  Registering a name twice is an error.
func (r *Registry) Register(name string, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.ctors[name] = ctor
	return nil
}

// Get returns the constructor registered under name.
func (r *Registry) Get(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return ctor, nil
}

// New creates a new instance of the named effect.
func (r *Registry) New(name string) (Effect, error) {
	ctor, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return ctor(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.ctors))
}

// builtin lists the effects of this package.
var builtin = []struct {
	name string
	ctor Constructor
}{
	{"array", func() Effect { return &Array{} }},
	{"boldify", func() Effect { return &Boldify{} }},
	{"buffer", func() Effect { return &Buffer{} }},
	{"collapse", func() Effect { return &Collapse{} }},
	{"connect", func() Effect { return &Connect{} }},
	{"culling", func() Effect { return &Culling{} }},
	{"dashify", func() Effect { return &Dashify{} }},
	{"desolve", func() Effect { return &Desolve{} }},
	{"extrude", func() Effect { return &Extrude{} }},
	{"filling", func() Effect { return &Filling{} }},
	{"noise", func() Effect { return NewNoise(nil) }},
	{"rotate", func() Effect { return &Rotate{} }},
	{"scale", func() Effect { return &Scale{} }},
	{"subdivide", func() Effect { return &Subdivide{} }},
	{"sweep", func() Effect { return &Sweep{} }},
	{"transform", func() Effect { return &Transform{} }},
	{"translate", func() Effect { return &Translate{} }},
	{"trim", func() Effect { return &Trim{} }},
	{"webify", func() Effect { return &Webify{} }},
	{"wobble", func() Effect { return &Wobble{} }},
}

// DefaultRegistry returns a new registry containing all effects of this
// package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtin {
		if err := r.Register(b.name, b.ctor); err != nil {
			panic(err)
		}
	}
	return r
}
