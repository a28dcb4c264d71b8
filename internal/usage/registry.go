// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package usage

import (
	"iter"
	"slices"

	"fillmore-labs.com/onetimevar/internal/scope"
)

// bindingKey addresses a binding uniquely within one unit.
type bindingKey struct {
	name  string
	scope scope.Key
}

// Registry records one binding per declared name and scope key.
//
// A registry belongs to a single traversal, it is never shared between units.
type Registry struct {
	scopes   *scope.Index
	bindings []*Binding // registration order
	index    map[bindingKey]*Binding
}

// NewRegistry creates an empty [Registry] resolving through the given scope tree.
func NewRegistry(scopes *scope.Index) *Registry {
	return &Registry{scopes: scopes, index: make(map[bindingKey]*Binding)}
}

// Register adds a binding.
//
// A second declaration with the same name and scope key marks both bindings as redeclared.
// Lookups keep resolving to the first one.
func (r *Registry) Register(b *Binding) {
	r.bindings = append(r.bindings, b)

	if prev, ok := r.Lookup(b.Name, b.Scope); ok {
		prev.Flags.Enable(Redeclared)
		b.Flags.Enable(Redeclared)

		return
	}

	r.index[bindingKey{b.Name, b.Scope}] = b
}

// Lookup returns the binding registered for exactly this name and scope key.
func (r *Registry) Lookup(name string, key scope.Key) (*Binding, bool) {
	b, ok := r.index[bindingKey{name, key}]

	return b, ok
}

// Resolve finds the binding a name refers to from within the scope key, nearest scope first.
//
// Names without a binding in the scope chain are globals, Resolve returns nil for them.
func (r *Registry) Resolve(name string, from scope.Key) *Binding {
	for key := range r.scopes.Chain(from) {
		if b, ok := r.index[bindingKey{name, key}]; ok {
			return b
		}
	}

	return nil
}

// All yields the bindings in registration order.
func (r *Registry) All() iter.Seq[*Binding] {
	return slices.Values(r.bindings)
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}
