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

package check

import (
	"iter"

	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// SafetyCheck evaluates whether the initializer of a single-use binding can be
// substituted at its read.
func SafetyCheck(result *usage.Result, scopes *scope.Index, b *usage.Binding) FixStatus {
	if b.Init == nil || b.Last == nil {
		return FixAllowed // substituted with undefined
	}

	// Check whether identifiers of the initializer resolve differently at the read site
	if initShadowed(result, scopes, b) {
		return FixBlockedShadowed
	}

	// Check whether bindings read by the initializer may change before the read
	if dependencyReassigned(result, b) {
		return FixBlockedReassigned
	}

	// Check whether the initializer depends on its function context
	if contextChanged(result, b) {
		return FixBlockedContext
	}

	return FixAllowed
}

// initShadowed checks whether any identifier used in the initializer would resolve to
// a different binding when evaluated at the read site.
func initShadowed(result *usage.Result, scopes *scope.Index, b *usage.Binding) bool {
	at := scopes.Governing(b.Last)

	// Track which names we've already checked to avoid redundant work
	checked := make(map[string]struct{})

	for n := range b.Init.Preorder() {
		ref, ok := result.Reference(n)
		if !ok {
			continue // declarations and property names
		}

		// Skip identifiers bound within the initializer itself
		// (e.g. parameters of an arrow function)
		if ref.Binding != nil && b.Init.Contains(ref.Binding.Target) {
			continue
		}

		name := result.Name(n)

		if _, ok := checked[name]; ok {
			continue
		}

		if result.Resolve(name, at) != ref.Binding {
			return true
		}

		checked[name] = struct{}{}
	}

	return false
}

// dependencyReassigned checks whether the initializer reads a binding or global that is
// assigned at or after the declaration.
func dependencyReassigned(result *usage.Result, b *usage.Binding) bool {
	for n := range b.Init.Preorder() {
		ref, ok := result.Reference(n)
		if !ok {
			continue
		}

		var assignments iter.Seq[*syntax.Node]

		switch {
		case ref.Binding == nil:
			assignments = result.GlobalAssignments(result.Name(n))

		case ref.Binding.Flags.Enabled(usage.Reassigned):
			assignments = result.Assignments(ref.Binding)

		default:
			continue
		}

		for assignment := range assignments {
			if assignment.Start >= b.Declarator.Start {
				return true
			}
		}
	}

	return false
}

// contextChanged checks whether the initializer uses this, arguments, super or new.target
// and the read lies in a different non-arrow function, or whether it suspends
// and the read lies in a different function.
func contextChanged(result *usage.Result, b *usage.Binding) bool {
	receiver, suspends := contextUse(result, b.Init)

	if receiver && enclosing(b.Declarator, false) != enclosing(b.Last, false) {
		return true
	}

	if suspends && enclosing(b.Declarator, true) != enclosing(b.Last, true) {
		return true
	}

	return false
}

// contextUse determines whether n depends on the receiver of the enclosing function (this,
// arguments, super, new.target) or suspends it (await, yield).
func contextUse(result *usage.Result, n *syntax.Node) (receiver, suspends bool) {
	var walk func(n *syntax.Node, inArrow bool)
	walk = func(n *syntax.Node, inArrow bool) {
		switch {
		case n.Kind == syntax.KindArrow:
			inArrow = true

		case n.Kind.IsFunction() || n.Kind == syntax.KindClass:
			return // own context
		}

		switch n.Kind {
		case syntax.KindLiteral:
			if n.Type == "this" || n.Type == "super" {
				receiver = true
			}

		case syntax.KindIdentifier:
			if ref, ok := result.Reference(n); ok && ref.Binding == nil && result.Name(n) == "arguments" {
				receiver = true
			}

		case syntax.KindAwait, syntax.KindYield:
			if !inArrow {
				suspends = true
			}

		case syntax.KindOther:
			if n.Type == "meta_property" {
				receiver = true
			}
		}

		for _, c := range n.Children {
			walk(c, inArrow)
		}
	}

	walk(n, false)

	return receiver, suspends
}

// enclosing returns the innermost function around n, optionally skipping arrow functions.
func enclosing(n *syntax.Node, arrows bool) *syntax.Node {
	for p := range n.Ancestors() {
		if !p.Kind.IsFunction() {
			continue
		}

		if p.Kind == syntax.KindArrow && !arrows {
			continue
		}

		return p
	}

	return nil
}
