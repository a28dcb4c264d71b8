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

// Package usage implements the binding registry and the reference walker.
//
// Collection runs in two passes over the syntax tree: the first registers every
// declaration, the second attributes every identifier occurrence to the binding it
// resolves to through the scope chain. Reads of hoisted names positioned before their
// declaration are therefore still attributed.
package usage

import (
	"context"
	"iter"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// collector holds the state of one traversal.
type collector struct {
	ctx      context.Context
	logger   *slog.Logger
	tree     *syntax.Tree
	scopes   *scope.Index
	policy   Policy
	registry *Registry

	// by node index
	declared []bool
	seen     []bool
	refs     []Reference
}

// Collect registers all bindings of a unit and counts their reads.
func Collect(ctx context.Context, tree *syntax.Tree, scopes *scope.Index, policy Policy, logger *slog.Logger) *Result {
	defer trace.StartRegion(ctx, "Usage").End()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &collector{
		ctx:      ctx,
		logger:   logger,
		tree:     tree,
		scopes:   scopes,
		policy:   policy,
		registry: NewRegistry(scopes),
		declared: make([]bool, tree.Len()),
		seen:     make([]bool, tree.Len()),
		refs:     make([]Reference, tree.Len()),
	}

	// Pass 1: declarations
	for n := range tree.Root.Preorder() {
		c.declare(n)
	}

	// Pass 2: references
	for n := range tree.Root.Preorder() {
		switch n.Kind {
		case syntax.KindIdentifier, syntax.KindShorthandProperty, syntax.KindShorthandPropertyPattern:
			c.reference(n)
		}
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Collected bindings",
			slog.Int("scopes", scopes.Len()), slog.Int("bindings", c.registry.Len()))
	}

	return &Result{Registry: c.registry, tree: tree, refs: c.refs}
}

// Result is the outcome of [Collect].
type Result struct {
	*Registry
	tree *syntax.Tree
	refs []Reference
}

// Name returns the identifier text of n.
func (r *Result) Name(n *syntax.Node) string {
	return r.tree.Text(n)
}

// Reference returns the resolved reference for an identifier occurrence.
// ok is false for declaration targets and property names.
func (r *Result) Reference(n *syntax.Node) (Reference, bool) {
	if n == nil || int(n.Index) >= len(r.refs) || n.Index < 0 {
		return Reference{}, false
	}

	ref := r.refs[n.Index]

	return ref, ref.Node != nil
}

// SingleUse yields the bindings with exactly one attributed read in registration order.
// Opaque bindings are never yielded.
func (r *Result) SingleUse() iter.Seq[*Binding] {
	return func(yield func(*Binding) bool) {
		for b := range r.All() {
			if b.Uses != 1 || b.Flags.Enabled(Opaque) {
				continue
			}

			if !yield(b) {
				return
			}
		}
	}
}

// GlobalAssignments yields the assignment targets of the unattributed name in source order.
func (r *Result) GlobalAssignments(name string) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		for _, ref := range r.refs {
			if ref.Node == nil || ref.Binding != nil || ref.Role != RoleAssignmentTarget || r.Name(ref.Node) != name {
				continue
			}

			if !yield(ref.Node) {
				return
			}
		}
	}
}

// Assignments yields the assignment targets attributed to b in source order.
func (r *Result) Assignments(b *Binding) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		for _, ref := range r.refs {
			if ref.Node == nil || ref.Binding != b || ref.Role != RoleAssignmentTarget {
				continue
			}

			if !yield(ref.Node) {
				return
			}
		}
	}
}
