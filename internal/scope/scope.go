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

// Package scope builds the scope tree of a syntax tree.
package scope

import (
	"context"
	"iter"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/onetimevar/internal/syntax"
)

// Key identifies a scope within one unit. It is the start offset of the node introducing the scope.
//
// Lexically parallel constructs (if/else arms, switch cases) start at distinct offsets
// and therefore never share a key.
type Key int

// Root is the key of the program scope.
const Root Key = -1

// Kind is the construct introducing a scope.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	Program  Kind = iota // program
	Block                // block
	Case                 // case
	Loop                 // loop
	Function             // function
	Catch                // catch
)

// Scope is a node in the scope tree.
type Scope struct {
	Key    Key
	Parent Key // Root for the program scope itself
	Kind   Kind
	Node   *syntax.Node
}

// Index maps scope keys to scopes and records the source spans of all functions of one unit.
type Index struct {
	scopes    map[Key]*Scope
	functions []span // in pre-order, sorted by start
}

type span struct{ start, end int }

// Build constructs the scope tree of a unit with a single pre-order traversal.
func Build(ctx context.Context, tree *syntax.Tree) *Index {
	defer trace.StartRegion(ctx, "Scopes").End()

	s := &Index{scopes: make(map[Key]*Scope)}

	root := &Scope{Key: Root, Parent: Root, Kind: Program, Node: tree.Root}
	s.scopes[Root] = root

	for n := range tree.Root.Preorder() {
		if n == tree.Root {
			continue
		}

		kind, ok := kindOf(n)
		if !ok {
			continue
		}

		if kind == Function {
			s.functions = append(s.functions, span{n.Start, n.End})
		}

		key := Key(n.Start)
		s.scopes[key] = &Scope{Key: key, Parent: s.Governing(n), Kind: kind, Node: n}
	}

	return s
}

// kindOf returns the scope kind introduced by n, if any.
func kindOf(n *syntax.Node) (Kind, bool) {
	switch n.Kind {
	case syntax.KindBlock:
		return Block, true

	case syntax.KindSwitchCase:
		return Case, true

	case syntax.KindFor, syntax.KindForIn:
		return Loop, true

	case syntax.KindFuncDecl, syntax.KindFuncExpr, syntax.KindArrow, syntax.KindMethod:
		return Function, true

	case syntax.KindCatch:
		return Catch, true

	default:
		return 0, false
	}
}

// Lookup returns the scope for a key.
func (s *Index) Lookup(key Key) (*Scope, bool) {
	scope, ok := s.scopes[key]

	return scope, ok
}

// Len returns the number of scopes.
func (s *Index) Len() int {
	return len(s.scopes)
}

// Governing returns the key of the innermost scope enclosing n, not counting n itself.
//
// Expressions in a case test belong to the scope around the switch body, not to the case.
func (s *Index) Governing(n *syntax.Node) Key {
	for child, p := n, n.Parent; p != nil; child, p = p, p.Parent {
		if p.Kind == syntax.KindProgram {
			return Root
		}

		if _, ok := kindOf(p); !ok {
			continue
		}

		if p.Kind == syntax.KindSwitchCase && child.Field == "value" {
			continue
		}

		return Key(p.Start)
	}

	return Root
}

// Own returns the key of the scope introduced by n, or the key of the scope governing n.
func (s *Index) Own(n *syntax.Node) Key {
	if n.Kind == syntax.KindProgram {
		return Root
	}

	if _, ok := kindOf(n); ok {
		return Key(n.Start)
	}

	return s.Governing(n)
}

// Chain yields the scope key and its ancestors, innermost first, ending with [Root].
func (s *Index) Chain(key Key) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for {
			if !yield(key) || key == Root {
				return
			}

			scope, ok := s.scopes[key]
			if !ok {
				yield(Root)

				return
			}

			key = scope.Parent
		}
	}
}

// Encloses reports whether the scope outer is inner or one of its ancestors.
func (s *Index) Encloses(outer, inner Key) bool {
	for key := range s.Chain(inner) {
		if key == outer {
			return true
		}
	}

	return false
}

// FunctionScope returns the innermost function or program scope in the chain of key.
// This is where var declarations are bound.
func (s *Index) FunctionScope(key Key) Key {
	for k := range s.Chain(key) {
		if scope, ok := s.scopes[k]; ok && (scope.Kind == Function || scope.Kind == Program) {
			return k
		}
	}

	return Root
}

// EnclosingFunction returns the span of the innermost function containing the offset.
// ok is false when the offset is at the top level of the program.
func (s *Index) EnclosingFunction(offset int) (start, end int, ok bool) {
	// the last function starting at or before offset
	i, found := slices.BinarySearchFunc(s.functions, offset, func(f span, o int) int { return f.start - o })
	if found {
		i++
	}

	for i--; i >= 0; i-- {
		if f := s.functions[i]; f.start <= offset && offset < f.end {
			return f.start, f.end, true
		}
	}

	return 0, 0, false
}

// InLoop reports whether n is lexically inside a loop construct.
func InLoop(n *syntax.Node) bool {
	for p := range n.Ancestors() {
		if p.Kind.IsLoop() {
			return true
		}
	}

	return false
}
