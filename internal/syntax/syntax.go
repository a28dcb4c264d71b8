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

// Package syntax defines the walkable syntax tree the analysis runs on.
//
// A tree is produced by a parser adapter (see package jsparse) from one unit of source
// text. Nodes carry their [Kind], the host grammar label, the field name under which they
// appear in their parent, byte offsets into the source and parent/child links.
package syntax

import (
	"go/token"
	"iter"
)

// NodeIndex is the pre-order index of a [Node] in its [Tree], increasing monotonically
// throughout the traversal.
type NodeIndex int32

// InvalidNode represents an invalid node index.
const InvalidNode NodeIndex = -1

// Valid checks if this index is valid.
func (n NodeIndex) Valid() bool {
	return n != InvalidNode
}

// A Node is a node in a syntax tree.
type Node struct {
	Kind  Kind
	Type  string // grammar label, or the token text for anonymous tokens
	Field string // field name in the parent, if any

	Start, End int // byte offsets, End exclusive

	// Broken is set when the node is or contains a syntax error.
	Broken bool

	Parent   *Node
	Children []*Node

	// set by NewTree:
	Index NodeIndex
}

// Span returns the start and end offset of the node.
func (n *Node) Span() (start, end int) {
	return n.Start, n.End
}

// Len returns the length of the node's source text in bytes.
func (n *Node) Len() int {
	return n.End - n.Start
}

// Contains reports whether o lies within the source range of n.
func (n *Node) Contains(o *Node) bool {
	return n.Start <= o.Start && o.End <= n.End
}

// ContainsOffset reports whether the offset lies within the source range of n.
func (n *Node) ContainsOffset(offset int) bool {
	return n.Start <= offset && offset < n.End
}

// Child returns the first child with the given field name, or nil.
func (n *Node) Child(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// FirstOf returns the first named child of the given kind, or nil.
func (n *Node) FirstOf(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// HasToken reports whether n has an anonymous token child with the given text.
func (n *Node) HasToken(text string) bool {
	for _, c := range n.Children {
		if c.Kind == KindToken && c.Type == text {
			return true
		}
	}

	return false
}

// Named yields the children that are neither anonymous tokens nor comments.
func (n *Node) Named() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.Children {
			if c.Kind == KindToken || c.Kind == KindComment {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// Ancestors yields the parents of n, innermost first.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.Parent; p != nil; p = p.Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Preorder yields n and all its descendants in depth-first pre-order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

// Unparen returns the expression inside any number of enclosing parentheses.
func Unparen(n *Node) *Node {
	for n != nil && n.Kind == KindParen {
		inner := n.FirstNamed()
		if inner == nil {
			break
		}

		n = inner
	}

	return n
}

// FirstNamed returns the first child that is neither an anonymous token nor a comment, or nil.
func (n *Node) FirstNamed() *Node {
	for _, c := range n.Children {
		if c.Kind != KindToken && c.Kind != KindComment {
			return c
		}
	}

	return nil
}

// Tree is the syntax tree of one unit of source text.
type Tree struct {
	File  *token.File // position information of the unit
	Src   []byte
	Root  *Node
	nodes []*Node // in pre-order
}

// NewTree assigns pre-order indices to all nodes below root and returns the tree.
func NewTree(file *token.File, src []byte, root *Node) *Tree {
	t := &Tree{File: file, Src: src, Root: root}

	for n := range root.Preorder() {
		n.Index = NodeIndex(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}

	return t
}

// At returns the node with the given pre-order index.
func (t *Tree) At(i NodeIndex) *Node {
	if i < 0 || int(i) >= len(t.nodes) {
		return nil
	}

	return t.nodes[i]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Text returns the source text of n.
func (t *Tree) Text(n *Node) string {
	if n == nil || n.Start < 0 || n.End > len(t.Src) || n.Start > n.End {
		return ""
	}

	return string(t.Src[n.Start:n.End])
}

// Pos converts a byte offset into a [token.Pos] of the unit.
func (t *Tree) Pos(offset int) token.Pos {
	if t.File == nil {
		return token.NoPos
	}

	return t.File.Pos(offset)
}

// Position returns the line and column information of a byte offset.
func (t *Tree) Position(offset int) token.Position {
	if t.File == nil {
		return token.Position{Offset: offset}
	}

	return t.File.Position(t.File.Pos(offset))
}

// Line returns the 1-based line number of a byte offset.
func (t *Tree) Line(offset int) int {
	return t.Position(offset).Line
}
