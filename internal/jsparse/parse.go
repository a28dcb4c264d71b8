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

// Package jsparse converts JavaScript source into a [syntax.Tree] using tree-sitter.
package jsparse

import (
	"context"
	"errors"
	"fmt"
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/onetimevar/internal/syntax"
)

// ErrParse is returned when the parser produced no tree at all.
// Source with syntax errors still yields a tree, with the affected subtrees marked.
var ErrParse = errors.New("parse failed")

// Parse parses one unit of JavaScript source.
//
// The unit is added to fset under filename, so positions of diagnostics can be resolved.
func Parse(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("onetimevar: %s: %w: %w", filename, ErrParse, err)
	}

	if tree == nil {
		return nil, fmt.Errorf("onetimevar: %s: %w", filename, ErrParse)
	}
	defer tree.Close()

	root := convert(tree.RootNode())
	if root == nil {
		return nil, fmt.Errorf("onetimevar: %s: %w", filename, ErrParse)
	}

	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	return syntax.NewTree(file, src, root), nil
}

// convert copies the tree-sitter tree below n into [syntax.Node] values.
func convert(n *sitter.Node) *syntax.Node {
	if n == nil || n.IsNull() {
		return nil
	}

	c := sitter.NewTreeCursor(n)
	defer c.Close()

	root := newNode(c.CurrentNode(), "")

	// iterative walk over the cursor, parent tracks the node of the cursor position
	parent := root
	if !c.GoToFirstChild() {
		return root
	}

	for {
		node := newNode(c.CurrentNode(), c.CurrentFieldName())
		node.Parent = parent
		parent.Children = append(parent.Children, node)

		if c.GoToFirstChild() {
			parent = node

			continue
		}

		for !c.GoToNextSibling() {
			if !c.GoToParent() || parent == root {
				return root
			}

			parent = parent.Parent
		}
	}
}

func newNode(n *sitter.Node, field string) *syntax.Node {
	label := n.Type()

	return &syntax.Node{
		Kind:   kindOf(label, n.IsNamed()),
		Type:   label,
		Field:  field,
		Start:  int(n.StartByte()),
		End:    int(n.EndByte()),
		Broken: n.IsMissing() || n.HasError(),
	}
}
