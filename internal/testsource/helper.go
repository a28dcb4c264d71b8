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

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It is designed to simplify testing of the onetimevar stages by handling common
// boilerplate code for parsing source fragments and locating nodes in them.
package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/onetimevar/internal/jsparse"
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// Parse parses a JavaScript source fragment into a [syntax.Tree].
//
// Fragments with syntax errors fail the test, so stages under test can assume a clean tree.
func Parse(tb testing.TB, src string) (*token.FileSet, *syntax.Tree) {
	tb.Helper()

	const filename = "test.js"

	fset := token.NewFileSet()

	tree, err := jsparse.Parse(tb.Context(), fset, filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if tree.Root.Broken {
		tb.Fatalf("Source %q has syntax errors", src)
	}

	return fset, tree
}

// Find returns the n-th node (0-based, pre-order) of the given kind whose source text is text.
func Find(tb testing.TB, tree *syntax.Tree, kind syntax.Kind, text string, n int) *syntax.Node {
	tb.Helper()

	for node := range tree.Root.Preorder() {
		if node.Kind != kind || tree.Text(node) != text {
			continue
		}

		if n == 0 {
			return node
		}

		n--
	}

	tb.Fatalf("Can't find %v %q", kind, text)

	return nil
}
