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

package jsparse_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/onetimevar/internal/jsparse"
	"fillmore-labs.com/onetimevar/internal/syntax"
)

func TestParse(t *testing.T) {
	t.Parallel()

	src := []byte("const x = 1;\nf(x);\n")

	tree, err := Parse(t.Context(), token.NewFileSet(), "parse.js", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tree.Root.Kind != syntax.KindProgram {
		t.Fatalf("Got root kind %v, expected %v", tree.Root.Kind, syntax.KindProgram)
	}

	var decl *syntax.Node
	for n := range tree.Root.Preorder() {
		if n.Kind == syntax.KindDeclarator {
			decl = n

			break
		}
	}

	if decl == nil {
		t.Fatal("No declarator found")
	}

	if got := tree.Text(decl.Child("name")); got != "x" {
		t.Errorf("Got declarator name %q, expected %q", got, "x")
	}

	if got := tree.Text(decl.Child("value")); got != "1" {
		t.Errorf("Got declarator value %q, expected %q", got, "1")
	}

	if decl.Parent.Kind != syntax.KindLexicalDecl || !decl.Parent.HasToken("const") {
		t.Errorf("Got declarator parent %q, expected const declaration", decl.Parent.Type)
	}

	if got := tree.Line(decl.Start); got != 1 {
		t.Errorf("Got line %d, expected 1", got)
	}

	var calls int
	for n := range tree.Root.Preorder() {
		if n.Kind == syntax.KindCall {
			calls++

			if got := tree.Line(n.Start); got != 2 {
				t.Errorf("Got call on line %d, expected 2", got)
			}
		}
	}

	if calls != 1 {
		t.Errorf("Got %d calls, expected 1", calls)
	}
}

func TestParseBroken(t *testing.T) {
	t.Parallel()

	src := []byte("const = ;\nlet y = 2;\n")

	tree, err := Parse(t.Context(), token.NewFileSet(), "broken.js", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !tree.Root.Broken {
		t.Error("Expected program to be marked broken")
	}
}
