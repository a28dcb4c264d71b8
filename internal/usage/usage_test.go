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

package usage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/testsource"
	. "fillmore-labs.com/onetimevar/internal/usage"
)

type summary struct {
	Name       string
	Uses       int
	Opaque     bool
	Reassigned bool
	EarlyRead  bool
	Redeclared bool
	Exported   bool
}

func collect(t *testing.T, src string, policy Policy) *Result {
	t.Helper()

	_, tree := testsource.Parse(t, src)
	scopes := scope.Build(t.Context(), tree)

	return Collect(t.Context(), tree, scopes, policy, nil)
}

// declared summarizes the bindings declared by variable declarators.
func declared(r *Result) []summary {
	var s []summary

	for b := range r.All() {
		if b.Declarator == nil {
			continue
		}

		s = append(s, summary{
			Name:       b.Name,
			Uses:       b.Uses,
			Opaque:     b.Flags.Enabled(Opaque),
			Reassigned: b.Flags.Enabled(Reassigned),
			EarlyRead:  b.Flags.Enabled(EarlyRead),
			Redeclared: b.Flags.Enabled(Redeclared),
			Exported:   b.Flags.Enabled(Exported),
		})
	}

	return s
}

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []summary
	}{
		{
			name: "counts",
			src:  `const a = 1; f(a); const b = 2; g(b, b); const c = 3;`,
			want: []summary{{Name: "a", Uses: 1}, {Name: "b", Uses: 2}, {Name: "c"}},
		},
		{
			name: "branch_isolation",
			src:  `if (c) { let x = 1; f(x); } else { let x = 2; g(x); }`,
			want: []summary{{Name: "x", Uses: 1}, {Name: "x", Uses: 1}},
		},
		{
			name: "property_names",
			src:  `const k = 1; o.k; ({ k: 2 }); f(k);`,
			want: []summary{{Name: "k", Uses: 1}},
		},
		{
			name: "shorthand",
			src:  `const a = 1; f({ a });`,
			want: []summary{{Name: "a", Uses: 1}},
		},
		{
			name: "shadowing",
			src:  `const x = 1; { const x = 2; f(x); } g(x);`,
			want: []summary{{Name: "x", Uses: 1}, {Name: "x", Uses: 1}},
		},
		{
			name: "parameter_shadowing",
			src:  `const x = 1; function f(x) { return x; } g(x);`,
			want: []summary{{Name: "x", Uses: 1}},
		},
		{
			name: "reassigned",
			src:  `let x = 1; x = 2; f(x); let y = 1; y++; let z = 1; [z] = a;`,
			want: []summary{
				{Name: "x", Uses: 1, Reassigned: true},
				{Name: "y", Reassigned: true},
				{Name: "z", Reassigned: true},
			},
		},
		{
			name: "early_read",
			src:  `function g() { return v; } const v = 1;`,
			want: []summary{{Name: "v", Uses: 1, EarlyRead: true}},
		},
		{
			name: "redeclared",
			src:  `var x = 1; var x = 2; f(x);`,
			want: []summary{{Name: "x", Uses: 1, Redeclared: true}, {Name: "x", Redeclared: true}},
		},
		{
			name: "var_hoisting",
			src:  `function f() { if (c) { var x = 1; } g(x); }`,
			want: []summary{{Name: "x", Uses: 1}},
		},
		{
			name: "block_scoped_not_hoisted",
			src:  `function f() { if (c) { let x = 1; } g(x); }`,
			want: []summary{{Name: "x"}},
		},
		{
			name: "multi_name_pattern",
			src:  `const { a, b } = o; f(a);`,
			want: []summary{{Name: "a", Uses: 1, Opaque: true}, {Name: "b", Opaque: true}},
		},
		{
			name: "array_rest",
			src:  `const [...r] = xs; f(r);`,
			want: []summary{{Name: "r", Uses: 1, Opaque: true}},
		},
		{
			name: "export_clause",
			src:  `const x = 1; export { x };`,
			want: []summary{{Name: "x", Uses: 1, Exported: true}},
		},
		{
			name: "export_declaration",
			src:  `export const x = 1; f(x);`,
			want: []summary{{Name: "x", Uses: 1, Exported: true}},
		},
		{
			name: "function_value",
			src:  `const h = () => 1; h();`,
			want: []summary{{Name: "h", Uses: 1, Opaque: true}},
		},
		{
			name: "labels_and_globals",
			src:  `const n = 1; outer: for (;;) { break outer; } console.log(n);`,
			want: []summary{{Name: "n", Uses: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := declared(collect(t, tt.src, DefaultPolicy()))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDestructuringPath(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		src   string
		kind  Kind
		path  string
		noFix bool
	}{
		{name: "object", src: `const { a } = obj; f(a);`, kind: ObjectProperty, path: ".a"},
		{name: "renamed", src: `const { a: b } = obj; f(b);`, kind: ObjectProperty, path: ".a"},
		{name: "quoted", src: `const { "a-b": b } = obj; f(b);`, kind: ObjectProperty, path: `["a-b"]`},
		{name: "array_hole", src: `const [, b] = pair; f(b);`, kind: ArrayElement, path: "[1]"},
		{name: "nested", src: `const { a: { b } } = o; f(b);`, kind: ObjectProperty, path: ".a.b"},
		{name: "mixed", src: `const [{ b }] = o; f(b);`, kind: ObjectProperty, path: "[0].b"},
		{name: "default", src: `const { a = 1 } = o; f(a);`, kind: ObjectProperty, path: ".a", noFix: true},
		{name: "computed", src: `const { [k]: a } = o; f(a);`, kind: ObjectProperty, noFix: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := collect(t, tt.src, DefaultPolicy())

			var found []*Binding
			for b := range r.SingleUse() {
				found = append(found, b)
			}

			if len(found) != 1 {
				t.Fatalf("Got %d single use bindings, expected 1", len(found))
			}

			b := found[0]

			if b.Kind != tt.kind {
				t.Errorf("Got kind %v, expected %v", b.Kind, tt.kind)
			}

			if got := b.Flags.Enabled(NoFix); got != tt.noFix {
				t.Errorf("Got no fix %t, expected %t", got, tt.noFix)
			}

			if tt.noFix {
				return
			}

			var path string
			for _, seg := range b.Path {
				path += seg.String()
			}

			if path != tt.path {
				t.Errorf("Got path %q, expected %q", path, tt.path)
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	t.Parallel()

	unlimited := DefaultPolicy()

	noArrays := DefaultPolicy()
	noArrays.ArrayLimit = -1

	smallArrays := DefaultPolicy()
	smallArrays.ArrayLimit = 2

	noObjects := DefaultPolicy()
	noObjects.IgnoreObjects = true

	fewProperties := DefaultPolicy()
	fewProperties.MaxObjectProperties = 1

	shortProperties := DefaultPolicy()
	shortProperties.MaxPropertyLength = 5

	short := DefaultPolicy()
	short.MaxLength = 5

	functions := DefaultPolicy()
	functions.IgnoreFunctions = false

	tests := [...]struct {
		name   string
		src    string
		policy Policy
		opaque bool
	}{
		{"array_unlimited", `const a = [1, 2, 3]; f(a);`, unlimited, false},
		{"array_ignored", `const a = []; f(a);`, noArrays, true},
		{"array_small", `const a = [1, 2]; f(a);`, smallArrays, false},
		{"array_large", `const a = [1, 2, 3]; f(a);`, smallArrays, true},
		{"object_ignored", `const a = { b: 1 }; f(a);`, noObjects, true},
		{"object_few", `const a = { b: 1 }; f(a);`, fewProperties, false},
		{"object_many", `const a = { b: 1, c: 2 }; f(a);`, fewProperties, true},
		{"property_short", `const a = { b: 1 }; f(a);`, shortProperties, false},
		{"property_long", `const a = { b: 123456 }; f(a);`, shortProperties, true},
		{"length_short", `const a = x + y; f(a);`, short, false},
		{"length_long", `const a = x + y + z; f(a);`, short, true},
		{"function_allowed", `const a = function () {}; f(a);`, functions, false},
		{"function_ignored", `const a = function () {}; f(a);`, unlimited, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := declared(collect(t, tt.src, tt.policy))
			if len(got) != 1 {
				t.Fatalf("Got %d bindings, expected 1", len(got))
			}

			if got[0].Opaque != tt.opaque {
				t.Errorf("Got opaque %t, expected %t", got[0].Opaque, tt.opaque)
			}
		})
	}
}

func TestReference(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `const x = 1; f(x); g(y);`)
	scopes := scope.Build(t.Context(), tree)
	r := Collect(t.Context(), tree, scopes, DefaultPolicy(), nil)

	decl := testsource.Find(t, tree, syntax.KindIdentifier, "x", 0)
	if _, ok := r.Reference(decl); ok {
		t.Error("Expected no reference for the declaration target")
	}

	read := testsource.Find(t, tree, syntax.KindIdentifier, "x", 1)

	ref, ok := r.Reference(read)
	if !ok || ref.Role != RoleRead || ref.Binding == nil || ref.Binding.Target != decl {
		t.Errorf("Got reference %+v, expected read of x", ref)
	}

	global := testsource.Find(t, tree, syntax.KindIdentifier, "y", 0)
	if ref, ok := r.Reference(global); !ok || ref.Binding != nil {
		t.Errorf("Got reference %+v, expected unattributed global", ref)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	_, tree := testsource.Parse(t, `var a = 1; var a = 2; { let b = a; f(b); }`)
	scopes := scope.Build(t.Context(), tree)
	r := Collect(t.Context(), tree, scopes, DefaultPolicy(), nil)

	if got, want := r.Len(), 3; got != want {
		t.Fatalf("Got %d bindings, expected %d", got, want)
	}

	first := testsource.Find(t, tree, syntax.KindIdentifier, "a", 0)

	a, ok := r.Lookup("a", scopes.Governing(first))
	if !ok || a.Target != first {
		t.Fatalf("Got binding %+v, expected the first declaration of a", a)
	}

	if !a.Flags.Enabled(Redeclared) {
		t.Error("Expected a to be redeclared")
	}

	if _, ok := r.Lookup("b", scopes.Governing(first)); ok {
		t.Error("Expected b not to be visible at program scope")
	}

	read := testsource.Find(t, tree, syntax.KindIdentifier, "a", 2)
	if got := r.Resolve("a", scopes.Governing(read)); got != a {
		t.Errorf("Got binding %+v resolving a from the block, expected the first declaration", got)
	}
}
