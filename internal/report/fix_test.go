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

package report_test

import (
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/edit"
	. "fillmore-labs.com/onetimevar/internal/report"
	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/target"
	"fillmore-labs.com/onetimevar/internal/target/check"
	"fillmore-labs.com/onetimevar/internal/testsource"
	"fillmore-labs.com/onetimevar/internal/usage"
)

func process(t *testing.T, src string) (fixed string, diagnostics []Diagnostic) {
	t.Helper()

	_, tree := testsource.Parse(t, src)
	scopes := scope.Build(t.Context(), tree)
	result := usage.Collect(t.Context(), tree, scopes, usage.DefaultPolicy(), nil)

	ts := target.New(nil, config.DefaultBehavior(), nil)
	targets := ts.Select(t.Context(), astutil.NewCurrentFile(tree), scopes, result)

	diagnostics = ProcessDiagnostics(t.Context(), tree, targets, nil)

	plain := make([]analysis.Diagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		plain = append(plain, d.Diagnostic)
	}

	out, err := edit.Apply(tree.File, tree.Src, edit.Collect(plain))
	if err != nil {
		t.Fatalf("Can't apply fixes: %v", err)
	}

	return string(out), diagnostics
}

func TestFixes(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		src      string
		want     string
		statuses map[string]check.FixStatus
	}{
		// keep-sorted start block=yes
		{
			name: "array_pattern",
			src:  "const [, b] = pair;\nf(b);\n",
			want: "f(pair[1]);\n",
		},
		{
			name:     "asi_hazard",
			src:      "a\nconst v = 1;\n(b)\nf(v)\n",
			want:     "a\nconst v = 1;\n(b)\nf(v)\n",
			statuses: map[string]check.FixStatus{"v": check.FixBlockedPlacement},
		},
		{
			name: "binary_left",
			src:  "const v = a - b;\nf(v - c);\n",
			want: "f(a - b - c);\n",
		},
		{
			name: "binary_right",
			src:  "const v = a - b;\nf(c - v);\n",
			want: "f(c - (a - b));\n",
		},
		{
			name:     "callee_member",
			src:      "const m = o.m;\nm();\n",
			want:     "const m = o.m;\nm();\n",
			statuses: map[string]check.FixStatus{"m": check.FixBlockedSlot},
		},
		{
			name: "call_argument",
			src:  "const v = a + b;\nf(v);\n",
			want: "f(a + b);\n",
		},
		{
			name: "indented",
			src:  "function g() {\n  const a = 1;\n  return a;\n}\n",
			want: "function g() {\n  return 1;\n}\n",
		},
		{
			name: "member_object",
			src:  "const v = a + b;\nv.length;\n",
			want: "(a + b).length;\n",
		},
		{
			name: "multi_first",
			src:  "const a = 1, b = 2;\nf(a, b, b);\n",
			want: "const b = 2;\nf(1, b, b);\n",
		},
		{
			name: "multi_last",
			src:  "const b = 2, a = 1;\nf(a, b, b);\n",
			want: "const b = 2;\nf(1, b, b);\n",
		},
		{
			name: "nested_path",
			src:  "const { a: { b } } = o;\nf(b);\n",
			want: "f(o.a.b);\n",
		},
		{
			name: "no_value",
			src:  "let a;\nf(a);\n",
			want: "f(undefined);\n",
		},
		{
			name: "object_pattern",
			src:  "const { a } = obj;\nf(a);\n",
			want: "f(obj.a);\n",
		},
		{
			name:     "overlap",
			src:      "const a = 1;\nconst b = a + 1;\nf(b);\n",
			want:     "const b = 1 + 1;\nf(b);\n",
			statuses: map[string]check.FixStatus{"a": check.FixAllowed, "b": check.FixBlockedOverlap},
		},
		{
			name: "parenthesized_init",
			src:  "const v = (a, b);\nf(v);\n",
			want: "f((a, b));\n",
		},
		{
			name: "path_parens",
			src:  "const { a } = x || y;\nf(a);\n",
			want: "f((x || y).a);\n",
		},
		{
			name: "same_line",
			src:  "const a = 1; f(a);",
			want: "f(1);",
		},
		{
			name: "shorthand",
			src:  "const a = 1;\nf({ a });\n",
			want: "f({ a: 1 });\n",
		},
		{
			name: "sign",
			src:  "const v = -a;\nf(-v);\n",
			want: "f(-(-a));\n",
		},
		{
			name: "statement_object",
			src:  "const v = { a: 1 };\nv.a;\n",
			want: "({ a: 1 }).a;\n",
		},
		{
			name: "subscript_index",
			src:  "const v = x ? 1 : 2;\nobj[v].y;\n",
			want: "obj[(x ? 1 : 2)].y;\n",
		},
		{
			name: "trailing_comment",
			src:  "const a = 1; // one\nf(a);\n",
			want: "// one\nf(1);\n",
		},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, diagnostics := process(t, tt.src)

			if got != tt.want {
				t.Errorf("Got fixed source %q, expected %q", got, tt.want)
			}

			for _, d := range diagnostics {
				want, ok := tt.statuses[d.Name]
				if !ok {
					continue
				}

				if d.Fix != want {
					t.Errorf("Got fix status %q for %q, expected %q", d.Fix, d.Name, want)
				}

				if fixable := len(d.SuggestedFixes) > 0; fixable != want.Fixable() {
					t.Errorf("Got suggested fix %t for %q, expected %t", fixable, d.Name, want.Fixable())
				}
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	const src = "const answer = 42;\nconsole.log(answer);\n"

	_, diagnostics := process(t, src)

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(diagnostics))
	}

	d := diagnostics[0]

	if got, want := d.Message, "Variable 'answer' is only used once."; got != want {
		t.Errorf("Got message %q, expected %q", got, want)
	}

	if got, want := d.Category, Category; got != want {
		t.Errorf("Got category %q, expected %q", got, want)
	}

	if len(d.Related) != 1 {
		t.Fatalf("Got %d related information, expected 1", len(d.Related))
	}

	if d.Related[0].Pos <= d.Pos {
		t.Errorf("Expected related information after the declaration")
	}
}
