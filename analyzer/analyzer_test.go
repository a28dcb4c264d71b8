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

package analyzer_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "fillmore-labs.com/onetimevar/analyzer"
	"fillmore-labs.com/onetimevar/internal/testsource"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	for _, f := range testsource.LoadFixtures(t, filepath.Join("testdata", "*.txtar")) {
		t.Run(f.Name, func(t *testing.T) {
			t.Parallel()

			a := New()
			for key, value := range f.Options {
				if err := a.Flags.Set(key, value); err != nil {
					t.Fatalf("Can't set option %s=%s: %v", key, value, err)
				}
			}

			filename := f.Name + ".js"

			result, err := a.Run(t.Context(), filename, f.Src)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			got := make([]string, 0, len(result.Diagnostics))
			for _, d := range result.Diagnostics {
				got = append(got, fmt.Sprintf("%d:%d: %s", d.Pos.Line, d.Pos.Column, d.Message))
			}

			if diff := cmp.Diff(f.Diagnostics, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}

			if !f.HasFixed {
				return
			}

			fixed, err := a.Fix(t.Context(), filename, f.Src)
			if err != nil {
				t.Fatalf("Fix failed: %v", err)
			}

			if diff := cmp.Diff(string(f.Fixed), string(fixed.Src)); diff != "" {
				t.Errorf("Fixed source mismatch (-want +got):\n%s", diff)
			}

			again, err := a.Run(t.Context(), filename, fixed.Src)
			if err != nil {
				t.Fatalf("Can't analyze fixed source: %v", err)
			}

			if again.HasFixes() {
				t.Errorf("Fixed source has remaining fixes: %v", again.Diagnostics)
			}

			if diff := cmp.Diff(again.Diagnostics, fixed.Remaining, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Remaining diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunRelated(t *testing.T) {
	t.Parallel()

	const src = "const a = 1;\n\nf(a);\n"

	result, err := Default.Run(t.Context(), "related.js", []byte(src))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(result.Diagnostics))
	}

	d := result.Diagnostics[0]

	if d.Name != "a" || !d.Fixable || d.Fix != "fix" {
		t.Errorf("Got diagnostic %+v", d)
	}

	if d.Use.Line != 3 || d.Use.Column != 3 {
		t.Errorf("Got use at %s, expected related.js:3:3", d.Use)
	}
}

func TestFixCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Default.Fix(ctx, "canceled.js", []byte("const a = 1; f(a);")); !errors.Is(err, context.Canceled) {
		t.Errorf("Fix = %v, want %v", err, context.Canceled)
	}
}

func TestFixRemaining(t *testing.T) {
	t.Parallel()

	const src = "const a = 1;\nf(a);\nfunction h(c) {\n  if (c) {\n    var x = 1;\n  }\n  return x;\n}\n"

	fixed, err := Default.Fix(t.Context(), "remaining.js", []byte(src))
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}

	if got, want := len(fixed.Diagnostics), 2; got != want {
		t.Fatalf("Got %d diagnostics, expected %d", got, want)
	}

	if len(fixed.Remaining) != 1 {
		t.Fatalf("Got remaining diagnostics %v, expected one", fixed.Remaining)
	}

	if r := fixed.Remaining[0]; r.Name != "x" || r.Fixable || r.Fix != "pos" {
		t.Errorf("Got remaining diagnostic %+v, expected unfixable x", r)
	}
}
