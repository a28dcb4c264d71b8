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

package target_test

import (
	"testing"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/scope"
	. "fillmore-labs.com/onetimevar/internal/target"
	"fillmore-labs.com/onetimevar/internal/target/check"
	"fillmore-labs.com/onetimevar/internal/testsource"
	"fillmore-labs.com/onetimevar/internal/usage"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	const targetName = "x"

	defaults := config.DefaultBehavior()

	strict := config.DefaultBehavior()
	strict.Disable(config.AllowInsideCallback)
	strict.Disable(config.IgnoreExportedVariables)

	noObjects := config.DefaultBehavior()
	noObjects.Enable(config.IgnoreObjectDestructuring)

	conservative := config.DefaultBehavior()
	conservative.Enable(config.Conservative)

	tests := []struct {
		name     string
		src      string
		behavior config.Behaviors
		status   check.Status
		fix      check.FixStatus
	}{
		// keep-sorted start block=yes
		{
			name:     "awaited",
			src:      `async function f() { const x = await p; g(x); }`,
			behavior: defaults,
			status:   check.AwaitedInit,
		},
		{
			name:     "awaited_parenthesized",
			src:      `async function f() { const x = (await p); g(x); }`,
			behavior: defaults,
			status:   check.AwaitedInit,
		},
		{
			name:     "basic",
			src:      `const x = 1; f(x);`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "callback",
			src:      `const x = now(); later(() => use(x));`,
			behavior: defaults,
			status:   check.InsideCallback,
		},
		{
			name:     "callback_reported",
			src:      `const x = now(); later(() => use(x));`,
			behavior: strict,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "callback_same_function",
			src:      `function f() { const x = now(); use(x); }`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "conservative_blocked",
			src:      `const x = a(); b(); use(x);`,
			behavior: conservative,
			status:   check.Reportable,
			fix:      check.FixBlockedStatements,
		},
		{
			name:     "conservative_constant",
			src:      `const x = 1; b(); use(x);`,
			behavior: conservative,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "exported",
			src:      `const x = 1; export { x };`,
			behavior: defaults,
			status:   check.ExportedBinding,
		},
		{
			name:     "exported_reported",
			src:      `export const x = 1; f(x);`,
			behavior: strict,
			status:   check.Reportable,
			fix:      check.FixBlockedExported,
		},
		{
			name:     "ignored",
			src:      `const ignored = 1; f(ignored); const x = 1; g(x);`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "loop_declaration",
			src:      `for (const a of items) { const x = a; f(x); }`,
			behavior: defaults,
			status:   check.InsideLoop,
		},
		{
			name:     "loop_read",
			src:      `const x = 1; while (c) { f(x); }`,
			behavior: defaults,
			status:   check.InsideLoop,
		},
		{
			name:     "nolint",
			src:      "const x = 1; // nolint:onetimevar\nf(x);",
			behavior: defaults,
			status:   check.Suppressed,
		},
		{
			name:     "object_destructuring",
			src:      `const { x } = o; f(x);`,
			behavior: noObjects,
			status:   check.ObjectDestructuring,
		},
		{
			name:     "object_destructuring_reported",
			src:      `const { x } = o; f(x);`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "pattern_default",
			src:      `const { x = 1 } = o; f(x);`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixBlockedPattern,
		},
		{
			name:     "reassigned",
			src:      `let x = 1; x = 2; f(x);`,
			behavior: defaults,
			status:   check.Reassigned,
		},
		{
			name:     "shadowed",
			src:      `const y = 1; const x = y; { const y = 2; f(x, y); }`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixBlockedShadowed,
		},
		{
			name:     "var_inside_block",
			src:      `function h(c) { if (c) { var x = 1; f(x); } }`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixAllowed,
		},
		{
			name:     "var_outside_block",
			src:      `function h(c) { if (c) { var x = 1; } return x; }`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixBlockedPlacement,
		},
		{
			name:     "var_outside_try",
			src:      `function h() { try { var x = g(); } catch (e) {} return x; }`,
			behavior: defaults,
			status:   check.Reportable,
			fix:      check.FixBlockedPlacement,
		},
		// keep-sorted end
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			_, tree := testsource.Parse(t, tt.src)
			scopes := scope.Build(t.Context(), tree)
			result := usage.Collect(t.Context(), tree, scopes, usage.DefaultPolicy(), nil)
			cf := astutil.NewCurrentFile(tree)

			ts := New([]string{"ignored"}, tt.behavior, nil)

			var binding *usage.Binding
			for b := range result.SingleUse() {
				if b.Name == targetName {
					binding = b
				}
			}

			if binding == nil {
				t.Fatalf("Can't find single use binding %q", targetName)
			}

			// when
			got := ts.Evaluate(cf, scopes, result, binding)

			// then
			if got.Status != tt.status {
				t.Errorf("Got status %q, expected %q", got.Status, tt.status)
			}

			if got.Fix != tt.fix {
				t.Errorf("Got fix status %q, expected %q", got.Fix, tt.fix)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	// given
	const src = `const ignored = 1; f(ignored); const a = 1; f(a); const b = 2; g(b, b); for (const c of cs) h(c);`

	_, tree := testsource.Parse(t, src)
	scopes := scope.Build(t.Context(), tree)
	result := usage.Collect(t.Context(), tree, scopes, usage.DefaultPolicy(), nil)

	ts := New([]string{"ignored"}, config.DefaultBehavior(), nil)

	// when
	targets := ts.Select(t.Context(), astutil.NewCurrentFile(tree), scopes, result)

	// then
	if len(targets) != 1 {
		t.Fatalf("Got %d targets, expected 1", len(targets))
	}

	if got := targets[0].Name; got != "a" {
		t.Errorf("Got target %q, expected %q", got, "a")
	}
}
