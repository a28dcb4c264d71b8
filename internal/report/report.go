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

// Package report turns selected targets into diagnostics with suggested fixes.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/target"
	"fillmore-labs.com/onetimevar/internal/target/check"
)

// Category of all diagnostics.
const Category = "onetimevar"

// Diagnostic is a reported single-use binding.
type Diagnostic struct {
	analysis.Diagnostic

	// Name of the binding.
	Name string

	// Fix is [check.FixAllowed] when the diagnostic carries a suggested fix, otherwise the reason why not.
	Fix check.FixStatus
}

// ProcessDiagnostics generates diagnostics for single-use bindings.
//
// This is the final phase of the pipeline. For each target selected by the target phase,
// this function constructs the diagnostic message and, if possible, a suggested fix with
// text edits removing the declaration and substituting its initializer at the read.
//
// Fixes with edits overlapping an earlier fix of the same unit are dropped, the diagnostic
// is still reported. Applying the fixes and running again resolves them.
func ProcessDiagnostics(ctx context.Context, tree *syntax.Tree, targets []target.Target, logger *slog.Logger) []Diagnostic {
	if len(targets) == 0 {
		return nil
	}

	defer trace.StartRegion(ctx, "Report").End()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	diagnostics := make([]Diagnostic, 0, len(targets))

	var accepted []analysis.TextEdit

	for _, t := range targets {
		b := t.Binding

		message := fmt.Sprintf("Variable '%s' is only used once.", b.Name)

		d := Diagnostic{
			Diagnostic: analysis.Diagnostic{
				Pos:      tree.Pos(b.Target.Start),
				End:      tree.Pos(b.Target.End),
				Category: Category,
				Message:  message,
				Related: []analysis.RelatedInformation{{
					Pos:     tree.Pos(b.Last.Start),
					End:     tree.Pos(b.Last.End),
					Message: "Only use here",
				}},
			},
			Name: b.Name,
			Fix:  t.Fix,
		}

		if d.Fix.Fixable() {
			var edits []analysis.TextEdit

			edits, d.Fix = createEdits(tree, b)

			if d.Fix.Fixable() && overlaps(accepted, edits) {
				d.Fix = check.FixBlockedOverlap
			}

			if d.Fix.Fixable() {
				accepted = append(accepted, edits...)
				d.SuggestedFixes = []analysis.SuggestedFix{{
					Message:   fmt.Sprintf("Inline variable '%s'", b.Name),
					TextEdits: edits,
				}}
			}
		}

		if !d.Fix.Fixable() && logger.Enabled(ctx, slog.LevelDebug) {
			logger.LogAttrs(ctx, slog.LevelDebug, "Reported without fix",
				slog.String("name", b.Name),
				slog.String("pos", tree.Position(b.Target.Start).String()),
				slog.String("status", d.Fix.String()))
		}

		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

// overlaps reports whether any of the edits intersects an accepted edit.
func overlaps(accepted, edits []analysis.TextEdit) bool {
	for _, e := range edits {
		for _, a := range accepted {
			if e.Pos < a.End && a.Pos < e.End {
				return true
			}
		}
	}

	return false
}
