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

// Package target decides which single-use bindings are reported and which of them
// get a suggested fix.
package target

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/target/check"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// Stage contains configurable options for selecting single-use bindings.
type Stage struct {
	// ignored holds the names never reported.
	ignored map[string]struct{}

	// behavior holds behavioral options.
	behavior config.Behaviors

	logger *slog.Logger
}

// New creates a [target.Stage].
func New(ignored []string, behavior config.Behaviors, logger *slog.Logger) Stage {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := Stage{ignored: make(map[string]struct{}, len(ignored)), behavior: behavior, logger: logger}
	for _, name := range ignored {
		s.ignored[name] = struct{}{}
	}

	return s
}

// Select determines which single-use bindings are reported.
//
// Returns the reportable targets in registration order.
func (s Stage) Select(ctx context.Context, cf astutil.CurrentFile, scopes *scope.Index, result *usage.Result) []Target {
	defer trace.StartRegion(ctx, "Targets").End()

	var targets []Target

	for b := range result.SingleUse() {
		t := s.Evaluate(cf, scopes, result, b)
		if !t.Status.Reportable() {
			if s.logger.Enabled(ctx, slog.LevelDebug) {
				s.logger.LogAttrs(ctx, slog.LevelDebug, "Excluded single use binding",
					slog.String("name", b.Name), slog.String("status", t.Status.String()))
			}

			continue
		}

		targets = append(targets, t)
	}

	return targets
}

// Evaluate applies the eligibility checks to a single-use binding and, when it is reportable,
// the fix safety checks available before synthesis.
func (s Stage) Evaluate(cf astutil.CurrentFile, scopes *scope.Index, result *usage.Result, b *usage.Binding) Target {
	t := Target{Binding: b, Status: s.Eligibility(cf, scopes, b)}
	if !t.Status.Reportable() {
		return t
	}

	t.Fix = s.fixStatus(cf, scopes, result, b)

	return t
}

// Eligibility checks a binding with exactly one attributed read, first match excludes.
func (s Stage) Eligibility(cf astutil.CurrentFile, scopes *scope.Index, b *usage.Binding) check.Status {
	if _, ok := s.ignored[b.Name]; ok {
		return check.IgnoredName
	}

	if s.behavior.Enabled(config.AllowInsideCallback) && insideCallback(scopes, b) {
		return check.InsideCallback
	}

	if scope.InLoop(b.Target) || scope.InLoop(b.Last) {
		return check.InsideLoop
	}

	if init := syntax.Unparen(b.Init); init != nil && init.Kind == syntax.KindAwait {
		return check.AwaitedInit
	}

	if s.behavior.Enabled(config.IgnoreExportedVariables) && b.Flags.Enabled(usage.Exported) {
		return check.ExportedBinding
	}

	if s.behavior.Enabled(config.IgnoreObjectDestructuring) && b.Flags.Enabled(usage.FromObjectPattern) {
		return check.ObjectDestructuring
	}

	switch {
	case b.Flags.Enabled(usage.Reassigned):
		return check.Reassigned

	case b.Flags.Enabled(usage.EarlyRead):
		return check.EarlyRead

	case b.Flags.Enabled(usage.Redeclared):
		return check.Redeclared

	case b.Flags.Enabled(usage.Malformed):
		return check.Malformed
	}

	if cf.NoLintComment(b.Target.Start) {
		return check.Suppressed
	}

	return check.Reportable
}

// insideCallback reports whether the read lies in a function nested inside the function
// declaring the binding.
func insideCallback(scopes *scope.Index, b *usage.Binding) bool {
	readStart, _, inFunction := scopes.EnclosingFunction(b.Last.Start)
	if !inFunction {
		return false // top level read
	}

	declStart, declEnd, declInFunction := scopes.EnclosingFunction(b.Target.Start)
	if !declInFunction {
		return true // read in a function, declared at top level
	}

	return readStart != declStart && declStart < readStart && readStart < declEnd
}

// fixStatus performs various safety checks whether we should suppress the fix (but not the diagnostic).
func (s Stage) fixStatus(cf astutil.CurrentFile, scopes *scope.Index, result *usage.Result, b *usage.Binding) check.FixStatus {
	switch {
	case cf.Generated():
		return check.FixBlockedGenerated

	case b.Flags.Enabled(usage.Exported):
		return check.FixBlockedExported

	case b.Flags.Enabled(usage.NoFix):
		return check.FixBlockedPattern

	case b.Declarator == nil || b.Decl == nil:
		return check.FixBlockedPlacement

	case !scopes.Encloses(scopes.Governing(b.Decl), scopes.Governing(b.Last)):
		// var read outside its declaring block, the initializer may not have run
		return check.FixBlockedPlacement
	}

	if status := check.SafetyCheck(result, scopes, b); !status.Fixable() {
		return status
	}

	// In conservative mode, block fixes if there is intervening code with possible side effects.
	if s.behavior.Enabled(config.Conservative) && b.Init != nil && !check.Constant(b.Init) &&
		b.Decl.End <= b.Last.Start && !check.IntervalInert(cf.Tree(), b.Decl.End, b.Last.Start) {
		return check.FixBlockedStatements
	}

	return check.FixAllowed
}
