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

// Package run executes the onetimevar pipeline on one unit of source text.
package run

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/edit"
	"fillmore-labs.com/onetimevar/internal/jsparse"
	"fillmore-labs.com/onetimevar/internal/report"
	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/target"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// Result is the outcome of one run.
type Result struct {
	// Tree is the parsed unit, nil for skipped units.
	Tree *syntax.Tree

	// Diagnostics in registration order of their bindings.
	Diagnostics []report.Diagnostic

	// Skipped is set for generated units and units disabled by a leading nolint comment.
	Skipped bool
}

// Edits returns the edits of all suggested fixes.
func (r *Result) Edits() []analysis.TextEdit {
	plain := make([]analysis.Diagnostic, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		plain = append(plain, d.Diagnostic)
	}

	return edit.Collect(plain)
}

// Fixed returns the source with all suggested fixes applied.
func (r *Result) Fixed() ([]byte, error) {
	if r.Tree == nil {
		return nil, nil
	}

	return edit.Apply(r.Tree.File, r.Tree.Src, r.Edits())
}

// Run executes the onetimevar pipeline on one unit of source text.
//
// All registry and scope state is allocated for this unit and discarded afterwards,
// concurrent runs do not share mutable state.
func (r *Options) Run(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "OneTimeVar")
	defer task.End()

	trace.Log(ctx, "file", filename)

	tree, err := jsparse.Parse(ctx, fset, filename, src)
	if err != nil {
		return nil, err
	}

	currentFile := astutil.NewCurrentFile(tree)
	if !currentFile.Valid() {
		return nil, fmt.Errorf("onetimevar: %s: %w", filename, jsparse.ErrParse)
	}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return &Result{Skipped: true}, nil
	}

	// Skip files with nolint comment
	if currentFile.NoLintFile() {
		return &Result{Skipped: true}, nil
	}

	// Stage 1: Build the scope tree
	scopes := scope.Build(ctx, tree)

	// Stage 2: Register bindings and attribute reads
	result := usage.Collect(ctx, tree, scopes, r.UsagePolicy(), r.Logger)

	// Stage 3: Select reportable single-use bindings
	ts := target.New(r.Ignored, r.Behavior, r.Logger)
	targets := ts.Select(ctx, currentFile, scopes, result)

	// Stage 4: Generate diagnostics with suggested fixes
	diagnostics := report.ProcessDiagnostics(ctx, tree, targets, r.Logger)

	return &Result{Tree: tree, Diagnostics: diagnostics}, nil
}
