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

package analyzer

import (
	"context"
	"flag"
	"go/token"

	"fillmore-labs.com/onetimevar/internal/run"
)

// Public API constants for the onetimevar analyzer.
const (
	Name = "onetimevar"
	doc  = `onetimevar detects variables that are only used once and can be inlined`
	url  = "https://pkg.go.dev/fillmore-labs.com/onetimevar"
)

// maxPasses bounds the number of fix rounds in [Analyzer.Fix].
const maxPasses = 10

// Analyzer detects single-use variables in JavaScript source.
//
// An Analyzer is safe for concurrent use, as long as the options
// are not changed through [Analyzer.Flags] while it runs.
type Analyzer struct {
	// Name of the analyzer.
	Name string

	// Doc is the documentation of the analyzer.
	Doc string

	// URL holds a link to the documentation.
	URL string

	// Flags defines the configuration flags of the analyzer.
	Flags flag.FlagSet

	opts *run.Options
}

// New creates a new instance of the onetimevar analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{
		Name: Name,
		Doc:  doc,
		URL:  url,
		opts: r,
	}

	registerFlags(&a.Flags, r)

	return a
}

// Default is a pre-configured *[Analyzer] for detecting single-use variables.
var Default = New()

// Run analyzes one unit of JavaScript source.
//
// A syntactically broken unit is not an error, the broken parts are skipped.
// Positions are resolved into the diagnostics, every run uses its own [token.FileSet].
func (a *Analyzer) Run(ctx context.Context, filename string, src []byte) (*Result, error) {
	fset := token.NewFileSet()

	r, err := a.opts.Run(ctx, fset, filename, src)
	if err != nil {
		return nil, err
	}

	return newResult(fset, filename, r), nil
}

// FixResult is the outcome of [Analyzer.Fix].
type FixResult struct {
	// Src is the fixed source.
	Src []byte

	// Diagnostics reported for the original source.
	Diagnostics []Diagnostic

	// Remaining diagnostics are still reported for the fixed source.
	Remaining []Diagnostic
}

// Fix repeatedly applies all suggested fixes to src until no more are found.
//
// Fixes blocked by an overlapping fix are resolved in a later pass.
func (a *Analyzer) Fix(ctx context.Context, filename string, src []byte) (*FixResult, error) {
	f := &FixResult{Src: src}

	for pass := range maxPasses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := a.Run(ctx, filename, f.Src)
		if err != nil {
			return nil, err
		}

		if pass == 0 {
			f.Diagnostics = result.Diagnostics
		}

		f.Remaining = result.Diagnostics

		if !result.HasFixes() || pass == maxPasses-1 {
			break
		}

		fixed, err := result.Fixed()
		if err != nil {
			return nil, err
		}

		f.Src = fixed
	}

	return f, nil
}
