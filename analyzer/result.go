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
	"go/token"

	"fillmore-labs.com/onetimevar/internal/run"
)

// Diagnostic is a reported single-use variable.
type Diagnostic struct {
	// Name of the variable.
	Name string `json:"name" yaml:"name"`

	// Pos is the position of the declared name.
	Pos token.Position `json:"pos" yaml:"pos"`

	// Use is the position of the only read.
	Use token.Position `json:"use" yaml:"use"`

	// Message is the human-readable diagnostic text.
	Message string `json:"message" yaml:"message"`

	// Fix describes why no fix is suggested, or "fix" when it is.
	Fix string `json:"fix" yaml:"fix"`

	// Fixable is set when a suggested fix is available.
	Fixable bool `json:"fixable" yaml:"fixable"`
}

// Result is the outcome of analyzing one unit.
type Result struct {
	// Filename of the unit.
	Filename string

	// Diagnostics in source order of the declarations.
	Diagnostics []Diagnostic

	// Skipped is set for generated units and units disabled by a nolint comment.
	Skipped bool

	run *run.Result
}

func newResult(fset *token.FileSet, filename string, r *run.Result) *Result {
	result := &Result{
		Filename:    filename,
		Diagnostics: make([]Diagnostic, 0, len(r.Diagnostics)),
		Skipped:     r.Skipped,
		run:         r,
	}

	for _, d := range r.Diagnostics {
		diagnostic := Diagnostic{
			Name:    d.Name,
			Pos:     fset.Position(d.Pos),
			Message: d.Message,
			Fix:     d.Fix.String(),
			Fixable: d.Fix.Fixable() && len(d.SuggestedFixes) > 0,
		}

		if len(d.Related) > 0 {
			diagnostic.Use = fset.Position(d.Related[0].Pos)
		}

		result.Diagnostics = append(result.Diagnostics, diagnostic)
	}

	return result
}

// HasFixes reports whether any diagnostic carries a suggested fix.
func (r *Result) HasFixes() bool {
	return len(r.run.Edits()) > 0
}

// Fixed returns the source with all suggested fixes applied, nil for skipped units.
func (r *Result) Fixed() ([]byte, error) {
	if r.run.Tree == nil {
		return nil, nil
	}

	return r.run.Fixed()
}
