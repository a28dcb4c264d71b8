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

// Package edit applies suggested fixes to source text.
package edit

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when edits of one unit overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrRange is returned when an edit lies outside of the unit.
	ErrRange = errors.New("edit out of range")
)

// Apply applies all edits to src in a single pass.
//
// The edits must not overlap, identical edits are applied once.
// On error src is left untouched and no output is returned.
func Apply(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	type span struct {
		start, end int
		text       []byte
	}

	spans := make([]span, 0, len(edits))

	for _, e := range edits {
		start, end, err := offsets(file, e)
		if err != nil {
			return nil, err
		}

		spans = append(spans, span{start, end, e.NewText})
	}

	slices.SortStableFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})

	var buf bytes.Buffer
	buf.Grow(len(src))

	last := 0

	for i, s := range spans {
		if i > 0 {
			if prev := spans[i-1]; prev.start == s.start && prev.end == s.end && bytes.Equal(prev.text, s.text) {
				continue // duplicate
			}
		}

		if s.start < last {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, file.Position(file.Pos(s.start)), file.Position(file.Pos(last)))
		}

		buf.Write(src[last:s.start]) // ignore error
		buf.Write(s.text)            // ignore error

		last = s.end
	}

	buf.Write(src[last:]) // ignore error

	return buf.Bytes(), nil
}

// offsets converts the positions of an edit into byte offsets of the file.
func offsets(file *token.File, e analysis.TextEdit) (start, end int, err error) {
	end = int(e.End)
	if !e.End.IsValid() {
		end = int(e.Pos) // insertion
	}

	base, size := file.Base(), file.Size()
	if int(e.Pos) < base || end < int(e.Pos) || end > base+size {
		return 0, 0, fmt.Errorf("%w: %d-%d", ErrRange, e.Pos, e.End)
	}

	return int(e.Pos) - base, end - base, nil
}

// Collect returns the edits of the first suggested fix of each diagnostic.
func Collect(diagnostics []analysis.Diagnostic) []analysis.TextEdit {
	var edits []analysis.TextEdit

	for _, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		edits = append(edits, d.SuggestedFixes[0].TextEdits...)
	}

	return edits
}
