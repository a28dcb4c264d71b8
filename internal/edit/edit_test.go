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

package edit_test

import (
	"errors"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/onetimevar/internal/edit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "const a = 1; f(a);"

	type span struct {
		start, end int
		text       string
	}

	tests := [...]struct {
		name  string
		edits []span
		want  string
		err   error
	}{
		{
			name: "none",
			want: src,
		},
		{
			name:  "inline",
			edits: []span{{15, 16, "1"}, {0, 13, ""}},
			want:  "f(1);",
		},
		{
			name:  "duplicate",
			edits: []span{{15, 16, "1"}, {15, 16, "1"}},
			want:  "const a = 1; f(1);",
		},
		{
			name:  "insertion",
			edits: []span{{0, 0, "// x\n"}},
			want:  "// x\n" + src,
		},
		{
			name:  "overlap",
			edits: []span{{0, 13, ""}, {6, 7, "b"}},
			err:   ErrOverlap,
		},
		{
			name:  "range",
			edits: []span{{15, 100, ""}},
			err:   ErrRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset := token.NewFileSet()
			file := fset.AddFile("test.js", -1, len(src))

			edits := make([]analysis.TextEdit, 0, len(tt.edits))
			for _, e := range tt.edits {
				pos, end := token.Pos(file.Base()+e.start), token.Pos(file.Base()+e.end)
				edits = append(edits, analysis.TextEdit{Pos: pos, End: end, NewText: []byte(e.text)})
			}

			got, err := Apply(file, []byte(src), edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, expected %v", err, tt.err)
			}

			if tt.err != nil {
				return
			}

			if string(got) != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
