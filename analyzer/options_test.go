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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/onetimevar/analyzer"
	"fillmore-labs.com/onetimevar/analyzer/level"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithIgnoredVariables("a", "b"),
		Options{WithConservative(true), nil},
		WithIgnoreArrayVariables(level.ArrayAll),
		WithMaxLength(20),
	}

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("options", opts.LogAttr())

	const want = `options.ignoredVariables="[a b]" options.conservative=true options.nil=<nil> options.ignoreArrayVariables=true options.maxLength=20`

	if got := buf.String(); !strings.Contains(got, want) {
		t.Errorf("Got log %q, want %q", got, want)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	const src = `
const ignored = 1;
f(ignored);
const long = someFunction(withArguments);
f(long);
const list = [1, 2, 3];
f(list);
`

	tests := []struct {
		name    string
		options Option
		want    []string
	}{
		{
			name: "Default",
			want: []string{"ignored", "long", "list"},
		},
		{
			name:    "Ignored",
			options: WithIgnoredVariables("ignored"),
			want:    []string{"long", "list"},
		},
		{
			name:    "MaxLength",
			options: WithMaxLength(10),
			want:    []string{"ignored", "list"},
		},
		{
			name:    "Arrays",
			options: WithIgnoreArrayVariables(level.ArrayAll),
			want:    []string{"ignored", "long"},
		},
		{
			name:    "Combined",
			options: Options{WithIgnoredVariables("long"), WithIgnoreArrayVariables(2)},
			want:    []string{"ignored"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := New(tt.options).Run(t.Context(), "options.js", []byte(src))
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			got := make([]string, 0, len(result.Diagnostics))
			for _, d := range result.Diagnostics {
				got = append(got, d.Name)
			}

			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Got reported %v, want %v", got, tt.want)
			}
		})
	}
}
