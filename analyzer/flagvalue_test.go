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
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/onetimevar/analyzer"
	"fillmore-labs.com/onetimevar/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Behavior
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.IncludeGenerated,
			args:    []string{"-conservative"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.Conservative,
			args:    []string{"-conservative=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: config.IncludeGenerated,
			args:    []string{"-conservative=on"},
			want:    true,
		},
		{
			name:    "OffUpper",
			initial: config.Conservative,
			args:    []string{"-conservative=OFF"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behaviors
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.Conservative
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "conservative", "conservative fixes")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("Conservative enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if !flags.Enabled(tt.initial) && tt.initial != value {
				t.Errorf("Flag %d lost", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behaviors

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBehaviorValue(&flags, config.Conservative), "conservative", "conservative fixes")

	if err := fs.Parse([]string{"-conservative=maybe"}); err == nil {
		t.Error("Parse succeeded, expected error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Behaviors
	flags.Set(config.Conservative, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.Conservative)
	fs.Var(fv, "conservative", "conservative fixes")

	const expectedUsage = `
  -conservative
    	conservative fixes (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New(WithMaxLength(10))

	tests := [...]struct {
		name, value string
	}{
		// keep-sorted start
		{"allow-inside-callback", "true"},
		{"conservative", "false"},
		{"generated", "false"},
		{"ignore-array-variables", "false"},
		{"ignore-exported-variables", "true"},
		{"ignore-function-variables", "true"},
		{"ignore-object-destructuring", "false"},
		{"ignore-object-variables", "false"},
		{"ignored-variables", ""},
		{"max-length", "10"},
		{"max-object-properties", "-1"},
		{"max-property-length", "-1"},
		// keep-sorted end
	}

	for _, tt := range tests {
		f := a.Flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("Missing flag %q", tt.name)

			continue
		}

		if got := f.Value.String(); got != tt.value {
			t.Errorf("Flag %s = %q, want %q", tt.name, got, tt.value)
		}
	}
}
