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

package testsource

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Fixture is a golden test case read from a txtar archive.
//
// Archive sections:
//   - options: one "key=value" flag per line, optional
//   - src.js: the input unit
//   - fixed.js: the expected result of applying all fixes, optional
//   - diagnostics: one "line:col: message" per line, in report order
type Fixture struct {
	Name        string
	Comment     string
	Options     map[string]string
	Src         []byte
	Fixed       []byte
	HasFixed    bool
	Diagnostics []string
}

// LoadFixtures reads all txtar archives matching pattern.
func LoadFixtures(tb testing.TB, pattern string) []Fixture {
	tb.Helper()

	files, err := filepath.Glob(pattern)
	if err != nil {
		tb.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	if len(files) == 0 {
		tb.Fatalf("No fixtures matching %q", pattern)
	}

	fixtures := make([]Fixture, 0, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			tb.Fatalf("Can't read fixture %s: %v", file, err)
		}

		fixtures = append(fixtures, fixtureOf(strings.TrimSuffix(filepath.Base(file), ".txtar"), ar))
	}

	return fixtures
}

func fixtureOf(name string, ar *txtar.Archive) Fixture {
	f := Fixture{Name: name, Comment: string(ar.Comment), Options: make(map[string]string)}

	for _, file := range ar.Files {
		switch file.Name {
		case "options":
			for line := range strings.Lines(string(file.Data)) {
				key, value, _ := strings.Cut(strings.TrimSpace(line), "=")
				if key != "" {
					f.Options[key] = value
				}
			}

		case "src.js":
			f.Src = file.Data

		case "fixed.js":
			f.Fixed, f.HasFixed = file.Data, true

		case "diagnostics":
			for line := range bytes.Lines(file.Data) {
				if d := strings.TrimSpace(string(line)); d != "" {
					f.Diagnostics = append(f.Diagnostics, d)
				}
			}
		}
	}

	return f
}
