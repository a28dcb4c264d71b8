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

package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// sourceExtensions are the file name extensions of JavaScript units found in directories.
var sourceExtensions = []string{".js", ".cjs", ".mjs", ".jsx"}

// collectFiles expands the path arguments into a list of source files.
// Directories are walked recursively, skipping hidden directories and node_modules.
// Files named explicitly are always included.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	seen := make(map[string]struct{})
	add := func(file string) {
		if _, ok := seen[file]; ok {
			return
		}

		seen[file] = struct{}{}
		files = append(files, file)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(filepath.Clean(path))

			continue
		}

		err = filepath.WalkDir(path, func(file string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if file != path && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if slices.Contains(sourceExtensions, filepath.Ext(file)) {
				add(file)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func skipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}
