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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/onetimevar/analyzer"
)

// Output formats of the check command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeDiagnostics prints the diagnostics of all checked files in the given format.
func writeDiagnostics(w io.Writer, format string, results []fileResult) error {
	diagnostics := make([]analyzer.Diagnostic, 0, len(results))
	for _, r := range results {
		diagnostics = append(diagnostics, r.diagnostics...)
	}

	switch format {
	case formatText:
		if len(diagnostics) == 0 {
			return nil
		}

		renderTable(w, len(results), diagnostics)

		return nil

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(diagnostics)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(diagnostics); err != nil {
			return err
		}

		return enc.Close()

	default:
		return fmt.Errorf("%w %q", ErrFormat, format)
	}
}

func renderTable(w io.Writer, files int, diagnostics []analyzer.Diagnostic) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Position", "Message", "Fix"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, d := range diagnostics {
		table.Append([]string{d.Pos.String(), d.Message, d.Fix})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files),
		fmt.Sprintf("Diagnostics %d", len(diagnostics)),
		strconv.Itoa(fixable(diagnostics)),
	})

	table.Render()
}

func fixable(diagnostics []analyzer.Diagnostic) int {
	var n int

	for _, d := range diagnostics {
		if d.Fixable {
			n++
		}
	}

	return n
}

// writeDiff prints a unified diff between the original and the fixed source of a file.
func writeDiff(w io.Writer, r fileResult) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(r.src)),
		B:        difflib.SplitLines(string(r.fixed)),
		FromFile: "a/" + r.file,
		ToFile:   "b/" + r.file,
		Context:  3,
	}

	return difflib.WriteUnifiedDiff(w, diff)
}
