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
	"flag"
	"strings"

	"fillmore-labs.com/onetimevar/analyzer/level"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	behaviors := [...]struct {
		name  string
		flag  config.Behavior
		usage string
	}{
		// keep-sorted start
		{"allow-inside-callback", config.AllowInsideCallback, "don't report variables read inside a nested function"},
		{"conservative", config.Conservative, "only suggest fixes without moving past potential side effects"},
		{"generated", config.IncludeGenerated, "check generated files"},
		{"ignore-exported-variables", config.IgnoreExportedVariables, "don't report exported variables"},
		{"ignore-function-variables", config.IgnoreFunctionVariables, "don't report variables holding a function"},
		{"ignore-object-destructuring", config.IgnoreObjectDestructuring, "don't report variables declared by object destructuring"},
		{"ignore-object-variables", config.IgnoreObjectVariables, "don't report variables holding an object literal"},
		// keep-sorted end
	}

	for _, b := range behaviors {
		flags.Var(newBehaviorValue(&r.Behavior, b.flag), b.name, b.usage)
	}

	flags.Var((*namesValue)(&r.Ignored), "ignored-variables", "comma-separated list of variable names never reported")
	flags.TextVar((*level.ArrayLimit)(&r.Policy.ArrayLimit), "ignore-array-variables",
		level.ArrayLimit(r.Policy.ArrayLimit), "don't report variables holding an array literal: true, false or maximum element count")
	flags.IntVar(&r.Policy.MaxObjectProperties, "max-object-properties",
		r.Policy.MaxObjectProperties, "maximum number of properties of a reported object literal, -1 for unlimited")
	flags.IntVar(&r.Policy.MaxPropertyLength, "max-property-length",
		r.Policy.MaxPropertyLength, "maximum length of a property of a reported object literal, -1 for unlimited")
	flags.IntVar(&r.Policy.MaxLength, "max-length",
		r.Policy.MaxLength, "maximum length of a reported initializer, -1 for unlimited")
}

// namesValue is a [flag.Value] accumulating comma-separated names.
type namesValue []string

// Set implements [flag.Value].
func (n *namesValue) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*n = append(*n, name)
		}
	}

	return nil
}

// String implements [flag.Value].
func (n *namesValue) String() string {
	if n == nil {
		return ""
	}

	return strings.Join(*n, ",")
}
