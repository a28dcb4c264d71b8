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

package usage

import (
	"math"
	"unicode/utf8"

	"fillmore-labs.com/onetimevar/internal/syntax"
)

// Policy holds the registration thresholds.
// Declarations rejected by the policy are still registered, but never reported.
type Policy struct {
	// IgnoreFunctions rejects function and arrow function initializers.
	IgnoreFunctions bool

	// IgnoreObjects rejects object literal initializers.
	IgnoreObjects bool

	// ArrayLimit rejects array literal initializers with more elements.
	// Negative values reject all arrays.
	ArrayLimit int

	// MaxObjectProperties rejects object literal initializers with more properties, negative is unlimited.
	MaxObjectProperties int

	// MaxPropertyLength rejects object literal initializers with a longer property, negative is unlimited.
	MaxPropertyLength int

	// MaxLength rejects other initializers with longer source text, negative is unlimited.
	MaxLength int
}

// DefaultPolicy returns the policy with default thresholds.
func DefaultPolicy() Policy {
	return Policy{
		IgnoreFunctions:     true,
		ArrayLimit:          math.MaxInt,
		MaxObjectProperties: -1,
		MaxPropertyLength:   -1,
		MaxLength:           -1,
	}
}

// reject returns the reason why an initializer is not a candidate, or the empty string.
func (p Policy) reject(tree *syntax.Tree, init *syntax.Node) string {
	if init == nil {
		return ""
	}

	switch v := syntax.Unparen(init); v.Kind {
	case syntax.KindFuncExpr, syntax.KindArrow:
		if p.IgnoreFunctions {
			return "function"
		}

	case syntax.KindArray:
		if count(v) > p.ArrayLimit {
			return "array elements"
		}

	case syntax.KindObject:
		if p.IgnoreObjects {
			return "object"
		}

		if p.MaxObjectProperties >= 0 && count(v) > p.MaxObjectProperties {
			return "object properties"
		}

		if p.MaxPropertyLength >= 0 {
			for prop := range v.Named() {
				if length(tree, prop) > p.MaxPropertyLength {
					return "property length"
				}
			}
		}

	default:
		if p.MaxLength >= 0 && length(tree, init) > p.MaxLength {
			return "length"
		}
	}

	return ""
}

// count returns the number of elements or properties of a literal.
func count(n *syntax.Node) int {
	var c int
	for range n.Named() {
		c++
	}

	return c
}

// length is the rendered length of a node in characters.
func length(tree *syntax.Tree, n *syntax.Node) int {
	return utf8.RuneCountInString(tree.Text(n))
}
