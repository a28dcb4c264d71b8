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

package check

import (
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// IntervalInert checks whether the source interval [start, end) is inert.
//
// An interval is considered inert if no code completely contained in it might have
// side effects or observable interactions with an initializer moved past it.
//
// Specifically, it returns false if the interval contains:
//   - Calls, constructions, assignments and updates
//   - await, yield and delete
//   - Control flow leaving the statement list (return, throw, break, continue)
//   - Declarations with non-constant initializers
//
// Expressions containing end itself run after the moved initializer and are not considered.
func IntervalInert(tree *syntax.Tree, start, end int) bool {
	inert := true

	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if n == nil || !inert {
			return false
		}

		if n.End <= start || n.Start >= end {
			return false // Outside of the interval
		}

		if n.Start < start || n.End > end {
			return true // Overlapping, check the children
		}

		if n.Kind.IsFunction() || n.Kind == syntax.KindClass {
			return false // The body does not run here
		}

		if !inertNode(n) {
			inert = false

			return false
		}

		return true
	})

	return inert
}

// inertNode reports whether n itself, not counting its children, is free of side effects.
func inertNode(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.KindCall,
		syntax.KindNew,
		syntax.KindAssign,
		syntax.KindAugmentedAssign,
		syntax.KindUpdate,
		syntax.KindAwait,
		syntax.KindYield,
		syntax.KindReturn,
		syntax.KindThrow:
		return false

	case syntax.KindUnary:
		return !n.HasToken("delete")

	case syntax.KindDeclarator:
		value := n.Child("value")

		return value == nil || Constant(value)

	case syntax.KindOther:
		switch n.Type {
		case "break_statement", "continue_statement", "debugger_statement", "with_statement", "tagged_template":
			return false
		}
	}

	return true
}

// Constant reports whether the expression evaluates without side effects to a value
// independent of when it is evaluated.
func Constant(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.KindLiteral:
		return n.Type != "this" && n.Type != "super"

	case syntax.KindUndefined:
		return true

	case syntax.KindString:
		return true

	case syntax.KindTemplate:
		return n.FirstOf(syntax.KindTemplateSubstitution) == nil

	case syntax.KindParen, syntax.KindBinary, syntax.KindArray:
		return constantOperands(n)

	case syntax.KindUnary:
		if n.HasToken("delete") || n.HasToken("typeof") {
			return false
		}

		return constantOperands(n)

	case syntax.KindTernary:
		return constantOperands(n)

	default:
		return false
	}
}

func constantOperands(n *syntax.Node) bool {
	for c := range n.Named() {
		if !Constant(c) {
			return false
		}
	}

	return true
}
