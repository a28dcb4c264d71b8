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

package astutil

import (
	"iter"

	"fillmore-labs.com/onetimevar/internal/syntax"
)

// BoundNames yields all identifiers bound by a parameter list or destructuring pattern.
//
// Default values and computed keys are skipped, they are expressions evaluated at binding time.
func BoundNames(pattern *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		boundNames(pattern, yield)
	}
}

func boundNames(n *syntax.Node, yield func(*syntax.Node) bool) bool {
	if n == nil {
		return true
	}

	switch n.Kind {
	case syntax.KindIdentifier, syntax.KindShorthandPropertyPattern:
		return yield(n)

	case syntax.KindPairPattern:
		return boundNames(n.Child("value"), yield)

	case syntax.KindAssignmentPattern:
		return boundNames(n.Child("left"), yield)

	case syntax.KindParams, syntax.KindObjectPattern, syntax.KindArrayPattern, syntax.KindRest:
		for c := range n.Named() {
			if !boundNames(c, yield) {
				return false
			}
		}
	}

	return true
}

// Declarators yields the variable declarators of a declaration statement.
func Declarators(decl *syntax.Node) iter.Seq[*syntax.Node] {
	return func(yield func(*syntax.Node) bool) {
		for c := range decl.Named() {
			if c.Kind != syntax.KindDeclarator {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}
