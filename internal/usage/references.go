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
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// reference classifies an identifier occurrence and attributes it to its binding.
func (c *collector) reference(n *syntax.Node) {
	if c.declared[n.Index] || c.seen[n.Index] {
		return
	}

	c.seen[n.Index] = true // counted at most once

	role := roleOf(n)
	if role == RoleMemberProperty || role == RolePropertyKey || role == RoleDeclaration {
		return
	}

	b := c.registry.Resolve(c.tree.Text(n), c.scopes.Governing(n))

	c.refs[n.Index] = Reference{Node: n, Role: role, Binding: b}

	if b == nil {
		return // global or undeclared
	}

	if broken(n) {
		b.Flags.Enable(Malformed)

		return
	}

	switch role {
	case RoleAssignmentTarget:
		b.Flags.Enable(Reassigned)

		return

	case RoleExport:
		b.Flags.Enable(Exported)
	}

	if !role.Counted() {
		return
	}

	if b.Declarator != nil && n.Start < b.Declarator.End {
		b.Flags.Enable(EarlyRead)
	}

	b.Uses++
	b.Last, b.LastRole = n, role
}

// roleOf determines the syntactic role of an identifier that is not a declaration target.
func roleOf(n *syntax.Node) Role {
	switch n.Kind {
	case syntax.KindPropertyIdentifier:
		if p := n.Parent; p != nil && p.Kind == syntax.KindMember {
			return RoleMemberProperty
		}

		return RolePropertyKey

	case syntax.KindShorthandProperty:
		return RoleShorthand

	case syntax.KindShorthandPropertyPattern:
		// not declared, so part of a destructuring assignment
		return RoleAssignmentTarget
	}

	p := n.Parent
	if p == nil {
		return RoleRead
	}

	switch p.Kind {
	case syntax.KindExportSpecifier:
		if n.Field == "alias" || p.Child("alias") == n {
			return RolePropertyKey // exported name
		}

		if reexport(p) {
			return RolePropertyKey // export { name } from "module"
		}

		return RoleExport

	case syntax.KindExportStmt:
		return RoleExport // export default x
	}

	if assigned(n) {
		return RoleAssignmentTarget
	}

	return RoleRead
}

// assigned reports whether the identifier is written by an assignment, an update
// or a for-in/of head without declaration.
func assigned(n *syntax.Node) bool {
	for child, p := n, n.Parent; p != nil; child, p = p, p.Parent {
		switch p.Kind {
		case syntax.KindAssign, syntax.KindAugmentedAssign, syntax.KindForIn:
			return child.Field == "left"

		case syntax.KindUpdate:
			return child.Field == "argument"

		case syntax.KindParen, syntax.KindObjectPattern, syntax.KindArrayPattern, syntax.KindRest:
			continue

		case syntax.KindPairPattern:
			if child.Field != "value" {
				return false // computed key
			}

		case syntax.KindAssignmentPattern:
			if child.Field != "left" {
				return false // default value
			}

		default:
			return false
		}
	}

	return false
}

// reexport reports whether an export specifier belongs to an export statement with a source module.
func reexport(spec *syntax.Node) bool {
	for p := range spec.Ancestors() {
		if p.Kind == syntax.KindExportStmt {
			return p.Child("source") != nil
		}
	}

	return false
}

// broken reports whether n lies inside a subtree the parser could not make sense of.
func broken(n *syntax.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Kind == syntax.KindError {
			return true
		}
	}

	return false
}
