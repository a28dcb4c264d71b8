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
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// Kind is the shape of a binding's declaration.
type Kind uint8

//go:generate go tool stringer -type Kind,Role -linecomment
const (
	Simple         Kind = iota // simple
	ArrayElement               // array-pattern-element
	ObjectProperty             // object-pattern-property
)

// Role is the syntactic role of an identifier occurrence.
type Role uint8

const (
	// keep-sorted start
	RoleAssignmentTarget Role = iota // assignment-target
	RoleDeclaration                  // declaration-target
	RoleExport                       // export-specifier
	RoleMemberProperty               // member-property-name
	RolePropertyKey                  // object-property-key
	RoleRead                         // read
	RoleShorthand                    // object-property-shorthand
	// keep-sorted end
)

// Counted reports whether an occurrence in this role counts as a use.
func (r Role) Counted() bool {
	switch r {
	case RoleRead, RoleShorthand, RoleExport:
		return true

	default:
		return false
	}
}

// Flag records properties of a binding detected during collection.
type Flag uint16

const (
	// Opaque bindings only take part in name resolution and are never reported.
	Opaque Flag = 1 << iota

	// Reassigned bindings are assigned after their declaration.
	Reassigned

	// EarlyRead bindings are read before their declarator ends.
	EarlyRead

	// Redeclared bindings share name and scope with another declaration.
	Redeclared

	// Exported bindings take part in a module-level export.
	Exported

	// NoFix bindings come from a pattern shape that has no textual substitution
	// (default values, computed keys, object rest).
	NoFix

	// FromObjectPattern bindings are bound through an object destructuring pattern.
	FromObjectPattern

	// Malformed bindings or their uses touch subtrees with syntax errors.
	Malformed
)

// Flags is the set of flags of a binding.
type Flags = config.BitMask[Flag]

// Segment is one step of the access path from an initializer to a destructured value.
type Segment struct {
	Text    string // property name, quoted key or element index
	Bracket bool   // rendered as [Text] instead of .Text
}

// String renders the segment as a member access suffix.
func (s Segment) String() string {
	if s.Bracket {
		return "[" + s.Text + "]"
	}

	return "." + s.Text
}

// Binding is one declared name.
type Binding struct {
	Name string
	Kind Kind

	// Target is the identifier declaring the name.
	Target *syntax.Node

	// Declarator is the variable declarator owning the initializer, nil for opaque bindings
	// declared by other constructs (parameters, functions, imports, ...).
	Declarator *syntax.Node

	// Decl is the declaration statement containing Declarator.
	Decl *syntax.Node

	// Init is the initializer expression, nil when declared without a value.
	Init *syntax.Node

	// Path leads from Init to the bound value for pattern bindings.
	Path []Segment

	Scope scope.Key

	// Uses counts the attributed reads.
	Uses int

	// Last is the most recent attributed read, with its role.
	Last     *syntax.Node
	LastRole Role

	Flags Flags
}

// Var reports whether the binding is declared with var.
func (b *Binding) Var() bool {
	return b.Decl != nil && b.Decl.Kind == syntax.KindVarDecl
}

// Reference is one resolved identifier occurrence.
type Reference struct {
	Node    *syntax.Node
	Role    Role
	Binding *Binding // nil when unattributable (globals)
}
