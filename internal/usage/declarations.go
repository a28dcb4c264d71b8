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
	"log/slog"
	"slices"
	"strconv"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/scope"
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// declare registers the bindings introduced by n.
func (c *collector) declare(n *syntax.Node) {
	switch n.Kind {
	// keep-sorted start newline_separated=yes
	case syntax.KindArrow:
		key := c.scopes.Own(n)
		if p := n.Child("parameter"); p != nil {
			c.opaque(p, key)
		}

		c.opaque(n.Child("parameters"), key)

	case syntax.KindCatch:
		c.opaque(n.Child("parameter"), c.scopes.Own(n))

	case syntax.KindClass:
		name := n.Child("name")
		if name == nil {
			break
		}

		if n.Type == "class_declaration" {
			c.opaque(name, c.scopes.Governing(n))
		} else {
			c.target(name) // visible inside the class body only
		}

	case syntax.KindForIn:
		if !n.HasToken("const") && !n.HasToken("let") && !n.HasToken("var") {
			break
		}

		key := c.scopes.Own(n)
		if n.HasToken("var") {
			key = c.scopes.FunctionScope(c.scopes.Governing(n))
		}

		c.opaque(n.Child("left"), key)

	case syntax.KindFuncDecl:
		// block scoped in strict mode
		c.opaque(n.Child("name"), c.scopes.Governing(n))
		c.opaque(n.Child("parameters"), c.scopes.Own(n))

	case syntax.KindFuncExpr:
		key := c.scopes.Own(n)
		c.opaque(n.Child("name"), key)
		c.opaque(n.Child("parameters"), key)

	case syntax.KindImportStmt:
		c.imports(n)

	case syntax.KindLexicalDecl, syntax.KindVarDecl:
		c.declaration(n)

	case syntax.KindMethod:
		c.opaque(n.Child("parameters"), c.scopes.Own(n))
		// keep-sorted end
	}
}

// declaration registers the declarators of a let, const or var statement.
func (c *collector) declaration(decl *syntax.Node) {
	key := c.scopes.Governing(decl)
	if decl.Kind == syntax.KindVarDecl {
		key = c.scopes.FunctionScope(key)
	}

	var flags Flags
	if p := decl.Parent; p != nil && p.Kind == syntax.KindExportStmt {
		flags.Enable(Exported)
	}

	for d := range astutil.Declarators(decl) {
		c.declarator(decl, d, key, flags)
	}
}

func (c *collector) declarator(decl, d *syntax.Node, key scope.Key, flags Flags) {
	name, init := d.Child("name"), d.Child("value")
	if name == nil {
		astutil.InternalError(c.ctx, c.logger, c.tree, d, "Declarator without name")

		return
	}

	if d.Broken {
		flags.Enable(Malformed | Opaque)
	}

	if reason := c.policy.reject(c.tree, init); reason != "" {
		c.logger.LogAttrs(c.ctx, slog.LevelDebug, "Initializer not a candidate",
			slog.String("name", c.tree.Text(name)), slog.String("reason", reason))

		flags.Enable(Opaque)
	}

	binding := func(target *syntax.Node, kind Kind, path []Segment, flags Flags) *Binding {
		return &Binding{
			Name:       c.tree.Text(target),
			Kind:       kind,
			Target:     target,
			Declarator: d,
			Decl:       decl,
			Init:       init,
			Path:       path,
			Scope:      key,
			Flags:      flags,
		}
	}

	switch name.Kind {
	case syntax.KindIdentifier:
		c.register(binding(name, Simple, nil, flags))

	case syntax.KindObjectPattern, syntax.KindArrayPattern:
		var found []patternBinding
		if !destructure(c.tree, name, nil, Simple, flags, &found) || len(found) != 1 {
			// multi-name destructuring and array rest
			flags.Enable(Opaque)

			for target := range astutil.BoundNames(name) {
				c.register(binding(target, Simple, nil, flags))
			}

			return
		}

		pb := found[0]
		c.register(binding(pb.target, pb.kind, pb.path, pb.flags))

	default:
		astutil.InternalError(c.ctx, c.logger, c.tree, name, "Unexpected declarator name %s", name.Type)
	}
}

type patternBinding struct {
	target *syntax.Node
	path   []Segment
	kind   Kind
	flags  Flags
}

// destructure collects the names bound by a pattern together with their access paths.
// It returns false for shapes that can't be reported at all.
func destructure(tree *syntax.Tree, n *syntax.Node, path []Segment, kind Kind, flags Flags, out *[]patternBinding) bool {
	switch n.Kind {
	case syntax.KindIdentifier:
		*out = append(*out, patternBinding{n, path, kind, flags})

	case syntax.KindObjectPattern:
		flags.Enable(FromObjectPattern)

		for e := range n.Named() {
			if !destructureProperty(tree, e, path, flags, out) {
				return false
			}
		}

	case syntax.KindArrayPattern:
		index := 0

		for _, e := range n.Children {
			switch e.Kind {
			case syntax.KindToken:
				if e.Type == "," {
					index++ // holes count
				}

				continue

			case syntax.KindComment:
				continue

			case syntax.KindRest:
				return false
			}

			seg := Segment{Text: strconv.Itoa(index), Bracket: true}
			if !destructure(tree, e, appendPath(path, seg), ArrayElement, flags, out) {
				return false
			}
		}

	case syntax.KindAssignmentPattern:
		flags.Enable(NoFix)

		return destructure(tree, n.Child("left"), path, kind, flags, out)

	default:
		return false
	}

	return true
}

func destructureProperty(tree *syntax.Tree, e *syntax.Node, path []Segment, flags Flags, out *[]patternBinding) bool {
	switch e.Kind {
	case syntax.KindShorthandPropertyPattern:
		seg := Segment{Text: tree.Text(e)}
		*out = append(*out, patternBinding{e, appendPath(path, seg), ObjectProperty, flags})

	case syntax.KindPairPattern:
		seg, ok := propertySegment(tree, e.Child("key"))
		if !ok {
			flags.Enable(NoFix)
		}

		value := e.Child("value")
		if value == nil {
			return false
		}

		return destructure(tree, value, appendPath(path, seg), ObjectProperty, flags, out)

	case syntax.KindAssignmentPattern: // { a = 1 }
		flags.Enable(NoFix)

		left := e.Child("left")
		if left == nil {
			return false
		}

		if left.Kind == syntax.KindShorthandPropertyPattern {
			return destructureProperty(tree, left, path, flags, out)
		}

		return destructure(tree, left, path, ObjectProperty, flags, out)

	case syntax.KindRest: // { ...rest }
		flags.Enable(NoFix)

		inner := e.FirstNamed()
		if inner == nil {
			return false
		}

		return destructure(tree, inner, path, ObjectProperty, flags, out)

	default:
		return false
	}

	return true
}

// propertySegment returns the access path segment for a property key.
func propertySegment(tree *syntax.Tree, key *syntax.Node) (Segment, bool) {
	if key == nil {
		return Segment{}, false
	}

	switch key.Kind {
	case syntax.KindPropertyIdentifier:
		return Segment{Text: tree.Text(key)}, true

	case syntax.KindString, syntax.KindLiteral:
		return Segment{Text: tree.Text(key), Bracket: true}, true

	default: // computed keys
		return Segment{}, false
	}
}

func appendPath(path []Segment, seg Segment) []Segment {
	return append(slices.Clip(path), seg)
}

// imports registers the local names of an import statement.
func (c *collector) imports(n *syntax.Node) {
	for id := range n.Preorder() {
		if id.Kind != syntax.KindIdentifier {
			continue
		}

		c.target(id)

		// import { name as alias }
		if p := id.Parent; p.Type == "import_specifier" && id.Field == "name" && p.Child("alias") != nil {
			continue
		}

		c.register(&Binding{Name: c.tree.Text(id), Target: id, Scope: scope.Root, Flags: opaqueFlags})
	}
}

var opaqueFlags = config.NewBitMask(Opaque)

// opaque registers every name bound by the pattern as a shadowing-only binding.
func (c *collector) opaque(pattern *syntax.Node, key scope.Key) {
	for target := range astutil.BoundNames(pattern) {
		c.register(&Binding{Name: c.tree.Text(target), Target: target, Scope: key, Flags: opaqueFlags})
	}
}

// register adds the binding to the registry and marks its target as a declaration.
func (c *collector) register(b *Binding) {
	c.target(b.Target)
	c.registry.Register(b)
}

func (c *collector) target(n *syntax.Node) {
	c.declared[n.Index] = true
}
