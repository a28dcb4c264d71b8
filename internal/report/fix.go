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

package report

import (
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/onetimevar/internal/astutil"
	"fillmore-labs.com/onetimevar/internal/syntax"
	"fillmore-labs.com/onetimevar/internal/target/check"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// absent is substituted for bindings declared without a value.
const absent = "undefined"

// createEdits creates the suggested fix inlining a single-use binding: remove the declaration
// and substitute the initializer at the read.
//
// Both edits are returned together, or none with the reason.
func createEdits(tree *syntax.Tree, b *usage.Binding) ([]analysis.TextEdit, check.FixStatus) {
	start, end, status := removal(tree, b)
	if !status.Fixable() {
		return nil, status
	}

	read := b.Last
	if read.Start < end && start < read.End {
		return nil, check.FixBlockedPlacement // read inside the removed text
	}

	text, status := substitution(tree, b)
	if !status.Fixable() {
		return nil, status
	}

	// Remove the declaration and substitute the read
	return []analysis.TextEdit{
		{Pos: tree.Pos(start), End: tree.Pos(end)},
		{Pos: tree.Pos(read.Start), End: tree.Pos(read.End), NewText: []byte(text)},
	}, check.FixAllowed
}

// removal determines the source range to delete for the declaration of b.
func removal(tree *syntax.Tree, b *usage.Binding) (start, end int, status check.FixStatus) {
	decl, declarator := b.Decl, b.Declarator
	if decl == nil || declarator == nil || !statementList(decl.Parent) {
		return 0, 0, check.FixBlockedPlacement
	}

	declarators := slices.Collect(astutil.Declarators(decl))

	switch i := slices.Index(declarators, declarator); {
	case i < 0:
		return 0, 0, check.FixBlockedPlacement

	case len(declarators) == 1:
		start, end = lineBounds(tree.Src, decl.Start, decl.End)
		if asiHazard(tree.Src, start, end) {
			return 0, 0, check.FixBlockedPlacement
		}

		return start, end, check.FixAllowed

	case i == 0:
		// const a = 1, b = 2; removes "a = 1, "
		return declarator.Start, declarators[1].Start, check.FixAllowed

	default:
		// const a = 1, b = 2; removes ", b = 2"
		return declarators[i-1].End, declarator.End, check.FixAllowed
	}
}

// statementList reports whether n holds a list of statements a declaration can be removed from.
func statementList(n *syntax.Node) bool {
	if n == nil {
		return false
	}

	switch n.Kind {
	case syntax.KindProgram, syntax.KindBlock, syntax.KindSwitchCase:
		return true

	default:
		return false
	}
}

// lineBounds extends the statement range [start, end) to whole lines when the statement
// is alone on its lines, otherwise it includes the adjoining blanks.
// Trailing comments on the same line are kept.
func lineBounds(src []byte, start, end int) (int, int) {
	lineStart := start
	for lineStart > 0 && blank(src[lineStart-1]) {
		lineStart--
	}

	lineEnd := end
	for lineEnd < len(src) && blank(src[lineEnd]) {
		lineEnd++
	}

	atLineStart := lineStart == 0 || src[lineStart-1] == '\n'
	atLineEnd := lineEnd == len(src) || src[lineEnd] == '\n' || src[lineEnd] == '\r'

	switch {
	case atLineStart && atLineEnd:
		if lineEnd < len(src) && src[lineEnd] == '\r' {
			lineEnd++
		}

		if lineEnd < len(src) && src[lineEnd] == '\n' {
			lineEnd++
		}

		return lineStart, lineEnd

	case atLineEnd:
		return lineStart, end

	default:
		return start, lineEnd
	}
}

func blank(c byte) bool { return c == ' ' || c == '\t' }

// asiHazard reports whether removing [start, end) joins the surrounding statements into one,
// because the following text would continue the preceding statement without a semicolon.
func asiHazard(src []byte, start, end int) bool {
	next := end
	for next < len(src) && space(src[next]) {
		next++
	}

	if next == len(src) || !strings.ContainsRune("([`+-/", rune(src[next])) {
		return false
	}

	prev := start
	for prev > 0 && space(src[prev-1]) {
		prev--
	}

	return prev > 0 && !strings.ContainsRune(";{}:", rune(src[prev-1]))
}

func space(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// substitution renders the text replacing the read of b.
func substitution(tree *syntax.Tree, b *usage.Binding) (string, check.FixStatus) {
	read := b.Last

	if b.LastRole == usage.RoleShorthand {
		// { name } expands to { name: <initializer> }
		v, status := value(tree, b, slot{min: LYield})
		if !status.Fixable() {
			return "", status
		}

		return tree.Text(read) + ": " + v, check.FixAllowed
	}

	s, ok := slotOf(read)
	if !ok {
		return "", check.FixBlockedSlot
	}

	return value(tree, b, s)
}

// value renders the initializer of b, including the access path of pattern bindings,
// parenthesized as required by the slot.
func value(tree *syntax.Tree, b *usage.Binding, s slot) (string, check.FixStatus) {
	init := b.Init
	if init == nil {
		return absent, check.FixAllowed
	}

	if s.callee {
		// f() with f = o.m would pass o as this
		if len(b.Path) > 0 {
			return "", check.FixBlockedSlot
		}

		switch syntax.Unparen(init).Kind {
		case syntax.KindMember, syntax.KindSubscript:
			return "", check.FixBlockedSlot
		}
	}

	text := tree.Text(init)

	if len(b.Path) == 0 {
		return parenthesize(text, needsParens(init, s)), check.FixAllowed
	}

	// The initializer becomes the object of a member access
	base := needsParens(init, slot{min: LCall})

	var buf strings.Builder

	buf.WriteString(parenthesize(text, base)) // ignore error
	for _, seg := range b.Path {
		buf.WriteString(seg.String()) // ignore error
	}

	wrap := LMember < s.min || !base && s.statement && leadingHazard(init)

	return parenthesize(buf.String(), wrap), check.FixAllowed
}

func parenthesize(text string, parens bool) string {
	if !parens {
		return text
	}

	return "(" + text + ")"
}
