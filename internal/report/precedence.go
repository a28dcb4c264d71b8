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
	"fillmore-labs.com/onetimevar/internal/syntax"
)

// Level is the binding strength of an expression, loosest first.
type Level uint8

const (
	LLowest Level = iota
	LComma
	LSpread
	LYield
	LAssign
	LConditional
	LNullishCoalescing
	LLogicalOr
	LLogicalAnd
	LBitwiseOr
	LBitwiseXor
	LBitwiseAnd
	LEquals
	LCompare
	LShift
	LAdd
	LMultiply
	LExponentiation
	LPrefix
	LPostfix
	LNew
	LCall
	LMember
	LPrimary
)

var binaryLevels = map[string]Level{
	// keep-sorted start
	"!=":         LEquals,
	"!==":        LEquals,
	"%":          LMultiply,
	"&":          LBitwiseAnd,
	"&&":         LLogicalAnd,
	"*":          LMultiply,
	"**":         LExponentiation,
	"+":          LAdd,
	"-":          LAdd,
	"/":          LMultiply,
	"<":          LCompare,
	"<<":         LShift,
	"<=":         LCompare,
	"==":         LEquals,
	"===":        LEquals,
	">":          LCompare,
	">=":         LCompare,
	">>":         LShift,
	">>>":        LShift,
	"??":         LNullishCoalescing,
	"^":          LBitwiseXor,
	"in":         LCompare,
	"instanceof": LCompare,
	"|":          LBitwiseOr,
	"||":         LLogicalOr,
	// keep-sorted end
}

// operator returns the operator token of a binary expression.
func operator(n *syntax.Node) string {
	if op := n.Child("operator"); op != nil {
		return op.Type
	}

	for _, c := range n.Children {
		if c.Kind == syntax.KindToken {
			return c.Type
		}
	}

	return ""
}

// levelOf returns the binding strength of an expression.
//
// Unknown expression kinds bind loosest, so they are always parenthesized.
func levelOf(n *syntax.Node) Level {
	switch n.Kind {
	case syntax.KindSequence:
		return LComma

	case syntax.KindYield:
		return LYield

	case syntax.KindAssign, syntax.KindAugmentedAssign, syntax.KindArrow:
		return LAssign

	case syntax.KindTernary:
		return LConditional

	case syntax.KindBinary:
		if l, ok := binaryLevels[operator(n)]; ok {
			return l
		}

		return LLowest

	case syntax.KindUnary, syntax.KindAwait:
		return LPrefix

	case syntax.KindUpdate:
		if first := n.FirstNamed(); first != nil && first.Field == "argument" && first.Start == n.Start {
			return LPostfix
		}

		return LPrefix

	case syntax.KindNew:
		if n.Child("arguments") == nil {
			return LNew
		}

		return LCall

	case syntax.KindCall, syntax.KindMember, syntax.KindSubscript:
		switch {
		case optionalChain(n):
			// a?.b.c short-circuits differently than (a?.b).c
			return LPostfix

		case n.Kind == syntax.KindCall:
			return LCall

		default:
			return LMember
		}

	case syntax.KindIdentifier, syntax.KindLiteral, syntax.KindUndefined, syntax.KindString,
		syntax.KindTemplate, syntax.KindArray, syntax.KindObject, syntax.KindParen,
		syntax.KindFuncExpr, syntax.KindClass:
		return LPrimary

	case syntax.KindOther:
		if n.Type == "meta_property" {
			return LPrimary
		}
	}

	return LLowest
}

// optionalChain reports whether the member or call chain of n contains an optional access.
func optionalChain(n *syntax.Node) bool {
	for n != nil {
		switch n.Kind {
		case syntax.KindCall, syntax.KindMember, syntax.KindSubscript:
		default:
			return false
		}

		for _, c := range n.Children {
			if c.Type == "optional_chain" || c.Kind == syntax.KindToken && c.Type == "?." {
				return true
			}
		}

		switch n.Kind {
		case syntax.KindCall:
			n = n.Child("function")

		default:
			n = n.Child("object")
		}
	}

	return false
}

// slot describes the position of a read in its parent expression.
type slot struct {
	min Level // the minimum binding strength an expression needs to stay unparenthesized

	// statement is set when the slot starts an expression statement or a concise arrow body,
	// where a leading object literal, function or class would be parsed differently.
	statement bool

	// sign is set for the operand of unary plus or minus.
	sign bool

	// callee is set for the function of a call, where a member access passes its object as this.
	callee bool
}

// slotOf determines the slot of the read n, ok is false for unknown positions.
func slotOf(n *syntax.Node) (s slot, ok bool) {
	p := n.Parent
	if p == nil {
		return slot{}, false
	}

	s.statement = startsStatement(n)

	switch p.Kind {
	case syntax.KindExprStmt, syntax.KindReturn, syntax.KindThrow, syntax.KindParen,
		syntax.KindTemplateSubstitution, syntax.KindSwitchCase, syntax.KindIf, syntax.KindWhile, syntax.KindDo:
		s.min = LLowest

	case syntax.KindArguments, syntax.KindArray, syntax.KindPair, syntax.KindSpread,
		syntax.KindDeclarator, syntax.KindComputedKey, syntax.KindAssignmentPattern,
		syntax.KindYield, syntax.KindSequence:
		s.min = LYield

	case syntax.KindAssign, syntax.KindAugmentedAssign:
		if n.Field != "right" {
			return slot{}, false
		}

		s.min = LYield

	case syntax.KindArrow:
		if n.Field != "body" {
			return slot{}, false
		}

		s.min = LYield

	case syntax.KindForIn:
		if n.Field != "right" {
			return slot{}, false
		}

		s.min = LYield

	case syntax.KindTernary:
		if n.Field == "condition" {
			s.min = LNullishCoalescing
		} else {
			s.min = LYield
		}

	case syntax.KindMember:
		if n.Field != "object" {
			return slot{}, false
		}

		s.min = LCall

	case syntax.KindSubscript:
		switch n.Field {
		case "object":
			s.min = LCall

		case "index":
			s.min = LMember

		default:
			return slot{}, false
		}

	case syntax.KindCall:
		if n.Field != "function" {
			return slot{}, false
		}

		s.min = LCall
		s.callee = true

	case syntax.KindNew:
		if n.Field != "constructor" {
			return slot{}, false
		}

		s.min = LPrimary

	case syntax.KindUnary:
		s.min = LPrefix

		switch operator(p) {
		case "+", "-":
			s.sign = true
		}

	case syntax.KindAwait:
		s.min = LPrefix

	case syntax.KindBinary:
		op := operator(p)

		l, known := binaryLevels[op]
		if !known {
			return slot{}, false
		}

		switch {
		case op == "??":
			// ?? does not mix with && and || without parentheses
			s.min = LBitwiseOr

		case op == "**" && n.Field == "left":
			// -a ** b is a syntax error
			s.min = LPostfix

		case op == "**":
			s.min = l

		case n.Field == "left":
			s.min = l

		default:
			s.min = l + 1
		}

	default:
		return slot{}, false
	}

	return s, true
}

// startsStatement reports whether n is the leftmost part of an expression statement
// or of a concise arrow body.
func startsStatement(n *syntax.Node) bool {
	for child, p := n, n.Parent; p != nil; child, p = p, p.Parent {
		switch p.Kind {
		case syntax.KindExprStmt:
			return p.Start == child.Start

		case syntax.KindArrow:
			return child.Field == "body"
		}

		if p.Start != child.Start {
			return false
		}
	}

	return false
}

// leadingHazard reports whether an expression placed at the start of a statement would be
// parsed as a declaration or a block.
func leadingHazard(expr *syntax.Node) bool {
	for n := expr; n != nil; n = n.FirstNamed() {
		if n.Start != expr.Start {
			return false
		}

		switch n.Kind {
		case syntax.KindObject, syntax.KindFuncExpr, syntax.KindClass:
			return true

		case syntax.KindParen:
			return false
		}
	}

	return false
}

// needsParens reports whether an expression substituted into the slot must be parenthesized.
func needsParens(expr *syntax.Node, s slot) bool {
	if levelOf(expr) < s.min {
		return true
	}

	if s.min >= LCall && expr.Type == "number" {
		return true // 1.toString() is a syntax error
	}

	if s.sign {
		switch expr.Kind {
		case syntax.KindUnary, syntax.KindUpdate:
			return true // - -a, not --a
		}
	}

	return s.statement && leadingHazard(expr)
}
