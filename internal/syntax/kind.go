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

package syntax

// Kind is the category of a syntax [Node].
//
// The set is closed: the parser adapter maps every grammar label to exactly one Kind,
// and the analysis stages dispatch on Kind only.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	// KindOther is any named node the analysis does not distinguish.
	KindOther Kind = iota

	// KindToken is an anonymous token (punctuation, keywords, operators).
	KindToken

	// KindError is a subtree the parser could not make sense of.
	KindError

	// KindComment is a line or block comment.
	KindComment

	// keep-sorted start
	KindArguments
	KindArray
	KindArrayPattern
	KindArrow
	KindAssign
	KindAssignmentPattern
	KindAugmentedAssign
	KindAwait
	KindBinary
	KindBlock
	KindCall
	KindCatch
	KindClass
	KindComputedKey
	KindDeclarator
	KindDo
	KindElse
	KindExportClause
	KindExportSpecifier
	KindExportStmt
	KindExprStmt
	KindFor
	KindForIn
	KindFuncDecl
	KindFuncExpr
	KindIdentifier
	KindIf
	KindImportStmt
	KindLexicalDecl
	KindLiteral
	KindMember
	KindMethod
	KindNew
	KindObject
	KindObjectPattern
	KindPair
	KindPairPattern
	KindParams
	KindParen
	KindProgram
	KindPropertyIdentifier
	KindRest
	KindReturn
	KindSequence
	KindShorthandProperty
	KindShorthandPropertyPattern
	KindSpread
	KindString
	KindSubscript
	KindSwitch
	KindSwitchCase
	KindTemplate
	KindTemplateSubstitution
	KindTernary
	KindThrow
	KindUnary
	KindUndefined
	KindUpdate
	KindVarDecl
	KindWhile
	KindYield
	// keep-sorted end
)

// IsFunction reports whether nodes of this kind introduce a function boundary.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFuncDecl, KindFuncExpr, KindArrow, KindMethod:
		return true

	default:
		return false
	}
}

// IsLoop reports whether nodes of this kind are loops.
func (k Kind) IsLoop() bool {
	switch k {
	case KindFor, KindForIn, KindWhile, KindDo:
		return true

	default:
		return false
	}
}
