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

package jsparse

import "fillmore-labs.com/onetimevar/internal/syntax"

// kinds maps tree-sitter-javascript grammar labels to node kinds.
//
// Older and newer grammar revisions use different labels for some constructs,
// both are listed.
var kinds = map[string]syntax.Kind{
	// keep-sorted start
	"arguments":                             syntax.KindArguments,
	"array":                                 syntax.KindArray,
	"array_pattern":                         syntax.KindArrayPattern,
	"arrow_function":                        syntax.KindArrow,
	"assignment_expression":                 syntax.KindAssign,
	"assignment_pattern":                    syntax.KindAssignmentPattern,
	"augmented_assignment_expression":       syntax.KindAugmentedAssign,
	"await_expression":                      syntax.KindAwait,
	"binary_expression":                     syntax.KindBinary,
	"call_expression":                       syntax.KindCall,
	"catch_clause":                          syntax.KindCatch,
	"class":                                 syntax.KindClass,
	"class_declaration":                     syntax.KindClass,
	"comment":                               syntax.KindComment,
	"computed_property_name":                syntax.KindComputedKey,
	"do_statement":                          syntax.KindDo,
	"else_clause":                           syntax.KindElse,
	"export_clause":                         syntax.KindExportClause,
	"export_specifier":                      syntax.KindExportSpecifier,
	"export_statement":                      syntax.KindExportStmt,
	"expression_statement":                  syntax.KindExprStmt,
	"false":                                 syntax.KindLiteral,
	"for_in_statement":                      syntax.KindForIn,
	"for_statement":                         syntax.KindFor,
	"formal_parameters":                     syntax.KindParams,
	"function":                              syntax.KindFuncExpr,
	"function_declaration":                  syntax.KindFuncDecl,
	"function_expression":                   syntax.KindFuncExpr,
	"generator_function":                    syntax.KindFuncExpr,
	"generator_function_declaration":        syntax.KindFuncDecl,
	"html_comment":                          syntax.KindComment,
	"identifier":                            syntax.KindIdentifier,
	"if_statement":                          syntax.KindIf,
	"import_statement":                      syntax.KindImportStmt,
	"lexical_declaration":                   syntax.KindLexicalDecl,
	"member_expression":                     syntax.KindMember,
	"method_definition":                     syntax.KindMethod,
	"new_expression":                        syntax.KindNew,
	"null":                                  syntax.KindLiteral,
	"number":                                syntax.KindLiteral,
	"object":                                syntax.KindObject,
	"object_assignment_pattern":             syntax.KindAssignmentPattern,
	"object_pattern":                        syntax.KindObjectPattern,
	"pair":                                  syntax.KindPair,
	"pair_pattern":                          syntax.KindPairPattern,
	"parenthesized_expression":              syntax.KindParen,
	"private_property_identifier":           syntax.KindPropertyIdentifier,
	"program":                               syntax.KindProgram,
	"property_identifier":                   syntax.KindPropertyIdentifier,
	"regex":                                 syntax.KindLiteral,
	"rest_pattern":                          syntax.KindRest,
	"return_statement":                      syntax.KindReturn,
	"sequence_expression":                   syntax.KindSequence,
	"shorthand_property_identifier":         syntax.KindShorthandProperty,
	"shorthand_property_identifier_pattern": syntax.KindShorthandPropertyPattern,
	"spread_element":                        syntax.KindSpread,
	"statement_block":                       syntax.KindBlock,
	"string":                                syntax.KindString,
	"subscript_expression":                  syntax.KindSubscript,
	"super":                                 syntax.KindLiteral,
	"switch_case":                           syntax.KindSwitchCase,
	"switch_default":                        syntax.KindSwitchCase,
	"switch_statement":                      syntax.KindSwitch,
	"template_string":                       syntax.KindTemplate,
	"template_substitution":                 syntax.KindTemplateSubstitution,
	"ternary_expression":                    syntax.KindTernary,
	"this":                                  syntax.KindLiteral,
	"throw_statement":                       syntax.KindThrow,
	"true":                                  syntax.KindLiteral,
	"unary_expression":                      syntax.KindUnary,
	"undefined":                             syntax.KindUndefined,
	"update_expression":                     syntax.KindUpdate,
	"variable_declaration":                  syntax.KindVarDecl,
	"variable_declarator":                   syntax.KindDeclarator,
	"while_statement":                       syntax.KindWhile,
	"yield_expression":                      syntax.KindYield,
	// keep-sorted end
}

// kindOf returns the node kind for a grammar label.
func kindOf(label string, named bool) syntax.Kind {
	if label == "ERROR" {
		return syntax.KindError
	}

	if !named {
		return syntax.KindToken
	}

	if k, ok := kinds[label]; ok {
		return k
	}

	return syntax.KindOther
}
