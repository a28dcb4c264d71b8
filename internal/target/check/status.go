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

// Status indicates whether a single-use binding is reported and, if not, why.
type Status uint8

//go:generate go tool stringer -type Status,FixStatus -linecomment
const (
	// Reportable indicates the binding is reported.
	Reportable Status = iota // rep

	// IgnoredName indicates the name is in the ignore-list.
	IgnoredName // ign

	// InsideCallback indicates the read lies in a nested function.
	InsideCallback // cbk

	// InsideLoop indicates the declaration or its read lies in a loop,
	// the single read may run many times.
	InsideLoop // lop

	// AwaitedInit indicates the initializer is an await expression.
	// Inlining it would move the suspension point.
	AwaitedInit // awt

	// ExportedBinding indicates the binding takes part in a module-level export.
	ExportedBinding // exp

	// ObjectDestructuring indicates object destructuring bindings are ignored.
	ObjectDestructuring // obj

	// Reassigned indicates the binding is assigned after the declaration.
	Reassigned // asg

	// EarlyRead indicates the read happens before the declaration completes.
	EarlyRead // erl

	// Redeclared indicates another declaration of the same name in the same scope.
	Redeclared // dec

	// Malformed indicates the declaration or a use touches a syntax error.
	Malformed // err

	// Suppressed indicates a //nolint comment on the declaration line.
	Suppressed // nol
)

// Reportable indicates the binding is reported.
func (s Status) Reportable() bool { return s == Reportable }

// FixStatus indicates whether a reported binding gets a suggested fix and, if not, why.
// A blocked fix never suppresses the diagnostic.
type FixStatus uint8

const (
	// FixAllowed indicates the binding can be inlined.
	FixAllowed FixStatus = iota // fix

	// FixBlockedGenerated indicates the file is generated.
	// We do not generate fixes for generated files.
	FixBlockedGenerated // gen

	// FixBlockedExported indicates an exported binding, removing it would change the module interface.
	FixBlockedExported // exp

	// FixBlockedPattern indicates a destructuring shape without textual substitution
	// (default values, computed keys, object rest).
	FixBlockedPattern // pat

	// FixBlockedShadowed indicates an identifier of the initializer resolves to a different binding at the use site.
	FixBlockedShadowed // shw

	// FixBlockedReassigned indicates the initializer reads a binding that is reassigned.
	FixBlockedReassigned // asg

	// FixBlockedContext indicates the initializer uses this, arguments, await or yield
	// and the use site lies in a different function.
	FixBlockedContext // ctx

	// FixBlockedStatements indicates code with potential side effects between declaration and use.
	// This only applies in conservative mode.
	FixBlockedStatements // xst

	// FixBlockedPlacement indicates the declaration is not part of a statement list,
	// or the use lies outside of it.
	FixBlockedPlacement // pos

	// FixBlockedSlot indicates a use site shape without known precedence.
	FixBlockedSlot // slt

	// FixBlockedOverlap indicates the edits overlap with the fix of another binding.
	// Applying the other fix first makes this one possible.
	FixBlockedOverlap // ovl
)

// Fixable indicates the binding has a suggested fix.
func (i FixStatus) Fixable() bool { return i == FixAllowed }
