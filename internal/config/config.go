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

package config

// Behavior represents boolean options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// IgnoreFunctionVariables exempts bindings initialized with a function or arrow function.
	IgnoreFunctionVariables

	// IgnoreObjectVariables exempts bindings initialized with an object literal.
	IgnoreObjectVariables

	// IgnoreObjectDestructuring exempts bindings declared through object destructuring.
	IgnoreObjectDestructuring

	// IgnoreExportedVariables exempts bindings taking part in a module-level export.
	IgnoreExportedVariables

	// AllowInsideCallback exempts bindings whose read crosses into a nested function.
	AllowInsideCallback

	// Conservative indicates that fixes should not move initializers past code with potential side effects.
	Conservative
)

// Behaviors is the set of enabled [Behavior] flags.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the default behavior flags.
func DefaultBehavior() Behaviors {
	return NewBitMask(IgnoreFunctionVariables, IgnoreExportedVariables, AllowInsideCallback)
}
