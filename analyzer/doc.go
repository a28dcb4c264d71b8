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

// Package analyzer implements the onetimevar static analysis pass for JavaScript.
//
// # Overview
//
// OneTimeVar detects variables that are read exactly once and suggests inlining
// their initializer at the read.
//
// # Example
//
// Before:
//
//	const { name } = user;
//	greet(name);
//
// After applying onetimevar's suggested fix:
//
//	greet(user.name);
//
// # Exemptions
//
// Variables are not reported when:
//
//   - their name is ignored
//   - they are declared in a loop head or read inside a loop
//   - their only read is inside a nested function and callbacks are allowed
//   - their initializer is awaited
//   - they are exported and exported variables are ignored
//   - they are reassigned, redeclared or read before their declaration
//   - the declaration line carries a //nolint:onetimevar comment
//
// Reported variables carry a suggested fix unless inlining could change the meaning
// of the program, for example when a name of the initializer is shadowed at the read.
package analyzer
