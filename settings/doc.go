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

/*
Package settings decodes rule options of the [onetimevar] analyzer.

Options use the names of the ESLint rule configuration, either as an object or in
the array form with a leading severity:

	["error", {
	  "ignoredVariables": ["i"],
	  "ignoreArrayVariables": 3,
	  "allowInsideCallback": false
	}]

The CLI reads the same keys from its configuration file.

[onetimevar]: https://pkg.go.dev/fillmore-labs.com/onetimevar/analyzer
*/
package settings
