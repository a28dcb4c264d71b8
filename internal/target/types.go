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

package target

import (
	"fillmore-labs.com/onetimevar/internal/target/check"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// Target represents a single-use binding surviving the eligibility checks.
type Target struct {
	*usage.Binding                 // The binding to inline
	Status         check.Status    // Always [check.Reportable] for selected targets
	Fix            check.FixStatus // Whether the initializer can be substituted, or why not
}
