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

package run

import (
	"log/slog"

	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/usage"
)

// Options represent configuration options for the onetimevar pipeline.
type Options struct {
	// Ignored holds names never reported.
	Ignored []string

	// Behavior holds behavioral options.
	Behavior config.Behaviors

	// Policy holds the initializer thresholds.
	Policy usage.Policy

	// Logger receives debug output, nil discards it.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
		Policy:   usage.DefaultPolicy(),
		Logger:   slog.Default(),
	}
}

// UsagePolicy returns the registration policy implied by the behavior flags.
func (r *Options) UsagePolicy() usage.Policy {
	p := r.Policy
	p.IgnoreFunctions = r.Behavior.Enabled(config.IgnoreFunctionVariables)
	p.IgnoreObjects = r.Behavior.Enabled(config.IgnoreObjectVariables)

	return p
}
