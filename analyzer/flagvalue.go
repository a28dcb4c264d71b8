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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/onetimevar/internal/config"
)

// behaviorValue is a boolean command line flag switching one behavior of the rule.
type behaviorValue struct {
	behaviors *config.Behaviors
	behavior  config.Behavior
}

var _ flag.Getter = behaviorValue{}

func newBehaviorValue(behaviors *config.Behaviors, behavior config.Behavior) flag.Getter {
	return behaviorValue{behaviors: behaviors, behavior: behavior}
}

func (v behaviorValue) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behaviors.Set(v.behavior, enabled)

	return nil
}

// String is called on the zero value by [flag.PrintDefaults] to detect non-default values.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

func (v behaviorValue) Get() any { return v.enabled() }

func (v behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.behaviors != nil && v.behaviors.Enabled(v.behavior)
}

// parseBool accepts the forms of [strconv.ParseBool] in any case, and on or off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "t", "true", "on":
		return true, nil

	case "0", "f", "false", "off":
		return false, nil

	default:
		return false, &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax}
	}
}
