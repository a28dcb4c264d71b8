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

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fillmore-labs.com/onetimevar/analyzer"
	"fillmore-labs.com/onetimevar/settings"
)

type ruleKind uint8

const (
	ruleBool ruleKind = iota
	ruleInt
	ruleNames
	ruleText
)

// rules maps the analyzer flags to the rule option keys of the configuration file.
var rules = [...]struct {
	flag string
	key  string
	kind ruleKind
}{
	// keep-sorted start
	{"allow-inside-callback", "allowInsideCallback", ruleBool},
	{"conservative", "conservative", ruleBool},
	{"generated", "generated", ruleBool},
	{"ignore-array-variables", "ignoreArrayVariables", ruleText},
	{"ignore-exported-variables", "ignoreExportedVariables", ruleBool},
	{"ignore-function-variables", "ignoreFunctionVariables", ruleBool},
	{"ignore-object-destructuring", "ignoreObjectDestructuring", ruleBool},
	{"ignore-object-variables", "ignoreObjectVariables", ruleBool},
	{"ignored-variables", "ignoredVariables", ruleNames},
	{"max-length", "maxLength", ruleInt},
	{"max-object-properties", "maxObjectProperties", ruleInt},
	{"max-property-length", "maxPropertyLength", ruleInt},
	// keep-sorted end
}

// registerRuleFlags adds a flag for every rule option, with defaults and usage taken from the analyzer.
func registerRuleFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for _, r := range rules {
		f := analyzer.Default.Flags.Lookup(r.flag)
		if f == nil {
			cobra.CheckErr(fmt.Errorf("analyzer flag %q not found", r.flag))

			continue
		}

		switch r.kind {
		case ruleBool:
			def, _ := strconv.ParseBool(f.DefValue)
			flags.Bool(r.flag, def, f.Usage)

		case ruleInt:
			def, _ := strconv.Atoi(f.DefValue)
			flags.Int(r.flag, def, f.Usage)

		case ruleNames:
			flags.StringSlice(r.flag, nil, f.Usage)

		case ruleText:
			flags.String(r.flag, f.DefValue, f.Usage)
		}

		bindFlagToConfig(v, flags.Lookup(r.flag), ruleKeyPrefix+r.key)
	}
}

// ruleSettings collects the rule options given as flags, environment variables or in the configuration file.
func ruleSettings(v *viper.Viper) (settings.Settings, error) {
	raw := make(map[string]any, len(rules))

	for _, r := range rules {
		key := ruleKeyPrefix + r.key
		if !v.IsSet(key) {
			continue
		}

		switch r.kind {
		case ruleBool:
			raw[r.key] = v.GetBool(key)

		case ruleInt:
			raw[r.key] = v.GetInt(key)

		case ruleNames:
			raw[r.key] = v.GetStringSlice(key)

		case ruleText:
			raw[r.key] = v.GetString(key)
		}
	}

	return settings.Decode(raw)
}
