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

package settings

import (
	"github.com/golangci/plugin-module-register/register"

	onetimevar "fillmore-labs.com/onetimevar/analyzer"
	"fillmore-labs.com/onetimevar/analyzer/level"
)

// Settings represents the rule options of an onetimevar analyzer.
type Settings struct {
	// IgnoredVariables lists names never reported.
	IgnoredVariables []string `json:"ignoredVariables,omitzero"`
	// IgnoreFunctionVariables exempts variables initialized with a function.
	IgnoreFunctionVariables *bool `json:"ignoreFunctionVariables,omitzero"`
	// IgnoreArrayVariables exempts array literal initializers, either all or above an element count.
	IgnoreArrayVariables *level.ArrayLimit `json:"ignoreArrayVariables,omitzero"`
	// IgnoreObjectVariables exempts object literal initializers.
	IgnoreObjectVariables *bool `json:"ignoreObjectVariables,omitzero"`
	// IgnoreObjectDestructuring exempts variables declared by object destructuring.
	IgnoreObjectDestructuring *bool `json:"ignoreObjectDestructuring,omitzero"`
	// IgnoreExportedVariables exempts exported variables.
	IgnoreExportedVariables *bool `json:"ignoreExportedVariables,omitzero"`
	// AllowInsideCallback exempts variables read inside a nested function.
	AllowInsideCallback *bool `json:"allowInsideCallback,omitzero"`
	// MaxObjectProperties exempts object literals with more properties.
	MaxObjectProperties *int `json:"maxObjectProperties,omitzero"`
	// MaxPropertyLength exempts object literals with a longer property.
	MaxPropertyLength *int `json:"maxPropertyLength,omitzero"`
	// MaxLength exempts other initializers with longer source text.
	MaxLength *int `json:"maxLength,omitzero"`
	// Conservative restricts fixes to those without potential side effects.
	Conservative *bool `json:"conservative,omitzero"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Decode decodes raw rule options, as read from a JSON or YAML configuration.
//
// The array form takes the first object after an optional severity.
// A nil value decodes to empty [Settings].
func Decode(raw any) (Settings, error) {
	if list, ok := raw.([]any); ok {
		raw = nil

		for _, v := range list {
			if _, ok := v.(map[string]any); ok {
				raw = v

				break
			}
		}
	}

	if raw == nil {
		return Settings{}, nil
	}

	return register.DecodeSettings[Settings](raw)
}

// Options converts [Settings] into a list of [onetimevar.Option] for the onetimevar analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []onetimevar.Option {
	var opts []onetimevar.Option

	if len(s.IgnoredVariables) > 0 {
		opts = append(opts, onetimevar.WithIgnoredVariables(s.IgnoredVariables...))
	}

	opts = appendOption(opts, s.IgnoreFunctionVariables, onetimevar.WithIgnoreFunctionVariables)
	opts = appendOption(opts, s.IgnoreArrayVariables, onetimevar.WithIgnoreArrayVariables)
	opts = appendOption(opts, s.IgnoreObjectVariables, onetimevar.WithIgnoreObjectVariables)
	opts = appendOption(opts, s.IgnoreObjectDestructuring, onetimevar.WithIgnoreObjectDestructuring)
	opts = appendOption(opts, s.IgnoreExportedVariables, onetimevar.WithIgnoreExportedVariables)
	opts = appendOption(opts, s.AllowInsideCallback, onetimevar.WithAllowInsideCallback)
	opts = appendOption(opts, s.MaxObjectProperties, onetimevar.WithMaxObjectProperties)
	opts = appendOption(opts, s.MaxPropertyLength, onetimevar.WithMaxPropertyLength)
	opts = appendOption(opts, s.MaxLength, onetimevar.WithMaxLength)
	opts = appendOption(opts, s.Conservative, onetimevar.WithConservative)
	opts = appendOption(opts, s.Generated, onetimevar.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to a [onetimevar.Option] list.
func appendOption[T any](opts []onetimevar.Option, value *T, constructor func(T) onetimevar.Option) []onetimevar.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
