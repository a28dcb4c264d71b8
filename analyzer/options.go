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
	"log/slog"
	"slices"

	"fillmore-labs.com/onetimevar/analyzer/level"
	"fillmore-labs.com/onetimevar/internal/config"
	"fillmore-labs.com/onetimevar/internal/run"
)

// Option configures specific behavior of a [New] onetimevar analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithIgnoredVariables is an [Option] to never report the named variables.
func WithIgnoredVariables(names ...string) Option {
	return ignoredOption{names: slices.Clone(names)}
}

type ignoredOption struct{ names []string }

func (o ignoredOption) apply(r *run.Options) {
	r.Ignored = append(r.Ignored, o.names...)
}

func (o ignoredOption) LogAttr() slog.Attr {
	return slog.Any("ignoredVariables", o.names)
}

// behaviorOption switches a single [config.Behavior] flag.
type behaviorOption struct {
	key   string
	flag  config.Behavior
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.value)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{key: "generated", flag: config.IncludeGenerated, value: generated}
}

// WithIgnoreFunctionVariables is an [Option] to exempt variables initialized with a function.
func WithIgnoreFunctionVariables(ignore bool) Option {
	return behaviorOption{key: "ignoreFunctionVariables", flag: config.IgnoreFunctionVariables, value: ignore}
}

// WithIgnoreObjectVariables is an [Option] to exempt variables initialized with an object literal.
func WithIgnoreObjectVariables(ignore bool) Option {
	return behaviorOption{key: "ignoreObjectVariables", flag: config.IgnoreObjectVariables, value: ignore}
}

// WithIgnoreObjectDestructuring is an [Option] to exempt variables declared by object destructuring.
func WithIgnoreObjectDestructuring(ignore bool) Option {
	return behaviorOption{key: "ignoreObjectDestructuring", flag: config.IgnoreObjectDestructuring, value: ignore}
}

// WithIgnoreExportedVariables is an [Option] to exempt exported variables.
func WithIgnoreExportedVariables(ignore bool) Option {
	return behaviorOption{key: "ignoreExportedVariables", flag: config.IgnoreExportedVariables, value: ignore}
}

// WithAllowInsideCallback is an [Option] to exempt variables read inside a nested function.
func WithAllowInsideCallback(allow bool) Option {
	return behaviorOption{key: "allowInsideCallback", flag: config.AllowInsideCallback, value: allow}
}

// WithConservative is an [Option] to only suggest fixes that don't move initializers past code with potential side effects.
func WithConservative(conservative bool) Option {
	return behaviorOption{key: "conservative", flag: config.Conservative, value: conservative}
}

// WithIgnoreArrayVariables is an [Option] to exempt variables initialized with an array literal.
func WithIgnoreArrayVariables(limit level.ArrayLimit) Option {
	return arrayOption{limit: limit}
}

type arrayOption struct{ limit level.ArrayLimit }

func (o arrayOption) apply(r *run.Options) {
	r.Policy.ArrayLimit = o.limit.Limit()
}

func (o arrayOption) LogAttr() slog.Attr {
	return slog.String("ignoreArrayVariables", o.limit.String())
}

// thresholdOption sets one of the initializer size thresholds.
type thresholdOption struct {
	key   string
	field func(r *run.Options) *int
	value int
}

func (o thresholdOption) apply(r *run.Options) {
	*o.field(r) = o.value
}

func (o thresholdOption) LogAttr() slog.Attr {
	return slog.Int(o.key, o.value)
}

// WithMaxObjectProperties is an [Option] to exempt object literal initializers with more properties.
// Negative values disable the threshold.
func WithMaxObjectProperties(maxProperties int) Option {
	return thresholdOption{
		key:   "maxObjectProperties",
		field: func(r *run.Options) *int { return &r.Policy.MaxObjectProperties },
		value: maxProperties,
	}
}

// WithMaxPropertyLength is an [Option] to exempt object literal initializers with a longer property.
// Negative values disable the threshold.
func WithMaxPropertyLength(maxLength int) Option {
	return thresholdOption{
		key:   "maxPropertyLength",
		field: func(r *run.Options) *int { return &r.Policy.MaxPropertyLength },
		value: maxLength,
	}
}

// WithMaxLength is an [Option] to exempt other initializers with longer source text.
// Negative values disable the threshold.
func WithMaxLength(maxLength int) Option {
	return thresholdOption{
		key:   "maxLength",
		field: func(r *run.Options) *int { return &r.Policy.MaxLength },
		value: maxLength,
	}
}

// WithLogger is an [Option] to send debug output to logger. A nil logger discards it.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
