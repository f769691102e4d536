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

package fixer

import (
	"log/slog"

	"fillmore-labs.com/bracefix/internal/config"
	"fillmore-labs.com/bracefix/internal/run"
)

// Option configures specific behavior of a [New] bracefix fixer.
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

// WithElse is an [Option] to configure whether unbraced else bodies are fixed.
func WithElse(elseBodies bool) Option { return elseOption{elseBodies: elseBodies} }

type elseOption struct{ elseBodies bool }

func (o elseOption) apply(r *run.Options) {
	r.Behavior.Set(config.ElseBodies, o.elseBodies)
}

func (o elseOption) LogAttr() slog.Attr {
	return slog.Bool("else", o.elseBodies)
}

// WithGenerated is an [Option] to configure fixes in generated documents.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithLineEnding is an [Option] to configure a fixed line ending for inserted line breaks.
// The empty string selects the dominant line ending of each document.
func WithLineEnding(eol string) Option { return lineEndingOption{eol: eol} }

type lineEndingOption struct{ eol string }

func (o lineEndingOption) apply(r *run.Options) {
	r.LineEnding = o.eol
}

func (o lineEndingOption) LogAttr() slog.Attr {
	return slog.String("eol", o.eol)
}

// WithLogger is an [Option] to configure the logger for debug messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
