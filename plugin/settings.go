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

package plugin

import bracefix "fillmore-labs.com/bracefix/fixer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Else enables fixes for unbraced else bodies.
	Else *bool `json:"else,omitzero"`
	// Generated enables fixes in generated documents.
	Generated *bool `json:"generated,omitzero"`
	// LineEnding selects the inserted line break: "auto", "crlf", "lf" or "cr".
	LineEnding *string `json:"line-ending,omitzero"`
}

// Options converts [Settings] into a list of [bracefix.Option] for the bracefix fixer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]bracefix.Option, error) {
	var opts []bracefix.Option

	opts = appendOption(opts, s.Else, bracefix.WithElse)
	opts = appendOption(opts, s.Generated, bracefix.WithGenerated)

	if s.LineEnding != nil {
		eol, err := bracefix.ParseLineEnding(*s.LineEnding)
		if err != nil {
			return nil, err
		}

		opts = append(opts, bracefix.WithLineEnding(eol))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [bracefix.Option] list.
func appendOption[T any](opts []bracefix.Option, value *T, constructor func(T) bracefix.Option) []bracefix.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
