// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

	"fillmore-labs.com/bracefix/internal/config"
)

// DefaultLineEnding is used for documents without any line break.
const DefaultLineEnding = "\r\n"

// Options represent configuration options for the bracefix fixer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// LineEnding is inserted for new line breaks. When empty, the dominant line ending
	// of the document is used.
	LineEnding string

	// Logger receives debug messages about skipped diagnostics. Nil means [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

func (r *Options) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}

	return r.Logger
}
