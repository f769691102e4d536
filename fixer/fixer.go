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
	"fillmore-labs.com/bracefix/codefix"
	"fillmore-labs.com/bracefix/internal/run"
)

// Public API constants for the bracefix fixer.
const (
	name = "bracefix"
	doc  = `bracefix wraps unbraced if and else bodies into blocks`
	url  = "https://pkg.go.dev/fillmore-labs.com/bracefix"
)

// DiagnosticID is the ID of the diagnostic this fixer handles.
const DiagnosticID = run.DiagnosticID

// New creates a new instance of the bracefix fixer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the fixer into hosts. For the default behavior, the
// pre-configured [Fixer] variable is typically sufficient.
func New(opts ...Option) *codefix.Fixer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	f := &codefix.Fixer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		FixableIDs: []string{DiagnosticID},
		FixAll:     codefix.BatchFixer,
		Register:   r.Register,
	}

	registerFlags(&f.Flags, r)

	return f
}

// Fixer is a pre-configured *[codefix.Fixer] for wrapping unbraced if and else bodies into blocks.
var Fixer = New()
