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

package codefix

import (
	"context"
	"flag"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// FixAll names the strategy a host uses to fix all occurrences of a diagnostic.
type FixAll uint8

//go:generate go tool stringer -type FixAll
const (
	// NoFixAll means the fixer only supports fixing single diagnostics.
	NoFixAll FixAll = iota

	// BatchFixer lets the host compute all fixes independently and merge their edits.
	BatchFixer
)

// Fixer describes a code fix provider.
//
// It is the counterpart of an [analysis.Analyzer]: the analyzer reports diagnostics,
// the fixer offers code actions for the diagnostics whose Category is in FixableIDs.
type Fixer struct {
	// Name of the fixer, a valid Go identifier.
	Name string

	// Doc is the documentation for the fixer.
	Doc string

	// URL holds an optional link to a web page with additional documentation.
	URL string

	// FixableIDs are the diagnostic IDs this fixer handles.
	FixableIDs []string

	// FixAll is the strategy for fixing all diagnostics in a scope.
	FixAll FixAll

	// Flags defines any flags accepted by the fixer.
	Flags flag.FlagSet

	// Register inspects the diagnostics of the context and registers code actions for them.
	Register func(ctx context.Context, fc *Context) error
}

func (f *Fixer) String() string { return f.Name }

// Context is the input of a single [Fixer.Register] call.
type Context struct {
	// Document the diagnostics were reported in.
	Document *Document

	// Diagnostics to fix, all sharing a fixable ID.
	Diagnostics []analysis.Diagnostic

	registrations []Registration
}

// Registration is a code action offered for a set of diagnostics.
type Registration struct {
	Action      CodeAction
	Diagnostics []analysis.Diagnostic
}

// RegisterCodeFix offers action as a fix for diagnostics.
func (c *Context) RegisterCodeFix(action CodeAction, diagnostics ...analysis.Diagnostic) {
	c.registrations = append(c.registrations, Registration{Action: action, Diagnostics: slices.Clone(diagnostics)})
}

// Registrations returns the code actions registered so far.
func (c *Context) Registrations() []Registration { return slices.Clone(c.registrations) }

// CodeAction is a lazily computed change to a document.
type CodeAction struct {
	// Title is displayed to the user.
	Title string

	// EquivalenceKey groups actions that fix the same problem the same way.
	EquivalenceKey string

	changed func(ctx context.Context) (*Document, error)
}

// NewCodeAction creates a [CodeAction] computing the changed document with changed.
func NewCodeAction(title, equivalenceKey string, changed func(ctx context.Context) (*Document, error)) CodeAction {
	return CodeAction{Title: title, EquivalenceKey: equivalenceKey, changed: changed}
}

// ChangedDocument computes the document with the fix applied.
func (a CodeAction) ChangedDocument(ctx context.Context) (*Document, error) {
	return a.changed(ctx)
}
