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
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrInvalidFixer is returned when registering an incomplete [Fixer].
	ErrInvalidFixer = errors.New("invalid fixer")

	// ErrNoFixer is returned when no fixer handles a diagnostic ID.
	ErrNoFixer = errors.New("no fixer for diagnostic")
)

// Registry maps diagnostic IDs to the fixers handling them.
// The mapping is fixed when the registry is created.
type Registry struct {
	byID map[string][]*Fixer
}

// NewRegistry creates a [Registry] for the given fixers.
func NewRegistry(fixers ...*Fixer) (*Registry, error) {
	r := &Registry{byID: make(map[string][]*Fixer)}

	for _, f := range fixers {
		if err := validate(f); err != nil {
			return nil, err
		}

		for _, id := range f.FixableIDs {
			if !slices.Contains(r.byID[id], f) {
				r.byID[id] = append(r.byID[id], f)
			}
		}
	}

	return r, nil
}

func validate(f *Fixer) error {
	switch {
	case f == nil:
		return fmt.Errorf("%w: nil", ErrInvalidFixer)

	case f.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidFixer)

	case len(f.FixableIDs) == 0:
		return fmt.Errorf("%w: %s declares no fixable diagnostic IDs", ErrInvalidFixer, f.Name)

	case slices.Contains(f.FixableIDs, ""):
		return fmt.Errorf("%w: %s declares an empty diagnostic ID", ErrInvalidFixer, f.Name)

	case f.Register == nil:
		return fmt.Errorf("%w: %s has no Register function", ErrInvalidFixer, f.Name)
	}

	return nil
}

// Fixers returns the fixers handling the diagnostic ID.
func (r *Registry) Fixers(id string) []*Fixer { return slices.Clone(r.byID[id]) }

// IDs returns all fixable diagnostic IDs in sorted order.
func (r *Registry) IDs() []string { return slices.Sorted(maps.Keys(r.byID)) }

// CodeFixes collects the code actions all matching fixers offer for diagnostic.
// The diagnostic ID is taken from [analysis.Diagnostic.Category].
func (r *Registry) CodeFixes(ctx context.Context, doc *Document, diagnostic analysis.Diagnostic) ([]Registration, error) {
	fixers := r.byID[diagnostic.Category]
	if len(fixers) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoFixer, diagnostic.Category)
	}

	var registrations []Registration

	for _, f := range fixers {
		fc := &Context{Document: doc, Diagnostics: []analysis.Diagnostic{diagnostic}}
		if err := f.Register(ctx, fc); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}

		registrations = append(registrations, fc.registrations...)
	}

	return registrations, nil
}
