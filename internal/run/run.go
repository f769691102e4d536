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
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/bracefix/codefix"
	"fillmore-labs.com/bracefix/internal/brace"
	"fillmore-labs.com/bracefix/internal/config"
	"fillmore-labs.com/bracefix/syntax"
)

const (
	// DiagnosticID is the ID of the diagnostic for unbraced if and else bodies.
	DiagnosticID = "IfClauseDiagnostic"

	// Title of the offered code action.
	Title = "Make Block"

	// EquivalenceKey is shared by all actions of this fixer.
	EquivalenceKey = "MakeBlock"
)

// Register offers a "Make Block" action for every eligible diagnostic of the context.
func (r *Options) Register(ctx context.Context, fc *codefix.Context) error {
	ctx, task := trace.NewTask(ctx, "BraceFix")
	defer task.End()

	doc := fc.Document
	trace.Log(ctx, "document", doc.Name())

	if doc.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		r.logger().LogAttrs(ctx, slog.LevelDebug, "Skipping generated document", slog.String("document", doc.Name()))

		return nil
	}

	root, err := doc.Root(ctx)
	if err != nil {
		return err
	}

	for _, diagnostic := range fc.Diagnostics {
		if diagnostic.Category != DiagnosticID {
			continue
		}

		stmt, err := r.locate(doc, root, diagnostic)
		if err != nil {
			r.logger().LogAttrs(ctx, slog.LevelDebug, "No fix for diagnostic",
				slog.String("document", doc.Name()),
				slog.String("position", doc.FileSet().Position(diagnostic.Pos).String()),
				slog.Any("error", err))

			continue
		}

		action := codefix.NewCodeAction(Title, EquivalenceKey, func(ctx context.Context) (*codefix.Document, error) {
			return r.makeBlock(ctx, doc, stmt)
		})

		fc.RegisterCodeFix(action, diagnostic)
	}

	return nil
}

// makeBlock returns a new snapshot of doc with stmt wrapped in a block.
func (r *Options) makeBlock(ctx context.Context, doc *codefix.Document, stmt *syntax.Cursor) (*codefix.Document, error) {
	defer trace.StartRegion(ctx, "MakeBlock").End()

	root, err := doc.Root(ctx)
	if err != nil {
		return nil, err
	}

	block, err := brace.WrapInBlock(stmt, r.lineEnding(root))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Name(), err)
	}

	newRoot, err := syntax.Replace(stmt, block)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Name(), err)
	}

	return doc.WithRoot(newRoot), nil
}

func (r *Options) lineEnding(root *syntax.Node) string {
	if r.LineEnding != "" {
		return r.LineEnding
	}

	if eol, ok := syntax.DominantLineEnding(root); ok {
		return eol
	}

	return DefaultLineEnding
}
