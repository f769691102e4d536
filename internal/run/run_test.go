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

package run_test

import (
	"bytes"
	"context"
	"errors"
	"go/token"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bracefix/codefix"
	"fillmore-labs.com/bracefix/internal/brace"
	"fillmore-labs.com/bracefix/internal/config"
	. "fillmore-labs.com/bracefix/internal/run"
	"fillmore-labs.com/bracefix/internal/testsource"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		src      string
		at       string
		id       string
		behavior func(b *config.Behavior)
		eol      string
		want     string // empty: no fix offered
	}{
		{
			name: "If",
			src:  "    if (cond)\r\n        DoSomething();\r\n",
			at:   "DoSomething",
			want: "    if (cond)\r\n    {\r\n        DoSomething();\r\n    }\r\n",
		},
		{
			name: "DiagnosticInStatement",
			src:  "  if (cond)\n    Call(a, b);\n",
			at:   "b)",
			want: "  if (cond)\n  {\n    Call(a, b);\n  }\n",
		},
		{
			name: "Else",
			src:  "  if (a)\n  {\n    x();\n  }\n  else\n    return;\n",
			at:   "return",
			want: "  if (a)\n  {\n    x();\n  }\n  else\n  {\n    return;\n  }\n",
		},
		{
			name:     "ElseDisabled",
			src:      "  if (a)\n  {\n    x();\n  }\n  else\n    return;\n",
			at:       "return",
			behavior: func(b *config.Behavior) { b.Disable(config.ElseBodies) },
		},
		{
			name: "ElseIf",
			src:  "  if (a)\n    x();\n  else if (b)\n    y();\n",
			at:   "if (b)",
		},
		{
			name: "AlreadyBlock",
			src:  "  if (a)\n  {\n    x();\n  }\n",
			at:   "{",
		},
		{
			name: "Condition",
			src:  "  if (cond)\n    x();\n",
			at:   "cond",
		},
		{
			name: "NotConditional",
			src:  "  x();\n",
			at:   "x()",
		},
		{
			name: "OtherDiagnostic",
			src:  "  if (cond)\n    x();\n",
			at:   "x()",
			id:   "Other",
		},
		{
			name: "Generated",
			file: "Program.g.cs",
			src:  "  if (cond)\n    x();\n",
			at:   "x()",
		},
		{
			name:     "IncludeGenerated",
			file:     "Program.g.cs",
			src:      "  if (cond)\n    x();\n",
			at:       "x()",
			behavior: func(b *config.Behavior) { b.Enable(config.IncludeGenerated) },
			want:     "  if (cond)\n  {\n    x();\n  }\n",
		},
		{
			name: "FixedLineEnding",
			src:  "  if (cond)\n    x();\n",
			at:   "x()",
			eol:  "\r\n",
			want: "  if (cond)\n  {\r\n    x();\n  }\r\n",
		},
		{
			name: "DefaultLineEnding",
			src:  "  if (a) b();",
			at:   "b()",
			want: "  if (a)   {" + DefaultLineEnding + "b();  }" + DefaultLineEnding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer

			r := DefaultOptions()
			if tt.behavior != nil {
				tt.behavior(&r.Behavior)
			}
			r.LineEnding = tt.eol
			r.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

			file := tt.file
			if file == "" {
				file = "Program.cs"
			}

			id := tt.id
			if id == "" {
				id = DiagnosticID
			}

			fc := newContext(t, file, tt.src, tt.at, id)

			if err := r.Register(t.Context(), fc); err != nil {
				t.Fatalf("Register failed: %v", err)
			}

			regs := fc.Registrations()

			if tt.want == "" {
				if len(regs) != 0 {
					t.Errorf("Got %d registrations, want none", len(regs))
				}

				return
			}

			if len(regs) != 1 {
				t.Fatalf("Got %d registrations, want 1 (log: %s)", len(regs), logs.String())
			}

			reg := regs[0]
			if reg.Action.Title != Title || reg.Action.EquivalenceKey != EquivalenceKey {
				t.Errorf("Got action %q/%q, want %q/%q", reg.Action.Title, reg.Action.EquivalenceKey, Title, EquivalenceKey)
			}

			if len(reg.Diagnostics) != 1 || reg.Diagnostics[0].Category != DiagnosticID {
				t.Errorf("Got diagnostics %+v", reg.Diagnostics)
			}

			changed, err := reg.Action.ChangedDocument(t.Context())
			if err != nil {
				t.Fatalf("ChangedDocument failed: %v", err)
			}

			if got := changed.Text(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if got := fc.Document.Text(); got != tt.src {
				t.Errorf("Original document changed to %q", got)
			}
		})
	}
}

func TestRegisterLogsSkipped(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	r := DefaultOptions()
	r.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fc := newContext(t, "Program.cs", "  if (a)\n  {\n    x();\n  }\n", "{", DiagnosticID)

	if err := r.Register(t.Context(), fc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got, want := logs.String(), "No fix for diagnostic"; !strings.Contains(got, want) {
		t.Errorf("Got log %q, want it to contain %q", got, want)
	}

	if got, want := logs.String(), brace.ErrAlreadyBlock.Error(); !strings.Contains(got, want) {
		t.Errorf("Got log %q, want it to contain %q", got, want)
	}
}

func TestMultipleDiagnostics(t *testing.T) {
	t.Parallel()

	const src = "  if (a)\n    x();\n  if (b)\n    y();\n"

	fset := token.NewFileSet()
	doc := codefix.NewDocument(fset, "Program.cs", testsource.Parse(t, src))

	fc := &codefix.Context{
		Document: doc,
		Diagnostics: []analysis.Diagnostic{
			diagnosticAt(t, doc, "x()", DiagnosticID),
			diagnosticAt(t, doc, "y()", DiagnosticID),
		},
	}

	if err := DefaultOptions().Register(t.Context(), fc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	regs := fc.Registrations()
	if len(regs) != 2 {
		t.Fatalf("Got %d registrations, want 2", len(regs))
	}

	wants := []string{
		"  if (a)\n  {\n    x();\n  }\n  if (b)\n    y();\n",
		"  if (a)\n    x();\n  if (b)\n  {\n    y();\n  }\n",
	}

	for i, reg := range regs {
		changed, err := reg.Action.ChangedDocument(t.Context())
		if err != nil {
			t.Fatalf("ChangedDocument %d failed: %v", i, err)
		}

		if got := changed.Text(); got != wants[i] {
			t.Errorf("Got %q for fix %d, want %q", got, i, wants[i])
		}
	}
}

func TestChangedDocumentRepeatable(t *testing.T) {
	t.Parallel()

	const (
		src  = "  if (cond)\n    x();\n"
		want = "  if (cond)\n  {\n    x();\n  }\n"
	)

	fc := newContext(t, "Program.cs", src, "x()", DiagnosticID)

	if err := DefaultOptions().Register(t.Context(), fc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	regs := fc.Registrations()
	if len(regs) != 1 {
		t.Fatalf("Got %d registrations, want 1", len(regs))
	}

	for i := range 2 {
		changed, err := regs[0].Action.ChangedDocument(t.Context())
		if err != nil {
			t.Fatalf("ChangedDocument %d failed: %v", i, err)
		}

		if got := changed.Text(); got != want {
			t.Errorf("Got %q for call %d, want %q", got, i, want)
		}

		if changed == fc.Document {
			t.Errorf("Got original document for call %d", i)
		}
	}

	if got := fc.Document.Text(); got != src {
		t.Errorf("Original document changed to %q", got)
	}
}

func TestChangedDocumentErrors(t *testing.T) {
	t.Parallel()

	t.Run("Indentation", func(t *testing.T) {
		t.Parallel()

		fc := newContext(t, "Program.cs", "if (cond)\n    x();\n", "x()", DiagnosticID)

		if err := DefaultOptions().Register(t.Context(), fc); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		regs := fc.Registrations()
		if len(regs) != 1 {
			t.Fatalf("Got %d registrations, want 1", len(regs))
		}

		changed, err := regs[0].Action.ChangedDocument(t.Context())
		if !errors.Is(err, brace.ErrIndentation) {
			t.Errorf("Got error %v, want %v", err, brace.ErrIndentation)
		}

		if changed != nil {
			t.Errorf("Got changed document %q on error", changed.Text())
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		t.Parallel()

		fc := newContext(t, "Program.cs", "  if (cond)\n    x();\n", "x()", DiagnosticID)

		if err := DefaultOptions().Register(t.Context(), fc); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		regs := fc.Registrations()
		if len(regs) != 1 {
			t.Fatalf("Got %d registrations, want 1", len(regs))
		}

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		if _, err := regs[0].Action.ChangedDocument(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Got error %v, want %v", err, context.Canceled)
		}
	})

	t.Run("CanceledRegister", func(t *testing.T) {
		t.Parallel()

		fc := newContext(t, "Program.cs", "  if (cond)\n    x();\n", "x()", DiagnosticID)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		if err := DefaultOptions().Register(ctx, fc); !errors.Is(err, context.Canceled) {
			t.Errorf("Got error %v, want %v", err, context.Canceled)
		}

		if regs := fc.Registrations(); len(regs) != 0 {
			t.Errorf("Got %d registrations after cancellation", len(regs))
		}
	})
}

func newContext(tb testing.TB, file, src, at, id string) *codefix.Context {
	tb.Helper()

	doc := codefix.NewDocument(token.NewFileSet(), file, testsource.Parse(tb, src))

	return &codefix.Context{
		Document:    doc,
		Diagnostics: []analysis.Diagnostic{diagnosticAt(tb, doc, at, id)},
	}
}

func diagnosticAt(tb testing.TB, doc *codefix.Document, at, id string) analysis.Diagnostic {
	tb.Helper()

	offset := strings.Index(doc.Text(), at)
	if offset < 0 {
		tb.Fatalf("%q not found in source", at)
	}

	return analysis.Diagnostic{
		Pos:      doc.Pos(offset),
		End:      doc.Pos(offset + len(at)),
		Category: id,
		Message:  "if body should be a block",
	}
}
