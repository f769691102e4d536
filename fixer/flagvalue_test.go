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

package fixer_test

import (
	"errors"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bracefix/codefix"
	. "fillmore-labs.com/bracefix/fixer"
	"fillmore-labs.com/bracefix/internal/testsource"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	const src = "  if (a)\n    x();\n  else\n    y();\n"

	tests := []struct {
		name string
		args []string
		want string // empty: no fix offered
	}{
		{
			name: "Default",
			want: "  if (a)\n    x();\n  else\n  {\n    y();\n  }\n",
		},
		{
			name: "Enable",
			args: []string{"-else"},
			want: "  if (a)\n    x();\n  else\n  {\n    y();\n  }\n",
		},
		{
			name: "Disable",
			args: []string{"-else=false"},
		},
		{
			name: "LineEnding",
			args: []string{"-eol=CRLF"},
			want: "  if (a)\n    x();\n  else\n  {\r\n    y();\n  }\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := New()
			if err := f.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			doc := codefix.NewDocument(token.NewFileSet(), "Program.cs", testsource.Parse(t, src))
			fc := &codefix.Context{Document: doc, Diagnostics: []analysis.Diagnostic{diagnosticAt(t, doc, "y()")}}

			if err := f.Register(t.Context(), fc); err != nil {
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
				t.Fatalf("Got %d registrations, want 1", len(regs))
			}

			changed, err := regs[0].Action.ChangedDocument(t.Context())
			if err != nil {
				t.Fatalf("ChangedDocument failed: %v", err)
			}

			if got := changed.Text(); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlagGet(t *testing.T) {
	t.Parallel()

	f := New(WithGenerated(true), WithLineEnding("\n"))

	if got := f.Flags.Lookup("generated").Value.String(); got != "true" {
		t.Errorf("Got generated %q, want %q", got, "true")
	}

	if got := f.Flags.Lookup("eol").Value.String(); got != "lf" {
		t.Errorf("Got eol %q, want %q", got, "lf")
	}

	if err := f.Flags.Set("eol", "auto"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got := f.Flags.Lookup("eol").Value.(flagGetter).Get(); got != "" {
		t.Errorf("Got eol %q, want empty", got)
	}

	if err := f.Flags.Set("eol", "unix"); !errors.Is(err, ErrLineEnding) {
		t.Errorf("Got error %v, want %v", err, ErrLineEnding)
	}

	if err := f.Flags.Set("else", "maybe"); err == nil {
		t.Error("Expected error for invalid boolean")
	}
}

type flagGetter interface{ Get() any }

func TestParseLineEnding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"auto", ""},
		{"CRLF", "\r\n"},
		{"lf", "\n"},
		{"Cr", "\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLineEnding(tt.name)
			if err != nil {
				t.Fatalf("ParseLineEnding failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ParseLineEnding("\n"); !errors.Is(err, ErrLineEnding) {
		t.Errorf("Got error %v, want %v", err, ErrLineEnding)
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	f := New()

	const expectedUsage = `
  -else
    	fix unbraced else bodies (default true)
  -eol value
    	line ending of inserted line breaks: "auto", "crlf", "lf" or "cr"
  -generated
    	fix generated documents
`

	var out strings.Builder
	f.Flags.SetOutput(&out)
	f.Flags.PrintDefaults()

	if got, want := "\n"+out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("PrintDefaults() = %q, want suffix %q", got, want)
	}
}
