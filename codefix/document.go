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
	"go/token"
	"path"
	"strings"

	"fillmore-labs.com/bracefix/syntax"
)

// ErrPosition is returned for positions outside of a document.
var ErrPosition = errors.New("position outside of document")

// Document is an immutable snapshot of a source document.
//
// Every snapshot owns a distinct [token.File] in a shared [token.FileSet], so positions
// of diagnostics reported against one snapshot never resolve into another.
type Document struct {
	name      string
	root      *syntax.Node
	fset      *token.FileSet
	file      *token.File
	generated bool
}

// NewDocument registers a snapshot of root under name in fset.
func NewDocument(fset *token.FileSet, name string, root *syntax.Node) *Document {
	text := root.FullString()

	file := fset.AddFile(name, -1, len(text))
	file.SetLinesForContent([]byte(text))

	return &Document{
		name:      name,
		root:      root,
		fset:      fset,
		file:      file,
		generated: isGenerated(name, root),
	}
}

// Name returns the document name.
func (d *Document) Name() string { return d.name }

// Root returns the syntax tree of the document.
// It fails when ctx is done, which is how a host abandons a fix request.
func (d *Document) Root(ctx context.Context) (*syntax.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.name, err)
	}

	return d.root, nil
}

// Text returns the full source text.
func (d *Document) Text() string { return d.root.FullString() }

// FileSet returns the file set the document is registered in.
func (d *Document) FileSet() *token.FileSet { return d.fset }

// File returns the position information of this snapshot.
func (d *Document) File() *token.File { return d.file }

// Generated reports whether the document contains generated code.
func (d *Document) Generated() bool { return d.generated }

// Pos converts a byte offset into a [token.Pos]. The offset must be within the document.
func (d *Document) Pos(offset int) token.Pos { return d.file.Pos(offset) }

// Offset converts a [token.Pos] of this snapshot into a byte offset.
func (d *Document) Offset(pos token.Pos) (int, error) {
	if base := d.file.Base(); int(pos) < base || int(pos) > base+d.file.Size() {
		return 0, fmt.Errorf("%s: %w: %d", d.name, ErrPosition, pos)
	}

	return d.file.Offset(pos), nil
}

// WithRoot returns a new snapshot of the document with a replaced syntax tree.
func (d *Document) WithRoot(root *syntax.Node) *Document {
	return NewDocument(d.fset, d.name, root)
}

var generatedSuffixes = [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"}

// isGenerated recognizes generated documents by file name or by an auto-generated header comment.
func isGenerated(name string, root *syntax.Node) bool {
	base := strings.ToLower(path.Base(name))
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	for tok := range root.Tokens() {
		for _, t := range tok.LeadingTrivia() {
			if (t.Kind == syntax.SingleLineCommentTrivia || t.Kind == syntax.MultiLineCommentTrivia) &&
				strings.Contains(t.Text, "<auto-generated") {
				return true
			}
		}

		break // only the file header
	}

	return false
}
