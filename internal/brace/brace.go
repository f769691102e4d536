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

// Package brace wraps single statements into braced blocks.
package brace

import (
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/bracefix/syntax"
)

var (
	// ErrNotStatement is returned when the cursor does not point to a statement.
	ErrNotStatement = errors.New("not a statement")

	// ErrAlreadyBlock is returned for statements that already are blocks.
	ErrAlreadyBlock = errors.New("statement is already a block")

	// ErrNoParent is returned for statements without an enclosing node.
	ErrNoParent = errors.New("statement has no parent")

	// ErrIndentation is returned when the parent's indentation is ambiguous.
	ErrIndentation = errors.New("expected exactly one whitespace trivia leading the parent")
)

// IndentationError describes a parent whose leading trivia does not contain exactly one whitespace run.
type IndentationError struct {
	Parent syntax.Kind
	Count  int
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%v: found %d in %v", ErrIndentation, e.Count, e.Parent)
}

// Unwrap returns [ErrIndentation].
func (*IndentationError) Unwrap() error { return ErrIndentation }

// WrapInBlock returns a [syntax.Block] containing the statement at stmt as its only child.
//
// The statement starts on a new line inside the block, keeping its own indentation.
// Both braces get the indentation of the parent's line, and the closing brace is followed
// by eol. The input tree is not modified.
func WrapInBlock(stmt *syntax.Cursor, eol string) (*syntax.Node, error) {
	node, ok := stmt.Node()
	switch {
	case !ok || !node.Kind().IsStatement():
		return nil, fmt.Errorf("%v: %w", stmt.Kind(), ErrNotStatement)

	case node.Kind() == syntax.Block:
		return nil, ErrAlreadyBlock
	}

	parent := stmt.Parent()
	if parent == nil {
		return nil, ErrNoParent
	}

	indent, err := Indentation(parent.Element())
	if err != nil {
		return nil, err
	}

	lineBreak := syntax.EndOfLine(eol)
	leading := slices.Insert(node.LeadingTrivia(), 0, lineBreak)

	openBrace := syntax.MakeToken(syntax.OpenBraceToken).WithLeadingTrivia(indent)
	closeBrace := syntax.MakeToken(syntax.CloseBraceToken).WithLeadingTrivia(indent)

	block := syntax.NewBlock(openBrace, []*syntax.Node{node.WithLeadingTrivia(leading...)}, closeBrace)

	return block.WithTrailingTrivia(lineBreak), nil
}

// Indentation returns the single whitespace trivia leading e.
func Indentation(e syntax.Element) (syntax.Trivia, error) {
	var (
		indent syntax.Trivia
		count  int
	)

	for t := range syntax.OfKind(e.LeadingTrivia(), syntax.WhitespaceTrivia) {
		indent = t
		count++
	}

	if count != 1 {
		return syntax.Trivia{}, &IndentationError{Parent: e.Kind(), Count: count}
	}

	return indent, nil
}
