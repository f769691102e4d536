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

package run

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bracefix/codefix"
	"fillmore-labs.com/bracefix/internal/brace"
	"fillmore-labs.com/bracefix/internal/config"
	"fillmore-labs.com/bracefix/syntax"
)

var (
	// ErrNoStatement is returned when no statement encloses the diagnostic position.
	ErrNoStatement = errors.New("no statement at diagnostic position")

	// ErrNotBody is returned when the located statement is not the body of a conditional.
	ErrNotBody = errors.New("statement is not the body of a conditional")

	// ErrElseIf is returned for the if statement of an else if chain.
	ErrElseIf = errors.New("else if chains are not wrapped")
)

// locate finds the statement flagged by diagnostic: the nearest statement enclosing the token
// at the diagnostic's start. The statement must be the unbraced body of an if or else.
func (r *Options) locate(doc *codefix.Document, root *syntax.Node, diagnostic analysis.Diagnostic) (*syntax.Cursor, error) {
	offset, err := doc.Offset(diagnostic.Pos)
	if err != nil {
		return nil, err
	}

	tok, ok := syntax.NewCursor(root).FindToken(offset)
	if !ok {
		return nil, fmt.Errorf("%w: offset %d", ErrNoStatement, offset)
	}

	for c := range tok.AncestorsAndSelf() {
		if !c.Kind().IsStatement() {
			continue
		}

		if err := r.eligible(c); err != nil {
			return nil, err
		}

		return c, nil
	}

	return nil, fmt.Errorf("%w: offset %d", ErrNoStatement, offset)
}

func (r *Options) eligible(stmt *syntax.Cursor) error {
	if stmt.Kind() == syntax.Block {
		return brace.ErrAlreadyBlock
	}

	switch parent := stmt.Parent(); {
	case parent == nil:
		return brace.ErrNoParent

	case parent.Kind() == syntax.IfStatement:
		return nil

	case parent.Kind() == syntax.ElseClause && stmt.Kind() == syntax.IfStatement:
		return ErrElseIf

	case parent.Kind() == syntax.ElseClause && r.Behavior.Enabled(config.ElseBodies):
		return nil

	default:
		return fmt.Errorf("%w: parent is %v", ErrNotBody, parent.Kind())
	}
}
