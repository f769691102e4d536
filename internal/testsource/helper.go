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

// Package testsource builds syntax trees from C-family source fragments in tests.
//
// Production code receives its trees from the host. Tests use [Parse] instead of
// assembling nodes by hand; it understands a statement subset (blocks, if/else,
// return, empty and expression statements) with expressions kept as opaque token runs.
package testsource

import (
	"fmt"
	"testing"

	"fillmore-labs.com/bracefix/syntax"
)

// Parse parses a sequence of statements into a [syntax.CompilationUnit].
//
// The resulting tree reproduces src exactly, including all whitespace, comments and line breaks.
func Parse(tb testing.TB, src string) *syntax.Node {
	tb.Helper()

	root, err := parse(src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if got := root.FullString(); got != src {
		tb.Fatalf("Parsed tree does not round-trip: got %q, want %q", got, src)
	}

	return root
}

// FindStatement returns a cursor to the first statement (in preorder) whose text without
// outer trivia equals text.
func FindStatement(tb testing.TB, root *syntax.Node, text string) *syntax.Cursor {
	tb.Helper()

	var find func(c *syntax.Cursor) *syntax.Cursor
	find = func(c *syntax.Cursor) *syntax.Cursor {
		if n, ok := c.Node(); ok && n.Kind().IsStatement() && n.String() == text {
			return c
		}

		for child := range c.Children() {
			if found := find(child); found != nil {
				return found
			}
		}

		return nil
	}

	c := find(syntax.NewCursor(root))
	if c == nil {
		tb.Fatalf("Statement %q not found", text)
	}

	return c
}

func parse(src string) (*syntax.Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := parser{toks: toks}

	var children []syntax.Element
	for p.peek() != syntax.EndOfFileToken {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		children = append(children, stmt)
	}

	children = append(children, p.next())

	return syntax.NewNode(syntax.CompilationUnit, children...), nil
}

type parser struct {
	toks []*syntax.Token
	pos  int
}

func (p *parser) peek() syntax.Kind { return p.toks[p.pos].Kind() }

func (p *parser) next() *syntax.Token {
	t := p.toks[p.pos]
	if t.Kind() != syntax.EndOfFileToken {
		p.pos++
	}

	return t
}

func (p *parser) expect(kind syntax.Kind) (*syntax.Token, error) {
	if got := p.peek(); got != kind {
		return nil, fmt.Errorf("token %d: got %v %q, want %v", p.pos, got, p.toks[p.pos].Text(), kind)
	}

	return p.next(), nil
}

func (p *parser) statement() (*syntax.Node, error) {
	switch p.peek() {
	case syntax.OpenBraceToken:
		return p.block()

	case syntax.IfKeyword:
		return p.ifStatement()

	case syntax.ReturnKeyword:
		kw := p.next()
		if p.peek() == syntax.SemicolonToken {
			return syntax.NewNode(syntax.ReturnStatement, kw, p.next()), nil
		}

		return p.terminated(syntax.ReturnStatement, kw)

	case syntax.SemicolonToken:
		return syntax.NewNode(syntax.EmptyStatement, p.next()), nil

	case syntax.EndOfFileToken, syntax.CloseBraceToken, syntax.ElseKeyword:
		return nil, fmt.Errorf("token %d: unexpected %v", p.pos, p.peek())

	default:
		return p.terminated(syntax.ExpressionStatement)
	}
}

func (p *parser) block() (*syntax.Node, error) {
	children := []syntax.Element{p.next()}

	for p.peek() != syntax.CloseBraceToken {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		children = append(children, stmt)
	}

	children = append(children, p.next())

	return syntax.NewNode(syntax.Block, children...), nil
}

func (p *parser) ifStatement() (*syntax.Node, error) {
	children := []syntax.Element{p.next()}

	open, err := p.expect(syntax.OpenParenToken)
	if err != nil {
		return nil, err
	}

	cond, err := p.expression(syntax.CloseParenToken)
	if err != nil {
		return nil, err
	}

	closeParen := p.next()

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	children = append(children, open, cond, closeParen, body)

	if p.peek() == syntax.ElseKeyword {
		kw := p.next()

		alt, err := p.statement()
		if err != nil {
			return nil, err
		}

		children = append(children, syntax.NewNode(syntax.ElseClause, kw, alt))
	}

	return syntax.NewNode(syntax.IfStatement, children...), nil
}

// terminated parses an expression followed by a semicolon.
func (p *parser) terminated(kind syntax.Kind, prefix ...syntax.Element) (*syntax.Node, error) {
	expr, err := p.expression(syntax.SemicolonToken)
	if err != nil {
		return nil, err
	}

	children := append(prefix, expr, p.next())

	return syntax.NewNode(kind, children...), nil
}

// expression collects tokens up to stop at nesting depth zero. The stop token is not consumed.
func (p *parser) expression(stop syntax.Kind) (*syntax.Node, error) {
	var (
		children []syntax.Element
		depth    int
	)

	for {
		switch kind := p.peek(); {
		case kind == syntax.EndOfFileToken:
			return nil, fmt.Errorf("token %d: unexpected end of input, want %v", p.pos, stop)

		case kind == stop && depth == 0:
			if len(children) == 0 {
				return nil, fmt.Errorf("token %d: empty expression", p.pos)
			}

			return syntax.NewNode(syntax.Expression, children...), nil

		case kind == syntax.OpenParenToken || kind == syntax.OpenBraceToken:
			depth++

		case kind == syntax.CloseParenToken || kind == syntax.CloseBraceToken:
			if depth == 0 {
				return nil, fmt.Errorf("token %d: unbalanced %v", p.pos, kind)
			}
			depth--
		}

		children = append(children, p.next())
	}
}
