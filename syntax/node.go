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

package syntax

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Node is an immutable interior node of the syntax tree.
//
// Nodes never change after construction. Subtrees are shared freely between trees,
// so a node has no parent pointer; use a [Cursor] to navigate upwards.
type Node struct {
	kind      Kind
	children  []Element
	fullWidth int
}

// NewNode creates a node with the given children. It panics on nil children.
func NewNode(kind Kind, children ...Element) *Node {
	n := &Node{kind: kind, children: slices.Clone(children)}
	for i, c := range n.children {
		if c == nil {
			panic(fmt.Sprintf("syntax: nil child %d of %v", i, kind))
		}

		n.fullWidth += c.FullWidth()
	}

	return n
}

// NewBlock creates a [Block] node.
func NewBlock(openBrace *Token, statements []*Node, closeBrace *Token) *Node {
	children := make([]Element, 0, len(statements)+2)
	children = append(children, openBrace)
	for _, s := range statements {
		children = append(children, s)
	}
	children = append(children, closeBrace)

	return NewNode(Block, children...)
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th direct child.
func (n *Node) Child(i int) Element { return n.children[i] }

// Children yields the direct children with their index.
func (n *Node) Children() iter.Seq2[int, Element] {
	return slices.All(n.children)
}

// FullWidth implements [Element].
func (n *Node) FullWidth() int { return n.fullWidth }

// LeadingTrivia returns the leading trivia of the first token.
func (n *Node) LeadingTrivia() []Trivia {
	if t := n.firstToken(); t != nil {
		return t.LeadingTrivia()
	}

	return nil
}

// TrailingTrivia returns the trailing trivia of the last token.
func (n *Node) TrailingTrivia() []Trivia {
	if t := n.lastToken(); t != nil {
		return t.TrailingTrivia()
	}

	return nil
}

// WithLeadingTrivia returns a copy of the node with the leading trivia of its first token replaced.
func (n *Node) WithLeadingTrivia(trivia ...Trivia) *Node {
	return n.mapEdgeToken(true, func(t *Token) *Token { return t.WithLeadingTrivia(trivia...) })
}

// WithTrailingTrivia returns a copy of the node with the trailing trivia of its last token replaced.
func (n *Node) WithTrailingTrivia(trivia ...Trivia) *Node {
	return n.mapEdgeToken(false, func(t *Token) *Token { return t.WithTrailingTrivia(trivia...) })
}

// Tokens yields all tokens of the subtree in source order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.tokens(yield)
	}
}

func (n *Node) tokens(yield func(*Token) bool) bool {
	for _, c := range n.children {
		switch c := c.(type) {
		case *Token:
			if !yield(c) {
				return false
			}

		case *Node:
			if !c.tokens(yield) {
				return false
			}
		}
	}

	return true
}

// String returns the source text without the node's outer leading and trailing trivia.
func (n *Node) String() string {
	full := n.FullString()
	lead, trail := triviaWidth(n.LeadingTrivia()), triviaWidth(n.TrailingTrivia())

	if lead+trail > len(full) {
		return ""
	}

	return full[lead : len(full)-trail]
}

// FullString returns the source text including all trivia.
func (n *Node) FullString() string {
	var b strings.Builder
	b.Grow(n.fullWidth)
	n.writeTo(&b)

	return b.String()
}

func (n *Node) firstToken() *Token {
	for _, c := range n.children {
		if t := c.firstToken(); t != nil {
			return t
		}
	}

	return nil
}

func (n *Node) lastToken() *Token {
	for _, c := range slices.Backward(n.children) {
		if t := c.lastToken(); t != nil {
			return t
		}
	}

	return nil
}

func (n *Node) writeTo(b *strings.Builder) {
	for _, c := range n.children {
		c.writeTo(b)
	}
}

// withChild returns a copy of n with the i-th child replaced, sharing all other children.
func (n *Node) withChild(i int, e Element) *Node {
	children := slices.Clone(n.children)
	children[i] = e

	return &Node{
		kind:      n.kind,
		children:  children,
		fullWidth: n.fullWidth - n.children[i].FullWidth() + e.FullWidth(),
	}
}

func (n *Node) mapEdgeToken(first bool, fn func(*Token) *Token) *Node {
	for j := range n.children {
		i := j
		if !first {
			i = len(n.children) - 1 - j
		}

		switch c := n.children[i].(type) {
		case *Token:
			return n.withChild(i, fn(c))

		case *Node:
			if c.firstToken() == nil {
				continue
			}

			return n.withChild(i, c.mapEdgeToken(first, fn))
		}
	}

	return n
}
