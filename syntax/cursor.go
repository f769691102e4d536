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
	"errors"
	"fmt"
	"iter"
)

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start, End int
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset int) bool { return s.Start <= offset && offset < s.End }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Cursor is a position in a syntax tree: an element together with the path from the root.
//
// Cursors are created top-down from [NewCursor] and are cheap to discard.
type Cursor struct {
	elem   Element
	parent *Cursor
	index  int
	offset int
}

// NewCursor returns a cursor at the root of the tree.
func NewCursor(root *Node) *Cursor {
	return &Cursor{elem: root, index: -1}
}

// Element returns the element at the cursor.
func (c *Cursor) Element() Element { return c.elem }

// Kind returns the kind of the element at the cursor.
func (c *Cursor) Kind() Kind { return c.elem.Kind() }

// Node returns the element as a node, if it is one.
func (c *Cursor) Node() (*Node, bool) {
	n, ok := c.elem.(*Node)
	return n, ok
}

// Token returns the element as a token, if it is one.
func (c *Cursor) Token() (*Token, bool) {
	t, ok := c.elem.(*Token)
	return t, ok
}

// Parent returns the cursor of the parent node, or nil at the root.
func (c *Cursor) Parent() *Cursor { return c.parent }

// Index returns the index of the element in its parent, or -1 at the root.
func (c *Cursor) Index() int { return c.index }

// Root returns the root node of the tree the cursor belongs to.
func (c *Cursor) Root() *Node {
	for c.parent != nil {
		c = c.parent
	}

	return c.elem.(*Node)
}

// FullSpan returns the span including leading and trailing trivia.
func (c *Cursor) FullSpan() Span {
	return Span{Start: c.offset, End: c.offset + c.elem.FullWidth()}
}

// Span returns the span without the outer leading and trailing trivia.
func (c *Cursor) Span() Span {
	full := c.FullSpan()
	start := full.Start + triviaWidth(c.elem.LeadingTrivia())
	end := max(start, full.End-triviaWidth(c.elem.TrailingTrivia()))

	return Span{Start: start, End: end}
}

// Children yields cursors for the direct children.
func (c *Cursor) Children() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		n, ok := c.elem.(*Node)
		if !ok {
			return
		}

		offset := c.offset
		for i, e := range n.children {
			if !yield(&Cursor{elem: e, parent: c, index: i, offset: offset}) {
				return
			}
			offset += e.FullWidth()
		}
	}
}

// AncestorsAndSelf yields this cursor followed by all its ancestors up to the root.
func (c *Cursor) AncestorsAndSelf() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		for a := c; a != nil; a = a.parent {
			if !yield(a) {
				return
			}
		}
	}
}

// FindToken returns the token whose full span contains offset.
// An offset at the end of the tree yields the last token.
func (c *Cursor) FindToken(offset int) (*Cursor, bool) {
	if span := c.FullSpan(); offset < span.Start || offset > span.End {
		return nil, false
	}

	cur := c
	for {
		if _, ok := cur.elem.(*Token); ok {
			return cur, true
		}

		var next, last *Cursor
		for child := range cur.Children() {
			if child.FullSpan().Contains(offset) {
				next = child
				break
			}
			last = child
		}

		if next == nil {
			next = last
		}

		if next == nil {
			return nil, false
		}

		cur = next
	}
}

// ErrReplaceRoot is returned when the root of a tree is replaced by a token.
var ErrReplaceRoot = errors.New("root must be replaced by a node")

// Replace returns the root of a new tree in which the element at c is replaced by e.
//
// Only the nodes on the path from the root to c are rebuilt, all other subtrees are
// shared with the original tree, which stays unchanged.
func Replace(c *Cursor, e Element) (*Node, error) {
	for ; c.parent != nil; c = c.parent {
		e = c.parent.elem.(*Node).withChild(c.index, e)
	}

	root, ok := e.(*Node)
	if !ok {
		return nil, ErrReplaceRoot
	}

	return root, nil
}
