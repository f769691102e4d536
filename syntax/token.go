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
	"slices"
	"strings"
)

// Element is either a *[Token] or a *[Node].
type Element interface {
	Kind() Kind
	// FullWidth is the length of the element's text including leading and trailing trivia.
	FullWidth() int
	LeadingTrivia() []Trivia
	TrailingTrivia() []Trivia
	FullString() string

	firstToken() *Token
	lastToken() *Token
	writeTo(b *strings.Builder)
}

// Token is an immutable leaf of the syntax tree.
type Token struct {
	kind     Kind
	text     string
	leading  []Trivia
	trailing []Trivia
}

// NewToken creates a token. The trivia lists are copied.
func NewToken(kind Kind, text string, leading, trailing []Trivia) *Token {
	return &Token{
		kind:     kind,
		text:     text,
		leading:  slices.Clone(leading),
		trailing: slices.Clone(trailing),
	}
}

// MakeToken creates a token without trivia for a kind that has fixed text, like [OpenBraceToken].
// It panics for kinds with variable text.
func MakeToken(kind Kind) *Token {
	text, ok := kind.FixedText()
	if !ok {
		panic(fmt.Sprintf("syntax: %v has no fixed text", kind))
	}

	return &Token{kind: kind, text: text}
}

// Kind returns the token kind.
func (t *Token) Kind() Kind { return t.kind }

// Text returns the token text without trivia.
func (t *Token) Text() string { return t.text }

// LeadingTrivia returns a copy of the leading trivia.
func (t *Token) LeadingTrivia() []Trivia { return slices.Clone(t.leading) }

// TrailingTrivia returns a copy of the trailing trivia.
func (t *Token) TrailingTrivia() []Trivia { return slices.Clone(t.trailing) }

// WithLeadingTrivia returns a copy of the token with the leading trivia replaced.
func (t *Token) WithLeadingTrivia(trivia ...Trivia) *Token {
	return &Token{kind: t.kind, text: t.text, leading: slices.Clone(trivia), trailing: t.trailing}
}

// WithTrailingTrivia returns a copy of the token with the trailing trivia replaced.
func (t *Token) WithTrailingTrivia(trivia ...Trivia) *Token {
	return &Token{kind: t.kind, text: t.text, leading: t.leading, trailing: slices.Clone(trivia)}
}

// FullWidth implements [Element].
func (t *Token) FullWidth() int {
	return triviaWidth(t.leading) + len(t.text) + triviaWidth(t.trailing)
}

// String returns the token text.
func (t *Token) String() string { return t.text }

// FullString returns the token text including trivia.
func (t *Token) FullString() string {
	var b strings.Builder
	t.writeTo(&b)

	return b.String()
}

func (t *Token) firstToken() *Token { return t }

func (t *Token) lastToken() *Token { return t }

func (t *Token) writeTo(b *strings.Builder) {
	writeTrivia(b, t.leading)
	b.WriteString(t.text) // ignore error
	writeTrivia(b, t.trailing)
}
