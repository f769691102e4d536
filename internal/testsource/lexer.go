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

package testsource

import (
	"fmt"
	"strings"

	"fillmore-labs.com/bracefix/syntax"
)

// operators are the multi-character punctuators, longest first.
var operators = [...]string{
	"<<=", ">>=", "??=",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=",
	"%=", "&=", "|=", "^=", "=>", "->", "??", "<<", ">>", "::",
}

var keywords = map[string]syntax.Kind{
	"if":     syntax.IfKeyword,
	"else":   syntax.ElseKeyword,
	"return": syntax.ReturnKeyword,
}

var punctuation = map[byte]syntax.Kind{
	'(': syntax.OpenParenToken,
	')': syntax.CloseParenToken,
	'{': syntax.OpenBraceToken,
	'}': syntax.CloseBraceToken,
	';': syntax.SemicolonToken,
}

type lexer struct {
	src string
	pos int
}

// tokenize splits src into tokens, attaching trivia the way the host front end does:
// trailing trivia runs up to and including the first line break.
func tokenize(src string) ([]*syntax.Token, error) {
	l := lexer{src: src}

	var toks []*syntax.Token

	leading := l.trivia(false)
	for l.pos < len(l.src) {
		kind, text, err := l.token()
		if err != nil {
			return nil, err
		}

		trailing := l.trivia(true)
		toks = append(toks, syntax.NewToken(kind, text, leading, trailing))

		leading = l.trivia(false)
	}

	return append(toks, syntax.NewToken(syntax.EndOfFileToken, "", leading, nil)), nil
}

// trivia scans trivia. In trailing mode it stops after the first line break.
func (l *lexer) trivia(trailing bool) []syntax.Trivia {
	var list []syntax.Trivia

	for l.pos < len(l.src) {
		rest := l.src[l.pos:]

		switch {
		case rest[0] == ' ' || rest[0] == '\t':
			n := len(rest) - len(strings.TrimLeft(rest, " \t"))
			list = append(list, syntax.Whitespace(rest[:n]))
			l.pos += n

		case strings.HasPrefix(rest, "\r\n"):
			list = append(list, syntax.EndOfLine("\r\n"))
			l.pos += 2

			if trailing {
				return list
			}

		case rest[0] == '\n' || rest[0] == '\r':
			list = append(list, syntax.EndOfLine(rest[:1]))
			l.pos++

			if trailing {
				return list
			}

		case strings.HasPrefix(rest, "//"):
			n := strings.IndexAny(rest, "\r\n")
			if n < 0 {
				n = len(rest)
			}
			list = append(list, syntax.Comment(rest[:n]))
			l.pos += n

		case strings.HasPrefix(rest, "/*"):
			n := strings.Index(rest[2:], "*/")
			if n < 0 {
				n = len(rest)
			} else {
				n += 4
			}
			list = append(list, syntax.Comment(rest[:n]))
			l.pos += n

		default:
			return list
		}
	}

	return list
}

func (l *lexer) token() (syntax.Kind, string, error) {
	rest := l.src[l.pos:]
	c := rest[0]

	var (
		kind syntax.Kind
		n    int
	)

	switch {
	case isLetter(c):
		n = l.span(rest, func(b byte) bool { return isLetter(b) || isDigit(b) })
		kind = syntax.IdentifierToken
		if kw, ok := keywords[rest[:n]]; ok {
			kind = kw
		}

	case isDigit(c):
		n = l.span(rest, func(b byte) bool { return isLetter(b) || isDigit(b) || b == '.' })
		kind = syntax.NumericLiteralToken

	case c == '"' || c == '\'':
		end, err := quoted(rest)
		if err != nil {
			return syntax.None, "", fmt.Errorf("offset %d: %w", l.pos, err)
		}
		n = end
		kind = syntax.StringLiteralToken
		if c == '\'' {
			kind = syntax.CharacterLiteralToken
		}

	default:
		if p, ok := punctuation[c]; ok {
			kind, n = p, 1
			break
		}

		kind, n = syntax.OperatorToken, 1
		for _, op := range operators {
			if strings.HasPrefix(rest, op) {
				n = len(op)
				break
			}
		}
	}

	l.pos += n

	return kind, rest[:n], nil
}

func (*lexer) span(s string, accept func(byte) bool) int {
	n := 1
	for n < len(s) && accept(s[n]) {
		n++
	}

	return n
}

func quoted(s string) (int, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case s[0]:
			return i + 1, nil
		case '\n', '\r':
			return 0, fmt.Errorf("unterminated literal %q", s[:i])
		}
	}

	return 0, fmt.Errorf("unterminated literal %q", s)
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_' || b == '@'
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
