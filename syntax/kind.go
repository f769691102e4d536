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

// Kind classifies trivia, tokens and nodes.
type Kind uint16

//go:generate go tool stringer -type Kind
const (
	// None is the zero Kind.
	None Kind = iota

	// WhitespaceTrivia is a run of spaces and tabs.
	WhitespaceTrivia
	// EndOfLineTrivia is a single line break ("\n", "\r\n" or "\r").
	EndOfLineTrivia
	// SingleLineCommentTrivia is a comment starting with "//", excluding the line break.
	SingleLineCommentTrivia
	// MultiLineCommentTrivia is a comment enclosed in "/*" and "*/".
	MultiLineCommentTrivia

	IdentifierToken
	NumericLiteralToken
	StringLiteralToken
	CharacterLiteralToken
	IfKeyword
	ElseKeyword
	ReturnKeyword
	OpenParenToken
	CloseParenToken
	OpenBraceToken
	CloseBraceToken
	SemicolonToken
	// OperatorToken is any punctuation without a dedicated kind.
	OperatorToken
	EndOfFileToken

	CompilationUnit
	Block
	IfStatement
	ElseClause
	ExpressionStatement
	ReturnStatement
	EmptyStatement
	// Expression is an opaque run of tokens.
	Expression
)

// IsTrivia reports whether k is a trivia kind.
func (k Kind) IsTrivia() bool {
	return WhitespaceTrivia <= k && k <= MultiLineCommentTrivia
}

// IsToken reports whether k is a token kind.
func (k Kind) IsToken() bool {
	return IdentifierToken <= k && k <= EndOfFileToken
}

// IsNode reports whether k is an interior node kind.
func (k Kind) IsNode() bool {
	return CompilationUnit <= k && k <= Expression
}

// IsStatement reports whether k is a statement kind, including [Block].
func (k Kind) IsStatement() bool {
	switch k {
	case Block, IfStatement, ExpressionStatement, ReturnStatement, EmptyStatement:
		return true
	default:
		return false
	}
}

// FixedText returns the text of tokens that are always spelled the same way.
func (k Kind) FixedText() (string, bool) {
	switch k {
	case IfKeyword:
		return "if", true
	case ElseKeyword:
		return "else", true
	case ReturnKeyword:
		return "return", true
	case OpenParenToken:
		return "(", true
	case CloseParenToken:
		return ")", true
	case OpenBraceToken:
		return "{", true
	case CloseBraceToken:
		return "}", true
	case SemicolonToken:
		return ";", true
	case EndOfFileToken:
		return "", true
	default:
		return "", false
	}
}
