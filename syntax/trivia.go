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
	"iter"
	"strings"
)

// Trivia is non-semantic source text attached to a token.
type Trivia struct {
	Kind Kind
	Text string
}

// Whitespace creates whitespace trivia.
func Whitespace(text string) Trivia { return Trivia{Kind: WhitespaceTrivia, Text: text} }

// EndOfLine creates line break trivia.
func EndOfLine(text string) Trivia { return Trivia{Kind: EndOfLineTrivia, Text: text} }

// Comment creates comment trivia, classified by its opening delimiter.
func Comment(text string) Trivia {
	if strings.HasPrefix(text, "/*") {
		return Trivia{Kind: MultiLineCommentTrivia, Text: text}
	}

	return Trivia{Kind: SingleLineCommentTrivia, Text: text}
}

// String returns the trivia text.
func (t Trivia) String() string { return t.Text }

// TriviaText concatenates the text of a trivia list.
func TriviaText(list []Trivia) string {
	var b strings.Builder
	writeTrivia(&b, list)

	return b.String()
}

// OfKind yields the trivia of the given kind.
func OfKind(list []Trivia, kind Kind) iter.Seq[Trivia] {
	return func(yield func(Trivia) bool) {
		for _, t := range list {
			if t.Kind != kind {
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

func triviaWidth(list []Trivia) int {
	n := 0
	for _, t := range list {
		n += len(t.Text)
	}

	return n
}

func writeTrivia(b *strings.Builder, list []Trivia) {
	for _, t := range list {
		b.WriteString(t.Text) // ignore error
	}
}
