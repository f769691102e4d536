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

// DominantLineEnding returns the most frequent line break sequence in the tree.
// Ties go to the sequence that occurs first. It reports false for trees without line breaks.
func DominantLineEnding(root *Node) (string, bool) {
	var (
		order  []string
		counts = make(map[string]int)
	)

	count := func(list []Trivia) {
		for t := range OfKind(list, EndOfLineTrivia) {
			if counts[t.Text] == 0 {
				order = append(order, t.Text)
			}
			counts[t.Text]++
		}
	}

	for t := range root.Tokens() {
		count(t.leading)
		count(t.trailing)
	}

	best := ""
	for _, eol := range order {
		if best == "" || counts[eol] > counts[best] {
			best = eol
		}
	}

	return best, best != ""
}
