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

package codefix

import (
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/tools/go/analysis"
)

// SuggestedFix expresses the change from old to changed as an [analysis.SuggestedFix].
//
// The fix holds a single [analysis.TextEdit] covering the smallest differing range,
// positioned in old's file. Identical documents yield a fix without edits.
func SuggestedFix(message string, old, changed *Document) analysis.SuggestedFix {
	a, b := old.Text(), changed.Text()

	prefix := commonPrefix(a, b)
	suffix := commonSuffix(a[prefix:], b[prefix:])

	fix := analysis.SuggestedFix{Message: message}
	if prefix == len(a) && prefix == len(b) {
		return fix
	}

	fix.TextEdits = []analysis.TextEdit{{
		Pos:     old.Pos(prefix),
		End:     old.Pos(len(a) - suffix),
		NewText: []byte(b[prefix : len(b)-suffix]),
	}}

	return fix
}

// Preview renders the change from old to changed as a unified diff.
func Preview(old, changed *Document) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(old.Text()),
		B:        difflib.SplitLines(changed.Text()),
		FromFile: old.Name(),
		ToFile:   changed.Name(),
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

func commonSuffix(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			return i
		}
	}

	return n
}
