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

// Package syntax models an immutable, trivia-preserving syntax tree for C-family source.
//
// Trees consist of [Node] values with [Token] leaves. Tokens carry the source
// formatting as leading and trailing [Trivia]; a token's trailing trivia extends up to
// and including the first line break after it, everything else before the next
// token is that token's leading trivia. The concatenation of all token text and
// trivia reproduces the source exactly.
//
// Trees are never modified. A [Cursor] adds the parent relation and source offsets
// on top of the shared nodes, and [Replace] produces a new tree that rebuilds only the
// path from the root to the replaced element.
package syntax
