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

// Package codefix defines the protocol between a host and code fix providers.
//
// # Flow
//
// A host reports diagnostics as [analysis.Diagnostic] values whose Category holds the
// diagnostic ID. For each diagnostic it asks a [Registry] for code fixes. The registry
// calls the Register function of every [Fixer] declaring the ID, and each fixer
// registers [CodeAction] values on the [Context]. When the user picks an action, the
// host calls [CodeAction.ChangedDocument] and turns the new [Document] into text edits,
// for example with [SuggestedFix].
//
// Documents are immutable. A fix never modifies the document it was computed for, so a
// failed or cancelled fix leaves nothing to undo.
package codefix
