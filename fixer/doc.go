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

// Package fixer implements the bracefix code fix.
//
// # Overview
//
// BraceFix offers a "Make Block" code action for diagnostics flagging an if or else
// body that is a single statement without braces.
//
// # Example
//
// Before:
//
//	void Run()
//	{
//	    if (cond)
//	        DoSomething();
//	}
//
// After applying the fix:
//
//	void Run()
//	{
//	    if (cond)
//	    {
//	        DoSomething();
//	    }
//	}
//
// The braces are aligned with the line of the if (or else), the statement keeps its
// indentation and trailing comments.
//
// # Line Endings
//
// New line breaks use the most frequent line ending of the document, "\r\n" for
// documents without line breaks, unless [WithLineEnding] sets a fixed sequence.
package fixer
