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

/*
Package plugin provides host integration for the [bracefix] fixer.

# Usage

A host decodes the fixer settings from its configuration, for example:

	{
	  "else": true,
	  "generated": false,
	  "line-ending": "auto"
	}

and passes them to [New]. The resulting [Plugin] builds a registry that maps the
"IfClauseDiagnostic" ID to the bracefix fixer:

	p, err := plugin.New(rawSettings)
	if err != nil {
		return err
	}

	registry, err := p.Registry()
	if err != nil {
		return err
	}

	actions, err := registry.CodeFixes(ctx, doc, diagnostic)

[bracefix]: https://pkg.go.dev/fillmore-labs.com/bracefix/fixer
*/
package plugin
