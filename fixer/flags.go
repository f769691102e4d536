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

package fixer

import (
	"flag"

	"fillmore-labs.com/bracefix/internal/config"
	"fillmore-labs.com/bracefix/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&r.Behavior, config.ElseBodies), "else", "fix unbraced else bodies")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "fix generated documents")
	flags.Var(lineEndingValue{eol: &r.LineEnding}, "eol", `line ending of inserted line breaks: "auto", "crlf", "lf" or "cr"`)
}

func newBehaviorValue(b *config.Behavior, value config.Config) boolValue[config.Config, *config.Behavior] {
	return boolValue[config.Config, *config.Behavior]{flags: b, value: value}
}
