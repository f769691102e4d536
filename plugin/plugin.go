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

package plugin

import (
	"github.com/golangci/plugin-module-register/register"

	"fillmore-labs.com/bracefix/codefix"
	bracefix "fillmore-labs.com/bracefix/fixer"
)

// New creates a new [Plugin] instance from raw host settings, typically the
// map[string]any decoded from the host's configuration file.
func New(rawSettings any) (*Plugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}

	return &Plugin{settings: settings, opts: opts}, nil
}

// Plugin is the bracefix fixer as a host plugin.
type Plugin struct {
	settings Settings
	opts     []bracefix.Option
}

// Settings returns the decoded settings.
func (p *Plugin) Settings() Settings { return p.settings }

// BuildFixers returns the [codefix.Fixer]s for a bracefix run.
func (p *Plugin) BuildFixers() ([]*codefix.Fixer, error) {
	f := bracefix.New(p.opts...)

	return []*codefix.Fixer{f}, nil
}

// Registry returns a [codefix.Registry] resolving the diagnostic IDs of all fixers of this plugin.
func (p *Plugin) Registry() (*codefix.Registry, error) {
	fixers, err := p.BuildFixers()
	if err != nil {
		return nil, err
	}

	return codefix.NewRegistry(fixers...)
}
