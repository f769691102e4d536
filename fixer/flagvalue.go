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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

var lineEndings = [...]struct{ name, eol string }{
	{"auto", ""},
	{"crlf", "\r\n"},
	{"lf", "\n"},
	{"cr", "\r"},
}

// ErrLineEnding is returned for unknown line ending names.
var ErrLineEnding = errors.New("unknown line ending")

// ParseLineEnding returns the line break sequence for "crlf", "lf" or "cr",
// and the empty string for "auto". Names are case-insensitive.
func ParseLineEnding(name string) (string, error) {
	for _, le := range lineEndings {
		if strings.EqualFold(name, le.name) {
			return le.eol, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrLineEnding, name)
}

type lineEndingValue struct{ eol *string }

// Set implements [flag.Value].
func (v lineEndingValue) Set(s string) error {
	eol, err := ParseLineEnding(s)
	if err != nil {
		return err
	}

	*v.eol = eol

	return nil
}

// String implements [flag.Value].
func (v lineEndingValue) String() string {
	if v.eol == nil {
		return "auto"
	}

	for _, le := range lineEndings {
		if *v.eol == le.eol {
			return le.name
		}
	}

	return strconv.Quote(*v.eol)
}

// Get implements [flag.Getter].
func (v lineEndingValue) Get() any {
	if v.eol == nil {
		return ""
	}

	return *v.eol
}
