// Copyright 2024 Google LLC
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

// Package pyflag provides flag types for pyslice tools.
package pyflag

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type choice struct {
	value   *string
	choices []string
}

var _ pflag.Value = (*choice)(nil)

func (c *choice) String() string {
	return *c.value
}

func (c *choice) Set(value string) error {
	value = strings.TrimSpace(value)
	if !slices.Contains(c.choices, value) {
		return errors.Errorf("invalid value %q: must be one of %s", value, strings.Join(c.choices, "|"))
	}
	*c.value = value
	return nil
}

func (c *choice) Type() string {
	return "string"
}

// Choice defines a flag accepting one value out of a list.
// The first choice is the default.
func Choice(fs *pflag.FlagSet, p *string, name, short, usage string, choices ...string) {
	*p = choices[0]
	usage += " (" + strings.Join(choices, "|") + ")"
	fs.VarP(&choice{value: p, choices: choices}, name, short, usage)
}
