// Copyright 2025 Google LLC
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

package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/gx-org/pyslice/api/container"
	"gopkg.in/yaml.v3"
)

// stdin is the file name reading the standard input.
const stdin = "-"

// loadDocument decodes a nested array from a YAML or JSON file.
func loadDocument(cmd *cobra.Command, args []string, fileArg int) (any, error) {
	path := stdin
	if len(args) > fileArg {
		path = args[fileArg]
	}
	var (
		data []byte
		err  error
	)
	if path == stdin {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot load %s", path)
	}
	if !container.IsSequence(doc) {
		return nil, errors.Errorf("%s: document is a %T, not a sequence", path, doc)
	}
	return doc, nil
}

// decode a YAML value. JSON is a subset of YAML.
func decode(data []byte) (any, error) {
	var val any
	if err := yaml.Unmarshal(data, &val); err != nil {
		return nil, errors.Wrap(err, "invalid YAML")
	}
	return val, nil
}
