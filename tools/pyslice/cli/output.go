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
	"errors"
	"fmt"
	"io"

	"github.com/gx-org/pyslice/fmt/fmtarray"
	"github.com/gx-org/pyslice/interp/materialise"
	"github.com/gx-org/pyslice/interp/view"
	"gopkg.in/yaml.v3"
)

// Exit codes of the commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Invalid expression or assignment
	ExitCommandError = 2 // Invalid arguments or unreadable document
)

// ExitError is an error with a specific exit code.
// Errors already reported to the user have no message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Report writes an error returned by a command and returns its exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitCommandError
	}
	if exitErr.Message != "" {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return exitErr.Code
}

// printView writes the elements of a view in the selected format.
func (opts *RootOptions) printView(w io.Writer, v *view.View) error {
	if opts.Format != "yaml" {
		_, err := fmt.Fprintln(w, fmtarray.SDataPrint(v))
		return err
	}
	val, err := materialise.Copy(v)
	if err != nil {
		return err
	}
	return printYAML(w, val)
}

func printYAML(w io.Writer, val any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(val); err != nil {
		return err
	}
	return enc.Close()
}
