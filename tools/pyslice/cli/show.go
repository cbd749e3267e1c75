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
	"github.com/spf13/cobra"
	"github.com/gx-org/pyslice"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <expr> [file]",
		Short: "Print the elements selected by an expression",
		Long: `Print the elements of a nested array selected by a slice expression.

The array is read from file, or from the standard input if file is
missing or "-".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, cmd, args)
		},
	}
}

func runShow(opts *RootOptions, cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args, 1)
	if err != nil {
		return err
	}
	v, err := pyslice.Index(doc, args[0], opts.viewOptions()...)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "invalid selection", Err: err}
	}
	shape, err := v.Shape()
	if err != nil {
		return err
	}
	opts.log().Debug("view", "expr", v.Expr().String(), "rank", v.Rank(), "shape", shape)
	return opts.printView(cmd.OutOrStdout(), v)
}
