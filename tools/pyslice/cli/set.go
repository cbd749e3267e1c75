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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/gx-org/pyslice"
)

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <expr> <value> [file]",
		Short: "Assign a value to the elements selected by an expression",
		Long: `Assign a value to the elements of a nested array selected by a slice
expression and print the whole updated array.

The value is a YAML scalar or sequence, for example 0 or "[1, 2, 3]".
A scalar is assigned to every element. A sequence of a lower rank than
the selection is assigned to every element of the outer axes.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, cmd, args)
		},
	}
}

func runSet(opts *RootOptions, cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args, 2)
	if err != nil {
		return err
	}
	val, err := decode([]byte(args[1]))
	if err != nil {
		return errors.WithMessagef(err, "cannot parse value %q", args[1])
	}
	v, err := pyslice.Index(doc, args[0], opts.viewOptions()...)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "invalid selection", Err: err}
	}
	opts.log().Debug("assign", "expr", v.Expr().String(), "rank", v.Rank(), "value", val)
	if err := v.Set(val); err != nil {
		return &ExitError{Code: ExitFailure, Message: "cannot assign " + args[1], Err: err}
	}
	return opts.printView(cmd.OutOrStdout(), pyslice.MustIndex(doc, "..."))
}
