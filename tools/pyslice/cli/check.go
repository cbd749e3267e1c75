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
	"strings"

	"github.com/spf13/cobra"
	gxfmt "github.com/gx-org/pyslice/base/fmt"
	"github.com/gx-org/pyslice/build/expr"
	"github.com/gx-org/pyslice/build/fmterr"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <expr>",
		Short: "Compile an expression and print its axes",
		Long: `Compile a slice expression and print its canonical form followed by
its axes. Malformed axes are all reported with their column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args[0])
		},
	}
}

type (
	axisReport struct {
		Kind  string `yaml:"kind"`
		Text  string `yaml:"text"`
		Start *int   `yaml:"start,omitempty"`
		Stop  *int   `yaml:"stop,omitempty"`
		Step  int    `yaml:"step"`
	}

	checkReport struct {
		Expr string       `yaml:"expr"`
		Axes []axisReport `yaml:"axes"`
	}
)

func newAxisReport(ax expr.Axis) axisReport {
	rep := axisReport{Kind: ax.Kind.String(), Text: ax.String(), Step: ax.Step}
	if ax.Kind == expr.IndexKind || ax.HasStart {
		rep.Start = &ax.Start
	}
	if ax.HasStop {
		rep.Stop = &ax.Stop
	}
	return rep
}

func runCheck(opts *RootOptions, cmd *cobra.Command, src string) error {
	e, err := expr.Compile(src)
	if err != nil {
		writeDiagnostics(cmd.ErrOrStderr(), err)
		return &ExitError{Code: ExitFailure, Err: err}
	}
	opts.log().Debug("compiled", "expr", e.String(), "axes", e.NumAxes(), "ellipsis", e.HasEllipsis())
	rep := checkReport{Expr: e.String()}
	for _, ax := range e.Axes() {
		rep.Axes = append(rep.Axes, newAxisReport(ax))
	}
	w := cmd.OutOrStdout()
	if opts.Format == "yaml" {
		return printYAML(w, rep)
	}
	var axes strings.Builder
	for _, ax := range rep.Axes {
		fmt.Fprintf(&axes, "%s\t%s\n", ax.Kind, ax.Text)
	}
	_, err = fmt.Fprintf(w, "%s\n%s", rep.Expr, gxfmt.Number(axes.String()))
	return err
}

// writeDiagnostics writes every error of a compilation with a caret under its column.
func writeDiagnostics(w io.Writer, err error) {
	var errs *fmterr.Errors
	all := []error{err}
	if errors.As(err, &errs) {
		all = errs.Errors()
	}
	for _, err := range all {
		var pos fmterr.ErrorWithPos
		if !errors.As(err, &pos) || pos.Col() < 0 {
			fmt.Fprintln(w, err.Error())
			continue
		}
		fmt.Fprintf(w, "%s\n%s", err.Error(), gxfmt.Indent(pos.Src()+"\n"+fmterr.Caret(pos.Col())+"\n"))
	}
}
