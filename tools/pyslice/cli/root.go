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

// Package cli implements the commands of the pyslice tool.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/gx-org/pyslice/api/options"
	"github.com/gx-org/pyslice/tools/pyflag"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string
	BoundsCheck bool

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats. The first one is the default.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the root command of the pyslice tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pyslice",
		Short: "Address nested arrays with Python slice expressions",
		Long: `pyslice reads a nested array from a YAML or JSON document and reads or
writes the elements selected by a slice expression such as "1, :, ::-1".`,
		SilenceUsage:  true,
		SilenceErrors: true, // Errors are written by Report.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug information on stderr")
	flags.BoolVar(&opts.BoundsCheck, "bounds-check", true, "report indices outside their axis as errors")
	pyflag.Choice(flags, &opts.Format, "format", "", "output format", ValidFormats...)

	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

func (opts *RootOptions) log() *slog.Logger {
	if opts.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opts.logger
}

func (opts *RootOptions) viewOptions() []options.ViewOption {
	return []options.ViewOption{
		options.BoundsCheck{Enabled: opts.BoundsCheck},
		// Documents decoded from YAML hold their sequences in interfaces
		// that cannot be resized in place.
		options.Resize{Allowed: false},
	}
}
