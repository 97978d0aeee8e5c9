// seehuhn.de/go/lineart - vector line-art generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command lineart applies effect pipelines to line-art geometry.
//
// The pipeline is read from a TOML or YAML file; the input is either a
// JSON geometry file or one of the built-in sample shapes.  The result is
// written as SVG, PDF, PNG or JSON, depending on the output file name.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/lineart"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "lineart",
		Short:         "Apply effect pipelines to line-art geometry",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			lineart.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log cache and pipeline activity")

	root.AddCommand(newRunCmd(), newEffectsCmd(), newSampleCmd())
	return root
}

func newEffectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List the available effects and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEffects(cmd.OutOrStdout())
		},
	}
}

func newSampleCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sample NAME",
		Short: "Write one of the built-in sample shapes",
		Long:  "Write one of the built-in sample shapes.  Without arguments, the available names are listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range sampleNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if output == "" {
				return errors.New("missing output file")
			}
			return writeSample(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg, .pdf, .png or .json)")
	return cmd
}
