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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/config"
	"seehuhn.de/go/lineart/effect"
	"seehuhn.de/go/lineart/export"
	"seehuhn.de/go/lineart/testcases"
)

// settleDelay is the time to wait after a file change before re-running,
// so that editors have finished writing.
const settleDelay = 100 * time.Millisecond

type runOptions struct {
	config string
	input  string
	shape  string
	output string
	watch  bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.input == "") == (opts.shape == "") {
				return errors.New("exactly one of --input and --shape is required")
			}
			if !opts.watch {
				return runOnce(opts)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "pipeline description (.toml or .yaml)")
	flags.StringVarP(&opts.input, "input", "i", "", "input geometry (.json)")
	flags.StringVarP(&opts.shape, "shape", "s", "", "use a built-in sample shape as input")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (.svg, .pdf, .png or .json)")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-run whenever the configuration or input changes")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("output")
	return cmd
}

// runOnce loads the configuration and the input, applies the pipeline
// and writes the result.
func runOnce(opts *runOptions) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	pl, err := cfg.Pipeline(effect.DefaultRegistry())
	if err != nil {
		return err
	}

	var g *lineart.Geometry
	if opts.shape != "" {
		mk, ok := testcases.Shapes[opts.shape]
		if !ok {
			return fmt.Errorf("unknown shape %q", opts.shape)
		}
		g = mk()
	} else {
		g, err = export.ReadJSONFile(opts.input)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	res := pl.Apply(g, cfg.Params)
	lineart.Logger().Info("pipeline done",
		"stages", pl.Len(),
		"lines", res.NumLines(),
		"points", res.NumPoints(),
		"elapsed", time.Since(start))

	output := opts.output
	if cfg.Output.Format != "" && filepath.Ext(output) == "" {
		output += "." + strings.ToLower(cfg.Output.Format)
	}
	return export.WriteFile(output, res, cfg.ExportOptions())
}

// watch runs the pipeline, and runs it again each time the configuration
// or the input file changes, until ctx is cancelled.
func watch(ctx context.Context, opts *runOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directories, since many editors replace files by renaming.
	targets := map[string]bool{}
	for _, name := range []string{opts.config, opts.input} {
		if name == "" {
			continue
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return err
		}
		targets[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	log := lineart.Logger()
	report := func() {
		if err := runOnce(opts); err != nil {
			log.Error("run failed", "error", err)
		}
	}
	report()

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				log.Debug("file changed", "file", event.Name, "op", event.Op.String())
				timer = time.After(settleDelay)
			}
		case <-timer:
			timer = nil
			report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)
		}
	}
}

func listEffects(w io.Writer) error {
	reg := effect.DefaultRegistry()
	for _, name := range reg.Names() {
		e, err := reg.New(name)
		if err != nil {
			return err
		}
		var params []string
		if pn, ok := e.(effect.ParamNamer); ok {
			params = pn.ParamNames()
		}
		if _, err := fmt.Fprintf(w, "%-12s %s\n", name, strings.Join(params, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func sampleNames() []string {
	return testcases.ShapeNames()
}

func writeSample(name, output string) error {
	mk, ok := testcases.Shapes[name]
	if !ok {
		return fmt.Errorf("unknown shape %q", name)
	}
	return export.WriteFile(output, mk(), export.DefaultOptions())
}
