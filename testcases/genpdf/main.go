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

// Command genpdf writes the output of every test case as a PDF file and
// renders it to PNG using Ghostscript, for visual inspection.
//
// Run from the module root directory.  If Ghostscript is not installed,
// only the PDF files are written.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/lineart/effect"
	"seehuhn.de/go/lineart/export"
	"seehuhn.de/go/lineart/testcases"
)

const (
	refDir = "testdata/reference"
	dpi    = 72
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	reg := effect.DefaultRegistry()
	opts := export.DefaultOptions()
	opts.Width, opts.Height = 150, 150

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			eg.Go(func() error {
				res, err := tc.Run(reg)
				if err != nil {
					return err
				}
				pdfPath := filepath.Join(refDir, name+".pdf")
				if err := export.WritePDF(pdfPath, res, opts); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if !haveGS {
					return nil
				}
				pngPath := filepath.Join(refDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		fmt.Sprintf("-r%d", dpi),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
