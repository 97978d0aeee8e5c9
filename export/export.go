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

// Package export writes line art to SVG, PDF, PNG and JSON files.
//
// Drawings are projected orthographically onto the xy plane and fitted
// into the page, preserving the aspect ratio.  Page sizes, margins and pen
// widths are given in millimetres.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format is an output file format.
type Format string

// These are the supported output formats.
const (
	SVG  Format = "svg"
	PDF  Format = "pdf"
	PNG  Format = "png"
	JSON Format = "json"
)

// ParseFormat returns the format with the given name.  Names are case
// insensitive and may have a leading dot, so that file extensions can be
// used directly.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	switch f {
	case SVG, PDF, PNG, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options controls the page layout.  Zero fields, except for Margin, are
// replaced by the values from [DefaultOptions].  Margins which leave no
// room for the drawing are replaced as well.
type Options struct {
	Width    float64 // page width in mm
	Height   float64 // page height in mm
	Margin   float64 // minimal distance between drawing and page edge, in mm
	PenWidth float64 // line width in mm
	DPI      float64 // resolution of PNG output
}

// DefaultOptions returns a landscape A4 page.
func DefaultOptions() Options {
	return Options{
		Width:    297,
		Height:   210,
		Margin:   10,
		PenWidth: 0.35,
		DPI:      96,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Margin < 0 || 2*o.Margin >= min(o.Width, o.Height) {
		o.Margin = def.Margin
	}
	if o.PenWidth <= 0 {
		o.PenWidth = def.PenWidth
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	return o
}

// View returns the map from drawing coordinates to page coordinates (in
// mm, y pointing down) which fits the xy bounding box of g into the page.
// The drawing is centred on the page.
func View(g *lineart.Geometry, opts Options) matrix.Matrix {
	opts = opts.withDefaults()
	lo, hi, ok := g.Bounds()
	if !ok {
		return matrix.Matrix{1, 0, 0, -1, opts.Width / 2, opts.Height / 2}
	}
	w := float64(hi.X - lo.X)
	h := float64(hi.Y - lo.Y)
	availW := opts.Width - 2*opts.Margin
	availH := opts.Height - 2*opts.Margin

	s := 1.0
	switch {
	case w > 0 && h > 0:
		s = min(availW/w, availH/h)
	case w > 0:
		s = availW / w
	case h > 0:
		s = availH / h
	}
	cx := (float64(lo.X) + float64(hi.X)) / 2
	cy := (float64(lo.Y) + float64(hi.Y)) / 2
	return matrix.Matrix{s, 0, 0, -s, opts.Width/2 - s*cx, opts.Height/2 + s*cy}
}

// apply maps (x, y) using M.
func apply(M matrix.Matrix, x, y float64) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*x + M[2]*y + M[4],
		Y: M[1]*x + M[3]*y + M[5],
	}
}

// scaled returns M followed by a uniform scaling by k.
func scaled(M matrix.Matrix, k float64) matrix.Matrix {
	return matrix.Matrix{k * M[0], k * M[1], k * M[2], k * M[3], k * M[4], k * M[5]}
}

// ToPath converts the lines of g to a path, mapping all points with M.
// Single point lines become zero-length segments, so that they remain
// visible with round line caps.  Empty lines are skipped.
func ToPath(g *lineart.Geometry, M matrix.Matrix) *path.Data {
	p := &path.Data{}
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		q := apply(M, float64(line[0].X), float64(line[0].Y))
		p = p.MoveTo(q)
		if len(line) == 1 {
			p = p.LineTo(q)
			continue
		}
		for _, pt := range line[1:] {
			p = p.LineTo(apply(M, float64(pt.X), float64(pt.Y)))
		}
	}
	return p
}

// WriteFile writes g to the named file.  The format is determined by the
// file name extension.
func WriteFile(fileName string, g *lineart.Geometry, opts Options) error {
	f, err := ParseFormat(filepath.Ext(fileName))
	if err != nil {
		return err
	}
	log := lineart.Logger()
	if g.NumPoints() == 0 {
		log.Warn("writing empty drawing", "file", fileName)
	}
	log.Info("writing output", "file", fileName, "format", string(f),
		"lines", g.NumLines(), "points", g.NumPoints())
	switch f {
	case PDF:
		return WritePDF(fileName, g, opts)
	case SVG:
		return writeFileWith(fileName, func(w *errWriter) error { return WriteSVG(w, g, opts) })
	case PNG:
		return writeFileWith(fileName, func(w *errWriter) error { return WritePNG(w, g, opts) })
	default:
		return writeFileWith(fileName, func(w *errWriter) error { return WriteJSON(w, g) })
	}
}
