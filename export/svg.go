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

package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajstarks/svgo"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/lineart"
)

// errWriter remembers the first write error, for writers which do not
// report errors themselves.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

func writeFileWith(fileName string, fn func(w *errWriter) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	buf := bufio.NewWriter(f)
	ew := &errWriter{w: buf}
	if err := fn(ew); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	if ew.err != nil {
		return fmt.Errorf("%s: %w", fileName, ew.err)
	}
	return buf.Flush()
}

// WriteSVG writes g as an SVG document.  Every line becomes one path
// element.
func WriteSVG(w io.Writer, g *lineart.Geometry, opts Options) error {
	opts = opts.withDefaults()
	ew, ok := w.(*errWriter)
	if !ok {
		ew = &errWriter{w: w}
	}

	pageW := int(opts.Width + 0.5)
	pageH := int(opts.Height + 0.5)
	opts.Width, opts.Height = float64(pageW), float64(pageH)
	M := View(g, opts)

	canvas := svg.New(ew)
	canvas.StartviewUnit(pageW, pageH, "mm", 0, 0, pageW, pageH)
	canvas.Title("lineart")
	canvas.Gstyle("fill:none;stroke:black;stroke-width:" + formatFloat(opts.PenWidth) +
		";stroke-linecap:round;stroke-linejoin:round")
	var d []byte
	flush := func() {
		if len(d) > 0 {
			canvas.Path(string(d))
			d = d[:0]
		}
	}
	for cmd, pts := range ToPath(g, M).Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			d = append(d, 'M')
		case path.CmdLineTo:
			d = append(d, 'L')
		default:
			continue
		}
		d = strconv.AppendFloat(d, pts[0].X, 'f', 3, 64)
		d = append(d, ' ')
		d = strconv.AppendFloat(d, pts[0].Y, 'f', 3, 64)
	}
	flush()
	canvas.Gend()
	canvas.End()
	return ew.err
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
