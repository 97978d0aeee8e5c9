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

package effect

import (
	"seehuhn.de/go/lineart"
)

// Dashify breaks every line into dashes.  The pattern restarts at the
// beginning of each line.
//
// Parameters: dash_length (0.1), gap_length (0.05), both in drawing
// units.
type Dashify struct{}

func (*Dashify) Name() string { return "dashify" }

func (*Dashify) ParamNames() []string { return []string{"dash_length", "gap_length"} }

func (*Dashify) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	dash := float32(p.Float("dash_length", 0.1))
	gap := float32(p.Float("gap_length", 0.05))
	period := dash + gap
	if dash <= 0 || period <= 0 || g.NumPoints() == 0 {
		return g
	}

	b := lineart.NewBuilder(g.NumLines(), g.NumPoints())
	var cum []float32
	var buf []lineart.Point
	for _, line := range g.Lines() {
		if len(line) < 2 {
			b.Add(line)
			continue
		}
		cum = arcLengths(cum[:0], line)
		total := cum[len(cum)-1]
		if total <= 0 {
			b.Add(line)
			continue
		}
		for k := 0; ; k++ {
			d0 := float32(k) * period
			if d0 >= total {
				break
			}
			d1 := min(d0+dash, total)
			buf = appendSection(buf[:0], line, cum, d0, d1)
			b.Add(buf)
		}
	}
	return b.Geometry()
}
