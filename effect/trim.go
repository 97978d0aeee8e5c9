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

// Trim keeps the part of every line between two fractions of its length.
// Lines which are too short to trim are passed through.  If start_param is
// not smaller than end_param, the input is returned unchanged.
//
// Parameters: start_param (0), end_param (1), both clamped to [0, 1].
type Trim struct{}

func (*Trim) Name() string { return "trim" }

func (*Trim) ParamNames() []string { return []string{"start_param", "end_param"} }

func (*Trim) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	start := float32(max(0, min(1, p.Float("start_param", 0))))
	end := float32(max(0, min(1, p.Float("end_param", 1))))
	if start >= end || (start == 0 && end == 1) {
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
		if total == 0 {
			b.Add(line)
			continue
		}
		buf = appendSection(buf[:0], line, cum, start*total, end*total)
		if len(buf) >= 2 {
			b.Add(buf)
		}
	}
	return b.Geometry()
}
