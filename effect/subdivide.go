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

const (
	// maxDivisions is the number of midpoint insertion rounds for
	// n_divisions = 1.
	maxDivisions = 10

	// minSegmentLength stops subdivision once the first segment of a line
	// is shorter than this.
	minSegmentLength = 0.01
)

// Subdivide inserts segment midpoints, doubling the number of segments of
// every line in each round.  Subdivision of a line stops early once its
// first segment is shorter than 0.01.  End points are never moved.
//
// Parameters: n_divisions (0.5), mapped to 0-10 rounds.
type Subdivide struct{}

func (*Subdivide) Name() string { return "subdivide" }

func (*Subdivide) ParamNames() []string { return []string{"n_divisions"} }

func (*Subdivide) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	level := p.Float("n_divisions", 0.5)
	if level <= 0 {
		return g
	}
	divisions := min(int(level*maxDivisions), maxDivisions)
	if divisions <= 0 {
		return g
	}

	b := lineart.NewBuilder(g.NumLines(), g.NumPoints())
	var cur, next []lineart.Point
	for _, line := range g.Lines() {
		if len(line) < 2 || line[0].Dist(line[1]) < minSegmentLength {
			b.Add(line)
			continue
		}
		cur = append(cur[:0], line...)
		for range divisions {
			next = midpoints(next[:0], cur)
			cur, next = next, cur
			if cur[0].Dist(cur[1]) < minSegmentLength {
				break
			}
		}
		b.Add(cur)
	}
	return b.Geometry()
}

// midpoints appends pts with the midpoint of every segment inserted.
func midpoints(dst, pts []lineart.Point) []lineart.Point {
	if len(pts) == 0 {
		return dst
	}
	for i := 0; i < len(pts)-1; i++ {
		dst = append(dst, pts[i], pts[i].Lerp(pts[i+1], 0.5))
	}
	return append(dst, pts[len(pts)-1])
}
