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

// Sweep removes segments which occur more than once, in either direction,
// anywhere in the geometry.  Only the first occurrence is kept.  When a
// segment is removed, its end point is dropped from the line.
type Sweep struct{}

func (*Sweep) Name() string { return "sweep" }

func (*Sweep) ParamNames() []string { return nil }

func (*Sweep) Apply(g *lineart.Geometry, _ Params) *lineart.Geometry {
	if g.NumPoints() == 0 {
		return g
	}
	seen := make(map[[2]lineart.Point]struct{})
	b := lineart.NewBuilder(g.NumLines(), g.NumPoints())
	var buf []lineart.Point
	for _, line := range g.Lines() {
		if len(line) < 2 {
			b.Add(line)
			continue
		}
		buf = append(buf[:0], line[0])
		for i := 0; i < len(line)-1; i++ {
			key := segmentKey(line[i], line[i+1])
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			buf = append(buf, line[i+1])
		}
		if len(buf) >= 2 {
			b.Add(buf)
		}
	}
	return b.Geometry()
}

// segmentKey returns the end points in a canonical order.
func segmentKey(a, c lineart.Point) [2]lineart.Point {
	if pointLess(c, a) {
		a, c = c, a
	}
	return [2]lineart.Point{a, c}
}

func pointLess(a, c lineart.Point) bool {
	if a.X != c.X {
		return a.X < c.X
	}
	if a.Y != c.Y {
		return a.Y < c.Y
	}
	return a.Z < c.Z
}
