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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/hatch"
)

// maxFillLines is the number of hatch lines (or dots per grid row) for
// density 1.
const maxFillLines = 100

// Filling adds hatch patterns inside every line with at least three
// points.  Each line is mapped into its own plane and filled as a polygon.
// The original lines are kept.
//
// Parameters: pattern ("lines"), one of "lines", "cross" or "dots";
// density (0.5), scaled to 2-100 lines across the shape; angle (0), the
// direction of the hatch lines in full turns.  The "cross" pattern adds a
// second set of lines at a right angle.  Dots are single-point lines.
type Filling struct {
	Parallel
}

func (*Filling) Name() string { return "filling" }

func (*Filling) ParamNames() []string { return []string{"pattern", "density", "angle"} }

func (e *Filling) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	density := p.Float("density", 0.5)
	if density <= 0 {
		return g
	}
	pattern := p.String("pattern", "lines")
	angle := p.Float("angle", 0) * 2 * math.Pi
	n := max(2, int(maxFillLines*density))

	type state struct {
		f   hatch.Filler
		xy  []vec.Vec2
		dot [1]lineart.Point
	}
	newState := func() *state { return &state{} }
	return mapLines(e.Parallel, g, newState, func(s *state, line []lineart.Point, b *lineart.Builder) {
		b.Add(line)
		if len(line) < 3 {
			return
		}
		pl := lineart.NewPlane(line)
		s.xy = pl.ToXY(s.xy[:0], line)
		segment := func(u, v vec.Vec2) {
			b.AddSegment(pl.Restore(u), pl.Restore(v))
		}
		switch pattern {
		case "cross":
			s.f.Lines(s.xy, n, angle, segment)
			s.f.Lines(s.xy, n, angle+math.Pi/2, segment)
		case "dots":
			s.f.Dots(s.xy, n, func(u vec.Vec2) {
				s.dot[0] = pl.Restore(u)
				b.Add(s.dot[:])
			})
		default:
			s.f.Lines(s.xy, n, angle, segment)
		}
	})
}
