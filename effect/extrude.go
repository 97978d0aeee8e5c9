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
	maxExtrudeDistance     = 200.0
	maxExtrudeScale        = 3.0
	maxExtrudeSubdivisions = 5
)

// Extrude adds a displaced and scaled copy of every line, together with a
// two-point connector from each vertex to its copy.  The lines are first
// subdivided, to give more connectors.
//
// Parameters: direction (0,0,1); distance (0.5), scaled by 200; scale
// (0.5), scaled by 3, applied about the origin after displacement;
// subdivisions (0.5), scaled to 0-5 rounds of midpoint insertion.
type Extrude struct{}

func (*Extrude) Name() string { return "extrude" }

func (*Extrude) ParamNames() []string {
	return []string{"direction", "distance", "scale", "subdivisions"}
}

func (*Extrude) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	if g.NumPoints() == 0 {
		return g
	}
	dist := float32(p.Float("distance", 0.5) * maxExtrudeDistance)
	scale := float32(p.Float("scale", 0.5) * maxExtrudeScale)
	rounds := int(p.Float("subdivisions", 0.5) * maxExtrudeSubdivisions)

	if rounds > 0 {
		b := lineart.NewBuilder(g.NumLines(), g.NumPoints()<<rounds)
		var cur, next []lineart.Point
		for _, line := range g.Lines() {
			cur = append(cur[:0], line...)
			for range rounds {
				if len(cur) < 2 {
					break
				}
				next = midpoints(next[:0], cur)
				cur, next = next, cur
			}
			b.Add(cur)
		}
		g = b.Geometry()
	}

	d := p.Vec3("direction", [3]float64{0, 0, 1})
	dir := lineart.Point{X: float32(d[0]), Y: float32(d[1]), Z: float32(d[2])}
	norm := dir.Length()
	if norm == 0 {
		return g
	}
	v := dir.Mul(dist / norm)

	n := g.NumPoints()
	b := lineart.NewBuilder(2*g.NumLines()+n, 4*n)
	b.AddGeometry(g)
	var moved []lineart.Point
	for _, line := range g.Lines() {
		moved = moved[:0]
		for _, q := range line {
			moved = append(moved, q.Add(v).Mul(scale))
		}
		b.Add(moved)
		for i, q := range line {
			b.AddSegment(q, moved[i])
		}
	}
	return b.Geometry()
}
