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
	"github.com/chewxy/math32"

	"seehuhn.de/go/lineart"
)

const boldnessScale = 0.6

// Boldify makes lines look thicker by adding two parallel copies, one on
// either side, offset within the xy plane.
//
// Parameters: boldness (0.5), the distance between the two copies, scaled
// by 0.6.
type Boldify struct{}

func (*Boldify) Name() string { return "boldify" }

func (*Boldify) ParamNames() []string { return []string{"boldness"} }

func (*Boldify) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	boldness := p.Float("boldness", 0.5)
	if boldness <= 0 || g.NumPoints() == 0 {
		return g
	}
	half := float32(boldness*boldnessScale) / 2

	b := lineart.NewBuilder(3*g.NumLines(), 3*g.NumPoints())
	var segNormals, left, right []lineart.Point
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		b.Add(line)
		if len(line) < 2 {
			continue
		}

		segNormals = segNormals[:0]
		for i := 0; i < len(line)-1; i++ {
			segNormals = append(segNormals, xyNormal(line[i+1].Sub(line[i])))
		}
		left, right = left[:0], right[:0]
		for i, q := range line {
			var n lineart.Point
			switch i {
			case 0:
				n = segNormals[0]
			case len(line) - 1:
				n = segNormals[i-1]
			default:
				n = segNormals[i-1].Add(segNormals[i]).Mul(0.5)
				if l := math32.Hypot(n.X, n.Y); l > 0 {
					n = n.Mul(1 / l)
				}
			}
			left = append(left, q.Add(n.Mul(half)))
			right = append(right, q.Sub(n.Mul(half)))
		}
		b.Add(left)
		b.Add(right)
	}
	return b.Geometry()
}

// xyNormal returns the unit normal of d within the xy plane, or zero if d
// has no xy component.
func xyNormal(d lineart.Point) lineart.Point {
	l := math32.Hypot(d.X, d.Y)
	if l == 0 {
		return lineart.Point{}
	}
	return lineart.Point{X: -d.Y / l, Y: d.X / l}
}
