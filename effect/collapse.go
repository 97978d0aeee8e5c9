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
	"math/rand/v2"

	"seehuhn.de/go/lineart"
)

const (
	maxCollapseDivisions = 10
	collapseEpsilon      = 1e-12
)

// Collapse cuts every segment into pieces and shifts each piece sideways by
// a fixed distance in a random direction orthogonal to the segment.  The
// pieces become disconnected, so that the line looks shattered.
//
// Parameters: intensity (0.5), the shift distance; subdivisions (0.5),
// scaled to 1-10 pieces per segment; seed (0), which selects the random
// sequence.
//
// The effect runs sequentially, since all lines draw from one random
// sequence.
type Collapse struct{}

func (*Collapse) Name() string { return "collapse" }

func (*Collapse) ParamNames() []string { return []string{"intensity", "subdivisions", "seed"} }

func (*Collapse) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	intensity := float32(p.Float("intensity", 0.5))
	subdivisions := p.Float("subdivisions", 0.5)
	if intensity == 0 || subdivisions == 0 || g.NumPoints() == 0 {
		return g
	}
	divisions := max(1, int(subdivisions*maxCollapseDivisions))
	seed := uint64(p.Int("seed", 0))
	rng := rand.New(rand.NewPCG(seed, 0))

	b := lineart.NewBuilder(g.NumLines(), 2*divisions*g.NumPoints())
	var buf []lineart.Point
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		if len(line) < 2 {
			b.Add(line)
			continue
		}
		buf = buf[:0]
		for i := 0; i < len(line)-1; i++ {
			a, c := line[i], line[i+1]
			for j := range divisions {
				s := a.Lerp(c, float32(j)/float32(divisions))
				e := a.Lerp(c, float32(j+1)/float32(divisions))
				dir := e.Sub(s)
				l := dir.Length()
				if l < collapseEpsilon {
					buf = append(buf, s, e)
					continue
				}
				r := lineart.Point{
					X: float32(rng.NormFloat64() / 5),
					Y: float32(rng.NormFloat64() / 5),
					Z: float32(rng.NormFloat64() / 5),
				}
				ortho := dir.Mul(1 / l).Cross(r)
				ol := ortho.Length()
				if ol < collapseEpsilon {
					buf = append(buf, s, e)
					continue
				}
				shift := ortho.Mul(intensity / ol)
				buf = append(buf, s.Add(shift), e.Add(shift))
			}
		}
		b.Add(buf)
	}
	return b.Geometry()
}
