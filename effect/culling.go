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

// Culling restricts the geometry to an axis-aligned box.  In "clip" mode,
// all coordinates are clamped to the box and repeated points are dropped.
// In "remove" mode, lines with any point outside the box are deleted.
// Empty lines are always removed.
//
// Parameters: min_x, min_y, min_z (-1); max_x, max_y, max_z (1); mode
// ("clip").
type Culling struct{}

func (*Culling) Name() string { return "culling" }

func (*Culling) ParamNames() []string {
	return []string{"min_x", "max_x", "min_y", "max_y", "min_z", "max_z", "mode"}
}

func (*Culling) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	lo := lineart.Point{
		X: float32(p.Float("min_x", -1)),
		Y: float32(p.Float("min_y", -1)),
		Z: float32(p.Float("min_z", -1)),
	}
	hi := lineart.Point{
		X: float32(p.Float("max_x", 1)),
		Y: float32(p.Float("max_y", 1)),
		Z: float32(p.Float("max_z", 1)),
	}
	remove := p.String("mode", "clip") == "remove"

	inside := func(q lineart.Point) bool {
		return q.X >= lo.X && q.X <= hi.X &&
			q.Y >= lo.Y && q.Y <= hi.Y &&
			q.Z >= lo.Z && q.Z <= hi.Z
	}

	b := lineart.NewBuilder(g.NumLines(), g.NumPoints())
	var buf []lineart.Point
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		if remove {
			keep := true
			for _, q := range line {
				if !inside(q) {
					keep = false
					break
				}
			}
			if keep {
				b.Add(line)
			}
			continue
		}

		buf = buf[:0]
		for _, q := range line {
			c := lineart.Point{
				X: max(lo.X, min(hi.X, q.X)),
				Y: max(lo.Y, min(hi.Y, q.Y)),
				Z: max(lo.Z, min(hi.Z, q.Z)),
			}
			if n := len(buf); n > 0 {
				prev := buf[n-1]
				d := math32.Abs(c.X-prev.X) + math32.Abs(c.Y-prev.Y) + math32.Abs(c.Z-prev.Z)
				if d <= 1e-6 {
					continue
				}
			}
			buf = append(buf, c)
		}
		b.Add(buf)
	}
	return b.Geometry()
}
