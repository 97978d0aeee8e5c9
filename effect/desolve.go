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

// Desolve splits every line into its two-point segments.  Lines with at
// most two points are kept as they are.
type Desolve struct{}

func (*Desolve) Name() string { return "desolve" }

func (*Desolve) ParamNames() []string { return nil }

func (*Desolve) Apply(g *lineart.Geometry, _ Params) *lineart.Geometry {
	if g.NumPoints() == 0 {
		return g
	}
	b := lineart.NewBuilder(g.NumPoints(), 2*g.NumPoints())
	for _, line := range g.Lines() {
		if len(line) <= 2 {
			b.Add(line)
			continue
		}
		for i := 0; i < len(line)-1; i++ {
			b.AddSegment(line[i], line[i+1])
		}
	}
	return b.Geometry()
}
