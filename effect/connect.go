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
	"seehuhn.de/go/lineart/spline"
)

const (
	maxConnectPoints = 50
	maxConnectAlpha  = 2.0
)

// Connect joins each line to the next one with a Catmull-Rom arc through
// the last two points of the first line and the first two points of the
// second.  Lines with fewer than two points are joined without an arc.
//
// Parameters: n_points (0.5), the number of arc samples, scaled by 50;
// alpha (0), the knot parameter, scaled by 2; cyclic (false), whether to
// join the last line to the first one.
//
// For n lines the result has n-1 lines, or n lines if cyclic is set.
type Connect struct{}

func (*Connect) Name() string { return "connect" }

func (*Connect) ParamNames() []string { return []string{"n_points", "alpha", "cyclic"} }

func (*Connect) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	n := int(p.Float("n_points", 0.5) * maxConnectPoints)
	alpha := p.Float("alpha", 0) * maxConnectAlpha
	cyclic := p.Bool("cyclic", false)
	numLines := g.NumLines()
	if n < 2 || g.NumPoints() == 0 || numLines <= 1 {
		return g
	}

	count := numLines - 1
	if cyclic {
		count = numLines
	}
	b := lineart.NewBuilder(count, 2*g.NumPoints()+count*(n+1))
	var buf []lineart.Point
	for i := range count {
		a := g.Line(i)
		c := g.Line((i + 1) % numLines)
		buf = buf[:0]
		if len(a) < 2 || len(c) < 2 {
			buf = append(buf, a...)
			buf = append(buf, c...)
		} else {
			buf = append(buf, a[:len(a)-1]...)
			buf = spline.AppendCatmullRom(buf, a[len(a)-2], a[len(a)-1], c[0], c[1], n, alpha)
			buf = append(buf, c[1:]...)
		}
		b.Add(buf)
	}
	return b.Geometry()
}
