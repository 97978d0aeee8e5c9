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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/outline"
)

const (
	maxBufferDistance   = 25.0
	maxBufferResolution = 10

	// closeThreshold is the distance below which the end points of a line
	// are considered equal.
	closeThreshold = 1e-3
)

// Buffer replaces every line by the outline of the region within a fixed
// distance of it.  Each line is first mapped into its own plane; lines
// whose end points (nearly) coincide are treated as closed polygons.  The
// outlines are finally shrunk towards their centroids by the factor
// 1/(1+2d/25), to compensate for the growth.
//
// Parameters: distance (0.5), scaled by 25; join_style (0.5), where
// [0, 0.33) selects miter joins, [0.33, 0.67) round joins and [0.67, 1]
// bevel joins; resolution (0.5), the number of segments per quarter
// circle, scaled to 1-10.
type Buffer struct {
	Parallel
}

func (*Buffer) Name() string { return "buffer" }

func (*Buffer) ParamNames() []string { return []string{"distance", "join_style", "resolution"} }

func (e *Buffer) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	d := p.Float("distance", 0.5) * maxBufferDistance
	if d == 0 {
		return g
	}
	join := joinStyle(p.Float("join_style", 0.5))
	res := max(1, min(maxBufferResolution, int(p.Float("resolution", 0.5)*maxBufferResolution)))
	shrink := float32(1 / (1 + d*2/maxBufferDistance))

	type state struct {
		o    *outline.Outliner
		pts  []lineart.Point
		xy   []vec.Vec2
		ring []vec.Vec2
		out  []lineart.Point
	}
	newState := func() *state {
		return &state{o: &outline.Outliner{Join: join, Resolution: res, MiterLimit: outline.DefaultMiterLimit}}
	}
	out := mapLines(e.Parallel, g, newState, func(s *state, line []lineart.Point, b *lineart.Builder) {
		if len(line) < 2 {
			return
		}
		s.pts = closeCurve(append(s.pts[:0], line...), closeThreshold)
		pl := lineart.NewPlane(s.pts)
		s.xy = pl.ToXY(s.xy[:0], s.pts)
		s.ring = s.o.Buffer(s.ring[:0], s.xy, d)
		if len(s.ring) == 0 {
			return
		}
		s.out = pl.RestoreAll(s.out[:0], s.ring)
		scaleAboutCentroid(s.out, shrink)
		b.Add(s.out)
	})
	if out.NumLines() == 0 {
		return g
	}
	return out
}

// joinStyle maps the unit interval to a line join style.
func joinStyle(x float64) graphics.LineJoinStyle {
	switch {
	case x >= 0 && x < 0.33:
		return graphics.LineJoinMiter
	case x >= 0.33 && x < 0.67:
		return graphics.LineJoinRound
	case x >= 0.67 && x <= 1:
		return graphics.LineJoinBevel
	default:
		return graphics.LineJoinRound
	}
}

// closeCurve makes the last point of pts equal to the first one, if the
// two are within the given distance.
func closeCurve(pts []lineart.Point, threshold float32) []lineart.Point {
	if len(pts) < 2 {
		return pts
	}
	if pts[0].Dist(pts[len(pts)-1]) <= threshold {
		pts[len(pts)-1] = pts[0]
	}
	return pts
}

// scaleAboutCentroid scales pts in place about their mean.
func scaleAboutCentroid(pts []lineart.Point, f float32) {
	if len(pts) == 0 {
		return
	}
	var sx, sy, sz float64
	for _, q := range pts {
		sx += float64(q.X)
		sy += float64(q.Y)
		sz += float64(q.Z)
	}
	n := float64(len(pts))
	c := lineart.Point{X: float32(sx / n), Y: float32(sy / n), Z: float32(sz / n)}
	for i, q := range pts {
		pts[i] = q.Sub(c).Mul(f).Add(c)
	}
}
