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

// Package hatch fills planar polygons with parallel lines or dot grids.
//
// Polygons are given as vertex lists and are implicitly closed.  Interior
// points are determined by the even-odd rule.
package hatch

import (
	"cmp"
	"math"
	"slices"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal polygon edge.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	yMin   float64
	yMax   float64
}

// Filler computes hatch patterns.  Create one instance and reuse it for
// many polygons; internal buffers grow as needed.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	edges  []edge
	active []int
	xs     []float64
	ring   orb.Ring
}

// Lines calls emit for every hatch segment of poly.  The hatch lines are
// n equally spaced lines, at the given angle (in radians) against the x
// axis.  The first line passes through the extreme vertex of the polygon,
// the last one lies one spacing short of the opposite extreme.
//
// For each hatch line, the crossings with the polygon boundary are sorted
// and paired up; each pair gives one segment.
func (f *Filler) Lines(poly []vec.Vec2, n int, angle float64, emit func(a, b vec.Vec2)) {
	if len(poly) < 3 || n < 1 {
		return
	}

	var center vec.Vec2
	rotated := angle != 0
	sin, cos := math.Sincos(-angle)
	if rotated {
		for _, p := range poly {
			center = center.Add(p)
		}
		center = center.Mul(1 / float64(len(poly)))
	}
	toLocal := func(p vec.Vec2) vec.Vec2 {
		if !rotated {
			return p
		}
		d := p.Sub(center)
		return vec.Vec2{X: d.X*cos - d.Y*sin + center.X, Y: d.X*sin + d.Y*cos + center.Y}
	}
	fromLocal := func(p vec.Vec2) vec.Vec2 {
		if !rotated {
			return p
		}
		d := p.Sub(center)
		return vec.Vec2{X: d.X*cos + d.Y*sin + center.X, Y: -d.X*sin + d.Y*cos + center.Y}
	}

	f.ring = f.ring[:0]
	for _, p := range poly {
		q := toLocal(p)
		f.ring = append(f.ring, orb.Point{q.X, q.Y})
	}
	bound := f.ring.Bound()
	yMin, yMax := bound.Min.Y(), bound.Max.Y()
	spacing := (yMax - yMin) / float64(n)
	if !(spacing > 0) {
		return
	}

	f.collectEdges()
	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})

	f.active = f.active[:0]
	nextEdge := 0
	for k := range n {
		y := yMin + float64(k)*spacing
		if y >= yMax {
			break
		}

		for nextEdge < len(f.edges) && f.edges[nextEdge].yMin <= y {
			f.active = append(f.active, nextEdge)
			nextEdge++
		}

		f.xs = f.xs[:0]
		for i := 0; i < len(f.active); {
			e := &f.edges[f.active[i]]
			if e.yMax <= y {
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				continue
			}
			f.xs = append(f.xs, e.x0+e.dxdy*(y-e.y0))
			i++
		}
		if len(f.xs) < 2 {
			continue
		}
		slices.Sort(f.xs)
		for i := 0; i+1 < len(f.xs); i += 2 {
			a := fromLocal(vec.Vec2{X: f.xs[i], Y: y})
			b := fromLocal(vec.Vec2{X: f.xs[i+1], Y: y})
			emit(a, b)
		}
	}
}

// collectEdges builds the edge list from f.ring, skipping horizontal edges.
func (f *Filler) collectEdges() {
	f.edges = f.edges[:0]
	for i, p := range f.ring {
		q := f.ring[(i+1)%len(f.ring)]
		x0, y0, x1, y1 := p.X(), p.Y(), q.X(), q.Y()
		if y0 == y1 {
			continue
		}
		f.edges = append(f.edges, edge{
			x0: x0, y0: y0,
			x1: x1, y1: y1,
			dxdy: (x1 - x0) / (y1 - y0),
			yMin: min(y0, y1),
			yMax: max(y0, y1),
		})
	}
}

// Dots calls emit for every point of a square grid which lies inside poly.
// The grid starts at the lower left corner of the bounding box, and its
// spacing is the shorter side of the bounding box divided by grid.
func (f *Filler) Dots(poly []vec.Vec2, grid int, emit func(p vec.Vec2)) {
	if len(poly) < 3 || grid < 1 {
		return
	}
	f.ring = f.ring[:0]
	for _, p := range poly {
		f.ring = append(f.ring, orb.Point{p.X, p.Y})
	}
	bound := f.ring.Bound()
	w := bound.Max.X() - bound.Min.X()
	h := bound.Max.Y() - bound.Min.Y()
	spacing := min(w, h) / float64(grid)
	if !(spacing > 0) {
		return
	}

	xLimit := bound.Max.X() + spacing
	yLimit := bound.Max.Y() + spacing
	for j := 0; ; j++ {
		y := bound.Min.Y() + float64(j)*spacing
		if y >= yLimit {
			break
		}
		for i := 0; ; i++ {
			x := bound.Min.X() + float64(i)*spacing
			if x >= xLimit {
				break
			}
			if Contains(poly, x, y) {
				emit(vec.Vec2{X: x, Y: y})
			}
		}
	}
}

// Contains reports whether (x, y) lies inside poly, using a ray casting
// parity test.  Horizontal edges never change the parity and are skipped.
func Contains(poly []vec.Vec2, x, y float64) bool {
	inside := false
	n := len(poly)
	for i := range n {
		p1, p2 := poly[i], poly[(i+1)%n]
		if p1.Y == p2.Y {
			continue
		}
		if y <= min(p1.Y, p2.Y) || y > max(p1.Y, p2.Y) || x > max(p1.X, p2.X) {
			continue
		}
		if p1.X == p2.X {
			inside = !inside
			continue
		}
		xinters := (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
		if x <= xinters {
			inside = !inside
		}
	}
	return inside
}
