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

package lineart

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the flattening tolerance used by [FromPath] when a
// non-positive tolerance is given.
const DefaultTolerance = 0.05

// FromPath converts a path into polylines in the plane z=0.  Every subpath
// becomes one line.  Curves are replaced by chords which deviate from the
// curve by at most tol.  Closed subpaths end with a copy of their first
// point.  A subpath consisting of a single MoveTo gives a one-point line.
func FromPath(p path.Path, tol float64) *Geometry {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	f := &flattener{tol: tol}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			f.finish()
			f.start = pts[0]
			f.add(pts[0])
		case path.CmdLineTo:
			f.begin()
			f.add(pts[0])
		case path.CmdQuadTo:
			f.begin()
			f.quadratic(f.current, pts[0], pts[1])
		case path.CmdCubeTo:
			f.begin()
			f.cubic(f.current, pts[0], pts[1], pts[2])
		case path.CmdClose:
			if f.open {
				if f.current != f.start {
					f.add(f.start)
				}
				f.finish()
				f.current = f.start
			}
		}
	}
	f.finish()
	return f.b.Geometry()
}

type flattener struct {
	tol     float64
	b       Builder
	line    []Point
	start   vec.Vec2
	current vec.Vec2
	open    bool
}

// begin starts a subpath at the current point, if none is open.  This
// happens for drawing commands after a ClosePath.
func (f *flattener) begin() {
	if !f.open {
		f.start = f.current
		f.add(f.current)
	}
}

func (f *flattener) add(v vec.Vec2) {
	f.line = append(f.line, Point{X: float32(v.X), Y: float32(v.Y)})
	f.current = v
	f.open = true
}

func (f *flattener) finish() {
	if f.open {
		f.b.Add(f.line)
	}
	f.line = f.line[:0]
	f.open = false
}

// quadratic flattens a quadratic Bézier curve.  The number of chords is
// chosen so that the maximal deviation stays below the tolerance.
func (f *flattener) quadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errLen := e.Length(); errLen > f.tol {
		n = int(math.Ceil(math.Sqrt(errLen / f.tol)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		f.add(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubic flattens a cubic Bézier curve, using Wang's formula for the number
// of chords.
func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.tol)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		f.add(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}
