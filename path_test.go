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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestFromPathLines(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		Close().
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 6, Y: 5}).
		MoveTo(vec.Vec2{X: 9, Y: 9})

	g := FromPath(p.Iter(), 0)
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	want := [][]Point{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}},
		{{5, 5, 0}, {6, 5, 0}},
		{{9, 9, 0}},
	}
	if !g.Equal(FromLines(want)) {
		t.Errorf("got %v", g)
	}
}

func TestFromPathCurves(t *testing.T) {
	const r = 10.0
	const k = r * 0.5522847498
	circle := (&path.Data{}).
		MoveTo(vec.Vec2{X: r, Y: 0}).
		CubeTo(vec.Vec2{X: r, Y: k}, vec.Vec2{X: k, Y: r}, vec.Vec2{X: 0, Y: r}).
		CubeTo(vec.Vec2{X: -k, Y: r}, vec.Vec2{X: -r, Y: k}, vec.Vec2{X: -r, Y: 0}).
		CubeTo(vec.Vec2{X: -r, Y: -k}, vec.Vec2{X: -k, Y: -r}, vec.Vec2{X: 0, Y: -r}).
		CubeTo(vec.Vec2{X: k, Y: -r}, vec.Vec2{X: r, Y: -k}, vec.Vec2{X: r, Y: 0}).
		Close()

	for _, tol := range []float64{0.5, 0.05, 0.005} {
		g := FromPath(circle.Iter(), tol)
		if g.NumLines() != 1 {
			t.Fatalf("got %d lines, want 1", g.NumLines())
		}
		line := g.Line(0)
		if line[0] != line[len(line)-1] {
			t.Error("closed subpath does not end at its start")
		}
		for i, q := range line {
			d := math.Hypot(float64(q.X), float64(q.Y))
			if math.Abs(d-r) > tol+0.03 {
				t.Errorf("tol %g, point %d: radius %g", tol, i, d)
			}
		}
	}

	coarse := FromPath(circle.Iter(), 0.5).NumPoints()
	fine := FromPath(circle.Iter(), 0.005).NumPoints()
	if fine <= coarse {
		t.Errorf("finer tolerance gave %d points, coarse %d", fine, coarse)
	}

	quad := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 2, Y: 0})
	g := FromPath(quad.Iter(), 0.01)
	line := g.Line(0)
	if len(line) < 4 || line[len(line)-1] != (Point{2, 0, 0}) {
		t.Errorf("quadratic: got %v", line)
	}
}
