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

package outline

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestSquare(t *testing.T) {
	ccw := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	cw := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	cases := []struct {
		name string
		join graphics.LineJoinStyle
		area float64
		tol  float64
	}{
		{"miter", graphics.LineJoinMiter, 9, 1e-9},
		{"bevel", graphics.LineJoinBevel, 7, 1e-9},
		{"round", graphics.LineJoinRound, 5 + 20*math.Sin(2*math.Pi/40), 1e-9},
	}
	for _, tc := range cases {
		for _, pts := range [][]vec.Vec2{ccw, cw} {
			t.Run(tc.name, func(t *testing.T) {
				o := &Outliner{Join: tc.join, Resolution: 10}
				ring := o.Buffer(nil, pts, 1)
				if ring[0] != ring[len(ring)-1] {
					t.Fatal("ring is not closed")
				}
				if a := math.Abs(signedArea(ring)); math.Abs(a-tc.area) > tc.tol {
					t.Errorf("area = %g, want %g", a, tc.area)
				}
				for _, p := range ring {
					if p.X < -1-1e-9 || p.X > 2+1e-9 || p.Y < -1-1e-9 || p.Y > 2+1e-9 {
						t.Errorf("point %v outside the expected box", p)
					}
				}
			})
		}
	}
}

func TestOpenLine(t *testing.T) {
	o := &Outliner{Join: graphics.LineJoinRound, Resolution: 8}
	ring := o.Buffer(nil, []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, 1)

	want := 20 + 16*math.Sin(2*math.Pi/32)
	if a := math.Abs(signedArea(ring)); math.Abs(a-want) > 1e-9 {
		t.Errorf("area = %g, want %g", a, want)
	}
	for _, p := range ring {
		// distance from the segment
		x := max(0, min(10, p.X))
		if d := math.Hypot(p.X-x, p.Y); math.Abs(d-1) > 1e-9 {
			t.Errorf("point %v has distance %g from the line", p, d)
		}
	}
}

func TestPolylineWithTurns(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 5}}
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		o := &Outliner{Join: join, Resolution: 4}
		ring := o.Buffer(nil, pts, 0.5)
		if len(ring) < 8 {
			t.Fatalf("join %v: ring too short: %v", join, ring)
		}
		for _, p := range ring {
			if d := distToPolyline(p, pts); d > 0.5/math.Sqrt(0.5)+1e-9 || d < 0.5-1e-6 {
				t.Errorf("join %v: point %v at distance %g", join, p, d)
			}
		}
	}
}

func TestCusp(t *testing.T) {
	o := &Outliner{Join: graphics.LineJoinMiter, Resolution: 4}
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 0}}
	ring := o.Buffer(nil, pts, 1)
	for _, p := range ring {
		if p.X > 5+1e-9 || p.X < -1-1e-9 {
			t.Errorf("point %v outside the stadium", p)
		}
	}
}

func TestDegenerate(t *testing.T) {
	o := &Outliner{Resolution: 3}
	c := vec.Vec2{X: 2, Y: 3}

	ring := o.Buffer(nil, []vec.Vec2{c, c, c}, 2)
	if len(ring) != 13 {
		t.Errorf("circle has %d points, want 13", len(ring))
	}
	for _, p := range ring {
		if d := p.Sub(c).Length(); math.Abs(d-2) > 1e-9 {
			t.Errorf("point %v at distance %g from the center", p, d)
		}
	}

	if got := o.Buffer(nil, nil, 1); len(got) != 0 {
		t.Error("empty input gave output")
	}
	if got := o.Buffer(nil, []vec.Vec2{c}, 0); len(got) != 0 {
		t.Error("zero distance gave output")
	}
}

func TestAppendsToDst(t *testing.T) {
	o := &Outliner{}
	dst := []vec.Vec2{{X: 99, Y: 99}}
	dst = o.Buffer(dst, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1)
	if dst[0] != (vec.Vec2{X: 99, Y: 99}) || len(dst) < 4 {
		t.Errorf("unexpected result %v", dst)
	}
	if dst[1] != dst[len(dst)-1] {
		t.Error("appended ring is not closed")
	}
}

func distToPolyline(p vec.Vec2, pts []vec.Vec2) float64 {
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		t := max(0, min(1, p.Sub(a).Dot(ab)/ab.Dot(ab)))
		best = min(best, p.Sub(a.Add(ab.Mul(t))).Length())
	}
	return best
}

func BenchmarkBuffer(b *testing.B) {
	pts := make([]vec.Vec2, 0, 101)
	for i := range 100 {
		a := 2 * math.Pi * float64(i) / 100
		pts = append(pts, vec.Vec2{X: math.Cos(a), Y: math.Sin(a)})
	}
	pts = append(pts, pts[0])
	o := &Outliner{Join: graphics.LineJoinRound, Resolution: 5}
	var ring []vec.Vec2
	for b.Loop() {
		ring = o.Buffer(ring[:0], pts, 0.1)
	}
}
