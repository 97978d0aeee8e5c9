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
	"errors"
	"testing"
)

func TestFromLines(t *testing.T) {
	cases := []struct {
		name    string
		lines   [][]Point
		offsets []int32
	}{
		{"nil", nil, []int32{0}},
		{"empty line", [][]Point{{}}, []int32{0, 0}},
		{"single point", [][]Point{{{1, 2, 3}}}, []int32{0, 1}},
		{"mixed", [][]Point{
			{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
			{},
			{{5, 5, 5}},
			{{2, 0, 0}, {3, 0, 0}},
		}, []int32{0, 3, 3, 4, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := FromLines(tc.lines)
			if err := g.Validate(); err != nil {
				t.Fatal(err)
			}
			offsets := g.Offsets()
			if len(offsets) != len(tc.offsets) {
				t.Fatalf("offsets = %v, want %v", offsets, tc.offsets)
			}
			for i := range offsets {
				if offsets[i] != tc.offsets[i] {
					t.Errorf("offsets = %v, want %v", offsets, tc.offsets)
					break
				}
			}
			if g.NumLines() != len(tc.lines) {
				t.Errorf("NumLines() = %d, want %d", g.NumLines(), len(tc.lines))
			}
			for i, line := range g.Lines() {
				if len(line) != len(tc.lines[i]) {
					t.Errorf("line %d has %d points, want %d", i, len(line), len(tc.lines[i]))
				}
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	pts := []Point{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	cases := []struct {
		name    string
		coords  []Point
		offsets []int32
		ok      bool
	}{
		{"valid", pts, []int32{0, 2, 3}, true},
		{"empty", nil, nil, true},
		{"missing offsets", pts, nil, false},
		{"bad start", pts, []int32{1, 3}, false},
		{"decreasing", pts, []int32{0, 2, 1, 3}, false},
		{"short", pts, []int32{0, 2}, false},
		{"long", pts, []int32{0, 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.coords, tc.offsets)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if g.NumPoints() != len(tc.coords) {
					t.Errorf("NumPoints() = %d", g.NumPoints())
				}
				return
			}
			if !errors.Is(err, ErrInvalidOffsets) {
				t.Errorf("error = %v, want ErrInvalidOffsets", err)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	a := FromLines([][]Point{{{0, 0, 0}, {1, 0, 0}}, {{2, 2, 2}}})
	b := FromLines([][]Point{{{3, 0, 0}, {4, 0, 0}, {5, 0, 0}}})

	c := Concat(a, b)
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.NumLines() != 3 || c.NumPoints() != 6 {
		t.Fatalf("got %s", c)
	}
	want := []int32{0, 2, 3, 6}
	for i, o := range c.Offsets() {
		if o != want[i] {
			t.Fatalf("offsets = %v, want %v", c.Offsets(), want)
		}
	}
	if c.Line(2)[0] != (Point{3, 0, 0}) {
		t.Errorf("line 2 starts at %v", c.Line(2)[0])
	}

	if !Concat(Empty(), a).Equal(a) {
		t.Error("empty+a != a")
	}
	if !Concat(a, nil).Equal(a) {
		t.Error("a+nil != a")
	}
}

func TestArraysCopy(t *testing.T) {
	g := FromLines([][]Point{{{1, 2, 3}, {4, 5, 6}}})

	coords, offsets := g.Arrays(true)
	coords[0].X = 99
	offsets[1] = 7
	if g.Coords()[0].X != 1 || g.Offsets()[1] != 2 {
		t.Error("copied arrays alias the geometry")
	}

	view, _ := g.Arrays(false)
	if &view[0] != &g.Coords()[0] {
		t.Error("view is not zero-copy")
	}
}

func TestMap(t *testing.T) {
	g := FromLines([][]Point{{{1, 1, 1}, {2, 2, 2}}, {{3, 3, 3}}})
	h := g.Map(func(p Point) Point { return p.Mul(2) })
	if h.NumLines() != 2 || h.NumPoints() != 3 {
		t.Fatalf("got %s", h)
	}
	if h.Coords()[2] != (Point{6, 6, 6}) {
		t.Errorf("got %v", h.Coords()[2])
	}
	if g.Coords()[2] != (Point{3, 3, 3}) {
		t.Error("Map modified its input")
	}
}

func TestNilGeometry(t *testing.T) {
	var g *Geometry
	if g.NumLines() != 0 || g.NumPoints() != 0 {
		t.Error("nil geometry is not empty")
	}
	if err := g.Validate(); err != nil {
		t.Error(err)
	}
	if _, _, ok := g.Bounds(); ok {
		t.Error("nil geometry has bounds")
	}
	for range g.Lines() {
		t.Error("nil geometry has lines")
	}
}

func TestBounds(t *testing.T) {
	g := FromLines([][]Point{{{1, -2, 3}, {-4, 5, 0}}, {{0, 0, 9}}})
	lo, hi, ok := g.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	if lo != (Point{-4, -2, 0}) || hi != (Point{1, 5, 9}) {
		t.Errorf("bounds = %v, %v", lo, hi)
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.Add([]Point{{0, 0, 0}, {1, 1, 1}})
	b.AddSegment(Point{2, 2, 2}, Point{3, 3, 3})
	b.Add(nil)
	g := b.Geometry()
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if g.NumLines() != 3 || g.NumPoints() != 4 {
		t.Errorf("got %s", g)
	}

	if e := (&Builder{}).Geometry(); e.NumLines() != 0 || e.Validate() != nil {
		t.Error("empty builder gives invalid geometry")
	}
}

func TestPointOps(t *testing.T) {
	p := Point{1, 0, 0}
	q := Point{0, 1, 0}
	if c := p.Cross(q); c != (Point{0, 0, 1}) {
		t.Errorf("cross = %v", c)
	}
	if d := p.Dist(q); abs32(d-1.4142135) > 1e-6 {
		t.Errorf("dist = %v", d)
	}
	if m := p.Lerp(q, 0.5); m != (Point{0.5, 0.5, 0}) {
		t.Errorf("lerp = %v", m)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
