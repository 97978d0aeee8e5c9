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
	"testing"

	"seehuhn.de/go/lineart"
)

func TestRotateQuarterTurn(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}})
	res := (&Rotate{}).Apply(g, Params{"rotate": []float64{0, 0, 0.25}})
	checkValid(t, res)

	got := res.Line(0)[1]
	want := lineart.Point{X: 0, Y: 1, Z: 0}
	if !pointsClose(got, want, 1e-6) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
	got = res.Line(0)[2]
	want = lineart.Point{X: -1, Y: 1, Z: 0}
	if !pointsClose(got, want, 1e-6) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
}

func TestRotateAboutCenter(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{2, 1, 0}}})
	p := Params{"rotate": []float64{0, 0, 0.5}, "center": []float64{1, 1, 0}}
	got := (&Rotate{}).Apply(g, p).Line(0)[0]
	want := lineart.Point{X: 0, Y: 1, Z: 0}
	if !pointsClose(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotateFullTurn(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{
		{{1, 2, 3}, {-4, 5, 0.5}, {10, -10, 7}},
		{{0.1, 0.2, 0.3}},
	})
	axes := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	for _, axis := range axes {
		res := (&Rotate{}).Apply(g, Params{"rotate": axis})
		for i, q := range res.Coords() {
			if !pointsClose(q, g.Coords()[i], 1e-4) {
				t.Errorf("rotate %v: point %d = %v, want %v", axis, i, q, g.Coords()[i])
			}
		}
	}
}

func TestScale(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 1, 0}, {0, 0, 0}}})
	res := (&Scale{}).Apply(g, Params{"scale": []float64{2, 2, 2}})
	if got := res.Line(0)[0]; got != (lineart.Point{X: 2, Y: 2, Z: 0}) {
		t.Errorf("scaled point = %v", got)
	}

	res = (&Scale{}).Apply(g, Params{"scale": 3.0, "center": []float64{1, 1, 1}})
	if got := res.Line(0)[1]; got != (lineart.Point{X: -2, Y: -2, Z: -2}) {
		t.Errorf("scaled point = %v", got)
	}
}

func TestTranslate(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 2, 3}}})
	res := (&Translate{}).Apply(g, Params{"offset_x": 1, "offset_z": -3})
	if got := res.Line(0)[0]; got != (lineart.Point{X: 2, Y: 2, Z: 0}) {
		t.Errorf("translated point = %v", got)
	}
}

func TestTransform(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	p := Params{"scale": 2.0, "rotate": []float64{0, 0, 0.25}}
	got := (&Transform{}).Apply(g, p).Line(0)[0]
	want := lineart.Point{X: 0, Y: 2, Z: 0}
	if !pointsClose(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformIdentity(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 2, 3}, {4, 5, 6}}})
	cases := []struct {
		name string
		e    Effect
		p    Params
	}{
		{"rotate", &Rotate{}, Params{"rotate": []float64{0, 0, 0}, "center": []float64{1, 1, 1}}},
		{"rotate default", &Rotate{}, nil},
		{"scale", &Scale{}, Params{"scale": []float64{1, 1, 1}}},
		{"translate", &Translate{}, Params{"offset_x": 0.0}},
		{"transform", &Transform{}, Params{"center": []float64{5, 5, 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if res := tc.e.Apply(g, tc.p); res != g {
				t.Errorf("identity parameters did not return the input")
			}
		})
	}
}

func TestTransformsKeepStructure(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		{},
		{{2, 2, 2}},
	})
	p := Params{
		"rotate":    []float64{0.1, 0.2, 0.3},
		"scale":     []float64{2, 3, 4},
		"offset_y":  1.5,
		"intensity": 0.3,
	}
	effects := []Effect{&Rotate{}, &Scale{}, &Translate{}, &Transform{}, NewNoise(nil)}
	for _, e := range effects {
		t.Run(e.Name(), func(t *testing.T) {
			res := e.Apply(g, p)
			checkValid(t, res)
			if res.NumLines() != g.NumLines() {
				t.Fatalf("got %d lines, want %d", res.NumLines(), g.NumLines())
			}
			for i := range g.NumLines() {
				if len(res.Line(i)) != len(g.Line(i)) {
					t.Errorf("line %d has %d points, want %d", i, len(res.Line(i)), len(g.Line(i)))
				}
			}
		})
	}
}

func BenchmarkRotate(b *testing.B) {
	pts := make([]lineart.Point, 10000)
	for i := range pts {
		pts[i] = lineart.Point{X: float32(i), Y: float32(i % 7), Z: 1}
	}
	g := lineart.FromLines([][]lineart.Point{pts})
	p := Params{"rotate": []float64{0.1, 0.2, 0.3}}
	e := &Rotate{}
	for b.Loop() {
		e.Apply(g, p)
	}
}
