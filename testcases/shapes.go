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

package testcases

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// flatness is the tolerance used to flatten curved shapes.
const flatness = 0.02

// Shapes maps shape names to constructors, for use by command line tools.
var Shapes = map[string]func() *lineart.Geometry{
	"square":   func() *lineart.Geometry { return rectangle(-1, -1, 1, 1) },
	"circle":   func() *lineart.Geometry { return circle(0, 0, 1) },
	"ellipse":  func() *lineart.Geometry { return ellipse(0, 0, 1.5, 0.75) },
	"hexagon":  func() *lineart.Geometry { return polygon(0, 0, 1, 6) },
	"star":     func() *lineart.Geometry { return star(0, 0, 1, 0.4, 5) },
	"helix":    func() *lineart.Geometry { return helix(1, 0.5, 3, 120) },
	"zigzag":   func() *lineart.Geometry { return zigzag(-1, 0, 1, 0.3, 8) },
	"grid":     func() *lineart.Geometry { return rectangleGrid(4, 4, 2, 2, 0.05) },
	"tilted":   func() *lineart.Geometry { return tiltedSquare(1, 0.3) },
	"s_curve":  func() *lineart.Geometry { return sCurve(-1, 0, 1, 0) },
	"ring":     func() *lineart.Geometry { return concentric(0, 0, 1, 0.5) },
	"segments": func() *lineart.Geometry { return horizontalLines(5, -1, 1, 0.25) },
}

// ShapeNames returns the keys of [Shapes] in sorted order.
func ShapeNames() []string {
	return slices.Sorted(maps.Keys(Shapes))
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func p3(x, y, z float64) lineart.Point {
	return lineart.Point{X: float32(x), Y: float32(y), Z: float32(z)}
}

// rectangle builds a closed, counter-clockwise rectangle.
func rectangle(x1, y1, x2, y2 float64) *lineart.Geometry {
	return lineart.FromLines([][]lineart.Point{rectangleLine(x1, y1, x2, y2)})
}

func rectangleLine(x1, y1, x2, y2 float64) []lineart.Point {
	return []lineart.Point{
		p3(x1, y1, 0), p3(x2, y1, 0), p3(x2, y2, 0), p3(x1, y2, 0), p3(x1, y1, 0),
	}
}

// rectangleGrid builds a grid of closed rectangles.
func rectangleGrid(rows, cols int, width, height, gap float64) *lineart.Geometry {
	cellW := width / float64(cols)
	cellH := height / float64(rows)
	x0, y0 := -width/2, -height/2

	b := lineart.NewBuilder(rows*cols, 5*rows*cols)
	for row := range rows {
		for col := range cols {
			x1 := x0 + float64(col)*cellW + gap
			y1 := y0 + float64(row)*cellH + gap
			x2 := x0 + float64(col+1)*cellW - gap
			y2 := y0 + float64(row+1)*cellH - gap
			b.Add(rectangleLine(x1, y1, x2, y2))
		}
	}
	return b.Geometry()
}

// concentric builds two nested squares.
func concentric(cx, cy, outer, inner float64) *lineart.Geometry {
	return lineart.FromLines([][]lineart.Point{
		rectangleLine(cx-outer, cy-outer, cx+outer, cy+outer),
		rectangleLine(cx-inner, cy-inner, cx+inner, cy+inner),
	})
}

// polygon builds a closed regular polygon with n corners.
func polygon(cx, cy, r float64, n int) *lineart.Geometry {
	line := make([]lineart.Point, 0, n+1)
	for i := range n {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		line = append(line, p3(cx+r*c, cy+r*s, 0))
	}
	line = append(line, line[0])
	return lineart.FromLines([][]lineart.Point{line})
}

// star builds a closed star with n spikes.  The result is not convex.
func star(cx, cy, rOuter, rInner float64, n int) *lineart.Geometry {
	line := make([]lineart.Point, 0, 2*n+1)
	for i := range 2 * n {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		s, c := math.Sincos(math.Pi/2 + math.Pi*float64(i)/float64(n))
		line = append(line, p3(cx+r*c, cy+r*s, 0))
	}
	line = append(line, line[0])
	return lineart.FromLines([][]lineart.Point{line})
}

// circle builds an approximate circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *lineart.Geometry {
	k := r * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
	return lineart.FromPath(p.Iter(), flatness*r)
}

// ellipse builds an approximate ellipse from four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *lineart.Geometry {
	kx := rx * kappa
	ky := ry * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
	return lineart.FromPath(p.Iter(), flatness*min(rx, ry))
}

// sCurve builds an open S-shaped curve from two quadratic Bézier curves.
func sCurve(x1, y1, x2, y2 float64) *lineart.Geometry {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	h := (x2 - x1) / 2
	p := (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1+h), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2-h), pt(x2, y2))
	return lineart.FromPath(p.Iter(), flatness*h)
}

// zigzag builds an open zigzag line.
func zigzag(x1, cy, x2, amplitude float64, segments int) *lineart.Geometry {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, cy)}) {
			return
		}
		segWidth := (x2 - x1) / float64(segments)
		for i := 1; i <= segments; i++ {
			y := cy + amplitude
			if i%2 == 0 {
				y = cy - amplitude
			}
			if i == segments {
				y = cy
			}
			if !yield(path.CmdLineTo, []vec.Vec2{pt(x1+float64(i)*segWidth, y)}) {
				return
			}
		}
	}
	return lineart.FromPath(p, 0)
}

// horizontalLines builds n parallel two-point lines.
func horizontalLines(n int, x1, x2, spacing float64) *lineart.Geometry {
	b := lineart.NewBuilder(n, 2*n)
	for i := range n {
		y := (float64(i) - float64(n-1)/2) * spacing
		b.AddSegment(p3(x1, y, 0), p3(x2, y, 0))
	}
	return b.Geometry()
}

// helix builds an open spiral around the z axis.
func helix(r, pitch float64, turns, n int) *lineart.Geometry {
	line := make([]lineart.Point, 0, turns*n+1)
	for i := range turns*n + 1 {
		phi := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sincos(phi)
		line = append(line, p3(r*c, r*s, pitch*phi/(2*math.Pi)))
	}
	return lineart.FromLines([][]lineart.Point{line})
}

// tiltedSquare builds a closed square in a plane which is tilted against
// all coordinate planes.
func tiltedSquare(size, tilt float64) *lineart.Geometry {
	s, c := math.Sincos(tilt)
	q := func(x, y float64) lineart.Point {
		// rotate about the x axis, then about the z axis
		y, z := y*c, y*s
		return p3(x*c-y*s, x*s+y*c, z)
	}
	h := size / 2
	line := []lineart.Point{q(-h, -h), q(h, -h), q(h, h), q(-h, h), q(-h, -h)}
	return lineart.FromLines([][]lineart.Point{line})
}
