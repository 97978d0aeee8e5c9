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

// Package spline evaluates centripetal-style Catmull-Rom segments.
package spline

import (
	"math"

	"seehuhn.de/go/lineart"
)

// minKnotDist replaces zero distances between control points, to keep the
// knot sequence strictly increasing.
const minKnotDist = 1e-12

// AppendCatmullRom appends n+1 samples of the Catmull-Rom segment between
// p1 and p2 to dst.  The first sample equals p1 and the last equals p2.
//
// The knots are spaced by |P_{j+1}-P_j|^alpha: alpha=0 gives the uniform
// spline, alpha=0.5 the centripetal one and alpha=1 the chordal one.  The
// curve is evaluated with the Barry-Goldman pyramid.
func AppendCatmullRom(dst []lineart.Point, p0, p1, p2, p3 lineart.Point, n int, alpha float64) []lineart.Point {
	if n < 1 {
		n = 1
	}
	a0, a1, a2, a3 := toF64(p0), toF64(p1), toF64(p2), toF64(p3)

	tau0 := 0.0
	tau1 := knot(tau0, a0, a1, alpha)
	tau2 := knot(tau1, a1, a2, alpha)
	tau3 := knot(tau2, a2, a3, alpha)

	for i := range n + 1 {
		t := tau1 + float64(i)/float64(n)*(tau2-tau1)

		A1 := mix(a0, a1, tau0, tau1, t)
		A2 := mix(a1, a2, tau1, tau2, t)
		A3 := mix(a2, a3, tau2, tau3, t)
		B1 := mix(A1, A2, tau0, tau2, t)
		B2 := mix(A2, A3, tau1, tau3, t)
		C := mix(B1, B2, tau1, tau2, t)

		dst = append(dst, lineart.Point{X: float32(C[0]), Y: float32(C[1]), Z: float32(C[2])})
	}
	return dst
}

type f64 [3]float64

func toF64(p lineart.Point) f64 {
	return f64{float64(p.X), float64(p.Y), float64(p.Z)}
}

func knot(ti float64, pi, pj f64, alpha float64) float64 {
	dx, dy, dz := pj[0]-pi[0], pj[1]-pi[1], pj[2]-pi[2]
	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	tj := ti + math.Pow(max(d, minKnotDist), alpha)
	if tj <= ti {
		tj = math.Nextafter(ti, math.Inf(1))
	}
	return tj
}

// mix interpolates between a (at knot ta) and b (at knot tb).
func mix(a, b f64, ta, tb, t float64) f64 {
	wa := (tb - t) / (tb - ta)
	wb := (t - ta) / (tb - ta)
	return f64{
		wa*a[0] + wb*b[0],
		wa*a[1] + wb*b[1],
		wa*a[2] + wb*b[2],
	}
}
