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

package web

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// chordAttempts is the number of seeds tried per chord; the longest
// candidate wins.
const chordAttempts = 2

// hashRand maps x to a pseudo-random number in [0, 1).
func hashRand(x float64) float64 {
	v := math.Sin(x) * 43758.5453
	return v - math.Floor(v)
}

// pointOnCurve returns the point at fraction t along the edge of the
// closed curve selected by r.
func pointOnCurve(curve []vec.Vec2, r, t float64) vec.Vec2 {
	n := len(curve)
	idx := min(int(r*float64(n)), n-1)
	p, q := curve[idx], curve[(idx+1)%n]
	return p.Mul(1 - t).Add(q.Mul(t))
}

// chord returns the candidate chord number cl for the given seed.
func chord(curve []vec.Vec2, cl int, seed float64) (vec.Vec2, vec.Vec2) {
	c := float64(cl)
	r1 := hashRand(c*12.9898 + seed + 78.233)
	r2 := hashRand(c*93.9898 + seed + 12.345)
	r3 := hashRand(c*45.1234 + seed + 98.765)
	r4 := hashRand(c*67.8901 + seed + 23.456)
	return pointOnCurve(curve, r1, r2), pointOnCurve(curve, r3, r4)
}

// bestChord returns the longest of the candidate chords for cl.
func bestChord(curve []vec.Vec2, cl int) (vec.Vec2, vec.Vec2) {
	var bestA, bestB vec.Vec2
	bestDist2 := -1.0
	for i := range chordAttempts {
		a, b := chord(curve, cl, float64(i))
		d := b.Sub(a)
		if dist2 := d.X*d.X + d.Y*d.Y; dist2 > bestDist2 {
			bestA, bestB, bestDist2 = a, b, dist2
		}
	}
	return bestA, bestB
}
