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
	"sort"

	"seehuhn.de/go/lineart"
)

// arcLengths appends the arc length from pts[0] to every vertex.
func arcLengths(dst []float32, pts []lineart.Point) []float32 {
	var total float32
	for i, q := range pts {
		if i > 0 {
			total += pts[i-1].Dist(q)
		}
		dst = append(dst, total)
	}
	return dst
}

// pointAt returns the point at arc length d along pts.
func pointAt(pts []lineart.Point, cum []float32, d float32) lineart.Point {
	n := len(pts)
	if d <= 0 {
		return pts[0]
	}
	if d >= cum[n-1] {
		return pts[n-1]
	}
	i := sort.Search(n, func(i int) bool { return cum[i] > d })
	seg := cum[i] - cum[i-1]
	if seg == 0 {
		return pts[i-1]
	}
	return pts[i-1].Lerp(pts[i], (d-cum[i-1])/seg)
}

// appendSection appends the part of pts between the arc lengths d0 < d1.
// The result starts and ends with interpolated points and includes all
// vertices strictly in between.
func appendSection(dst, pts []lineart.Point, cum []float32, d0, d1 float32) []lineart.Point {
	start := len(dst)
	dst = append(dst, pointAt(pts, cum, d0))
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > d0 })
	for ; i < len(cum) && cum[i] < d1; i++ {
		dst = append(dst, pts[i])
	}
	if end := pointAt(pts, cum, d1); end != dst[len(dst)-1] || len(dst)-start < 2 {
		dst = append(dst, end)
	}
	return dst
}
