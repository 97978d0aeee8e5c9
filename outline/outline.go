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

// Package outline computes the boundary of the region within a given
// distance of a planar polyline.
//
// Open polylines get round caps.  For closed polylines only the outer
// boundary is produced.  Corners on the outer side are joined using a
// miter, round or bevel join; corners on the inner side are cut at the
// intersection of the two offset lines.  Self-intersections of the offset
// curve are not removed.
package outline

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// DefaultMiterLimit is the miter limit used when Outliner.MiterLimit is
// zero.
const DefaultMiterLimit = 5.0

const (
	zeroLengthThreshold   = 1e-10
	collinearityThreshold = 1e-6
	cuspCosineThreshold   = -0.9999
)

// Outliner builds offset rings.  The zero value uses miter joins with
// one segment per quarter circle.  An Outliner reuses internal buffers and
// must not be used concurrently.
type Outliner struct {
	// Join selects how outer corners are joined.
	Join graphics.LineJoinStyle

	// Resolution is the number of segments used to approximate a quarter
	// circle, for round joins and caps.
	Resolution int

	// MiterLimit bounds the ratio between miter length and offset
	// distance.  Longer miters are replaced by bevels.
	MiterLimit float64

	segs []segment
	ring []vec.Vec2
}

// segment is a non-degenerate piece of the input polyline.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// Buffer appends the boundary of the region within distance d of pts to
// dst and returns the extended slice.  The appended ring is closed, i.e.
// its last point equals its first point.  If pts is empty or d <= 0, dst
// is returned unchanged.
//
// The polyline is treated as closed if its first and last point coincide.
// If all points coincide, the result is a circle.
func (o *Outliner) Buffer(dst []vec.Vec2, pts []vec.Vec2, d float64) []vec.Vec2 {
	if len(pts) == 0 || d <= 0 {
		return dst
	}

	closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
	o.collectSegments(pts)
	o.ring = o.ring[:0]

	switch {
	case len(o.segs) == 0:
		o.addArc(pts[0], d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)

	case closed && len(o.segs) >= 3:
		if signedArea(pts) > 0 {
			// counter-clockwise: reverse, so that the outside is on the left
			reverseSegments(o.segs)
		}
		o.walkClosed(o.segs, d)

	default:
		if closed {
			// A-B-A style loops enclose no area
			o.segs = o.segs[:1]
		}
		n := len(o.segs)
		o.walkOpen(o.segs, d)
		last := o.segs[n-1]
		o.addArc(last.B, d, last.N, -math.Pi, false)

		reverseSegments(o.segs)
		o.walkOpen(o.segs, d)
		first := o.segs[n-1] // after reversal
		o.addArc(first.B, d, first.N, -math.Pi, false)
	}

	start := len(dst)
	for _, p := range o.ring {
		if len(dst) > start && nearlyEqual(dst[len(dst)-1], p) {
			continue
		}
		dst = append(dst, p)
	}
	if len(dst)-start > 1 && nearlyEqual(dst[len(dst)-1], dst[start]) {
		dst[len(dst)-1] = dst[start]
	} else if len(dst) > start {
		dst = append(dst, dst[start])
	}
	return dst
}

// collectSegments converts pts into segments, dropping zero-length pieces.
func (o *Outliner) collectSegments(pts []vec.Vec2) {
	o.segs = o.segs[:0]
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		length := d.Length()
		if length < zeroLengthThreshold {
			continue
		}
		t := d.Mul(1 / length)
		o.segs = append(o.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
	}
}

// walkOpen emits the left offset of an open chain of segments, from the
// start of the first segment to the end of the last one.
func (o *Outliner) walkOpen(segs []segment, d float64) {
	o.ring = append(o.ring, segs[0].A.Add(segs[0].N.Mul(d)))
	for i := 0; i+1 < len(segs); i++ {
		o.addCorner(&segs[i], &segs[i+1], d)
	}
	last := &segs[len(segs)-1]
	o.ring = append(o.ring, last.B.Add(last.N.Mul(d)))
}

// walkClosed emits the left offset of a closed chain of segments.
func (o *Outliner) walkClosed(segs []segment, d float64) {
	for i := range segs {
		o.addCorner(&segs[i], &segs[(i+1)%len(segs)], d)
	}
}

// addCorner emits the left offset points around the vertex where seg ends
// and next begins.
func (o *Outliner) addCorner(seg, next *segment, d float64) {
	P := seg.B
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	cosTheta := seg.T.Dot(next.T)

	switch {
	case cosTheta < cuspCosineThreshold:
		// the path doubles back: go around the tip
		o.ring = append(o.ring, P.Add(seg.N.Mul(d)))
		o.addArc(P, d, seg.N, -math.Pi, false)

	case math.Abs(sinTheta) < collinearityThreshold:
		o.ring = append(o.ring, P.Add(seg.N.Mul(d)))
		o.ring = append(o.ring, next.A.Add(next.N.Mul(d)))

	case sinTheta > 0:
		// left turn: the left side is the inner side
		if pt, ok := innerIntersection(P, seg.T, next.T, d); ok {
			o.ring = append(o.ring, pt)
		} else {
			o.ring = append(o.ring, P.Add(seg.N.Mul(d)))
			o.ring = append(o.ring, P.Add(next.N.Mul(d)))
		}

	default:
		// right turn: the left side is the outer side
		o.ring = append(o.ring, P.Add(seg.N.Mul(d)))
		o.addJoin(P, seg.T, next.T, d)
		o.ring = append(o.ring, P.Add(next.N.Mul(d)))
	}
}

// innerIntersection returns the point where the left offset lines of the
// two segments meeting at P intersect.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	dir := N1.Add(N2)
	dirLen := dir.Length()
	if dirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	dir = dir.Mul(1 / dirLen)
	return P.Add(dir.Mul(d / halfAngle)), true
}

// addJoin adds the points between the two outer offset points of a right
// turn at P.  The offset points themselves are emitted by the caller.
func (o *Outliner) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}

	switch o.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		o.addArcInner(P, d, N1, -angle)

	case graphics.LineJoinBevel:
		// the two offset points are connected directly

	default: // miter
		limit := o.MiterLimit
		if limit <= 0 {
			limit = DefaultMiterLimit
		}
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= limit+miterEpsilon {
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if l := bisector.Length(); l > zeroLengthThreshold {
				o.ring = append(o.ring, P.Add(bisector.Mul(d/(l*sinHalf))))
			}
		}
	}
}

// addArcInner adds the interior points of an arc, without either endpoint.
func (o *Outliner) addArcInner(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	n := o.arcSegments(sweep)
	dt := sweep / float64(n)
	for i := 1; i < n; i++ {
		o.ring = append(o.ring, center.Add(rotate(startDir, float64(i)*dt).Mul(radius)))
	}
}

// addArc adds the points of an arc, including the end point and, if
// includeStart is set, the start point.  sweep is in radians, positive
// values turn counter-clockwise.
func (o *Outliner) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	n := o.arcSegments(sweep)
	dt := sweep / float64(n)
	first := 1
	if includeStart {
		first = 0
	}
	for i := first; i <= n; i++ {
		o.ring = append(o.ring, center.Add(rotate(startDir, float64(i)*dt).Mul(radius)))
	}
}

// arcSegments returns the number of chords used for an arc of the given
// sweep.
func (o *Outliner) arcSegments(sweep float64) int {
	res := max(o.Resolution, 1)
	step := math.Pi / 2 / float64(res)
	return max(int(math.Ceil(math.Abs(sweep)/step-1e-9)), 1)
}

func rotate(v vec.Vec2, angle float64) vec.Vec2 {
	s, c := math.Sincos(angle)
	return vec.Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

func reverseSegments(segs []segment) {
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	for i := range segs {
		segs[i] = segs[i].reversed()
	}
}

// signedArea returns the shoelace area of the closed polygon pts.
// Counter-clockwise polygons have positive area.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func nearlyEqual(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
