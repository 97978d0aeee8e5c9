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

	"seehuhn.de/go/geom/vec"
)

// Plane maps a polyline into the z=0 plane and back.  The plane is
// determined by the first three vertices of the line: the normal of the
// first two edges is rotated onto the z axis, and the rotated first vertex
// is shifted to z=0.
//
// The zero value is the identity map.
type Plane struct {
	r       [3][3]float64 // rotation, applied as r·p
	zOffset float64
	rotated bool
}

// NewPlane returns the projection for the given polyline.  Lines with fewer
// than three vertices, or whose first two edges are parallel, get the
// identity map.
func NewPlane(pts []Point) Plane {
	if len(pts) < 3 {
		return Plane{}
	}
	p0 := toVec3(pts[0])
	e1 := toVec3(pts[1]).sub(p0)
	e2 := toVec3(pts[2]).sub(p0)
	n := e1.cross(e2)
	norm := n.length()
	if norm == 0 {
		return Plane{}
	}
	n = n.scale(1 / norm)

	axis := n.cross(vec3{0, 0, 1})
	axisNorm := axis.length()
	if axisNorm == 0 {
		return Plane{zOffset: p0[2]}
	}
	axis = axis.scale(1 / axisNorm)

	cosA := max(-1, min(1, n[2]))
	theta := math.Acos(cosA)
	s, c := math.Sincos(theta)

	// Rodrigues: R = I + sin(θ)K + (1-cos(θ))K²
	k := [3][3]float64{
		{0, -axis[2], axis[1]},
		{axis[2], 0, -axis[0]},
		{-axis[1], axis[0], 0},
	}
	var pl Plane
	for i := range 3 {
		for j := range 3 {
			var k2 float64
			for l := range 3 {
				k2 += k[i][l] * k[l][j]
			}
			pl.r[i][j] = s*k[i][j] + (1-c)*k2
		}
		pl.r[i][i] += 1
	}
	pl.rotated = true
	pl.zOffset = pl.rotate(p0)[2]
	return pl
}

// Identity reports whether the plane leaves points unchanged.
func (pl Plane) Identity() bool {
	return !pl.rotated && pl.zOffset == 0
}

// Forward maps p into the local coordinate system.
func (pl Plane) Forward(p Point) Point {
	q := pl.rotate(toVec3(p))
	q[2] -= pl.zOffset
	return Point{float32(q[0]), float32(q[1]), float32(q[2])}
}

// ToXY appends the local x and y coordinates of all points to dst.
func (pl Plane) ToXY(dst []vec.Vec2, pts []Point) []vec.Vec2 {
	for _, p := range pts {
		q := pl.rotate(toVec3(p))
		dst = append(dst, vec.Vec2{X: q[0], Y: q[1]})
	}
	return dst
}

// Restore maps a point of the local plane back to 3-D space.
func (pl Plane) Restore(v vec.Vec2) Point {
	q := vec3{v.X, v.Y, pl.zOffset}
	if pl.rotated {
		// inverse rotation: p = Rᵀ·q
		r := &pl.r
		q = vec3{
			r[0][0]*q[0] + r[1][0]*q[1] + r[2][0]*q[2],
			r[0][1]*q[0] + r[1][1]*q[1] + r[2][1]*q[2],
			r[0][2]*q[0] + r[1][2]*q[1] + r[2][2]*q[2],
		}
	}
	return Point{float32(q[0]), float32(q[1]), float32(q[2])}
}

// RestoreAll appends the restored versions of all vs to dst.
func (pl Plane) RestoreAll(dst []Point, vs []vec.Vec2) []Point {
	for _, v := range vs {
		dst = append(dst, pl.Restore(v))
	}
	return dst
}

func (pl Plane) rotate(p vec3) vec3 {
	if !pl.rotated {
		return p
	}
	r := &pl.r
	return vec3{
		r[0][0]*p[0] + r[0][1]*p[1] + r[0][2]*p[2],
		r[1][0]*p[0] + r[1][1]*p[1] + r[1][2]*p[2],
		r[2][0]*p[0] + r[2][1]*p[1] + r[2][2]*p[2],
	}
}

// vec3 is a double precision helper for the rotation arithmetic.
type vec3 [3]float64

func toVec3(p Point) vec3 {
	return vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

func (a vec3) sub(b vec3) vec3 {
	return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a vec3) scale(f float64) vec3 {
	return vec3{a[0] * f, a[1] * f, a[2] * f}
}

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec3) length() float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}
