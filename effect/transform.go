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
	"math"

	"seehuhn.de/go/lineart"
)

const (
	// rotationThreshold is the angle (in radians) below which a rotation is
	// treated as the identity.
	rotationThreshold = 1e-10
)

// affine is the map v -> ((v-center)*scale) R^T + shift + center.
type affine struct {
	center [3]float64
	scale  [3]float64
	r      [3][3]float64
	shift  [3]float64
}

// rotationMatrix returns Rz·Ry·Rx for the given angles in radians.
func rotationMatrix(ax, ay, az float64) [3][3]float64 {
	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	sz, cz := math.Sincos(az)
	return [3][3]float64{
		{cy * cz, sx*sy*cz - cx*sz, cx*sy*cz + sx*sz},
		{cy * sz, sx*sy*sz + cx*cz, cx*sy*sz - sx*cz},
		{-sy, sx * cy, cx * cy},
	}
}

var identity3 = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (a *affine) apply(p lineart.Point) lineart.Point {
	x := (float64(p.X) - a.center[0]) * a.scale[0]
	y := (float64(p.Y) - a.center[1]) * a.scale[1]
	z := (float64(p.Z) - a.center[2]) * a.scale[2]
	r := &a.r
	return lineart.Point{
		X: float32(r[0][0]*x + r[0][1]*y + r[0][2]*z + a.shift[0] + a.center[0]),
		Y: float32(r[1][0]*x + r[1][1]*y + r[1][2]*z + a.shift[1] + a.center[1]),
		Z: float32(r[2][0]*x + r[2][1]*y + r[2][2]*z + a.shift[2] + a.center[2]),
	}
}

func (a *affine) applyAll(dst, src []lineart.Point) {
	for i, p := range src {
		dst[i] = a.apply(p)
	}
}

// turnsToRadians converts rotation parameters, given in full turns, to
// radians.  The second return value is false if all angles are negligible.
func turnsToRadians(turns [3]float64) ([3]float64, bool) {
	var rad [3]float64
	nonZero := false
	for i, t := range turns {
		rad[i] = t * 2 * math.Pi
		if math.Abs(rad[i]) >= rotationThreshold {
			nonZero = true
		}
	}
	return rad, nonZero
}

// Rotate rotates all points about a center.
//
// Parameters: center (0,0,0); rotate (0,0,0), the angles about the x, y
// and z axes in full turns.  The rotations are applied in the order x, y,
// z.
type Rotate struct{}

func (*Rotate) Name() string { return "rotate" }

func (*Rotate) ParamNames() []string { return []string{"center", "rotate"} }

func (*Rotate) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	rad, ok := turnsToRadians(p.Vec3("rotate", [3]float64{}))
	if !ok || g.NumPoints() == 0 {
		return g
	}
	a := &affine{
		center: p.Vec3("center", [3]float64{}),
		scale:  [3]float64{1, 1, 1},
		r:      rotationMatrix(rad[0], rad[1], rad[2]),
	}
	return g.Map(a.apply)
}

// Scale scales all points about a center.
//
// Parameters: center (0,0,0); scale (1,1,1).
type Scale struct{}

func (*Scale) Name() string { return "scale" }

func (*Scale) ParamNames() []string { return []string{"center", "scale"} }

func (*Scale) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	scale := p.Vec3("scale", [3]float64{1, 1, 1})
	if scale == [3]float64{1, 1, 1} || g.NumPoints() == 0 {
		return g
	}
	a := &affine{
		center: p.Vec3("center", [3]float64{}),
		scale:  scale,
		r:      identity3,
	}
	return g.Map(a.apply)
}

// Translate moves all points.
//
// Parameters: offset_x, offset_y, offset_z (0).
type Translate struct{}

func (*Translate) Name() string { return "translate" }

func (*Translate) ParamNames() []string { return []string{"offset_x", "offset_y", "offset_z"} }

func (*Translate) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	d := lineart.Point{
		X: float32(p.Float("offset_x", 0)),
		Y: float32(p.Float("offset_y", 0)),
		Z: float32(p.Float("offset_z", 0)),
	}
	if d == (lineart.Point{}) || g.NumPoints() == 0 {
		return g
	}
	return g.Map(func(q lineart.Point) lineart.Point { return q.Add(d) })
}

// Transform scales and then rotates all points about a center.
//
// Parameters: center (0,0,0); scale (1,1,1); rotate (0,0,0) in full
// turns.
type Transform struct{}

func (*Transform) Name() string { return "transform" }

func (*Transform) ParamNames() []string { return []string{"center", "scale", "rotate"} }

func (*Transform) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	scale := p.Vec3("scale", [3]float64{1, 1, 1})
	rad, rotated := turnsToRadians(p.Vec3("rotate", [3]float64{}))
	if g.NumPoints() == 0 || (!rotated && scale == [3]float64{1, 1, 1}) {
		return g
	}
	a := &affine{
		center: p.Vec3("center", [3]float64{}),
		scale:  scale,
		r:      identity3,
	}
	if rotated {
		a.r = rotationMatrix(rad[0], rad[1], rad[2])
	}
	return g.Map(a.apply)
}
