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

const maxDuplicates = 10

// Array adds transformed copies of the input.  Each copy is obtained from
// the previous one by scaling, rotating and shifting about a center, so
// that the transformations accumulate along the array.
//
// Parameters: n_duplicates (0.5), scaled to 0-10 copies; offset (0,0,0),
// the shift of copy k is k*offset; rotate (0.5,0.5,0.5), where 0.5 means
// no rotation and the rotation of copy k is k*(rotate-0.5) full turns;
// scale (0.5,0.5,0.5), the scale factor is multiplied by this for every
// copy; center (0,0,0).
type Array struct{}

func (*Array) Name() string { return "array" }

func (*Array) ParamNames() []string {
	return []string{"n_duplicates", "offset", "rotate", "scale", "center"}
}

func (*Array) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	copies := int(p.Float("n_duplicates", 0.5) * maxDuplicates)
	if copies <= 0 || g.NumPoints() == 0 {
		return g
	}
	offset := p.Vec3("offset", [3]float64{})
	rotate := p.Vec3("rotate", [3]float64{0.5, 0.5, 0.5})
	scale := p.Vec3("scale", [3]float64{0.5, 0.5, 0.5})
	center := p.Vec3("center", [3]float64{})

	var rad [3]float64
	for i := range 3 {
		rad[i] = (rotate[i] - 0.5) * 2 * math.Pi
	}

	src, offsets := g.Arrays(false)
	n := len(src)
	coords := make([]lineart.Point, (copies+1)*n)
	copy(coords, src)
	outOffsets := make([]int32, 1, copies*(len(offsets)-1)+len(offsets))
	outOffsets = append(outOffsets, offsets[1:]...)

	curScale := [3]float64{1, 1, 1}
	for k := 1; k <= copies; k++ {
		a := &affine{center: center}
		fk := float64(k)
		for i := range 3 {
			curScale[i] *= scale[i]
			a.scale[i] = curScale[i]
			a.shift[i] = offset[i] * fk
		}
		a.r = rotationMatrix(rad[0]*fk, rad[1]*fk, rad[2]*fk)
		a.applyAll(coords[k*n:(k+1)*n], coords[(k-1)*n:k*n])
		for _, o := range offsets[1:] {
			outOffsets = append(outOffsets, o+int32(k*n))
		}
	}

	res, err := lineart.New(coords, outOffsets)
	if err != nil {
		// each copy repeats the valid offsets of g
		panic(err)
	}
	return res
}
