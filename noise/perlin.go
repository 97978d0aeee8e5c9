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

// Package noise implements three-dimensional gradient noise as described
// by Ken Perlin in "Improving Noise" (SIGGRAPH 2002).
package noise

import (
	"math"

	"golang.org/x/exp/constraints"
)

// referencePerm is the permutation from Ken Perlin's reference
// implementation.
var referencePerm = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// grad3 holds the twelve gradient directions, the midpoints of the edges of
// a cube.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Offsets added to the sample point for the y and z components of
// [Table.Vector].
const (
	OffsetY = 100.0
	OffsetZ = 200.0
)

// Table holds the lattice hash used by the noise function.  A Table is
// read-only after construction and may be shared between goroutines.
type Table struct {
	perm [512]int32
}

// NewTable returns the table built from the reference permutation.
func NewTable() *Table {
	t := &Table{}
	for i, p := range referencePerm {
		t.perm[i] = int32(p)
		t.perm[i+256] = int32(p)
	}
	return t
}

// At returns the noise value at (x, y, z).  The result lies roughly in
// the range [-1, 1] and is zero at all integer lattice points.
func (t *Table) At(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int32(int64(fx) & 255)
	Y := int32(int64(fy) & 255)
	Z := int32(int64(fz) & 255)
	x -= fx
	y -= fy
	z -= fz

	u, v, w := fade(x), fade(y), fade(z)

	p := &t.perm
	a := p[X] + Y
	aa := p[a&511] + Z
	ab := p[(a+1)&511] + Z
	b := p[(X+1)&255] + Y
	ba := p[b&511] + Z
	bb := p[(b+1)&511] + Z

	gAA := grad(p[aa&511], x, y, z)
	gBA := grad(p[ba&511], x-1, y, z)
	gAB := grad(p[ab&511], x, y-1, z)
	gBB := grad(p[bb&511], x-1, y-1, z)
	gAA1 := grad(p[(aa+1)&511], x, y, z-1)
	gBA1 := grad(p[(ba+1)&511], x-1, y, z-1)
	gAB1 := grad(p[(ab+1)&511], x, y-1, z-1)
	gBB1 := grad(p[(bb+1)&511], x-1, y-1, z-1)

	return lerp(
		lerp(lerp(gAA, gBA, u), lerp(gAB, gBB, u), v),
		lerp(lerp(gAA1, gBA1, u), lerp(gAB1, gBB1, u), v),
		w)
}

// Vector returns three decorrelated noise values at (x, y, z), obtained by
// shifting the sample point by 0, [OffsetY] and [OffsetZ] along every
// axis.
func (t *Table) Vector(x, y, z float64) (nx, ny, nz float64) {
	nx = t.At(x, y, z)
	ny = t.At(x+OffsetY, y+OffsetY, z+OffsetY)
	nz = t.At(x+OffsetZ, y+OffsetZ, z+OffsetZ)
	return nx, ny, nz
}

func grad(hash int32, x, y, z float64) float64 {
	g := &grad3[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}

// fade is the quintic smoothstep 6t⁵-15t⁴+10t³.
func fade[T constraints.Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}
