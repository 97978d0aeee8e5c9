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
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/chewxy/math32"
)

// ErrInvalidOffsets is returned by [New] when the offsets do not describe a
// partition of the coordinate array.
var ErrInvalidOffsets = errors.New("lineart: invalid offsets")

// Point is a vertex in 3-D space.
type Point struct {
	X, Y, Z float32
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float32) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}

// Dot returns the scalar product of p and q.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the vector product p×q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean norm of p.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	return p.Sub(q).Length()
}

// Lerp returns the point (1-t)*p + t*q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
		p.Z + (q.Z-p.Z)*t,
	}
}

// Geometry is a collection of polylines stored in structure-of-arrays form.
// All vertices live in one contiguous slice; line i consists of
// coords[offsets[i]:offsets[i+1]].
//
// A Geometry is treated as an immutable value.  Effects either return their
// input unchanged or construct a new Geometry.  A nil *Geometry behaves
// like the empty geometry in all read-only methods.
type Geometry struct {
	coords  []Point
	offsets []int32
}

// Empty returns a geometry with no lines.
func Empty() *Geometry {
	return &Geometry{offsets: []int32{0}}
}

// New creates a geometry from a vertex array and line offsets.  The slices
// are used without copying.  The offsets must start at 0, be
// non-decreasing and end at len(coords).  An empty offsets slice is accepted
// for empty coords and is replaced by [0].
func New(coords []Point, offsets []int32) (*Geometry, error) {
	if len(offsets) == 0 {
		if len(coords) != 0 {
			return nil, fmt.Errorf("%w: no offsets for %d points", ErrInvalidOffsets, len(coords))
		}
		offsets = []int32{0}
	}
	g := &Geometry{coords: coords, offsets: offsets}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromLines builds a geometry from a list of polylines.  Empty and
// single-point lines are kept.
func FromLines(lines [][]Point) *Geometry {
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	coords := make([]Point, 0, total)
	offsets := make([]int32, 1, len(lines)+1)
	for _, l := range lines {
		coords = append(coords, l...)
		offsets = append(offsets, int32(len(coords)))
	}
	return &Geometry{coords: coords, offsets: offsets}
}

// Validate checks the offsets invariant.
func (g *Geometry) Validate() error {
	if g == nil {
		return nil
	}
	if len(g.offsets) == 0 {
		return fmt.Errorf("%w: missing leading zero", ErrInvalidOffsets)
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0] = %d", ErrInvalidOffsets, g.offsets[0])
	}
	for i := 1; i < len(g.offsets); i++ {
		if g.offsets[i] < g.offsets[i-1] {
			return fmt.Errorf("%w: offsets[%d] = %d < offsets[%d] = %d",
				ErrInvalidOffsets, i, g.offsets[i], i-1, g.offsets[i-1])
		}
	}
	if last := g.offsets[len(g.offsets)-1]; int(last) != len(g.coords) {
		return fmt.Errorf("%w: last offset %d != %d points",
			ErrInvalidOffsets, last, len(g.coords))
	}
	return nil
}

// Arrays returns the underlying vertex and offset arrays.  If copy is false,
// the returned slices alias the geometry's storage and must not be modified.
func (g *Geometry) Arrays(copy bool) ([]Point, []int32) {
	if g == nil {
		return nil, []int32{0}
	}
	if !copy {
		return g.coords, g.offsets
	}
	return slices.Clone(g.coords), slices.Clone(g.offsets)
}

// Coords returns the vertex array without copying.
func (g *Geometry) Coords() []Point {
	if g == nil {
		return nil
	}
	return g.coords
}

// Offsets returns the offset array without copying.
func (g *Geometry) Offsets() []int32 {
	if g == nil || len(g.offsets) == 0 {
		return []int32{0}
	}
	return g.offsets
}

// NumLines returns the number of polylines.
func (g *Geometry) NumLines() int {
	if g == nil || len(g.offsets) == 0 {
		return 0
	}
	return len(g.offsets) - 1
}

// NumPoints returns the total number of vertices.
func (g *Geometry) NumPoints() int {
	if g == nil {
		return 0
	}
	return len(g.coords)
}

// Line returns the vertices of line i as a view into the vertex array.
func (g *Geometry) Line(i int) []Point {
	start, end := g.offsets[i], g.offsets[i+1]
	return g.coords[start:end:end]
}

// Lines iterates over all polylines in order.
func (g *Geometry) Lines() iter.Seq2[int, []Point] {
	return func(yield func(int, []Point) bool) {
		for i := range g.NumLines() {
			if !yield(i, g.Line(i)) {
				return
			}
		}
	}
}

// Map returns a new geometry with fn applied to every vertex.  The offsets
// are shared with g.
func (g *Geometry) Map(fn func(Point) Point) *Geometry {
	if g == nil {
		return Empty()
	}
	coords := make([]Point, len(g.coords))
	for i, p := range g.coords {
		coords[i] = fn(p)
	}
	return &Geometry{coords: coords, offsets: g.Offsets()}
}

// Concat returns the lines of a followed by the lines of b.
func Concat(a, b *Geometry) *Geometry {
	na := a.NumPoints()
	coords := make([]Point, 0, na+b.NumPoints())
	coords = append(coords, a.Coords()...)
	coords = append(coords, b.Coords()...)

	offsets := make([]int32, 0, a.NumLines()+b.NumLines()+1)
	offsets = append(offsets, a.Offsets()...)
	for _, o := range b.Offsets()[1:] {
		offsets = append(offsets, o+int32(na))
	}
	return &Geometry{coords: coords, offsets: offsets}
}

// Bounds returns the axis-aligned bounding box of all vertices.  For an
// empty geometry, ok is false.
func (g *Geometry) Bounds() (lo, hi Point, ok bool) {
	if g.NumPoints() == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = g.coords[0], g.coords[0]
	for _, p := range g.coords[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		lo.Z = min(lo.Z, p.Z)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
		hi.Z = max(hi.Z, p.Z)
	}
	return lo, hi, true
}

// Equal reports whether g and h hold the same lines with the same
// vertices.
func (g *Geometry) Equal(h *Geometry) bool {
	return slices.Equal(g.Coords(), h.Coords()) && slices.Equal(g.Offsets(), h.Offsets())
}

// String returns a short summary for debugging output.
func (g *Geometry) String() string {
	return fmt.Sprintf("Geometry(%d lines, %d points)", g.NumLines(), g.NumPoints())
}
