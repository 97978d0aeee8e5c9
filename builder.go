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

// Builder accumulates polylines into fresh storage.  The zero value is
// ready to use.
type Builder struct {
	coords  []Point
	offsets []int32
}

// NewBuilder returns a builder with room for the given number of lines and
// points.
func NewBuilder(lines, points int) *Builder {
	b := &Builder{
		coords:  make([]Point, 0, points),
		offsets: make([]int32, 1, lines+1),
	}
	return b
}

// Add appends a copy of line as a new polyline.
func (b *Builder) Add(line []Point) {
	if len(b.offsets) == 0 {
		b.offsets = append(b.offsets, 0)
	}
	b.coords = append(b.coords, line...)
	b.offsets = append(b.offsets, int32(len(b.coords)))
}

// AddSegment appends the two-point line a-b.
func (b *Builder) AddSegment(a, c Point) {
	if len(b.offsets) == 0 {
		b.offsets = append(b.offsets, 0)
	}
	b.coords = append(b.coords, a, c)
	b.offsets = append(b.offsets, int32(len(b.coords)))
}

// AddGeometry appends all lines of g.
func (b *Builder) AddGeometry(g *Geometry) {
	for _, line := range g.Lines() {
		b.Add(line)
	}
}

// NumLines returns the number of lines added so far.
func (b *Builder) NumLines() int {
	if len(b.offsets) == 0 {
		return 0
	}
	return len(b.offsets) - 1
}

// Geometry returns the accumulated lines.  The builder must not be used
// afterwards.
func (b *Builder) Geometry() *Geometry {
	if len(b.offsets) == 0 {
		b.offsets = append(b.offsets, 0)
	}
	g := &Geometry{coords: b.coords, offsets: b.offsets}
	b.coords, b.offsets = nil, nil
	return g
}
