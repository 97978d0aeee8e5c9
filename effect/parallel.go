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
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/lineart"
)

// Parallel configures data-parallel execution for effects which process
// lines (or points) independently.  Results are always assembled in input
// order, so the output does not depend on the number of workers.
type Parallel struct {
	// Workers bounds the number of goroutines.  Zero means
	// runtime.GOMAXPROCS(0), one runs everything on the calling goroutine.
	Workers int
}

// SetWorkers sets the worker count.
func (pp *Parallel) SetWorkers(n int) {
	pp.Workers = n
}

func (pp Parallel) workers() int {
	if pp.Workers > 0 {
		return pp.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// split divides [0, n) into contiguous ranges of at least minChunk
// elements.
func (pp Parallel) split(n, minChunk int) [][2]int {
	if n <= 0 {
		return nil
	}
	w := pp.workers()
	chunks := 1
	if w > 1 {
		chunks = min(4*w, (n+minChunk-1)/minChunk)
	}
	res := make([][2]int, 0, chunks)
	for k := range chunks {
		lo := k * n / chunks
		hi := (k + 1) * n / chunks
		if hi > lo {
			res = append(res, [2]int{lo, hi})
		}
	}
	return res
}

// run calls fn once per range, concurrently if there is more than one
// range.
func (pp Parallel) run(ranges [][2]int, fn func(k, lo, hi int)) {
	if len(ranges) == 1 {
		fn(0, ranges[0][0], ranges[0][1])
		return
	}
	var eg errgroup.Group
	eg.SetLimit(pp.workers())
	for k, r := range ranges {
		eg.Go(func() error {
			fn(k, r[0], r[1])
			return nil
		})
	}
	eg.Wait()
}

// mapLines calls fn for every line of g and collects the lines written to
// the builders.  Every worker gets its own state from newState.
func mapLines[S any](pp Parallel, g *lineart.Geometry, newState func() S, fn func(s S, line []lineart.Point, b *lineart.Builder)) *lineart.Geometry {
	ranges := pp.split(g.NumLines(), 1)
	parts := make([]*lineart.Geometry, len(ranges))
	pp.run(ranges, func(k, lo, hi int) {
		s := newState()
		b := &lineart.Builder{}
		for i := lo; i < hi; i++ {
			fn(s, g.Line(i), b)
		}
		parts[k] = b.Geometry()
	})
	return join(parts)
}

// join concatenates geometries.
func join(parts []*lineart.Geometry) *lineart.Geometry {
	switch len(parts) {
	case 0:
		return lineart.Empty()
	case 1:
		return parts[0]
	}
	lines, points := 0, 0
	for _, p := range parts {
		lines += p.NumLines()
		points += p.NumPoints()
	}
	b := lineart.NewBuilder(lines, points)
	for _, p := range parts {
		b.AddGeometry(p)
	}
	return b.Geometry()
}

type workerSetter interface {
	SetWorkers(n int)
}

type unwrapper interface {
	Unwrap() Effect
}

// setWorkers looks through wrappers for an effect with a worker setting.
func setWorkers(e Effect, n int) {
	for e != nil {
		if ws, ok := e.(workerSetter); ok {
			ws.SetWorkers(n)
			return
		}
		u, ok := e.(unwrapper)
		if !ok {
			return
		}
		e = u.Unwrap()
	}
}

// SetWorkers sets the worker count of e, looking through [Cached] and
// [Bound] wrappers.  Effects which always run sequentially are not
// affected.
func SetWorkers(e Effect, n int) {
	setWorkers(e, n)
}

// withCoords returns a geometry with new vertices and the line structure
// of g.
func withCoords(g *lineart.Geometry, coords []lineart.Point) *lineart.Geometry {
	res, err := lineart.New(coords, g.Offsets())
	if err != nil {
		// coords has the same length as g.Coords()
		panic(err)
	}
	return res
}
