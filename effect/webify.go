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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/web"
)

const (
	maxCandidateLines       = 500
	maxRelaxationIterations = 50
	maxRelaxationStep       = 0.5
)

// Webify fills every closed line with a web of strings.  The line is
// mapped into its own plane and treated as a closed polygon (a repeated
// end point is dropped).  Pseudo-random chords are cut against the growing
// graph, the inserted nodes are relaxed by spring forces, and the graph is
// finally decomposed into polylines.  Lines with fewer than three distinct
// points are passed through.
//
// Parameters: num_candidate_lines (0.5), scaled by 500;
// relaxation_iterations (0.5), scaled by 50; step (0.5), scaled by 0.5.
type Webify struct {
	Parallel
}

func (*Webify) Name() string { return "webify" }

func (*Webify) ParamNames() []string {
	return []string{"num_candidate_lines", "relaxation_iterations", "step"}
}

func (e *Webify) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	if g.NumLines() == 0 {
		return g
	}
	numLines := int(p.Float("num_candidate_lines", 0.5) * maxCandidateLines)
	iterations := int(p.Float("relaxation_iterations", 0.5) * maxRelaxationIterations)
	step := p.Float("step", 0.5) * maxRelaxationStep

	type state struct {
		out []lineart.Point
	}
	newState := func() *state { return &state{} }
	return mapLines(e.Parallel, g, newState, func(s *state, line []lineart.Point, b *lineart.Builder) {
		curve := line
		if len(curve) >= 2 && curve[0] == curve[len(curve)-1] {
			curve = curve[:len(curve)-1]
		}
		if len(curve) < 3 {
			b.Add(line)
			return
		}

		pl := lineart.NewPlane(curve)
		wg := web.New(pl.ToXY(make([]vec.Vec2, 0, len(curve)), curve))
		wg.AddCandidates(numLines)
		wg.Relax(iterations, step)

		nodes := wg.Nodes()
		for _, path := range wg.Trace() {
			s.out = s.out[:0]
			for _, idx := range path {
				s.out = append(s.out, pl.Restore(nodes[idx]))
			}
			b.Add(s.out)
		}
	})
}
