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

package testcases

import (
	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/effect"
)

// degenerateShape combines empty lines, single points, repeated points
// and collinear points.
func degenerateShape() *lineart.Geometry {
	return lineart.FromLines([][]lineart.Point{
		nil,
		{p3(0, 0, 0)},
		{p3(1, 1, 0), p3(1, 1, 0)},
		{p3(0, 0, 0), p3(1, 0, 0), p3(2, 0, 0), p3(0, 0, 0)},
		{p3(2, 2, 2), p3(2, 2, 2), p3(2, 2, 2), p3(2, 2, 2)},
		nil,
	})
}

var degenerateCases = []TestCase{
	{Name: "empty", Shape: lineart.Empty(), Stages: allStages()},
	{Name: "mixed", Shape: degenerateShape(), Stages: allStages()},
	{
		Name:   "collinear_buffer",
		Shape:  degenerateShape(),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.02})},
	},
	{
		Name:   "collinear_webify",
		Shape:  degenerateShape(),
		Stages: []Stage{stage("webify", effect.Params{"num_candidate_lines": 0.02})},
	},
}

// allStages returns one stage of every built-in effect, with mild
// parameters.
func allStages() []Stage {
	names := effect.DefaultRegistry().Names()
	stages := make([]Stage, len(names))
	for i, name := range names {
		stages[i] = stage(name, effect.Params{
			"n_duplicates":        0.1,
			"num_candidate_lines": 0.02,
			"distance":            0.01,
			"density":             0.05,
			"subdivisions":        0.2,
			"n_divisions":         0.2,
		})
	}
	return stages
}

var largeCases = []TestCase{
	{
		Name:   "grid_buffer_filling",
		Shape:  rectangleGrid(16, 16, 32, 32, 0.2),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.004}), stage("filling", nil)},
	},
	{
		Name:   "helix_noise",
		Shape:  helix(10, 1, 20, 200),
		Stages: []Stage{stage("noise", effect.Params{"intensity": 0.05})},
	},
	{
		Name:   "grid_webify",
		Shape:  rectangleGrid(6, 6, 12, 12, 0.2),
		Stages: []Stage{stage("webify", effect.Params{"num_candidate_lines": 0.04})},
	},
}
