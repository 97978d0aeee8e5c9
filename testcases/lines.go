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
	"seehuhn.de/go/lineart/effect"
)

var lineCases = []TestCase{
	{
		Name:   "subdivide_default",
		Shape:  zigzag(-1, 0, 1, 0.3, 8),
		Stages: []Stage{stage("subdivide", nil)},
	},
	{
		Name:   "subdivide_max",
		Shape:  rectangle(-1, -1, 1, 1),
		Stages: []Stage{stage("subdivide", effect.Params{"n_divisions": 1})},
	},
	{
		Name:   "trim_middle",
		Shape:  circle(0, 0, 1),
		Stages: []Stage{stage("trim", effect.Params{"start_param": 0.25, "end_param": 0.75})},
	},
	{
		Name:   "dashify_circle",
		Shape:  circle(0, 0, 1),
		Stages: []Stage{stage("dashify", effect.Params{"dash_length": 0.2, "gap_length": 0.1})},
	},
	{
		Name:   "connect_open",
		Shape:  horizontalLines(5, -1, 1, 0.25),
		Stages: []Stage{stage("connect", nil)},
	},
	{
		Name:   "connect_cyclic_centripetal",
		Shape:  horizontalLines(4, -1, 1, 0.5),
		Stages: []Stage{stage("connect", effect.Params{"cyclic": true, "alpha": 0.25})},
	},
	{
		Name:  "desolve_sweep",
		Shape: rectangleGrid(3, 3, 3, 3, 0),
		Stages: []Stage{
			stage("desolve", nil),
			stage("sweep", nil),
		},
	},
	{
		Name:   "culling_clip",
		Shape:  star(0, 0, 1.5, 0.5, 7),
		Stages: []Stage{stage("culling", nil)},
	},
	{
		Name:   "culling_remove",
		Shape:  rectangleGrid(4, 4, 3, 3, 0.1),
		Stages: []Stage{stage("culling", effect.Params{"mode": "remove"})},
	},
}

var outlineCases = []TestCase{
	{
		Name:   "buffer_miter",
		Shape:  rectangle(-1, -1, 1, 1),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.01, "join_style": 0})},
	},
	{
		Name:   "buffer_round",
		Shape:  star(0, 0, 1, 0.4, 5),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.005, "join_style": 0.5})},
	},
	{
		Name:   "buffer_bevel",
		Shape:  polygon(0, 0, 1, 3),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.01, "join_style": 1})},
	},
	{
		Name:   "buffer_open",
		Shape:  zigzag(-1, 0, 1, 0.3, 8),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.004, "resolution": 1})},
	},
	{
		Name:   "buffer_tilted",
		Shape:  tiltedSquare(1, 0.3),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.005})},
	},
	{
		Name:   "buffer_nested",
		Shape:  concentric(0, 0, 1, 0.5),
		Stages: []Stage{stage("buffer", effect.Params{"distance": 0.002, "join_style": 0.5})},
	},
	{
		Name:   "boldify_s_curve",
		Shape:  sCurve(-1, 0, 1, 0),
		Stages: []Stage{stage("boldify", effect.Params{"boldness": 0.1})},
	},
}

var fillCases = []TestCase{
	{
		Name:   "filling_lines",
		Shape:  circle(0, 0, 1),
		Stages: []Stage{stage("filling", effect.Params{"density": 0.2})},
	},
	{
		Name:   "filling_cross_rotated",
		Shape:  star(0, 0, 1, 0.4, 5),
		Stages: []Stage{stage("filling", effect.Params{"pattern": "cross", "density": 0.3, "angle": 0.125})},
	},
	{
		Name:   "filling_dots",
		Shape:  ellipse(0, 0, 1.5, 0.75),
		Stages: []Stage{stage("filling", effect.Params{"pattern": "dots", "density": 0.2})},
	},
	{
		Name:   "filling_tilted",
		Shape:  tiltedSquare(1, 0.3),
		Stages: []Stage{stage("filling", effect.Params{"density": 0.1})},
	},
	{
		Name:  "webify_circle",
		Shape: circle(0, 0, 1),
		Stages: []Stage{stage("webify", effect.Params{
			"num_candidate_lines":   0.1,
			"relaxation_iterations": 0.2,
		})},
	},
	{
		Name:   "webify_star",
		Shape:  star(0, 0, 1, 0.4, 5),
		Stages: []Stage{stage("webify", effect.Params{"num_candidate_lines": 0.05})},
	},
	{
		Name:  "buffer_then_filling",
		Shape: zigzag(-1, 0, 1, 0.3, 4),
		Stages: []Stage{
			stage("buffer", effect.Params{"distance": 0.004}),
			stage("filling", effect.Params{"density": 0.3}),
		},
	},
}

var distortCases = []TestCase{
	{
		Name:   "noise_default",
		Shape:  circle(0, 0, 10),
		Stages: []Stage{stage("noise", nil)},
	},
	{
		Name:   "noise_animated",
		Shape:  helix(5, 2, 2, 60),
		Stages: []Stage{stage("noise", effect.Params{"intensity": 0.1, "frequency": []float64{1, 1, 0}})},
		Params: effect.Params{"t": 0.4},
	},
	{
		Name:   "wobble",
		Shape:  rectangleGrid(2, 2, 20, 20, 1),
		Stages: []Stage{stage("subdivide", effect.Params{"n_divisions": 0.3}), stage("wobble", nil)},
	},
	{
		Name:   "collapse",
		Shape:  polygon(0, 0, 1, 6),
		Stages: []Stage{stage("collapse", effect.Params{"intensity": 0.05, "seed": 3})},
	},
}
