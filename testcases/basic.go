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

// shapeCases run each fixture shape through an empty pipeline.
var shapeCases = []TestCase{
	{Name: "square", Shape: rectangle(-1, -1, 1, 1)},
	{Name: "circle", Shape: circle(0, 0, 1)},
	{Name: "ellipse", Shape: ellipse(0, 0, 1.5, 0.75)},
	{Name: "hexagon", Shape: polygon(0, 0, 1, 6)},
	{Name: "star", Shape: star(0, 0, 1, 0.4, 5)},
	{Name: "s_curve", Shape: sCurve(-1, 0, 1, 0)},
	{Name: "zigzag", Shape: zigzag(-1, 0, 1, 0.3, 8)},
	{Name: "helix", Shape: helix(1, 0.5, 3, 60)},
	{Name: "tilted", Shape: tiltedSquare(1, 0.3)},
	{Name: "concentric", Shape: concentric(0, 0, 1, 0.5)},
}

var transformCases = []TestCase{
	{
		Name:   "rotate_quarter",
		Shape:  rectangle(0, 0, 1, 1),
		Stages: []Stage{stage("rotate", effect.Params{"rotate": []float64{0, 0, 0.25}})},
	},
	{
		Name:  "rotate_about_center",
		Shape: star(2, 2, 1, 0.4, 5),
		Stages: []Stage{stage("rotate", effect.Params{
			"rotate": []float64{0.1, 0.2, 0.3},
			"center": []float64{2, 2, 0},
		})},
	},
	{
		Name:   "scale_anisotropic",
		Shape:  circle(0, 0, 1),
		Stages: []Stage{stage("scale", effect.Params{"scale": []float64{2, 0.5, 1}})},
	},
	{
		Name:   "translate",
		Shape:  polygon(0, 0, 1, 6),
		Stages: []Stage{stage("translate", effect.Params{"offset_x": 3, "offset_z": -1})},
	},
	{
		Name:  "transform_combined",
		Shape: helix(1, 0.5, 2, 40),
		Stages: []Stage{stage("transform", effect.Params{
			"scale":  []float64{1.5, 1.5, 0.5},
			"rotate": []float64{0.25, 0, 0},
		})},
	},
	{
		Name:   "array_ring",
		Shape:  rectangle(1, -0.1, 1.2, 0.1),
		Stages: []Stage{stage("array", effect.Params{"n_duplicates": 0.8, "rotate": []float64{0.5, 0.5, 0.5 + 1.0/8}, "scale": 1})},
	},
	{
		Name:   "extrude_square",
		Shape:  rectangle(-1, -1, 1, 1),
		Stages: []Stage{stage("extrude", effect.Params{"distance": 0.01, "subdivisions": 0.2})},
	},
	{
		Name:  "pipeline_broadcast",
		Shape: star(0, 0, 1, 0.5, 6),
		Stages: []Stage{
			stage("scale", nil),
			stage("rotate", nil),
			stage("translate", nil),
		},
		Params: effect.Params{"scale": 2, "rotate": []float64{0, 0, 0.05}, "offset_y": 1},
	},
}
