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

// Package testcases provides fixture shapes and effect scenarios, shared
// by the tests of several packages and by the reference generators in the
// sub-directories.
package testcases

import (
	"fmt"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/effect"
)

// TestCase defines one effect scenario.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Shape  *lineart.Geometry // the input geometry
	Stages []Stage           // the pipeline, applied in order
	Params effect.Params     // parameters broadcast to all stages
}

// Stage is a pipeline stage with its fixed parameters.
type Stage struct {
	Effect string
	Params effect.Params
}

// Pipeline builds the pipeline for tc from the effects in reg.
func (tc TestCase) Pipeline(reg *effect.Registry) (*effect.Pipeline, error) {
	pl := effect.NewPipeline()
	for i, s := range tc.Stages {
		e, err := reg.New(s.Effect)
		if err != nil {
			return nil, fmt.Errorf("%s: stage %d: %w", tc.Name, i, err)
		}
		if len(s.Params) > 0 {
			e = &effect.Bound{Effect: e, Fixed: s.Params}
		}
		pl.Add(e)
	}
	return pl, nil
}

// Run applies the pipeline of tc to its shape.
func (tc TestCase) Run(reg *effect.Registry) (*lineart.Geometry, error) {
	pl, err := tc.Pipeline(reg)
	if err != nil {
		return nil, err
	}
	return pl.Apply(tc.Shape, tc.Params), nil
}

// stage is a helper to create a Stage.
func stage(name string, p effect.Params) Stage {
	return Stage{Effect: name, Params: p}
}
