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
	"time"

	"seehuhn.de/go/lineart"
)

// Pipeline applies a sequence of effects in order.  Every stage receives
// the same parameters.  An empty pipeline returns its input.
//
// A Pipeline is itself an [Effect], so pipelines can be nested.
type Pipeline struct {
	stages []Effect
}

// NewPipeline returns a pipeline with the given stages.
func NewPipeline(effects ...Effect) *Pipeline {
	return &Pipeline{stages: append([]Effect(nil), effects...)}
}

// Name implements [Effect].
func (pl *Pipeline) Name() string {
	return "pipeline"
}

// Add appends a stage.
func (pl *Pipeline) Add(e Effect) *Pipeline {
	pl.stages = append(pl.stages, e)
	return pl
}

// Remove deletes the first stage which is identical to e.  Stages are
// compared with ==, so e must have a comparable dynamic type.
func (pl *Pipeline) Remove(e Effect) *Pipeline {
	for i, s := range pl.stages {
		if s == e {
			pl.stages = append(pl.stages[:i], pl.stages[i+1:]...)
			break
		}
	}
	return pl
}

// Clear removes all stages.
func (pl *Pipeline) Clear() *Pipeline {
	clear(pl.stages)
	pl.stages = pl.stages[:0]
	return pl
}

// Len returns the number of stages.
func (pl *Pipeline) Len() int {
	return len(pl.stages)
}

// At returns stage i.
func (pl *Pipeline) At(i int) Effect {
	return pl.stages[i]
}

// Apply folds g through all stages.
func (pl *Pipeline) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	log := lineart.Logger()
	for i, e := range pl.stages {
		start := time.Now()
		g = e.Apply(g, p)
		log.Debug("pipeline stage",
			"stage", i,
			"effect", e.Name(),
			"lines", g.NumLines(),
			"points", g.NumPoints(),
			"elapsed", time.Since(start))
	}
	return g
}

// ClearCaches clears the result caches of all stages.
func (pl *Pipeline) ClearCaches() {
	for _, e := range pl.stages {
		if cc, ok := e.(cacheClearer); ok {
			cc.ClearCache()
		}
	}
}

// SetWorkers passes the worker count on to all stages which run in
// parallel.
func (pl *Pipeline) SetWorkers(n int) {
	for _, e := range pl.stages {
		setWorkers(e, n)
	}
}
