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
	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/noise"
)

const (
	noiseIntensityScale = 10.0
	noiseFrequencyScale = 0.1
	noiseTimeScale      = 10.0
	noiseTimeOffset     = 1000.0

	noiseChunk = 4096
)

// Noise displaces every point by a vector of three decorrelated Perlin
// noise values.
//
// Parameters: intensity (0.5), scaled by 10; frequency (0.5,0.5,0.5),
// scaled by 0.1, a scalar applies to all axes; t (0), the time, which
// shifts the sampling point by 10*t.
type Noise struct {
	Parallel
	table *noise.Table
}

// NewNoise returns a noise effect using the given table.  If t is nil, the
// default table is used.
func NewNoise(t *noise.Table) *Noise {
	if t == nil {
		t = noise.NewTable()
	}
	return &Noise{table: t}
}

func (*Noise) Name() string { return "noise" }

func (*Noise) ParamNames() []string { return []string{"intensity", "frequency", "t"} }

func (n *Noise) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	intensity := p.Float("intensity", 0.5)
	if intensity == 0 || g.NumPoints() == 0 {
		return g
	}
	if n.table == nil {
		n.table = noise.NewTable()
	}
	amp := float32(intensity * noiseIntensityScale)
	freq := p.Vec3("frequency", [3]float64{0.5, 0.5, 0.5})
	fx := freq[0] * noiseFrequencyScale
	fy := freq[1] * noiseFrequencyScale
	fz := freq[2] * noiseFrequencyScale
	shift := float32(p.Float("t", 0)*noiseTimeScale + noiseTimeOffset)

	src := g.Coords()
	dst := make([]lineart.Point, len(src))
	n.run(n.split(len(src), noiseChunk), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			q := src[i]
			nx, ny, nz := n.table.Vector(
				float64(q.X+shift)*fx,
				float64(q.Y+shift)*fy,
				float64(q.Z+shift)*fz)
			dst[i] = lineart.Point{
				X: q.X + float32(nx)*amp,
				Y: q.Y + float32(ny)*amp,
				Z: q.Z + float32(nz)*amp,
			}
		}
	})
	return withCoords(g, dst)
}
