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
	"math"

	"github.com/chewxy/math32"

	"seehuhn.de/go/lineart"
)

const (
	wobbleAmplitudeScale = 5
	wobbleFrequencyScale = 0.05
	wobblePhaseScale     = 5
)

// Wobble displaces every coordinate by a sine wave of the coordinate
// itself.
//
// Parameters: amplitude (1), scaled by 5; frequency (0.1,0.1,0.1), scaled
// by 0.05, a scalar applies to all axes; phase (0), scaled by 5.
type Wobble struct{}

func (*Wobble) Name() string { return "wobble" }

func (*Wobble) ParamNames() []string { return []string{"amplitude", "frequency", "phase"} }

func (*Wobble) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	amp := float32(p.Float("amplitude", 1) * wobbleAmplitudeScale)
	if amp == 0 || g.NumPoints() == 0 {
		return g
	}
	f := p.Vec3("frequency", [3]float64{0.1, 0.1, 0.1})
	kx := float32(2 * math.Pi * f[0] * wobbleFrequencyScale)
	ky := float32(2 * math.Pi * f[1] * wobbleFrequencyScale)
	kz := float32(2 * math.Pi * f[2] * wobbleFrequencyScale)
	phase := float32(p.Float("phase", 0) * wobblePhaseScale)

	return g.Map(func(q lineart.Point) lineart.Point {
		return lineart.Point{
			X: q.X + amp*math32.Sin(kx*q.X+phase),
			Y: q.Y + amp*math32.Sin(ky*q.Y+phase),
			Z: q.Z + amp*math32.Sin(kz*q.Z+phase),
		}
	})
}
