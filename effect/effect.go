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

// Package effect implements the geometry effects and their composition.
//
// An [Effect] maps a [lineart.Geometry] and a set of named parameters to a
// new geometry.  Effects never modify their input: they either return it
// unchanged or build a new geometry.  Numeric parameters are given in the
// unit interval and rescaled by each effect to its own range, so that a
// single set of parameters can drive a whole [Pipeline].
//
// [Cached] adds a result cache to any effect, [Bound] fixes parameters for
// one pipeline stage, and a [Registry] maps effect names to constructors.
package effect

import (
	"maps"

	"seehuhn.de/go/lineart"
)

// Effect transforms a geometry.  Implementations ignore parameters they do
// not recognise, so that one parameter set can be broadcast to every stage
// of a pipeline.
type Effect interface {
	Name() string
	Apply(g *lineart.Geometry, p Params) *lineart.Geometry
}

// ParamNamer is implemented by effects which know the full list of
// parameters they read.  [Cached] uses this to leave unrelated parameters
// out of the cache key.
type ParamNamer interface {
	ParamNames() []string
}

// Params holds named effect parameters.  Values are numbers, vectors
// (slices or arrays of numbers), strings or booleans.  The getters coerce
// between these forms and fall back to the given default if a value is
// missing or has an unusable type.
type Params map[string]any

// With returns a new parameter set containing p overlaid by q.
func (p Params) With(q Params) Params {
	res := make(Params, len(p)+len(q))
	maps.Copy(res, p)
	maps.Copy(res, q)
	return res
}

// Float returns a numeric parameter.  For vectors, the first component is
// used.
func (p Params) Float(name string, def float64) float64 {
	v, ok := p[name]
	if !ok {
		return def
	}
	if x, ok := asScalar(v); ok {
		return x
	}
	if xs, ok := asFloats(v); ok && len(xs) > 0 {
		return xs[0]
	}
	return def
}

// Int returns a numeric parameter, truncated towards zero.
func (p Params) Int(name string, def int) int {
	if _, ok := p[name]; !ok {
		return def
	}
	return int(p.Float(name, float64(def)))
}

// Vec3 returns a three-component parameter.  Scalars and one-element
// vectors are broadcast to all three components.
func (p Params) Vec3(name string, def [3]float64) [3]float64 {
	v, ok := p[name]
	if !ok {
		return def
	}
	if x, ok := asScalar(v); ok {
		return [3]float64{x, x, x}
	}
	xs, ok := asFloats(v)
	if !ok {
		return def
	}
	switch len(xs) {
	case 1:
		return [3]float64{xs[0], xs[0], xs[0]}
	case 3:
		return [3]float64{xs[0], xs[1], xs[2]}
	default:
		return def
	}
}

// Bool returns a boolean parameter.
func (p Params) Bool(name string, def bool) bool {
	if b, ok := p[name].(bool); ok {
		return b
	}
	return def
}

// String returns a string parameter.
func (p Params) String(name, def string) string {
	if s, ok := p[name].(string); ok {
		return s
	}
	return def
}

func asScalar(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// asFloats flattens a numeric value into a slice.
func asFloats(v any) ([]float64, bool) {
	if x, ok := asScalar(v); ok {
		return []float64{x}, true
	}
	switch x := v.(type) {
	case []float64:
		return x, true
	case [3]float64:
		return x[:], true
	case [3]float32:
		return []float64{float64(x[0]), float64(x[1]), float64(x[2])}, true
	case []float32:
		res := make([]float64, len(x))
		for i, xi := range x {
			res[i] = float64(xi)
		}
		return res, true
	case []int:
		res := make([]float64, len(x))
		for i, xi := range x {
			res[i] = float64(xi)
		}
		return res, true
	case []any:
		res := make([]float64, len(x))
		for i, xi := range x {
			f, ok := asScalar(xi)
			if !ok {
				return nil, false
			}
			res[i] = f
		}
		return res, true
	}
	return nil, false
}
