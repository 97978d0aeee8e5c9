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
	"maps"
	"slices"
	"sync/atomic"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/cache"
)

// ResultCache is the cache type used by [Cached].  One ResultCache can be
// shared between several effects; keys include the effect name.
type ResultCache = cache.LRU[cache.Key, *lineart.Geometry]

// NewResultCache returns an empty result cache.  If capacity is zero or
// negative, [cache.DefaultCapacity] is used.
func NewResultCache(capacity int) *ResultCache {
	return cache.New[cache.Key, *lineart.Geometry](capacity)
}

// Cached wraps an effect with a result cache.  Repeated calls with the
// same geometry content and the same parameters return the stored result
// instead of recomputing it.
//
// A Cached is safe for concurrent use if the wrapped effect is.
type Cached struct {
	effect   Effect
	cache    *ResultCache
	computed atomic.Int64
}

// NewCached wraps e.  If c is nil, the effect gets a private cache of
// default capacity.
func NewCached(e Effect, c *ResultCache) *Cached {
	if c == nil {
		c = NewResultCache(0)
	}
	return &Cached{effect: e, cache: c}
}

// Name returns the name of the wrapped effect.
func (c *Cached) Name() string {
	return c.effect.Name()
}

// Unwrap returns the wrapped effect.
func (c *Cached) Unwrap() Effect {
	return c.effect
}

// Apply returns the cached result for (g, p) or computes and stores it.
func (c *Cached) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	key := c.Key(g, p)
	if res, ok := c.cache.Get(key); ok {
		lineart.Logger().Debug("effect cache hit", "effect", c.Name(), "key", key.String()[:16])
		return res
	}
	res := c.effect.Apply(g, p)
	c.computed.Add(1)
	c.cache.Put(key, res)
	lineart.Logger().Debug("effect cache miss", "effect", c.Name(),
		"lines", res.NumLines(), "points", res.NumPoints())
	return res
}

// Key returns the cache key for applying the effect to g with parameters
// p.  If the wrapped effect implements [ParamNamer], only the named
// parameters contribute.
func (c *Cached) Key(g *lineart.Geometry, p Params) cache.Key {
	h := cache.NewHasher(c.effect.Name())
	h.Geometry(g)

	var names []string
	if pn, ok := c.effect.(ParamNamer); ok {
		names = slices.Clone(pn.ParamNames())
	} else {
		names = slices.Collect(maps.Keys(p))
	}
	slices.Sort(names)
	for _, name := range names {
		v, ok := p[name]
		if !ok {
			continue
		}
		switch x := v.(type) {
		case string:
			h.String(name, x)
		case bool:
			h.Bool(name, x)
		default:
			if xs, ok := asFloats(v); ok {
				h.Float(name, xs...)
			}
		}
	}
	return h.Sum()
}

// Computed returns how many times the wrapped effect was actually run.
func (c *Cached) Computed() int64 {
	return c.computed.Load()
}

// Cache returns the underlying result cache.
func (c *Cached) Cache() *ResultCache {
	return c.cache
}

// ClearCache removes all stored results.  If the cache is shared, this
// affects all effects using it.
func (c *Cached) ClearCache() {
	c.cache.Clear()
}

// Bound fixes some parameters of an effect.  The fixed values take
// precedence over parameters passed to Apply.
type Bound struct {
	Effect Effect
	Fixed  Params
}

// Name returns the name of the wrapped effect.
func (b *Bound) Name() string {
	return b.Effect.Name()
}

// Unwrap returns the wrapped effect.
func (b *Bound) Unwrap() Effect {
	return b.Effect
}

// Apply runs the wrapped effect with the fixed parameters layered over p.
func (b *Bound) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	if len(b.Fixed) == 0 {
		return b.Effect.Apply(g, p)
	}
	return b.Effect.Apply(g, p.With(b.Fixed))
}

// ClearCache clears the cache of the wrapped effect, if it has one.
func (b *Bound) ClearCache() {
	if cc, ok := b.Effect.(cacheClearer); ok {
		cc.ClearCache()
	}
}

type cacheClearer interface {
	ClearCache()
}
