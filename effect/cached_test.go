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
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"seehuhn.de/go/lineart"
)

// countingEffect shifts all points by the "dx" parameter and counts its
// invocations.
type countingEffect struct {
	name  string
	mu    sync.Mutex
	calls int
}

func (c *countingEffect) Name() string { return c.name }

func (c *countingEffect) Apply(g *lineart.Geometry, p Params) *lineart.Geometry {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	dx := float32(p.Float("dx", 0))
	return g.Map(func(q lineart.Point) lineart.Point {
		q.X += dx
		return q
	})
}

func TestCachedHit(t *testing.T) {
	inner := &countingEffect{name: "count"}
	c := NewCached(inner, nil)
	g := lineart.FromLines([][]lineart.Point{{{0, 0, 0}, {1, 0, 0}}})

	r1 := c.Apply(g, Params{"dx": 1})
	r2 := c.Apply(g, Params{"dx": 1})
	if inner.calls != 1 || c.Computed() != 1 {
		t.Fatalf("calls = %d, computed = %d, want 1", inner.calls, c.Computed())
	}
	if r1 != r2 {
		t.Error("second call did not return the cached result")
	}

	// equal content in a different geometry value
	g2 := lineart.FromLines([][]lineart.Point{{{0, 0, 0}, {1, 0, 0}}})
	c.Apply(g2, Params{"dx": 1})
	if c.Computed() != 1 {
		t.Errorf("equal content missed the cache")
	}

	c.Apply(g, Params{"dx": 2})
	if c.Computed() != 2 {
		t.Errorf("changed parameter hit the cache")
	}

	g3 := lineart.FromLines([][]lineart.Point{{{0, 0, 0}}, {{1, 0, 0}}})
	c.Apply(g3, Params{"dx": 1})
	if c.Computed() != 3 {
		t.Errorf("changed offsets hit the cache")
	}

	stats := c.Cache().Stats()
	if stats.Hits != 2 || stats.Misses != 3 {
		t.Errorf("stats = %+v", stats)
	}

	c.ClearCache()
	c.Apply(g, Params{"dx": 1})
	if c.Computed() != 4 {
		t.Errorf("cleared cache still hit")
	}
}

func TestCachedParamNames(t *testing.T) {
	c := NewCached(&Rotate{}, nil)
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	c.Apply(g, Params{"rotate": 0.1, "unrelated": 1})
	c.Apply(g, Params{"rotate": 0.1, "unrelated": 2})
	if c.Computed() != 1 {
		t.Errorf("unrelated parameter changed the cache key")
	}

	// without ParamNames, all parameters are part of the key
	c2 := NewCached(&countingEffect{name: "count"}, nil)
	c2.Apply(g, Params{"unrelated": 1})
	c2.Apply(g, Params{"unrelated": 2})
	if c2.Computed() != 2 {
		t.Errorf("computed = %d, want 2", c2.Computed())
	}
}

func TestCachedKey(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	c := NewCached(&countingEffect{name: "count"}, nil)
	cases := []struct {
		name string
		a, b Params
		same bool
	}{
		{"equal", Params{"x": 1.0}, Params{"x": 1.0}, true},
		{"int vs float", Params{"x": 1}, Params{"x": 1.0}, true},
		{"slice vs array", Params{"v": []float64{1, 2, 3}}, Params{"v": [3]float64{1, 2, 3}}, true},
		{"negative zero", Params{"x": 0.0}, Params{"x": math.Copysign(0, -1)}, true},
		{"different value", Params{"x": 1.0}, Params{"x": 2.0}, false},
		{"different name", Params{"x": 1.0}, Params{"y": 1.0}, false},
		{"string vs bool", Params{"x": "true"}, Params{"x": true}, false},
		{"missing", Params{"x": 1.0}, Params{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ka, kb := c.Key(g, tc.a), c.Key(g, tc.b)
			if (ka == kb) != tc.same {
				t.Errorf("keys equal = %t, want %t", ka == kb, tc.same)
			}
		})
	}
}

func TestSharedCache(t *testing.T) {
	shared := NewResultCache(16)
	a := &countingEffect{name: "a"}
	b := &countingEffect{name: "b"}
	ca, cb := NewCached(a, shared), NewCached(b, shared)
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	ca.Apply(g, nil)
	cb.Apply(g, nil)
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("different effects shared a cache entry")
	}
	if shared.Len() != 2 {
		t.Errorf("shared cache holds %d entries, want 2", shared.Len())
	}
}

func TestCachedConcurrent(t *testing.T) {
	c := NewCached(&countingEffect{name: "count"}, nil)
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				c.Apply(g, Params{"dx": float64((i + j) % 5)})
			}
		}()
	}
	wg.Wait()
	if c.Cache().Len() != 5 {
		t.Errorf("cache holds %d entries, want 5", c.Cache().Len())
	}
}

func TestBound(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{0, 0, 0}}})
	b := &Bound{Effect: &Translate{}, Fixed: Params{"offset_x": 1}}
	res := b.Apply(g, Params{"offset_x": 5, "offset_y": 2})
	if got := res.Line(0)[0]; got != (lineart.Point{X: 1, Y: 2}) {
		t.Errorf("got %v, want (1,2,0)", got)
	}
	if b.Name() != "translate" {
		t.Errorf("Name() = %q", b.Name())
	}
}

func TestBoundCachedStages(t *testing.T) {
	shared := NewResultCache(0)
	inner := &countingEffect{name: "count"}
	s1 := &Bound{Effect: NewCached(inner, shared), Fixed: Params{"dx": 1}}
	s2 := &Bound{Effect: NewCached(inner, shared), Fixed: Params{"dx": 2}}
	g := lineart.FromLines([][]lineart.Point{{{0, 0, 0}}})

	r1 := s1.Apply(g, nil)
	r2 := s2.Apply(g, nil)
	if r1.Line(0)[0].X != 1 || r2.Line(0)[0].X != 2 {
		t.Errorf("stages with different fixed parameters share a result")
	}
	s1.Apply(g, nil)
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2", inner.calls)
	}

	s1.ClearCache()
	s2.Apply(g, nil)
	if inner.calls != 3 {
		t.Errorf("ClearCache did not reach the cache")
	}
}

func TestPipeline(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})

	empty := NewPipeline()
	if res := empty.Apply(g, Params{"offset_x": 1}); res != g {
		t.Error("empty pipeline changed its input")
	}

	tr := &Translate{}
	sc := &Scale{}
	pl := NewPipeline(tr, sc)
	p := Params{"offset_x": 1, "scale": 2.0}
	if got := pl.Apply(g, p).Line(0)[0]; got.X != 4 {
		t.Errorf("translate+scale: x = %g, want 4", got.X)
	}

	pl.Remove(tr).Add(tr)
	if pl.Len() != 2 || pl.At(0) != Effect(sc) || pl.At(1) != Effect(tr) {
		t.Fatal("Remove/Add did not reorder the stages")
	}
	if got := pl.Apply(g, p).Line(0)[0]; got.X != 3 {
		t.Errorf("scale+translate: x = %g, want 3", got.X)
	}

	pl.Remove(&countingEffect{name: "other"}) // not a stage
	if pl.Len() != 2 {
		t.Errorf("removing an unknown effect changed the pipeline")
	}

	pl.Clear()
	if pl.Len() != 0 {
		t.Errorf("Len() = %d after Clear", pl.Len())
	}
}

func TestPipelineClearCaches(t *testing.T) {
	inner := &countingEffect{name: "count"}
	pl := NewPipeline(NewCached(inner, nil), &Bound{Effect: NewCached(&countingEffect{name: "b"}, nil)})
	g := lineart.FromLines([][]lineart.Point{{{1, 0, 0}}})
	pl.Apply(g, nil)
	pl.Apply(g, nil)
	if inner.calls != 1 {
		t.Fatalf("calls = %d, want 1", inner.calls)
	}
	pl.ClearCaches()
	pl.Apply(g, nil)
	if inner.calls != 2 {
		t.Errorf("calls = %d after ClearCaches, want 2", inner.calls)
	}
}

func TestSetWorkers(t *testing.T) {
	buf := &Buffer{}
	pl := NewPipeline(&Bound{Effect: NewCached(buf, nil)}, &Rotate{})
	pl.SetWorkers(3)
	if buf.Workers != 3 {
		t.Errorf("Workers = %d, want 3", buf.Workers)
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	names := r.Names()
	if len(names) != len(builtin) {
		t.Fatalf("got %d effects, want %d", len(names), len(builtin))
	}
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		e, err := r.New(name)
		if err != nil {
			t.Fatal(err)
		}
		if e.Name() != name {
			t.Errorf("effect %q reports name %q", name, e.Name())
		}
		if _, ok := e.(ParamNamer); !ok {
			t.Errorf("effect %q does not list its parameters", name)
		}
	}

	if _, err := r.Get("no such effect"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: err = %v, want ErrNotFound", err)
	}
	if _, err := r.New("no such effect"); !errors.Is(err, ErrNotFound) {
		t.Errorf("New: err = %v, want ErrNotFound", err)
	}
	err := r.Register("noise", func() Effect { return &Rotate{} })
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Register: err = %v, want ErrDuplicate", err)
	}

	// registries are independent
	r2 := NewRegistry()
	if err := r2.Register("noise", func() Effect { return &Rotate{} }); err != nil {
		t.Error(err)
	}
}
