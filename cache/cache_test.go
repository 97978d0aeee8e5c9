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

package cache

import (
	"strconv"
	"sync"
	"testing"

	"seehuhn.de/go/lineart"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	if d := New[string, int](0); d.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity, got %d", d.Capacity())
	}
}

func TestGetPut(t *testing.T) {
	c := New[string, int](10)
	c.Put("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %t", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Put("key1", 43)
	if val, _ := c.Get("key1"); val != 43 {
		t.Errorf("expected updated value 43, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestStrictLRU(t *testing.T) {
	c := New[int, int](3)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(3, 3)

	// touch 1, so that 2 is now the oldest
	c.Get(1)
	c.Put(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("expected 2 to be evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %d to be present", k)
		}
	}

	// no touches: eviction follows insertion order
	d := New[int, int](2)
	d.Put(1, 1)
	d.Put(2, 2)
	d.Put(3, 3)
	d.Put(4, 4)
	if _, ok := d.Get(1); ok {
		t.Error("expected 1 to be evicted")
	}
	if _, ok := d.Get(2); ok {
		t.Error("expected 2 to be evicted")
	}
	if s := d.Stats(); s.Evictions != 2 {
		t.Errorf("expected 2 evictions, got %d", s.Evictions)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 100 * calls
	}

	if v := c.GetOrCreate("a", create); v != 100 {
		t.Errorf("expected 100, got %d", v)
	}
	if v := c.GetOrCreate("a", create); v != 100 {
		t.Errorf("expected cached 100, got %d", v)
	}
	if calls != 1 {
		t.Errorf("expected one call, got %d", calls)
	}
}

func TestDeleteClear(t *testing.T) {
	c := New[string, int](10)
	c.Put("a", 1)
	c.Put("b", 2)

	if !c.Delete("a") {
		t.Error("expected Delete to return true for existing key")
	}
	if c.Delete("a") {
		t.Error("expected Delete to return false for missing key")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
	c.Put("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](10)
	c.Put("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("hits=%d misses=%d", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("hit rate = %g", s.HitRate)
	}
	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Error("ResetStats did not reset")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				key := strconv.Itoa((g*1000 + i) % 100)
				c.GetOrCreate(key, func() int { return i })
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("cache exceeded capacity: %d", c.Len())
	}
}

func TestHasher(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{{{0, 0, 0}, {1, 0, 0}}})
	h := lineart.FromLines([][]lineart.Point{{{0, 0, 0}}, {{1, 0, 0}}})

	key := func(op string, g *lineart.Geometry, x float64) Key {
		hs := NewHasher(op)
		hs.Geometry(g)
		hs.Float("x", x)
		hs.String("mode", "lines")
		hs.Bool("cyclic", false)
		return hs.Sum()
	}

	base := key("noise", g, 0.5)
	if key("noise", g, 0.5) != base {
		t.Error("fingerprint is not deterministic")
	}
	if key("noise", g.Map(func(p lineart.Point) lineart.Point { return p }), 0.5) != base {
		t.Error("fingerprint depends on storage identity")
	}
	if key("rotate", g, 0.5) == base {
		t.Error("operation name ignored")
	}
	if key("noise", h, 0.5) == base {
		t.Error("offsets ignored")
	}
	if key("noise", g, 0.25) == base {
		t.Error("parameter value ignored")
	}
	if len(base.String()) != 64 {
		t.Errorf("unexpected key string %q", base.String())
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := New[int, int](1024)
	for i := range 1024 {
		c.Put(i, i)
	}
	i := 0
	for b.Loop() {
		c.Get(i & 1023)
		i++
	}
}
