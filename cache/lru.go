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

// Package cache provides the result cache used by effects: a strict LRU
// map and a content fingerprint for (operation, geometry, parameters)
// triples.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the number of entries used when New is called with
// a non-positive capacity.
const DefaultCapacity = 256

// LRU is a thread-safe cache with strict least-recently-used eviction.
// Entries which were used equally recently are evicted in insertion order.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	lru      lruList[K, V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// New creates a cache which holds at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
	c.lru.init()
	return c
}

// Get retrieves a value and marks it as most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	node, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.moveToFront(node)
	value := node.value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Put stores a value, evicting the least recently used entry if the cache
// is full.  The value is stored as-is.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, value)
}

func (c *LRU[K, V]) putLocked(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.lru.moveToFront(node)
		return
	}
	for c.lru.len >= c.capacity {
		oldest := c.lru.removeOldest()
		if oldest == nil {
			break
		}
		delete(c.entries, oldest.key)
		c.evictions.Add(1)
	}
	node := &lruNode[K, V]{key: key, value: value}
	c.lru.pushFront(node)
	c.entries[key] = node
}

// GetOrCreate returns the cached value for key, or calls create and stores
// its result.  create runs with the cache lock held.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.lru.moveToFront(node)
		c.hits.Add(1)
		return node.value
	}
	c.misses.Add(1)
	value := create()
	c.putLocked(key, value)
	return value
}

// Delete removes an entry.  It reports whether the entry was present.
func (c *LRU[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.remove(node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries.  Statistics are not affected.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]*lruNode[K, V])
	c.lru.init()
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns the current statistics.
func (c *LRU[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats sets all counters to zero.
func (c *LRU[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// lruNode is an entry of the cache, linked into the recency list.
type lruNode[K comparable, V any] struct {
	key        K
	value      V
	prev, next *lruNode[K, V]
}

// lruList is a doubly linked list with a sentinel.  root.next is the most
// recently used node, root.prev the least recently used one.
type lruList[K comparable, V any] struct {
	root lruNode[K, V]
	len  int
}

func (l *lruList[K, V]) init() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

func (l *lruList[K, V]) pushFront(n *lruNode[K, V]) {
	n.prev = &l.root
	n.next = l.root.next
	l.root.next.prev = n
	l.root.next = n
	l.len++
}

func (l *lruList[K, V]) remove(n *lruNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.len--
}

func (l *lruList[K, V]) moveToFront(n *lruNode[K, V]) {
	if l.root.next == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = &l.root
	n.next = l.root.next
	l.root.next.prev = n
	l.root.next = n
}

func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	if l.len == 0 {
		return nil
	}
	n := l.root.prev
	l.remove(n)
	return n
}
