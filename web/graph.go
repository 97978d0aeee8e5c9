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

// Package web grows a planar graph inside a closed curve.
//
// The graph starts as the cycle of curve vertices.  Candidate chords
// between pseudo-random points on the curve are then cut against the
// graph: the two crossings closest to the start of a chord split their
// edges, and a new edge joins the two split points.  A spring relaxation
// pulls the inserted nodes towards equilibrium while the curve vertices
// stay fixed.  Finally the graph is decomposed into polylines.
package web

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// maxHits bounds the number of chord crossings considered per chord.
	maxHits = 20

	// maxForce bounds the length of the force vector acting on a node
	// during relaxation.
	maxForce = 10.0

	// parallelThreshold is the cross product magnitude below which two
	// segments are treated as parallel.
	parallelThreshold = 1e-8

	// hitTolerance widens the parameter ranges in intersect, so that
	// chords starting exactly on an edge register a crossing there.
	hitTolerance = 1e-9
)

// Graph is an undirected planar graph whose first nodes are the vertices of
// a closed curve.
type Graph struct {
	curve []vec.Vec2
	nodes []vec.Vec2
	fixed int // nodes[:fixed] do not move

	// edges are stored as parallel arrays; removed edges stay in place
	// with alive set to false, so that edge IDs remain stable.
	from, to []int32
	alive    []bool

	nextChord int

	// scratch buffers for AddCandidates
	hitT    []float64
	hitEdge []int32
	hitPt   []vec.Vec2
}

// New returns the cycle graph of the closed curve through the given
// vertices.  The last vertex is connected to the first; the curve should
// not repeat its first vertex at the end.
func New(curve []vec.Vec2) *Graph {
	n := len(curve)
	g := &Graph{
		curve: curve,
		nodes: append([]vec.Vec2(nil), curve...),
		fixed: n,
	}
	if n < 2 {
		return g
	}
	for i := range n {
		g.addEdge(int32(i), int32((i+1)%n))
	}
	return g
}

// Nodes returns the node positions.  The slice is owned by the graph.
func (g *Graph) Nodes() []vec.Vec2 {
	return g.nodes
}

// NumFixed returns the number of fixed nodes, which come first in
// [Graph.Nodes].
func (g *Graph) NumFixed() int {
	return g.fixed
}

// Edges returns the current edges as pairs of node indices.
func (g *Graph) Edges() [][2]int {
	var res [][2]int
	for e, ok := range g.alive {
		if ok {
			res = append(res, [2]int{int(g.from[e]), int(g.to[e])})
		}
	}
	return res
}

func (g *Graph) addEdge(a, b int32) {
	g.from = append(g.from, a)
	g.to = append(g.to, b)
	g.alive = append(g.alive, true)
}

func (g *Graph) addNode(p vec.Vec2) int32 {
	g.nodes = append(g.nodes, p)
	return int32(len(g.nodes) - 1)
}

// AddCandidates inserts n candidate chords.  Chords are numbered
// consecutively over all calls, so that AddCandidates(a) followed by
// AddCandidates(b) gives the same graph as AddCandidates(a+b).
func (g *Graph) AddCandidates(n int) {
	if len(g.curve) < 2 {
		return
	}
	for range n {
		a, b := bestChord(g.curve, g.nextChord)
		g.nextChord++
		g.insertChord(a, b)
	}
}

// insertChord cuts the chord a-b against all current edges.
func (g *Graph) insertChord(a, b vec.Vec2) {
	g.hitT = g.hitT[:0]
	g.hitEdge = g.hitEdge[:0]
	g.hitPt = g.hitPt[:0]

	numEdges := len(g.alive)
	for e := range numEdges {
		if !g.alive[e] {
			continue
		}
		p0, p1 := g.nodes[g.from[e]], g.nodes[g.to[e]]
		t, pt, ok := intersect(a, b, p0, p1)
		if !ok {
			continue
		}
		g.hitT = append(g.hitT, t)
		g.hitEdge = append(g.hitEdge, int32(e))
		g.hitPt = append(g.hitPt, pt)
		if len(g.hitT) == maxHits {
			break
		}
	}
	if len(g.hitT) < 2 {
		return
	}

	// the two hits with the smallest chord parameter
	idx1, idx2 := -1, -1
	min1, min2 := math.Inf(1), math.Inf(1)
	for k, t := range g.hitT {
		if t < min1 {
			min2, idx2 = min1, idx1
			min1, idx1 = t, k
		} else if t < min2 {
			min2, idx2 = t, k
		}
	}
	e1, e2 := g.hitEdge[idx1], g.hitEdge[idx2]
	if e1 == e2 {
		return
	}

	n1 := g.splitEdge(e1, g.hitPt[idx1])
	n2 := g.splitEdge(e2, g.hitPt[idx2])
	g.addEdge(n1, n2)
}

// splitEdge replaces edge e by two edges through a new node at p, and
// returns the new node.
func (g *Graph) splitEdge(e int32, p vec.Vec2) int32 {
	g.alive[e] = false
	n := g.addNode(p)
	g.addEdge(g.from[e], n)
	g.addEdge(n, g.to[e])
	return n
}

// intersect returns the intersection of the segments a-b and p0-p1,
// together with its parameter along a-b.
func intersect(a, b, p0, p1 vec.Vec2) (float64, vec.Vec2, bool) {
	r := b.Sub(a)
	s := p1.Sub(p0)
	rxs := r.X*s.Y - r.Y*s.X
	if math.Abs(rxs) < parallelThreshold {
		return 0, vec.Vec2{}, false
	}
	qp := p0.Sub(a)
	t := (qp.X*s.Y - qp.Y*s.X) / rxs
	u := (qp.X*r.Y - qp.Y*r.X) / rxs
	const lo, hi = -hitTolerance, 1 + hitTolerance
	if t < lo || t > hi || u < lo || u > hi {
		return 0, vec.Vec2{}, false
	}
	return t, a.Add(r.Mul(t)), true
}

// Relax runs the given number of spring relaxation steps.  Every edge pulls
// its endpoints together with a force proportional to its length.  Forces
// are clamped to a fixed maximum length, and the curve vertices do not
// move.
func (g *Graph) Relax(iterations int, step float64) {
	if iterations <= 0 || len(g.nodes) == g.fixed {
		return
	}
	forces := make([]vec.Vec2, len(g.nodes))
	for range iterations {
		clear(forces)
		for e, ok := range g.alive {
			if !ok {
				continue
			}
			i, j := g.from[e], g.to[e]
			diff := g.nodes[j].Sub(g.nodes[i])
			forces[i] = forces[i].Add(diff)
			forces[j] = forces[j].Sub(diff)
		}
		for i := g.fixed; i < len(g.nodes); i++ {
			f := forces[i]
			if l := f.Length(); l > maxForce {
				f = f.Mul(maxForce / l)
			}
			g.nodes[i] = g.nodes[i].Add(f.Mul(step))
		}
	}
}

// halfEdge is an entry of the adjacency table.
type halfEdge struct {
	to int32
	id int32
}

// Trace decomposes the graph into polylines, given as lists of node
// indices.  Every edge appears in exactly one polyline.
//
// First, chains are traced from every node whose degree is not two, through
// nodes of degree two, until a node of another degree is reached.  The
// remaining edges form disjoint cycles; these are returned with the start
// node repeated at the end.
func (g *Graph) Trace() [][]int {
	// adjacency table in compressed form: the neighbours of node i are
	// adj[start[i]:start[i+1]]
	numNodes := len(g.nodes)
	start := make([]int32, numNodes+1)
	for e, ok := range g.alive {
		if ok {
			start[g.from[e]+1]++
			start[g.to[e]+1]++
		}
	}
	for i := range numNodes {
		start[i+1] += start[i]
	}
	adj := make([]halfEdge, start[numNodes])
	fill := append([]int32(nil), start[:numNodes]...)
	for e, ok := range g.alive {
		if !ok {
			continue
		}
		a, b := g.from[e], g.to[e]
		adj[fill[a]] = halfEdge{to: b, id: int32(e)}
		fill[a]++
		adj[fill[b]] = halfEdge{to: a, id: int32(e)}
		fill[b]++
	}
	degree := func(i int32) int32 { return start[i+1] - start[i] }

	visited := make([]bool, len(g.alive))
	var res [][]int

	for i := range int32(numNodes) {
		if degree(i) == 2 {
			continue
		}
		for _, h := range adj[start[i]:start[i+1]] {
			if visited[h.id] {
				continue
			}
			visited[h.id] = true
			chain := []int{int(i), int(h.to)}
			prev, cur := h.id, h.to
			for degree(cur) == 2 {
				var next halfEdge
				for _, h2 := range adj[start[cur]:start[cur+1]] {
					if h2.id != prev {
						next = h2
						break
					}
				}
				if visited[next.id] {
					break
				}
				visited[next.id] = true
				chain = append(chain, int(next.to))
				prev, cur = next.id, next.to
			}
			res = append(res, chain)
		}
	}

	for i := range int32(numNodes) {
		cycle := []int{int(i)}
		cur := i
		for {
			found := false
			for _, h := range adj[start[cur]:start[cur+1]] {
				if visited[h.id] {
					continue
				}
				visited[h.id] = true
				cycle = append(cycle, int(h.to))
				cur = h.to
				found = true
				break
			}
			if !found || cur == i {
				break
			}
		}
		if len(cycle) >= 2 {
			res = append(res, cycle)
		}
	}
	return res
}
