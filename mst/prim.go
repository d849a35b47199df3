package mst

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/junctions/points"
)

// Prim grows a spanning tree from the configured root, one nearest unvisited
// point per round, and tracks the heaviest edge it adds.
//
// Error Conditions:
//   - ErrTooFewPoints   : p.Len() < 2.
//   - ErrRootOutOfRange : root not in [0, n).
//
// Steps:
//  1. minDist[root] = 0, every other minDist = +inf, nothing visited.
//  2. Repeat n times:
//     a. Scan unvisited points for the smallest minDist → u.
//     b. Mark u visited.
//     c. Unless u is the root, (u, parent[u]) is a tree edge; if its weight is
//     strictly above the running maximum it becomes the bottleneck.
//     d. Relax every unvisited v: if d(u,v) < minDist[v], adopt u as parent.
//  3. Return the tree edges, bottleneck and its endpoint coordinates.
//
// Complexity: O(n²) time, O(n) memory.
func Prim(p *points.Points, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := p.Len()
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if o.Root < 0 || o.Root >= n {
		return nil, ErrRootOutOfRange
	}

	xs, ys, zs := p.X, p.Y, p.Z
	minDist := make([]int64, n)
	parent := make([]int, n)
	for v := range minDist {
		minDist[v] = math.MaxInt64
		parent[v] = -1
	}
	minDist[o.Root] = 0
	visited := bitset.New(uint(n))

	res := &Result{Edges: make([]points.Edge, 0, n-1)}
	// Starting below zero lets a tree of coincident points still report an edge.
	heaviest := int64(-1)

	for round := 0; round < n; round++ {
		u, best := -1, int64(math.MaxInt64)
		for v := 0; v < n; v++ {
			if !visited.Test(uint(v)) && minDist[v] < best {
				best, u = minDist[v], v
			}
		}
		// Every point is reachable on a complete graph, so u is always found.
		visited.Set(uint(u))

		if pu := parent[u]; pu >= 0 {
			e := points.Edge{U: u, V: pu, Dist: best}
			res.Edges = append(res.Edges, e)
			if best > heaviest {
				heaviest = best
				res.Bottleneck = e
			}
		}

		ux, uy, uz := xs[u], ys[u], zs[u]
		for v := 0; v < n; v++ {
			if visited.Test(uint(v)) {
				continue
			}
			dx := ux - xs[v]
			dy := uy - ys[v]
			dz := uz - zs[v]
			if d := dx*dx + dy*dy + dz*dz; d < minDist[v] {
				minDist[v] = d
				parent[v] = u
			}
		}
	}

	res.Endpoints = [2]points.Coord{p.Coord(res.Bottleneck.U), p.Coord(res.Bottleneck.V)}

	return res, nil
}
