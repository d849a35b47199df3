package mst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/junctions/dsu"
	"github.com/katalvlaran/junctions/points"
)

// Kruskal connects pairs in ascending distance until a single set remains.
// The pair that performs the last merge is the bottleneck.
//
// Error Conditions:
//   - ErrTooFewPoints : p.Len() < 2.
//
// Steps:
//  1. Materialise all pairs (i < j) and stable-sort them by Dist, so equal
//     distances keep row-major order.
//  2. Union pairs through a dsu with the live set counter enabled; record each
//     merging pair as a tree edge.
//  3. Stop once Sets() reports 1.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Kruskal(p *points.Points) (*Result, error) {
	n := p.Len()
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	pairs := p.AllPairs()
	slices.SortStableFunc(pairs, func(a, b points.Edge) int {
		return cmp.Compare(a.Dist, b.Dist)
	})

	d := dsu.New(n, dsu.WithSetCount(), dsu.WithCompression(dsu.FullPath))
	res := &Result{Edges: make([]points.Edge, 0, n-1)}
	for _, e := range pairs {
		if !d.Union(e.U, e.V) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Bottleneck = e
		if sets, _ := d.Sets(); sets == 1 {
			break
		}
	}

	res.Endpoints = [2]points.Coord{p.Coord(res.Bottleneck.U), p.Coord(res.Bottleneck.V)}

	return res, nil
}

// Compute dispatches to Prim or Kruskal according to opts.
//
//   - MethodPrim    : Prim(p, WithRoot(opts.Root)).
//   - MethodKruskal : Kruskal(p).
//   - otherwise     : ErrUnknownMethod.
func Compute(p *points.Points, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodPrim:
		return Prim(p, WithRoot(o.Root))
	case MethodKruskal:
		return Kruskal(p)
	default:
		return nil, ErrUnknownMethod
	}
}
