package topk

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/junctions/points"
)

// Nearest returns the min(k, n·(n-1)/2) pairs of p with the smallest squared
// distance, in unspecified order. Every returned Dist is ≤ every Dist left out.
//
// Error Conditions:
//   - ErrInvalidK : k < 1.
//
// Steps:
//  1. Clamp k to the number of available pairs; n < 2 yields an empty result.
//  2. Serial: one heap, rows 0..n-1.
//     Parallel: w heaps, worker t scans rows t, t+w, t+2w, ...
//  3. Merge the partial heaps by offering every partial edge to a final heap.
//
// Complexity: O(n² log k) time, O(k·w) memory.
func Nearest(p *points.Points, k int, opts ...Option) ([]points.Edge, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	limit := min(k, p.PairCount())
	if limit == 0 {
		return []points.Edge{}, nil
	}

	workers := o.Workers
	if n := p.Len(); workers > n {
		workers = n
	}
	if workers <= 1 {
		h := NewHeap(limit)
		scanRows(p, 0, 1, h)
		return h.Edges(), nil
	}

	partial := make([]*Heap, workers)
	var g errgroup.Group
	for t := 0; t < workers; t++ {
		t := t
		h := NewHeap(limit)
		partial[t] = h
		g.Go(func() error {
			scanRows(p, t, workers, h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewHeap(limit)
	for _, h := range partial {
		for _, e := range h.Edges() {
			merged.Offer(e)
		}
	}

	return merged.Edges(), nil
}

// scanRows offers every pair (i, j), j > i, for rows i = first, first+stride, ...
func scanRows(p *points.Points, first, stride int, h *Heap) {
	xs, ys, zs := p.X, p.Y, p.Z
	n := len(xs)
	for i := first; i < n; i += stride {
		xi, yi, zi := xs[i], ys[i], zs[i]
		for j := i + 1; j < n; j++ {
			dx := xi - xs[j]
			dy := yi - ys[j]
			dz := zi - zs[j]
			h.Offer(points.Edge{U: i, V: j, Dist: dx*dx + dy*dy + dz*dz})
		}
	}
}

// Sorted returns a copy of edges in ascending distance, keeping the input
// order among equal distances.
func Sorted(edges []points.Edge) []points.Edge {
	out := slices.Clone(edges)
	slices.SortStableFunc(out, func(a, b points.Edge) int {
		return cmp.Compare(a.Dist, b.Dist)
	})

	return out
}
