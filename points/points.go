package points

import "fmt"

// New builds a Points store from three index-aligned columns.
// The slices are retained, not copied; callers must not mutate them afterwards.
//
// Error Conditions:
//   - ErrLengthMismatch  : len(xs), len(ys), len(zs) differ.
//   - ErrCoordinateRange : any |c| > MaxAbsCoordinate.
//
// Complexity: O(n).
func New(xs, ys, zs []int64) (*Points, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("%w: x=%d y=%d z=%d", ErrLengthMismatch, len(xs), len(ys), len(zs))
	}
	for i := range xs {
		if !inRange(xs[i]) || !inRange(ys[i]) || !inRange(zs[i]) {
			return nil, fmt.Errorf("%w: point %d (%d,%d,%d)", ErrCoordinateRange, i, xs[i], ys[i], zs[i])
		}
	}

	return &Points{X: xs, Y: ys, Z: zs}, nil
}

// Len returns the number of points.
func (p *Points) Len() int { return len(p.X) }

// PairCount returns n·(n-1)/2, the number of unordered pairs.
func (p *Points) PairCount() int {
	n := p.Len()
	return n * (n - 1) / 2
}

// Coord returns the coordinates of point i.
func (p *Points) Coord(i int) Coord {
	return Coord{X: p.X[i], Y: p.Y[i], Z: p.Z[i]}
}

// DistanceSquared returns (xi-xj)² + (yi-yj)² + (zi-zj)².
func (p *Points) DistanceSquared(i, j int) int64 {
	dx := p.X[i] - p.X[j]
	dy := p.Y[i] - p.Y[j]
	dz := p.Z[i] - p.Z[j]

	return dx*dx + dy*dy + dz*dz
}

// AllPairs materialises every unordered pair (i < j) in row-major order.
// Memory: O(n²). Prefer topk.Nearest when only the closest pairs matter.
func (p *Points) AllPairs() []Edge {
	n := p.Len()
	edges := make([]Edge, 0, p.PairCount())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Dist: p.DistanceSquared(i, j)})
		}
	}

	return edges
}

func inRange(c int64) bool {
	return c >= -MaxAbsCoordinate && c <= MaxAbsCoordinate
}
