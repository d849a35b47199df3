package cluster

import (
	"github.com/katalvlaran/junctions/dsu"
	"github.com/katalvlaran/junctions/points"
)

// Build unions every edge into a fresh DSU over p and aggregates the result.
//
// Error Conditions:
//   - ErrInvalidLargest : opts set Largest < 1.
//   - *TooFewError      : fewer than Largest components remain.
//
// Complexity: O(n + |edges|·α(n)) plus O(c·Largest) for the selection.
func Build(p *points.Points, edges []points.Edge, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Largest < 1 {
		return nil, ErrInvalidLargest
	}

	d := dsu.New(p.Len(), dsu.WithCompression(o.Compression))
	for _, e := range edges {
		d.Union(e.U, e.V)
	}

	sizes := Sizes(d)
	top, err := Largest(sizes, o.Largest)
	if err != nil {
		return nil, err
	}

	return &Result{Sizes: sizes, Largest: top, Product: Product(top)}, nil
}

// Sizes returns the member count of every set in d, in unspecified order.
func Sizes(d *dsu.DSU) []int {
	n := d.Len()
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		counts[d.Find(i)]++
	}

	sizes := make([]int, 0)
	for _, c := range counts {
		if c > 0 {
			sizes = append(sizes, c)
		}
	}

	return sizes
}

// Largest returns the n biggest entries of sizes in descending order.
// sizes is not modified.
func Largest(sizes []int, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrInvalidLargest
	}
	if len(sizes) < n {
		return nil, &TooFewError{Want: n, Got: len(sizes)}
	}

	// top stays sorted descending; each size is inserted only if it beats the tail.
	top := make([]int, 0, n)
	for _, s := range sizes {
		if len(top) == n {
			if s <= top[n-1] {
				continue
			}
			top = top[:n-1]
		}
		i := len(top)
		top = append(top, s)
		for i > 0 && top[i-1] < s {
			top[i] = top[i-1]
			i--
		}
		top[i] = s
	}

	return top, nil
}

// Product multiplies sizes; an empty slice yields 1.
func Product(sizes []int) uint64 {
	prod := uint64(1)
	for _, s := range sizes {
		prod *= uint64(s)
	}

	return prod
}
