// Package topk selects the K closest point pairs without materialising or
// sorting the full O(n²) pair list.
//
// Strategy
//
//   - Scan every unordered pair (i, j), i < j, computing the squared distance
//     straight from the SoA columns of *points.Points.
//   - Keep a max-heap capped at K. While the heap is short, insert
//     unconditionally; afterwards replace the current maximum only when the
//     new distance is strictly smaller.
//   - The heap's final contents are exactly the min(K, n·(n-1)/2) smallest
//     pairs, in heap order (unspecified). Use Sorted for ascending order.
//
// Parallel Scan
//
//	WithWorkers(w) stripes outer rows i ≡ t (mod w) across w goroutines. Each
//	worker owns a private heap; the partial heaps are merged into a final heap
//	of the same cap once all workers finish. Striping balances the triangular
//	row lengths.
//
// Ties
//
//	Equal distances at the cap boundary are broken by traversal order, which
//	differs between serial and parallel scans. Either answer is a valid
//	bounded selection.
//
// Error Conditions
//
//   - ErrInvalidK : K < 1.
//
// A K larger than the number of available pairs is not an error: the selector
// returns every pair.
//
// Complexity: O(n² log K) time, O(K·w) memory.
package topk
