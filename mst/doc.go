// Package mst computes the minimum spanning tree of the complete graph over a
// point set, where edge weight is squared Euclidean distance, and reports its
// heaviest ("bottleneck") edge.
//
// Algorithms Provided
//
//   - Prim(p, opts...): dense Prim.
//
//   - Strategy: keep minDist[v], the best known weight connecting v to the
//     growing tree. Each of the n rounds linearly scans the unvisited points
//     for the smallest minDist, marks it visited, and relaxes every other
//     unvisited point against it. No priority queue: on a complete graph the
//     heap would hold O(n²) entries, while the linear scan streams through
//     two flat slices.
//
//   - Complexity: O(n²) time, O(n) memory.
//
//   - Kruskal(p): sort-and-union.
//
//   - Strategy: materialise all n·(n-1)/2 pairs, stable-sort them by weight and
//     union them with a counting dsu.DSU until one set remains. The edge that
//     performs the final merge is the bottleneck.
//
//   - Complexity: O(n² log n) time, O(n²) memory.
//
// Bottleneck
//
//	The bottleneck weight is the same for every MST of a given graph. When
//	several edges share that weight, which of them is reported depends on the
//	algorithm and its traversal order.
//
// Error Conditions
//
//   - ErrTooFewPoints   : fewer than two points; there is no edge to report.
//   - ErrRootOutOfRange : WithRoot outside [0, n).
//   - ErrUnknownMethod  : Compute was given a method other than MethodPrim or MethodKruskal.
package mst
