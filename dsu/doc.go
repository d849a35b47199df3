// Package dsu provides a disjoint-set union (union-find) over the dense
// index range [0, n).
//
// One DSU type serves both callers in this module:
//
//   - cluster needs plain membership: which root does point i belong to.
//   - mst.Kruskal additionally needs to know when a single set remains,
//     so it enables the live set counter with WithSetCount.
//
// Compression Strategies
//
//   - Halving (default): while walking up, parent[i] = parent[parent[i]].
//     One pass, no extra bookkeeping.
//
//   - FullPath: locate the root first, then rewrite every node on the path
//     to point straight at it.
//
// No rank or size heuristic is applied: the first root is attached under the
// second. For graphs of a few thousand nodes, compression alone keeps the
// trees shallow.
//
// Guarantees
//
//   - Find(Find(x)) == Find(x) for every x after any sequence of unions.
//   - Find reflects the transitive closure of all unioned pairs.
//   - With WithSetCount, Sets drops by exactly one per successful Union.
//
// Indices outside [0, n) panic like any out-of-range slice access.
//
// Complexity: near O(1) amortised per operation; memory O(n).
package dsu
