// Package cluster tallies connected-component sizes after a set of edges has
// been unioned, and reduces them to the product of the largest few.
//
// Pipeline
//
//	points.Points ─► topk.Nearest ─► Build: dsu.Union per edge ─► Sizes ─► Largest ─► Product
//
// Sizes counts members per DSU root in a dense slice indexed by root, which
// beats a map for point sets of a few thousand. Largest keeps a small
// descending window of the top n sizes instead of sorting every component.
//
// Error Conditions
//
//   - *TooFewError (ErrInsufficientClusters) : fewer than n components exist.
//     No default is substituted for the missing sizes.
//   - ErrInvalidLargest                      : n < 1.
package cluster
