// Package circuit exposes the two junction-box queries as plain functions
// over a parsed *points.Points.
//
//   - ClusterProduct(p, k): connect the k nearest pairs, multiply the sizes
//     of the three largest circuits.
//   - BottleneckProduct(p): build the minimum spanning tree, multiply the
//     x-coordinates of the endpoints of its heaviest edge.
//   - Solve(ctx, p): run both concurrently; they share only the
//     read-only coordinates.
//
// Quick example:
//
//	p, err := points.Parse(f)
//	if err != nil { ... }
//	ans, err := circuit.Solve(ctx, p, circuit.WithConnections(1000))
//	fmt.Println(ans.Cluster, ans.Bottleneck)
//
// Every failure is returned as an error wrapping the sentinel of the package
// that produced it (points, topk, cluster, mst) or ErrNegativeProduct; no
// query ever substitutes a default number.
package circuit
