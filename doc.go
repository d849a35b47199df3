// Package junctions clusters a fixed set of 3-D integer points ("junction
// boxes") by their nearest pairs and finds the heaviest edge of their minimum
// spanning tree.
//
// Two questions, one point set:
//
//	A) Connect the K closest pairs. How big are the three largest circuits?
//	B) Connect everything as cheaply as possible. Which cable is the longest?
//
// Under the hood, everything is organized as flat subpackages, leaves first:
//
//	points/  — structure-of-arrays coordinate store, "x,y,z" parser, Edge type
//	topk/    — capped max-heap selection of the K nearest pairs (serial or striped-parallel)
//	dsu/     — disjoint-set union with halving or full path compression and an optional set counter
//	cluster/ — component size tally, partial top-N selection, product
//	mst/     — dense O(n²) Prim and sort-and-union Kruskal with bottleneck tracking
//	circuit/ — ClusterProduct, BottleneckProduct and Solve (both queries concurrently)
//
// Quick ASCII example:
//
//	  A─B      E
//	  │╱       │
//	  C    D   F
//
//	K=4 joins {A,B,C}, {E,F} and leaves {D}: 3·2·1 = 6.
//
// The command in cmd/junctions wires these together behind a small CLI.
package junctions
