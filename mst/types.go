package mst

import (
	"errors"

	"github.com/katalvlaran/junctions/points"
)

// Sentinel errors for MST computation.
var (
	// ErrTooFewPoints indicates a point set with no edges to span.
	ErrTooFewPoints = errors.New("mst: need at least two points")

	// ErrRootOutOfRange indicates a Prim start index outside the point set.
	ErrRootOutOfRange = errors.New("mst: root index out of range")

	// ErrUnknownMethod indicates an unsupported Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method names an MST algorithm.
type Method string

const (
	// MethodPrim selects dense Prim.
	MethodPrim Method = "prim"

	// MethodKruskal selects sort-and-union Kruskal.
	MethodKruskal Method = "kruskal"
)

// Options configures Compute and Prim.
type Options struct {
	// Method is the algorithm used by Compute.
	Method Method

	// Root is Prim's start index. Kruskal ignores it.
	Root int
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm used by Compute.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets Prim's start index.
func WithRoot(i int) Option {
	return func(o *Options) {
		o.Root = i
	}
}

// DefaultOptions returns dense Prim rooted at point 0.
func DefaultOptions() Options {
	return Options{Method: MethodPrim, Root: 0}
}

// Result is a spanning tree and its heaviest edge.
type Result struct {
	// Edges are the n-1 tree edges in the order they were added.
	// For Prim, U is the newly attached point and V its tree parent.
	Edges []points.Edge

	// Bottleneck is the heaviest tree edge.
	Bottleneck points.Edge

	// Endpoints are the coordinates of Bottleneck.U and Bottleneck.V.
	Endpoints [2]points.Coord
}

// Product returns the product of the bottleneck endpoints' x-coordinates.
func (r *Result) Product() int64 {
	return r.Endpoints[0].X * r.Endpoints[1].X
}
