package cluster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/junctions/dsu"
)

// DefaultLargest is how many component sizes are multiplied by default.
const DefaultLargest = 3

// Sentinel errors for cluster aggregation.
var (
	// ErrInsufficientClusters indicates fewer components than requested.
	ErrInsufficientClusters = errors.New("cluster: not enough components")

	// ErrInvalidLargest indicates a non-positive component count.
	ErrInvalidLargest = errors.New("cluster: largest must be at least 1")
)

// TooFewError reports how many components were wanted and how many existed.
// It unwraps to ErrInsufficientClusters.
type TooFewError struct {
	Want, Got int
}

func (e *TooFewError) Error() string {
	return fmt.Sprintf("cluster: need %d components, have %d", e.Want, e.Got)
}

func (e *TooFewError) Unwrap() error { return ErrInsufficientClusters }

// Options configures Build.
type Options struct {
	// Largest is how many of the biggest components contribute to the product.
	Largest int

	// Compression is forwarded to the DSU.
	Compression dsu.Compression
}

// Option mutates Options.
type Option func(*Options)

// WithLargest sets how many component sizes are multiplied.
func WithLargest(n int) Option {
	return func(o *Options) {
		o.Largest = n
	}
}

// WithCompression selects the DSU path compression strategy.
func WithCompression(c dsu.Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// DefaultOptions returns Largest=3 with halving compression.
func DefaultOptions() Options {
	return Options{Largest: DefaultLargest, Compression: dsu.Halving}
}

// Result describes the components formed by one Build.
type Result struct {
	// Sizes holds every component size, in unspecified order.
	Sizes []int

	// Largest holds the top sizes, descending.
	Largest []int

	// Product is the product of Largest.
	Product uint64
}
