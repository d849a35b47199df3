package topk

import "errors"

// ErrInvalidK indicates a non-positive selection cap.
var ErrInvalidK = errors.New("topk: k must be at least 1")

// Options configures Nearest.
type Options struct {
	// Workers is the number of goroutines scanning rows. Values ≤ 1 scan serially.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of scanning goroutines.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// DefaultOptions returns a serial configuration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
