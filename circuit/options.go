package circuit

import (
	"errors"

	"github.com/katalvlaran/junctions/cluster"
	"github.com/katalvlaran/junctions/mst"
)

// DefaultConnections is the production connection budget for ClusterProduct.
const DefaultConnections = 1000

// ErrNegativeProduct indicates the bottleneck endpoints' x product is negative
// and cannot be reported as an unsigned answer.
var ErrNegativeProduct = errors.New("circuit: bottleneck product is negative")

// Options configures the queries.
type Options struct {
	// Connections is k for Solve. ClusterProduct takes k explicitly.
	Connections int

	// Largest is how many circuit sizes ClusterProduct multiplies.
	Largest int

	// Workers is the goroutine count for the nearest-pair scan.
	Workers int

	// Method selects the spanning tree algorithm.
	Method mst.Method

	// Logger receives one DEBUG record per query.
	Logger *Logger
}

// Option mutates Options.
type Option func(*Options)

// WithConnections sets k for Solve.
func WithConnections(k int) Option {
	return func(o *Options) { o.Connections = k }
}

// WithLargest sets how many circuit sizes are multiplied.
func WithLargest(n int) Option {
	return func(o *Options) { o.Largest = n }
}

// WithWorkers sets the nearest-pair scan parallelism.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithMethod selects mst.MethodPrim or mst.MethodKruskal.
func WithMethod(m mst.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns k=1000, three largest circuits, a serial scan,
// dense Prim and no logging.
func DefaultOptions() Options {
	return Options{
		Connections: DefaultConnections,
		Largest:     cluster.DefaultLargest,
		Workers:     1,
		Method:      mst.MethodPrim,
		Logger:      NoopLogger(),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
