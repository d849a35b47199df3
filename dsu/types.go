package dsu

// Compression selects how Find shortens the paths it walks.
type Compression int

const (
	// Halving points every visited node at its grandparent during a single walk.
	Halving Compression = iota

	// FullPath finds the root, then rewrites every node on the path to it.
	FullPath
)

// Options configures a DSU.
type Options struct {
	// Compression strategy used by Find.
	Compression Compression

	// CountSets enables the live set counter reported by Sets.
	CountSets bool
}

// Option mutates Options.
type Option func(*Options)

// WithCompression selects the path compression strategy.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithSetCount enables the live set counter.
func WithSetCount() Option {
	return func(o *Options) {
		o.CountSets = true
	}
}

// DefaultOptions returns Halving compression with no set counter.
func DefaultOptions() Options {
	return Options{Compression: Halving}
}
