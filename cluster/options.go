package cluster

// Config defines the shape of a simulated compute cluster.
type Config struct {
	// Cores is the number of worker cores in the cluster.
	Cores int

	// ScratchSize is the capacity, in elements, of the cluster-scoped
	// scratch arena.
	ScratchSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: an 8-core cluster with 64 KiB
// of scratch memory, matching common embedded cluster configurations.
func DefaultConfig() Config {
	return Config{
		Cores:       8,
		ScratchSize: 64 << 10,
	}
}

// WithCores sets the worker core count.
func WithCores(cores int) Option {
	return func(cfg *Config) {
		if cores > 0 {
			cfg.Cores = cores
		}
	}
}

// WithScratchSize sets the scratch arena capacity in elements.
func WithScratchSize(size int) Option {
	return func(cfg *Config) {
		if size >= 0 {
			cfg.ScratchSize = size
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
