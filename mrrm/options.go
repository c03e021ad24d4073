package mrrm

// shuffleConfig holds the tunable knobs topology_constrained_link_shuffling
// needs beyond its required parameters: a retry budget for the
// rejection-sampling search that looks for a head permutation respecting
// the static adjacency constraint.
type shuffleConfig struct {
	maxAttempts int
}

// ShuffleOption customizes a shuffle's config before it runs.
type ShuffleOption func(*shuffleConfig)

// WithMaxAttempts bounds topology_constrained_link_shuffling's rejection
// retries per cause-time group before it falls back to the original
// pairing for that group. n <= 0 is a no-op (keeps the default).
func WithMaxAttempts(n int) ShuffleOption {
	return func(c *shuffleConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

const defaultMaxAttempts = 200

func newShuffleConfig(opts ...ShuffleOption) shuffleConfig {
	cfg := shuffleConfig{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
