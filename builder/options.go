package builder

// config holds the tunable knobs shared across generators that need more
// than their required parameters: a retry budget for rejection-based
// constructions (configuration model stub-matching) and a self-loop policy.
// Unexported fields, resolved via newConfig plus any BuilderOption values,
// mirror the teacher's builderConfig/BuilderOption split.
type config struct {
	maxAttempts int
	allowLoops  bool
}

// BuilderOption customizes a generator's config before construction begins.
type BuilderOption func(*config)

// WithMaxAttempts bounds the number of rejection-sampling retries a
// generator may take before giving up and returning an error wrapping
// ErrInvalidArgument. n <= 0 is a no-op (keeps the default).
func WithMaxAttempts(n int) BuilderOption {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithSelfLoops allows a generator that would otherwise reject a self-pairing
// (notably ConfigurationModel's stub matching) to keep it instead.
func WithSelfLoops(allow bool) BuilderOption {
	return func(c *config) { c.allowLoops = allow }
}

const defaultMaxAttempts = 1000

func newConfig(opts ...BuilderOption) config {
	cfg := config{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
