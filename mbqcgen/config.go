package mbqcgen

import "math/rand"

// GenOption customizes a genConfig before a Constructor runs, mirroring
// the teacher's BuilderOption.
type GenOption func(cfg *genConfig)

// genConfig holds the resolved knobs shared across constructors: an
// optional RNG (nil means a stochastic constructor must reject the call)
// and the bipartite partition label prefixes.
type genConfig struct {
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

func newGenConfig(opts ...GenOption) *genConfig {
	cfg := &genConfig{leftPrefix: defaultLeftPrefix, rightPrefix: defaultRightPrefix}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds a fresh deterministic RNG for stochastic constructors.
func WithSeed(seed int64) GenOption {
	return func(cfg *genConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG source; nil is a no-op.
func WithRand(rng *rand.Rand) GenOption {
	return func(cfg *genConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithPartitionPrefix sets CompleteBipartite's left/right label prefixes.
// Empty values fall back to the defaults ("L"/"R").
func WithPartitionPrefix(left, right string) GenOption {
	return func(cfg *genConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}
