package grid

import (
	"fmt"
	"math/rand"
)

// DefaultLandProbability is the chance that a randomly filled cell is land.
const DefaultLandProbability = 0.25

// defaultSeed is used when callers pass seed==0, keeping runs reproducible.
const defaultSeed int64 = 1

// Option configures Random.
type Option func(*randomConfig)

// randomConfig holds the knobs for Random. It is built by newRandomConfig
// and never escapes the package.
type randomConfig struct {
	rng             *rand.Rand
	landProbability float64
}

// newRandomConfig applies opts in order over deterministic defaults:
// seed defaultSeed and DefaultLandProbability.
func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{landProbability: DefaultLandProbability}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// WithSeed seeds the fill deterministically. Seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is consumed by Random and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithLandProbability sets the probability in [0,1] that a cell is land.
// Panics on values outside [0,1] or NaN.
func WithLandProbability(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("grid: WithLandProbability(%v) outside [0,1]", p))
	}
	return func(c *randomConfig) {
		c.landProbability = p
	}
}
