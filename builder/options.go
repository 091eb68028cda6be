// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

const defaultWeight = 1.0

type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

// Option customizes generation.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme maps node indices to IDs. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight function. It receives the configured
// random source, which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithUniformWeights draws integer weights uniformly from [lo, hi]. Small
// integer ranges make equal-distance ties common. Without a random source
// every weight is lo.
func WithUniformWeights(lo, hi int) Option {
	if hi < lo {
		lo, hi = hi, lo
	}
	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	})
}
