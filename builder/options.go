// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// options.go — functional options over builderConfig.
//
// Option constructors panic on meaningless values (nil RNG, probability
// outside [0,1], negative cap); runtime validation inside constructors
// returns sentinel errors instead.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/smallworld/degree"
)

// Option mutates the builder configuration before any constructor runs.
type Option func(*builderConfig)

// WithRand supplies the topology RNG directly. Panics on nil: passing an
// explicit nil source is a programming error, not a runtime condition.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = rng }
}

// WithSeed supplies a freshly seeded topology RNG; the canonical way to
// freeze a stochastic build for reproduction.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithDegreeSource sets the per-node target-degree generator.
// Panics on nil.
func WithDegreeSource(src degree.Source) Option {
	if src == nil {
		panic("builder: WithDegreeSource(nil)")
	}

	return func(cfg *builderConfig) { cfg.degreeSource = src }
}

// WithRejectProbability overrides the saturation rejection rate.
// Panics unless p ∈ [0,1]. Lowering p below the default admits more
// overshoot past degree targets; p=1 restores a hard cap and can stall an
// uncapped build.
func WithRejectProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithRejectProbability outside [0,1]")
	}

	return func(cfg *builderConfig) { cfg.rejectProbability = p }
}

// WithMaxAttempts caps connection attempts per node; when the cap is
// exhausted the build fails with ErrConstructFailed instead of spinning.
// Zero restores the uncapped reference behavior. Panics on negative k.
func WithMaxAttempts(k int) Option {
	if k < 0 {
		panic("builder: WithMaxAttempts negative")
	}

	return func(cfg *builderConfig) { cfg.maxAttempts = k }
}

// WithRandomLocations places nodes at sorted uniform-random ring locations
// instead of even spacing. The fast Kleinberg mode ignores this: its
// continuous approximation is only valid for even spacing.
func WithRandomLocations() Option {
	return func(cfg *builderConfig) { cfg.randomLocations = true }
}
