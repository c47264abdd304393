// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng            = nil                       (stochastic constructors refuse to run)
//   • degreeSource   = nil                       (degree-constrained constructors refuse to run)
//   • rejectProbability = DefaultRejectProbability (0.98)
//   • maxAttempts    = 0                         (uncapped, reference behavior)
//   • randomLocations = false                    (even spacing)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/smallworld/degree"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for all stochastic wiring choices; nil means "refuse to build".
	rng *rand.Rand
	// Per-node target-degree generator, consulted once per placed node.
	degreeSource degree.Source
	// Probability of rejecting a connection to a saturated peer.
	rejectProbability float64
	// Per-node cap on connection attempts; 0 = uncapped.
	maxAttempts int
	// Sorted uniform-random locations instead of even spacing.
	randomLocations bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last-wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:               nil,
		degreeSource:      nil,
		rejectProbability: DefaultRejectProbability,
		maxAttempts:       0,
		randomLocations:   false,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
