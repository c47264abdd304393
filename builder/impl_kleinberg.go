// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_kleinberg.go — the 1D Kleinberg model, fast and exact variants.
//
// Fast (continuous approximation):
//   • Assumes evenly spaced, location-sorted nodes — placement enforces
//     this regardless of WithRandomLocations.
//   • steps = round((n/2)^U) for U uniform(0,1) realizes an approximately
//     1/d index-offset distribution in O(1) per draw; direction is a fair
//     coin, the index wraps modulo n.
// Exact:
//   • Samples destinations from per-node cumulative 1/distance tables
//     (linklength.Kleinberg). Correct for arbitrary spacing and small n;
//     O(n) table build once per source node, O(log n) per draw after.
//
// Both variants apply the shared admit rule and wire reciprocal edges
// until every node reaches its target degree. A node at target is skipped
// as a source but stays eligible as a destination.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/smallworld/graph"
	"github.com/katalvlaran/smallworld/linklength"
)

// Kleinberg returns a Constructor that builds an n-node 1/d
// distance-weighted graph, using the fast continuous approximation or the
// exact per-node CDF sampler.
func Kleinberg(n int, fast bool) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Parameter validation, fail fast with zero side effects.
		if n < MinPeeredNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodKleinberg, n, MinPeeredNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodKleinberg, ErrNeedRandSource)
		}
		if cfg.degreeSource == nil {
			return fmt.Errorf("%s: degree source is required: %w", MethodKleinberg, ErrNeedDegreeSource)
		}

		// 2) Placement. The fast approximation is only valid for even,
		//    sorted spacing; the exact sampler honors the location option.
		evenSpacing := fast || !cfg.randomLocations
		placeNodes(g, n, cfg.degreeSource, cfg, evenSpacing)

		// 3) Wire.
		if fast {
			return kleinbergFast(g, n, cfg)
		}

		return kleinbergExact(g, n, cfg)
	}
}

// kleinbergFast wires via the even-spacing index-offset approximation.
func kleinbergFast(g *graph.Graph, n int, cfg builderConfig) error {
	maxSteps := float64(n) / 2
	for i := 0; i < n; i++ {
		src := g.Node(i)
		attempts := 0
		for !src.AtDegree() {
			if err := attemptsExceeded(MethodKleinberg, i, attempts, cfg); err != nil {
				return err
			}
			attempts++

			// Offset distribution ≈ 1/d over index distance.
			steps := int(math.Round(math.Pow(maxSteps, cfg.rng.Float64())))
			idx := i - steps
			if cfg.rng.Intn(2) == 0 {
				idx = i + steps
			}
			if idx < 0 {
				idx += n
			}
			if idx >= n {
				idx -= n
			}

			dest := g.Node(idx)
			if !admit(src, dest, cfg) {
				continue
			}
			if err := src.Connect(dest); err != nil {
				return fmt.Errorf("%s: connect %d-%d: %w", MethodKleinberg, i, idx, err)
			}
		}
	}

	return nil
}

// kleinbergExact wires via the memoized per-node 1/distance CDF sampler.
func kleinbergExact(g *graph.Graph, n int, cfg builderConfig) error {
	return wireFromPeers(g, n, cfg, MethodKleinberg, linklength.NewKleinberg(g))
}

// wireFromPeers runs the shared degree-filling loop over any peer sampler.
func wireFromPeers(g *graph.Graph, n int, cfg builderConfig, method string, sampler linklength.PeerSource) error {
	for i := 0; i < n; i++ {
		src := g.Node(i)
		attempts := 0
		for !src.AtDegree() {
			if err := attemptsExceeded(method, i, attempts, cfg); err != nil {
				return err
			}
			attempts++

			dest, err := sampler.Peer(src, cfg.rng)
			if err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
			if !admit(src, dest, cfg) {
				continue
			}
			if err = src.Connect(dest); err != nil {
				return fmt.Errorf("%s: connect %d-%d: %w", method, i, dest.Index(), err)
			}
		}
	}

	return nil
}
