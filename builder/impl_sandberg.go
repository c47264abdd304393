// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_sandberg.go — the ring+shortcut reference topology.
//
// Canonical model:
//   • Base ring: every node i holds a reciprocal edge to its predecessor
//     (i−1 mod n), established by two one-sided ConnectOutgoing calls.
//   • Shortcuts: each node adds exactly one one-sided edge to a uniformly
//     chosen, not-yet-connected, non-self peer. The shortcut stays
//     one-sided deliberately: every node then ends the build with degree
//     exactly 3 (two ring neighbors plus its own shortcut), regardless of
//     how often it is chosen as someone else's shortcut target.
//
// Degree targets are irrelevant to this mode; nodes carry a fixed target
// of 3 purely so AtDegree stays meaningful downstream.
//
// Complexity: O(n) expected; the shortcut redraw loop rejects only self
// and the two ring neighbors, so each draw succeeds with probability
// ≈ (n−3)/n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/degree"
	"github.com/katalvlaran/smallworld/graph"
)

// Sandberg returns a Constructor that builds the n-node ring+shortcut
// reference topology.
func Sandberg(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Parameter validation, fail fast with zero side effects.
		if n < MinRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodSandberg, n, MinRingNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodSandberg, ErrNeedRandSource)
		}

		// 2) Place nodes evenly with the fixed construction target.
		placeNodes(g, n, degree.Fixed(sandbergTargetDegree), cfg, !cfg.randomLocations)

		// 3) Base ring: reciprocal predecessor edges via two one-sided calls.
		for i := 0; i < n; i++ {
			wrapped := i - 1
			if wrapped < 0 {
				wrapped += n
			}
			u, v := g.Node(i), g.Node(wrapped)
			if err := u.ConnectOutgoing(v); err != nil {
				return fmt.Errorf("%s: ring %d→%d: %w", MethodSandberg, i, wrapped, err)
			}
			if err := v.ConnectOutgoing(u); err != nil {
				return fmt.Errorf("%s: ring %d→%d: %w", MethodSandberg, wrapped, i, err)
			}
		}

		// 4) Shortcuts: one one-sided edge per node to a fresh uniform peer.
		for i := 0; i < n; i++ {
			src := g.Node(i)
			attempts := 0
			for {
				if err := attemptsExceeded(MethodSandberg, i, attempts, cfg); err != nil {
					return err
				}
				attempts++
				other := cfg.rng.Intn(n)
				if other == i || src.IsConnected(g.Node(other)) {
					continue
				}
				if err := src.ConnectOutgoing(g.Node(other)); err != nil {
					return fmt.Errorf("%s: shortcut %d→%d: %w", MethodSandberg, i, other, err)
				}

				break
			}
		}

		return nil
	}
}
