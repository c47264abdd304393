// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_lengths.go — generic length-source-driven build.
//
// For each node below its target degree: compute the ring distance to
// every other node, sort ascending, then repeatedly draw a length from the
// pluggable LengthSource and connect to the candidate whose distance is
// nearest the drawn value (same closest-match rule as CDF sampling,
// generalized to an arbitrary sorted array). The shared admit rule applies
// per attempt.
//
// Complexity: O(n log n) per source node for the distance table, O(log n)
// per draw.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/smallworld/graph"
	"github.com/katalvlaran/smallworld/linklength"
	"github.com/katalvlaran/smallworld/sample"
)

// FromLengths returns a Constructor that wires an n-node graph by matching
// lengths drawn from src against per-node sorted distance tables.
func FromLengths(n int, src linklength.LengthSource) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Parameter validation, fail fast with zero side effects.
		if n < MinPeeredNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodFromLengths, n, MinPeeredNodes, ErrTooFewNodes)
		}
		if src == nil {
			return fmt.Errorf("%s: %w", MethodFromLengths, ErrNeedLengthSource)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodFromLengths, ErrNeedRandSource)
		}
		if cfg.degreeSource == nil {
			return fmt.Errorf("%s: degree source is required: %w", MethodFromLengths, ErrNeedDegreeSource)
		}

		// 2) Placement per the location option.
		placeNodes(g, n, cfg.degreeSource, cfg, !cfg.randomLocations)

		// 3) Wire. The distance table is rebuilt per source node: earlier
		//    connections never move nodes, but sharing one table across
		//    sources would need O(n²) memory for no draw-time gain.
		entries := make([]graph.DistanceEntry, n)
		distances := make([]float64, n)
		for i := 0; i < n; i++ {
			node := g.Node(i)
			if node.AtDegree() {
				continue
			}

			for j := 0; j < n; j++ {
				entries[j] = graph.DistanceEntry{Distance: node.DistanceTo(g.Node(j)), Index: j}
			}
			sort.SliceStable(entries, func(a, b int) bool {
				return entries[a].Distance < entries[b].Distance
			})
			for j := range entries {
				distances[j] = entries[j].Distance
			}

			attempts := 0
			for !node.AtDegree() {
				if err := attemptsExceeded(MethodFromLengths, i, attempts, cfg); err != nil {
					return err
				}
				attempts++

				length := src.Length(cfg.rng)
				dest := g.Node(entries[sample.NearestIndex(distances, length)].Index)
				if !admit(node, dest, cfg) {
					continue
				}
				if err := node.Connect(dest); err != nil {
					return fmt.Errorf("%s: connect %d-%d: %w", MethodFromLengths, i, dest.Index(), err)
				}
			}
		}

		return nil
	}
}
