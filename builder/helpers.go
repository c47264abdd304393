// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// helpers.go — node placement and the shared connection-attempt rule.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/smallworld/degree"
	"github.com/katalvlaran/smallworld/graph"
)

// placeNodes assigns ring locations and target degrees to n fresh nodes.
// Locations are either evenly spaced (i/n, already sorted) or uniform
// draws sorted ascending, so the graph's location array stays ordered
// either way. The degree source is consulted exactly once per node.
func placeNodes(g *graph.Graph, n int, src degree.Source, cfg builderConfig, evenSpacing bool) {
	locs := make([]float64, n)
	if evenSpacing {
		for i := range locs {
			locs[i] = float64(i) / float64(n)
		}
	} else {
		for i := range locs {
			locs[i] = cfg.rng.Float64()
		}
		sort.Float64s(locs)
	}

	for i := 0; i < n; i++ {
		g.AddNode(graph.Location(locs[i]), src.NextDegree(), cfg.rng)
	}
}

// admit applies the common attempt rule: a candidate is refused when it is
// the source itself, already connected, or saturated — the last with
// probability cfg.rejectProbability, so a 2% tail still lands edges on
// saturated peers and generation cannot wedge on unreachable capacity.
func admit(src, dest *graph.Node, cfg builderConfig) bool {
	if src == dest || src.IsConnected(dest) {
		return false
	}
	if dest.AtDegree() && cfg.rng.Float64() < cfg.rejectProbability {
		return false
	}

	return true
}

// attemptsExceeded reports whether the per-node cap is active and spent,
// producing the wrapped sentinel for the caller to return.
func attemptsExceeded(method string, nodeIdx, attempts int, cfg builderConfig) error {
	if cfg.maxAttempts > 0 && attempts >= cfg.maxAttempts {
		return fmt.Errorf("%s: node %d exhausted %d attempts: %w",
			method, nodeIdx, attempts, ErrConstructFailed)
	}

	return nil
}
