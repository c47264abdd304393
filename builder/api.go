// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// api.go — thin public entry point for the builder package.
//
// Design contract (strict):
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates the graph,
//     resolves cfg, runs constructors in order.
//   • All public factories are declared in impl_*.go; each returns a
//     Constructor closure.
//   • Determinism: same n, options, seed, and constructor order ⇒
//     identical graphs.
//   • Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place their own nodes before wiring (one topology per build).
//   - Preserve determinism for the same config.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph with capacity for n nodes, resolves the
// builder configuration from opts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Errors: graph.ErrNonPositiveNodes for n ≤ 0; otherwise whatever the
// constructors return (branch with errors.Is against builder sentinels).
func BuildGraph(n int, opts []Option, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
