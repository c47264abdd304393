// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors validate fail-fast with zero side effects on the graph.
//   • Runtime code never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates a requested node count below the minimum for
// the invoked constructor (Sandberg needs a ring of 3; the Kleinberg and
// length-source modes need at least 2 nodes to have any candidate peers).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* reject size */ }.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// a random source in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNeedDegreeSource indicates a degree-constrained constructor was
// invoked without a degree source (set WithDegreeSource).
var ErrNeedDegreeSource = errors.New("builder: degree source is required")

// ErrNeedLengthSource indicates FromLengths was given a nil LengthSource.
var ErrNeedLengthSource = errors.New("builder: length source is required")

// ErrConstructFailed indicates the per-node attempt cap (WithMaxAttempts)
// was exhausted before a node reached its degree target — the degree
// targets and rejection rate are jointly infeasible for this node count.
// Usage: if errors.Is(err, ErrConstructFailed) { /* relax targets */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
