// SPDX-License-Identifier: MIT
// Package: smallworld/graph
//
// errors.go — sentinel errors for the graph package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Validation failures (bad input) and invariant failures (defects in the
//     generation algorithms) use distinct sentinels and never overlap.

package graph

import "errors"

// ErrNonPositiveNodes indicates that a graph was requested with a node count
// of zero or less. This is a fatal input-validation failure, never retried.
// Usage: if errors.Is(err, ErrNonPositiveNodes) { /* reject request */ }.
var ErrNonPositiveNodes = errors.New("graph: node count must be positive")

// ErrSelfConnection indicates that a node attempted to connect to itself.
// Self-loops are forbidden in every topology this package models.
var ErrSelfConnection = errors.New("graph: self-connection not allowed")

// ErrDuplicateEdge indicates an attempt to connect two nodes that are
// already connected. Multi-edges are forbidden.
var ErrDuplicateEdge = errors.New("graph: nodes already connected")

// ErrBadGraphFile indicates malformed, truncated, or out-of-range persisted
// graph input. This is a fatal read failure.
var ErrBadGraphFile = errors.New("graph: malformed graph file")

// ErrInvariant indicates an internal consistency violation: a condition the
// generation or serialization algorithms guarantee by construction did not
// hold. It signals a defect in this library, not bad caller input, and is
// deliberately distinct from the validation sentinels above.
var ErrInvariant = errors.New("graph: internal invariant violated")
