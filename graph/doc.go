// Package graph defines the core data model for small-world ring topologies:
// ring locations, degree-constrained nodes with reciprocal adjacency, the
// Graph container, and a compact binary persistence format.
//
// What:
//
//   - Location: a point on the unit ring [0,1) under the wrap-around metric
//     min(|a−b|, 1−|a−b|), so distances lie in [0, 0.5].
//   - Node: stable integer index, immutable-after-build location, a target
//     degree drawn once at placement time, and an ordered peer list mutated
//     only through Connect / ConnectOutgoing.
//   - Graph: ordered node sequence (index = position) plus the parallel
//     ascending-sorted location array that generation strategies rely on.
//   - Write/Read: round-trippable binary serialization (node records, then
//     each undirected edge exactly once as a low<high index pair).
//
// Why:
//
//   - Decentralized routing studies need graphs whose structure is exactly
//     reproducible from a seed, with adjacency that stays symmetric by
//     construction rather than by convention.
//
// Adjacency discipline:
//
//   - Connect mutates both endpoints and is the only way to add an
//     undirected edge. ConnectOutgoing performs a one-sided addition and
//     exists solely for ring seeding, where the builder issues the two
//     reciprocal calls itself; see builder.Sandberg for the one documented
//     asymmetric exception (per-node shortcut edges).
//
// Errors (sentinel):
//
//   - ErrNonPositiveNodes: a graph was requested with n ≤ 0 nodes.
//   - ErrSelfConnection:   a node attempted to connect to itself.
//   - ErrDuplicateEdge:    the two nodes are already connected.
//   - ErrBadGraphFile:     malformed or truncated persisted input.
//   - ErrInvariant:        an internal consistency check failed; this is a
//     defect in generation logic, not bad input.
//
// Concurrency: none. Everything here is single-threaded and deterministic
// given the seeded *rand.Rand handed to each node at placement time.
package graph
