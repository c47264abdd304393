// Package darknet drives the decentralized location-swap process over a
// built graph and provides the statistical harness for validating its
// sampling behavior.
//
// What:
//
//   - Simulator.SwapRound: repeated swap attempts. Each attempt picks a
//     uniform origin and a target — either uniformly at random (the
//     centralized baseline) or by a bounded random walk from the origin
//     (the decentralized approximation). The accept/reject decision is the
//     node's own swap rule; the round reports how many swaps were
//     accepted.
//   - Simulator.WalkDistribution: a diagnostic, not part of steady-state
//     simulation. It runs many independent walks from uniform origins,
//     tallies terminal node indexes, and counts walks that end at their
//     own origin — the empirical check that the walk's stationary
//     distribution matches the intended target (uniform when
//     degree-corrected, degree-biased otherwise).
//
// Degree-corrected walks reject some proposed hops internally, so
// SwapRound doubles the hop count for them to preserve effective walk
// length.
//
// Determinism: single-threaded; all randomness flows from the simulator's
// seeded handle and the nodes' own handles.
package darknet
