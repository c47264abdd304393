// Package degree supplies per-node target-degree generators for the
// topology builders. A Source is consulted exactly once per node at
// placement time; the drawn value becomes that node's immutable target.
//
// Variants:
//
//   - Fixed:        every node gets the same target.
//   - Poisson:      targets drawn from a Poisson(λ) distribution, the
//     empirical shape of peer counts in deployed darknets.
//   - Distribution: targets replayed from a recorded value/occurrence
//     table (sample.WeightedDistribution), for conforming a synthetic
//     graph to a measured degree distribution.
//
// All sources are deterministic given their seed or random handle.
package degree
