// Package builder generates small-world ring topologies: it places nodes
// on the unit ring and wires edges under per-node degree targets with a
// probabilistic degree-saturation rejection rule.
//
// The package offers three generation modes, each a Constructor closure
// composed through BuildGraph:
//
//   - Sandberg(n):         predecessor ring plus exactly one one-sided
//     random shortcut per node — the simplified reference topology with
//     fixed degree 3 by construction.
//   - FromLengths(n, src): generic length-source-driven build; each draw
//     from the LengthSource is matched against the source node's sorted
//     distance table by nearest-value lookup.
//   - Kleinberg(n, fast):  the 1/d distance-weighted model. Fast mode uses
//     the continuous approximation steps = round((n/2)^U) over evenly
//     spaced, location-sorted nodes, O(1) per draw. Exact mode samples
//     from per-node cumulative 1/distance tables (linklength.Kleinberg),
//     O(n) once per source node, correct for arbitrary spacing.
//
// Connection attempt rule (all modes): a candidate is rejected and redrawn
// when it is the source itself, already connected, or — if it has reached
// its own target degree — with probability RejectProbability (default
// 0.98). The remaining 2% admits edges into saturated peers so generation
// cannot stall when a hard cap would make remaining capacity unreachable;
// the constant is a tunable statistical parameter, not a physical one.
//
// Options:
//
//   - WithSeed / WithRand:        the topology RNG (required, stochastic).
//   - WithDegreeSource:           per-node target degrees (required except
//     for Sandberg, which fixes degree by construction).
//   - WithRejectProbability(p):   override the saturation rejection rate.
//   - WithMaxAttempts(k):         per-node safety cap on redraws; 0 (the
//     default) preserves the reference behavior of spinning until the
//     target is met, a positive k turns pathological degree
//     configurations into ErrConstructFailed.
//   - WithRandomLocations():      place nodes at sorted uniform-random
//     locations instead of even spacing (exact/generic modes only; fast
//     Kleinberg always spaces evenly).
//
// Errors (sentinel):
//
//   - ErrTooFewNodes, ErrNeedRandSource, ErrNeedDegreeSource,
//     ErrNeedLengthSource, ErrConstructFailed.
//
// Determinism: same options, seed, and constructor order ⇒ identical
// graphs.
package builder
