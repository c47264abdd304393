// Package linklength provides the link-length strategies consumed by the
// generic graph builder: sources of either a directly sampled peer node
// (discrete, distance-weighted) or a continuous length value matched
// against a node's sorted neighbor-distance table.
//
// What:
//
//   - PeerSource: draws a destination node for a given source node.
//     Kleinberg is the concrete implementation: per source node it lazily
//     builds and memoizes a non-normalized 1/distance CDF over all other
//     nodes, then samples by nearest-cumulative-value lookup. Repeated
//     draws for the same source are O(log n) after the first O(n) build —
//     essential because a source may need many draws before reaching its
//     degree target under the saturation-rejection rule.
//   - LengthSource: draws a raw ring-distance value. Inverse realizes a
//     1/d length density on [Min, Max]; Uniform draws flat on
//     [0, graph.MaxDistance].
//
// Cache ownership:
//
//   - The Kleinberg CDF cache is owned by the sampler instance and keyed by
//     node index. It is never invalidated: the node set is fixed after
//     construction in this system. No global state.
//
// Errors:
//
//   - ErrInvariant (from package graph) when an accumulated CDF is not
//     non-decreasing — a defect in weight accumulation, surfaced rather
//     than sampled from.
//   - ErrBadLengthBounds for an Inverse source with non-positive or
//     inverted bounds.
package linklength
