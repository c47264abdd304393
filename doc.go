// Package smallworld generates and analyzes small-world ring topologies —
// from Kleinberg-style shortcut graphs to darknet location-swap
// simulations.
//
// 🚀 What is smallworld?
//
//	A deterministic toolkit for navigable-network experiments:
//		• Ring primitives: circular [0,1) locations, nodes, adjacency
//		• Builders: Sandberg ring+shortcut, Kleinberg (fast & exact), generic length-driven wiring
//		• Degree sources: fixed, Poisson, recorded distributions
//		• Link lengths: 1/d samplers over discrete nodes or continuous draws
//		• Topology stats: degree moments, edge lengths, clustering coefficients
//		• Darknet: Metropolis location swaps and random-walk harnesses
//
// ✨ Why choose smallworld?
//
//   - Reproducible – every stochastic path is seedable, same seed ⇒ same graph
//   - Composable – builders are closures over a shared attempt rule
//   - Inspectable – graphs persist to a compact binary format and back
//
// Under the hood, everything is organized under focused subpackages:
//
//	graph/      — Location metric, Node, Graph, binary persistence
//	sample/     — weighted tables & closest-cumulative-value search
//	degree/     — target-degree sources (fixed, Poisson, distribution)
//	linklength/ — link-length and peer samplers
//	builder/    — graph constructors and their options
//	topology/   — read-only structural statistics
//	darknet/    — swap simulation and walk distribution
//	cmd/        — the smallworld CLI
//
// Quick ASCII example:
//
//	    0.00──0.25
//	     │  ╲   │
//	    0.75──0.50
//
//	a four-node ring with one Kleinberg shortcut across it.
//
//	go get github.com/katalvlaran/smallworld
package smallworld
