// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// constants.go — shared constants: method tags for error context, minimum
// sizes, and the default saturation rejection rate.

package builder

const (
	// MethodSandberg is the canonical name for the Sandberg constructor.
	MethodSandberg = "Sandberg"
	// MethodKleinberg is the canonical name for the Kleinberg constructor.
	MethodKleinberg = "Kleinberg"
	// MethodFromLengths is the canonical name for the FromLengths constructor.
	MethodFromLengths = "FromLengths"
)

// MinRingNodes is the smallest ring the Sandberg mode accepts: below 3
// nodes the predecessor ring degenerates into loops or multi-edges.
const MinRingNodes = 3

// MinPeeredNodes is the smallest graph for the degree-constrained modes:
// a single node has no candidate peers at all.
const MinPeeredNodes = 2

// DefaultRejectProbability is the probability of refusing a connection to
// a peer that has already reached its target degree. The 2% complement
// deliberately lets generation overshoot nominal targets instead of
// stalling; changing it changes the statistical shape of built graphs.
const DefaultRejectProbability = 0.98

// sandbergTargetDegree is the fixed per-node target recorded on Sandberg
// nodes: one reciprocal edge to each ring neighbor plus the node's own
// shortcut. Degree targets play no role in wiring that mode.
const sandbergTargetDegree = 3
