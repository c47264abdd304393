// SPDX-License-Identifier: MIT
// Package: smallworld/linklength
//
// types.go — strategy interfaces and sentinel errors.

package linklength

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/smallworld/graph"
)

// ErrBadLengthBounds indicates invalid bounds for a continuous length
// source (min ≤ 0, or max ≤ min).
var ErrBadLengthBounds = errors.New("linklength: invalid length bounds")

// LengthSource draws a raw link length (a ring distance). The builder
// matches the drawn value against a sorted per-node distance table to find
// the nearest candidate peer.
type LengthSource interface {
	Length(rng *rand.Rand) float64
}

// PeerSource draws a destination node for the given source node directly,
// without an intermediate length value.
type PeerSource interface {
	Peer(from *graph.Node, rng *rand.Rand) (*graph.Node, error)
}
