// SPDX-License-Identifier: MIT
// Package: smallworld/darknet
//
// simulator.go — the swap-round driver and walk-distribution harness.

package darknet

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/smallworld/graph"
)

// ErrNilGraph indicates a Simulator was requested without a graph.
var ErrNilGraph = errors.New("darknet: graph is nil")

// ErrNilRand indicates a Simulator was requested without a random source.
var ErrNilRand = errors.New("darknet: rng is required")

// Simulator owns the graph under simulation and the random source driving
// origin/target selection.
type Simulator struct {
	g   *graph.Graph
	rng *rand.Rand
}

// NewSimulator validates its collaborators and returns a simulator.
func NewSimulator(g *graph.Graph, rng *rand.Rand) (*Simulator, error) {
	if g == nil {
		return nil, fmt.Errorf("NewSimulator: %w", ErrNilGraph)
	}
	if rng == nil {
		return nil, fmt.Errorf("NewSimulator: %w", ErrNilRand)
	}

	return &Simulator{g: g, rng: rng}, nil
}

// SwapRound performs attempts location-swap attempts and returns how many
// were accepted.
//
// Target selection: uniform=true draws the target from a flat distribution
// (centralized baseline); otherwise the target is the terminus of a random
// walk from the origin. When the walk is degree-corrected (uniformWalk
// false) the hop count is doubled to compensate for hops the correction
// rejects internally.
func (s *Simulator) SwapRound(attempts int, uniform bool, walkHops int, uniformWalk bool) int {
	accepted := 0
	size := s.g.Size()
	for i := 0; i < attempts; i++ {
		origin := s.g.Node(s.rng.Intn(size))

		var target *graph.Node
		if uniform {
			target = s.g.Node(s.rng.Intn(size))
		} else {
			hops := walkHops
			if !uniformWalk {
				hops *= 2
			}
			target = origin.RandomWalk(hops, uniformWalk, s.rng)
		}

		if origin.AttemptSwap(target) {
			accepted++
		}
	}

	return accepted
}

// WalkDistribution runs walks independent random walks of hopsPerWalk hops
// from uniformly chosen origins. It returns the per-node terminal tally
// (indexed by node) and the number of walks that terminated at their own
// origin.
func (s *Simulator) WalkDistribution(walks, hopsPerWalk int, uniform bool) (freq []int, originReturns int) {
	freq = make([]int, s.g.Size())
	for i := 0; i < walks; i++ {
		origin := s.g.Node(s.rng.Intn(s.g.Size()))
		dest := origin.RandomWalk(hopsPerWalk, uniform, s.rng)
		freq[dest.Index()]++
		if dest == origin {
			originReturns++
		}
	}

	return freq, originReturns
}
