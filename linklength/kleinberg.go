// SPDX-License-Identifier: MIT
// Package: smallworld/linklength
//
// kleinberg.go — cached discrete peer sampler for the 1/d Kleinberg
// distribution.
//
// Per source node the sampler accumulates S[j] = S[j−1] + 1/distance(i,j)
// for j ≠ i, with the source's own slot carrying zero weight but still
// occupying position i so indexes stay aligned with the node array.
// S is non-decreasing and S[n−1] is the normalizing total; a draw is
// x = uniform(0,1) × total resolved by nearest-cumulative-value lookup.

package linklength

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/smallworld/graph"
	"github.com/katalvlaran/smallworld/sample"
)

// Kleinberg samples peers with probability proportional to the inverse
// ring distance from the source node. CDFs are built lazily, one per
// source node, and memoized for the lifetime of the instance.
type Kleinberg struct {
	nodes []*graph.Node
	cdfs  map[int][]float64 // keyed by source node index; never invalidated
}

// NewKleinberg returns a sampler over the graph's fixed node set.
func NewKleinberg(g *graph.Graph) *Kleinberg {
	return &Kleinberg{
		nodes: g.Nodes(),
		cdfs:  make(map[int][]float64),
	}
}

// Peer draws a destination for from. The first call for a given source
// costs O(n) to accumulate the CDF; subsequent calls cost O(log n).
func (k *Kleinberg) Peer(from *graph.Node, rng *rand.Rand) (*graph.Node, error) {
	cdf, ok := k.cdfs[from.Index()]
	if !ok {
		var err error
		if cdf, err = k.buildCDF(from); err != nil {
			return nil, err
		}
		k.cdfs[from.Index()] = cdf
	}

	total := cdf[len(cdf)-1]
	x := rng.Float64() * total

	return k.nodes[sample.NearestIndex(cdf, x)], nil
}

// buildCDF accumulates the non-normalized 1/distance running sums for one
// source node. The source's own slot repeats its predecessor's sum.
func (k *Kleinberg) buildCDF(from *graph.Node) ([]float64, error) {
	cdf := make([]float64, len(k.nodes))
	norm := 0.0
	for j, node := range k.nodes {
		if j != from.Index() {
			norm += 1.0 / from.DistanceTo(node)
		}
		cdf[j] = norm
	}
	if !sample.NonDecreasing(cdf) {
		return nil, fmt.Errorf("Kleinberg: CDF for node %d not non-decreasing: %w",
			from.Index(), graph.ErrInvariant)
	}

	return cdf, nil
}
