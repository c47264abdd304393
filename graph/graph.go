// SPDX-License-Identifier: MIT
// Package: smallworld/graph
//
// graph.go — the Graph container: ordered node sequence plus the parallel
// ascending-sorted location array generation strategies rely on.
//
// Contract:
//   • Node index == position in the sequence, assigned by AddNode.
//   • The node set is fixed after construction; nothing here removes nodes.
//   • Locations MUST be appended in ascending order (builders sort before
//     placing); the fast Kleinberg mode additionally assumes even spacing.

package graph

import (
	"fmt"
	"math/rand"
)

// DistanceEntry is a transient (distance, node index) pair used while
// building sorted-by-distance views of candidate peers. Ordering is by
// ascending distance; ties keep construction order.
type DistanceEntry struct {
	Distance float64
	Index    int
}

// Graph is an ordered sequence of nodes on the unit ring.
type Graph struct {
	nodes     []*Node
	locations []float64 // parallel to nodes, ascending
}

// New returns an empty graph with capacity for nNodes.
// The count is the requested size, not a cap; it must be positive.
func New(nNodes int) (*Graph, error) {
	if nNodes <= 0 {
		return nil, fmt.Errorf("New(%d): %w", nNodes, ErrNonPositiveNodes)
	}

	return &Graph{
		nodes:     make([]*Node, 0, nNodes),
		locations: make([]float64, 0, nNodes),
	}, nil
}

// AddNode appends a node at the next index with the given location, target
// degree, and random handle, and returns it. Builders call this once per
// node in ascending location order.
func (g *Graph) AddNode(loc Location, targetDegree int, rng *rand.Rand) *Node {
	n := newNode(len(g.nodes), loc, targetDegree, rng)
	g.nodes = append(g.nodes, n)
	g.locations = append(g.locations, float64(loc))

	return n
}

// Node returns the node at index i.
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Nodes returns the node sequence in index order.
// The returned slice is the graph's own storage; callers must not mutate it.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Locations returns the location array parallel to the node sequence, in
// the ascending order it was built with. It records placement time: swap
// simulation exchanges node locations without touching this array, so
// post-swap analysis must read Node.Location instead.
func (g *Graph) Locations() []float64 { return g.locations }

// Size returns the number of nodes.
func (g *Graph) Size() int { return len(g.nodes) }

// NEdges counts undirected edges: half the sum of node degrees.
// One-sided shortcut edges (Sandberg builds) count toward the degree sum of
// exactly one endpoint, so for such graphs the sum may be odd; the integer
// division then matches the low<high emission convention used elsewhere.
func (g *Graph) NEdges() int {
	var sum int
	for _, n := range g.nodes {
		sum += n.Degree()
	}

	return sum / 2
}
