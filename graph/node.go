// SPDX-License-Identifier: MIT
// Package: smallworld/graph
//
// node.go — Node: identity, location, target degree, reciprocal adjacency,
// and the node-local decentralized operations (clustering, random walk,
// location swap).
//
// Contract:
//   • index is stable, 0-based, assigned once at AddNode/Read time.
//   • location is immutable after build except through AttemptSwap, which
//     exchanges the locations of exactly two nodes.
//   • The peer list is ordered (insertion order) so edge iteration is
//     reproducible; membership checks are O(1) via a side index.
//   • Connect is the only symmetric mutation; ConnectOutgoing is one-sided
//     and reserved for builders (ring seeding, Sandberg shortcuts).

package graph

import (
	"fmt"
	"math/rand"
)

// Node is a single participant in a small-world topology.
type Node struct {
	index  int
	loc    Location
	target int
	rng    *rand.Rand

	peers   []*Node          // ordered; iteration order is stable
	peerIdx map[int]struct{} // membership index, keyed by peer index
}

// newNode is invoked by Graph.AddNode and by the persistence reader;
// nodes are never created detached from a graph.
func newNode(index int, loc Location, targetDegree int, rng *rand.Rand) *Node {
	return &Node{
		index:   index,
		loc:     loc,
		target:  targetDegree,
		rng:     rng,
		peerIdx: make(map[int]struct{}),
	}
}

// Index returns the node's stable 0-based position in its graph.
func (n *Node) Index() int { return n.index }

// Location returns the node's current ring location.
func (n *Node) Location() Location { return n.loc }

// TargetDegree returns the degree target assigned at placement time.
func (n *Node) TargetDegree() int { return n.target }

// Degree returns the number of distinct peers in the node's own list.
func (n *Node) Degree() int { return len(n.peers) }

// AtDegree reports whether the node has reached (or, through the
// saturation-relaxation rule, exceeded) its target degree.
func (n *Node) AtDegree() bool { return len(n.peers) >= n.target }

// IsConnected reports whether other is in this node's peer list.
// Note the check is one-sided: for graphs built only through Connect the
// answer is symmetric; for ring-seeded shortcut edges it is not.
func (n *Node) IsConnected(other *Node) bool {
	_, ok := n.peerIdx[other.index]

	return ok
}

// Connections returns the node's peer list in stable insertion order.
// The returned slice is the node's own storage; callers must not mutate it.
func (n *Node) Connections() []*Node { return n.peers }

// DistanceTo returns the ring distance to another node's location.
func (n *Node) DistanceTo(other *Node) float64 {
	return n.loc.Distance(other.loc)
}

// DistanceToLoc returns the ring distance to an arbitrary location.
func (n *Node) DistanceToLoc(loc Location) float64 {
	return n.loc.Distance(loc)
}

// Connect adds the undirected edge n—other, mutating both peer lists.
// It fails with ErrSelfConnection or ErrDuplicateEdge without side effects.
// Complexity: O(1).
func (n *Node) Connect(other *Node) error {
	if n == other {
		return fmt.Errorf("node %d: %w", n.index, ErrSelfConnection)
	}
	if n.IsConnected(other) || other.IsConnected(n) {
		return fmt.Errorf("nodes %d and %d: %w", n.index, other.index, ErrDuplicateEdge)
	}
	n.addPeer(other)
	other.addPeer(n)

	return nil
}

// ConnectOutgoing adds other to this node's peer list only. It exists for
// builders: ring seeding establishes symmetry with two reciprocal calls,
// and Sandberg shortcut edges deliberately stay one-sided so every node
// ends the build with exactly one shortcut of its own.
func (n *Node) ConnectOutgoing(other *Node) error {
	if n == other {
		return fmt.Errorf("node %d: %w", n.index, ErrSelfConnection)
	}
	if n.IsConnected(other) {
		return fmt.Errorf("nodes %d and %d: %w", n.index, other.index, ErrDuplicateEdge)
	}
	n.addPeer(other)

	return nil
}

func (n *Node) addPeer(other *Node) {
	n.peers = append(n.peers, other)
	n.peerIdx[other.index] = struct{}{}
}

// ClosedTriplets counts the pairs of this node's peers that are themselves
// connected, i.e. the triangles this node participates in.
// Both directions are checked so one-sided shortcut edges still close
// triplets. Complexity: O(d²) for degree d.
func (n *Node) ClosedTriplets() int {
	var closed int
	for i := 0; i < len(n.peers); i++ {
		for j := i + 1; j < len(n.peers); j++ {
			if n.peers[i].IsConnected(n.peers[j]) || n.peers[j].IsConnected(n.peers[i]) {
				closed++
			}
		}
	}

	return closed
}

// LocalClusterCoeff returns the node's local clustering coefficient:
// closed triplets over possible triplets d·(d−1)/2, in [0,1].
// Nodes with fewer than two peers have no possible triplets and return 0.
func (n *Node) LocalClusterCoeff() float64 {
	d := len(n.peers)
	if d < 2 {
		return 0
	}

	return float64(n.ClosedTriplets()) / float64(d*(d-1)/2)
}

// RandomWalk performs a bounded random walk starting at this node and
// returns the terminal node. With uniform=true every hop moves to a
// uniformly chosen peer, which biases the stationary distribution toward
// high-degree nodes. With uniform=false each proposed hop from u to v is a
// Metropolis step accepted with probability degree(u)/degree(v); rejected
// proposals consume a hop without moving, which is why callers compensate
// by walking longer (see darknet.Simulator).
// Complexity: O(hops).
func (n *Node) RandomWalk(hops int, uniform bool, rng *rand.Rand) *Node {
	cur := n
	for h := 0; h < hops; h++ {
		if len(cur.peers) == 0 {
			return cur
		}
		next := cur.peers[rng.Intn(len(cur.peers))]
		if uniform {
			cur = next

			continue
		}
		// Degree-bias correction: accept with probability deg(cur)/deg(next).
		if next.Degree() <= cur.Degree() || rng.Float64()*float64(next.Degree()) < float64(cur.Degree()) {
			cur = next
		}
	}

	return cur
}

// AttemptSwap applies the darknet location-swap acceptance rule between
// this node and target, exchanging their ring locations on acceptance and
// reporting whether the swap happened.
//
// The rule is the Metropolis acceptance on the product of distances from
// each node to its peers: with D1 the product under current locations and
// D2 under exchanged locations, the swap is accepted when D2 ≤ D1 and
// otherwise with probability D1/D2. Zero distances contribute nothing to
// either product so a node co-located with a peer cannot force division
// by zero. Uses the node's own random handle.
func (n *Node) AttemptSwap(target *Node) bool {
	if n == target {
		return false
	}

	before := n.peerDistanceProduct(n.loc) * target.peerDistanceProduct(target.loc)
	after := n.peerDistanceProduct(target.loc) * target.peerDistanceProduct(n.loc)

	if after <= before || n.rng.Float64() < before/after {
		n.loc, target.loc = target.loc, n.loc

		return true
	}

	return false
}

// peerDistanceProduct multiplies the ring distances from the given location
// to every peer of the node, skipping exact-zero distances.
func (n *Node) peerDistanceProduct(from Location) float64 {
	product := 1.0
	for _, peer := range n.peers {
		if d := from.Distance(peer.loc); d > 0 {
			product *= d
		}
	}

	return product
}
