// SPDX-License-Identifier: MIT
// Package: smallworld/graph
//
// io.go — binary persistence for built graphs.
//
// Format (big-endian throughout):
//   magic "SWG1"
//   uint32  node count n
//   n ×   ( float64 location, int32 target degree )
//   uint32  edge count e
//   e ×   ( uint32 low index, uint32 high index )   with low < high
//
// Each undirected edge is emitted exactly once, by the convention of only
// writing a connection when the peer's index exceeds the emitting node's
// index. Nodes are written in index order, which preserves the ascending
// location order of the build.

package graph

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

var graphFileMagic = [4]byte{'S', 'W', 'G', '1'}

// Write serializes the graph. One-sided shortcut edges are persisted like
// any other edge; reading replays them through Connect, so a round trip
// symmetrizes a Sandberg graph while preserving its unordered edge set.
// Complexity: O(V + E).
func (g *Graph) Write(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, graphFileMagic); err != nil {
		return fmt.Errorf("Write: magic: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(g.nodes))); err != nil {
		return fmt.Errorf("Write: node count: %w", err)
	}

	for _, n := range g.nodes {
		if err := binary.Write(w, binary.BigEndian, float64(n.loc)); err != nil {
			return fmt.Errorf("Write: node %d location: %w", n.index, err)
		}
		if err := binary.Write(w, binary.BigEndian, int32(n.target)); err != nil {
			return fmt.Errorf("Write: node %d target degree: %w", n.index, err)
		}
	}

	// Collect each undirected edge exactly once as a (low, high) pair.
	// Reciprocal edges appear in both peer lists; the set collapses them.
	seen := make(map[[2]uint32]struct{}, g.NEdges())
	pairs := make([]uint32, 0, 2*g.NEdges())
	for _, n := range g.nodes {
		for _, peer := range n.peers {
			low, high := uint32(n.index), uint32(peer.index)
			if low > high {
				low, high = high, low
			}
			if low == high {
				return fmt.Errorf("Write: self-loop at node %d: %w", n.index, ErrInvariant)
			}
			key := [2]uint32{low, high}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, low, high)
		}
	}

	if err := binary.Write(w, binary.BigEndian, uint32(len(pairs)/2)); err != nil {
		return fmt.Errorf("Write: edge count: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, pairs); err != nil {
		return fmt.Errorf("Write: edges: %w", err)
	}

	return nil
}

// Read reconstructs a graph previously serialized with Write. The given
// random handle is attached to every node, replacing whatever the graph was
// built with. Malformed or truncated input fails with ErrBadGraphFile.
// Complexity: O(V + E).
func Read(r io.Reader, rng *rand.Rand) (*Graph, error) {
	var magic [4]byte
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("Read: magic: %v: %w", err, ErrBadGraphFile)
	}
	if magic != graphFileMagic {
		return nil, fmt.Errorf("Read: bad magic %q: %w", magic[:], ErrBadGraphFile)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("Read: node count: %v: %w", err, ErrBadGraphFile)
	}
	if count == 0 {
		return nil, fmt.Errorf("Read: zero nodes: %w", ErrBadGraphFile)
	}

	g, err := New(int(count))
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	for i := uint32(0); i < count; i++ {
		var loc float64
		var target int32
		if err = binary.Read(r, binary.BigEndian, &loc); err != nil {
			return nil, fmt.Errorf("Read: node %d location: %v: %w", i, err, ErrBadGraphFile)
		}
		if err = binary.Read(r, binary.BigEndian, &target); err != nil {
			return nil, fmt.Errorf("Read: node %d target degree: %v: %w", i, err, ErrBadGraphFile)
		}
		if !Location(loc).Valid() || target < 0 {
			return nil, fmt.Errorf("Read: node %d: location %v, target %d out of range: %w",
				i, loc, target, ErrBadGraphFile)
		}
		g.AddNode(Location(loc), int(target), rng)
	}

	var edges uint32
	if err = binary.Read(r, binary.BigEndian, &edges); err != nil {
		return nil, fmt.Errorf("Read: edge count: %v: %w", err, ErrBadGraphFile)
	}
	for e := uint32(0); e < edges; e++ {
		var low, high uint32
		if err = binary.Read(r, binary.BigEndian, &low); err != nil {
			return nil, fmt.Errorf("Read: edge %d: %v: %w", e, err, ErrBadGraphFile)
		}
		if err = binary.Read(r, binary.BigEndian, &high); err != nil {
			return nil, fmt.Errorf("Read: edge %d: %v: %w", e, err, ErrBadGraphFile)
		}
		if low >= high || high >= count {
			return nil, fmt.Errorf("Read: edge %d: bad pair (%d,%d): %w", e, low, high, ErrBadGraphFile)
		}
		if err = g.Node(int(low)).Connect(g.Node(int(high))); err != nil {
			return nil, fmt.Errorf("Read: edge %d: %v: %w", e, err, ErrBadGraphFile)
		}
	}

	return g, nil
}
