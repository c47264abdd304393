package graph_test

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/graph"
)

// edgeSet collects a graph's edges as canonical (low,high) pairs.
func edgeSet(g *graph.Graph) [][2]int {
	set := make(map[[2]int]struct{})
	for _, n := range g.Nodes() {
		for _, peer := range n.Connections() {
			low, high := n.Index(), peer.Index()
			if low > high {
				low, high = high, low
			}
			set[[2]int{low, high}] = struct{}{}
		}
	}

	pairs := make([][2]int, 0, len(set))
	for p := range set {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}

		return pairs[a][1] < pairs[b][1]
	})

	return pairs
}

// TestWriteRead_RoundTrip verifies that persisting and re-reading a graph
// reproduces node count, locations, target degrees, and the unordered
// edge set.
func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	// A small irregular graph: ring plus a few chords.
	g := newTestGraph(t, 20, 4, 11)
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Node(i).Connect(g.Node((i+1)%20)))
	}
	require.NoError(t, g.Node(0).Connect(g.Node(10)))
	require.NoError(t, g.Node(3).Connect(g.Node(17)))
	require.NoError(t, g.Node(5).Connect(g.Node(13)))

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))

	got, err := graph.Read(&buf, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, g.Size(), got.Size())
	assert.Equal(t, g.Locations(), got.Locations())
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, g.Node(i).TargetDegree(), got.Node(i).TargetDegree())
	}
	assert.Equal(t, edgeSet(g), edgeSet(got))
	assert.Equal(t, g.NEdges(), got.NEdges())
}

// TestRead_RejectsMalformedInput covers truncation, bad magic, and
// out-of-range edge indexes.
func TestRead_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, 5, 2, 1)
	require.NoError(t, g.Node(0).Connect(g.Node(1)))

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))
	full := buf.Bytes()
	rng := rand.New(rand.NewSource(1))

	// 1. Truncated at various prefixes.
	for _, cut := range []int{0, 3, 4, 10, len(full) - 1} {
		_, err := graph.Read(bytes.NewReader(full[:cut]), rng)
		assert.ErrorIs(t, err, graph.ErrBadGraphFile, "cut=%d", cut)
	}

	// 2. Corrupted magic.
	bad := append([]byte(nil), full...)
	bad[0] = 'X'
	_, err := graph.Read(bytes.NewReader(bad), rng)
	assert.ErrorIs(t, err, graph.ErrBadGraphFile)
}
