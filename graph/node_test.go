package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/graph"
)

// newTestGraph places n evenly spaced nodes with the given target degree.
func newTestGraph(t *testing.T, n, target int, seed int64) *graph.Graph {
	t.Helper()

	g, err := graph.New(n)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		g.AddNode(graph.Location(float64(i)/float64(n)), target, rng)
	}

	return g
}

// TestNew_RejectsNonPositiveCount verifies the fatal input-validation rule.
func TestNew_RejectsNonPositiveCount(t *testing.T) {
	t.Parallel()

	_, err := graph.New(0)
	assert.ErrorIs(t, err, graph.ErrNonPositiveNodes)
	_, err = graph.New(-5)
	assert.ErrorIs(t, err, graph.ErrNonPositiveNodes)
}

// TestConnect_Discipline verifies the symmetric-update rule: one Connect
// call mutates both sides, and self-loops and duplicates are refused.
func TestConnect_Discipline(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, 4, 3, 1)
	a, b := g.Node(0), g.Node(1)

	// 1. A fresh edge updates both peer lists.
	require.NoError(t, a.Connect(b))
	assert.True(t, a.IsConnected(b))
	assert.True(t, b.IsConnected(a))
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, 1, b.Degree())

	// 2. Duplicates are refused from either side, without side effects.
	assert.ErrorIs(t, a.Connect(b), graph.ErrDuplicateEdge)
	assert.ErrorIs(t, b.Connect(a), graph.ErrDuplicateEdge)
	assert.Equal(t, 1, a.Degree())

	// 3. Self-loops are refused.
	assert.ErrorIs(t, a.Connect(a), graph.ErrSelfConnection)

	// 4. ConnectOutgoing mutates one side only.
	c, d := g.Node(2), g.Node(3)
	require.NoError(t, c.ConnectOutgoing(d))
	assert.True(t, c.IsConnected(d))
	assert.False(t, d.IsConnected(c))
	assert.ErrorIs(t, c.ConnectOutgoing(d), graph.ErrDuplicateEdge)
}

// TestNode_Clustering checks triplet counting and the local coefficient on
// a triangle plus one pendant node.
func TestNode_Clustering(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, 4, 3, 1)
	// Triangle 0-1-2, pendant 3 hanging off node 0.
	require.NoError(t, g.Node(0).Connect(g.Node(1)))
	require.NoError(t, g.Node(1).Connect(g.Node(2)))
	require.NoError(t, g.Node(0).Connect(g.Node(2)))
	require.NoError(t, g.Node(0).Connect(g.Node(3)))

	// Node 1 sees exactly the triangle: 1 closed of 1 possible.
	assert.Equal(t, 1, g.Node(1).ClosedTriplets())
	assert.InDelta(t, 1.0, g.Node(1).LocalClusterCoeff(), 1e-12)

	// Node 0 has peers {1,2,3}: one connected pair of three possible.
	assert.Equal(t, 1, g.Node(0).ClosedTriplets())
	assert.InDelta(t, 1.0/3.0, g.Node(0).LocalClusterCoeff(), 1e-12)

	// The pendant has a single peer: no possible triplets.
	assert.Equal(t, 0, g.Node(3).ClosedTriplets())
	assert.Zero(t, g.Node(3).LocalClusterCoeff())
}

// TestRandomWalk_Bounds verifies basic walk mechanics: zero hops stay put,
// every terminal is a real node, and an isolated node never moves.
func TestRandomWalk_Bounds(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, 6, 2, 7)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Node(i).Connect(g.Node(i+1)))
	}
	rng := rand.New(rand.NewSource(7))

	origin := g.Node(2)
	assert.Same(t, origin, origin.RandomWalk(0, true, rng))

	for i := 0; i < 100; i++ {
		dest := origin.RandomWalk(10, true, rng)
		assert.GreaterOrEqual(t, dest.Index(), 0)
		assert.Less(t, dest.Index(), g.Size())

		dest = origin.RandomWalk(10, false, rng)
		assert.GreaterOrEqual(t, dest.Index(), 0)
		assert.Less(t, dest.Index(), g.Size())
	}

	isolated, err := graph.New(1)
	require.NoError(t, err)
	lone := isolated.AddNode(0.5, 0, rng)
	assert.Same(t, lone, lone.RandomWalk(50, false, rng))
}

// TestAttemptSwap exercises the location-swap acceptance rule: a swap that
// strictly shortens both nodes' edges is always accepted and exchanges the
// locations; self-swaps are refused.
func TestAttemptSwap(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, 4, 2, 3)
	// Node 0 (at 0.00) is peered with node 2 (0.50), node 1 (0.25) with
	// node 3 (0.75): both edges span the maximum ring distance. Exchanging
	// the locations of 0 and 1 halves both distance products, so the swap
	// must be accepted.
	require.NoError(t, g.Node(0).Connect(g.Node(2)))
	require.NoError(t, g.Node(1).Connect(g.Node(3)))

	locBefore0, locBefore1 := g.Node(0).Location(), g.Node(1).Location()
	assert.True(t, g.Node(0).AttemptSwap(g.Node(1)))
	assert.Equal(t, locBefore1, g.Node(0).Location())
	assert.Equal(t, locBefore0, g.Node(1).Location())

	assert.False(t, g.Node(0).AttemptSwap(g.Node(0)))
}
