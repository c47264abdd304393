package degree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/degree"
	"github.com/katalvlaran/smallworld/sample"
)

// TestFixed returns the same target forever.
func TestFixed(t *testing.T) {
	t.Parallel()

	src := degree.Fixed(12)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 12, src.NextDegree())
	}
}

// TestPoisson_MeanAndDeterminism checks the empirical mean against λ and
// that equal seeds replay the same draw sequence.
func TestPoisson_MeanAndDeterminism(t *testing.T) {
	t.Parallel()

	const lambda = 8.0
	const draws = 10000

	src := degree.NewPoisson(lambda, 5)
	sum := 0
	for i := 0; i < draws; i++ {
		d := src.NextDegree()
		assert.GreaterOrEqual(t, d, 0)
		sum += d
	}
	assert.InDelta(t, lambda, float64(sum)/draws, 0.3)

	// Same seed, same sequence.
	a, b := degree.NewPoisson(lambda, 42), degree.NewPoisson(lambda, 42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextDegree(), b.NextDegree())
	}
}

// TestDistribution replays a recorded degree table.
func TestDistribution(t *testing.T) {
	t.Parallel()

	table, err := sample.NewWeightedDistribution([]int{3, 5}, []int{1, 4})
	require.NoError(t, err)

	src := degree.NewDistribution(table, rand.New(rand.NewSource(9)))
	counts := map[int]int{}
	for i := 0; i < 5000; i++ {
		counts[src.NextDegree()]++
	}

	assert.Len(t, counts, 2)
	assert.InDelta(t, 0.2, float64(counts[3])/5000, 0.03)
	assert.InDelta(t, 0.8, float64(counts[5])/5000, 0.03)
}
