package sample_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/sample"
)

// TestWeightedDistribution_EmpiricalFrequencies replays the canonical
// table {(10,1),(20,3),(30,1)} 100000 times and expects roughly
// 20% / 60% / 20%.
func TestWeightedDistribution_EmpiricalFrequencies(t *testing.T) {
	t.Parallel()

	d, err := sample.NewWeightedDistribution([]int{10, 20, 30}, []int{1, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, d.Total())

	const draws = 100000
	rng := rand.New(rand.NewSource(7))
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		v := d.RandomValue(rng)
		counts[v]++
	}

	// Only table values ever come back.
	assert.Len(t, counts, 3)
	assert.InDelta(t, 0.2, float64(counts[10])/draws, 0.01)
	assert.InDelta(t, 0.6, float64(counts[20])/draws, 0.01)
	assert.InDelta(t, 0.2, float64(counts[30])/draws, 0.01)
}

// TestParseWeightedDistribution covers the text table format and its
// rejection paths.
func TestParseWeightedDistribution(t *testing.T) {
	t.Parallel()

	// 1. Well-formed table, blank lines skipped.
	d, err := sample.ParseWeightedDistribution(strings.NewReader("10 1\n\n20 3\n30 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, d.Total())

	// 2. Wrong field count.
	_, err = sample.ParseWeightedDistribution(strings.NewReader("10 1 9\n"))
	assert.ErrorIs(t, err, sample.ErrBadDistribution)

	// 3. Non-integer value.
	_, err = sample.ParseWeightedDistribution(strings.NewReader("ten 1\n"))
	assert.ErrorIs(t, err, sample.ErrBadDistribution)

	// 4. Non-positive occurrence count.
	_, err = sample.ParseWeightedDistribution(strings.NewReader("10 0\n"))
	assert.ErrorIs(t, err, sample.ErrBadDistribution)

	// 5. Empty input.
	_, err = sample.ParseWeightedDistribution(strings.NewReader(""))
	assert.ErrorIs(t, err, sample.ErrEmptyDistribution)
}

// TestNewWeightedDistribution_Validation covers the in-memory constructor.
func TestNewWeightedDistribution_Validation(t *testing.T) {
	t.Parallel()

	_, err := sample.NewWeightedDistribution([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, sample.ErrBadDistribution)

	_, err = sample.NewWeightedDistribution(nil, nil)
	assert.ErrorIs(t, err, sample.ErrEmptyDistribution)

	_, err = sample.NewWeightedDistribution([]int{1}, []int{-2})
	assert.ErrorIs(t, err, sample.ErrBadDistribution)
}
