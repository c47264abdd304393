package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/smallworld/graph"
)

// TestLocation_Distance verifies the ring metric: the minimum of the
// direct and wrap-around differences, always in [0, MaxDistance].
func TestLocation_Distance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b graph.Location
		want float64
	}{
		{"same point", 0.25, 0.25, 0},
		{"direct shorter", 0.1, 0.3, 0.2},
		{"wrap shorter", 0.95, 0.05, 0.1},
		{"opposite points", 0.0, 0.5, 0.5},
		{"order independent", 0.3, 0.1, 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.a.Distance(tc.b), 1e-12)
			// Symmetry of the metric.
			assert.InDelta(t, tc.a.Distance(tc.b), tc.b.Distance(tc.a), 1e-12)
		})
	}
}

// TestLocation_Valid checks the [0,1) domain.
func TestLocation_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, graph.Location(0).Valid())
	assert.True(t, graph.Location(0.999).Valid())
	assert.False(t, graph.Location(1).Valid())
	assert.False(t, graph.Location(-0.1).Valid())
}
