// SPDX-License-Identifier: MIT
// Package: smallworld/linklength
//
// continuous.go — continuous length sources for the generic builder.

package linklength

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/smallworld/graph"
)

// Inverse draws lengths with density proportional to 1/d on [Min, Max]:
// d = Min · (Max/Min)^U for U uniform in [0,1), the continuous counterpart
// of the Kleinberg index-offset distribution.
type Inverse struct {
	min float64
	max float64
}

// NewInverse validates the bounds (0 < min < max) and returns the source.
func NewInverse(min, max float64) (Inverse, error) {
	if min <= 0 || max <= min {
		return Inverse{}, fmt.Errorf("NewInverse(%v, %v): %w", min, max, ErrBadLengthBounds)
	}

	return Inverse{min: min, max: max}, nil
}

// Length draws the next 1/d-distributed length.
func (s Inverse) Length(rng *rand.Rand) float64 {
	return s.min * math.Pow(s.max/s.min, rng.Float64())
}

// Uniform draws lengths flat over the full ring-distance range
// [0, graph.MaxDistance).
type Uniform struct{}

// Length draws the next uniform length.
func (Uniform) Length(rng *rand.Rand) float64 {
	return rng.Float64() * graph.MaxDistance
}
