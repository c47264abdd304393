// SPDX-License-Identifier: MIT
// Package: smallworld/degree
//
// degree.go — the Source interface and its deterministic variants.

package degree

import (
	"math/rand"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/smallworld/sample"
)

// Source yields a target degree for each newly placed node.
// Implementations must be deterministic given their seed.
type Source interface {
	NextDegree() int
}

// Fixed is a Source returning the same target degree for every node.
type Fixed int

// NextDegree returns the fixed target.
func (f Fixed) NextDegree() int { return int(f) }

// Poisson draws target degrees from a Poisson(λ) distribution.
type Poisson struct {
	dist distuv.Poisson
}

// NewPoisson returns a Poisson degree source with the given mean, seeded
// independently of the builder RNG so degree draws do not perturb the
// topology random stream.
func NewPoisson(mean float64, seed uint64) *Poisson {
	return &Poisson{dist: distuv.Poisson{
		Lambda: mean,
		Src:    randv2.NewPCG(seed, seed),
	}}
}

// NextDegree returns the next Poisson draw, truncated toward zero.
func (p *Poisson) NextDegree() int { return int(p.dist.Rand()) }

// Distribution replays a recorded degree distribution: each draw picks a
// table value with probability proportional to its occurrence count.
type Distribution struct {
	table *sample.WeightedDistribution
	rng   *rand.Rand
}

// NewDistribution wraps a loaded occurrence table and a random handle.
func NewDistribution(table *sample.WeightedDistribution, rng *rand.Rand) *Distribution {
	return &Distribution{table: table, rng: rng}
}

// NextDegree draws the next target from the table.
func (d *Distribution) NextDegree() int { return d.table.RandomValue(d.rng) }
