// SPDX-License-Identifier: MIT
// Package: smallworld/topology
//
// stats.go — read-only structural statistics over a built graph.

package topology

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/smallworld/graph"
)

// Degrees returns the per-node degree array in index order.
func Degrees(g *graph.Graph) []int {
	out := make([]int, g.Size())
	for i, n := range g.Nodes() {
		out[i] = n.Degree()
	}

	return out
}

// MinDegree returns the smallest node degree, 0 for an empty graph.
func MinDegree(g *graph.Graph) int {
	if g.Size() == 0 {
		return 0
	}
	min := g.Node(0).Degree()
	for _, n := range g.Nodes()[1:] {
		if d := n.Degree(); d < min {
			min = d
		}
	}

	return min
}

// MaxDegree returns the largest node degree, 0 for an empty graph.
func MaxDegree(g *graph.Graph) int {
	if g.Size() == 0 {
		return 0
	}
	max := g.Node(0).Degree()
	for _, n := range g.Nodes()[1:] {
		if d := n.Degree(); d > max {
			max = d
		}
	}

	return max
}

// DegreeVariance returns the population variance of node degree,
// E[d²] − E[d]², computed with running sums. Population, not sample: the
// graph is the whole population of interest, not a draw from one.
func DegreeVariance(g *graph.Graph) float64 {
	n := g.Size()
	if n == 0 {
		return 0
	}

	var sum, sumSquares int64
	for _, node := range g.Nodes() {
		d := int64(node.Degree())
		sum += d
		sumSquares += d * d
	}

	fn := float64(n)

	return float64(sumSquares)/fn - float64(sum)*float64(sum)/(fn*fn)
}

// EdgeLengths returns one ring distance per undirected edge, emitting an
// edge only from the endpoint with the lower index so each is counted
// once. Iteration follows node order then stable peer order, so the
// result is reproducible.
func EdgeLengths(g *graph.Graph) []float64 {
	lengths := make([]float64, 0, g.NEdges())
	for i, node := range g.Nodes() {
		for _, peer := range node.Connections() {
			if peer.Index() < i {
				continue
			}
			lengths = append(lengths, node.DistanceToLoc(peer.Location()))
		}
	}

	return lengths
}

// LocalClusterCoeffs returns the per-node local clustering coefficients.
func LocalClusterCoeffs(g *graph.Graph) []float64 {
	out := make([]float64, g.Size())
	for i, n := range g.Nodes() {
		out[i] = n.LocalClusterCoeff()
	}

	return out
}

// MeanLocalClusterCoeff returns the unweighted mean of the per-node local
// clustering coefficients, 0 for an empty graph.
func MeanLocalClusterCoeff(g *graph.Graph) float64 {
	n := g.Size()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, node := range g.Nodes() {
		sum += node.LocalClusterCoeff()
	}

	return sum / float64(n)
}

// GlobalClusterCoeff returns the transitivity ratio: total closed triplets
// over total possible triplets across all nodes. 0 for a graph with no
// possible triplets.
func GlobalClusterCoeff(g *graph.Graph) float64 {
	var closed, possible int
	for _, node := range g.Nodes() {
		d := node.Degree()
		closed += node.ClosedTriplets()
		possible += d * (d - 1) / 2
	}
	if possible == 0 {
		return 0
	}

	return float64(closed) / float64(possible)
}

// Moments bundles the four descriptive moments of a sample array.
// Kurtosis is excess kurtosis (normal distribution ⇒ 0).
type Moments struct {
	Mean     float64
	StdDev   float64
	Skew     float64
	Kurtosis float64
}

// momentsOf computes the unweighted moments of xs.
func momentsOf(xs []float64) Moments {
	return Moments{
		Mean:     stat.Mean(xs, nil),
		StdDev:   stat.StdDev(xs, nil),
		Skew:     stat.Skew(xs, nil),
		Kurtosis: stat.ExKurtosis(xs, nil),
	}
}

// Stats packages the topology summary of a built graph.
type Stats struct {
	Size               int
	Edges              int
	MinDegree          int
	MaxDegree          int
	GlobalClusterCoeff float64
	LocalCC            Moments
	Degree             Moments
}

// GraphStats computes the full summary in one pass over the graph.
func GraphStats(g *graph.Graph) Stats {
	degrees := Degrees(g)
	degreeFloats := make([]float64, len(degrees))
	for i, d := range degrees {
		degreeFloats[i] = float64(d)
	}

	return Stats{
		Size:               g.Size(),
		Edges:              g.NEdges(),
		MinDegree:          MinDegree(g),
		MaxDegree:          MaxDegree(g),
		GlobalClusterCoeff: GlobalClusterCoeff(g),
		LocalCC:            momentsOf(LocalClusterCoeffs(g)),
		Degree:             momentsOf(degreeFloats),
	}
}
