// SPDX-License-Identifier: MIT
// Package: smallworld/sample
//
// nearest.go — closest-cumulative-value lookup over a sorted array.
//
// Contract:
//   • The input array is non-decreasing (a CDF of running weight sums).
//   • The draw x satisfies 0 ≤ x ≤ S[n−1] by construction at call sites
//     (x = uniform(0,1) × total); out-of-range draws still clamp sanely.
//   • The returned index is a genuine nearest match: no other index j has
//     |S[j] − x| strictly smaller than the chosen one. This matters under
//     floating-point imprecision, where "first greater element" alone would
//     systematically prefer the upper neighbor.

package sample

import (
	"math"
	"sort"
)

// NearestIndex returns the index i of the non-decreasing array cdf that
// minimizes |cdf[i] − x|. For an empty array it returns −1.
//
// The search finds p, the first index with cdf[p] ≥ x. If p is past the end
// it clamps to n−1; otherwise the lower neighbor wins only when it is
// strictly closer, so a draw landing exactly on an interior boundary
// resolves to that boundary's index.
// Complexity: O(log n).
func NearestIndex(cdf []float64, x float64) int {
	n := len(cdf)
	if n == 0 {
		return -1
	}

	p := sort.SearchFloat64s(cdf, x)
	if p >= n {
		return n - 1
	}
	if p > 0 && math.Abs(x-cdf[p-1]) < math.Abs(x-cdf[p]) {
		p--
	}

	return p
}

// NonDecreasing reports whether the array is sorted in non-decreasing
// order. Builders use it to assert CDF monotonicity before sampling; a
// violation is a defect in weight accumulation, not bad input.
// Complexity: O(n).
func NonDecreasing(cdf []float64) bool {
	for i := 1; i < len(cdf); i++ {
		if cdf[i] < cdf[i-1] {
			return false
		}
	}

	return true
}
