// SPDX-License-Identifier: MIT
// Package: smallworld/graph
//
// location.go — the unit-ring location type and its wrap-around metric.

package graph

// MaxDistance is the largest possible ring distance between two locations:
// opposite points on the unit ring are exactly half the circumference apart.
const MaxDistance = 0.5

// Location is a point on the unit ring, a real value in [0, 1).
// The ring wraps: 0.95 and 0.05 are 0.10 apart, not 0.90.
type Location float64

// Valid reports whether l lies in the half-open interval [0, 1).
func (l Location) Valid() bool {
	return l >= 0 && l < 1
}

// Distance returns the ring distance to other: the minimum of the direct
// and wrap-around differences, a value in [0, MaxDistance].
// Complexity: O(1).
func (l Location) Distance(other Location) float64 {
	d := float64(l - other)
	if d < 0 {
		d = -d
	}
	if d > MaxDistance {
		d = 1 - d
	}

	return d
}
