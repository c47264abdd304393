// Package sample provides the discrete weighted-sampling primitives used by
// the topology builders: nearest-value lookup over cumulative-weight arrays,
// and a standalone value/occurrence distribution table.
//
// What:
//
//   - NearestIndex: given a non-decreasing cumulative-weight array S and a
//     draw x in [0, S[n−1]], return the index whose cumulative value is
//     closest to x. This is the lookup half of CDF sampling: a uniform draw
//     scaled by the total lands more often where the CDF is steep, i.e. in
//     heavily weighted regions.
//   - WeightedDistribution: a table of (value, occurrence count) rows loaded
//     from a reader or file; RandomValue draws values proportional to their
//     recorded frequency. A simpler, non-cached sibling of the CDF lookup,
//     operating over explicit counts rather than derived distances.
//
// Why:
//
//   - Kleinberg-style generation needs to pick peers with probability
//     proportional to 1/distance; building a running-sum array once and
//     binary-searching it per draw keeps each draw at O(log n).
//
// Complexity:
//
//   - NearestIndex: O(log n) time, O(1) space.
//   - WeightedDistribution.RandomValue: O(k) over k table rows.
//
// Errors:
//
//   - ErrEmptyDistribution: the table has no rows.
//   - ErrBadDistribution: a malformed row (wrong field count, non-integer
//     field, or non-positive occurrence count).
package sample
