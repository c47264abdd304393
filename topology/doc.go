// Package topology computes structural statistics over a built graph:
// degree distribution, edge-length distribution, local and global
// clustering coefficients, and a bundled stats summary with the four
// descriptive moments of the degree and local-clustering arrays.
//
// Everything here is read-only and pure: no function mutates the graph,
// and identical graphs produce identical statistics.
//
// Two clustering measures are deliberately distinct:
//
//   - MeanLocalClusterCoeff is the unweighted arithmetic mean of per-node
//     local coefficients, which gives low-degree nodes the same weight as
//     high-degree ones.
//   - GlobalClusterCoeff is the transitivity ratio: total closed triplets
//     over total possible triplets Σ d(d−1)/2 across all nodes.
//
// Complexity: all functions are O(V + E) except the clustering
// coefficients, which cost O(Σ d²) for the per-node triplet counts.
package topology
