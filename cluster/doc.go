// Package cluster partitions the occupied sites of a percolation lattice into
// 4-connected clusters.
//
// What:
//
//   - Label scans the lattice in row-major order; each unlabeled occupied site
//     starts a new cluster, and a breadth-first flood assigns its label to
//     every occupied site reachable through 4-adjacency.
//   - Labels start at FirstLabel (2) so they never collide with the raw
//     occupancy values 0 and 1, and grow by one per completed flood.
//   - Labeling reports cluster sizes, the size histogram, and the clusters
//     that touch both the first and last rows.
//
// This is the flood-fill rendition of Hoshen–Kopelman labeling. It yields the
// same partition as the union-find algorithm, but label order is simply the
// order in which clusters are first met during the scan.
//
// Invariant: the sizes of all clusters sum to the number of occupied sites.
//
// Complexity:
//
//   - Label: O(L²) time, O(L²) memory for the label copy and the queue.
//   - Sizes, Histogram, SpanningLabels: O(number of clusters) or O(L).
//
// Errors:
//
//   - ErrLatticeNil: Label received a nil lattice.
package cluster
