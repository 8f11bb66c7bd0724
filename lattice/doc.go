// Package lattice models the square lattice used in site percolation.
//
// What:
//
//   - Lattice is an immutable L×L arena of sites, each Empty or Occupied.
//   - New draws every site independently: occupied with probability p.
//   - Neighbors / AppendNeighbors compute 4-adjacency (von Neumann) on demand;
//     no edges are stored and the boundary is open (no wraparound).
//   - Frame exposes an integer grid plus a title for heatmap renderers.
//
// Why:
//
//   - Every analysis (burning, labeling, sizing) works on its own integer copy
//     obtained via Cells, so one realization can be analysed many times.
//   - Sites are addressed by a row-major index (row*L + col), which keeps the
//     hot traversal loops free of pointers and maps.
//
// Complexity:
//
//   - New, FromGrid, Cells, Grid: O(L²) time and memory.
//   - Occupied, State, Index, Coordinate: O(1).
//   - Neighbors, AppendNeighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrInvalidParameter: umbrella for any rejected construction parameter.
//   - ErrInvalidSize: L <= 0, or an empty grid.
//   - ErrInvalidProbability: p is NaN or outside [0,1].
//   - ErrNonSquare: FromGrid received a ragged or non-square grid.
//   - ErrInvalidSite: FromGrid received a value other than 0 or 1.
package lattice
