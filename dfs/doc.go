// Package dfs sizes the connected components of a percolation lattice with an
// iterative depth-first search. It is an independent cross-check of the
// flood-fill labeling in package cluster: for every lattice,
// MaxClusterSize(lat) must equal the largest cluster size reported there.
//
// Key features:
//   - MaxClusterSize(lat, opts...): size of the largest 4-connected component
//   - ComponentSizes(lat, opts...): every component size, in scan order
//   - Explicit stack: memory stays O(L²) and bounded even on a fully
//     occupied lattice, where a recursive walk would nest L² frames deep
//   - Cancellation via context.Context, checked once per component
//
// Complexity:
//
//   - Time:   O(L²); every site is pushed at most once.
//   - Memory: O(L²) for the visited set and the stack.
//
// Errors:
//
//   - ErrLatticeNil if lat is nil.
//   - context.Canceled / context.DeadlineExceeded if the context ends.
package dfs
