// Package bfs implements the burning method: a multi-source breadth-first
// search that decides whether an occupied path spans a percolation lattice
// from its first row to its last.
//
// The burn works on a private integer copy of the occupancy. Every occupied
// site of row 0 is ignited at time 2; a site burned at time t ignites each
// occupied, unburned 4-neighbour at time t+1. The fire dies when a round
// ignites nothing. The lattice spans iff some last-row site carries a burn
// time greater than 1.
//
// Key features:
//   - Burn(lat, opts...): frontier-queue propagation, O(L²) total work
//   - BurnResult.ShortestPath: chemical distance between the two rows
//   - BurnResult.Frame: burn-time grid for heatmap renderers
//   - Hooks: OnBurn is invoked for every ignited site
//   - Cancellation via context.Context, checked once per round
//
// Complexity:
//
//   - Time:   O(L²), each site is enqueued at most once.
//   - Memory: O(L²) for the burn-time copy and the frontier.
//
// Errors:
//
//   - ErrLatticeNil if lat is nil.
//   - context.Canceled / context.DeadlineExceeded if the context ends.
package bfs
