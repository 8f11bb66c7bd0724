// Package percolation is a Monte Carlo laboratory for site percolation on
// the square lattice: generate random lattices, test them for spanning,
// label their clusters and aggregate thousands of trials into estimates of
// the percolation probability and the cluster-size distribution.
//
// 🚀 What is in the box?
//
//	• Lattices: L×L occupancy grids with 4-neighbour connectivity, open boundaries
//	• Burning: top-to-bottom spanning test that records burn times (BFS)
//	• Labeling: Hoshen–Kopelman style cluster labels and sizes (flood fill)
//	• Sizing: iterative DFS component sizes, an independent cross-check
//	• Monte Carlo: concurrent, reproducible trials with optional early stop
//	• Statistics: P(L, p), mean largest cluster, log-binned n_s
//
// ✨ Why this layout?
//
//   - Every algorithm works on the same flat row-major arena
//   - Results are reproducible from a single seed, whatever the worker count
//   - Pure Go algorithms, the CLI brings its own small stack
//
// Packages:
//
//	lattice/        Lattice type, generation, adjacency
//	bfs/            burning method
//	cluster/        cluster labeling and size bookkeeping
//	dfs/            component sizing by depth-first search
//	stats/          trial aggregation, curves, logarithmic binning
//	montecarlo/     Runner: trials, convergence, (L, p) sweeps
//	cmd/percolate   command-line front end
//
// Quick ASCII example (p_c ≈ 0.5927):
//
//	1 1 0 1
//	0 1 0 0      burning from the top row reaches
//	1 1 1 0      the bottom row at t = 7: the lattice spans.
//	0 0 1 1
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation
