// Package main provides the entry point for the percolate CLI.
//
// percolate runs Monte Carlo site percolation on square lattices: it
// estimates the percolation probability and cluster-size statistics for a
// single (L, p), sweeps p across several lattice sizes, and prints single
// realizations with their burn times and cluster labels.
//
// Usage:
//
//	percolate run -L 64 -p 0.5927 -T 1000
//	percolate sweep --sizes 16,32,64 --p-from 0.4 --p-to 0.8 --p-step 0.02
//	percolate lattice -L 12 -p 0.6 --seed 7
//
// See --help for all available options.
package main

// main is the entry point for percolate.
func main() {
	Execute()
}
