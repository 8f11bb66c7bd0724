// Package montecarlo drives independent percolation trials and reduces them
// into statistics.
//
// What:
//
//   - RunTrial builds one lattice and analyses it with the burning method
//     (package bfs) and flood-fill labeling (package cluster); with cross-check
//     enabled, the DFS sizer (package dfs) must agree with the labeling.
//   - Runner.RunTrials repeats RunTrial T times for one (L, p) on a bounded
//     pool of goroutines and merges per-worker aggregates.
//   - Runner.Sweep repeats RunTrials over every (L, p) pair and snapshots
//     cluster-size distributions below, at and above the threshold.
//
// Randomness:
//
//   - Trial i of lattice size L draws from its own PCG stream keyed by
//     (seed, L, i). Results therefore do not depend on the worker count or on
//     scheduling, and a fixed seed reproduces a run exactly.
//   - The stream does not depend on p: trial i at a larger p occupies a
//     superset of the sites it occupies at a smaller p (common random
//     numbers), which keeps sweep curves monotone trial by trial.
//
// Errors:
//
//   - lattice.ErrInvalidParameter (and the wrapped ErrInvalidSize,
//     ErrInvalidProbability, ErrInvalidTrials, ErrEmptySweep) before any
//     trial starts.
//   - ErrCrossCheck if analyses disagree on a lattice.
//   - the context error if the run is cancelled.
package montecarlo
