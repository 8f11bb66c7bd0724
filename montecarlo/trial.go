package montecarlo

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/percolation/bfs"
	"github.com/katalvlaran/percolation/cluster"
	"github.com/katalvlaran/percolation/dfs"
	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/stats"
)

// RunTrial draws one lattice from rng and analyses it. The lattice is
// discarded; only the TrialResult survives.
func RunTrial(size int, p float64, rng *rand.Rand, crossCheck bool) (stats.TrialResult, error) {
	lat, err := lattice.New(size, p, rng)
	if err != nil {
		return stats.TrialResult{}, err
	}
	burn, err := bfs.Burn(lat)
	if err != nil {
		return stats.TrialResult{}, err
	}
	lb, err := cluster.Label(lat)
	if err != nil {
		return stats.TrialResult{}, err
	}

	if crossCheck {
		if err := check(lat, burn, lb); err != nil {
			return stats.TrialResult{}, err
		}
	}

	return stats.TrialResult{
		Spans:          burn.Spans,
		MaxClusterSize: lb.Max(),
		ClusterSizes:   lb.Sizes(),
		BurnRounds:     burn.Rounds,
	}, nil
}

// check validates the labeling against the occupied count, the DFS sizer
// and the burning method.
func check(lat *lattice.Lattice, burn *bfs.BurnResult, lb *cluster.Labeling) error {
	if occ := lat.OccupiedCount(); lb.Total() != occ {
		return fmt.Errorf("%w: labeled %d sites, %d occupied", ErrCrossCheck, lb.Total(), occ)
	}
	best, err := dfs.MaxClusterSize(lat)
	if err != nil {
		return err
	}
	if best != lb.Max() {
		return fmt.Errorf("%w: dfs max cluster %d, labeling max %d", ErrCrossCheck, best, lb.Max())
	}
	if burn.Spans != lb.Spans() {
		return fmt.Errorf("%w: burning spans=%t, labeling spans=%t", ErrCrossCheck, burn.Spans, lb.Spans())
	}
	return nil
}

// trialRNG returns the random stream of trial i on lattices of the given
// size. The stream is independent of p.
func trialRNG(seed uint64, size, i int) *rand.Rand {
	return rand.New(rand.NewPCG(splitmix(seed^splitmix(uint64(size))), uint64(i)))
}

// splitmix is the SplitMix64 finalizer.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
