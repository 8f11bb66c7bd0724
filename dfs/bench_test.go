package dfs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/percolation/dfs"
	"github.com/katalvlaran/percolation/lattice"
)

// BenchmarkMaxClusterSize measures DFS sizing on a 512×512 lattice at p_c.
// Complexity: O(L²)
func BenchmarkMaxClusterSize(b *testing.B) {
	lat, err := lattice.New(512, 0.592746, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		b.Fatalf("setup lattice.New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.MaxClusterSize(lat)
	}
}
