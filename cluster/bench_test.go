package cluster_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/percolation/cluster"
	"github.com/katalvlaran/percolation/lattice"
)

// BenchmarkLabel measures flood-fill labeling on a 512×512 lattice at p_c.
// Complexity: O(L²)
func BenchmarkLabel(b *testing.B) {
	lat, err := lattice.New(512, 0.592746, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		b.Fatalf("setup lattice.New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cluster.Label(lat)
	}
}
