package cluster_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolation/bfs"
	"github.com/katalvlaran/percolation/cluster"
	"github.com/katalvlaran/percolation/lattice"
)

// LabelSuite exercises Label on fixed grids and random realizations.
type LabelSuite struct {
	suite.Suite
}

func (s *LabelSuite) grid(g [][]int) *lattice.Lattice {
	lat, err := lattice.FromGrid(g)
	require.NoError(s.T(), err)
	return lat
}

// TestNilLattice verifies the sentinel error.
func (s *LabelSuite) TestNilLattice() {
	_, err := cluster.Label(nil)
	require.ErrorIs(s.T(), err, cluster.ErrLatticeNil)
}

// TestScanOrderLabels checks labels are assigned in row-major first-met order.
//
//	1 1 0 1
//	0 1 0 1
//	1 0 0 0
//	1 1 0 1
func (s *LabelSuite) TestScanOrderLabels() {
	lb, err := cluster.Label(s.grid([][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 0, 0},
		{1, 1, 0, 1},
	}))
	require.NoError(s.T(), err)

	require.Equal(s.T(), [][]int{
		{2, 2, 0, 3},
		{0, 2, 0, 3},
		{4, 0, 0, 0},
		{4, 4, 0, 5},
	}, lb.Labels())
	require.Equal(s.T(), []int{3, 2, 3, 1}, lb.Sizes())
	require.Equal(s.T(), map[int]int{2: 3, 3: 2, 4: 3, 5: 1}, lb.SizeByLabel())
	require.Equal(s.T(), map[int]int{1: 1, 2: 1, 3: 2}, lb.Histogram())
	require.Equal(s.T(), 4, lb.Count())
	require.Equal(s.T(), 3, lb.Max())
	require.Equal(s.T(), 9, lb.Total())
	require.Equal(s.T(), 3, lb.SizeOf(4))
	require.Equal(s.T(), 0, lb.SizeOf(1))
	require.Equal(s.T(), 0, lb.SizeOf(99))
	require.False(s.T(), lb.Spans())
	require.Empty(s.T(), lb.SpanningLabels())
}

// TestSpanningLabels finds the clusters that connect top and bottom.
func (s *LabelSuite) TestSpanningLabels() {
	lb, err := cluster.Label(s.grid([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 3}, lb.SpanningLabels())
	require.True(s.T(), lb.Spans())
}

// TestDegenerate covers empty and full lattices, including L=1 and L=2.
func (s *LabelSuite) TestDegenerate() {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, size := range []int{1, 2, 7} {
		empty, err := lattice.New(size, 0, rng)
		require.NoError(s.T(), err)
		lb, err := cluster.Label(empty)
		require.NoError(s.T(), err)
		require.Zero(s.T(), lb.Count())
		require.Zero(s.T(), lb.Max())
		require.False(s.T(), lb.Spans())

		full, err := lattice.New(size, 1, rng)
		require.NoError(s.T(), err)
		lb, err = cluster.Label(full)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{size * size}, lb.Sizes())
		require.True(s.T(), lb.Spans())
	}
}

// TestPartitionInvariant checks sizes sum to the occupied count, every
// occupied site is labeled, and the lattice stays untouched.
func (s *LabelSuite) TestPartitionInvariant() {
	rng := rand.New(rand.NewPCG(8, 9))
	for trial := 0; trial < 40; trial++ {
		lat, err := lattice.New(20, rng.Float64(), rng)
		require.NoError(s.T(), err)
		before := lat.Grid()

		lb, err := cluster.Label(lat)
		require.NoError(s.T(), err)
		require.Equal(s.T(), lat.OccupiedCount(), lb.Total())
		require.Equal(s.T(), before, lat.Grid())

		for r := 0; r < 20; r++ {
			for c := 0; c < 20; c++ {
				l := lb.LabelAt(r, c)
				if lat.Occupied(r, c) {
					require.GreaterOrEqual(s.T(), l, cluster.FirstLabel)
					for _, nb := range lattice.Neighbors(r, c, 20) {
						if lat.Occupied(nb.Row, nb.Col) {
							require.Equal(s.T(), l, lb.LabelAt(nb.Row, nb.Col), "neighbours share a label")
						}
					}
				} else {
					require.Zero(s.T(), l)
				}
			}
		}
	}
}

// TestAgreesWithBurning checks the spanning-cluster test against the
// burning method on random lattices near the threshold.
func (s *LabelSuite) TestAgreesWithBurning() {
	rng := rand.New(rand.NewPCG(10, 11))
	for trial := 0; trial < 100; trial++ {
		lat, err := lattice.New(16, 0.55+0.1*rng.Float64(), rng)
		require.NoError(s.T(), err)
		lb, err := cluster.Label(lat)
		require.NoError(s.T(), err)
		burn, err := bfs.Burn(lat)
		require.NoError(s.T(), err)
		require.Equal(s.T(), burn.Spans, lb.Spans(), "trial %d", trial)
	}
}

// TestSizesMultiset checks Sizes and Histogram describe the same multiset.
func (s *LabelSuite) TestSizesMultiset() {
	rng := rand.New(rand.NewPCG(12, 13))
	lat, err := lattice.New(30, 0.45, rng)
	require.NoError(s.T(), err)
	lb, err := cluster.Label(lat)
	require.NoError(s.T(), err)

	var fromHist []int
	for size, n := range lb.Histogram() {
		for i := 0; i < n; i++ {
			fromHist = append(fromHist, size)
		}
	}
	sizes := lb.Sizes()
	sort.Ints(sizes)
	sort.Ints(fromHist)
	require.Equal(s.T(), sizes, fromHist)
}

func TestLabelSuite(t *testing.T) {
	suite.Run(t, new(LabelSuite))
}
