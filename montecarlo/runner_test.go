package montecarlo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/stats"
)

// RunnerSuite exercises RunTrials and Sweep.
type RunnerSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *RunnerSuite) SetupSuite() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *RunnerSuite) runner(opts ...montecarlo.Option) *montecarlo.Runner {
	base := []montecarlo.Option{
		montecarlo.WithSeed(2024),
		montecarlo.WithWorkers(4),
		montecarlo.WithLogger(s.logger),
	}
	return montecarlo.NewRunner(append(base, opts...)...)
}

// TestInvalidParameters verifies nothing runs on bad input.
func (s *RunnerSuite) TestInvalidParameters() {
	r := s.runner()
	ctx := context.Background()

	cases := []struct {
		name   string
		size   int
		p      float64
		trials int
		want   error
	}{
		{"zero size", 0, 0.5, 10, lattice.ErrInvalidSize},
		{"bad p", 8, -0.5, 10, lattice.ErrInvalidProbability},
		{"zero trials", 8, 0.5, 0, montecarlo.ErrInvalidTrials},
	}
	for _, tc := range cases {
		agg, err := r.RunTrials(ctx, tc.size, tc.p, tc.trials)
		require.Nil(s.T(), agg, tc.name)
		require.ErrorIs(s.T(), err, tc.want, tc.name)
		require.ErrorIs(s.T(), err, lattice.ErrInvalidParameter, tc.name)
	}

	for _, c := range []montecarlo.Convergence{
		{Batch: 0, Window: 2},
		{Batch: 1, Window: 1},
		{Batch: 5, Window: 3, Tolerance: -0.1},
	} {
		bad := s.runner(montecarlo.WithConvergence(c))
		agg, err := bad.RunTrials(ctx, 8, 0.5, 10)
		require.Nil(s.T(), agg, "%+v", c)
		require.ErrorIs(s.T(), err, montecarlo.ErrInvalidConvergence, "%+v", c)
	}
}

// TestDegenerate covers p = 0 and p = 1 aggregates.
func (s *RunnerSuite) TestDegenerate() {
	r := s.runner(montecarlo.WithCrossCheck(true))
	ctx := context.Background()

	agg, err := r.RunTrials(ctx, 8, 0, 20)
	require.NoError(s.T(), err)
	st := agg.Statistics()
	require.Equal(s.T(), 20, st.Trials)
	require.Zero(s.T(), st.PercolationProbability)
	require.Zero(s.T(), st.MeanMaxClusterSize)
	require.Empty(s.T(), st.ClusterSizeHistogram)

	agg, err = r.RunTrials(ctx, 8, 1, 20)
	require.NoError(s.T(), err)
	st = agg.Statistics()
	require.Equal(s.T(), 1.0, st.PercolationProbability)
	require.Equal(s.T(), 64.0, st.MeanMaxClusterSize)
	require.Equal(s.T(), map[int]int{64: 20}, st.ClusterSizeHistogram)
}

// TestDeterministicAcrossWorkers checks that the worker count and merge
// order do not change the result for a fixed seed.
func (s *RunnerSuite) TestDeterministicAcrossWorkers() {
	ctx := context.Background()
	var want stats.Statistics
	for i, workers := range []int{1, 3, 8} {
		r := s.runner(montecarlo.WithWorkers(workers))
		agg, err := r.RunTrials(ctx, 24, stats.PC, 97)
		require.NoError(s.T(), err)
		if i == 0 {
			want = agg.Statistics()
			continue
		}
		require.Equal(s.T(), want, agg.Statistics(), "workers=%d", workers)
	}
}

// TestPartitionAcrossTrials checks the histogram mass equals the expected
// occupied-site count scale: Σ s·n_s = total occupied over all trials.
func (s *RunnerSuite) TestPartitionAcrossTrials() {
	agg, err := s.runner().RunTrials(context.Background(), 10, 0.5, 50)
	require.NoError(s.T(), err)
	mass := 0
	for size, n := range agg.Histogram {
		mass += size * n
	}
	// about half of 50·100 sites
	require.InDelta(s.T(), 2500, mass, 400)
}

func (s *RunnerSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	agg, err := s.runner().RunTrials(ctx, 16, 0.6, 100)
	require.Nil(s.T(), agg)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestConvergenceStopsEarly uses p=1, where every estimate is exactly 1.
func (s *RunnerSuite) TestConvergenceStopsEarly() {
	r := s.runner(montecarlo.WithConvergence(montecarlo.Convergence{Batch: 10, Window: 3, Tolerance: 0}))
	agg, err := r.RunTrials(context.Background(), 6, 1, 1000)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 30, agg.Trials)
}

// TestConvergenceRespectsBudget never exceeds the requested trial count.
func (s *RunnerSuite) TestConvergenceRespectsBudget() {
	r := s.runner(montecarlo.WithConvergence(montecarlo.Convergence{Batch: 7, Window: 50, Tolerance: 0}))
	agg, err := r.RunTrials(context.Background(), 6, 0.6, 40)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 40, agg.Trials)
}

// TestMonotoneInP relies on common random numbers across p: each trial's
// lattice at larger p contains its lattice at smaller p.
func (s *RunnerSuite) TestMonotoneInP() {
	r := s.runner()
	prev := -1.0
	prevMean := -1.0
	for _, p := range []float64{0.3, 0.45, 0.55, 0.6, 0.65, 0.8} {
		agg, err := r.RunTrials(context.Background(), 20, p, 150)
		require.NoError(s.T(), err)
		st := agg.Statistics()
		require.GreaterOrEqual(s.T(), st.PercolationProbability, prev, "p=%v", p)
		require.GreaterOrEqual(s.T(), st.MeanMaxClusterSize, prevMean, "p=%v", p)
		prev, prevMean = st.PercolationProbability, st.MeanMaxClusterSize
	}
}

// TestSweep_FiniteSizeScaling checks the transition sharpens with L.
func (s *RunnerSuite) TestSweep_FiniteSizeScaling() {
	if testing.Short() {
		s.T().Skip("skipping sweep in -short mode")
	}
	probs := []float64{0.45, 0.5, 0.55, 0.6, 0.65, 0.7, 0.75}
	res, err := s.runner().Sweep(context.Background(), montecarlo.SweepRequest{
		Sizes:         []int{16, 64},
		Probabilities: probs,
		Trials:        300,
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Curves, 2)

	small, large := res.Curves[0], res.Curves[1]
	require.Equal(s.T(), 16, small.Size)
	require.Equal(s.T(), 64, large.Size)
	require.Len(s.T(), large.Points, len(probs))
	require.Greater(s.T(), large.Steepness(), small.Steepness())

	ps, probCol, _ := large.Columns()
	require.Equal(s.T(), probs, ps)
	require.Less(s.T(), probCol[0], 0.05)
	require.Greater(s.T(), probCol[len(probCol)-1], 0.95)

	// default snapshots: 0.5 (reused), PC and 0.7 (reused) per size
	require.Len(s.T(), res.Snapshots, 6)
	for _, snap := range res.Snapshots {
		require.NotEmpty(s.T(), snap.Bins, "L=%d p=%v", snap.Size, snap.P)
		require.Equal(s.T(), 300, snap.Statistics.Trials)
	}
	assert.Equal(s.T(), stats.PC, res.Snapshots[1].P)
}

func (s *RunnerSuite) TestSweep_Validation() {
	r := s.runner()
	ctx := context.Background()

	_, err := r.Sweep(ctx, montecarlo.SweepRequest{Sizes: []int{8}, Trials: 5})
	require.ErrorIs(s.T(), err, montecarlo.ErrEmptySweep)

	_, err = r.Sweep(ctx, montecarlo.SweepRequest{Sizes: []int{8, 0}, Probabilities: []float64{0.5}, Trials: 5})
	require.ErrorIs(s.T(), err, lattice.ErrInvalidSize)

	_, err = r.Sweep(ctx, montecarlo.SweepRequest{Sizes: []int{8}, Probabilities: []float64{0.5}, Trials: 5, Snapshots: []float64{1.5}})
	require.ErrorIs(s.T(), err, lattice.ErrInvalidProbability)

	_, err = r.Sweep(ctx, montecarlo.SweepRequest{Sizes: []int{8}, Probabilities: []float64{0.5}})
	require.ErrorIs(s.T(), err, montecarlo.ErrInvalidTrials)
}

func (s *RunnerSuite) TestSweep_NoSnapshots() {
	res, err := s.runner().Sweep(context.Background(), montecarlo.SweepRequest{
		Sizes:         []int{4, 8},
		Probabilities: []float64{0.2, 0.9},
		Trials:        10,
		Snapshots:     []float64{},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Curves, 2)
	require.Empty(s.T(), res.Snapshots)
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}
