package stats

import (
	"errors"
	"fmt"
	"maps"
	"math"
)

// PC is the site percolation threshold of the square lattice.
const PC = 0.592746

var (
	// ErrMismatchedAggregate indicates a merge of aggregates for different (L, p).
	ErrMismatchedAggregate = errors.New("stats: aggregates describe different (L, p)")
)

// TrialResult is the outcome of analysing one lattice realization.
type TrialResult struct {
	Spans          bool
	MaxClusterSize int
	ClusterSizes   []int
	// BurnRounds is the number of burning-method rounds that ignited sites.
	BurnRounds int
}

// Aggregate accumulates TrialResults for a fixed (Size, P).
// The zero value is not usable; call NewAggregate.
type Aggregate struct {
	Size int
	P    float64

	Trials   int
	Spanning int
	// SumMax and SumMaxSq are sums of MaxClusterSize and its square.
	SumMax   int64
	SumMaxSq int64
	// SumRounds sums BurnRounds over trials.
	SumRounds int64
	// Histogram maps cluster size to the number of clusters of that size.
	Histogram map[int]int
}

// NewAggregate returns an empty aggregate for (size, p).
func NewAggregate(size int, p float64) *Aggregate {
	return &Aggregate{Size: size, P: p, Histogram: make(map[int]int)}
}

// Add folds one trial into the aggregate.
func (a *Aggregate) Add(r TrialResult) {
	a.Trials++
	if r.Spans {
		a.Spanning++
	}
	m := int64(r.MaxClusterSize)
	a.SumMax += m
	a.SumMaxSq += m * m
	a.SumRounds += int64(r.BurnRounds)
	for _, s := range r.ClusterSizes {
		a.Histogram[s]++
	}
}

// Merge adds every count of b into a. Merging is commutative and
// associative. A nil b is a no-op.
func (a *Aggregate) Merge(b *Aggregate) error {
	if b == nil {
		return nil
	}
	if a.Size != b.Size || a.P != b.P {
		return fmt.Errorf("%w: (%d, %v) vs (%d, %v)", ErrMismatchedAggregate, a.Size, a.P, b.Size, b.P)
	}
	a.Trials += b.Trials
	a.Spanning += b.Spanning
	a.SumMax += b.SumMax
	a.SumMaxSq += b.SumMaxSq
	a.SumRounds += b.SumRounds
	for size, n := range b.Histogram {
		a.Histogram[size] += n
	}
	return nil
}

// Clone returns a deep copy.
func (a *Aggregate) Clone() *Aggregate {
	c := *a
	c.Histogram = maps.Clone(a.Histogram)
	if c.Histogram == nil {
		c.Histogram = make(map[int]int)
	}
	return &c
}

// Statistics is the reduced view of an Aggregate.
type Statistics struct {
	Size     int
	P        float64
	Trials   int
	Spanning int

	// PercolationProbability is Spanning / Trials.
	PercolationProbability float64
	// StdErrProbability is the binomial standard error of the estimate.
	StdErrProbability float64
	// MeanMaxClusterSize averages the largest cluster over trials.
	MeanMaxClusterSize float64
	// StdDevMaxClusterSize is the population standard deviation of the
	// largest cluster size.
	StdDevMaxClusterSize float64
	// MeanBurnRounds averages the burning-method round count.
	MeanBurnRounds float64
	// ClusterSizeHistogram maps size to cluster count across all trials.
	ClusterSizeHistogram map[int]int
}

// Statistics reduces the aggregate. With zero trials every estimate is 0.
func (a *Aggregate) Statistics() Statistics {
	st := Statistics{
		Size:                 a.Size,
		P:                    a.P,
		Trials:               a.Trials,
		Spanning:             a.Spanning,
		ClusterSizeHistogram: maps.Clone(a.Histogram),
	}
	if st.ClusterSizeHistogram == nil {
		st.ClusterSizeHistogram = make(map[int]int)
	}
	if a.Trials == 0 {
		return st
	}

	t := float64(a.Trials)
	prob := float64(a.Spanning) / t
	mean := float64(a.SumMax) / t
	variance := float64(a.SumMaxSq)/t - mean*mean
	if variance < 0 {
		variance = 0 // float rounding on constant samples
	}

	st.PercolationProbability = prob
	st.StdErrProbability = math.Sqrt(prob * (1 - prob) / t)
	st.MeanMaxClusterSize = mean
	st.StdDevMaxClusterSize = math.Sqrt(variance)
	st.MeanBurnRounds = float64(a.SumRounds) / t
	return st
}
