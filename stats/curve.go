package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInvalidBase indicates a logarithmic bin base <= 1.
	ErrInvalidBase = errors.New("stats: log bin base must be greater than 1")
	// ErrInvalidSites indicates a non-positive site count for density scaling.
	ErrInvalidSites = errors.New("stats: site count must be positive")
)

// Point is one (p, estimate) sample of a sweep curve.
type Point struct {
	P                      float64
	Trials                 int
	PercolationProbability float64
	StdErrProbability      float64
	MeanMaxClusterSize     float64
}

// Curve holds the sweep estimates for one lattice size, ordered by P.
type Curve struct {
	Size   int
	Points []Point
}

// NewCurve builds a curve from per-p statistics of a single size.
// Points are sorted by P.
func NewCurve(size int, sts []Statistics) Curve {
	pts := make([]Point, 0, len(sts))
	for _, st := range sts {
		pts = append(pts, Point{
			P:                      st.P,
			Trials:                 st.Trials,
			PercolationProbability: st.PercolationProbability,
			StdErrProbability:      st.StdErrProbability,
			MeanMaxClusterSize:     st.MeanMaxClusterSize,
		})
	}
	slices.SortStableFunc(pts, func(a, b Point) int {
		switch {
		case a.P < b.P:
			return -1
		case a.P > b.P:
			return 1
		}
		return 0
	})
	return Curve{Size: size, Points: pts}
}

// Columns returns the curve as parallel arrays of p, percolation
// probability and mean maximum cluster size.
func (c Curve) Columns() (ps, probs, means []float64) {
	ps = make([]float64, len(c.Points))
	probs = make([]float64, len(c.Points))
	means = make([]float64, len(c.Points))
	for i, pt := range c.Points {
		ps[i] = pt.P
		probs[i] = pt.PercolationProbability
		means[i] = pt.MeanMaxClusterSize
	}
	return ps, probs, means
}

// Steepness returns the largest finite-difference slope of the percolation
// probability between consecutive points, 0 for fewer than two points.
// Larger lattices produce steeper transitions around PC.
func (c Curve) Steepness() float64 {
	best := 0.0
	for i := 1; i < len(c.Points); i++ {
		dp := c.Points[i].P - c.Points[i-1].P
		if dp <= 0 {
			continue
		}
		slope := (c.Points[i].PercolationProbability - c.Points[i-1].PercolationProbability) / dp
		if slope > best {
			best = slope
		}
	}
	return best
}

// Bin is one logarithmic bin of the cluster-size distribution.
// Lower and Upper are inclusive cluster sizes.
type Bin struct {
	Lower, Upper int
	Count        int
	// Density is the cluster number per site per unit size, n_s.
	Density float64
}

// LogBins groups a size histogram into bins [1], [2, base), ... whose widths
// grow geometrically by base, and scales counts to n_s using the total
// number of sites sampled (L² times the trial count). Empty bins are omitted.
func LogBins(hist map[int]int, sites int, base float64) ([]Bin, error) {
	if !(base > 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBase, base)
	}
	if sites <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSites, sites)
	}
	sizes := SortedSizes(hist)
	if len(sizes) == 0 {
		return nil, nil
	}
	maxSize := sizes[len(sizes)-1]

	var bins []Bin
	k := 0
	for lower := 1; lower <= maxSize; {
		upper := int(math.Ceil(float64(lower)*base)) - 1
		if upper < lower {
			upper = lower
		}
		for k < len(sizes) && sizes[k] < lower {
			k++
		}
		count := 0
		for k < len(sizes) && sizes[k] <= upper {
			count += hist[sizes[k]]
			k++
		}
		if count > 0 {
			width := float64(upper - lower + 1)
			bins = append(bins, Bin{
				Lower:   lower,
				Upper:   upper,
				Count:   count,
				Density: float64(count) / (float64(sites) * width),
			})
		}
		lower = upper + 1
	}
	return bins, nil
}

// SortedSizes returns the positive histogram keys in ascending order.
func SortedSizes(hist map[int]int) []int {
	sizes := make([]int, 0, len(hist))
	for s, n := range hist {
		if s > 0 && n > 0 {
			sizes = append(sizes, s)
		}
	}
	slices.Sort(sizes)
	return sizes
}
