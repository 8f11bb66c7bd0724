package config

import (
	"fmt"
	"math"
)

// Config is the full parameter set of a simulation run.
type Config struct {
	// Size is the lattice edge length L of a single run.
	Size int `yaml:"size"`
	// Probability is the occupation probability p of a single run.
	Probability float64 `yaml:"probability"`
	// Trials is the trial count T per (L, p).
	Trials int `yaml:"trials"`
	// Workers bounds concurrent trials; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Seed fixes all random streams; 0 draws a random seed.
	Seed uint64 `yaml:"seed"`
	// CrossCheck validates every trial with the DFS sizer.
	CrossCheck bool `yaml:"cross_check"`

	Sweep       SweepConfig       `yaml:"sweep"`
	Convergence ConvergenceConfig `yaml:"convergence"`
}

// SweepConfig describes the (L, p) grid of a sweep.
type SweepConfig struct {
	// Sizes is lSweep, strictly increasing.
	Sizes []int `yaml:"sizes"`
	// Probabilities is pSweep, strictly increasing. If empty, Range is used.
	Probabilities []float64 `yaml:"probabilities,omitempty"`
	// Range generates pSweep when Probabilities is empty.
	Range RangeConfig `yaml:"range"`
	// Snapshots are the p values whose size distributions are reported.
	Snapshots []float64 `yaml:"snapshots"`
	// BinBase is the growth factor of logarithmic size bins.
	BinBase float64 `yaml:"bin_base"`
}

// RangeConfig is an inclusive arithmetic progression of probabilities.
type RangeConfig struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

// ConvergenceConfig enables early termination of a (L, p) run.
type ConvergenceConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Batch     int     `yaml:"batch"`
	Window    int     `yaml:"window"`
	Tolerance float64 `yaml:"tolerance"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Size:        64,
		Probability: 0.592746,
		Trials:      1000,
		Sweep: SweepConfig{
			Sizes:     []int{16, 32, 64, 128},
			Range:     RangeConfig{From: 0.40, To: 0.80, Step: 0.02},
			Snapshots: []float64{0.5, 0.592746, 0.7},
			BinBase:   2,
		},
		Convergence: ConvergenceConfig{
			Batch:     100,
			Window:    5,
			Tolerance: 0.005,
		},
	}
}

// Validate checks the fields used by a single (L, p) run.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if err := validProbability(c.Probability); err != nil {
		return err
	}
	return c.validateCommon()
}

// ValidateSweep checks the fields used by a sweep.
func (c *Config) ValidateSweep() error {
	if len(c.Sweep.Sizes) == 0 {
		return ErrEmptySweep
	}
	for i, size := range c.Sweep.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
		}
		if i > 0 && size <= c.Sweep.Sizes[i-1] {
			return fmt.Errorf("%w: sizes %v", ErrUnorderedSweep, c.Sweep.Sizes)
		}
	}
	if _, err := c.SweepProbabilities(); err != nil {
		return err
	}
	for _, p := range c.Sweep.Snapshots {
		if err := validProbability(p); err != nil {
			return err
		}
	}
	if !(c.Sweep.BinBase > 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidBinBase, c.Sweep.BinBase)
	}
	return c.validateCommon()
}

func (c *Config) validateCommon() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if cv := c.Convergence; cv.Enabled && (cv.Batch <= 0 || cv.Window < 2 || !(cv.Tolerance >= 0)) {
		return fmt.Errorf("%w: batch=%d window=%d tolerance=%v", ErrInvalidConvergence, cv.Batch, cv.Window, cv.Tolerance)
	}
	return nil
}

// SweepProbabilities returns pSweep: the explicit list if set, otherwise the
// generated range. The result is validated and strictly increasing.
func (c *Config) SweepProbabilities() ([]float64, error) {
	ps := c.Sweep.Probabilities
	if len(ps) == 0 {
		var err error
		if ps, err = ProbabilityRange(c.Sweep.Range.From, c.Sweep.Range.To, c.Sweep.Range.Step); err != nil {
			return nil, err
		}
	}
	if len(ps) == 0 {
		return nil, ErrEmptySweep
	}
	for i, p := range ps {
		if err := validProbability(p); err != nil {
			return nil, err
		}
		if i > 0 && p <= ps[i-1] {
			return nil, fmt.Errorf("%w: probabilities %v", ErrUnorderedSweep, ps)
		}
	}
	return ps, nil
}

// MaxRangePoints bounds the length of a generated probability range.
const MaxRangePoints = 1_000_000

// ProbabilityRange returns from, from+step, ... up to and including to
// (within rounding). Values are rounded to 1e-9 so that 0.1-steps land on
// their decimal values. Both ends must lie in [0,1] and the range may hold
// at most MaxRangePoints values.
func ProbabilityRange(from, to, step float64) ([]float64, error) {
	if err := validProbability(from); err != nil {
		return nil, err
	}
	if err := validProbability(to); err != nil {
		return nil, err
	}
	if !(step > 0) || from > to {
		return nil, fmt.Errorf("%w: from=%v to=%v step=%v", ErrInvalidRange, from, to, step)
	}
	count := math.Floor((to-from)/step + 1e-9)
	if !(count < MaxRangePoints) {
		return nil, fmt.Errorf("%w: step %v yields more than %d points", ErrInvalidRange, step, MaxRangePoints)
	}
	n := int(count) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*1e9) / 1e9
	}
	return out, nil
}

func validProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}
