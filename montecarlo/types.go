package montecarlo

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/stats"
)

var (
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = fmt.Errorf("%w: trial count must be positive", lattice.ErrInvalidParameter)

	// ErrEmptySweep indicates a sweep without sizes or probabilities.
	ErrEmptySweep = fmt.Errorf("%w: sweep needs at least one size and one probability", lattice.ErrInvalidParameter)

	// ErrInvalidConvergence indicates a malformed convergence criterion.
	ErrInvalidConvergence = fmt.Errorf("%w: convergence batch must be positive, window at least 2, tolerance non-negative", lattice.ErrInvalidParameter)

	// ErrCrossCheck indicates that two analyses of the same lattice disagree.
	ErrCrossCheck = errors.New("montecarlo: cross-check failed")
)

// DefaultSnapshots are the representative p values used for size
// distributions when a SweepRequest leaves Snapshots nil.
var DefaultSnapshots = []float64{0.5, stats.PC, 0.7}

// Convergence stops a run early once the running percolation probability
// is stable. Trials run in batches of Batch; after each batch the running
// estimate is recorded, and the run stops when the last Window estimates
// differ by at most Tolerance. Window must be at least 2.
type Convergence struct {
	Batch     int
	Window    int
	Tolerance float64
}

func (c Convergence) validate() error {
	if c.Batch <= 0 || c.Window < 2 || !(c.Tolerance >= 0) {
		return fmt.Errorf("%w: %+v", ErrInvalidConvergence, c)
	}
	return nil
}

// Option configures a Runner.
type Option func(*Runner)

// Runner executes Monte Carlo trials on a bounded pool of goroutines.
type Runner struct {
	workers     int
	seed        uint64
	crossCheck  bool
	convergence *Convergence
	logger      *slog.Logger
}

// WithWorkers sets the number of concurrent workers.
// Default is runtime.GOMAXPROCS(0); non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSeed fixes the base seed of all trial streams.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithCrossCheck enables validation of every trial against the DFS sizer
// and of burning against labeling.
func WithCrossCheck(enabled bool) Option {
	return func(r *Runner) {
		r.crossCheck = enabled
	}
}

// WithConvergence enables early termination. It is validated when a run
// starts.
func WithConvergence(c Convergence) Option {
	return func(r *Runner) {
		r.convergence = &c
	}
}

// WithLogger sets the logger for run-level progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner. Without WithSeed the base seed is random.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		seed:    rand.Uint64(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Seed returns the base seed, for logging and reproduction.
func (r *Runner) Seed() uint64 { return r.seed }

// Workers returns the worker count.
func (r *Runner) Workers() int { return r.workers }

// SweepRequest describes a sweep over lattice sizes and probabilities.
type SweepRequest struct {
	Sizes         []int
	Probabilities []float64
	Trials        int
	// Snapshots are the p values at which cluster-size distributions are
	// kept. nil selects DefaultSnapshots; an empty slice disables them.
	Snapshots []float64
	// BinBase is the growth factor of logarithmic size bins; values <= 1
	// select 2.
	BinBase float64
}

// Snapshot is the cluster-size distribution of one (L, p).
type Snapshot struct {
	Size       int
	P          float64
	Statistics stats.Statistics
	Bins       []stats.Bin
}

// SweepResult holds one curve per lattice size, in request order, and the
// size-distribution snapshots.
type SweepResult struct {
	Curves    []stats.Curve
	Snapshots []Snapshot
}
