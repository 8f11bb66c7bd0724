package montecarlo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/stats"
)

// RunTrials runs `trials` independent trials for (size, p) and returns the
// merged aggregate. Parameters are validated before any trial starts; on
// error no aggregate is returned.
//
// With a convergence criterion the run may stop before `trials`; the
// aggregate's Trials field reports how many were run.
func (r *Runner) RunTrials(ctx context.Context, size int, p float64, trials int) (*stats.Aggregate, error) {
	if err := r.validate(size, p, trials); err != nil {
		return nil, err
	}

	start := time.Now()
	agg := stats.NewAggregate(size, p)

	if r.convergence == nil {
		if err := r.runRange(ctx, agg, 0, trials); err != nil {
			return nil, err
		}
	} else if err := r.runConverging(ctx, agg, trials); err != nil {
		return nil, err
	}

	r.logger.Debug("trials complete",
		"size", size,
		"p", p,
		"trials", agg.Trials,
		"spanning", agg.Spanning,
		"elapsed", time.Since(start),
	)
	return agg, nil
}

func (r *Runner) validate(size int, p float64, trials int) error {
	if err := lattice.Validate(size, p); err != nil {
		return err
	}
	if trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if r.convergence != nil {
		return r.convergence.validate()
	}
	return nil
}

// runConverging runs batches until the trial budget is spent or the running
// estimate has been stable for a full window of batches.
func (r *Runner) runConverging(ctx context.Context, agg *stats.Aggregate, trials int) error {
	c := *r.convergence
	history := make([]float64, 0, c.Window)

	for from := 0; from < trials; from += c.Batch {
		to := min(from+c.Batch, trials)
		if err := r.runRange(ctx, agg, from, to); err != nil {
			return err
		}

		est := float64(agg.Spanning) / float64(agg.Trials)
		if len(history) == c.Window {
			history = history[1:]
		}
		history = append(history, est)

		if len(history) == c.Window && spread(history) <= c.Tolerance {
			r.logger.Info("estimate converged",
				"size", agg.Size,
				"p", agg.P,
				"trials", agg.Trials,
				"probability", est,
			)
			return nil
		}
	}
	return nil
}

// runRange runs trials [from, to) on up to r.workers goroutines. Worker k
// takes trials from+k, from+k+w, ... into a private aggregate; the private
// aggregates are merged into agg once all workers finish.
func (r *Runner) runRange(ctx context.Context, agg *stats.Aggregate, from, to int) error {
	n := to - from
	if n <= 0 {
		return nil
	}
	w := min(r.workers, n)
	parts := make([]*stats.Aggregate, w)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w)
	for k := 0; k < w; k++ {
		g.Go(func() error {
			part := stats.NewAggregate(agg.Size, agg.P)
			for i := from + k; i < to; i += w {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				res, err := RunTrial(agg.Size, agg.P, trialRNG(r.seed, agg.Size, i), r.crossCheck)
				if err != nil {
					return fmt.Errorf("trial %d (L=%d, p=%v): %w", i, agg.Size, agg.P, err)
				}
				part.Add(res)
			}
			parts[k] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, part := range parts {
		if err := agg.Merge(part); err != nil {
			return err
		}
	}
	return nil
}

// spread returns max(xs) - min(xs).
func spread(xs []float64) float64 {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return hi - lo
}
