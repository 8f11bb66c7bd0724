package montecarlo

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/stats"
)

const defaultBinBase = 2

// Sweep runs RunTrials for every (L, p) pair of req and collects one curve
// per size plus size-distribution snapshots at req.Snapshots (reusing sweep
// points where p coincides). All parameters are validated first.
func (r *Runner) Sweep(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	if err := r.validateSweep(req); err != nil {
		return nil, err
	}
	snapshots := req.Snapshots
	if snapshots == nil {
		snapshots = DefaultSnapshots
	}
	base := req.BinBase
	if base <= 1 {
		base = defaultBinBase
	}

	r.logger.Info("starting sweep",
		"sizes", req.Sizes,
		"points", len(req.Probabilities),
		"trials", req.Trials,
		"workers", r.workers,
		"seed", r.seed,
	)
	start := time.Now()

	res := &SweepResult{Curves: make([]stats.Curve, 0, len(req.Sizes))}
	for _, size := range req.Sizes {
		byP := make(map[float64]stats.Statistics, len(req.Probabilities))
		sts := make([]stats.Statistics, 0, len(req.Probabilities))
		for _, p := range req.Probabilities {
			agg, err := r.RunTrials(ctx, size, p, req.Trials)
			if err != nil {
				return nil, err
			}
			st := agg.Statistics()
			byP[p] = st
			sts = append(sts, st)
		}
		res.Curves = append(res.Curves, stats.NewCurve(size, sts))

		for _, p := range snapshots {
			st, ok := byP[p]
			if !ok {
				agg, err := r.RunTrials(ctx, size, p, req.Trials)
				if err != nil {
					return nil, err
				}
				st = agg.Statistics()
			}
			bins, err := stats.LogBins(st.ClusterSizeHistogram, size*size*st.Trials, base)
			if err != nil {
				return nil, err
			}
			res.Snapshots = append(res.Snapshots, Snapshot{Size: size, P: p, Statistics: st, Bins: bins})
		}
		r.logger.Debug("size complete", "size", size)
	}

	r.logger.Info("sweep complete",
		"curves", len(res.Curves),
		"snapshots", len(res.Snapshots),
		"elapsed", time.Since(start),
	)
	return res, nil
}

func (r *Runner) validateSweep(req SweepRequest) error {
	if len(req.Sizes) == 0 || len(req.Probabilities) == 0 {
		return ErrEmptySweep
	}
	if req.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, req.Trials)
	}
	for _, size := range req.Sizes {
		for _, p := range req.Probabilities {
			if err := lattice.Validate(size, p); err != nil {
				return err
			}
		}
		for _, p := range req.Snapshots {
			if err := lattice.Validate(size, p); err != nil {
				return err
			}
		}
	}
	if r.convergence != nil {
		return r.convergence.validate()
	}
	return nil
}
