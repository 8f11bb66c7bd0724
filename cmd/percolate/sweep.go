package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/report"
	"github.com/katalvlaran/percolation/montecarlo"
)

// NewSweepCmd creates the sweep command.
func NewSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep p across several lattice sizes",
		Long: `Run T trials for every (L, p) pair and print, per lattice size, the
percolation probability and mean largest cluster size as functions of p,
followed by logarithmically binned cluster-size distributions at the
snapshot probabilities (by default below, at and above p_c ≈ 0.592746).

Probabilities come from --probabilities, or from --p-from/--p-to/--p-step.`,
		Args: cobra.NoArgs,
		RunE: runSweep,
	}

	cmd.Flags().IntSlice("sizes", nil, "Lattice edge lengths, increasing")
	cmd.Flags().Float64Slice("probabilities", nil, "Occupation probabilities, increasing")
	cmd.Flags().Float64("p-from", 0, "First probability of a generated range")
	cmd.Flags().Float64("p-to", 0, "Last probability of a generated range")
	cmd.Flags().Float64("p-step", 0, "Step of a generated range")
	cmd.Flags().Float64Slice("snapshots", nil, "Probabilities at which size distributions are reported")
	cmd.Flags().Float64("bin-base", 0, "Growth factor of logarithmic size bins")
	addRunnerFlags(cmd)

	return cmd
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		cfg.Sweep.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Changed("probabilities") {
		cfg.Sweep.Probabilities, _ = flags.GetFloat64Slice("probabilities")
	}
	if flags.Changed("p-from") || flags.Changed("p-to") || flags.Changed("p-step") {
		cfg.Sweep.Probabilities = nil
		if flags.Changed("p-from") {
			cfg.Sweep.Range.From, _ = flags.GetFloat64("p-from")
		}
		if flags.Changed("p-to") {
			cfg.Sweep.Range.To, _ = flags.GetFloat64("p-to")
		}
		if flags.Changed("p-step") {
			cfg.Sweep.Range.Step, _ = flags.GetFloat64("p-step")
		}
	}
	if flags.Changed("snapshots") {
		cfg.Sweep.Snapshots, _ = flags.GetFloat64Slice("snapshots")
	}
	if flags.Changed("bin-base") {
		cfg.Sweep.BinBase, _ = flags.GetFloat64("bin-base")
	}
	applyRunnerFlags(cmd, cfg)
	if err := cfg.ValidateSweep(); err != nil {
		return err
	}
	probs, err := cfg.SweepProbabilities()
	if err != nil {
		return err
	}

	snapshots := cfg.Sweep.Snapshots
	if snapshots == nil {
		snapshots = []float64{}
	}

	runner := newRunner(cfg, newLogger(cmd))
	res, err := runner.Sweep(cmd.Context(), montecarlo.SweepRequest{
		Sizes:         cfg.Sweep.Sizes,
		Probabilities: probs,
		Trials:        cfg.Trials,
		Snapshots:     snapshots,
		BinBase:       cfg.Sweep.BinBase,
	})
	if err != nil {
		return err
	}
	return report.NewMarkdownWriter(cmd.OutOrStdout()).WriteSweep(res)
}
