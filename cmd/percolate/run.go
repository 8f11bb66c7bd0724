package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/report"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate percolation statistics for one (L, p)",
		Long: `Run T independent trials on L×L lattices with occupation probability p
and print the percolation probability, mean largest cluster size and the
cluster-size histogram as Markdown.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}

	cmd.Flags().IntP("size", "L", 0, "Lattice edge length")
	cmd.Flags().Float64P("probability", "p", 0, "Occupation probability")
	addRunnerFlags(cmd)

	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("size") {
		cfg.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("probability") {
		cfg.Probability, _ = cmd.Flags().GetFloat64("probability")
	}
	applyRunnerFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd)
	runner := newRunner(cfg, logger)
	logger.Info("starting run",
		"size", cfg.Size,
		"p", cfg.Probability,
		"trials", cfg.Trials,
		"workers", runner.Workers(),
		"seed", runner.Seed(),
	)

	agg, err := runner.RunTrials(cmd.Context(), cfg.Size, cfg.Probability, cfg.Trials)
	if err != nil {
		return err
	}
	return report.NewMarkdownWriter(cmd.OutOrStdout()).WriteStatistics(agg.Statistics())
}
