package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/config"
	plog "github.com/katalvlaran/percolation/internal/log"
	"github.com/katalvlaran/percolation/montecarlo"
)

// NewRootCmd creates the root command for percolate.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percolate",
		Short: "Monte Carlo site percolation on square lattices",
		Long: `percolate simulates site percolation on an L×L square lattice with
4-neighbour connectivity and open boundaries. It detects spanning clusters
with the burning method, labels clusters by flood fill, and aggregates many
independent trials into percolation probability and cluster-size statistics.

Parameters are read from .percolate.yaml (see "percolate init") and may be
overridden by flags.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default: ./"+config.DefaultConfigFile+" or ~/"+config.DefaultConfigFile+")")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewSweepCmd())
	cmd.AddCommand(NewLatticeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the command logger, tagged with a fresh run id.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return plog.New(cmd.ErrOrStderr(), verbose).With("run", uuid.NewString())
}

// loadConfig resolves the configuration file and returns its contents, or
// the defaults when no file is found. An explicit --config path that does
// not exist is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")
	path := config.FindConfigFile(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, explicit)
		}
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// addRunnerFlags registers the flags shared by run and sweep.
func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("trials", "T", 0, "Trials per (L, p)")
	cmd.Flags().Int("workers", 0, "Concurrent workers (0 = one per CPU)")
	cmd.Flags().Uint64("seed", 0, "Base random seed (0 = random)")
	cmd.Flags().Bool("cross-check", false, "Validate every trial with the DFS sizer")
	cmd.Flags().Bool("converge", false, "Stop early once the estimate is stable")
}

// applyRunnerFlags copies explicitly set runner flags into cfg.
func applyRunnerFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("cross-check") {
		cfg.CrossCheck, _ = flags.GetBool("cross-check")
	}
	if flags.Changed("converge") {
		cfg.Convergence.Enabled, _ = flags.GetBool("converge")
	}
}

// newRunner translates cfg into a montecarlo.Runner.
func newRunner(cfg *config.Config, logger *slog.Logger) *montecarlo.Runner {
	opts := []montecarlo.Option{
		montecarlo.WithLogger(logger),
		montecarlo.WithCrossCheck(cfg.CrossCheck),
		montecarlo.WithWorkers(cfg.Workers),
	}
	if cfg.Seed != 0 {
		opts = append(opts, montecarlo.WithSeed(cfg.Seed))
	}
	if cv := cfg.Convergence; cv.Enabled {
		opts = append(opts, montecarlo.WithConvergence(montecarlo.Convergence{
			Batch:     cv.Batch,
			Window:    cv.Window,
			Tolerance: cv.Tolerance,
		}))
	}
	return montecarlo.NewRunner(opts...)
}
