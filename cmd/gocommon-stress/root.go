package main

import (
	"context"
	"fmt"

	"fortio.org/safecast"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	goCommon "github.com/MrEthical07/goCommon"
)

type options struct {
	ops         uint64
	concurrency int
	seed        uint64
	configPath  string
	phases      []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gocommon-stress",
		Short: "Hammer flag sets and results from many goroutines and check their invariants",
		Long: `gocommon-stress runs the flagset and result engines concurrently with random
input and fails if any invariant breaks: masking, strict/lenient agreement,
iteration order, description bounds, or the failure counters disagreeing with
the number of failed results produced.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&opts.ops, "ops", 200000, "operations per phase")
	f.IntVar(&opts.concurrency, "concurrency", 64, "number of concurrent workers")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed; workers derive their streams from it")
	f.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	f.StringSliceVar(&opts.phases, "phase", []string{phaseFlagSet, phaseResult}, "phases to run (flagset, result)")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ops, err := safecast.Conv[int](opts.ops)
	if err != nil || ops <= 0 {
		return fmt.Errorf("ops must be in (0, %d]: %d", int(^uint(0)>>1), opts.ops)
	}
	if opts.concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0")
	}

	cfg := goCommon.DefaultConfig()
	if opts.configPath != "" {
		cfg, err = goCommon.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}
	cfg.Metrics.Enabled = true
	cfg.Metrics.TrackTruncations = true

	rt, err := goCommon.New().WithConfig(cfg).WithOutput(cmd.ErrOrStderr()).Build()
	if err != nil {
		return err
	}
	defer rt.Close()

	logger := rt.Logger().With().Str("run_id", uuid.NewString()).Logger()
	logger.Info().
		Int("ops", ops).
		Int("concurrency", opts.concurrency).
		Uint64("seed", opts.seed).
		Strs("phases", opts.phases).
		Msg("stress run starting")

	var produced expectations
	for _, name := range opts.phases {
		p, ok := phases[name]
		if !ok {
			return fmt.Errorf("unknown phase %q", name)
		}

		stats, exp, err := runPhase(ctx, p, ops, opts.concurrency, opts.seed)
		if err != nil {
			logger.Error().Err(err).Str("phase", name).Msg("invariant violated")
			return err
		}
		produced.add(exp)

		printStats(cmd.OutOrStdout(), name, stats)
		logger.Info().
			Str("phase", name).
			Int("ops", stats.ops).
			Float64("ops_per_sec", stats.opsPerS).
			Dur("p99", stats.p99).
			Msg("phase complete")
	}

	if err := produced.check(rt.MetricsSnapshot()); err != nil {
		logger.Error().Err(err).Msg("metrics disagree with produced failures")
		return err
	}
	logger.Info().
		Uint64("failures", produced.failures).
		Uint64("truncations", produced.truncations).
		Msg("stress run passed")
	return nil
}
