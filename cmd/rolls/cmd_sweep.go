package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rolls/internal/sweep"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		workers, width, height, seeds int
		densities                     []float64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run generated boards across densities and summarise the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := opts.cfg.Sweep
			f := cmd.Flags()
			if f.Changed("workers") {
				sc.Workers = workers
			}
			if f.Changed("width") {
				sc.Width = width
			}
			if f.Changed("height") {
				sc.Height = height
			}
			if f.Changed("seeds") {
				sc.Seeds = seeds
			}
			if f.Changed("densities") {
				sc.Densities = densities
			}
			cfg := opts.cfg
			cfg.Sweep = sc
			if err := cfg.Validate(); err != nil {
				return err
			}

			scenarios := sweep.Scenarios(sc.Width, sc.Height, sc.Seeds, sc.Densities)
			opts.logger.Info("sweep starting", zap.Int("scenarios", len(scenarios)), zap.Int("workers", sc.Workers))

			start := time.Now()
			results, err := sweep.Runner{Workers: sc.Workers, Logger: opts.logger}.Run(cmd.Context(), scenarios)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Swept %d boards of %dx%d (%d workers, elapsed %s)\n",
				len(results), sc.Width, sc.Height, sc.Workers, time.Since(start).Round(time.Millisecond))
			for _, s := range sweep.Summarize(results) {
				fmt.Fprintf(out, "density=%.2f runs=%d removed=%.1f%% passes(mean=%.2f max=%d)\n",
					s.Density, s.Runs, s.MeanFraction*100, s.MeanPasses, s.MaxPasses)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&workers, "workers", 0, "number of worker goroutines")
	f.IntVar(&width, "width", 0, "board width")
	f.IntVar(&height, "height", 0, "board height")
	f.IntVar(&seeds, "seeds", 0, "boards per density")
	f.Float64SliceVar(&densities, "densities", nil, "comma-separated densities to sweep")
	return cmd
}
