package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rolls/internal/sims/rolls"
)

func newGenCmd(opts *rootOptions) *cobra.Command {
	cfg := rolls.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a randomly generated board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Width <= 0 || cfg.Height <= 0 {
				return fmt.Errorf("board size must be positive, got %dx%d", cfg.Width, cfg.Height)
			}
			if cfg.Density < 0 || cfg.Density > 1 {
				return fmt.Errorf("density %v outside [0,1]", cfg.Density)
			}
			out := cmd.OutOrStdout()
			for _, l := range rolls.Generate(cfg) {
				if _, err := fmt.Fprintln(out, l); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.Width, "width", cfg.Width, "board width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "board height")
	f.Float64Var(&cfg.Density, "density", cfg.Density, "probability that a cell holds a roll")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed")
	return cmd
}
