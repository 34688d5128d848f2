//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"rolls/internal/app"
	"rolls/internal/sims/rolls"
)

func newViewCmd(opts *rootOptions) *cobra.Command {
	viewCfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Watch the decay pass by pass in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if !f.Changed("scale") {
				viewCfg.Scale = opts.cfg.View.Scale
			}
			if !f.Changed("tps") {
				viewCfg.TPS = opts.cfg.View.TPS
			}
			if !f.Changed("pass-rate") {
				viewCfg.PassRate = opts.cfg.View.PassRate
			}

			var sim *rolls.Simulator
			if viewCfg.Random {
				sim = rolls.NewWithConfig(rolls.Config{
					Width:   viewCfg.Width,
					Height:  viewCfg.Height,
					Density: viewCfg.Density,
					Seed:    viewCfg.Seed,
				}, rolls.WithLogger(opts.logger))
			} else {
				lines, err := readInput(cmd, opts, args)
				if err != nil {
					return err
				}
				sim = rolls.New(lines, rolls.WithLogger(opts.logger))
			}

			game := app.New(sim, viewCfg)
			size := sim.Size()
			ebiten.SetWindowTitle(sim.Name())
			ebiten.SetTPS(viewCfg.TPS)
			ebiten.SetWindowSize(max(size.W, 1)*viewCfg.Scale, max(size.H, 1)*viewCfg.Scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	viewCfg.Bind(cmd.Flags())
	return cmd
}
