package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rolls/internal/input"
	"rolls/internal/sims/rolls"
)

func newSolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the total number of rolls removed before the grid settles",
		Long: `Runs elimination passes until a pass removes nothing and prints the total.
The file defaults to the configured input; "-" reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readInput(cmd, opts, args)
			if err != nil {
				return err
			}
			total := rolls.New(lines, rolls.WithLogger(opts.logger)).Run()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
}

func newAccessibleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accessible [file]",
		Short: "Count rolls removable right now, without removing any",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readInput(cmd, opts, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rolls.Accessible(lines))
			return err
		},
	}
}

func newTraceCmd(opts *rootOptions) *cobra.Command {
	var showGrid bool
	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Show eliminations per pass and the settled grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readInput(cmd, opts, args)
			if err != nil {
				return err
			}
			sim := rolls.New(lines, rolls.WithLogger(opts.logger))
			sim.Run()

			out := cmd.OutOrStdout()
			for i, n := range sim.History() {
				fmt.Fprintf(out, "pass %d: eliminated %d\n", i+1, n)
			}
			fmt.Fprintf(out, "total: %d\npasses: %d\nremaining: %d\n", sim.Eliminated(), sim.Passes(), sim.ActiveCount())
			if showGrid {
				fmt.Fprintln(out)
				for _, l := range sim.Lines() {
					fmt.Fprintln(out, l)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showGrid, "grid", true, "print the settled grid")
	return cmd
}

func readInput(cmd *cobra.Command, opts *rootOptions, args []string) ([]string, error) {
	path := opts.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}

	var (
		lines []string
		err   error
	)
	if path == "-" {
		lines, err = input.ReadLines(cmd.InOrStdin())
	} else {
		lines, err = input.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("input loaded", zap.String("path", path), zap.Int("rows", len(lines)))
	return lines, nil
}
