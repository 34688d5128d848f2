// Command rolls runs the paper-roll decay simulation over puzzle input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rolls/internal/config"
	"rolls/internal/logging"
)

// rootOptions carries global flags and the state built from them before any
// subcommand runs.
type rootOptions struct {
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "rolls",
		Short: "Simulate paper-roll decay on a character grid",
		Long: `rolls reads a grid where '@' marks a paper roll and repeatedly removes
every roll with fewer than four neighbouring rolls, scanning row by row and
updating the grid in place, until a full pass removes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log encoding (console, json)")

	rootCmd.AddCommand(
		newSolveCmd(opts),
		newAccessibleCmd(opts),
		newTraceCmd(opts),
		newGenCmd(opts),
		newSweepCmd(opts),
		newViewCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Verbose: o.verbose,
	})
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rolls:", err)
		os.Exit(1)
	}
}
