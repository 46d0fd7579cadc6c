// Package cmd provides the root command and CLI setup for gridkit.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/PanoramicPanda/gridkit/config"
)

const (
	inputDirFlag = "input-dir"
	workersFlag  = "workers"
	logLevelFlag = "log-level"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridkit",
		Short: "Grid puzzle solver",
		Long: `Gridkit solves grid puzzles read from text files: a patrolling guard,
garden plot pricing, antenna antinodes, hiking trails, a word search and
drones drifting over a wrapping floor.

Each subcommand takes an optional input file. Without one it reads
<input-dir>/day_NN.txt for its puzzle day.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String(inputDirFlag, "", "directory holding day_NN.txt inputs (env "+config.EnvInputDir+")")
	cmd.PersistentFlags().Int(workersFlag, 0, "parallel workers for the obstacle sweep (env "+config.EnvWorkers+")")
	cmd.PersistentFlags().String(logLevelFlag, "", "debug, info, warn or error (env "+config.EnvLogLevel+")")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// settings resolves configuration for a run: .env and environment first,
// then any flag the user set explicitly.
func settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed(inputDirFlag) {
		cfg.InputDir, _ = flags.GetString(inputDirFlag)
	}
	if flags.Changed(workersFlag) {
		n, _ := flags.GetInt(workersFlag)
		if n < 1 {
			return config.Config{}, errInvalidFlag(workersFlag, n)
		}
		cfg.Workers = n
	}
	if flags.Changed(logLevelFlag) {
		s, _ := flags.GetString(logLevelFlag)
		lvl, err := config.ParseLevel(s)
		if err != nil {
			return config.Config{}, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// newLogger writes text records at or above level to the command's stderr.
func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
