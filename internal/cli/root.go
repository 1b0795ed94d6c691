// Package cli implements the command-line interface for gocube-solver.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	verbose bool
	logFile string

	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-solver",
	Short: "Two-phase Rubik's Cube solver",
	Long: `gocube-solver - A command-line front end for the two-phase Rubik's Cube solver.

Build and inspect the coordinate tables, check cube states for validity, and
solve states given as explicit permutation and orientation vectors.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, closer, err := newLogger(cmd.ErrOrStderr(), verbose, logFile)
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write debug logs to this file, with rotation")
}

// closeLog flushes and closes the log file, if one is open.
func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	logger = slog.New(slog.DiscardHandler)
}
