// Package main provides the entry point for the eventbook CLI application.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0-dev"
	globalDir string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "eventbook",
		Short:   "An address book for people and the events they attend",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand starts the interactive session.
			return runRepl(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&globalDir, "dir", "d", "", "Directory holding the .eventbook data (default: current directory)")

	rootCmd.AddCommand(
		newInitCmd(),
		newReplCmd(),
		newExecCmd(),
		newExportCmd(),
		newImportCmd(),
		newStatsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// setupLogging configures slog from the configured level. Logs go to stderr
// so they never interleave with command output.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
