package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/canvaspack/internal/archive"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log archive diagnostics to stderr")
}

var rootCmd = &cobra.Command{
	Use:   "canvaspack",
	Short: "Canvaspack: inspect, unpack and pack canvas app archives",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// archiveOptions carries the CLI logging choice into archive facades:
// debug text on stderr with --verbose, discarded otherwise.
func archiveOptions() *archive.Options {
	if !verbose {
		return &archive.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &archive.Options{Logger: slog.New(handler)}
}
