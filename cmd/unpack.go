package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/source"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack [archive] [dir]",
	Short: "Extract every archive entry into a directory tree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ar, err := archive.OpenFile(args[0], archive.ModeRead, archiveOptions())
		if err != nil {
			return err
		}
		defer func() { _ = ar.Close() }()

		if err := os.MkdirAll(args[1], 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", args[1], err)
		}
		if err := source.Extract(ar, osfs.New(args[1])); err != nil {
			return err
		}
		fmt.Printf("Unpacked %d entries into %s.\n", len(ar.Entries()), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}
