package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/canvaspack/api"
	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/persist"
	"github.com/agentic-research/canvaspack/internal/source"
)

var packName string

func init() {
	packCmd.Flags().StringVar(&packName, "name", "", "Seed a new app document when the tree has none")
	rootCmd.AddCommand(packCmd)
}

var packCmd = &cobra.Command{
	Use:   "pack [dir] [archive]",
	Short: "Bundle a source directory tree into a packaged archive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ar, err := archive.OpenFile(args[1], archive.ModeCreate, archiveOptions())
		if err != nil {
			return err
		}
		if err := source.Bundle(osfs.New(args[0]), ar); err != nil {
			_ = ar.Close() // ignore error
			return err
		}
		if _, ok := ar.Lookup(archive.AppEntryPath); !ok && packName != "" {
			if err := persist.SaveApp(ar, api.NewApp(packName)); err != nil {
				_ = ar.Close() // ignore error
				return err
			}
		}
		if err := ar.Close(); err != nil {
			return err
		}
		fmt.Printf("Packed %s into %s.\n", args[0], args[1])
		return nil
	},
}
