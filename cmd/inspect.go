package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/persist"
)

var (
	listEntries bool
	queryExpr   string
	queryState  string
)

func init() {
	inspectCmd.Flags().BoolVar(&listEntries, "entries", false, "List canonical entry paths instead of the app summary")
	inspectCmd.Flags().StringVar(&queryExpr, "query", "", "JSONPath expression to run against an editor-state document")
	inspectCmd.Flags().StringVar(&queryState, "state", "", "Top-level control name selecting the editor-state document for --query")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [archive]",
	Short: "Summarize the app inside a packaged archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ar, err := archive.OpenFile(args[0], archive.ModeRead, archiveOptions())
		if err != nil {
			return err
		}
		defer func() { _ = ar.Close() }()

		if listEntries {
			for _, e := range ar.Entries() {
				fmt.Println(e.Name())
			}
			return nil
		}
		if queryExpr != "" {
			return runQuery(ar, queryState, queryExpr)
		}

		app, err := persist.LoadApp(ar)
		if err != nil {
			return err
		}
		if app == nil {
			fmt.Println("archive contains no app")
			return nil
		}
		fmt.Printf("format version: %s\n", app.FormatVersion)
		fmt.Printf("screens: %d\n", len(app.Screens))
		for _, s := range app.Screens {
			marker := " "
			if s.EditorState != nil {
				marker = "*"
			}
			fmt.Printf("%s %s (%d controls)\n", marker, s.Name, s.Count())
		}
		return nil
	},
}

// runQuery evaluates a JSONPath expression against one editor-state
// document and prints every match as JSON.
func runQuery(ar *archive.Archive, state, expr string) error {
	if state == "" {
		return fmt.Errorf("--query requires --state <top control name>")
	}
	e, err := ar.Require(archive.EditorStateEntryPath(state))
	if err != nil {
		return err
	}
	data, err := ar.ReadAll(e)
	if err != nil {
		return err
	}
	root, err := oj.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", e.Name(), err)
	}
	x, err := jp.ParseString(expr)
	if err != nil {
		return fmt.Errorf("invalid jsonpath %q: %w", expr, err)
	}
	for _, match := range x.Get(root) {
		fmt.Println(oj.JSON(match, 2))
	}
	return nil
}
