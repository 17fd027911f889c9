// mkfixture writes a demo archive for exercising the canvaspack CLI:
// an app document, a handful of screens, and optional editor-state
// sidecars laid out the way foreign producers write them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/agentic-research/canvaspack/api"
	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/codec"
	"github.com/agentic-research/canvaspack/internal/persist"
)

func main() {
	out := flag.String("out", "demo.msapp", "Output archive path")
	name := flag.String("name", "demo", "App name")
	screens := flag.Int("screens", 3, "Number of screens to generate")
	withState := flag.Bool("state", true, "Include editor-state sidecars")
	flag.Parse()

	if err := run(*out, *name, *screens, *withState); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}

func run(out, name string, screens int, withState bool) error {
	app := api.NewApp(name)
	for i := 1; i <= screens; i++ {
		app.AddScreen(&api.Screen{
			Name:       fmt.Sprintf("Screen%d", i),
			Properties: map[string]any{"Fill": "=Color.White"},
			Children: []*api.Control{
				{Name: "Header", Properties: map[string]any{"Text": fmt.Sprintf("='Screen %d'", i)}},
				{Name: "Body"},
			},
		})
	}

	ar, err := archive.OpenFile(out, archive.ModeCreate, nil)
	if err != nil {
		return err
	}
	if err := persist.SaveApp(ar, app); err != nil {
		_ = ar.Close() // ignore error
		return err
	}
	if withState {
		// The persistence layer never writes these; a fixture producer does.
		for _, s := range app.Screens {
			doc := api.EditorStateDoc{TopParent: &api.EditorState{
				Name:       s.Name,
				Properties: map[string]any{"IsLocked": false},
				Children:   []*api.EditorState{{Name: "Header", Properties: map[string]any{"Index": 1}}},
			}}
			path := archive.EditorStateEntryPath(s.Name)
			if err := archive.EncodeEntry(ar, path, codec.EditorState, doc); err != nil {
				_ = ar.Close() // ignore error
				return err
			}
		}
	}
	return ar.Close()
}
