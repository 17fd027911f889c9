package persist

import (
	"errors"

	"github.com/agentic-research/canvaspack/api"
	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/codec"
)

var errNoApp = errors.New("no app to save")

// SaveApp flattens app into canonical entries: the app document at its
// fixed path, then one structural entry per screen in order. A failed
// write aborts the rest; entries already written stay in the container.
// Editor state is never persisted.
func SaveApp(ar *archive.Archive, app *api.App) error {
	if app == nil {
		return &archive.Error{Kind: archive.KindState, Err: errNoApp}
	}
	if err := archive.EncodeEntry(ar, archive.AppEntryPath, codec.Structural, app); err != nil {
		return err
	}
	for _, screen := range app.Screens {
		path := archive.ScreenEntryPath(screen.Name)
		if err := archive.EncodeEntry(ar, path, codec.Structural, screen); err != nil {
			return err
		}
	}
	return nil
}
