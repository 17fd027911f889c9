// Package persist assembles App documents from archive entries and
// flattens them back: the phased load, the editor-state overlay, and the
// canonical save.
package persist

import (
	"errors"

	"github.com/agentic-research/canvaspack/api"
	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/codec"
)

var errNoTopParent = errors.New("editor state document has no TopParent")

// LoadApp assembles the application tree from ar. An archive without an
// app entry yields (nil, nil): empty and freshly created archives are a
// valid state, not a failure. Any decode failure is fatal and names the
// offending entry.
func LoadApp(ar *archive.Archive) (*api.App, error) {
	appEntry, ok := ar.Lookup(archive.AppEntryPath)
	if !ok {
		return nil, nil
	}
	app, err := archive.DecodeEntry[api.App](ar, appEntry, codec.Structural)
	if err != nil {
		return nil, err
	}

	screens, err := loadScreens(ar)
	if err != nil {
		return nil, err
	}
	states, err := loadEditorStates(ar)
	if err != nil {
		return nil, err
	}

	for _, name := range screens.order {
		screen := screens.byName[name]
		if st, ok := states[name]; ok {
			MergeEditorState(screen, st)
			delete(states, name)
		}
		app.Screens = append(app.Screens, screen)
	}
	// Editor-state roots left in states have no matching screen and are
	// dropped.
	return app, nil
}

// screenSet keys screens by their decoded Name while preserving first-seen
// order. A duplicate name replaces the screen but keeps the original
// position, so the last decoded document wins.
type screenSet struct {
	byName map[string]*api.Screen
	order  []string
}

func (s *screenSet) put(sc *api.Screen) {
	if _, seen := s.byName[sc.Name]; !seen {
		s.order = append(s.order, sc.Name)
	}
	s.byName[sc.Name] = sc
}

func loadScreens(ar *archive.Archive) (*screenSet, error) {
	set := &screenSet{byName: make(map[string]*api.Screen)}
	for _, e := range ar.ListUnder(archive.SrcControlsDir, archive.YamlFxExtension) {
		if e.Name() == archive.Canonical(archive.AppEntryPath) {
			continue // the app document is not a screen
		}
		screen, err := archive.DecodeEntry[api.Screen](ar, e, codec.Structural)
		if err != nil {
			return nil, err
		}
		set.put(screen)
	}
	return set, nil
}

// loadEditorStates decodes every Controls/*.json document and keys each
// root by its TopParent name.
func loadEditorStates(ar *archive.Archive) (map[string]*api.EditorState, error) {
	states := make(map[string]*api.EditorState)
	for _, e := range ar.ListUnder(archive.ControlsDirectory, archive.JSONExtension) {
		doc, err := archive.DecodeEntry[api.EditorStateDoc](ar, e, codec.EditorState)
		if err != nil {
			return nil, err
		}
		if doc.TopParent == nil {
			return nil, &archive.Error{Kind: archive.KindDecode, Path: e.Name(), Err: errNoTopParent}
		}
		states[doc.TopParent.Name] = doc.TopParent
	}
	return states, nil
}
