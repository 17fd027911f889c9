package persist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/canvaspack/api"
	"github.com/agentic-research/canvaspack/internal/archive"
	"github.com/agentic-research/canvaspack/internal/codec"
)

func TestSaveAppNil(t *testing.T) {
	var buf bytes.Buffer
	ar := archive.NewWriter(&buf, nil)
	err := SaveApp(ar, nil)
	requireKind(t, err, archive.KindState)
	require.NoError(t, ar.Close())
}

func TestSaveAppWritesCanonicalLayout(t *testing.T) {
	app := &api.App{
		FormatVersion: "1.0",
		Properties:    map[string]any{"Name": "demo"},
		Screens: []*api.Screen{
			{
				Name:       "Home",
				Properties: map[string]any{"Fill": "=Color.White"},
				Children:   []*api.Control{{Name: "Header"}},
				// Attached editor metadata stays in memory.
				EditorState: &api.EditorState{Name: "Home"},
			},
			{Name: "Detail"},
		},
	}

	var buf bytes.Buffer
	ar := archive.NewWriter(&buf, nil)
	require.NoError(t, SaveApp(ar, app))
	require.NoError(t, ar.Close())

	rd, err := archive.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	require.NoError(t, err)

	entries := rd.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Src/Controls/1.fx.yaml", entries[0].RawName())
	assert.Equal(t, "Src/Controls/Home.fx.yaml", entries[1].RawName())
	assert.Equal(t, "Src/Controls/Detail.fx.yaml", entries[2].RawName())

	appDoc, err := rd.ReadAll(entries[0])
	require.NoError(t, err)
	assert.NotContains(t, string(appDoc), "Screens", "screens live in their own entries")
	assert.NotContains(t, string(appDoc), "Home")

	homeDoc, err := rd.ReadAll(entries[1])
	require.NoError(t, err)
	assert.Contains(t, string(homeDoc), "Name: Home")
	assert.Contains(t, string(homeDoc), "Controls:")
	assert.NotContains(t, string(homeDoc), "EditorState", "editor metadata is never persisted")

	reloaded, err := LoadApp(rd)
	require.NoError(t, err)
	require.Len(t, reloaded.Screens, 2)
	assert.Nil(t, reloaded.Screens[0].EditorState)
}

func TestSaveAppDuplicateScreenNameAborts(t *testing.T) {
	app := &api.App{
		FormatVersion: "1.0",
		Screens: []*api.Screen{
			{Name: "Twice", Properties: map[string]any{"Origin": "first"}},
			{Name: "Twice", Properties: map[string]any{"Origin": "second"}},
		},
	}

	var buf bytes.Buffer
	ar := archive.NewWriter(&buf, nil)
	err := SaveApp(ar, app)
	pe := requireKind(t, err, archive.KindConflict)
	assert.Equal(t, "src/controls/twice.fx.yaml", pe.Path)
	require.NoError(t, ar.Close())

	// Entries written before the conflict stay in the container.
	rd, err := archive.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil)
	require.NoError(t, err)
	entries := rd.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "src/controls/1.fx.yaml", entries[0].Name())
	assert.Equal(t, "src/controls/twice.fx.yaml", entries[1].Name())

	e, err := rd.Require("Src/Controls/Twice.fx.yaml")
	require.NoError(t, err)
	doc, err := archive.DecodeEntry[api.Screen](rd, e, codec.Structural)
	require.NoError(t, err)
	assert.Equal(t, "first", doc.Properties["Origin"])
}

func TestSaveAppRejectsOccupiedAppPath(t *testing.T) {
	app := api.NewApp("demo")

	var buf bytes.Buffer
	ar := archive.NewWriter(&buf, nil)
	require.NoError(t, SaveApp(ar, app))

	err := SaveApp(ar, app)
	pe := requireKind(t, err, archive.KindConflict)
	assert.Equal(t, "src/controls/1.fx.yaml", pe.Path)
	require.NoError(t, ar.Close())
}
