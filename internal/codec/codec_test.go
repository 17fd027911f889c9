package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/canvaspack/api"
)

const screenYAML = `Name: HomeScreen
Properties:
  Fill: =Color.White
Controls:
  - Name: Header
    Properties:
      Text: ='Welcome'
  - Name: Body
    Controls:
      - Name: Label1
`

func TestStructuralDecodesControlTree(t *testing.T) {
	var screen api.Screen
	require.NoError(t, Structural.Unmarshal([]byte(screenYAML), &screen))

	assert.Equal(t, "HomeScreen", screen.Name)
	assert.Equal(t, "=Color.White", screen.Properties["Fill"])
	require.Len(t, screen.Children, 2)
	assert.Equal(t, "Header", screen.Children[0].Name)
	assert.Equal(t, "='Welcome'", screen.Children[0].Properties["Text"])
	require.Len(t, screen.Children[1].Children, 1)
	assert.Equal(t, "Label1", screen.Children[1].Children[0].Name)
}

func TestStructuralRoundTrip(t *testing.T) {
	screen := &api.Screen{
		Name:       "Detail",
		Properties: map[string]any{"Fill": "=Color.Black"},
		Children: []*api.Control{
			{Name: "Back", Properties: map[string]any{"OnSelect": "=Back()"}},
		},
	}
	data, err := Structural.Marshal(screen)
	require.NoError(t, err)

	var got api.Screen
	require.NoError(t, Structural.Unmarshal(data, &got))
	assert.Equal(t, screen.Name, got.Name)
	assert.Equal(t, screen.Properties, got.Properties)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Back", got.Children[0].Name)
}

// Children serialize under the Controls key; the in-memory names never
// reach the wire.
func TestStructuralWireKeys(t *testing.T) {
	screen := &api.Screen{
		Name:        "Home",
		Children:    []*api.Control{{Name: "Header"}},
		EditorState: &api.EditorState{Name: "Home"},
	}
	data, err := Structural.Marshal(screen)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Controls:")
	assert.NotContains(t, text, "Children")
	assert.NotContains(t, text, "EditorState")
}

func TestStructuralExcludesScreensFromAppDocument(t *testing.T) {
	app := &api.App{
		FormatVersion: "1.0",
		Properties:    map[string]any{"Name": "demo"},
		Screens:       []*api.Screen{{Name: "Home"}},
	}
	data, err := Structural.Marshal(app)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "FormatVersion: ")
	assert.NotContains(t, text, "Screens")
	assert.NotContains(t, text, "Home")
}

const editorStateJSON = `{
  "TopParent": {
    "Name": "HomeScreen",
    "Properties": {"IsLocked": false},
    "Controls": [
      {"Name": "Header", "Properties": {"Index": 1}},
      {"Name": "Ghost"}
    ]
  }
}`

func TestEditorStateDecodesWrapper(t *testing.T) {
	var doc api.EditorStateDoc
	require.NoError(t, EditorState.Unmarshal([]byte(editorStateJSON), &doc))

	require.NotNil(t, doc.TopParent)
	assert.Equal(t, "HomeScreen", doc.TopParent.Name)
	assert.Equal(t, false, doc.TopParent.Properties["IsLocked"])
	require.Len(t, doc.TopParent.Children, 2)
	assert.Equal(t, "Header", doc.TopParent.Children[0].Name)
	assert.Equal(t, "Ghost", doc.TopParent.Children[1].Name)
}

func TestEditorStateMissingTopParent(t *testing.T) {
	var doc api.EditorStateDoc
	require.NoError(t, EditorState.Unmarshal([]byte(`{"Other": 1}`), &doc))
	assert.Nil(t, doc.TopParent, "absence decodes to nil, the caller decides severity")
}
