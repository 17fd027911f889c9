package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/canvaspack/api"
)

func TestMergeLeafControl(t *testing.T) {
	leaf := &api.Control{Name: "Home"}
	st := &api.EditorState{
		Name:       "Home",
		Properties: map[string]any{"IsLocked": true},
		Children:   []*api.EditorState{{Name: "Ignored"}},
	}

	MergeEditorState(leaf, st)

	require.NotNil(t, leaf.EditorState)
	assert.Equal(t, "Home", leaf.EditorState.Name)
	assert.Equal(t, map[string]any{"IsLocked": true}, leaf.EditorState.Properties)
	assert.Empty(t, leaf.EditorState.Children, "attached state carries no children")
}

func TestMergeNestedWithOrphans(t *testing.T) {
	root := &api.Control{
		Name: "Screen",
		Children: []*api.Control{
			{Name: "A"},
			{Name: "B"},
		},
	}
	st := &api.EditorState{
		Name: "Screen",
		Children: []*api.EditorState{
			{Name: "A", Properties: map[string]any{"Index": 1}},
			{Name: "C", Properties: map[string]any{"Index": 9}},
		},
	}

	MergeEditorState(root, st)

	require.NotNil(t, root.EditorState)
	a := root.Children[0]
	require.NotNil(t, a.EditorState, "A matches and receives state")
	assert.Equal(t, map[string]any{"Index": 1}, a.EditorState.Properties)

	b := root.Children[1]
	assert.Nil(t, b.EditorState, "B has no editor counterpart")
	// C is an orphan: silently dropped, nothing else changes.
}

func TestMergeMatchIsCaseSensitive(t *testing.T) {
	root := &api.Control{
		Name:     "Screen",
		Children: []*api.Control{{Name: "header"}},
	}
	st := &api.EditorState{
		Name:     "Screen",
		Children: []*api.EditorState{{Name: "Header"}},
	}

	MergeEditorState(root, st)

	assert.Nil(t, root.Children[0].EditorState, "name match has no case folding")
}

func TestMergeFirstSiblingWins(t *testing.T) {
	root := &api.Control{
		Name:     "Screen",
		Children: []*api.Control{{Name: "A"}},
	}
	st := &api.EditorState{
		Name: "Screen",
		Children: []*api.EditorState{
			{Name: "A", Properties: map[string]any{"Index": 1}},
			{Name: "A", Properties: map[string]any{"Index": 2}},
		},
	}

	MergeEditorState(root, st)

	require.NotNil(t, root.Children[0].EditorState)
	assert.Equal(t, map[string]any{"Index": 1}, root.Children[0].EditorState.Properties)
}

func TestMergeConsumesStateTree(t *testing.T) {
	root := &api.Control{
		Name:     "Screen",
		Children: []*api.Control{{Name: "A", Children: []*api.Control{{Name: "A1"}}}},
	}
	inner := &api.EditorState{Name: "A", Children: []*api.EditorState{{Name: "A1"}}}
	st := &api.EditorState{Name: "Screen", Children: []*api.EditorState{inner}}

	MergeEditorState(root, st)

	assert.Nil(t, st.Children, "top state is consumed")
	assert.Nil(t, inner.Children, "matched descendants are consumed too")
	require.NotNil(t, root.Children[0].Children[0].EditorState)
	assert.Equal(t, "A1", root.Children[0].Children[0].EditorState.Name)
}

func TestMergeNilArguments(t *testing.T) {
	c := &api.Control{Name: "X"}
	MergeEditorState(c, nil)
	assert.Nil(t, c.EditorState)
	MergeEditorState(nil, &api.EditorState{Name: "X"})
}
