package persist

import "github.com/agentic-research/canvaspack/api"

// MergeEditorState overlays an editor-state tree onto a control tree by
// structural name matching, depth-first. Each visited control receives at
// most one state node, attached without its children. Matching is exact
// and case-sensitive, first sibling wins; editor nodes with no structural
// counterpart are dropped. st is consumed: its child list is cleared as
// the tree is folded in.
func MergeEditorState(c *api.Control, st *api.EditorState) {
	if c == nil || st == nil {
		return
	}
	c.EditorState = &api.EditorState{
		Name:       st.Name,
		Properties: st.Properties,
	}
	for _, child := range c.Children {
		if match := findState(st, child.Name); match != nil {
			MergeEditorState(child, match)
		}
	}
	st.Children = nil
}

// findState returns the first child of st named name, or nil.
func findState(st *api.EditorState, name string) *api.EditorState {
	for _, child := range st.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}
