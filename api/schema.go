package api

// App represents the root document of a packaged canvas application.
// Screens are serialized as separate archive entries, never inline.
type App struct {
	// FormatVersion of the document schema. Carried through as-is.
	FormatVersion string `yaml:"FormatVersion,omitempty" json:"FormatVersion,omitempty"`
	// Properties holds app-level formula and metadata bindings, opaque
	// to the persistence layer.
	Properties map[string]any `yaml:"Properties,omitempty" json:"Properties,omitempty"`
	// Header carries document identity and versioning metadata.
	Header map[string]any `yaml:"Header,omitempty" json:"Header,omitempty"`
	// PublishInfo carries publish-time settings.
	PublishInfo map[string]any `yaml:"PublishInfo,omitempty" json:"PublishInfo,omitempty"`
	// Screens in discovery order. Excluded from the app document itself.
	Screens []*Screen `yaml:"-" json:"-"`
}

// Screen is a Control that roots its own archive entry.
type Screen = Control

// Control represents one node of the UI tree.
type Control struct {
	// Name of the control, unique among its siblings.
	Name string `yaml:"Name" json:"Name"`
	// Properties maps property names to formula expressions.
	Properties map[string]any `yaml:"Properties,omitempty" json:"Properties,omitempty"`
	// Children controls, in z-order.
	Children []*Control `yaml:"Controls,omitempty" json:"Controls,omitempty"`

	// EditorState attached by name-matching during load. In-memory only.
	EditorState *EditorState `yaml:"-" json:"-"`
}

// EditorState carries editor-only metadata for one control. It mirrors
// the control tree by Name rather than by reference.
type EditorState struct {
	// Name of the control this state belongs to.
	Name string `json:"Name" yaml:"Name"`
	// Properties holds editor metadata such as selection and grouping.
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	// Children states, matched against the control's children.
	Children []*EditorState `json:"Controls,omitempty" yaml:"Controls,omitempty"`
}

// EditorStateDoc is the wrapper object stored in Controls/*.json entries.
// A document that decodes without a TopParent is malformed.
type EditorStateDoc struct {
	TopParent *EditorState `json:"TopParent" yaml:"TopParent"`
}
