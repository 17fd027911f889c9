// Package api defines the document schema of a packaged canvas
// application: the App root, the recursive Control tree, and the
// editor-state sidecar attached to it during load.
package api

import "github.com/google/uuid"

// DefaultFormatVersion is stamped on newly created apps.
const DefaultFormatVersion = "1.0"

// NewApp returns an empty app named name, carrying the default format
// version and a fresh instance id.
func NewApp(name string) *App {
	return &App{
		FormatVersion: DefaultFormatVersion,
		Properties: map[string]any{
			"Name": name,
		},
		Header: map[string]any{
			"InstanceID": uuid.NewString(),
		},
	}
}

// Screen returns the screen with the given name, or nil.
func (a *App) Screen(name string) *Screen {
	for _, s := range a.Screens {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// AddScreen appends s, replacing any screen with the same name in place.
func (a *App) AddScreen(s *Screen) {
	for i, have := range a.Screens {
		if have.Name == s.Name {
			a.Screens[i] = s
			return
		}
	}
	a.Screens = append(a.Screens, s)
}

// Count returns the number of controls in the subtree rooted at c,
// including c itself.
func (c *Control) Count() int {
	n := 1
	for _, child := range c.Children {
		n += child.Count()
	}
	return n
}

// Child returns the direct child with the given name, or nil. Matching is
// exact; sibling names are unique by construction.
func (c *Control) Child(name string) *Control {
	for _, child := range c.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}
