package archive

import "strings"

// Fixed layout of a packaged canvas app archive. Entry names below are an
// interop contract with archives produced by other tooling; they must not
// drift.
const (
	SrcDirectory      = "Src"
	ControlsDirectory = "Controls"
	AppFileName       = "1.fx.yaml"

	YamlFxExtension = ".fx.yaml"
	JSONExtension   = ".json"

	// SrcControlsDir holds the structural documents: the app entry plus
	// one entry per screen.
	SrcControlsDir = SrcDirectory + "/" + ControlsDirectory

	// AppEntryPath is the single well-known location of the app document.
	AppEntryPath = SrcControlsDir + "/" + AppFileName
)

// Canonical maps a raw entry path to the key it is indexed under:
// surrounding whitespace trimmed, backslashes folded to forward slashes,
// leading and trailing separators stripped, everything lower-cased. Total
// over any input and idempotent; two raw paths with the same canonical
// form address the same entry.
func Canonical(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.Trim(p, "/")
	return strings.ToLower(p)
}

// ScreenEntryPath returns the layout path of a screen's structural entry.
func ScreenEntryPath(name string) string {
	return SrcControlsDir + "/" + name + YamlFxExtension
}

// EditorStateEntryPath returns the layout path of the editor-state
// document for the named top-level control.
func EditorStateEntryPath(name string) string {
	return ControlsDirectory + "/" + name + JSONExtension
}
