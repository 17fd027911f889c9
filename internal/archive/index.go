package archive

// entryIndex maps canonical paths to handles while preserving first-seen
// insertion order. The containing Archive builds it lazily, exactly once;
// afterwards it only grows through insert on the creation path.
type entryIndex struct {
	byPath map[string]*Entry
	order  []string
}

func newEntryIndex() *entryIndex {
	return &entryIndex{byPath: make(map[string]*Entry)}
}

// add records e under its canonical path. Reports false when the path is
// already taken; the first occurrence wins and the index is unchanged.
func (ix *entryIndex) add(e *Entry) bool {
	if _, taken := ix.byPath[e.name]; taken {
		return false
	}
	ix.byPath[e.name] = e
	ix.order = append(ix.order, e.name)
	return true
}

// insert is add with a KindConflict error instead of a bool, for callers
// that treat an occupied path as fatal.
func (ix *entryIndex) insert(e *Entry) error {
	if !ix.add(e) {
		return &Error{Kind: KindConflict, Path: e.name}
	}
	return nil
}

func (ix *entryIndex) lookup(path string) (*Entry, bool) {
	e, ok := ix.byPath[Canonical(path)]
	return e, ok
}

// require returns the entry at path or a KindNotFound error naming the
// canonical form of the missing path.
func (ix *entryIndex) require(path string) (*Entry, error) {
	key := Canonical(path)
	e, ok := ix.byPath[key]
	if !ok {
		return nil, &Error{Kind: KindNotFound, Path: key}
	}
	return e, nil
}

// entries returns handles in insertion order.
func (ix *entryIndex) entries() []*Entry {
	out := make([]*Entry, 0, len(ix.order))
	for _, key := range ix.order {
		out = append(out, ix.byPath[key])
	}
	return out
}
