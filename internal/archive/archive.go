// Package archive implements the container layer for packaged canvas app
// files: canonical path addressing, a lazily built duplicate-detecting
// entry index, and a mode-gated facade over the underlying zip container.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Mode selects what an Archive may do with its container.
type Mode int

const (
	ModeRead   Mode = iota // existing container, read-only
	ModeCreate             // empty container, write-only
	ModeUpdate             // existing container, readable, new entries land on Close
)

// Options configure an Archive. The zero value is usable.
type Options struct {
	// Logger receives non-fatal diagnostics such as duplicate entry
	// names. nil discards.
	Logger *slog.Logger
}

func optLogger(opts *Options) *slog.Logger {
	if opts != nil && opts.Logger != nil {
		return opts.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Entry is an opaque handle to one named unit of content. Entries are
// owned by the Archive that produced them and become invalid once it is
// closed.
type Entry struct {
	name string    // canonical path, the index key
	raw  string    // name as stored in the container
	file *zip.File // backing file for preexisting entries, nil for created ones

	w     io.Writer     // destination for created entries
	buf   *bytes.Buffer // update mode buffers payloads until Close
	wrote bool
}

// Name returns the entry's canonical path.
func (e *Entry) Name() string { return e.name }

// RawName returns the name exactly as stored in the container.
func (e *Entry) RawName() string { return e.raw }

// Archive is a facade over one zip container. It is not safe for
// concurrent use; the index is built at most once, on first access.
type Archive struct {
	mode Mode
	log  *slog.Logger

	zr *zip.Reader
	zw *zip.Writer // create mode only

	once sync.Once
	idx  *entryIndex

	open    *Entry   // create mode: last created entry, still writable
	created []*Entry // creation order, replayed by the update rewrite

	file   *os.File // owned when opened via OpenFile
	path   string   // backing file path, update rewrite target
	closed bool
}

// NewReader opens a read-only archive over a caller-owned stream. The
// stream must stay valid until Close; it is never closed by the Archive.
func NewReader(r io.ReaderAt, size int64, opts *Options) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	return &Archive{mode: ModeRead, zr: zr, log: optLogger(opts)}, nil
}

// NewWriter starts an empty create-mode archive over a caller-owned
// stream. Close finalizes the container but leaves the stream open.
func NewWriter(w io.Writer, opts *Options) *Archive {
	return &Archive{mode: ModeCreate, zw: zip.NewWriter(w), log: optLogger(opts)}
}

// OpenFile opens the archive at path in the given mode. The file is owned
// by the Archive and released exactly once, on Close.
func OpenFile(path string, mode Mode, opts *Options) (*Archive, error) {
	switch mode {
	case ModeRead, ModeUpdate:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open archive %s: %w", path, err)
		}
		fi, err := f.Stat()
		if err != nil {
			_ = f.Close() // ignore error
			return nil, fmt.Errorf("stat archive %s: %w", path, err)
		}
		zr, err := zip.NewReader(f, fi.Size())
		if err != nil {
			_ = f.Close() // ignore error
			return nil, fmt.Errorf("open container %s: %w", path, err)
		}
		return &Archive{mode: mode, zr: zr, file: f, path: path, log: optLogger(opts)}, nil
	case ModeCreate:
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create archive %s: %w", path, err)
		}
		return &Archive{mode: ModeCreate, zw: zip.NewWriter(f), file: f, path: path, log: optLogger(opts)}, nil
	}
	return nil, &Error{Kind: KindState, Err: fmt.Errorf("unknown mode %d", mode)}
}

// index builds the entry index on first use. Container entries whose
// canonical paths collide keep the first occurrence; later ones are logged
// and skipped, never an error.
func (a *Archive) index() *entryIndex {
	a.once.Do(func() {
		ix := newEntryIndex()
		if a.zr != nil {
			for _, f := range a.zr.File {
				e := &Entry{name: Canonical(f.Name), raw: f.Name, file: f}
				if !ix.add(e) {
					kept, _ := ix.lookup(e.name)
					a.log.Warn("duplicate entry in archive", "path", e.name, "dropped", f.Name, "kept", kept.RawName())
				}
			}
		}
		a.idx = ix
	})
	return a.idx
}

// Entries returns every entry in index order: container order for
// preexisting entries, then creation order.
func (a *Archive) Entries() []*Entry {
	return a.index().entries()
}

// Lookup returns the entry stored at path, if any. Absence is a normal
// condition for probing callers, not an error.
func (a *Archive) Lookup(path string) (*Entry, bool) {
	return a.index().lookup(path)
}

// Require returns the entry stored at path or a KindNotFound error naming
// the canonical path.
func (a *Archive) Require(path string) (*Entry, error) {
	return a.index().require(path)
}

// ListUnder returns entries whose canonical path falls under dir,
// optionally filtered by extension ("" matches everything). Matching is
// prefix-based, so nested subdirectories are included. Order follows the
// index.
func (a *Archive) ListUnder(dir, ext string) []*Entry {
	prefix := Canonical(dir) + "/"
	suffix := strings.ToLower(ext)
	var out []*Entry
	for _, e := range a.index().entries() {
		if !strings.HasPrefix(e.name, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(e.name, suffix) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CreateEntry adds an entry at path, storing the name as given and
// indexing it canonically. The handle accepts exactly one WriteAll; in
// create mode the next CreateEntry finalizes it. Occupied canonical paths
// fail with KindConflict.
func (a *Archive) CreateEntry(path string) (*Entry, error) {
	key := Canonical(path)
	if a.closed {
		return nil, &Error{Kind: KindState, Path: key, Err: errClosed}
	}
	if a.mode == ModeRead {
		return nil, &Error{Kind: KindState, Path: key, Err: errReadOnly}
	}
	if _, taken := a.index().lookup(key); taken {
		return nil, &Error{Kind: KindConflict, Path: key}
	}

	e := &Entry{name: key, raw: path}
	switch a.mode {
	case ModeCreate:
		a.open = nil // previous entry is finalized by the container
		w, err := a.zw.Create(e.raw)
		if err != nil {
			return nil, fmt.Errorf("create entry %s: %w", key, err)
		}
		e.w = w
		a.open = e
	case ModeUpdate:
		e.buf = &bytes.Buffer{}
		e.w = e.buf
	}
	a.created = append(a.created, e)
	if err := a.index().insert(e); err != nil {
		return nil, err
	}
	return e, nil
}

var (
	errClosed      = errors.New("archive is closed")
	errReadOnly    = errors.New("archive opened read-only")
	errNotWritable = errors.New("entry is not writable")
	errWritten     = errors.New("entry already written")
	errFinalized   = errors.New("entry finalized by a later creation")
	errNoPayload   = errors.New("entry has no readable payload")
)

// WriteAll writes the entry's complete payload. Only entries created in
// this session are writable, each exactly once.
func (a *Archive) WriteAll(e *Entry, data []byte) error {
	if a.closed {
		return &Error{Kind: KindState, Path: e.name, Err: errClosed}
	}
	if e.w == nil {
		return &Error{Kind: KindState, Path: e.name, Err: errNotWritable}
	}
	if e.wrote {
		return &Error{Kind: KindState, Path: e.name, Err: errWritten}
	}
	if a.mode == ModeCreate && a.open != e {
		return &Error{Kind: KindState, Path: e.name, Err: errFinalized}
	}
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("write entry %s: %w", e.name, err)
	}
	e.wrote = true
	return nil
}

// ReadAll returns the full payload of a preexisting entry. Entries created
// in this session are write-only.
func (a *Archive) ReadAll(e *Entry) ([]byte, error) {
	if a.closed {
		return nil, &Error{Kind: KindState, Path: e.name, Err: errClosed}
	}
	if e.file == nil {
		return nil, &Error{Kind: KindState, Path: e.name, Err: errNoPayload}
	}
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", e.name, err)
	}
	defer func() { _ = rc.Close() }() // safe to ignore
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", e.name, err)
	}
	return data, nil
}

// Close releases the archive. Create mode finalizes the container; update
// mode rewrites the backing file when entries were added. Further calls
// are no-ops, and all handles are invalid afterwards.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var flushErr error
	switch a.mode {
	case ModeCreate:
		if err := a.zw.Close(); err != nil {
			flushErr = fmt.Errorf("finalize container: %w", err)
		}
	case ModeUpdate:
		flushErr = a.rewrite()
	}
	if a.file != nil {
		if err := a.file.Close(); err != nil && flushErr == nil {
			flushErr = fmt.Errorf("close archive %s: %w", a.path, err)
		}
	}
	return flushErr
}

// rewrite persists an update-mode session: original entries are copied
// raw (compressed bytes untouched) and created entries appended, all into
// a temp file beside the archive that then replaces it atomically.
func (a *Archive) rewrite() error {
	if len(a.created) == 0 {
		return nil
	}
	if a.path == "" {
		return &Error{Kind: KindState, Err: errors.New("update archive has no backing file")}
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), ".canvaspack-*")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }() // no-op once renamed

	if err := a.writeRewrite(tmp); err != nil {
		_ = tmp.Close() // ignore error
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp archive: %w", err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		return fmt.Errorf("replace archive %s: %w", a.path, err)
	}
	return nil
}

func (a *Archive) writeRewrite(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, f := range a.zr.File {
		hdr := f.FileHeader
		dst, err := zw.CreateRaw(&hdr)
		if err != nil {
			return fmt.Errorf("copy entry %s: %w", f.Name, err)
		}
		src, err := f.OpenRaw()
		if err != nil {
			return fmt.Errorf("copy entry %s: %w", f.Name, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			return fmt.Errorf("copy entry %s: %w", f.Name, err)
		}
	}
	for _, e := range a.created {
		dst, err := zw.Create(e.raw)
		if err != nil {
			return fmt.Errorf("append entry %s: %w", e.name, err)
		}
		if _, err := dst.Write(e.buf.Bytes()); err != nil {
			return fmt.Errorf("append entry %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize container: %w", err)
	}
	return nil
}
