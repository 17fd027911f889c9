// Package source moves content between an archive and a plain directory
// tree. Both directions are byte-level: entry payloads are copied
// verbatim, never re-encoded.
package source

import (
	"fmt"
	"io"
	"path"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/canvaspack/internal/archive"
)

// Extract writes every archive entry to fs under its canonical path.
func Extract(ar *archive.Archive, fs billy.Filesystem) error {
	for _, e := range ar.Entries() {
		data, err := ar.ReadAll(e)
		if err != nil {
			return err
		}
		if err := writeFile(fs, e.Name(), data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(fs billy.Filesystem, name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := fs.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close() // ignore error
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// Bundle creates one archive entry per regular file under fs, named by
// its slash-separated path relative to the fs root. Directory traversal
// is depth-first in ReadDir order.
func Bundle(fs billy.Filesystem, ar *archive.Archive) error {
	return bundleDir(fs, ar, ".")
}

func bundleDir(fs billy.Filesystem, ar *archive.Archive, dir string) error {
	infos, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, fi := range infos {
		name := path.Join(dir, fi.Name())
		if fi.IsDir() {
			if err := bundleDir(fs, ar, name); err != nil {
				return err
			}
			continue
		}
		if err := bundleFile(fs, ar, name); err != nil {
			return err
		}
	}
	return nil
}

func bundleFile(fs billy.Filesystem, ar *archive.Archive, name string) error {
	f, err := fs.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }() // safe to ignore
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	e, err := ar.CreateEntry(name)
	if err != nil {
		return err
	}
	return ar.WriteAll(e, data)
}
