package archive

import (
	"bytes"
	"errors"

	"github.com/agentic-research/canvaspack/internal/codec"
)

var errEmptyDocument = errors.New("empty document")

// DecodeEntry reads one entry and decodes it through c. Codec rejections
// and empty documents surface as KindDecode errors naming the entry; a
// successful decode never returns nil.
func DecodeEntry[T any](a *Archive, e *Entry, c codec.Codec) (*T, error) {
	data, err := a.ReadAll(e)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &Error{Kind: KindDecode, Path: e.name, Err: errEmptyDocument}
	}
	out := new(T)
	if err := c.Unmarshal(data, out); err != nil {
		return nil, &Error{Kind: KindDecode, Path: e.name, Err: err}
	}
	return out, nil
}

// EncodeEntry creates an entry at path and writes v through c, encoded.
// The conflict check runs before any encoding; codec rejections surface
// as KindDecode errors naming the canonical path.
func EncodeEntry(a *Archive, path string, c codec.Codec, v any) error {
	e, err := a.CreateEntry(path)
	if err != nil {
		return err
	}
	data, err := c.Marshal(v)
	if err != nil {
		return &Error{Kind: KindDecode, Path: e.name, Err: err}
	}
	return a.WriteAll(e, data)
}
