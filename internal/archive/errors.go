package archive

import "errors"

// ErrKind classifies persistence errors so callers can branch on intent
// rather than text.
type ErrKind int

const (
	KindNotFound ErrKind = iota // a required entry is absent
	KindConflict                // entry creation hit an occupied canonical path
	KindDecode                  // a codec rejected an entry payload
	KindState                   // invalid operation for the archive's mode or lifecycle
)

func (k ErrKind) String() string {
	switch k {
	case KindNotFound:
		return "entry not found"
	case KindConflict:
		return "entry already exists"
	case KindDecode:
		return "codec failure"
	case KindState:
		return "invalid archive state"
	}
	return "unknown error"
}

// Error is the one error type raised by the persistence layer. Path holds
// the canonical path of the offending entry, or "" when the failure is not
// tied to a single entry.
type Error struct {
	Kind ErrKind
	Path string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.String()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a KindNotFound persistence error.
func IsNotFound(err error) bool {
	return errKindIs(err, KindNotFound)
}

// IsConflict reports whether err is a KindConflict persistence error.
func IsConflict(err error) bool {
	return errKindIs(err, KindConflict)
}

func errKindIs(err error, kind ErrKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
