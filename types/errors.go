package types

import "fmt"

// ErrKind classifies codec errors so callers can branch on intent rather than text.
type ErrKind int

const (
	KIND_OVERSIZED ErrKind = iota
	KIND_BAD_MAGIC
	KIND_TRUNCATED
	KIND_NO_BUFFER_LOADED
)

func (k ErrKind) String() string {
	switch k {
	case KIND_OVERSIZED:
		return "oversized file"
	case KIND_BAD_MAGIC:
		return "not a recognized save file"
	case KIND_TRUNCATED:
		return "truncated file"
	case KIND_NO_BUFFER_LOADED:
		return "no loaded file"
	}
	return fmt.Sprintf("unknown error kind (%d)", int(k))
}

// FormatError means a buffer is not something the codec can work on.
// Len is the length of the offending buffer, or -1 where it is not known.
type FormatError struct {
	Kind ErrKind
	Len  int
}

func (e *FormatError) Error() string {
	if e.Len < 0 {
		return "FormatError: " + e.Kind.String()
	}
	return fmt.Sprintf("FormatError: %v (%v bytes)", e.Kind, e.Len)
}

// Is matches any FormatError of the same kind, so the sentinels below work with errors.Is
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// StateError means the codec was asked to do something its current state does not allow.
type StateError struct {
	Kind ErrKind
}

func (e *StateError) Error() string {
	return "StateError: " + e.Kind.String()
}

func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	return ok && t.Kind == e.Kind
}

// Sentinels, for errors.Is
var (
	ErrOversized      = &FormatError{Kind: KIND_OVERSIZED, Len: -1}
	ErrBadMagic       = &FormatError{Kind: KIND_BAD_MAGIC, Len: -1}
	ErrTruncated      = &FormatError{Kind: KIND_TRUNCATED, Len: -1}
	ErrNoBufferLoaded = &StateError{Kind: KIND_NO_BUFFER_LOADED}
)
