package codec

import (
	"slices"

	"go.uber.org/zap"

	"malkedit/types"
)

// Session holds one loaded save file for an edit session.
//
// It is either empty (nothing loaded) or loaded (a raw buffer from a successful Decode, plus the
// fields decoded or last encoded).  The raw buffer must be kept for the whole session because
// Encode patches fields into it; the format is full of bytes we don't understand and must not invent.
//
// A Session is not safe for concurrent use.
type Session struct {
	raw    []byte
	fields types.SaveFields
}

func New_session() *Session {
	return &Session{}
}

func (s *Session) Loaded() bool {
	return s.raw != nil
}

// Decode loads raw into the session.
// On failure the session is left exactly as it was, including any previously loaded file.
func (s *Session) Decode(raw []byte) (types.SaveFields, error) {
	fields, err := Decode(raw)
	if err != nil {
		return types.SaveFields{}, err
	}

	// Keep our own copy; the caller is free to reuse theirs
	s.raw = slices.Clone(raw)
	s.fields = fields
	Logger().Debug("save loaded", zap.Int("len", len(raw)))

	return fields, nil
}

// Encode writes fields into the retained buffer and returns a copy of the result, ready to be persisted.
// The session's current fields become the clamped values that were written.
func (s *Session) Encode(fields types.SaveFields) ([]byte, error) {
	if !s.Loaded() {
		return nil, &types.StateError{Kind: types.KIND_NO_BUFFER_LOADED}
	}

	// Encode into a scratch copy so that a failure can't leave s.raw half written
	scratch := slices.Clone(s.raw)
	clamped, err := Encode(fields, scratch)
	if err != nil {
		return nil, err
	}
	s.raw = scratch
	s.fields = clamped

	return slices.Clone(s.raw), nil
}

// Current_fields returns the session's fields, and false if nothing is loaded.
func (s *Session) Current_fields() (types.SaveFields, bool) {
	if !s.Loaded() {
		return types.SaveFields{}, false
	}
	return s.fields, true
}

// Raw returns a copy of the retained buffer, or nil if nothing is loaded.
func (s *Session) Raw() []byte {
	if !s.Loaded() {
		return nil
	}
	return slices.Clone(s.raw)
}
