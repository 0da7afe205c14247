package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	sf := SaveFields{}
	for id := FieldID(0); id < FIELD_COUNT; id++ {
		*sf.Value(id) = int(id) + 100
	}
	assert.Equal(t, 100, sf.Year)
	assert.Equal(t, 106, sf.Gags)
	assert.Equal(t, 107, sf.Coins)
	assert.Equal(t, 110, sf.Last_level_unlocked)
	assert.Equal(t, [LEVELS]int{111, 112, 113, 114, 115, 116, 117}, sf.Cards)

	assert.Panics(t, func() { sf.Value(FIELD_COUNT) })
}

func TestLevelHint(t *testing.T) {
	sf := SaveFields{Last_level_played: 3, Last_level_unlocked: 3}
	assert.False(t, sf.Level_hint_violated())
	sf.Last_level_played = 4
	assert.True(t, sf.Level_hint_violated())
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("import failed: %w", &FormatError{Kind: KIND_TRUNCATED, Len: 12})
	require.ErrorIs(t, err, ErrTruncated)
	assert.False(t, errors.Is(err, ErrBadMagic))
	assert.False(t, errors.Is(err, ErrNoBufferLoaded))
	assert.Equal(t, "import failed: FormatError: truncated file (12 bytes)", err.Error())

	assert.Equal(t, "FormatError: oversized file", ErrOversized.Error())
	assert.Equal(t, "FormatError: not a recognized save file", ErrBadMagic.Error())
	assert.Equal(t, "StateError: no loaded file", ErrNoBufferLoaded.Error())

	var se *StateError
	require.True(t, errors.As(fmt.Errorf("save: %w", ErrNoBufferLoaded), &se))
	assert.Equal(t, KIND_NO_BUFFER_LOADED, se.Kind)
}
