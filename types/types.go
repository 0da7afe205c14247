package types

import "fmt"

// FieldID identifies one editable value in a save file.
type FieldID int

const (
	FIELD_YEAR FieldID = iota
	FIELD_MONTH
	FIELD_DAY
	FIELD_HOUR
	FIELD_MINUTE
	FIELD_SECOND

	FIELD_GAGS
	FIELD_COINS

	FIELD_LAST_LEVEL_PLAYED
	FIELD_LAST_MISSION
	FIELD_LAST_LEVEL_UNLOCKED

	FIELD_CARDS_L1
	FIELD_CARDS_L2
	FIELD_CARDS_L3
	FIELD_CARDS_L4
	FIELD_CARDS_L5
	FIELD_CARDS_L6
	FIELD_CARDS_L7

	FIELD_COUNT
)

// LEVELS is the number of game levels, and so the number of card masks.
const LEVELS = 7

// CARDS_PER_LEVEL is the number of collector cards (bits) per level mask.
const CARDS_PER_LEVEL = 7

// SaveFields is the decoded, editable state of a save file.
//
// Everything is an int.  Decoded values are exposed as they are stored, even outside
// the nominal range, and the encoder clamps explicitly instead of relying on narrowing.
type SaveFields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Gags  int
	Coins int

	// 1-based display values (the file stores value-1)
	Last_level_played   int
	Last_mission        int
	Last_level_unlocked int

	// One 7-bit mask per level, bit 0 is the first card in the scrap book
	Cards [LEVELS]int
}

// Value returns a pointer to the field with the given id, so that table-driven code can read and write it.
func (sf *SaveFields) Value(id FieldID) *int {
	switch id {
	case FIELD_YEAR:
		return &sf.Year
	case FIELD_MONTH:
		return &sf.Month
	case FIELD_DAY:
		return &sf.Day
	case FIELD_HOUR:
		return &sf.Hour
	case FIELD_MINUTE:
		return &sf.Minute
	case FIELD_SECOND:
		return &sf.Second
	case FIELD_GAGS:
		return &sf.Gags
	case FIELD_COINS:
		return &sf.Coins
	case FIELD_LAST_LEVEL_PLAYED:
		return &sf.Last_level_played
	case FIELD_LAST_MISSION:
		return &sf.Last_mission
	case FIELD_LAST_LEVEL_UNLOCKED:
		return &sf.Last_level_unlocked
	}
	if id >= FIELD_CARDS_L1 && id <= FIELD_CARDS_L7 {
		return &sf.Cards[id-FIELD_CARDS_L1]
	}

	// Only reachable through a bad id, which is a bug in the caller
	panic(fmt.Sprintf("what field? (%v)", int(id)))
}

// Level_hint_violated reports the one documented cross-field constraint: the game does not expect
// the last level played to be beyond the last level unlocked.  Nothing enforces this.
func (sf *SaveFields) Level_hint_violated() bool {
	return sf.Last_level_played > sf.Last_level_unlocked
}
