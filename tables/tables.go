package tables

// The layout table.  This is the only place where save file offsets live;
// decoding, encoding, validation and the command line all work from it.

import "malkedit/types"

// MAGIC is the first byte of every save file.
const MAGIC = 0xBA

// MAX_FILE_SIZE is the largest save file we will touch.
const MAX_FILE_SIZE = 8192

type Byte_order int

const (
	BIG Byte_order = iota
	LITTLE
)

// NO_MIRROR marks a field without a display copy.
const NO_MIRROR = -1

type Field struct {
	Id   types.FieldID
	Name string

	Offset int
	Width  int // in bytes
	Order  Byte_order

	// Shift is added to the stored value to get the display value (1 for the 1-based level/mission fields).
	Shift int
	// Mirror is a second location holding the display value itself.  It is written but never read.
	Mirror int

	// Inclusive, in display terms
	Min int
	Max int

	Desc string
}

// Offsets returns every byte position the field touches.
func (f *Field) Offsets() []int {
	out := []int{}
	for i := range f.Width {
		out = append(out, f.Offset+i)
	}
	if f.Mirror != NO_MIRROR {
		out = append(out, f.Mirror)
	}
	return out
}

// Clamp forces v into the field's inclusive range.
func (f *Field) Clamp(v int) int {
	return max(f.Min, min(f.Max, v))
}

func card_field(level int) Field {
	return Field{
		Id:     types.FIELD_CARDS_L1 + types.FieldID(level),
		Name:   "cards_l" + string(rune('1'+level)),
		Offset: 7187 + level,
		Width:  1,
		Mirror: NO_MIRROR,
		Min:    0,
		Max:    127,
		Desc:   "Collector cards unlocked on level " + string(rune('1'+level)) + ", one bit per card (bit 0 is the first card in the scrap book).",
	}
}

var Fields = func() []Field {
	out := []Field{
		{types.FIELD_YEAR, "year", 1, 2, BIG, 0, NO_MIRROR, 0, 65535, "Year of save creation."},
		{types.FIELD_MONTH, "month", 4, 1, BIG, 0, NO_MIRROR, 0, 255, "Month of save creation."},
		{types.FIELD_DAY, "day", 5, 1, BIG, 0, NO_MIRROR, 0, 255, "Day of save creation."},
		{types.FIELD_HOUR, "hour", 6, 1, BIG, 0, NO_MIRROR, 0, 255, "Hour of save creation."},
		{types.FIELD_MINUTE, "minute", 7, 1, BIG, 0, NO_MIRROR, 0, 255, "Minute of save creation."},
		{types.FIELD_SECOND, "second", 8, 1, BIG, 0, NO_MIRROR, 0, 255, "Second of save creation."},

		{types.FIELD_GAGS, "gags", 601, 1, BIG, 0, NO_MIRROR, 0, 84, "The total number of gags discovered across all levels."},
		{types.FIELD_COINS, "coins", 4393, 3, LITTLE, 0, NO_MIRROR, 0, 9999999, "The number of coins currently held by the player."},

		{types.FIELD_LAST_LEVEL_PLAYED, "last_level_played", 4373, 1, BIG, 1, 10, 1, 7, "The last level loaded by the player. Should not exceed the last level unlocked."},
		// 1-7 really, except on level 1 where the first mission is the tutorial
		{types.FIELD_LAST_MISSION, "last_mission", 4377, 1, BIG, 1, 11, 1, 8, "The last mission selected on the last level played."},
		{types.FIELD_LAST_LEVEL_UNLOCKED, "last_level_unlocked", 4381, 1, BIG, 1, NO_MIRROR, 1, 7, "The last level unlocked by the player."},
	}
	for l := range types.LEVELS {
		out = append(out, card_field(l))
	}
	return out
}()

// Max_offset is the highest byte position named by the table.  Anything shorter than Max_offset+1 is truncated.
var Max_offset = func() int {
	m := 0
	for i := range Fields {
		for _, o := range Fields[i].Offsets() {
			m = max(m, o)
		}
	}
	return m
}()

func By_id(id types.FieldID) *Field {
	for i := range Fields {
		if Fields[i].Id == id {
			return &Fields[i]
		}
	}
	return nil
}

func By_name(name string) *Field {
	for i := range Fields {
		if Fields[i].Name == name {
			return &Fields[i]
		}
	}
	return nil
}

// Names lists field names in table order.
func Names() []string {
	out := make([]string, 0, len(Fields))
	for i := range Fields {
		out = append(out, Fields[i].Name)
	}
	return out
}
