package codec

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malkedit/tables"
	"malkedit/types"
)

// testSave builds an n byte save with the magic byte, a recognizable pattern everywhere else,
// and in-range values (with consistent display mirrors) at every table offset.
func testSave(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	b[0] = tables.MAGIC
	if n <= tables.Max_offset {
		return b
	}

	b[1], b[2] = 0x07, 0xD3 // 2003
	b[4], b[5], b[6], b[7], b[8] = 9, 16, 21, 45, 30
	b[601] = 42
	b[4373], b[10] = 3, 4
	b[4377], b[11] = 5, 6
	b[4381] = 6
	b[4393], b[4394], b[4395] = 0x39, 0x30, 0x00 // 12345
	for l := range types.LEVELS {
		b[7187+l] = byte(l * 17)
	}
	return b
}

func TestDecode(t *testing.T) {
	fields, err := Decode(testSave(t, 8192))
	require.NoError(t, err)

	assert.Equal(t, types.SaveFields{
		Year: 2003, Month: 9, Day: 16, Hour: 21, Minute: 45, Second: 30,
		Gags: 42, Coins: 12345,
		Last_level_played: 4, Last_mission: 6, Last_level_unlocked: 7,
		Cards: [types.LEVELS]int{0, 17, 34, 51, 68, 85, 102},
	}, fields)
}

func TestDecodeLeavesBufferAlone(t *testing.T) {
	b := testSave(t, 8000)
	orig := slices.Clone(b)
	_, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, orig, b)
}

func TestDecodeFormatErrors(t *testing.T) {
	bad_magic := testSave(t, 8192)
	bad_magic[0] = 0xBB
	oversized := testSave(t, 8193)
	oversized[0] = 0

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"nil", nil, types.ErrBadMagic},
		{"empty", []byte{}, types.ErrBadMagic},
		{"one byte, wrong", []byte{0}, types.ErrBadMagic},
		{"bad magic", bad_magic, types.ErrBadMagic},
		{"oversized, bad magic", oversized, types.ErrOversized},
		{"oversized, good magic", testSave(t, 9000), types.ErrOversized},
		{"magic only", []byte{tables.MAGIC}, types.ErrTruncated},
		{"one short", testSave(t, 7193), types.ErrTruncated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, err := Decode(tc.buf)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, types.SaveFields{}, fields)

			var fe *types.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, len(tc.buf), fe.Len)
		})
	}
}

func TestDecodeBoundary(t *testing.T) {
	assert.Equal(t, 7193, tables.Max_offset)

	b := testSave(t, 7194)
	fields, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 102, fields.Cards[6])
}

func TestDecodeIsFaithful(t *testing.T) {
	b := testSave(t, 8192)
	b[601] = 200
	b[4373] = 255
	b[7190] = 0xFF

	fields, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 200, fields.Gags)
	assert.Equal(t, 256, fields.Last_level_played)
	assert.Equal(t, 255, fields.Cards[3])
}

func TestRoundTripIsExact(t *testing.T) {
	b := testSave(t, 8192)
	orig := slices.Clone(b)

	fields, err := Decode(b)
	require.NoError(t, err)
	_, err = Encode(fields, b)
	require.NoError(t, err)

	assert.Equal(t, orig, b)
}

func TestRoundTripOnlyTouchesTableOffsets(t *testing.T) {
	// Pattern bytes everywhere, so mirrors are inconsistent and some values out of range
	b := make([]byte, 7500)
	for i := range b {
		b[i] = byte(i*13 + 1)
	}
	b[0] = tables.MAGIC
	orig := slices.Clone(b)

	owned := map[int]bool{}
	for i := range tables.Fields {
		for _, o := range tables.Fields[i].Offsets() {
			owned[o] = true
		}
	}

	fields, err := Decode(b)
	require.NoError(t, err)
	_, err = Encode(fields, b)
	require.NoError(t, err)

	require.Len(t, b, len(orig))
	for i := range b {
		if !owned[i] {
			require.Equal(t, orig[i], b[i], "byte %v changed", i)
		}
	}
}

func TestRangeShift(t *testing.T) {
	b := testSave(t, 8192)
	b[4373] = 3
	fields, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 4, fields.Last_level_played)

	b2 := testSave(t, 8192)
	b2[4373], b2[10] = 0, 0
	fields.Last_level_played = 4
	_, err = Encode(fields, b2)
	require.NoError(t, err)
	assert.Equal(t, byte(3), b2[4373])
	assert.Equal(t, byte(4), b2[10])
}

func TestMissionMirror(t *testing.T) {
	b := testSave(t, 8192)
	fields, err := Decode(b)
	require.NoError(t, err)

	fields.Last_mission = 8
	fields.Last_level_unlocked = 2
	_, err = Encode(fields, b)
	require.NoError(t, err)
	assert.Equal(t, byte(7), b[4377])
	assert.Equal(t, byte(8), b[11])
	assert.Equal(t, byte(1), b[4381])
}

func TestCoins(t *testing.T) {
	b := testSave(t, 8192)
	fields, err := Decode(b)
	require.NoError(t, err)

	fields.Coins = 9999999
	_, err = Encode(fields, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7F, 0x96, 0x98}, b[4393:4396])

	fields, err = Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 9999999, fields.Coins)
}

func TestYearIsBigEndian(t *testing.T) {
	b := testSave(t, 8192)
	fields, err := Decode(b)
	require.NoError(t, err)

	fields.Year = 0x1234
	_, err = Encode(fields, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34}, b[1:3])
}

func TestCardBitmask(t *testing.T) {
	b := testSave(t, 8192)
	fields, err := Decode(b)
	require.NoError(t, err)

	fields.Cards[0] = 0b0000101
	_, err = Encode(fields, b)
	require.NoError(t, err)
	assert.Equal(t, byte(5), b[7187])

	fields, err = Decode(b)
	require.NoError(t, err)
	assert.Equal(t, 5, fields.Cards[0])
}

func TestEncodeClamps(t *testing.T) {
	b := testSave(t, 8192)
	fields, err := Decode(b)
	require.NoError(t, err)

	fields.Gags = 200
	fields.Coins = 1 << 32
	fields.Last_level_played = 0
	fields.Last_mission = 300
	fields.Cards[6] = 255
	fields.Year = -5
	fields.Second = 1000

	clamped, err := Encode(fields, b)
	require.NoError(t, err)

	assert.Equal(t, 84, clamped.Gags)
	assert.Equal(t, byte(84), b[601])
	assert.Equal(t, 9999999, clamped.Coins)
	assert.Equal(t, []byte{0x7F, 0x96, 0x98}, b[4393:4396])
	assert.Equal(t, 1, clamped.Last_level_played)
	assert.Equal(t, byte(0), b[4373])
	assert.Equal(t, byte(1), b[10])
	assert.Equal(t, 8, clamped.Last_mission)
	assert.Equal(t, byte(7), b[4377])
	assert.Equal(t, byte(8), b[11])
	assert.Equal(t, 127, clamped.Cards[6])
	assert.Equal(t, byte(127), b[7193])
	assert.Equal(t, 0, clamped.Year)
	assert.Equal(t, []byte{0, 0}, b[1:3])
	assert.Equal(t, 255, clamped.Second)

	// The caller's copy is not touched
	assert.Equal(t, 200, fields.Gags)
}

func TestEncodeRejectsBadBuffers(t *testing.T) {
	fields := types.SaveFields{Gags: 1}

	short := testSave(t, 5000)
	orig := slices.Clone(short)
	_, err := Encode(fields, short)
	require.ErrorIs(t, err, types.ErrTruncated)
	assert.Equal(t, orig, short)

	_, err = Encode(fields, nil)
	require.ErrorIs(t, err, types.ErrBadMagic)

	_, err = Encode(fields, make([]byte, 9000))
	require.ErrorIs(t, err, types.ErrOversized)
}

func TestLayoutTableHasNoOverlaps(t *testing.T) {
	seen := map[int]string{}
	for i := range tables.Fields {
		f := &tables.Fields[i]
		for _, o := range f.Offsets() {
			other, dup := seen[o]
			require.False(t, dup, "%v and %v both use byte %v", f.Name, other, o)
			seen[o] = f.Name
		}
	}
	assert.Len(t, tables.Fields, int(types.FIELD_COUNT))
}
