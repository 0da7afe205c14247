package writers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malkedit/tables"
	"malkedit/types"
)

func TestWriteInts(t *testing.T) {
	data := make([]byte, 8)

	require.NoError(t, Write_uint8(data, 0, 0x1BA))
	require.NoError(t, Write_uint16_be(data, 1, 2003))
	require.NoError(t, Write_uint24_le(data, 3, 9999999))
	require.NoError(t, Write_uint_le(data, 6, 2, 0x0102))

	assert.Equal(t, []byte{0xBA, 0x07, 0xD3, 0x7F, 0x96, 0x98, 0x02, 0x01}, data)
}

func TestWriteOutOfBounds(t *testing.T) {
	data := []byte{9, 9, 9}

	assert.Error(t, Write_uint8(data, 3, 1))
	assert.Error(t, Write_uint8(data, -1, 1))
	assert.Error(t, Write_uint16_be(data, 2, 1))
	assert.Error(t, Write_uint24_le(data, 1, 1))
	assert.Error(t, Write_uint8(nil, 0, 1))

	// Nothing was written by the failed calls
	assert.Equal(t, []byte{9, 9, 9}, data)
}

func TestWriteField(t *testing.T) {
	data := make([]byte, tables.Max_offset+1)

	require.NoError(t, Write_field(data, tables.By_id(types.FIELD_COINS), 9999999))
	assert.Equal(t, []byte{0x7F, 0x96, 0x98}, data[4393:4396])

	require.NoError(t, Write_field(data, tables.By_id(types.FIELD_YEAR), 0x1234))
	assert.Equal(t, []byte{0x12, 0x34}, data[1:3])

	require.NoError(t, Write_field(data, tables.By_id(types.FIELD_CARDS_L3), 5))
	assert.Equal(t, byte(5), data[7189])

	// The mirror is not Write_field's job
	require.NoError(t, Write_field(data, tables.By_id(types.FIELD_LAST_LEVEL_PLAYED), 3))
	assert.Equal(t, byte(3), data[4373])
	assert.Equal(t, byte(0), data[10])
}
