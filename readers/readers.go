package readers

// Bounds-checked reads out of a save buffer.
// Nothing here ever indexes past the end of the buffer; out-of-range reads are errors.

import (
	"fmt"

	"malkedit/tables"
)

// slice returns bytes[offset:offset+size], if that is entirely inside bytes.
func slice(bytes []byte, offset int, size int) ([]byte, error) {
	if offset < 0 || size < 0 || offset > len(bytes) || size > len(bytes)-offset {
		return nil, fmt.Errorf("read of %v bytes at %v is outside a %v byte buffer", size, offset, len(bytes))
	}
	return bytes[offset : offset+size], nil
}

// Has reports whether bytes[offset] exists.
func Has(bytes []byte, offset int) bool {
	_, err := slice(bytes, offset, 1)
	return err == nil
}

func Read_uint8(bytes []byte, offset int) (int, error) {
	b, err := slice(bytes, offset, 1)
	if err != nil {
		return 0, err
	}
	return int(b[0]), nil
}

// Read_uint_be reads an unsigned big-endian integer of up to 4 bytes.
func Read_uint_be(bytes []byte, offset int, width int) (int, error) {
	b, err := slice(bytes, offset, width)
	if err != nil {
		return 0, err
	}
	out := uint(0)
	for cur := range width {
		out = out<<8 + uint(b[cur])
	}

	return int(out), nil
}

// Read_uint_le reads an unsigned little-endian integer of up to 4 bytes.
func Read_uint_le(bytes []byte, offset int, width int) (int, error) {
	b, err := slice(bytes, offset, width)
	if err != nil {
		return 0, err
	}
	out := uint(0)
	for cur := range width {
		out = out + uint(b[cur])<<(8*cur)
	}

	return int(out), nil
}

func Read_uint16_be(bytes []byte, offset int) (int, error) {
	return Read_uint_be(bytes, offset, 2)
}

func Read_uint24_le(bytes []byte, offset int) (int, error) {
	return Read_uint_le(bytes, offset, 3)
}

// Read_field reads the stored (unshifted) value of a table field.
func Read_field(bytes []byte, f *tables.Field) (int, error) {
	if f.Width == 1 {
		return Read_uint8(bytes, f.Offset)
	}
	if f.Order == tables.LITTLE {
		return Read_uint_le(bytes, f.Offset, f.Width)
	}
	return Read_uint_be(bytes, f.Offset, f.Width)
}
