package writers

// Functions for writing into a save buffer.
// Like the readers, these refuse to go out of bounds rather than trusting the caller.

import (
	"fmt"

	"malkedit/tables"
)

func check(target []byte, offset int, size int) error {
	if offset < 0 || size < 0 || offset > len(target) || size > len(target)-offset {
		return fmt.Errorf("write of %v bytes at %v is outside a %v byte buffer", size, offset, len(target))
	}
	return nil
}

// Write_uint8 writes the low byte of i.
func Write_uint8(target []byte, offset int, i int) error {
	if err := check(target, offset, 1); err != nil {
		return err
	}
	target[offset] = uint8(i & 0xff)
	return nil
}

func Write_uint_be(target []byte, offset int, width int, i int) error {
	if err := check(target, offset, width); err != nil {
		return err
	}
	for cur := range width {
		target[offset+cur] = uint8((i >> (8 * (width - 1 - cur))) & 0xff)
	}
	return nil
}

func Write_uint_le(target []byte, offset int, width int, i int) error {
	if err := check(target, offset, width); err != nil {
		return err
	}
	for cur := range width {
		target[offset+cur] = uint8((i >> (8 * cur)) & 0xff)
	}
	return nil
}

func Write_uint16_be(target []byte, offset int, i int) error {
	return Write_uint_be(target, offset, 2, i)
}

func Write_uint24_le(target []byte, offset int, i int) error {
	return Write_uint_le(target, offset, 3, i)
}

// Write_field writes a stored (already shifted and clamped) value to a table field's primary offset.
// The display mirror is the caller's business, since it holds a different value.
func Write_field(target []byte, f *tables.Field, stored int) error {
	if f.Width == 1 {
		return Write_uint8(target, f.Offset, stored)
	}
	if f.Order == tables.LITTLE {
		return Write_uint_le(target, f.Offset, f.Width, stored)
	}
	return Write_uint_be(target, f.Offset, f.Width, stored)
}
