// Package codec turns save file bytes into types.SaveFields and back again.
//
// Both directions are driven entirely by tables.Fields.  Only the bytes named there are read or written;
// everything else in a save file is opaque and passes through untouched.
package codec

import (
	"fmt"

	"go.uber.org/zap"

	"malkedit/readers"
	"malkedit/tables"
	"malkedit/types"
	"malkedit/writers"
)

// Validate checks that bytes looks like a save file the table can be applied to.
// Checks happen in a fixed order: size, then magic byte, then bounds.
func Validate(bytes []byte) error {
	if len(bytes) > tables.MAX_FILE_SIZE {
		return &types.FormatError{Kind: types.KIND_OVERSIZED, Len: len(bytes)}
	}
	if len(bytes) < 1 || bytes[0] != tables.MAGIC {
		return &types.FormatError{Kind: types.KIND_BAD_MAGIC, Len: len(bytes)}
	}
	if !readers.Has(bytes, tables.Max_offset) {
		return &types.FormatError{Kind: types.KIND_TRUNCATED, Len: len(bytes)}
	}

	return nil
}

// Decode extracts every table field from bytes.  bytes is not modified.
//
// Values are not range checked: whatever is stored is what you get, with the
// display shift applied (so a stored 255 in a 1-based field decodes as 256).
func Decode(bytes []byte) (types.SaveFields, error) {
	out := types.SaveFields{}

	err := Validate(bytes)
	if err != nil {
		Logger().Debug("rejected save buffer", zap.Int("len", len(bytes)), zap.Error(err))
		return out, err
	}

	for i := range tables.Fields {
		f := &tables.Fields[i]
		stored, err := readers.Read_field(bytes, f)
		if err != nil {
			// Validate should have made this impossible
			return types.SaveFields{}, fmt.Errorf("field %v: %w", f.Name, err)
		}
		*out.Value(f.Id) = stored + f.Shift
	}

	return out, nil
}

// Encode writes fields into bytes, in place.
//
// bytes must pass Validate, otherwise nothing is written.  Each value is clamped to its
// field's range before writing; the clamped fields are returned so that callers know what
// actually went into the file.  Shifted fields also get their display value written to
// their mirror offset.
func Encode(fields types.SaveFields, bytes []byte) (types.SaveFields, error) {
	err := Validate(bytes)
	if err != nil {
		return fields, err
	}

	clamped := Clamp(fields)
	for i := range tables.Fields {
		f := &tables.Fields[i]
		value := *clamped.Value(f.Id)

		err := writers.Write_field(bytes, f, value-f.Shift)
		if err == nil && f.Mirror != tables.NO_MIRROR {
			err = writers.Write_uint8(bytes, f.Mirror, value)
		}
		if err != nil {
			// Again, Validate should have made this impossible
			return fields, fmt.Errorf("field %v: %w", f.Name, err)
		}
	}

	return clamped, nil
}

// Clamp forces every field into its table range.
func Clamp(fields types.SaveFields) types.SaveFields {
	for i := range tables.Fields {
		f := &tables.Fields[i]
		v := fields.Value(f.Id)
		if c := f.Clamp(*v); c != *v {
			Logger().Info("clamped out-of-range value", zap.String("field", f.Name), zap.Int("from", *v), zap.Int("to", c))
			*v = c
		}
	}
	return fields
}
