package ksuid

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. JSON uses it too.
func (id ID[P]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[P]) UnmarshalText(b []byte) error {
	parsed, err := parse[P](string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID[P]) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID[P]) UnmarshalBinary(b []byte) error {
	parsed, err := fromBytes[P](b)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer. The nil id is stored as NULL, any other
// id as its string form.
func (id ID[P]) Value() (driver.Value, error) {
	if id.IsNil() {
		return nil, nil
	}
	return id.String(), nil
}

// Scan implements sql.Scanner. It accepts NULL, the string form, and the
// string or raw form as bytes.
func (id *ID[P]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ID[P]{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return errors.Join(ErrUnsupportedScanType, fmt.Errorf("cannot scan %T", src))
	}
}
