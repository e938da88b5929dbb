package nhsnumber

import (
	"database/sql/driver"
	"fmt"
)

// Interchange support. The canonical grouped string is the single wire form:
// marshaling always emits it, unmarshaling accepts the full Parse grammar
// (grouped or ungrouped), so format→parse round-trips are lossless.

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// "DDD DDD DDDD" form. encoding/json picks this up, so a Number serializes
// as a JSON string.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Value implements driver.Valuer, storing the canonical string form.
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}

// Scan implements sql.Scanner, accepting string or []byte columns in either
// accepted input form.
func (n *Number) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return n.UnmarshalText([]byte(v))
	case []byte:
		return n.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into NHS number", src)
	}
}
