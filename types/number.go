package types

import (
	"fmt"
	"strconv"
)

// Number is a transparent number-as-string wrapper for numeric fields
// that may be reached through a flattened schema record: it renders as
// a decimal integer and parses from a decimal-integer string, so the
// generic decoding path only ever needs to hand it a string.
// Non-flattened numeric fields may use a plain int64 field instead;
// Number exists for the fields that must stay codec-uniform
// regardless of where they end up declared.
type Number int64

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("types: invalid number %q: %w", text, err)
	}
	*n = Number(v)
	return nil
}

func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }
