package types

import (
	"fmt"
	"net/mail"
	"time"
)

// DateTime2822 is an RFC 2822 date-time string, kept verbatim for
// round-tripping. Time is only populated when the text parses as a
// valid RFC 2822 date, using the stdlib's own RFC 2822 grammar rather
// than a hand-rolled one.
type DateTime2822 struct {
	Raw  string
	Time time.Time
}

// ParseDateTime2822 keeps the literal text verbatim and additionally
// attempts an RFC 2822 parse; a date that fails the optional parse is
// still accepted (Time is the zero value), since the core's contract
// is parse/round-trip of the text, not validation of its semantics.
func ParseDateTime2822(s string) (DateTime2822, error) {
	d := DateTime2822{Raw: s}
	if t, err := mail.ParseDate(s); err == nil {
		d.Time = t
	}
	return d, nil
}

func (d DateTime2822) String() string { return d.Raw }

// MarshalText implements encoding.TextMarshaler.
func (d DateTime2822) MarshalText() ([]byte, error) { return []byte(d.Raw), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime2822) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime2822(string(text))
	if err != nil {
		return fmt.Errorf("types: invalid RFC 2822 date %q: %w", text, err)
	}
	*d = parsed
	return nil
}
