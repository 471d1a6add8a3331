package types

import (
	"encoding"
	"strings"
)

// CommaDelimitedStrings and SpaceDelimitedStrings are the plain-string
// delimited-list codecs: parsing splits on the single delimiter
// without further trimming, and the empty string yields the empty
// list; rendering joins with the delimiter, unpadded.
type CommaDelimitedStrings []string
type SpaceDelimitedStrings []string

func splitDelimited(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}

func (l CommaDelimitedStrings) MarshalText() ([]byte, error) {
	return []byte(strings.Join(l, ",")), nil
}

func (l *CommaDelimitedStrings) UnmarshalText(text []byte) error {
	*l = splitDelimited(string(text), ",")
	return nil
}

func (l SpaceDelimitedStrings) MarshalText() ([]byte, error) {
	return []byte(strings.Join(l, " ")), nil
}

func (l *SpaceDelimitedStrings) UnmarshalText(text []byte) error {
	*l = splitDelimited(string(text), " ")
	return nil
}

// textCodec is the constraint used by Delimited: a pointer to T must
// parse via UnmarshalText. This is the generic form of
// CommaDelimitedStrings/SpaceDelimitedStrings for element types that
// are themselves structured leaf values (e.g. arch.Architecture).
type textCodec[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Delimited is a generic delimiter-joined list of elements with a
// text codec. sep is set by the CommaDelimited/SpaceDelimited
// constructors below.
type Delimited[T any, PT textCodec[T]] struct {
	Items []T
	sep   string
}

// CommaDelimited builds a Delimited value with "," as its separator.
func CommaDelimited[T any, PT textCodec[T]](items []T) Delimited[T, PT] {
	return Delimited[T, PT]{Items: items, sep: ","}
}

// SpaceDelimited builds a Delimited value with " " as its separator.
func SpaceDelimited[T any, PT textCodec[T]](items []T) Delimited[T, PT] {
	return Delimited[T, PT]{Items: items, sep: " "}
}

func (d Delimited[T, PT]) MarshalText() ([]byte, error) {
	sep := d.sep
	if sep == "" {
		sep = ","
	}
	parts := make([]string, len(d.Items))
	for i := range d.Items {
		pt := PT(&d.Items[i])
		tm, ok := any(pt).(encoding.TextMarshaler)
		if !ok {
			// PT only guarantees TextUnmarshaler; fall back through
			// the value itself if it also marshals.
			if vtm, ok := any(d.Items[i]).(encoding.TextMarshaler); ok {
				b, err := vtm.MarshalText()
				if err != nil {
					return nil, err
				}
				parts[i] = string(b)
				continue
			}
			continue
		}
		b, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		parts[i] = string(b)
	}
	return []byte(strings.Join(parts, sep)), nil
}

func (d *Delimited[T, PT]) UnmarshalText(text []byte) error {
	if d.sep == "" {
		d.sep = ","
	}
	raw := splitDelimited(string(text), d.sep)
	items := make([]T, len(raw))
	for i, tok := range raw {
		pt := PT(&items[i])
		if err := pt.UnmarshalText([]byte(tok)); err != nil {
			return err
		}
	}
	d.Items = items
	return nil
}
