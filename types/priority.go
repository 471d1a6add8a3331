package types

import "fmt"

// Priority is the closed set of Debian package priorities. "extra"
// was deprecated in favor of "optional" (Debian Policy §2.5); it is
// accepted on input but aliased to Optional and does not round-trip
// back to "extra".
type Priority int

const (
	Required Priority = iota
	Important
	Standard
	Optional
	Extra // deprecated alias for Optional; kept only so Parse accepts it
)

// ErrInvalidPriority is returned by ParsePriority for anything outside
// the closed set.
var ErrInvalidPriority = fmt.Errorf("types: invalid priority")

// ParsePriority accepts the five historical spellings; "extra" is
// normalized to Optional.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "required":
		return Required, nil
	case "important":
		return Important, nil
	case "standard":
		return Standard, nil
	case "optional":
		return Optional, nil
	case "extra":
		return Optional, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

func (p Priority) String() string {
	switch p {
	case Required:
		return "required"
	case Important:
		return "important"
	case Standard:
		return "standard"
	case Optional:
		return "optional"
	default:
		return "optional"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
