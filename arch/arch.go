// Package arch implements Debian's Architecture four-tuple and the
// parallel multiarch Tuple naming, including the static label table
// that maps between the two and the wildcard-matching rules used by
// dependency architecture constraints.
package arch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchitecture is returned by Parse for a name not present
// in the static table and not one of the three sentinels.
var ErrUnknownArchitecture = errors.New("arch: unknown architecture")

// Wildcard is the literal field value meaning "matches anything in
// this position."
const Wildcard = "any"

// Architecture is a four-field tuple (abi, libc, os, cpu) identifying
// a target build environment, plus the three sentinel spellings
// source, all, and any (which never decompose into four real fields).
type Architecture struct {
	name string // the canonical label, e.g. "amd64", "source", "all"
	abi  string
	libc string
	os   string
	cpu  string
}

// Source, All, and Any are the three Architecture sentinels. Source
// and All only match themselves; Any is the all-wildcard pattern.
var (
	Source = Architecture{name: "source"}
	All    = Architecture{name: "all"}
	Any    = Architecture{name: "any", abi: Wildcard, libc: Wildcard, os: Wildcard, cpu: Wildcard}
)

// Tuple is the three-field multiarch naming of a target:
// (instruction_set, syscall_abi, userland).
type Tuple struct {
	InstructionSet string
	SyscallABI     string
	Userland       string
}

// Name returns the canonical Debian architecture label, e.g. "amd64".
func (a Architecture) Name() string { return a.name }

// Fields returns the four (abi, libc, os, cpu) components. Calling
// Fields on Source or All returns four empty strings; they are not
// decomposed tuples.
func (a Architecture) Fields() (abi, libc, os, cpu string) {
	return a.abi, a.libc, a.os, a.cpu
}

// IsWildcard reports whether a is the Any sentinel.
func (a Architecture) IsWildcard() bool {
	return a.name == "any"
}

func (a Architecture) String() string { return a.name }

// Parse looks up name in the static architecture table, returns one
// of the three sentinels, or parses a wildcard tuple such as
// "linux-any", "any-amd64", or "kfreebsd-any". A wildcard tuple is 1
// to 4 hyphen-separated fields read as, from the right, cpu, os,
// libc, abi; any field left unspecified defaults to "any".
func Parse(name string) (Architecture, error) {
	switch name {
	case "source":
		return Source, nil
	case "all":
		return All, nil
	case "any":
		return Any, nil
	}
	if a, ok := byName[name]; ok {
		return a, nil
	}
	if strings.Contains(name, "any") {
		return wildcardFromStr(name)
	}
	return Architecture{}, fmt.Errorf("%w: %q", ErrUnknownArchitecture, name)
}

// wildcardFromStr parses a hyphen-separated wildcard architecture
// tuple; missing leading fields default to Wildcard, so "linux-any"
// reads as (any, any, linux, any).
func wildcardFromStr(name string) (Architecture, error) {
	chunks := strings.Split(name, "-")
	var abi, libc, os, cpu string
	switch len(chunks) {
	case 1:
		abi, libc, os, cpu = Wildcard, Wildcard, Wildcard, chunks[0]
	case 2:
		abi, libc, os, cpu = Wildcard, Wildcard, chunks[0], chunks[1]
	case 3:
		abi, libc, os, cpu = Wildcard, chunks[0], chunks[1], chunks[2]
	case 4:
		abi, libc, os, cpu = chunks[0], chunks[1], chunks[2], chunks[3]
	default:
		return Architecture{}, fmt.Errorf("%w: %q", ErrUnknownArchitecture, name)
	}
	return Architecture{name: name, abi: abi, libc: libc, os: os, cpu: cpu}, nil
}

// Is reports whether target matches pattern: sentinels source/all only
// match themselves; otherwise every field of pattern must be "any" or
// equal to the corresponding field of target.
func Is(target, pattern Architecture) bool {
	if pattern.name == "source" || pattern.name == "all" ||
		target.name == "source" || target.name == "all" {
		return target.name == pattern.name
	}
	if pattern.IsWildcard() {
		return true
	}
	return fieldMatches(pattern.abi, target.abi) &&
		fieldMatches(pattern.libc, target.libc) &&
		fieldMatches(pattern.os, target.os) &&
		fieldMatches(pattern.cpu, target.cpu)
}

func fieldMatches(pattern, target string) bool {
	return pattern == Wildcard || pattern == target
}

// ToTuple returns the multiarch Tuple for a well-known architecture.
// Sentinels have no multiarch form.
func ToTuple(a Architecture) (Tuple, bool) {
	t, ok := tupleByName[a.name]
	return t, ok
}

// FromTuple reverses ToTuple: given a multiarch Tuple, returns the
// Architecture it names, if any row in the table matches.
func FromTuple(t Tuple) (Architecture, bool) {
	a, ok := nameByTuple[t]
	if !ok {
		return Architecture{}, false
	}
	return byName[a], true
}

// MarshalText implements encoding.TextMarshaler.
func (a Architecture) MarshalText() ([]byte, error) { return []byte(a.name), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Architecture) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
