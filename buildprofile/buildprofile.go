// Package buildprofile implements Debian build profile identifiers
// and the restriction-formula evaluation used to decide whether a
// dependency atom applies under a given set of active profiles.
package buildprofile

import (
	"strings"
)

// wellKnown lists the profiles dpkg-buildpackage and friends treat as
// named, rather than opaque strings. Unknown profiles are still
// accepted and carried as their literal text; membership is reported
// by IsWellKnown and affects nothing else (parsing and formula
// evaluation treat every profile alike). The namespaced "pkg.<source>.
// <tag>" form is tracked separately, by IsNamespaced.
var wellKnown = map[string]bool{
	"cross":          true,
	"stage1":         true,
	"stage2":         true,
	"nobiarch":       true,
	"nocheck":        true,
	"nocil":          true,
	"nodoc":          true,
	"nogir":          true,
	"nogolang":       true,
	"noinsttest":     true,
	"nojava":         true,
	"noperl":         true,
	"nopython":       true,
	"noruby":         true,
	"nolua":          true,
	"noguile":        true,
	"noocaml":        true,
	"nowasm":         true,
	"nowindows":      true,
	"noudeb":         true,
	"upstream-cargo": true,
}

// Profile is a build profile identifier: a well-known name, an
// arbitrary unknown string, or a namespaced "pkg.<source>.<tag>"
// variant.
type Profile struct {
	name string
}

// Parse accepts any non-empty profile token; Debian does not reject
// unrecognized profile names, it just treats them as opaque.
func Parse(s string) (Profile, error) {
	return Profile{name: s}, nil
}

// Name returns the literal profile text.
func (p Profile) Name() string { return p.name }

// IsWellKnown reports whether p is one of the profiles dpkg documents
// by name.
func (p Profile) IsWellKnown() bool { return wellKnown[p.name] }

// IsNamespaced reports whether p has the "pkg.<source>.<tag>" shape.
func (p Profile) IsNamespaced() bool {
	return strings.HasPrefix(p.name, "pkg.") && strings.Count(p.name, ".") >= 2
}

func (p Profile) String() string { return p.name }

// Atom is a single (possibly negated) profile reference, as it
// appears inside a restriction-formula group.
type Atom struct {
	Negated bool
	Profile Profile
}

func (a Atom) String() string {
	if a.Negated {
		return "!" + a.Profile.String()
	}
	return a.Profile.String()
}

// Holds reports whether a holds against the given active-profile set:
// a positive atom holds iff its profile is active; a negated atom
// holds iff its profile is not active.
func (a Atom) Holds(active map[string]bool) bool {
	present := active[a.Profile.name]
	if a.Negated {
		return !present
	}
	return present
}

// Group is a disjunction of Atoms (one `<...>` bracket in the
// dependency grammar); it is satisfied if any of its atoms holds.
type Group struct {
	Atoms []Atom
}

// Satisfied reports whether any atom in the group holds.
func (g Group) Satisfied(active map[string]bool) bool {
	for _, a := range g.Atoms {
		if a.Holds(active) {
			return true
		}
	}
	return false
}

func (g Group) String() string {
	parts := make([]string, len(g.Atoms))
	for i, a := range g.Atoms {
		parts[i] = a.String()
	}
	return "<" + strings.Join(parts, " ") + ">"
}

// Formula is a conjunction of Groups: the whole atom it is attached to
// is kept iff every group is satisfied.
type Formula struct {
	Groups []Group
}

// Satisfied reports whether every group in the formula is satisfied
// by active. An empty formula (no groups) is vacuously satisfied.
func (f Formula) Satisfied(active map[string]bool) bool {
	for _, g := range f.Groups {
		if !g.Satisfied(active) {
			return false
		}
	}
	return true
}

func (f Formula) String() string {
	parts := make([]string, len(f.Groups))
	for i, g := range f.Groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

// ActiveSet builds the map Holds/Satisfied expect from a slice of
// active profile names.
func ActiveSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
