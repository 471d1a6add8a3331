// Package dependency implements Debian's dependency-field grammar: a
// conjunction of relations, each a disjunction of package atoms
// carrying optional version, architecture, and build-profile
// constraints. It parses, renders, and evaluates/filters that model
// against a target environment; it does not resolve or plan installs.
package dependency

import (
	"strings"

	"github.com/paultag/deb822go/arch"
	"github.com/paultag/deb822go/buildprofile"
	"github.com/paultag/deb822go/version"
)

// Dependency is a conjunction (ordered) of Relations.
type Dependency struct {
	Relations []Relation
}

// Relation is a disjunction (ordered) of Possibilities, written
// "a | b | c" in the grammar.
type Relation struct {
	Possibilities []Possibility
}

// VersionOp is one of the five version-comparison operators of a
// package atom's version constraint. The grammar accepts six
// spellings: "=" and "==" both parse to OpEqual; OpEqual always
// renders as "=".
type VersionOp string

const (
	OpLess         VersionOp = "<<"
	OpLessEqual    VersionOp = "<="
	OpEqual        VersionOp = "="
	OpGreaterEqual VersionOp = ">="
	OpGreater      VersionOp = ">>"
)

// VersionConstraint pairs a comparison operator with the Version it
// constrains against.
type VersionConstraint struct {
	Operator VersionOp
	Version  version.Version
}

func (c VersionConstraint) String() string {
	return "(" + string(c.Operator) + " " + c.Version.String() + ")"
}

// ArchConstraint is a single (possibly negated) architecture entry
// inside a package atom's "[...]" list.
type ArchConstraint struct {
	Negated bool
	Arch    arch.Architecture
}

func (c ArchConstraint) String() string {
	if c.Negated {
		return "!" + c.Arch.String()
	}
	return c.Arch.String()
}

// ArchConstraints is the full "[...]" list attached to a package
// atom. FilterForArch evaluates it by negation: an all-positive list
// is an OR, an all-negated list an AND of negations, and a mixed list
// is always satisfied.
type ArchConstraints struct {
	Constraints []ArchConstraint
}

func (c ArchConstraints) String() string {
	parts := make([]string, len(c.Constraints))
	for i, a := range c.Constraints {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Possibility is a single package atom: a name plus its optional
// architecture qualifier and constraints.
type Possibility struct {
	Name            string
	ArchQualifier   string // the "name:arch" suffix, if present; "" otherwise
	Version         *VersionConstraint
	ArchConstraints *ArchConstraints
	Profiles        *buildprofile.Formula
}

func (p Possibility) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.ArchQualifier != "" {
		b.WriteByte(':')
		b.WriteString(p.ArchQualifier)
	}
	if p.Version != nil {
		b.WriteByte(' ')
		b.WriteString(p.Version.String())
	}
	if p.ArchConstraints != nil {
		b.WriteByte(' ')
		b.WriteString(p.ArchConstraints.String())
	}
	if p.Profiles != nil && len(p.Profiles.Groups) > 0 {
		b.WriteByte(' ')
		b.WriteString(p.Profiles.String())
	}
	return b.String()
}

func (r Relation) String() string {
	parts := make([]string, len(r.Possibilities))
	for i, p := range r.Possibilities {
		parts[i] = p.String()
	}
	return strings.Join(parts, " | ")
}

func (d Dependency) String() string {
	parts := make([]string, len(d.Relations))
	for i, r := range d.Relations {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// MarshalText implements encoding.TextMarshaler.
func (d Dependency) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dependency) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
