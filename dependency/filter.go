package dependency

import (
	"github.com/paultag/deb822go/arch"
)

// Filter returns a new Dependency containing only package atoms that
// satisfy predicate; relations whose disjunction is emptied are
// dropped entirely. Relation and atom order is preserved.
func Filter(d Dependency, predicate func(Possibility) bool) Dependency {
	var out Dependency
	for _, rel := range d.Relations {
		var kept []Possibility
		for _, p := range rel.Possibilities {
			if predicate(p) {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			out.Relations = append(out.Relations, Relation{Possibilities: kept})
		}
	}
	return out
}

// FilterForArch drops package atoms whose architecture constraints do
// not admit target.
func FilterForArch(d Dependency, target arch.Architecture) Dependency {
	return Filter(d, func(p Possibility) bool {
		return archConstraintsSatisfy(p.ArchConstraints, target)
	})
}

// archConstraintsSatisfy classifies a list by negation: all-positive
// is an OR match, all-negated is an AND of negations, and a mixed
// list is always satisfied (never filters).
func archConstraintsSatisfy(ac *ArchConstraints, target arch.Architecture) bool {
	if ac == nil || len(ac.Constraints) == 0 {
		return true
	}
	if isMixedNegation(ac) {
		return true
	}
	if ac.Constraints[0].Negated {
		// all-negated: satisfied iff target matches none of them.
		for _, c := range ac.Constraints {
			if arch.Is(target, c.Arch) {
				return false
			}
		}
		return true
	}
	// all-positive: satisfied iff target matches any of them.
	for _, c := range ac.Constraints {
		if arch.Is(target, c.Arch) {
			return true
		}
	}
	return false
}

func isMixedNegation(ac *ArchConstraints) bool {
	if len(ac.Constraints) == 0 {
		return false
	}
	first := ac.Constraints[0].Negated
	for _, c := range ac.Constraints[1:] {
		if c.Negated != first {
			return true
		}
	}
	return false
}

// FilterForProfiles drops package atoms whose build-profile
// restriction formula is not satisfied by the active profile set (as
// built by buildprofile.ActiveSet).
func FilterForProfiles(d Dependency, active map[string]bool) Dependency {
	return Filter(d, func(p Possibility) bool {
		if p.Profiles == nil {
			return true
		}
		return p.Profiles.Satisfied(active)
	})
}

// Warning describes a non-fatal issue surfaced by Check.
type Warning struct {
	Possibility string
	Message     string
}

// Check inspects a Dependency for mixed-negation arch lists, which
// Debian practice leaves ambiguous. The filter treats such a list as
// always-satisfied, but a strict caller may want to know it occurred.
func Check(d Dependency) []Warning {
	var warnings []Warning
	for _, rel := range d.Relations {
		for _, p := range rel.Possibilities {
			if p.ArchConstraints != nil && isMixedNegation(p.ArchConstraints) {
				warnings = append(warnings, Warning{
					Possibility: p.Name,
					Message:     "architecture constraint list mixes positive and negated entries; treated as always-satisfied",
				})
			}
		}
	}
	return warnings
}
