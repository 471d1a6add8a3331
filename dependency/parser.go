package dependency

import (
	"fmt"

	"github.com/paultag/deb822go/arch"
	"github.com/paultag/deb822go/buildprofile"
	"github.com/paultag/deb822go/internal/lexer"
	"github.com/paultag/deb822go/version"
)

// Parse turns dependency-field text into a Dependency AST. An empty
// (or all-whitespace) string parses to an empty Dependency, not an
// error. Whitespace between tokens is insignificant except inside
// names, operators, version text, and arch labels, none of which may
// contain spaces.
func Parse(s string) (Dependency, error) {
	l := lexer.New(s)
	l.SkipWhitespace()
	if l.AtEOF() {
		return Dependency{}, nil
	}

	var dep Dependency
	for {
		rel, err := parseRelation(l)
		if err != nil {
			return Dependency{}, err
		}
		dep.Relations = append(dep.Relations, rel)

		l.SkipWhitespace()
		if l.Peek(",") {
			l.Next()
			l.SkipWhitespace()
			if l.AtEOF() {
				return Dependency{}, parseErr(l, "dangling , at end of dependency")
			}
			continue
		}
		break
	}

	l.SkipWhitespace()
	if !l.AtEOF() {
		return Dependency{}, parseErr(l, "unexpected trailing input")
	}
	return dep, nil
}

func parseErr(l *lexer.Lexer, msg string) error {
	return &ParseError{Pos: l.Pos(), Msg: msg}
}

func parseRelation(l *lexer.Lexer) (Relation, error) {
	var rel Relation
	for {
		l.SkipWhitespace()
		poss, err := parsePossibility(l)
		if err != nil {
			return Relation{}, err
		}
		rel.Possibilities = append(rel.Possibilities, poss)

		l.SkipWhitespace()
		if l.Peek("|") {
			l.Next()
			l.SkipWhitespace()
			if l.AtEOF() || l.Peek(",") {
				return Relation{}, parseErr(l, "dangling | in relation")
			}
			continue
		}
		break
	}
	return rel, nil
}

func isNameChar(r rune, _ int) bool {
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
	case r >= '0' && r <= '9':
	case r == '+' || r == '-' || r == '.':
	default:
		return false
	}
	return true
}

func parsePossibility(l *lexer.Lexer) (Possibility, error) {
	name := l.ExpectFunc(isNameChar)
	if name == "" {
		return Possibility{}, parseErr(l, "expected package name")
	}
	poss := Possibility{Name: name}

	if l.Peek(":") {
		l.Next()
		archLabel := l.ExpectFunc(isNameChar)
		if archLabel == "" {
			return Possibility{}, parseErr(l, "expected architecture qualifier after :")
		}
		poss.ArchQualifier = archLabel
	}

	for {
		l.SkipWhitespace()
		switch {
		case l.Peek("("):
			vc, err := parseVersionConstraint(l)
			if err != nil {
				return Possibility{}, err
			}
			if poss.Version != nil {
				return Possibility{}, fmt.Errorf("%w: %q", ErrTooManyVersions, poss.Name)
			}
			poss.Version = vc
		case l.Peek("["):
			ac, err := parseArchConstraints(l)
			if err != nil {
				return Possibility{}, err
			}
			if poss.ArchConstraints != nil {
				return Possibility{}, fmt.Errorf("%w: %q", ErrTooManyArchLists, poss.Name)
			}
			poss.ArchConstraints = ac
		case l.Peek("<"):
			group, err := parseProfileGroup(l)
			if err != nil {
				return Possibility{}, err
			}
			if poss.Profiles == nil {
				poss.Profiles = &buildprofile.Formula{}
			}
			poss.Profiles.Groups = append(poss.Profiles.Groups, group)
		default:
			return poss, nil
		}
	}
}

func parseVersionConstraint(l *lexer.Lexer) (*VersionConstraint, error) {
	l.Next() // consume "("
	l.SkipWhitespace()

	op := l.Expect("<<", "<=", "==", ">=", ">>", "=")
	if op == "" {
		return nil, parseErr(l, "expected version operator")
	}
	canonical := VersionOp(op)
	if canonical == "==" {
		canonical = OpEqual
	}

	l.SkipWhitespace()
	text := l.ExpectFunc(func(r rune, _ int) bool { return r != ')' })
	text = trimTrailingSpace(text)
	if text == "" {
		return nil, parseErr(l, "expected version text inside ( )")
	}

	if !l.Peek(")") {
		return nil, parseErr(l, "unterminated version constraint, expected )")
	}
	l.Next()

	v, err := version.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVersion, err)
	}
	return &VersionConstraint{Operator: canonical, Version: v}, nil
}

func trimTrailingSpace(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

func parseArchConstraints(l *lexer.Lexer) (*ArchConstraints, error) {
	l.Next() // consume "["
	ac := &ArchConstraints{}
	for {
		l.SkipWhitespace()
		if l.Peek("]") {
			l.Next()
			return ac, nil
		}
		if l.AtEOF() {
			return nil, parseErr(l, "unterminated architecture constraint list, expected ]")
		}
		negated := false
		if l.Peek("!") {
			l.Next()
			negated = true
		}
		label := l.ExpectFunc(isNameChar)
		if label == "" {
			return nil, fmt.Errorf("%w: expected architecture name", ErrInvalidArchConstraint)
		}
		a, err := arch.Parse(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArch, err)
		}
		ac.Constraints = append(ac.Constraints, ArchConstraint{Negated: negated, Arch: a})
	}
}

func parseProfileGroup(l *lexer.Lexer) (buildprofile.Group, error) {
	l.Next() // consume "<"
	var group buildprofile.Group
	for {
		l.SkipWhitespace()
		if l.Peek(">") {
			l.Next()
			return group, nil
		}
		if l.AtEOF() {
			return buildprofile.Group{}, parseErr(l, "unterminated build profile group, expected >")
		}
		negated := false
		if l.Peek("!") {
			l.Next()
			negated = true
		}
		label := l.ExpectFunc(isNameChar)
		if label == "" {
			return buildprofile.Group{}, fmt.Errorf("%w: expected build profile name", ErrInvalidProfileConstraint)
		}
		p, err := buildprofile.Parse(label)
		if err != nil {
			return buildprofile.Group{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		group.Atoms = append(group.Atoms, buildprofile.Atom{Negated: negated, Profile: p})
	}
}
