// Package lexer provides the small hand-rolled string-scanning
// primitive shared by the dependency grammar parser and the paragraph
// tokenizer. It intentionally does not know anything about either
// grammar; it just walks runes.
package lexer

import (
	"strings"
	"unicode/utf8"
)

// EOF is returned by Next and PeekRune once the input is exhausted.
const EOF rune = -1

// Lexer walks a string one rune at a time, tracking a byte offset.
type Lexer struct {
	s   string
	pos int
}

// New returns a Lexer positioned at the start of s.
func New(s string) *Lexer {
	return &Lexer{s: s}
}

// Pos returns the current byte offset into the input.
func (l *Lexer) Pos() int {
	return l.pos
}

// ExpectFunc consumes runes while f returns true and returns the
// consumed substring.
func (l *Lexer) ExpectFunc(f func(r rune, i int) bool) string {
	start := l.pos
	for i, r := range l.s[l.pos:] {
		if !f(r, i) {
			return l.s[start : start+i]
		}
		l.pos += utf8.RuneLen(r)
	}
	return l.s[start:]
}

// Expect consumes and returns the first of ss that prefixes the
// remaining input, or "" if none match.
func (l *Lexer) Expect(ss ...string) string {
	for _, s := range ss {
		if strings.HasPrefix(l.s[l.pos:], s) {
			l.pos += len(s)
			return s
		}
	}
	return ""
}

// SkipWhitespace advances over spaces, tabs, and newlines.
func (l *Lexer) SkipWhitespace() {
	for _, r := range l.s[l.pos:] {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			break
		}
		l.pos += utf8.RuneLen(r)
	}
}

// PeekRune returns the next rune without consuming it.
func (l *Lexer) PeekRune() rune {
	for _, r := range l.s[l.pos:] {
		return r
	}
	return EOF
}

// Peek reports whether any of ss prefixes the remaining input.
func (l *Lexer) Peek(ss ...string) bool {
	for _, s := range ss {
		if strings.HasPrefix(l.s[l.pos:], s) {
			return true
		}
	}
	return false
}

// Next consumes and returns the next rune, or EOF.
func (l *Lexer) Next() rune {
	for _, r := range l.s[l.pos:] {
		l.pos += utf8.RuneLen(r)
		return r
	}
	return EOF
}

// Rest returns the remainder of the input without consuming it.
func (l *Lexer) Rest() string {
	return l.s[l.pos:]
}

// AtEOF reports whether the lexer has consumed the entire input.
func (l *Lexer) AtEOF() bool {
	return l.pos >= len(l.s)
}
