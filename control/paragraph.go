// Package control implements the deb822-style stanza format used
// throughout the Debian package ecosystem (control files, Packages
// indices, .dsc/.changes files): a line-oriented tokenizer (this
// file), a reflection-driven schema binding layer (schema.go), and
// blocking/cooperative stream drivers (decoder.go) that read
// paragraphs one at a time from a byte stream.
//
// Field kinds at the text layer: "simple" (one value line) and
// "folded" (a long value wrapped across continuation lines) are
// tokenized identically; folding is invisible once the continuation
// lines are joined. Only "multiline" fields, bound as a repeated
// schema field, change how the joined value is later decoded: each
// line becomes one element instead of one scalar.
package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paultag/deb822go/internal/lexer"
)

// Sentinel errors from the paragraph tokenizer.
var (
	ErrParse              = errors.New("control: parse error")
	ErrMultipleParagraphs = errors.New("control: input contains more than one paragraph")
)

// ParseError names the offending line (1-based) of a malformed
// header line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("control: %s (line %d)", e.Msg, e.Line)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// RawField is a single (key, value) pair as tokenized from a
// paragraph. Value is the concatenation of the field's value lines
// (its first line plus any folded continuation lines), joined with
// "\n", after trimming exactly one leading space from each
// continuation line.
type RawField struct {
	Key   string
	Value string
}

// RawParagraph is an ordered sequence of raw fields, preserving
// source order and allowing repeated keys (the schema layer decides
// whether that is an error or "first wins").
type RawParagraph struct {
	Fields []RawField
}

// Get returns the value of the first field matching key, and whether
// any such field exists. This implements the default "first wins"
// semantics for repeated scalar fields.
func (p RawParagraph) Get(key string) (string, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether any field with the given key exists.
func (p RawParagraph) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Values returns every value associated with key, in source order.
func (p RawParagraph) Values(key string) []string {
	var out []string
	for _, f := range p.Fields {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// Keys returns every distinct field key, in first-occurrence order.
func (p RawParagraph) Keys() []string {
	seen := make(map[string]bool, len(p.Fields))
	var out []string
	for _, f := range p.Fields {
		if !seen[f.Key] {
			seen[f.Key] = true
			out = append(out, f.Key)
		}
	}
	return out
}

// IsEmpty reports whether the paragraph has no fields at all. A
// paragraph consisting only of comment lines parses to an empty,
// non-nil RawParagraph rather than being skipped or treated as an
// error.
func (p RawParagraph) IsEmpty() bool { return len(p.Fields) == 0 }

func isFieldKeyChar(r rune, _ int) bool {
	// printable ASCII except control characters, space, and colon.
	return r > ' ' && r < 0x7f && r != ':'
}

// ParseParagraph parses exactly one paragraph from text. Trailing
// blank lines are permitted; a second non-blank paragraph in the
// input is an error.
func ParseParagraph(text string) (RawParagraph, error) {
	lines := splitLines(text)

	// find where the first paragraph ends.
	end := len(lines)
	for i, line := range lines {
		if isBlank(line) {
			end = i
			break
		}
	}

	para, err := tokenizeLines(lines[:end])
	if err != nil {
		return RawParagraph{}, err
	}

	for _, line := range lines[end:] {
		if !isBlank(line) {
			return RawParagraph{}, ErrMultipleParagraphs
		}
	}

	return para, nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// tokenizeLines turns a run of lines (already known to contain no
// blank separator) into a RawParagraph. Comment lines (leading '#')
// are discarded; field lines start a field; lines beginning with a
// single space or tab are continuations of the preceding field.
func tokenizeLines(lines []string) (RawParagraph, error) {
	var para RawParagraph
	var curKey string
	var curValueLines []string
	haveField := false

	flush := func() {
		if haveField {
			para.Fields = append(para.Fields, RawField{
				Key:   curKey,
				Value: strings.Join(curValueLines, "\n"),
			})
		}
		haveField = false
		curValueLines = nil
	}

	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			if !haveField {
				return RawParagraph{}, &ParseError{Line: i + 1, Msg: "continuation line with no preceding field"}
			}
			curValueLines = append(curValueLines, line[1:])
			continue
		}

		l := lexer.New(line)
		key := l.ExpectFunc(isFieldKeyChar)
		if key == "" || !l.Peek(":") {
			return RawParagraph{}, &ParseError{Line: i + 1, Msg: fmt.Sprintf("malformed field line: missing colon or empty key (got %q)", line)}
		}
		l.Next() // consume ":"
		l.Expect(" ", "\t")

		flush()
		curKey = key
		haveField = true
		curValueLines = []string{l.Rest()}
	}
	flush()

	return para, nil
}
