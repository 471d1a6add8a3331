package control

import (
	"io"
	"strings"
)

// String renders the paragraph back to stanza text: one header line
// per field, continuation lines prefixed with a single space, LF line
// terminators, and a trailing LF after the last line. A field whose
// value starts with a newline (the form Encode emits for repeated
// fields) renders as a bare "Key:" header followed by one
// continuation line per element.
func (p RawParagraph) String() string {
	var b strings.Builder
	p.render(&b)
	return b.String()
}

// WriteTo implements io.WriterTo, writing the same text String
// returns.
func (p RawParagraph) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	p.render(&b)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (p RawParagraph) render(b *strings.Builder) {
	for _, f := range p.Fields {
		lines := strings.Split(f.Value, "\n")
		b.WriteString(f.Key)
		b.WriteByte(':')
		if lines[0] != "" {
			b.WriteByte(' ')
			b.WriteString(lines[0])
		}
		b.WriteByte('\n')
		for _, line := range lines[1:] {
			b.WriteByte(' ')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
}

// Encoder writes successive paragraphs to an underlying writer,
// separating consecutive paragraphs with a single blank line. It is
// the mirror of Decoder.
type Encoder struct {
	w     io.Writer
	wrote bool
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode renders src and writes it as one paragraph. src may be a
// RawParagraph (written as-is) or a tagged struct, which is first
// bound through the schema layer's Encode.
func (e *Encoder) Encode(src interface{}) error {
	para, ok := src.(RawParagraph)
	if !ok {
		var err error
		para, err = Encode(src)
		if err != nil {
			return err
		}
	}
	if e.wrote {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return err
		}
	}
	e.wrote = true
	_, err := para.WriteTo(e.w)
	return err
}
