package control

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrParagraphTooLarge is returned when a single paragraph's
// accumulated line count exceeds a Decoder's configured limit,
// guarding against unbounded memory growth on adversarial input.
var ErrParagraphTooLarge = errors.New("control: paragraph exceeds configured size limit")

// Option configures a Decoder or AsyncDecoder.
type Option func(*decoderConfig)

type decoderConfig struct {
	maxLines int // 0 means unbounded
}

// WithMaxParagraphLines caps the number of lines any single paragraph
// may accumulate before Next/Decode fails with ErrParagraphTooLarge.
// The default is unbounded: memory use is bounded only by the longest
// paragraph in the stream.
func WithMaxParagraphLines(n int) Option {
	return func(c *decoderConfig) { c.maxLines = n }
}

// paragraphAccumulator is the line-accumulation state machine shared
// by both the blocking and cooperative drivers; only the
// read-next-line primitive differs between the two.
type paragraphAccumulator struct {
	lines []string
	cfg   decoderConfig
}

// feed processes one line (or, if eof is true, signals end of input).
// It returns (paragraph, true, nil) once a full paragraph is ready,
// (zero, false, nil) if more input is needed, or an error.
func (a *paragraphAccumulator) feed(line string, eof bool) (RawParagraph, bool, error) {
	if eof {
		if len(a.lines) == 0 {
			return RawParagraph{}, false, io.EOF
		}
		para, err := tokenizeLines(a.lines)
		a.lines = nil
		if err != nil {
			return RawParagraph{}, false, err
		}
		return para, true, nil
	}

	if isBlank(line) {
		if len(a.lines) == 0 {
			return RawParagraph{}, false, nil // leading blank lines between paragraphs
		}
		para, err := tokenizeLines(a.lines)
		a.lines = nil
		if err != nil {
			return RawParagraph{}, false, err
		}
		return para, true, nil
	}

	a.lines = append(a.lines, line)
	if a.cfg.maxLines > 0 && len(a.lines) > a.cfg.maxLines {
		a.lines = nil
		return RawParagraph{}, false, ErrParagraphTooLarge
	}
	return RawParagraph{}, false, nil
}

// Decoder reads successive paragraphs from a blocking io.Reader. It is
// safe to use concurrently from multiple goroutines provided each
// Decoder instance reads from an independent reader; the tables and
// codecs it consults are all immutable.
type Decoder struct {
	scanner *bufio.Scanner
	acc     paragraphAccumulator
	done    bool
}

// NewDecoder returns a Decoder reading LF-terminated lines from r. A
// trailing LF at EOF is optional.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	var cfg decoderConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Decoder{
		scanner: bufio.NewScanner(r),
		acc:     paragraphAccumulator{cfg: cfg},
	}
}

// Next returns the next paragraph, or io.EOF once the stream (and any
// trailing partial paragraph) is exhausted.
func (d *Decoder) Next() (RawParagraph, error) {
	if d.done {
		return RawParagraph{}, io.EOF
	}
	for {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				d.done = true
				return RawParagraph{}, fmt.Errorf("control: reading input: %w", err)
			}
			d.done = true
			para, ready, err := d.acc.feed("", true)
			if err != nil {
				return RawParagraph{}, err
			}
			if ready {
				return para, nil
			}
			return RawParagraph{}, io.EOF
		}
		para, ready, err := d.acc.feed(d.scanner.Text(), false)
		if err != nil {
			return RawParagraph{}, err
		}
		if ready {
			return para, nil
		}
	}
}

// DecodeNext reads the next paragraph and binds it into dst in one
// step.
func (d *Decoder) DecodeNext(dst interface{}, opts ...DecodeOption) error {
	para, err := d.Next()
	if err != nil {
		return err
	}
	return Decode(para, dst, opts...)
}

// lineMsg is what the async driver's pump goroutine sends back.
type lineMsg struct {
	line string
	eof  bool
	err  error
}

// AsyncDecoder offers the same contract as Decoder under a cooperative
// -suspension model: suspension happens exclusively at line reads (the
// pump goroutine's blocking Scan call), and cancelling the supplied
// context between Next calls drops any partially-accumulated buffer
// with no visible side effect. Go has no async/await, so a goroutine
// feeding a channel, pulled from under a context-aware select, plays
// the role an awaitable line reader would elsewhere.
type AsyncDecoder struct {
	lines chan lineMsg
	acc   paragraphAccumulator
	done  bool
}

// NewAsyncDecoder starts a pump goroutine reading lines from r and
// returns an AsyncDecoder that serves them cooperatively. The pump
// goroutine exits once r is exhausted, or, after ctx is cancelled, at
// its next attempt to hand over a line; a read blocked in r keeps it
// running until that read returns.
func NewAsyncDecoder(ctx context.Context, r io.Reader, opts ...Option) *AsyncDecoder {
	var cfg decoderConfig
	for _, o := range opts {
		o(&cfg)
	}
	ch := make(chan lineMsg)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- lineMsg{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		var msg lineMsg
		msg.eof = true
		if err := scanner.Err(); err != nil {
			msg.err = fmt.Errorf("control: reading input: %w", err)
		}
		select {
		case ch <- msg:
		case <-ctx.Done():
		}
	}()
	return &AsyncDecoder{lines: ch, acc: paragraphAccumulator{cfg: cfg}}
}

// Next suspends until the next paragraph is available, the stream
// ends (io.EOF), ctx is cancelled, or a read/parse error occurs.
func (a *AsyncDecoder) Next(ctx context.Context) (RawParagraph, error) {
	if a.done {
		return RawParagraph{}, io.EOF
	}
	for {
		select {
		case <-ctx.Done():
			return RawParagraph{}, ctx.Err()
		case msg, ok := <-a.lines:
			if !ok {
				a.done = true
				return RawParagraph{}, io.EOF
			}
			if msg.err != nil {
				a.done = true
				return RawParagraph{}, msg.err
			}
			para, ready, err := a.acc.feed(msg.line, msg.eof)
			if err == io.EOF {
				a.done = true
				return RawParagraph{}, io.EOF
			}
			if err != nil {
				a.done = true
				return RawParagraph{}, err
			}
			if ready {
				if msg.eof {
					a.done = true
				}
				return para, nil
			}
			if msg.eof {
				a.done = true
				return RawParagraph{}, io.EOF
			}
		}
	}
}
