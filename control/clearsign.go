package control

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors surfaced by ClearsignReader. This package never
// links against a PGP library; verify is supplied by the caller.
var (
	ErrNoValidSignatures   = errors.New("control: no valid OpenPGP signatures")
	ErrNoConfiguredKeyring = errors.New("control: no keyring configured to verify signatures")
)

// ClearsignReader wraps r, which is expected to contain an
// OpenPGP clearsigned document, and returns a Reader over the
// de-clearsigned body. verify is called with the full clearsigned
// input and must return the verified plaintext body, or an error
// (typically wrapping ErrNoValidSignatures or
// ErrNoConfiguredKeyring). This lets a caller plug in
// golang.org/x/crypto/openpgp (or any successor) without this package
// depending on a PGP implementation itself.
func ClearsignReader(r io.Reader, verify func([]byte) ([]byte, error)) io.Reader {
	return &clearsignReader{src: r, verify: verify}
}

type clearsignReader struct {
	src    io.Reader
	verify func([]byte) ([]byte, error)
	body   *bytes.Reader
	err    error
}

func (c *clearsignReader) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if c.body == nil {
		raw, err := io.ReadAll(c.src)
		if err != nil {
			c.err = fmt.Errorf("control: reading clearsigned input: %w", err)
			return 0, c.err
		}
		plain, err := c.verify(raw)
		if err != nil {
			c.err = err
			return 0, c.err
		}
		c.body = bytes.NewReader(plain)
	}
	return c.body.Read(p)
}
