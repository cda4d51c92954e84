package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Cursor is a forward-only position into an immutable byte slice with
// big-endian fixed-width read methods. A Cursor is owned by a single decode
// call and must not be shared between goroutines.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a Cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position returns the current byte position.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the total length of the underlying data.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// AtEnd reports whether every byte has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.data)
}

// ReadByte reads a single byte and advances the position.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes. The returned slice aliases the
// underlying data. On a short read the cursor still advances past whatever
// was available and a *ShortReadError is returned.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("at position %d: negative read length %d", c.pos, n)
	}
	start := c.pos
	have := len(c.data) - start
	if n > have {
		c.pos = len(c.data)
		return nil, &ShortReadError{Position: start, Want: n, Have: have}
	}
	c.pos += n
	return c.data[start:c.pos:c.pos], nil
}

// ReadU16BE reads a big-endian uint16 (fixed 2 bytes).
func (c *Cursor) ReadU16BE() (uint16, error) {
	buf, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadU32BE reads a big-endian uint32 (fixed 4 bytes).
func (c *Cursor) ReadU32BE() (uint32, error) {
	buf, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadU64BE reads a big-endian uint64 (fixed 8 bytes).
func (c *Cursor) ReadU64BE() (uint64, error) {
	buf, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf), nil
}

// ShortReadError reports a fixed-width read that ran past the end of data.
type ShortReadError struct {
	Position int
	Want     int
	Have     int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("at position %d: need %d bytes, %d remaining", e.Position, e.Want, e.Have)
}

// Unwrap lets callers match short reads against io.ErrUnexpectedEOF.
func (e *ShortReadError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// AsShortRead extracts the ShortReadError from err, if any.
func AsShortRead(err error) (*ShortReadError, bool) {
	var sre *ShortReadError
	if errors.As(err, &sre) {
		return sre, true
	}
	return nil, false
}
