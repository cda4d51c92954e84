package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestCursorReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	c := NewCursor(data)

	for i, want := range data {
		if c.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, c.Position(), i)
		}
		b, err := c.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if !c.AtEnd() {
		t.Error("expected cursor at end")
	}

	_, err := c.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestCursorReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	c := NewCursor(data)

	got, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}
	if c.Position() != 3 || c.Remaining() != 2 {
		t.Errorf("position=%d remaining=%d, want 3 and 2", c.Position(), c.Remaining())
	}

	got, err = c.ReadBytes(0)
	if err != nil || len(got) != 0 {
		t.Errorf("ReadBytes(0) = %v, %v", got, err)
	}
	if c.Position() != 3 {
		t.Errorf("ReadBytes(0) moved cursor to %d", c.Position())
	}
}

func TestCursorShortReadAdvances(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x01})

	_, err := c.ReadBytes(4)
	if err == nil {
		t.Fatal("expected error for reading past end")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	sre, ok := AsShortRead(err)
	if !ok {
		t.Fatalf("expected ShortReadError, got %T", err)
	}
	if sre.Position != 0 || sre.Want != 4 || sre.Have != 2 {
		t.Errorf("ShortReadError = %+v", sre)
	}
	if !c.AtEnd() {
		t.Errorf("cursor should advance past available bytes, position %d", c.Position())
	}
}

func TestCursorNegativeLength(t *testing.T) {
	c := NewCursor([]byte{0x00})
	if _, err := c.ReadBytes(-1); err == nil {
		t.Error("expected error for negative length")
	}
	if c.Position() != 0 {
		t.Errorf("position moved to %d", c.Position())
	}
}

func TestCursorBigEndian(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(c *Cursor) (uint64, error)
		want uint64
	}{
		{
			name: "u16",
			data: []byte{0x12, 0x34},
			read: func(c *Cursor) (uint64, error) { v, err := c.ReadU16BE(); return uint64(v), err },
			want: 0x1234,
		},
		{
			name: "u32",
			data: []byte{0x80, 0x00, 0x00, 0x01},
			read: func(c *Cursor) (uint64, error) { v, err := c.ReadU32BE(); return uint64(v), err },
			want: 0x80000001,
		},
		{
			name: "u64",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
			read: func(c *Cursor) (uint64, error) { return c.ReadU64BE() },
			want: 0x0102030405060708,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			got, err := tt.read(c)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got != tt.want {
				t.Errorf("got 0x%x, want 0x%x", got, tt.want)
			}
			if !c.AtEnd() {
				t.Errorf("expected all %d bytes consumed", len(tt.data))
			}
		})
	}
}

func TestCursorBigEndianTruncated(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x01})
	if _, err := c.ReadU32BE(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadU32BE on 3 bytes: got %v", err)
	}
}
