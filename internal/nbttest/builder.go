// Package nbttest builds wire-format fixtures for tests.
package nbttest

import (
	"encoding/binary"
	"math"
)

// Builder appends wire bytes. Methods return the Builder so fixtures read
// top to bottom like the data they produce.
type Builder struct {
	buf []byte
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Bytes returns a copy of the accumulated bytes.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Tag appends a tag type byte and a name.
func (b *Builder) Tag(tag byte, name string) *Builder {
	return b.Raw(tag).Str(name)
}

// End appends an End tag.
func (b *Builder) End() *Builder {
	return b.Raw(0)
}

// I8 appends a signed byte.
func (b *Builder) I8(v int8) *Builder {
	return b.Raw(byte(v))
}

// I16 appends a big-endian int16.
func (b *Builder) I16(v int16) *Builder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(v))
	return b
}

// I32 appends a big-endian int32.
func (b *Builder) I32(v int32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(v))
	return b
}

// I64 appends a big-endian int64.
func (b *Builder) I64(v int64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, uint64(v))
	return b
}

// F32 appends a big-endian IEEE-754 single.
func (b *Builder) F32(v float32) *Builder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, math.Float32bits(v))
	return b
}

// F64 appends a big-endian IEEE-754 double.
func (b *Builder) F64(v float64) *Builder {
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// Str appends a length-prefixed string.
func (b *Builder) Str(s string) *Builder {
	return b.I16(int16(len(s))).Raw([]byte(s)...)
}

// ListHeader appends a list element type and count.
func (b *Builder) ListHeader(elem byte, n int32) *Builder {
	return b.Raw(elem).I32(n)
}

// Sample returns a small tree covering every tag type:
//
//	hello (Compound)
//	  name    String "Bananrama"
//	  b       Byte   -1
//	  s       Short  -32768
//	  i       Int    123456
//	  l       Long   -1
//	  f       Float  0.5
//	  d       Double 1.0
//	  bytes   ByteArray [1 -2 3]
//	  ints    List<Int> [1 2 3]
//	  nested  List<Compound> [{id: "a"}, {id: "b"}]
func Sample() []byte {
	return New().
		Tag(10, "hello").
		Tag(8, "name").Str("Bananrama").
		Tag(1, "b").I8(-1).
		Tag(2, "s").I16(-32768).
		Tag(3, "i").I32(123456).
		Tag(4, "l").I64(-1).
		Tag(5, "f").F32(0.5).
		Tag(6, "d").F64(1.0).
		Tag(7, "bytes").I32(3).I8(1).I8(-2).I8(3).
		Tag(9, "ints").ListHeader(3, 3).I32(1).I32(2).I32(3).
		Tag(9, "nested").ListHeader(10, 2).
		Tag(8, "id").Str("a").End().
		Tag(8, "id").Str("b").End().
		End().
		Bytes()
}
