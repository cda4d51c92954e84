package nbt

import "fmt"

// TagType identifies how the value following a tag header is laid out.
type TagType uint8

const (
	TagEnd       TagType = 0
	TagByte      TagType = 1
	TagShort     TagType = 2
	TagInt       TagType = 3
	TagLong      TagType = 4
	TagFloat     TagType = 5
	TagDouble    TagType = 6
	TagByteArray TagType = 7
	TagString    TagType = 8
	TagList      TagType = 9
	TagCompound  TagType = 10
)

var tagNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
}

// Valid reports whether t is one of the defined tag types, End included.
func (t TagType) Valid() bool {
	return t <= TagCompound
}

func (t TagType) String() string {
	if t.Valid() {
		return tagNames[t]
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(t))
}

// Value is a decoded payload. The set of implementations is closed:
// Byte, Short, Int, Long, Float, Double, ByteArray, String, *List and
// *Compound.
type Value interface {
	Type() TagType
	isValue()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
)

func (Byte) Type() TagType      { return TagByte }
func (Short) Type() TagType     { return TagShort }
func (Int) Type() TagType       { return TagInt }
func (Long) Type() TagType      { return TagLong }
func (Float) Type() TagType     { return TagFloat }
func (Double) Type() TagType    { return TagDouble }
func (ByteArray) Type() TagType { return TagByteArray }
func (String) Type() TagType    { return TagString }
func (*List) Type() TagType     { return TagList }
func (*Compound) Type() TagType { return TagCompound }

func (Byte) isValue()      {}
func (Short) isValue()     {}
func (Int) isValue()       {}
func (Long) isValue()      {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (ByteArray) isValue() {}
func (String) isValue()    {}
func (*List) isValue()     {}
func (*Compound) isValue() {}

// List is a homogeneous ordered sequence. Every item has type Elem.
// Elem keeps the raw element type byte from the wire even when the list is
// empty, so an empty list may carry End or an unrecognized type.
type List struct {
	Items []Value
	Elem  TagType
}

// NewList creates an empty list of the given element type.
func NewList(elem TagType, items ...Value) *List {
	return &List{Elem: elem, Items: items}
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Index returns the i-th item, or nil when i is out of range.
func (l *List) Index(i int) Value {
	if l == nil || i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}
