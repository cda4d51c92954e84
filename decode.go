package nbt

import (
	"fmt"
	"strconv"

	"github.com/wippyai/nbt/errors"
	"github.com/wippyai/nbt/internal/binary"
)

// Decode failures. Match with errors.Is; the concrete error is an
// *errors.Error carrying the byte offset and entry path.
var (
	ErrUnexpectedEndOfStream error = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnexpectedEOF}
	ErrUnknownTagType        error = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnknownTag}
	ErrTooDeep               error = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData}
)

// DefaultMaxDepth is the number of nested lists and compounds accepted
// below the root unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 512

type options struct {
	observer Observer
	order    ByteOrder
	maxDepth int
}

// Option configures a decode call.
type Option func(*options)

// WithObserver installs an Observer for trace points. nil restores the
// no-op observer.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o == nil {
			o = NopObserver{}
		}
		opts.observer = o
	}
}

// WithByteOrder overrides the host byte order used to reinterpret
// floating point payloads.
func WithByteOrder(order ByteOrder) Option {
	return func(opts *options) {
		opts.order = order
	}
}

// WithMaxDepth limits how many lists and compounds may nest below the
// root. Deeper input fails with ErrTooDeep. n <= 0 restores
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(opts *options) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		opts.maxDepth = n
	}
}

// Decode decodes data as a sequence of named entries and returns them as
// the root compound. The root has no tag type or name of its own; decoding
// stops at the end of data or at a top-level End tag.
func Decode(data []byte) (*Compound, error) {
	return DecodeWith(data)
}

// DecodeWith is Decode with options.
func DecodeWith(data []byte, opts ...Option) (*Compound, error) {
	cfg := options{observer: NopObserver{}, order: HostByteOrder(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &decoder{
		cur:      binary.NewCursor(data),
		obs:      cfg.observer,
		order:    cfg.order,
		maxDepth: cfg.maxDepth,
	}
	root, err := d.readCompound()
	if err != nil {
		return nil, err
	}
	return root, nil
}

// decoder holds the state of one decode pass.
type decoder struct {
	cur      *binary.Cursor
	obs      Observer
	path     []string
	order    ByteOrder
	depth    int
	maxDepth int
}

func (d *decoder) readCompound() (*Compound, error) {
	c := NewCompound()
	for {
		more, err := d.readNamedEntry(c)
		if err != nil {
			return nil, err
		}
		if !more {
			return c, nil
		}
	}
}

// readNamedEntry reads one tag type byte, name and value into dst. It
// returns false without error at end of data or on an End tag.
func (d *decoder) readNamedEntry(dst *Compound) (bool, error) {
	off := d.cur.Position()
	d.obs.EntryStart(off, d.path)

	if d.cur.AtEnd() {
		d.obs.Terminated(off, d.path, EndOfStream)
		return false, nil
	}

	b, err := d.cur.ReadByte()
	if err != nil {
		return false, d.wrap(err, off)
	}
	tag := TagType(b)
	if tag == TagEnd {
		d.obs.Terminated(off, d.path, EndTag)
		return false, nil
	}
	if !tag.Valid() {
		return false, errors.UnknownTag(d.path, off, b)
	}

	name, err := d.readString()
	if err != nil {
		return false, err
	}

	d.path = append(d.path, name)
	d.obs.TagResolved(d.cur.Position(), d.path, tag, name)
	v, err := d.readValue(tag)
	d.path = d.path[:len(d.path)-1]
	if err != nil {
		return false, err
	}

	dst.Set(name, v)
	return true, nil
}

// readValue decodes one payload of type t.
func (d *decoder) readValue(t TagType) (Value, error) {
	switch t {
	case TagByte:
		v, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return Byte(v), nil

	case TagShort:
		v, err := d.readShort()
		if err != nil {
			return nil, err
		}
		return Short(v), nil

	case TagInt:
		v, err := d.readInt()
		if err != nil {
			return nil, err
		}
		return Int(v), nil

	case TagLong:
		off := d.cur.Position()
		raw, err := d.cur.ReadU64BE()
		if err != nil {
			return nil, d.wrap(err, off)
		}
		return Long(int64(raw)), nil

	case TagFloat:
		off := d.cur.Position()
		buf, err := d.cur.ReadBytes(4)
		if err != nil {
			return nil, d.wrap(err, off)
		}
		return Float(Float32FromWire([4]byte(buf), d.order)), nil

	case TagDouble:
		off := d.cur.Position()
		buf, err := d.cur.ReadBytes(8)
		if err != nil {
			return nil, d.wrap(err, off)
		}
		return Double(Float64FromWire([8]byte(buf), d.order)), nil

	case TagByteArray:
		n, err := d.readInt()
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return ByteArray{}, nil
		}
		off := d.cur.Position()
		buf, err := d.cur.ReadBytes(int(n))
		if err != nil {
			return nil, d.wrap(err, off)
		}
		arr := make(ByteArray, len(buf))
		for i, b := range buf {
			arr[i] = int8(b)
		}
		return arr, nil

	case TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case TagList:
		if err := d.enter(); err != nil {
			return nil, err
		}
		defer d.leave()
		return d.readList()

	case TagCompound:
		if err := d.enter(); err != nil {
			return nil, err
		}
		defer d.leave()
		return d.readCompound()

	case TagEnd:
		// End only ever terminates a compound; it has no payload.
		return nil, errors.UnknownTag(d.path, d.cur.Position(), byte(t))

	default:
		return nil, errors.UnknownTag(d.path, d.cur.Position(), byte(t))
	}
}

func (d *decoder) readList() (*List, error) {
	elem, err := d.readByte()
	if err != nil {
		return nil, err
	}
	n, err := d.readInt()
	if err != nil {
		return nil, err
	}

	l := &List{Elem: TagType(uint8(elem))}
	if n <= 0 {
		return l, nil
	}
	// Every element takes at least one byte except End, which is rejected
	// by readValue, so the remaining input bounds the useful capacity.
	l.Items = make([]Value, 0, min(int(n), d.cur.Remaining()))

	for i := 0; i < int(n); i++ {
		if d.cur.AtEnd() {
			d.obs.Terminated(d.cur.Position(), d.path, ListTruncated)
			break
		}
		d.path = append(d.path, strconv.Itoa(i))
		v, err := d.readValue(l.Elem)
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return nil, err
		}
		l.Items = append(l.Items, v)
	}
	return l, nil
}

// enter accounts for one more level of nesting.
func (d *decoder) enter() error {
	if d.depth >= d.maxDepth {
		err := errors.InvalidData(errors.PhaseDecode, d.path,
			fmt.Sprintf("nesting deeper than %d levels", d.maxDepth))
		err.Offset = d.cur.Position()
		err.Value = d.maxDepth
		return err
	}
	d.depth++
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

func (d *decoder) readByte() (int8, error) {
	off := d.cur.Position()
	b, err := d.cur.ReadByte()
	if err != nil {
		return 0, d.wrap(err, off)
	}
	return int8(b), nil
}

// readShort reads a big-endian 16-bit value. Converting the unsigned wire
// value to int16 subtracts 2^16 from raw values of 2^15 and above.
func (d *decoder) readShort() (int16, error) {
	off := d.cur.Position()
	raw, err := d.cur.ReadU16BE()
	if err != nil {
		return 0, d.wrap(err, off)
	}
	return int16(raw), nil
}

func (d *decoder) readInt() (int32, error) {
	off := d.cur.Position()
	raw, err := d.cur.ReadU32BE()
	if err != nil {
		return 0, d.wrap(err, off)
	}
	return int32(raw), nil
}

// readString reads a Short length followed by that many raw bytes. A zero
// or negative length yields "" without consuming anything further.
func (d *decoder) readString() (string, error) {
	n, err := d.readShort()
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return "", nil
	}
	off := d.cur.Position()
	buf, err := d.cur.ReadBytes(int(n))
	if err != nil {
		return "", d.wrap(err, off)
	}
	return string(buf), nil
}

// wrap converts a cursor failure into a structured decode error.
func (d *decoder) wrap(err error, off int) error {
	if sre, ok := binary.AsShortRead(err); ok {
		return errors.UnexpectedEOF(d.path, sre.Position, sre.Want, sre.Have)
	}
	return errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).
		Path(clonePath(d.path)...).
		Offset(off).
		Detail("need 1 byte, 0 remaining").
		Cause(err).
		Build()
}

func clonePath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}
