package export

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/nbt"
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{}.EncMode()
	if err != nil {
		panic("export: cbor encoder initialization failed: " + err.Error())
	}
}

// CBOR writes v as a single CBOR data item. Compounds become
// indefinite-length maps so entry order survives; lists become
// indefinite-length arrays. Floats keep their width, except NaN which is
// written as the canonical half-precision NaN. Byte arrays become byte
// strings holding the same bits.
func CBOR(w io.Writer, v nbt.Value) error {
	return encodeCBOR(encMode.NewEncoder(w), v)
}

func encodeCBOR(enc *cbor.Encoder, v nbt.Value) error {
	switch node := v.(type) {
	case nbt.Byte:
		return enc.Encode(int8(node))
	case nbt.Short:
		return enc.Encode(int16(node))
	case nbt.Int:
		return enc.Encode(int32(node))
	case nbt.Long:
		return enc.Encode(int64(node))
	case nbt.Float:
		return enc.Encode(float32(node))
	case nbt.Double:
		return enc.Encode(float64(node))
	case nbt.String:
		return enc.Encode(string(node))
	case nbt.ByteArray:
		raw := make([]byte, len(node))
		for i, b := range node {
			raw[i] = byte(b)
		}
		return enc.Encode(raw)
	case *nbt.List:
		if err := enc.StartIndefiniteArray(); err != nil {
			return err
		}
		for _, item := range node.Items {
			if err := encodeCBOR(enc, item); err != nil {
				return err
			}
		}
		return enc.EndIndefinite()
	case *nbt.Compound:
		if err := enc.StartIndefiniteMap(); err != nil {
			return err
		}
		for _, e := range node.Entries() {
			if err := enc.Encode(e.Name); err != nil {
				return err
			}
			if err := encodeCBOR(enc, e.Value); err != nil {
				return err
			}
		}
		return enc.EndIndefinite()
	default:
		return enc.Encode(nil)
	}
}
