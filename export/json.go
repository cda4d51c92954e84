package export

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/nbt"
)

// JSON writes v as JSON. Compound entries keep their order. Integers are
// written exactly, including Longs outside the float64-safe range. Floats
// use the shortest representation for their width; NaN and infinities
// become the strings "NaN", "+Inf" and "-Inf".
func JSON(w io.Writer, v nbt.Value, opts Options) error {
	var buf bytes.Buffer
	if err := appendJSON(&buf, v); err != nil {
		return err
	}

	if n := opts.indent(); n > 0 {
		var out bytes.Buffer
		if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", n)); err != nil {
			return err
		}
		buf = out
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func appendJSON(buf *bytes.Buffer, v nbt.Value) error {
	switch node := v.(type) {
	case nbt.Byte:
		buf.WriteString(strconv.FormatInt(int64(node), 10))
	case nbt.Short:
		buf.WriteString(strconv.FormatInt(int64(node), 10))
	case nbt.Int:
		buf.WriteString(strconv.FormatInt(int64(node), 10))
	case nbt.Long:
		buf.WriteString(strconv.FormatInt(int64(node), 10))
	case nbt.Float:
		appendJSONFloat(buf, float64(node), 32)
	case nbt.Double:
		appendJSONFloat(buf, float64(node), 64)
	case nbt.String:
		return appendJSONString(buf, string(node))
	case nbt.ByteArray:
		buf.WriteByte('[')
		for i, b := range node {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatInt(int64(b), 10))
		}
		buf.WriteByte(']')
	case *nbt.List:
		buf.WriteByte('[')
		for i, item := range node.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *nbt.Compound:
		buf.WriteByte('{')
		first := true
		var err error
		node.Each(func(name string, child nbt.Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err = appendJSONString(buf, name); err != nil {
				return false
			}
			buf.WriteByte(':')
			err = appendJSON(buf, child)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func appendJSONFloat(buf *bytes.Buffer, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"+Inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-Inf"`)
	default:
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
