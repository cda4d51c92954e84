package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/nbt"
)

// maxInlineBytes limits how many byte array elements Text prints.
const maxInlineBytes = 16

// Text writes an indented listing, one value per line:
//
//	hello: Compound (2 entries)
//	  name: String "Bananrama"
//	  ints: List<Int> (3 items)
//	    0: Int 1
func Text(w io.Writer, v nbt.Value, opts Options) error {
	bw := bufio.NewWriter(w)
	indent := opts.indent()
	if indent < 0 {
		indent = 0
	}
	rootName := opts.Name
	if rootName == "" {
		rootName = "<root>"
	}

	nbt.Walk(v, func(path []string, node nbt.Value) bool {
		name := rootName
		if len(path) > 0 {
			name = path[len(path)-1]
		}
		bw.WriteString(strings.Repeat(" ", indent*len(path)))
		bw.WriteString(name)
		bw.WriteString(": ")
		bw.WriteString(Describe(node))
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

// Describe renders a single value without its children.
func Describe(v nbt.Value) string {
	switch node := v.(type) {
	case nbt.Byte, nbt.Short, nbt.Int, nbt.Long:
		return fmt.Sprintf("%s %d", v.Type(), node)
	case nbt.Float:
		return "Float " + strconv.FormatFloat(float64(node), 'g', -1, 32)
	case nbt.Double:
		return "Double " + strconv.FormatFloat(float64(node), 'g', -1, 64)
	case nbt.String:
		return "String " + strconv.Quote(string(node))
	case nbt.ByteArray:
		return describeBytes(node)
	case *nbt.List:
		return fmt.Sprintf("List<%s> (%d %s)", node.Elem, node.Len(), plural(node.Len(), "item", "items"))
	case *nbt.Compound:
		return fmt.Sprintf("Compound (%d %s)", node.Len(), plural(node.Len(), "entry", "entries"))
	default:
		return "<nil>"
	}
}

func describeBytes(arr nbt.ByteArray) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ByteArray (%d) [", len(arr))
	for i, v := range arr {
		if i == maxInlineBytes {
			b.WriteString(" ...")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
