package export

import (
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/nbt"
)

// YAML writes v as a YAML document. Compound entries keep their order and
// byte arrays are written in flow style.
func YAML(w io.Writer, v nbt.Value, opts Options) error {
	enc := yaml.NewEncoder(w)
	indent := opts.indent()
	if indent < 1 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return err
	}
	return enc.Close()
}

func yamlNode(v nbt.Value) *yaml.Node {
	switch node := v.(type) {
	case nbt.Byte:
		return yamlInt(int64(node))
	case nbt.Short:
		return yamlInt(int64(node))
	case nbt.Int:
		return yamlInt(int64(node))
	case nbt.Long:
		return yamlInt(int64(node))
	case nbt.Float:
		return yamlFloat(float64(node), 32)
	case nbt.Double:
		return yamlFloat(float64(node), 64)
	case nbt.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(node)}
	case nbt.ByteArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, b := range node {
			seq.Content = append(seq.Content, yamlInt(int64(b)))
		}
		return seq
	case *nbt.List:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range node.Items {
			seq.Content = append(seq.Content, yamlNode(item))
		}
		return seq
	case *nbt.Compound:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		node.Each(func(name string, child nbt.Value) bool {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
				yamlNode(child))
			return true
		})
		return m
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func yamlInt(n int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n, 10)}
}

func yamlFloat(f float64, bits int) *yaml.Node {
	var s string
	switch {
	case math.IsNaN(f):
		s = ".nan"
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(f, 'g', -1, bits)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}
