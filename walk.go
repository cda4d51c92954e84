package nbt

import "strconv"

// WalkFunc is called for every value visited by Walk. path names the
// value: compound entry names and list indexes from the root down. The
// slice is reused between calls. Returning false skips the children of v.
type WalkFunc func(path []string, v Value) bool

// Walk visits v and its descendants depth first in iteration order. The
// root itself is visited with an empty path.
func Walk(v Value, fn WalkFunc) {
	walk(make([]string, 0, 16), v, fn)
}

func walk(path []string, v Value, fn WalkFunc) {
	if !fn(path, v) {
		return
	}
	switch node := v.(type) {
	case *Compound:
		node.Each(func(name string, child Value) bool {
			walk(append(path, name), child, fn)
			return true
		})
	case *List:
		for i, child := range node.Items {
			walk(append(path, strconv.Itoa(i)), child, fn)
		}
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Counts   [TagCompound + 1]int
	MaxDepth int
	Values   int
}

// Count returns how many values of type t were seen.
func (s Stats) Count(t TagType) int {
	if !t.Valid() {
		return 0
	}
	return s.Counts[t]
}

// Summarize counts the values of each type below and including v. The
// root is depth 0.
func Summarize(v Value) Stats {
	var s Stats
	Walk(v, func(path []string, node Value) bool {
		if node == nil {
			return false
		}
		s.Values++
		s.Counts[node.Type()]++
		if len(path) > s.MaxDepth {
			s.MaxDepth = len(path)
		}
		return true
	})
	return s
}

// ToNative converts v into plain Go values: integers and floats keep their
// width, ByteArray becomes []int8, List becomes []any and Compound becomes
// map[string]any. Compound order is lost.
func ToNative(v Value) any {
	switch node := v.(type) {
	case Byte:
		return int8(node)
	case Short:
		return int16(node)
	case Int:
		return int32(node)
	case Long:
		return int64(node)
	case Float:
		return float32(node)
	case Double:
		return float64(node)
	case ByteArray:
		return []int8(node)
	case String:
		return string(node)
	case *List:
		out := make([]any, len(node.Items))
		for i, item := range node.Items {
			out[i] = ToNative(item)
		}
		return out
	case *Compound:
		out := make(map[string]any, node.Len())
		node.Each(func(name string, child Value) bool {
			out[name] = ToNative(child)
			return true
		})
		return out
	default:
		return nil
	}
}
