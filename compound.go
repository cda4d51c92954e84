package nbt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wippyai/nbt/errors"
)

// Entry is one named value of a Compound.
type Entry struct {
	Value Value
	Name  string
}

// Compound is a mapping from names to values that preserves insertion
// order. Setting an existing name replaces its value in place; the entry
// keeps the position of its first write.
type Compound struct {
	index   map[string]int
	entries []Entry
}

// NewCompound creates an empty Compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Set stores v under name, replacing the value of an existing entry.
func (c *Compound) Set(name string, v Value) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.entries[i].Value = v
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Value: v})
}

// Get returns the value stored under name.
func (c *Compound) Get(name string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].Value, true
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Keys returns the entry names in iteration order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Name
	}
	return keys
}

// Entries returns a copy of the entries in iteration order.
func (c *Compound) Entries() []Entry {
	if c == nil {
		return nil
	}
	return slices.Clone(c.entries)
}

// Each calls fn for every entry in order until fn returns false.
func (c *Compound) Each(fn func(name string, v Value) bool) {
	if c == nil {
		return
	}
	for _, e := range c.entries {
		if !fn(e.Name, e.Value) {
			return
		}
	}
}

// Lookup resolves a dot separated path. Path segments select compound
// entries by name and list items by decimal index:
//
//	root.Lookup("Level.Sections.0.Y")
//
// An empty path returns c itself.
func (c *Compound) Lookup(path string) (Value, error) {
	if path == "" {
		return c, nil
	}
	return LookupPath(c, strings.Split(path, "."))
}

// LookupPath resolves pre-split path segments starting at v.
func LookupPath(v Value, segments []string) (Value, error) {
	cur := v
	for i, seg := range segments {
		switch node := cur.(type) {
		case *Compound:
			next, ok := node.Get(seg)
			if !ok {
				return nil, errors.NotFound(errors.PhaseDecode, segments[:i+1], "entry", seg)
			}
			cur = next
		case *List:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= node.Len() {
				nf := errors.NotFound(errors.PhaseDecode, segments[:i+1], "list index", seg)
				nf.Detail += fmt.Sprintf(" (length %d)", node.Len())
				return nil, nf
			}
			cur = node.Items[idx]
		default:
			got := "nil"
			if cur != nil {
				got = cur.Type().String()
			}
			return nil, errors.TypeMismatch(errors.PhaseDecode, segments[:i+1], "Compound or List", got)
		}
	}
	return cur, nil
}

func getAs[T Value](c *Compound, name string) (T, bool) {
	v, ok := c.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// GetByte returns the Byte entry name.
func (c *Compound) GetByte(name string) (int8, bool) {
	v, ok := getAs[Byte](c, name)
	return int8(v), ok
}

// GetShort returns the Short entry name.
func (c *Compound) GetShort(name string) (int16, bool) {
	v, ok := getAs[Short](c, name)
	return int16(v), ok
}

// GetInt returns the Int entry name.
func (c *Compound) GetInt(name string) (int32, bool) {
	v, ok := getAs[Int](c, name)
	return int32(v), ok
}

// GetLong returns the Long entry name.
func (c *Compound) GetLong(name string) (int64, bool) {
	v, ok := getAs[Long](c, name)
	return int64(v), ok
}

// GetFloat returns the Float entry name.
func (c *Compound) GetFloat(name string) (float32, bool) {
	v, ok := getAs[Float](c, name)
	return float32(v), ok
}

// GetDouble returns the Double entry name.
func (c *Compound) GetDouble(name string) (float64, bool) {
	v, ok := getAs[Double](c, name)
	return float64(v), ok
}

// GetByteArray returns the ByteArray entry name.
func (c *Compound) GetByteArray(name string) ([]int8, bool) {
	v, ok := getAs[ByteArray](c, name)
	return []int8(v), ok
}

// GetString returns the String entry name.
func (c *Compound) GetString(name string) (string, bool) {
	v, ok := getAs[String](c, name)
	return string(v), ok
}

// GetList returns the List entry name.
func (c *Compound) GetList(name string) (*List, bool) {
	return getAs[*List](c, name)
}

// GetCompound returns the Compound entry name.
func (c *Compound) GetCompound(name string) (*Compound, bool) {
	return getAs[*Compound](c, name)
}
