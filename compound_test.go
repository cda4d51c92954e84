package nbt_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/wippyai/nbt"
	nbterrors "github.com/wippyai/nbt/errors"
)

func TestCompoundSetOrder(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("x", nbt.Int(1))
	c.Set("y", nbt.Int(2))
	c.Set("z", nbt.Int(3))
	c.Set("x", nbt.Int(4))

	if got := c.Keys(); !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Errorf("Keys = %v", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if v, _ := c.GetInt("x"); v != 4 {
		t.Errorf("x = %d, want 4", v)
	}
	if v, _ := c.GetInt("y"); v != 2 {
		t.Errorf("y = %d, want 2", v)
	}
	if v, _ := c.GetInt("z"); v != 3 {
		t.Errorf("z = %d, want 3", v)
	}
}

func TestCompoundOverwriteChangesType(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Int(1))
	c.Set("b", nbt.Int(2))
	c.Set("a", nbt.String("nine"))

	if got := c.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys = %v", got)
	}
	if _, ok := c.GetInt("a"); ok {
		t.Error("old Int value should be gone")
	}
	if s, ok := c.GetString("a"); !ok || s != "nine" {
		t.Errorf("a = %q, %v", s, ok)
	}
	entries := c.Entries()
	if entries[0].Name != "a" || entries[0].Value != nbt.String("nine") {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestCompoundZeroValue(t *testing.T) {
	var c nbt.Compound
	c.Set("a", nbt.Byte(1))
	if !c.Has("a") || c.Len() != 1 {
		t.Errorf("zero Compound should be usable")
	}

	var nilc *nbt.Compound
	if nilc.Len() != 0 || nilc.Has("a") || nilc.Keys() != nil {
		t.Error("nil Compound should read as empty")
	}
}

func TestCompoundTypedAccessorsMismatch(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("i", nbt.Int(1))

	if _, ok := c.GetString("i"); ok {
		t.Error("GetString on Int should fail")
	}
	if _, ok := c.GetLong("i"); ok {
		t.Error("GetLong on Int should fail")
	}
	if _, ok := c.GetCompound("missing"); ok {
		t.Error("GetCompound on missing should fail")
	}
}

func TestCompoundEachStops(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Byte(1))
	c.Set("b", nbt.Byte(2))
	c.Set("c", nbt.Byte(3))

	var seen []string
	c.Each(func(name string, _ nbt.Value) bool {
		seen = append(seen, name)
		return name != "b"
	})
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestCompoundEntriesIsCopy(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("a", nbt.Byte(1))
	entries := c.Entries()
	entries[0].Name = "mutated"
	if !c.Has("a") || c.Keys()[0] != "a" {
		t.Error("Entries aliased internal storage")
	}
}

func TestLookup(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("id", nbt.String("stone"))
	root := nbt.NewCompound()
	root.Set("items", nbt.NewList(nbt.TagCompound, inner))
	root.Set("count", nbt.Int(3))

	tests := []struct {
		path string
		want nbt.Value
		kind nbterrors.Kind
	}{
		{path: "count", want: nbt.Int(3)},
		{path: "items.0.id", want: nbt.String("stone")},
		{path: "items.1", kind: nbterrors.KindNotFound},
		{path: "items.x", kind: nbterrors.KindNotFound},
		{path: "missing", kind: nbterrors.KindNotFound},
		{path: "count.x", kind: nbterrors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := root.Lookup(tt.path)
			if tt.kind != "" {
				var e *nbterrors.Error
				if !errors.As(err, &e) || e.Kind != tt.kind {
					t.Fatalf("Lookup err = %v, want kind %s", err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	_, err := root.Lookup("items.5")
	var e *nbterrors.Error
	if !errors.As(err, &e) || !slices.Equal(e.Path, []string{"items", "5"}) || e.Value != "5" {
		t.Fatalf("Lookup(items.5) = %v", err)
	}
	if !strings.Contains(e.Detail, "length 1") {
		t.Errorf("Detail = %q", e.Detail)
	}

	self, err := root.Lookup("")
	if err != nil || self != nbt.Value(root) {
		t.Errorf("empty path should return root, got %v %v", self, err)
	}
}

func TestTagTypeString(t *testing.T) {
	if nbt.TagCompound.String() != "Compound" {
		t.Errorf("TagCompound = %q", nbt.TagCompound.String())
	}
	if nbt.TagType(11).Valid() {
		t.Error("11 should be invalid")
	}
	if got := nbt.TagType(0xff).String(); got != "Unknown(0xff)" {
		t.Errorf("0xff = %q", got)
	}
}
