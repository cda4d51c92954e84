package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/wippyai/nbt"
	"github.com/wippyai/nbt/errors"
)

// Format is an output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

func (f Format) String() string {
	return string(f)
}

// Binary reports whether the format writes non-text output.
func (f Format) Binary() bool {
	return f == FormatCBOR
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.PhaseExport, errors.KindUnsupported).
		Value(name).
		Detail("unknown format %q", name).
		Build()
}

// Options control text layouts. Indent is ignored by CBOR.
type Options struct {
	// Name labels the top-level value in the text format.
	Name string
	// Indent is the number of spaces per nesting level; zero picks 2.
	// A negative Indent gives compact JSON.
	Indent int
}

func (o Options) indent() int {
	if o.Indent == 0 {
		return 2
	}
	return o.Indent
}

// Write renders v to w in format f.
func Write(w io.Writer, f Format, v nbt.Value, opts Options) error {
	var err error
	switch f {
	case FormatText:
		err = Text(w, v, opts)
	case FormatJSON:
		err = JSON(w, v, opts)
	case FormatYAML:
		err = YAML(w, v, opts)
	case FormatCBOR:
		err = CBOR(w, v)
	default:
		return errors.Unsupported(errors.PhaseExport, fmt.Sprintf("format %q", f))
	}
	if err != nil {
		return errors.Wrap(errors.PhaseExport, errors.KindInvalidData, err, fmt.Sprintf("write %s", f))
	}
	return nil
}
