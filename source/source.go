package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"github.com/wippyai/nbt"
	"github.com/wippyai/nbt/errors"
)

// Compression identifies the wrapping around raw tag data.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZlib
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// DefaultMaxSize bounds the decompressed size accepted by the package-level
// functions.
const DefaultMaxSize = 256 << 20

// Detect sniffs the wrapping of data. Both magic numbers start with a byte
// that is not a valid tag type, so raw tag data is never misdetected.
func Detect(data []byte) Compression {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return CompressionGzip
	}
	if len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return CompressionZlib
	}
	return CompressionNone
}

// Loader reads tag data from files and streams.
type Loader struct {
	// MaxSize is the largest accepted payload after decompression.
	// Zero means no limit.
	MaxSize int64
}

// DefaultLoader is used by the package-level functions.
var DefaultLoader = Loader{MaxSize: DefaultMaxSize}

// Load reads the file at path with DefaultLoader.
func Load(path string) ([]byte, Compression, error) {
	return DefaultLoader.Load(path)
}

// Read reads r to the end with DefaultLoader.
func Read(r io.Reader) ([]byte, Compression, error) {
	return DefaultLoader.Read(r)
}

// Decode reads r with DefaultLoader and decodes the result.
func Decode(r io.Reader, opts ...nbt.Option) (*nbt.Compound, error) {
	return DefaultLoader.Decode(r, opts...)
}

// Load reads the file at path, removing any gzip or zlib wrapping.
func (l Loader) Load(path string) ([]byte, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompressionNone, errors.Load(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	data, c, err := l.Read(f)
	if err != nil {
		return nil, c, err
	}
	Logger().Debug("loaded file",
		zap.String("path", path),
		zap.Stringer("compression", c),
		zap.Int("size", len(data)))
	return data, c, nil
}

// Read reads r to the end, removing any gzip or zlib wrapping.
func (l Loader) Read(r io.Reader) ([]byte, Compression, error) {
	raw, err := l.readAll(r)
	if err != nil {
		return nil, CompressionNone, errors.Load("read input", err)
	}
	return l.Unwrap(raw)
}

// Unwrap removes gzip or zlib wrapping from raw. Unwrapped input is
// returned as is.
func (l Loader) Unwrap(raw []byte) ([]byte, Compression, error) {
	c := Detect(raw)

	var (
		zr  io.ReadCloser
		err error
	)
	switch c {
	case CompressionGzip:
		zr, err = gzip.NewReader(bytes.NewReader(raw))
	case CompressionZlib:
		zr, err = zlib.NewReader(bytes.NewReader(raw))
	default:
		return raw, CompressionNone, nil
	}
	if err != nil {
		return nil, c, errors.Load(fmt.Sprintf("open %s stream", c), err)
	}
	defer zr.Close()

	data, err := l.readAll(zr)
	if err != nil {
		return nil, c, errors.Load(fmt.Sprintf("decompress %s stream", c), err)
	}
	Logger().Debug("unwrapped input",
		zap.Stringer("compression", c),
		zap.Int("compressed", len(raw)),
		zap.Int("size", len(data)))
	return data, c, nil
}

// Decode reads r and decodes the result.
func (l Loader) Decode(r io.Reader, opts ...nbt.Option) (*nbt.Compound, error) {
	data, _, err := l.Read(r)
	if err != nil {
		return nil, err
	}
	return nbt.DecodeWith(data, opts...)
}

func (l Loader) readAll(r io.Reader) ([]byte, error) {
	if l.MaxSize <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, l.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.MaxSize {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Value(l.MaxSize).
			Detail("input exceeds %d bytes", l.MaxSize).
			Build()
	}
	return data, nil
}
