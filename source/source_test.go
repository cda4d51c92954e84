package source_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	nbterrors "github.com/wippyai/nbt/errors"
	"github.com/wippyai/nbt/internal/nbttest"
	"github.com/wippyai/nbt/source"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zlibbed(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	raw := nbttest.Sample()
	tests := []struct {
		name string
		data []byte
		want source.Compression
	}{
		{"raw", raw, source.CompressionNone},
		{"gzip", gzipped(t, raw), source.CompressionGzip},
		{"zlib", zlibbed(t, raw), source.CompressionZlib},
		{"empty", nil, source.CompressionNone},
		{"single byte", []byte{0x1f}, source.CompressionNone},
		{"zlib bad check", []byte{0x78, 0x00}, source.CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := source.Detect(tt.data); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadUnwraps(t *testing.T) {
	raw := nbttest.Sample()
	for _, input := range [][]byte{raw, gzipped(t, raw), zlibbed(t, raw)} {
		got, c, err := source.Read(bytes.NewReader(input))
		if err != nil {
			t.Fatalf("Read(%v): %v", source.Detect(input), err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("Read(%v): payload mismatch", c)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.dat")
	if err := os.WriteFile(path, gzipped(t, nbttest.Sample()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, c, err := source.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != source.CompressionGzip {
		t.Errorf("compression = %v, want gzip", c)
	}
	if !bytes.Equal(data, nbttest.Sample()) {
		t.Error("payload mismatch")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := source.Load(filepath.Join(t.TempDir(), "missing.dat"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if !errors.Is(err, &nbterrors.Error{Phase: nbterrors.PhaseLoad, Kind: nbterrors.KindInvalidData}) {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestCorruptGzip(t *testing.T) {
	data := gzipped(t, nbttest.Sample())
	data = data[:len(data)/2]
	if _, _, err := source.Read(bytes.NewReader(data)); err == nil {
		t.Error("expected error for truncated gzip stream")
	}
}

func TestMaxSize(t *testing.T) {
	raw := nbttest.Sample()
	l := source.Loader{MaxSize: int64(len(raw) - 1)}

	_, _, err := l.Read(bytes.NewReader(raw))
	if !errors.Is(err, &nbterrors.Error{Phase: nbterrors.PhaseLoad, Kind: nbterrors.KindInvalidInput}) {
		t.Errorf("raw over limit: got %v", err)
	}

	_, _, err = l.Read(bytes.NewReader(gzipped(t, raw)))
	if !errors.Is(err, &nbterrors.Error{Phase: nbterrors.PhaseLoad, Kind: nbterrors.KindInvalidInput}) {
		t.Errorf("decompressed over limit: got %v", err)
	}

	exact := source.Loader{MaxSize: int64(len(raw))}
	if _, _, err := exact.Read(bytes.NewReader(raw)); err != nil {
		t.Errorf("exact limit: %v", err)
	}

	unlimited := source.Loader{}
	if _, _, err := unlimited.Read(bytes.NewReader(raw)); err != nil {
		t.Errorf("no limit: %v", err)
	}
}

func TestDecode(t *testing.T) {
	root, err := source.Decode(bytes.NewReader(gzipped(t, nbttest.Sample())))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !root.Has("hello") {
		t.Errorf("keys = %v", root.Keys())
	}
}

func TestCompressionString(t *testing.T) {
	if source.CompressionZlib.String() != "zlib" {
		t.Errorf("zlib = %q", source.CompressionZlib.String())
	}
	if source.Compression(9).String() != "unknown(9)" {
		t.Errorf("9 = %q", source.Compression(9).String())
	}
}
