package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies how a file's contents are encoded.
type Compression uint8

const (
	// None means the file is searched as is.
	None Compression = iota

	// Gzip means the file is a gzip stream.
	Gzip

	// Zstd means the file is a zstandard stream.
	Zstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", c)
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DetectCompression classifies a file by its extension, then by the magic
// number at the start of data.
func DetectCompression(path string, data []byte) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, gzipMagic) && len(data) >= 10 && data[2] == 8:
		return Gzip
	}
	return None
}

// ErrTooLarge is returned when an inflated file exceeds the configured limit.
var ErrTooLarge = errors.New("scan: inflated data exceeds limit")

// Haystack is one file loaded as a single contiguous byte range.
type Haystack struct {
	Path        string
	Data        []byte
	Compression Compression

	release func() error
}

// Close releases the file mapping. Data must not be used afterwards.
func (h *Haystack) Close() error {
	h.Data = nil
	if h.release == nil {
		return nil
	}
	release := h.release
	h.release = nil
	return release()
}

func noRelease() error { return nil }

// Load maps path into memory. When inflate is set, gzip and zstd files are
// decompressed into a heap buffer of at most limit bytes (no limit when
// limit <= 0) and the mapping is released.
func Load(path string, inflate bool, limit int64) (*Haystack, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	h := &Haystack{Path: path, Data: data, release: release}
	if !inflate {
		return h, nil
	}

	h.Compression = DetectCompression(path, data)
	if h.Compression == None {
		return h, nil
	}

	inflated, err := decompress(h.Compression, data, limit)
	if cerr := h.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("inflating %s: %w", path, err)
	}
	h.Data = inflated
	return h, nil
}

func decompress(c Compression, data []byte, limit int64) ([]byte, error) {
	var r io.Reader
	switch c {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	default:
		return data, nil
	}

	if limit <= 0 {
		return io.ReadAll(r)
	}
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, ErrTooLarge
	}
	return out, nil
}
