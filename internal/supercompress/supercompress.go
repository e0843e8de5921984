// Package supercompress implements the zlib and zstd supercompression
// schemes KTX2 levels may be wrapped in. Modeled on the archive writer's
// streaming zstd usage, generalized to also cover zlib and to support
// decompression.
package supercompress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
	"github.com/klauspost/compress/zlib"
)

// Scheme identifies a KTX2 supercompressionScheme value.
type Scheme uint32

const (
	None Scheme = 0
	Zstd Scheme = 2
	Zlib Scheme = 3
)

func (s Scheme) String() string {
	switch s {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case Zlib:
		return "zlib"
	default:
		return fmt.Sprintf("scheme(%d)", uint32(s))
	}
}

// DefaultZlibLevel matches the reference writer's choice of zlib level 6.
const DefaultZlibLevel = 6

// Compress encodes data under scheme. None returns data unchanged.
func Compress(scheme Scheme, data []byte, level int) ([]byte, error) {
	switch scheme {
	case None:
		return data, nil
	case Zlib:
		var buf bytes.Buffer
		w, err := zlib.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, fmt.Errorf("supercompress: zlib writer: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("supercompress: zlib write: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("supercompress: zlib close: %w", err)
		}
		return buf.Bytes(), nil
	case Zstd:
		out, err := zstd.CompressLevel(nil, data, level)
		if err != nil {
			return nil, fmt.Errorf("supercompress: zstd compress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("supercompress: unsupported scheme %v", scheme)
	}
}

// Decompress inflates data under scheme. uncompressedLen sizes the
// output buffer; it is advisory for zstd (which records its own
// uncompressed size) and authoritative for the zlib reader.
func Decompress(scheme Scheme, data []byte, uncompressedLen int) ([]byte, error) {
	switch scheme {
	case None:
		return data, nil
	case Zlib:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("supercompress: zlib reader: %w", err)
		}
		defer r.Close()

		out := make([]byte, uncompressedLen)
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, fmt.Errorf("supercompress: zlib inflate: %w", err)
		}
		return out, nil
	case Zstd:
		out, err := zstd.Decompress(make([]byte, 0, uncompressedLen), data)
		if err != nil {
			return nil, fmt.Errorf("supercompress: zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("supercompress: unsupported scheme %v", scheme)
	}
}
