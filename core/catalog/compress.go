package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how a catalog blob is wrapped on disk.
type Compression string

// Supported compressions.
const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	// gzip magic plus the deflate method byte; an uncompressed catalog would
	// need over half a million entries to start with these bytes.
	gzipMagic = []byte{0x1f, 0x8b, 0x08}
)

// MaxDecompressedSize caps the inflated size of a compressed catalog at
// 16 bytes per possible id (256 MiB).
const MaxDecompressedSize = (MaxID + 1) * 16

// ParseCompression parses a compression name. The empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip, CompressionZstd:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Detect reports the compression of data from its leading magic bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Open decompresses data if needed and decodes the catalog.
func Open(data []byte) (*Index, error) {
	raw, err := Decompress(data, MaxDecompressedSize)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// EncodeCompressed serializes ix and wraps it with the given compression.
func EncodeCompressed(ix *Index, c Compression) ([]byte, error) {
	raw, err := Encode(ix)
	if err != nil {
		return nil, err
	}

	switch c {
	case "", CompressionNone:
		return raw, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil

	case CompressionGzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip writer: %w", err)
		}
		if _, err := zw.Write(raw); err != nil {
			return nil, fmt.Errorf("failed to gzip catalog: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("failed to gzip catalog: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
	}
}

// Decompress unwraps data according to its detected compression. Output
// larger than limit bytes fails with ErrTooLarge; uncompressed data is
// returned as is.
func Decompress(data []byte, limit int) ([]byte, error) {
	switch Detect(data) {
	case CompressionZstd:
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()

		raw, err := dec.DecodeAll(data, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd catalog exceeds %d bytes", ErrTooLarge, limit)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decompress zstd catalog: %w", err)
		}
		return raw, nil

	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip catalog: %w", err)
		}
		defer zr.Close()

		raw, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip catalog: %w", err)
		}
		if len(raw) > limit {
			return nil, fmt.Errorf("%w: gzip catalog exceeds %d bytes", ErrTooLarge, limit)
		}
		return raw, nil

	default:
		return data, nil
	}
}
