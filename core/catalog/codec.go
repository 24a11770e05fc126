package catalog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Smallest encoded sizes, used to reject absurd counts before allocating.
const (
	minSimpleEntrySize = 12 // id + key length + flag
	minPluralEntrySize = 8  // id + key length
)

// Decode parses an uncompressed catalog blob.
func Decode(data []byte) (*Index, error) {
	r := &reader{data: data}

	count, err := r.count("simple count", minSimpleEntrySize)
	if err != nil {
		return nil, err
	}
	simple := make([]SimpleEntry, 0, count)
	for i := 0; i < count; i++ {
		id, err := r.uint32("simple id")
		if err != nil {
			return nil, err
		}
		key, err := r.string("simple key")
		if err != nil {
			return nil, err
		}
		flag, err := r.uint32("simple argument flag")
		if err != nil {
			return nil, err
		}
		simple = append(simple, SimpleEntry{ID: int(id), Key: key, HasArguments: flag != 0})
	}

	count, err = r.count("plural count", minPluralEntrySize)
	if err != nil {
		return nil, err
	}
	plural := make([]PluralEntry, 0, count)
	for i := 0; i < count; i++ {
		id, err := r.uint32("plural id")
		if err != nil {
			return nil, err
		}
		key, err := r.string("plural key")
		if err != nil {
			return nil, err
		}
		plural = append(plural, PluralEntry{ID: int(id), Key: key})
	}

	if r.off != len(r.data) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, len(r.data)-r.off, r.off)
	}

	return NewIndex(simple, plural)
}

// MustDecode is like Decode but panics on malformed data.
func MustDecode(data []byte) *Index {
	ix, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return ix
}

// Encode serializes ix into the uncompressed catalog format. It fails with
// ErrInvalidID when an entry id lies outside [0, MaxID], which only an Index
// assembled without NewIndex can hold.
func Encode(ix *Index) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := ix.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the uncompressed catalog format to w.
func (ix *Index) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	cw.uint32(len(ix.Simple))
	for _, e := range ix.Simple {
		cw.id(e.ID)
		cw.string(e.Key)
		if e.HasArguments {
			cw.uint32(1)
		} else {
			cw.uint32(0)
		}
	}

	cw.uint32(len(ix.Plural))
	for _, e := range ix.Plural {
		cw.id(e.ID)
		cw.string(e.Key)
	}

	return cw.n, cw.err
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) uint32(field string) (uint32, error) {
	if len(r.data)-r.off < 4 {
		return 0, fmt.Errorf("%w: reading %s at offset %d", ErrTruncated, field, r.off)
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) string(field string) (string, error) {
	n, err := r.uint32(field + " length")
	if err != nil {
		return "", err
	}
	if uint64(len(r.data)-r.off) < uint64(n) {
		return "", fmt.Errorf("%w: reading %s (%d bytes) at offset %d", ErrTruncated, field, n, r.off)
	}
	s := string(r.data[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}

// count reads an entry count and checks that the remaining data could hold it.
func (r *reader) count(field string, minEntrySize int) (int, error) {
	n, err := r.uint32(field)
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minEntrySize) > uint64(len(r.data)-r.off) {
		return 0, fmt.Errorf("%w: %s %d exceeds remaining %d bytes", ErrTruncated, field, n, len(r.data)-r.off)
	}
	return int(n), nil
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
	buf [4]byte
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
}

func (cw *countingWriter) uint32(v int) {
	if cw.err == nil && (v < 0 || uint64(v) > math.MaxUint32) {
		cw.err = fmt.Errorf("%w: %d does not fit in uint32", ErrInvalidID, v)
		return
	}
	binary.LittleEndian.PutUint32(cw.buf[:], uint32(v))
	cw.write(cw.buf[:])
}

func (cw *countingWriter) id(v int) {
	if cw.err == nil && (v < 0 || v > MaxID) {
		cw.err = fmt.Errorf("%w: %d", ErrInvalidID, v)
		return
	}
	cw.uint32(v)
}

func (cw *countingWriter) string(s string) {
	cw.uint32(len(s))
	cw.write([]byte(s))
}
