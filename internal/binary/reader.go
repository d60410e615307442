// Package binary provides byte-level helpers for reading save headers and
// splitting save blobs into their ciphered body and trailer.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when a buffer is too short for the requested
// split or offset.
var ErrTruncated = errors.New("input truncated")

// ReadHeaderFrom reads up to n bytes from the start of r. A stream shorter
// than n yields the bytes it has; only read failures are errors.
func ReadHeaderFrom(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:read], nil
}

// SplitTail splits data into body and the last n bytes. Both slices alias
// data.
func SplitTail(data []byte, n int) (body, tail []byte, err error) {
	if n < 0 || len(data) < n {
		return nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(data), n)
	}
	cut := len(data) - n
	return data[:cut:cut], data[cut:], nil
}

// Uint32LE reads a little-endian uint32 at off in b.
func Uint32LE(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, len(b), off+4)
	}
	return binary.LittleEndian.Uint32(b[off:]), nil
}

// PutUint32LE writes v little-endian at off in b.
func PutUint32LE(b []byte, off int, v uint32) error {
	if off < 0 || off+4 > len(b) {
		return fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, len(b), off+4)
	}
	binary.LittleEndian.PutUint32(b[off:], v)
	return nil
}

// Clone returns a copy of b that never aliases it.
func Clone(b []byte) []byte {
	return append(make([]byte, 0, len(b)), b...)
}
