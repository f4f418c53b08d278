// Package binio reads and writes slices of fixed-width numbers
// as raw little-endian dumps. There is no header, no checksum
// and no versioning.
package binio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/graph-guard/arraycoll/pkg/container/arraymap"
	"github.com/graph-guard/arraycoll/pkg/math"
)

var order = binary.LittleEndian

// Size returns the encoded size of a single T in bytes.
func Size[T math.Fixed]() int {
	var z T
	return binary.Size(z)
}

// Write writes all elements of s to w.
func Write[T math.Fixed](w io.Writer, s []T) error {
	return binary.Write(w, order, s)
}

// Read fills s with elements read from r and returns the number of
// elements read. Returns io.EOF if no bytes were available and
// io.ErrUnexpectedEOF if the stream ended in the middle of an element.
// A stream ending on an element boundary before s is full is not
// an error, n reports how many elements were read.
func Read[T math.Fixed](r io.Reader, s []T) (n int, err error) {
	size := Size[T]()
	buf := make([]byte, len(s)*size)
	read, err := io.ReadFull(r, buf)
	n = read / size
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		err = nil
		if read%size != 0 {
			err = io.ErrUnexpectedEOF
		}
	case err != nil && !errors.Is(err, io.EOF):
		return 0, err
	}
	if n > 0 {
		if errDec := binary.Read(
			bytes.NewReader(buf[:n*size]), order, s[:n],
		); errDec != nil {
			return 0, errDec
		}
	}
	return n, err
}

// ReadAll reads elements from r until EOF.
func ReadAll[T math.Fixed](r io.Reader) ([]T, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	size := Size[T]()
	if len(b)%size != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	s := make([]T, len(b)/size)
	if err := binary.Read(bytes.NewReader(b), order, s); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteMap writes the number of live pairs as uint64 followed
// by the pairs as alternating keys and values in insertion order.
func WriteMap[K, V math.Fixed](w io.Writer, m *arraymap.Map[K, V]) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, order, uint64(m.Len())); err != nil {
		return fmt.Errorf("writing length: %w", err)
	}
	var err error
	m.Visit(func(k K, v V) (stop bool) {
		if err = binary.Write(bw, order, k); err != nil {
			return true
		}
		err = binary.Write(bw, order, v)
		return err != nil
	})
	if err != nil {
		return fmt.Errorf("writing pair: %w", err)
	}
	return bw.Flush()
}

// ReadMap reads a map written by WriteMap.
// The buffers of the returned map are sized exactly
// to the recorded number of pairs.
//
// WARNING: keys are not verified to be distinct.
func ReadMap[K, V math.Fixed](r io.Reader) (*arraymap.Map[K, V], error) {
	br := bufio.NewReader(r)
	var l uint64
	if err := binary.Read(br, order, &l); err != nil {
		return nil, fmt.Errorf("reading length: %w", err)
	}
	// Don't trust the length for preallocation
	const maxPrealloc = 1 << 16
	prealloc := l
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	keys, values := make([]K, 0, prealloc), make([]V, 0, prealloc)
	for i := uint64(0); i < l; i++ {
		var k K
		var v V
		if err := binary.Read(br, order, &k); err != nil {
			return nil, fmt.Errorf("reading key %d: %w", i, unexpected(err))
		}
		if err := binary.Read(br, order, &v); err != nil {
			return nil, fmt.Errorf("reading value %d: %w", i, unexpected(err))
		}
		keys, values = append(keys, k), append(values, v)
	}
	return arraymap.NewFrom(keys, values)
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
