// Package textio reads and writes slices of numbers as
// newline-delimited decimal text.
package textio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/graph-guard/arraycoll/pkg/math"
)

// ErrorSyntax is returned when a line can't be parsed as a number.
type ErrorSyntax struct {
	Line int
	Text string
	Err  error
}

func (e *ErrorSyntax) Error() string {
	var b strings.Builder
	b.WriteString("line ")
	b.WriteString(strconv.Itoa(e.Line))
	b.WriteString(": ")
	b.WriteString(strconv.Quote(e.Text))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ErrorSyntax) Unwrap() error { return e.Err }

// Write writes every element of s followed by a line break.
// Floats are written in the shortest representation
// that parses back to the same value.
func Write[T math.NumberInterface](w io.Writer, s []T) error {
	bw := bufio.NewWriter(w)
	var b []byte
	for _, v := range s {
		b = appendNumber(b[:0], v)
		b = append(b, '\n')
		if _, err := bw.Write(b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses one number per line until EOF.
// Surrounding whitespace and blank lines are ignored.
func Read[T math.NumberInterface](r io.Reader) ([]T, error) {
	var s []T
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		t := strings.TrimSpace(sc.Text())
		if t == "" {
			continue
		}
		v, err := parseNumber[T](t)
		if err != nil {
			return nil, &ErrorSyntax{Line: line, Text: t, Err: err}
		}
		s = append(s, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func appendNumber[T math.NumberInterface](b []byte, v T) []byte {
	switch x := any(v).(type) {
	case float32:
		return strconv.AppendFloat(b, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(b, x, 'g', -1, 64)
	case uint8, uint16, uint32, uint64:
		return strconv.AppendUint(b, uint64(v), 10)
	}
	return strconv.AppendInt(b, int64(v), 10)
}

func parseNumber[T math.NumberInterface](s string) (T, error) {
	var z T
	switch any(z).(type) {
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		return T(f), err
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		return T(f), err
	case uint8, uint16, uint32, uint64:
		u, err := strconv.ParseUint(s, 10, bitSize[T]())
		return T(u), err
	}
	i, err := strconv.ParseInt(s, 10, bitSize[T]())
	return T(i), err
}

func bitSize[T math.NumberInterface]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int:
		return strconv.IntSize
	}
	return 64
}
