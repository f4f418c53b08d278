package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/arraycoll/pkg/binio"
	"github.com/graph-guard/arraycoll/pkg/cli"
	"github.com/graph-guard/arraycoll/pkg/math"
	"github.com/graph-guard/arraycoll/pkg/textio"
	"github.com/phuslu/log"
)

func runConvert(l log.Logger, c cli.CommandConvert) (exitCode int) {
	l.Context = log.NewContext(nil).
		Str("cmd", "convert").
		Str("type", c.Type).Value()

	in, err := os.Open(c.In)
	if err != nil {
		l.Error().Err(err).Msg("opening input")
		return 1
	}
	defer in.Close()

	// The output is written only after the whole input was read
	// so that c.In and c.Out may be the same file.
	r := bufio.NewReader(in)
	out := new(bytes.Buffer)
	var n int
	switch c.Type {
	case "int8":
		n, err = convertSlice[int8](r, out, c.From, c.To)
	case "int16":
		n, err = convertSlice[int16](r, out, c.From, c.To)
	case "int32":
		n, err = convertSlice[int32](r, out, c.From, c.To)
	case "int64":
		n, err = convertSlice[int64](r, out, c.From, c.To)
	case "uint8":
		n, err = convertSlice[uint8](r, out, c.From, c.To)
	case "uint16":
		n, err = convertSlice[uint16](r, out, c.From, c.To)
	case "uint32":
		n, err = convertSlice[uint32](r, out, c.From, c.To)
	case "uint64":
		n, err = convertSlice[uint64](r, out, c.From, c.To)
	case "float32":
		n, err = convertSlice[float32](r, out, c.From, c.To)
	case "float64":
		n, err = convertSlice[float64](r, out, c.From, c.To)
	default:
		err = fmt.Errorf("unsupported type %q", c.Type)
	}
	if err != nil {
		l.Error().Err(err).Msg("converting")
		return 1
	}
	if err := replaceFile(c.Out, out.Bytes()); err != nil {
		l.Error().Err(err).Msg("writing output")
		return 1
	}
	l.Info().
		Int("numbers", n).
		Str("from", c.In).
		Str("to", c.Out).
		Msg("converted")
	return 0
}

// replaceFile writes data to a temporary file next to path
// and renames it to path. path is left untouched on failure.
func replaceFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".arraycoll-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// convertSlice reads all numbers from r in format from and
// writes them to w in format to.
func convertSlice[T math.Fixed](
	r io.Reader, w io.Writer, from, to string,
) (n int, err error) {
	var s []T
	if from == cli.FormatBinary {
		s, err = binio.ReadAll[T](r)
	} else {
		s, err = textio.Read[T](r)
	}
	if err != nil {
		return 0, fmt.Errorf("reading: %w", err)
	}
	if to == cli.FormatBinary {
		err = binio.Write(w, s)
	} else {
		err = textio.Write(w, s)
	}
	if err != nil {
		return 0, fmt.Errorf("writing: %w", err)
	}
	return len(s), nil
}
