package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/arraycoll/pkg/cli"
	"github.com/phuslu/log"
)

func main() {
	w := os.Stdout
	l := newLogger(os.Stderr)
	code := 0
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandBench:
		code = runBench(w, l, c)
	case cli.CommandConvert:
		code = runConvert(l, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
	os.Exit(code)
}

func newLogger(f *os.File) log.Logger {
	l := log.Logger{
		Level:      log.InfoLevel,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &log.IOWriter{Writer: io.Writer(f)},
	}
	if log.IsTerminal(f.Fd()) {
		l.Writer = &log.ConsoleWriter{
			ColorOutput: true,
			Writer:      f,
		}
	}
	return l
}
