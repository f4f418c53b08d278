package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/graph-guard/arraycoll/pkg/bench"
	"github.com/graph-guard/arraycoll/pkg/cli"
	"github.com/graph-guard/arraycoll/pkg/config"
	"github.com/phuslu/log"
)

// runBench runs the configured benchmarks until done or interrupted
// and writes the report to w.
func runBench(w io.Writer, l log.Logger, c cli.CommandBench) (exitCode int) {
	dir, file := filepath.Split(c.ConfigPath)
	if dir == "" {
		dir = "."
	}
	conf, err := config.Read(os.DirFS(dir), file)
	if err != nil {
		l.Error().Err(err).Msg("reading config")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lBench := l
	lBench.Context = log.NewContext(nil).Str("cmd", "bench").Value()
	results, err := bench.Run(ctx, conf, lBench)
	if err != nil {
		l.Error().Err(err).Msg("benchmark")
		return 1
	}
	for i := range results {
		_, _ = io.WriteString(w, results[i].String())
		_, _ = io.WriteString(w, "\n")
	}
	return 0
}
