// Package bench runs a mixed set/get/delete workload against
// the configured map implementations.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/graph-guard/arraycoll/pkg/config"
	"github.com/graph-guard/arraycoll/pkg/container"
	"github.com/graph-guard/arraycoll/pkg/container/arraymap"
	"github.com/graph-guard/arraycoll/pkg/container/gomap"
	"github.com/graph-guard/arraycoll/pkg/container/hamap"
	"github.com/graph-guard/arraycoll/pkg/container/synchronized"
	"github.com/graph-guard/arraycoll/pkg/statistics"
	"github.com/phuslu/log"
	"github.com/yourbasic/bit"
)

type Result struct {
	Implementation string
	Size           int
	Rounds         int
	Concurrency    int
	Operations     int64
	Samples        int64 // Measured rounds over all goroutines.
	Total          time.Duration
	Average        time.Duration
	Highest        time.Duration
}

// String formats r as a single report line.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Implementation)
	b.WriteString(" size=")
	b.WriteString(humanize.Comma(int64(r.Size)))
	b.WriteString(" goroutines=")
	b.WriteString(strconv.Itoa(r.Concurrency))
	b.WriteString(" ops=")
	b.WriteString(humanize.Comma(r.Operations))
	b.WriteString(" samples=")
	b.WriteString(humanize.Comma(r.Samples))
	b.WriteString(" total=")
	b.WriteString(r.Total.String())
	b.WriteString(" avg/round=")
	b.WriteString(r.Average.String())
	b.WriteString(" max/round=")
	b.WriteString(r.Highest.String())
	return b.String()
}

// ErrorLen is returned when the length of a map disagrees
// with the number of keys the workload left in it.
type ErrorLen struct {
	Implementation string
	Expected       int
	Actual         int
}

func (e *ErrorLen) Error() string {
	var b strings.Builder
	b.WriteString(e.Implementation)
	b.WriteString(": expected length ")
	b.WriteString(strconv.Itoa(e.Expected))
	b.WriteString(", got ")
	b.WriteString(strconv.Itoa(e.Actual))
	return b.String()
}

// ErrorLookup is returned when Get disagrees with
// the presence of a key.
type ErrorLookup struct {
	Implementation string
	Key            string
	Present        bool // Expected presence of Key.
}

func (e *ErrorLookup) Error() string {
	var b strings.Builder
	b.WriteString(e.Implementation)
	b.WriteString(": key ")
	b.WriteString(e.Key)
	if e.Present {
		b.WriteString(" not found")
	} else {
		b.WriteString(" unexpectedly found")
	}
	return b.String()
}

// Run benchmarks every configured implementation for every
// configured size, in that order.
func Run(
	ctx context.Context, conf *config.Config, l log.Logger,
) ([]Result, error) {
	results := make([]Result, 0, len(conf.Sizes)*len(conf.Implementations))
	for _, size := range conf.Sizes {
		keys, err := Keys(size, conf.Seed)
		if err != nil {
			return nil, fmt.Errorf("generating keys: %w", err)
		}
		for _, name := range conf.Implementations {
			lImpl := l
			lImpl.Context = log.NewContext(nil).
				Str("implementation", name).
				Int("size", size).Value()

			goroutines := 1
			var m container.Mapper[string, int]
			switch name {
			case config.ImplArrayMap:
				a := arraymap.New[string, int](size)
				if conf.Concurrency > 1 {
					goroutines = conf.Concurrency
					m = NewArrayMap[string, int](synchronized.New[string, int](a, nil))
				} else {
					m = NewArrayMap[string, int](a)
				}
			case config.ImplHAMap:
				m = hamap.New[string, int](size, nil)
			case config.ImplHAMapXXH64:
				m = hamap.New[string, int](
					size, &hamap.HasherXXH64[string]{Seed: uint64(conf.Seed)},
				)
			case config.ImplGoMap:
				m = gomap.New[string, int](size)
			default:
				return nil, fmt.Errorf("unknown implementation %q", name)
			}

			lImpl.Debug().Int("goroutines", goroutines).Msg("starting")
			r, err := Measure(
				ctx, name, m, keys, conf.Rounds, goroutines, conf.Seed,
			)
			if err != nil {
				lImpl.Error().Err(err).Msg("failed")
				return nil, err
			}
			lImpl.Info().
				Str("ops", humanize.Comma(r.Operations)).
				Dur("total", r.Total).
				Dur("average", r.Average).
				Dur("highest", r.Highest).
				Msg("finished")
			results = append(results, r)
		}
	}
	return results, nil
}

// Keys generates n distinct uuid keys deterministically from seed.
func Keys(n int, seed int64) ([]string, error) {
	rnd := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		u, err := uuid.NewRandomFromReader(rnd)
		if err != nil {
			return nil, err
		}
		keys[i] = u.String()
	}
	return keys, nil
}

// Measure runs rounds of the workload over keys against m,
// which must be empty. The keys are partitioned between the
// goroutines, which requires m to be safe for concurrent use
// if goroutines is greater than 1.
// Every goroutine tracks its partition in a presence set and
// fails the run if m disagrees with it.
func Measure(
	ctx context.Context,
	name string,
	m container.Mapper[string, int],
	keys []string,
	rounds, goroutines int,
	seed int64,
) (Result, error) {
	var stats statistics.Sync
	var wg sync.WaitGroup
	present := make([]int, goroutines)
	errs := make([]error, goroutines)

	start := time.Now()
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			present[g], errs[g] = work(
				ctx, name, m, keys, g, goroutines, rounds,
				seed+int64(g), &stats,
			)
		}(g)
	}
	wg.Wait()
	total := time.Since(start)

	expected := 0
	for g := range errs {
		if errs[g] != nil {
			return Result{}, errs[g]
		}
		expected += present[g]
	}
	if l := m.Len(); l != expected {
		return Result{}, &ErrorLen{
			Implementation: name,
			Expected:       expected,
			Actual:         l,
		}
	}

	return Result{
		Implementation: name,
		Size:           len(keys),
		Rounds:         rounds,
		Concurrency:    goroutines,
		Operations:     int64(rounds) * int64(len(keys)),
		Samples:        stats.GetOperations(),
		Total:          total,
		Average:        stats.GetAverageDuration(),
		Highest:        stats.GetHighestDuration(),
	}, nil
}

// work runs the workload over every key at index i where
// i % step == offset and returns the number of such keys
// present in m after the last round.
func work(
	ctx context.Context,
	name string,
	m container.Mapper[string, int],
	keys []string,
	offset, step, rounds int,
	seed int64,
	stats *statistics.Sync,
) (int, error) {
	rnd := rand.New(rand.NewSource(seed))
	oracle := bit.New()
	for r := 0; r < rounds; r++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		start := time.Now()
		for i := offset; i < len(keys); i += step {
			switch rnd.Intn(4) {
			case 0, 1:
				m.Set(keys[i], r)
				oracle.Add(i)
			case 2:
				if _, ok := m.Get(keys[i]); ok != oracle.Contains(i) {
					return 0, &ErrorLookup{
						Implementation: name,
						Key:            keys[i],
						Present:        !ok,
					}
				}
			case 3:
				m.Delete(keys[i])
				oracle.Delete(i)
			}
		}
		stats.Update(time.Since(start))
	}
	return oracle.Size(), nil
}
