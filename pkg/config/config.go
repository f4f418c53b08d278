// Package config reads the benchmark configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultRounds      = 1000
	DefaultConcurrency = 1
)

// Implementation names.
const (
	ImplArrayMap   = "arraymap"
	ImplHAMap      = "hamap"
	ImplHAMapXXH64 = "hamap_xxh64"
	ImplGoMap      = "gomap"
)

// Implementations lists all known implementation names
// in the order they're benchmarked by default.
var Implementations = []string{
	ImplArrayMap, ImplHAMap, ImplHAMapXXH64, ImplGoMap,
}

type Config struct {
	// Sizes lists the number of distinct keys per benchmark.
	Sizes []int

	// Implementations lists the benchmarked map implementations.
	// Defaults to all known implementations.
	Implementations []string

	// Rounds is the number of workload rounds per benchmark.
	Rounds int

	// Seed seeds key generation and the workload.
	Seed int64

	// Concurrency is the number of goroutines sharing one
	// synchronized array map. Other implementations always
	// run on a single goroutine.
	Concurrency int
}

type benchConfig struct {
	Sizes           []int    `yaml:"sizes"`
	Implementations []string `yaml:"implementations"`
	Rounds          *int     `yaml:"rounds"`
	Seed            int64    `yaml:"seed"`
	Concurrency     *int     `yaml:"concurrency"`
}

// Read reads and validates the configuration file at path.
func Read(filesystem fs.FS, path string) (*Config, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrorMissing{FilePath: path}
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	var c benchConfig
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "syntax",
			Message:  err.Error(),
		}
	}

	conf := &Config{
		Sizes:           c.Sizes,
		Implementations: c.Implementations,
		Rounds:          DefaultRounds,
		Seed:            c.Seed,
		Concurrency:     DefaultConcurrency,
	}

	if len(c.Sizes) < 1 {
		return nil, &ErrorMissing{FilePath: path, Feature: "sizes"}
	}
	for i, s := range c.Sizes {
		if s < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "sizes[" + strconv.Itoa(i) + "]",
				Message:  "size must be positive",
			}
		}
	}

	if len(c.Implementations) < 1 {
		conf.Implementations = append([]string(nil), Implementations...)
	}
	for i, n := range c.Implementations {
		if !isImplementation(n) {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "implementations[" + strconv.Itoa(i) + "]",
				Message:  "unknown implementation " + strconv.Quote(n),
			}
		}
		for j := 0; j < i; j++ {
			if c.Implementations[j] == n {
				return nil, &ErrorConflict{Items: []string{
					"implementations[" + strconv.Itoa(j) + "]",
					"implementations[" + strconv.Itoa(i) + "]",
				}}
			}
		}
	}

	if c.Rounds != nil {
		if *c.Rounds < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "rounds",
				Message:  "rounds must be positive",
			}
		}
		conf.Rounds = *c.Rounds
	}

	if c.Concurrency != nil {
		if *c.Concurrency < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "concurrency",
				Message:  "concurrency must be positive",
			}
		}
		conf.Concurrency = *c.Concurrency
	}

	return conf, nil
}

func isImplementation(name string) bool {
	for _, n := range Implementations {
		if n == name {
			return true
		}
	}
	return false
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	b.WriteString("missing ")
	if e.Feature == "" {
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
