package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

const DefaultConfigPath = "./bench.yml"

// Formats accepted by convert.
const (
	FormatBinary = "bin"
	FormatText   = "text"
)

// Types lists the number types accepted by convert.
var Types = []string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

// Command can be any of:
//
//	CommandBench
//	CommandConvert
type Command any

type CommandBench struct {
	ConfigPath string
}

type CommandConvert struct {
	Type string
	From string
	To   string
	In   string
	Out  string
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "arraycoll"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet(executableName, flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" bench - benchmarks the map implementations",
			" convert - converts numbers between binary and text files",
			" help - prints help",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "bench":
		c := CommandBench{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s bench [-config <path>]", executableName),
				"",
				"flags:",
				"-config <path>: defines the benchmark configuration file path "+
					fm("(default: %s)", DefaultConfigPath),
			)
		}
		flags.StringVar(&c.ConfigPath, "config", DefaultConfigPath, "")
		if !parseFlags() {
			return nil
		}
		cmd = c

	case "convert":
		c := CommandConvert{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm(
					"usage: %s convert -type <type> -from <format> -to <format> "+
						"<input> <output>",
					executableName,
				),
				"",
				"flags:",
				"-type <type>: number type, one of: "+joinTypes(),
				"-from <format>: input format, bin or text",
				"-to <format>: output format, bin or text",
			)
		}
		flags.StringVar(&c.Type, "type", "", "")
		flags.StringVar(&c.From, "from", "", "")
		flags.StringVar(&c.To, "to", "", "")
		if !parseFlags() {
			return nil
		}

		if !isType(c.Type) {
			writeLines(w, fm("unsupported type: %q", c.Type))
			flags.Usage()
			return nil
		}
		if !isFormat(c.From) {
			writeLines(w, fm("unsupported input format: %q", c.From))
			flags.Usage()
			return nil
		}
		if !isFormat(c.To) {
			writeLines(w, fm("unsupported output format: %q", c.To))
			flags.Usage()
			return nil
		}
		if flags.NArg() != 2 {
			writeLines(w, fm(
				"expected input and output paths, got %d arguments",
				flags.NArg(),
			))
			flags.Usage()
			return nil
		}
		c.In, c.Out = flags.Arg(0), flags.Arg(1)
		cmd = c

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func isType(t string) bool {
	for _, x := range Types {
		if x == t {
			return true
		}
	}
	return false
}

func isFormat(f string) bool { return f == FormatBinary || f == FormatText }

func joinTypes() string {
	var s string
	for i, t := range Types {
		if i > 0 {
			s += ", "
		}
		s += t
	}
	return s
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"arraycoll - linear scan array collections",
		"",
		"commands:",
		" bench [-config <path>]",
		"   runs the configured map benchmarks and prints a report",
		" convert -type <type> -from <bin|text> -to <bin|text> <input> <output>",
		"   converts a file of numbers between little-endian binary",
		"   and newline separated decimal text",
	)
}
