package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/specialistvlad/builtintour/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathList collects a repeatable path flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	if v == "" {
		return fmt.Errorf("empty path")
	}
	*p = append(*p, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("builtintour", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
builtintour - A guided tour of the built-in function library.

Usage:
  builtintour [options] [MANIFEST_PATH...]

Arguments:
  MANIFEST_PATH
    Path to a .hcl, .yaml or .yml manifest, or a directory containing them.
    Manifest suites run after the built-in ones.

Options:
`)
		flagSet.PrintDefaults()
	}

	var manifests pathList
	flagSet.Var(&manifests, "manifest", "Path to an extra manifest file or directory. May be repeated.")
	flagSet.Var(&manifests, "m", "Path to an extra manifest file or directory (shorthand).")
	suiteFlag := flagSet.String("suite", "", "Comma-separated list of suite glob patterns to run, e.g. 'math,{a,b}*'. Empty runs all of them.")
	skipVolatileFlag := flagSet.Bool("skip-volatile", false, "Skip entries whose output depends on the clock or randomness.")
	noBuiltinFlag := flagSet.Bool("no-builtin", false, "Do not run the built-in suites.")
	listFlag := flagSet.Bool("list", false, "List suites and entry labels instead of running them.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed for math.random. Defaults to the current time.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	paths := append([]string(nil), manifests...)
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Manifest paths determined.", "paths", paths)

	suites := splitPatterns(*suiteFlag)

	seed := *seedFlag
	seedSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		seed = uint64(time.Now().UnixNano())
	}

	config, err := app.NewConfig(app.Config{
		ManifestPaths: paths,
		Suites:        suites,
		SkipVolatile:  *skipVolatileFlag,
		NoBuiltin:     *noBuiltinFlag,
		List:          *listFlag,
		Seed:          seed,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitPatterns splits a comma-separated pattern list. Commas inside {...}
// alternations or [...] classes, or escaped with a backslash, belong to the
// pattern. Blank items are dropped.
func splitPatterns(list string) []string {
	var (
		patterns []string
		current  strings.Builder
		braces   int
		inClass  bool
		escaped  bool
	)
	flush := func() {
		if p := strings.TrimSpace(current.String()); p != "" {
			patterns = append(patterns, p)
		}
		current.Reset()
	}

	for _, r := range list {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			inClass = r != ']'
		case r == '[':
			inClass = true
		case r == '{':
			braces++
		case r == '}' && braces > 0:
			braces--
		case r == ',' && braces == 0:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()
	return patterns
}
