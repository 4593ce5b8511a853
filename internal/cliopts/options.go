// Package cliopts parses the leading, dash-prefixed option region of an
// rp command line (spec.md §4.1 region 1) into an Options value, in the
// style of the teacher's internal/cli.ParseArgs: a flag.FlagSet in
// ContinueOnError mode, sentinel errors for flows that bypass normal
// pipeline execution (help, version), and everything else returned as an
// *exitcode.Error that already carries its code from the spec's
// exit-code table.
package cliopts

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/lex"
)

// Sentinel control-flow errors, mirroring cli.ErrShowHelp / ErrShowVersion
// in the teacher.
var (
	ErrShowHelp    = errors.New("show help")
	ErrShowVersion = errors.New("show version")
)

// Options holds the four process-wide switches of spec.md §3.
type Options struct {
	Verbose       bool
	DryRun        bool
	NocaseGlobal  bool
	SkipErrGlobal bool

	// HelpTopic is set when -h/--help was given; empty string means "no
	// topic", i.e. the general help text.
	HelpTopic string
}

var helpTopics = map[string]bool{
	"opt": true, "options": true,
	"in": true, "input": true,
	"op":  true,
	"out": true, "output": true,
	"code": true,
	"fmt":  true,
	"cond": true, "condition": true,
}

// Parse consumes the leading option tokens of argv (after the program
// name) and returns the resolved Options plus the remaining tokens,
// which start at the first stage command (or are empty).
//
// The -t/--token meta-tokenizer is handled first, as a raw text splice,
// before any flag parsing: per spec.md §4.1 and the Open Question
// decision recorded in DESIGN.md, only the first -t/--token occurrence
// on the original command line is expanded; anything it splices in,
// including a nested -t-looking token, is left untouched.
func Parse(argv []string) (Options, []string, error) {
	opts, remaining, _, err := ParseWithExplicit(argv)
	return opts, remaining, err
}

// ParseWithExplicit behaves like Parse but additionally reports which
// flag names were explicitly given on the command line, keyed by their
// long name (e.g. "nocase", "skip-err", "verbose"), so a caller such as
// internal/config can tell "not set" apart from "set to false".
func ParseWithExplicit(argv []string) (Options, []string, map[string]bool, error) {
	argv, err := expandMetaToken(argv)
	if err != nil {
		return Options{}, nil, nil, err
	}

	var opts Options
	fs := flag.NewFlagSet("rp", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we render our own diagnostics

	var showHelp, showVersion bool
	fs.BoolVar(&showHelp, "h", false, "show help")
	fs.BoolVar(&showHelp, "help", false, "show help")
	fs.BoolVar(&showVersion, "V", false, "show version")
	fs.BoolVar(&showVersion, "version", false, "show version")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose")
	fs.BoolVar(&opts.Verbose, "verbose", false, "verbose")
	fs.BoolVar(&opts.DryRun, "d", false, "dry run")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "dry run")
	fs.BoolVar(&opts.NocaseGlobal, "n", false, "nocase default")
	fs.BoolVar(&opts.NocaseGlobal, "nocase", false, "nocase default")
	fs.BoolVar(&opts.SkipErrGlobal, "s", false, "skip per-record errors")
	fs.BoolVar(&opts.SkipErrGlobal, "skip-err", false, "skip per-record errors")

	if err := fs.Parse(argv); err != nil {
		return Options{}, nil, nil, exitcode.New(exitcode.OptionsParse, fmt.Errorf("option parsing: %w", err))
	}

	explicit := map[string]bool{}
	longName := map[string]string{
		"v": "verbose", "verbose": "verbose",
		"d": "dry-run", "dry-run": "dry-run",
		"n": "nocase", "nocase": "nocase",
		"s": "skip-err", "skip-err": "skip-err",
	}
	fs.Visit(func(f *flag.Flag) {
		if name, ok := longName[f.Name]; ok {
			explicit[name] = true
		}
	})

	remaining := fs.Args()

	if showHelp {
		if len(remaining) > 0 {
			if topic := remaining[0]; helpTopics[topic] {
				opts.HelpTopic = topic
			}
		}
		return opts, nil, explicit, ErrShowHelp
	}
	if showVersion {
		return opts, nil, explicit, ErrShowVersion
	}

	return opts, remaining, explicit, nil
}

// expandMetaToken finds the first -t/--token occurrence in argv, runs
// its argument through the lex tokenizer, and splices the result in
// place. Any later -t/--token token (original or freshly spliced in) is
// left as ordinary data.
func expandMetaToken(argv []string) ([]string, error) {
	for i, tok := range argv {
		if tok != "-t" && tok != "--token" {
			continue
		}
		if i+1 >= len(argv) {
			return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf("%s: missing argument", tok))
		}
		expanded, err := lex.Tokenize(argv[i+1])
		if err != nil {
			return nil, exitcode.New(exitcode.InvalidEscape, fmt.Errorf("%s: %w", tok, err))
		}
		out := make([]string, 0, len(argv)-2+len(expanded))
		out = append(out, argv[:i]...)
		out = append(out, expanded...)
		out = append(out, argv[i+2:]...)
		return out, nil
	}
	return argv, nil
}
