// Package pipeline holds the typed pipeline description (spec.md §3) —
// the parser's output and the driver's input — plus the four-pass
// parser that builds one from a token vector. The operators are
// executed by internal/ops.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/oyealex/rp/internal/cond"
)

// Newline selects the line terminator a file/clipboard sink writes.
type Newline int

const (
	LF Newline = iota
	CRLF
)

func (n Newline) String() string {
	if n == CRLF {
		return "crlf"
	}
	return "lf"
}

func (n Newline) Bytes() []byte {
	if n == CRLF {
		return []byte("\r\n")
	}
	return []byte("\n")
}

// Source is the tagged union of input stages (spec.md §3).
type Source interface {
	isSource()
	String() string
}

type StdinSource struct{}

func (StdinSource) isSource()      {}
func (StdinSource) String() string { return ":in" }

type FilesSource struct{ Paths []string }

func (FilesSource) isSource() {}
func (s FilesSource) String() string {
	return ":file " + strings.Join(s.Paths, " ")
}

type ClipboardSource struct{}

func (ClipboardSource) isSource()      {}
func (ClipboardSource) String() string { return ":clip" }

type LiteralSource struct{ Values []string }

func (LiteralSource) isSource() {}
func (s LiteralSource) String() string {
	return ":of " + strings.Join(s.Values, " ")
}

type GenSource struct {
	Start int64
	End   *int64
	Step  int64
	Fmt   string
}

func (GenSource) isSource() {}
func (s GenSource) String() string {
	end := ""
	if s.End != nil {
		end = fmt.Sprintf("%d", *s.End)
	}
	return fmt.Sprintf(":gen %d,%s,%d %s", s.Start, end, s.Step, s.Fmt)
}

type RepeatSource struct {
	Value string
	Count *int64
}

func (RepeatSource) isSource() {}
func (s RepeatSource) String() string {
	if s.Count == nil {
		return fmt.Sprintf(":repeat %q", s.Value)
	}
	return fmt.Sprintf(":repeat %q %d", s.Value, *s.Count)
}

// Sink is the tagged union of output stages (spec.md §3).
type Sink interface {
	isSink()
	String() string
}

type StdoutSink struct{}

func (StdoutSink) isSink()      {}
func (StdoutSink) String() string { return ":to out" }

type FileSink struct {
	Path    string
	Append  bool
	Newline Newline
}

func (FileSink) isSink() {}
func (s FileSink) String() string {
	mode := "truncate"
	if s.Append {
		mode = "append"
	}
	return fmt.Sprintf(":to file %s (%s, %s)", s.Path, mode, s.Newline)
}

type ClipboardSink struct{ Newline Newline }

func (ClipboardSink) isSink() {}
func (s ClipboardSink) String() string {
	return fmt.Sprintf(":to clip (%s)", s.Newline)
}

// Operator is the tagged union of pipeline operator stages (spec.md §4.2).
type Operator interface {
	isOperator()
	String() string
}

// CaseMode selects among :upper / :lower / :case.
type CaseMode int

const (
	CaseUpper CaseMode = iota
	CaseLower
	CaseFlip
)

type CaseOp struct{ Mode CaseMode }

func (CaseOp) isOperator() {}
func (o CaseOp) String() string {
	switch o.Mode {
	case CaseUpper:
		return ":upper"
	case CaseLower:
		return ":lower"
	default:
		return ":case"
	}
}

type PeekOp struct {
	File    string // empty means stdout
	Append  bool
	Newline Newline
}

func (PeekOp) isOperator() {}
func (o PeekOp) String() string {
	dest := "stdout"
	if o.File != "" {
		dest = o.File
	}
	return fmt.Sprintf(":peek -> %s (%s)", dest, o.Newline)
}

type ReplaceOp struct {
	From, To string
	Count    *int
	Nocase   bool
}

func (ReplaceOp) isOperator() {}
func (o ReplaceOp) String() string {
	return fmt.Sprintf(":replace %q %q", o.From, o.To)
}

type TrimSide int

const (
	TrimBoth TrimSide = iota
	TrimLeft
	TrimRight
)

type TrimOp struct {
	Side        TrimSide
	CharSet     bool // true for :trimc/:ltrimc/:rtrimc
	Pattern     string
	HasPattern  bool
	Nocase      bool
}

func (TrimOp) isOperator() {}
func (o TrimOp) String() string {
	names := [...]string{"trim", "ltrim", "rtrim"}
	suffix := ""
	if o.CharSet {
		suffix = "c"
	}
	return fmt.Sprintf(":%s%s", names[o.Side], suffix)
}

type UniqOp struct{ Nocase bool }

func (UniqOp) isOperator()      {}
func (UniqOp) String() string { return ":uniq" }

type JoinOp struct {
	Delim, Prefix, Postfix string
	Batch                  *int
}

func (JoinOp) isOperator() {}
func (o JoinOp) String() string {
	return fmt.Sprintf(":join %q %q %q", o.Delim, o.Prefix, o.Postfix)
}

type FilterOp struct {
	Cond  cond.Node
	Drop  bool // false means :take
	While bool
}

func (FilterOp) isOperator() {}
func (o FilterOp) String() string {
	name := "take"
	if o.Drop {
		name = "drop"
	}
	if o.While {
		name += " while"
	}
	return ":" + name
}

type CountOp struct{}

func (CountOp) isOperator()      {}
func (CountOp) String() string { return ":count" }

type SortOp struct {
	Num     bool
	Default *float64
	Nocase  bool
	Desc    bool
	Random  bool
}

func (SortOp) isOperator() {}
func (o SortOp) String() string {
	return fmt.Sprintf(":sort(num=%v,nocase=%v,desc=%v,random=%v)", o.Num, o.Nocase, o.Desc, o.Random)
}

// Description is the fully parsed, typed pipeline (spec.md §3).
type Description struct {
	Options   cliopts.Options
	Source    Source
	Operators []Operator
	Sink      Sink
}

// String renders the resolved pipeline, used by --verbose (spec.md §7).
func (d *Description) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", d.Source)
	for _, op := range d.Operators {
		fmt.Fprintf(&b, "  | %s\n", op)
	}
	fmt.Fprintf(&b, "sink: %s\n", d.Sink)
	return b.String()
}
