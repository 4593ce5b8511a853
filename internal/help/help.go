// Package help renders the -h/--help text. spec.md treats help
// rendering as an external collaborator with a stated contract only
// (accepts an optional topic, returns text); the wording below is this
// package's concrete fulfillment of that contract.
package help

import "fmt"

const general = `rp - a streaming text-processing pipeline

Usage: rp [options] [input-stage] [operator-stage...] [output-stage]

Options:
  -h, --help [topic]   show this help, or help for one topic
  -V, --version        show the version
  -v, --verbose        print the resolved pipeline to stderr before running
  -d, --dry-run         resolve the pipeline and exit without running it
  -n, --nocase          default :uniq/:trim/:replace/:sort to case-insensitive
  -s, --skip-err        skip records that fail a per-record operator instead of aborting
  -t, --token <text>    split <text> into stage tokens and splice them in place

Help topics: opt, in, op, out, code, fmt, cond
`

var topics = map[string]string{
	"opt":     general,
	"options": general,
	"in": `Input stages (one, first in the pipeline):
  :in                read lines from stdin
  :file <paths...>   read lines from each file in order
  :clip              read the clipboard, split into lines
  :of <values...>    yield each literal value as a record
  :gen <start[,[end][,step]]> [fmt] yield an arithmetic progression
  :repeat <value> [count]           yield value, count times or forever
`,
	"op": `Operator stages (zero or more, between input and output):
  :upper :lower :case
  :replace <from> <to> [count]
  :trim/:trimc [pattern] [nocase]
  :uniq
  :peek [path] [append] [lf|crlf]
  :join [delim [prefix [postfix [batch]]]]
  :drop/:take <cond>
  :count
  :sort [num [default]] [nocase] [desc] [random]
`,
	"out": `Output stages (at most one, last in the pipeline; default :to out):
  :to out                write records to stdout
  :to file <path> [append] [crlf]
  :to clip [crlf]
`,
	"output": `Output stages (at most one, last in the pipeline; default :to out):
  :to out                write records to stdout
  :to file <path> [append] [crlf]
  :to clip [crlf]
`,
	"code": `Exit codes: see rp's process exit-code table (0 ok, 1-17 distinct failure classes).`,
	"fmt": `Format template syntax for :gen's fmt argument, e.g. "{v:04d}", "{v:#x}".`,
	"cond": `Condition expressions for :drop/:take, e.g. "len 2,4", "num =2", "reg ^ap", "upper", "empty".
Prefix with ! to negate where the spec allows it.`,
}

func init() {
	topics["condition"] = topics["cond"]
	topics["input"] = topics["in"]
}

// Text returns the help text for topic, or the general help when topic
// is empty or unrecognized.
func Text(topic string) string {
	if topic == "" || topic == "opt" || topic == "options" {
		return general
	}
	if t, ok := topics[topic]; ok {
		return fmt.Sprintf("%s\n%s", general, t)
	}
	return general
}
