// Package sink implements the output stage of an rp pipeline (spec.md
// §4.5): each drains a record.Iterator to completion.
package sink

import (
	"fmt"
	"io"

	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// Context carries the process-wide collaborators a sink needs: the real
// stdout stream (or a test double) and the clipboard provider.
type Context struct {
	Stdout    io.Writer
	Clipboard clipboard.Provider
}

// Run drains it into the sink described by s, returning the number of
// records written.
func Run(s pipeline.Sink, it record.Iterator, ctx Context) (int, error) {
	switch sk := s.(type) {
	case pipeline.StdoutSink:
		return runStdout(it, ctx.Stdout)
	case pipeline.FileSink:
		return runFile(it, sk)
	case pipeline.ClipboardSink:
		return runClipboard(it, sk, ctx.Clipboard)
	default:
		return 0, fmt.Errorf("sink: unsupported sink %T", s)
	}
}
