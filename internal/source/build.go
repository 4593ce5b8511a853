// Package source implements the input stages of an rp pipeline
// (spec.md §4.3): each produces a record.Iterator.
package source

import (
	"fmt"
	"io"

	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// Context carries the process-wide collaborators a source needs: the
// real stdin stream (or a test double), whether stdin is a terminal
// (gating the readline-backed interactive reader), and the clipboard
// provider.
type Context struct {
	Stdin       io.Reader
	Interactive bool
	Clipboard   clipboard.Provider
}

// Build returns the record.Iterator for src.
func Build(src pipeline.Source, ctx Context) (record.Iterator, error) {
	switch s := src.(type) {
	case pipeline.StdinSource:
		if ctx.Interactive {
			return newInteractiveStdinIterator()
		}
		return newLineIterator(ctx.Stdin), nil
	case pipeline.FilesSource:
		return newFilesIterator(s.Paths)
	case pipeline.ClipboardSource:
		return newClipboardIterator(ctx.Clipboard)
	case pipeline.LiteralSource:
		return newLiteralIterator(s.Values), nil
	case pipeline.GenSource:
		return newGenIterator(s)
	case pipeline.RepeatSource:
		return newRepeatIterator(s), nil
	default:
		return nil, fmt.Errorf("source: unsupported source %T", src)
	}
}
