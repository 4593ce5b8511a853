package source

import (
	"fmt"
	"strings"

	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/record"
)

// newClipboardIterator implements :clip (spec.md §4.3): reads the whole
// clipboard once, at construction time, and splits on LF or CRLF.
func newClipboardIterator(p clipboard.Provider) (record.Iterator, error) {
	text, err := p.Read()
	if err != nil {
		return nil, exitcode.New(exitcode.ClipboardRead, fmt.Errorf("clip: %w", err))
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	var lines []record.Record
	if normalized != "" {
		for _, l := range strings.Split(normalized, "\n") {
			lines = append(lines, record.New(l))
		}
	}
	return record.NewSliceIterator(lines), nil
}
