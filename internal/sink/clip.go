package sink

import (
	"fmt"
	"strings"

	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// runClipboard implements :to clip (spec.md §4.5): the full sequence is
// drained, joined with the chosen newline, and written once at
// end-of-stream — the clipboard is accessed exactly once per run.
func runClipboard(it record.Iterator, s pipeline.ClipboardSink, p clipboard.Provider) (int, error) {
	recs, err := record.Drain(it)
	if err != nil {
		return 0, err
	}
	parts := make([]string, len(recs))
	for i, r := range recs {
		parts[i] = r.Text()
	}
	text := strings.Join(parts, string(s.Newline.Bytes()))
	if err := p.Write(text); err != nil {
		return len(recs), exitcode.New(exitcode.ClipboardWrite, fmt.Errorf("to clip: %w", err))
	}
	return len(recs), nil
}
