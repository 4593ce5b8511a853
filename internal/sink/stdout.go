package sink

import (
	"fmt"
	"io"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/record"
)

// runStdout implements :to out (spec.md §4.5): each record followed by
// LF, written as it is pulled so downstream consumers see output
// incrementally rather than buffered to end-of-stream.
func runStdout(it record.Iterator, w io.Writer) (int, error) {
	n := 0
	for {
		rec, ok, err := it.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		if _, err := fmt.Fprintf(w, "%s\n", rec.Text()); err != nil {
			return n, exitcode.New(exitcode.FileWrite, fmt.Errorf("stdout: %w", err))
		}
		n++
	}
}
