package sink

import (
	"fmt"
	"os"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// runFile implements :to file (spec.md §4.5): truncate by default,
// append when requested, the chosen newline for every record including
// the last. Open failure is exit 12, any write failure is exit 13.
func runFile(it record.Iterator, s pipeline.FileSink) (int, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if s.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(s.Path, flags, 0o644)
	if err != nil {
		return 0, exitcode.New(exitcode.FileOpen, fmt.Errorf("to file: %w", err))
	}
	defer f.Close()

	nl := s.Newline.Bytes()
	n := 0
	for {
		rec, ok, err := it.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		if _, err := f.WriteString(rec.Text()); err != nil {
			return n, exitcode.New(exitcode.FileWrite, fmt.Errorf("to file: %w", err))
		}
		if _, err := f.Write(nl); err != nil {
			return n, exitcode.New(exitcode.FileWrite, fmt.Errorf("to file: %w", err))
		}
		n++
	}
}
