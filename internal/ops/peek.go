package ops

import (
	"fmt"
	"io"
	"os"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// peekIter implements :peek (spec.md §4.2): the identity on the
// sequence, with a side effect of writing each record plus its chosen
// newline to stdout or a file. The file (if any) is opened lazily on
// the first record and closed once upstream is exhausted.
type peekIter struct {
	up      record.Iterator
	op      pipeline.PeekOp
	ctxOut  io.Writer
	file    *os.File
	closed  bool
}

func newPeekIter(op pipeline.PeekOp, up record.Iterator, ctx Context) (*peekIter, error) {
	out := ctx.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &peekIter{up: up, op: op, ctxOut: out}, nil
}

func (it *peekIter) Next() (record.Record, bool, error) {
	r, ok, err := it.up.Next()
	if err != nil {
		it.close()
		return record.Record{}, false, err
	}
	if !ok {
		it.close()
		return record.Record{}, false, nil
	}
	if err := it.emit(r); err != nil {
		return record.Record{}, false, err
	}
	return r, true, nil
}

func (it *peekIter) emit(r record.Record) error {
	w, err := it.writer()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Text()); err != nil {
		return exitcode.New(exitcode.FileWrite, fmt.Errorf("peek: %w", err))
	}
	if _, err := w.Write(it.op.Newline.Bytes()); err != nil {
		return exitcode.New(exitcode.FileWrite, fmt.Errorf("peek: %w", err))
	}
	return nil
}

func (it *peekIter) writer() (io.Writer, error) {
	if it.op.File == "" {
		return it.ctxOut, nil
	}
	if it.file != nil {
		return it.file, nil
	}
	flags := os.O_CREATE | os.O_WRONLY
	if it.op.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(it.op.File, flags, 0o644)
	if err != nil {
		return nil, exitcode.New(exitcode.FileOpen, fmt.Errorf("peek: %w", err))
	}
	it.file = f
	return f, nil
}

func (it *peekIter) close() {
	if it.closed {
		return
	}
	it.closed = true
	if it.file != nil {
		it.file.Close()
	}
}
