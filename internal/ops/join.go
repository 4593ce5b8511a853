package ops

import (
	"strings"

	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// joinIter implements :join (spec.md §4.2): buffers records, joining
// with Delim and wrapping with Prefix/Postfix, emitting one record per
// Batch input records (or once at end-of-stream when Batch is unset).
type joinIter struct {
	up    record.Iterator
	op    pipeline.JoinOp
	done  bool
	batch []string
}

func newJoinIter(up record.Iterator, op pipeline.JoinOp) *joinIter {
	return &joinIter{up: up, op: op}
}

func (it *joinIter) Next() (record.Record, bool, error) {
	if it.done {
		return record.Record{}, false, nil
	}
	if it.op.Batch != nil {
		return it.nextBatch()
	}
	return it.nextWhole()
}

func (it *joinIter) nextWhole() (record.Record, bool, error) {
	var parts []string
	for {
		r, ok, err := it.up.Next()
		if err != nil {
			return record.Record{}, false, err
		}
		if !ok {
			break
		}
		parts = append(parts, r.Text())
	}
	it.done = true
	if len(parts) == 0 {
		return record.Record{}, false, nil
	}
	return record.New(it.render(parts)), true, nil
}

func (it *joinIter) nextBatch() (record.Record, bool, error) {
	n := *it.op.Batch
	if n <= 0 {
		n = 1
	}
	var parts []string
	for len(parts) < n {
		r, ok, err := it.up.Next()
		if err != nil {
			return record.Record{}, false, err
		}
		if !ok {
			it.done = true
			break
		}
		parts = append(parts, r.Text())
	}
	if len(parts) == 0 {
		return record.Record{}, false, nil
	}
	return record.New(it.render(parts)), true, nil
}

func (it *joinIter) render(parts []string) string {
	var b strings.Builder
	b.WriteString(it.op.Prefix)
	b.WriteString(strings.Join(parts, it.op.Delim))
	b.WriteString(it.op.Postfix)
	return b.String()
}
