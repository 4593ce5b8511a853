package source

import (
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// repeatIterator implements :repeat (spec.md §4.3): yields Value either
// Count times or indefinitely when Count is nil.
type repeatIterator struct {
	value     string
	remaining int64
	unbounded bool
}

func newRepeatIterator(s pipeline.RepeatSource) record.Iterator {
	if s.Count == nil {
		return &repeatIterator{value: s.Value, unbounded: true}
	}
	return &repeatIterator{value: s.Value, remaining: *s.Count}
}

func (it *repeatIterator) Next() (record.Record, bool, error) {
	if it.unbounded {
		return record.New(it.value), true, nil
	}
	if it.remaining <= 0 {
		return record.Record{}, false, nil
	}
	it.remaining--
	return record.New(it.value), true, nil
}
