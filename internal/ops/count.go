package ops

import (
	"strconv"

	"github.com/oyealex/rp/internal/record"
)

// countIter implements :count (spec.md §4.2): consumes the entire
// input, then emits exactly one record holding the decimal count.
type countIter struct {
	emitted bool
	n       int
}

func newCountIter(up record.Iterator) (*countIter, error) {
	recs, err := record.Drain(up)
	if err != nil {
		return nil, err
	}
	return &countIter{n: len(recs)}, nil
}

func (it *countIter) Next() (record.Record, bool, error) {
	if it.emitted {
		return record.Record{}, false, nil
	}
	it.emitted = true
	return record.New(strconv.Itoa(it.n)), true, nil
}
