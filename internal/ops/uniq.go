package ops

import (
	"github.com/oyealex/rp/internal/record"
)

// uniqIter implements :uniq: emits the first occurrence of each record
// seen so far, preserving order, per spec.md §4.2. It is streaming (one
// upstream pull per emitted or suppressed record) but keeps unbounded
// state: a set of every distinct key seen.
type uniqIter struct {
	up     record.Iterator
	nocase bool
	seen   map[string]struct{}
}

func newUniqIter(up record.Iterator, nocase bool) *uniqIter {
	return &uniqIter{up: up, nocase: nocase, seen: make(map[string]struct{})}
}

func (it *uniqIter) Next() (record.Record, bool, error) {
	for {
		r, ok, err := it.up.Next()
		if !ok || err != nil {
			return record.Record{}, ok, err
		}
		key := r.Text()
		if it.nocase {
			key = asciiLower(key)
		}
		if _, dup := it.seen[key]; dup {
			continue
		}
		it.seen[key] = struct{}{}
		return r, true, nil
	}
}
