package source

import "github.com/oyealex/rp/internal/record"

// newLiteralIterator implements :of (spec.md §4.3): yields each given
// value in order, one record per value.
func newLiteralIterator(values []string) record.Iterator {
	recs := make([]record.Record, len(values))
	for i, v := range values {
		recs[i] = record.New(v)
	}
	return record.NewSliceIterator(recs)
}
