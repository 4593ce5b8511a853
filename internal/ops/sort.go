package ops

import (
	"math/rand"
	"sort"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// newSortIter implements :sort (spec.md §4.2): a buffering operator
// that drains its upstream, sorts (or Fisher-Yates shuffles, for
// :sort random), and replays the result.
func newSortIter(up record.Iterator, op pipeline.SortOp, ctx Context) (record.Iterator, error) {
	recs, err := record.Drain(up)
	if err != nil {
		return nil, err
	}

	if op.Random {
		rand.Shuffle(len(recs), func(i, j int) { recs[i], recs[j] = recs[j], recs[i] })
		return record.NewSliceIterator(recs), nil
	}

	nocase := ctx.nocase(op.Nocase)

	if op.Num {
		keys := make([]float64, len(recs))
		kept := recs[:0:0]
		keptKeys := keys[:0:0]
		for _, r := range recs {
			r, v, ok := numericKey(r)
			if !ok {
				if op.Default != nil {
					v = *op.Default
					ok = true
				} else if ctx.Global.SkipErrGlobal {
					ctx.warn("sort: skipping record %q: not numeric", r.Text())
					continue
				} else {
					return nil, exitcode.New(exitcode.NumericParse, numericParseErr(r))
				}
			}
			kept = append(kept, r)
			keptKeys = append(keptKeys, v)
		}
		recs, keys = kept, keptKeys
		idx := make([]int, len(recs))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(i, j int) bool {
			a, b := keys[idx[i]], keys[idx[j]]
			if op.Desc {
				return a > b
			}
			return a < b
		})
		out := make([]record.Record, len(recs))
		for i, ix := range idx {
			out[i] = recs[ix]
		}
		return record.NewSliceIterator(out), nil
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i].Text(), recs[j].Text()
		if nocase {
			a, b = asciiLower(a), asciiLower(b)
		}
		if op.Desc {
			return a > b
		}
		return a < b
	})
	return record.NewSliceIterator(recs), nil
}

func numericKey(r record.Record) (record.Record, float64, bool) {
	r, iv, iok := r.AsInt()
	if iok {
		return r, float64(iv), true
	}
	r, fv, fok := r.AsFloat()
	return r, fv, fok
}

func numericParseErr(r record.Record) error {
	return &numericParseError{text: r.Text()}
}

type numericParseError struct{ text string }

func (e *numericParseError) Error() string {
	return "sort: record is not numeric: " + e.text
}
