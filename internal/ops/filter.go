package ops

import (
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// filterIter implements :drop/:take and their while variants
// (spec.md §4.2): per-record predicate filters, or prefix filters that
// latch once the condition flips.
type filterIter struct {
	up     record.Iterator
	op     pipeline.FilterOp
	latched bool // while variants: true once the prefix condition has flipped
}

func newFilterIter(up record.Iterator, op pipeline.FilterOp) *filterIter {
	return &filterIter{up: up, op: op}
}

func (it *filterIter) Next() (record.Record, bool, error) {
	if it.op.While {
		return it.nextWhile()
	}
	return it.nextPlain()
}

func (it *filterIter) nextPlain() (record.Record, bool, error) {
	for {
		r, ok, err := it.up.Next()
		if !ok || err != nil {
			return record.Record{}, ok, err
		}
		r, holds, err := it.op.Cond.Eval(r)
		if err != nil {
			return record.Record{}, false, err
		}
		// :drop emits records for which cond is false; :take emits
		// records for which cond is true.
		emit := holds
		if it.op.Drop {
			emit = !holds
		}
		if emit {
			return r, true, nil
		}
	}
}

func (it *filterIter) nextWhile() (record.Record, bool, error) {
	for {
		r, ok, err := it.up.Next()
		if !ok || err != nil {
			return record.Record{}, ok, err
		}
		if it.latched {
			// drop while: once cond has gone false, emit everything
			// unconditionally. take while: once cond has gone false,
			// stop emitting entirely — but we must keep pulling
			// upstream to drain it lazily on demand, so signal end.
			if it.op.Drop {
				return r, true, nil
			}
			return record.Record{}, false, nil
		}
		r, holds, err := it.op.Cond.Eval(r)
		if err != nil {
			return record.Record{}, false, err
		}
		if holds {
			if it.op.Drop {
				// drop while holds: skip this record, keep waiting.
				continue
			}
			// take while holds: emit this record, keep taking.
			return r, true, nil
		}
		// cond just went false: latch.
		it.latched = true
		if it.op.Drop {
			return r, true, nil
		}
		return record.Record{}, false, nil
	}
}
