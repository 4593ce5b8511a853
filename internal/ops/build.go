// Package ops implements the operator stage of an rp pipeline
// (spec.md §4.2): one record.Iterator wrapper per operator variant.
// Streaming operators (case, replace, trim, peek, filters, uniq) do
// O(1) work per Next() call; buffering operators (count, sort, and join
// without a batch size) drain their upstream fully before they can
// produce anything, per the resource model of spec.md §5. A batched join
// emits once every batch-size records.
package ops

import (
	"fmt"
	"io"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// Context carries the process-wide defaults an operator needs to build
// itself: the nocase/skip-err global fallbacks (spec.md §3 invariants)
// and a sink for diagnostics produced under --skip-err.
type Context struct {
	Global cliopts.Options
	Warn   func(format string, args ...any)

	// Stdout lets :peek without a file argument share stdout with
	// the rest of the process; tests substitute a buffer here.
	Stdout io.Writer
}

func (ctx Context) nocase(explicit bool) bool {
	return explicit || ctx.Global.NocaseGlobal
}

func (ctx Context) warn(format string, args ...any) {
	if ctx.Warn != nil {
		ctx.Warn(format, args...)
	}
}

// Build wraps upstream with the record.Iterator implementing op.
func Build(op pipeline.Operator, upstream record.Iterator, ctx Context) (record.Iterator, error) {
	switch o := op.(type) {
	case pipeline.CaseOp:
		return &caseIter{up: upstream, mode: o.Mode}, nil
	case pipeline.PeekOp:
		return newPeekIter(o, upstream, ctx)
	case pipeline.ReplaceOp:
		return &replaceIter{up: upstream, op: o, nocase: ctx.nocase(o.Nocase)}, nil
	case pipeline.TrimOp:
		return &trimIter{up: upstream, op: o, nocase: ctx.nocase(o.Nocase)}, nil
	case pipeline.UniqOp:
		return newUniqIter(upstream, ctx.nocase(o.Nocase)), nil
	case pipeline.JoinOp:
		return newJoinIter(upstream, o), nil
	case pipeline.FilterOp:
		return newFilterIter(upstream, o), nil
	case pipeline.CountOp:
		return newCountIter(upstream)
	case pipeline.SortOp:
		return newSortIter(upstream, o, ctx)
	default:
		return nil, fmt.Errorf("ops: unsupported operator %T", op)
	}
}
