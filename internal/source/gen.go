package source

import (
	"math"
	"strconv"

	"github.com/oyealex/rp/internal/format"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// genIterator implements :gen (spec.md §4.3): an arithmetic progression
// bounded inclusively on the side implied by the sign of Step, empty
// (not an error) when the range is already exhausted.
type genIterator struct {
	next   int64
	end    int64
	step   int64
	done   bool
	render func(int64) string
}

func newGenIterator(s pipeline.GenSource) (*genIterator, error) {
	renderFn := func(v int64) string { return strconv.FormatInt(v, 10) }
	if s.Fmt != "" {
		f, err := format.Compile(s.Fmt)
		if err != nil {
			return nil, err
		}
		renderFn = f
	}

	g := &genIterator{next: s.Start, step: s.Step, render: renderFn}
	if s.End != nil {
		g.end = *s.End
	} else if s.Step > 0 {
		g.end = math.MaxInt64
	} else {
		g.end = math.MinInt64
	}
	return g, nil
}

func (g *genIterator) Next() (record.Record, bool, error) {
	if g.done {
		return record.Record{}, false, nil
	}
	if g.step > 0 && g.next > g.end {
		g.done = true
		return record.Record{}, false, nil
	}
	if g.step < 0 && g.next < g.end {
		g.done = true
		return record.Record{}, false, nil
	}
	v := g.next
	// Guard against signed overflow when the next step would cross the
	// platform boundary; treat that as end-of-stream rather than wrap.
	if g.step > 0 && v > math.MaxInt64-g.step {
		g.done = true
	} else if g.step < 0 && v < math.MinInt64-g.step {
		g.done = true
	} else {
		g.next = v + g.step
	}
	return record.New(g.render(v)), true, nil
}
