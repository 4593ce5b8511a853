package ops

import (
	"strings"

	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

// replaceIter implements :replace: leftmost non-overlapping substring
// replacement, optionally ASCII-case-folded on the match side only (the
// replacement text is always used verbatim).
type replaceIter struct {
	up     record.Iterator
	op     pipeline.ReplaceOp
	nocase bool
}

func (it *replaceIter) Next() (record.Record, bool, error) {
	r, ok, err := it.up.Next()
	if !ok || err != nil {
		return record.Record{}, ok, err
	}
	limit := -1
	if it.op.Count != nil {
		limit = *it.op.Count
	}
	return record.New(it.replaceN(r.Text(), limit)), true, nil
}

func (it *replaceIter) replaceN(text string, limit int) string {
	if it.op.From == "" {
		return text
	}
	if !it.nocase {
		if limit < 0 {
			return strings.ReplaceAll(text, it.op.From, it.op.To)
		}
		return strings.Replace(text, it.op.From, it.op.To, limit)
	}

	var b strings.Builder
	lowerText := asciiLower(text)
	lowerFrom := asciiLower(it.op.From)
	count := 0
	i := 0
	for i < len(text) {
		if (limit < 0 || count < limit) && strings.HasPrefix(lowerText[i:], lowerFrom) {
			b.WriteString(it.op.To)
			i += len(it.op.From)
			count++
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}
