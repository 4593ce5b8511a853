package ops

import (
	"strings"

	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

const asciiWhitespace = " \t\r\n\v\f"

// trimIter implements :trim/:ltrim/:rtrim and their :*c charset
// variants (spec.md §4.2).
type trimIter struct {
	up     record.Iterator
	op     pipeline.TrimOp
	nocase bool
}

func (it *trimIter) Next() (record.Record, bool, error) {
	r, ok, err := it.up.Next()
	if !ok || err != nil {
		return record.Record{}, ok, err
	}
	return record.New(it.trim(r.Text())), true, nil
}

func (it *trimIter) trim(s string) string {
	if it.op.CharSet {
		return it.trimCharSet(s)
	}
	return it.trimSubstring(s)
}

func asciiFold(b byte) byte {
	return toLowerASCII(b)
}

func (it *trimIter) trimCharSet(s string) string {
	set := it.op.Pattern
	if !it.op.HasPattern {
		set = asciiWhitespace
	}
	inSet := make(map[byte]bool, len(set))
	for i := 0; i < len(set); i++ {
		b := set[i]
		if it.nocase {
			b = asciiFold(b)
		}
		inSet[b] = true
	}
	match := func(b byte) bool {
		if it.nocase {
			b = asciiFold(b)
		}
		return inSet[b]
	}

	start, end := 0, len(s)
	if it.op.Side != pipeline.TrimRight {
		for start < end && match(s[start]) {
			start++
		}
	}
	if it.op.Side != pipeline.TrimLeft {
		for end > start && match(s[end-1]) {
			end--
		}
	}
	return s[start:end]
}

func (it *trimIter) trimSubstring(s string) string {
	if !it.op.HasPattern {
		start, end := 0, len(s)
		if it.op.Side != pipeline.TrimRight {
			for start < end && strings.IndexByte(asciiWhitespace, s[start]) >= 0 {
				start++
			}
		}
		if it.op.Side != pipeline.TrimLeft {
			for end > start && strings.IndexByte(asciiWhitespace, s[end-1]) >= 0 {
				end--
			}
		}
		return s[start:end]
	}

	pattern := it.op.Pattern
	if pattern == "" {
		return s
	}
	hasPrefix := func(s string) bool {
		if it.nocase {
			return len(s) >= len(pattern) && asciiEqualFold(s[:len(pattern)], pattern)
		}
		return strings.HasPrefix(s, pattern)
	}
	hasSuffix := func(s string) bool {
		if it.nocase {
			return len(s) >= len(pattern) && asciiEqualFold(s[len(s)-len(pattern):], pattern)
		}
		return strings.HasSuffix(s, pattern)
	}

	if it.op.Side != pipeline.TrimRight {
		for hasPrefix(s) {
			s = s[len(pattern):]
		}
	}
	if it.op.Side != pipeline.TrimLeft {
		for hasSuffix(s) {
			s = s[:len(s)-len(pattern)]
		}
	}
	return s
}
