package ops

import (
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
)

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func flipASCII(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A')
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A')
	default:
		return b
	}
}

func mapBytes(s string, f func(byte) byte) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = f(s[i])
	}
	return string(out)
}

// asciiLower and asciiEqualFold are the nocase-modifier primitives used
// throughout internal/ops: every case-insensitive comparison in rp is
// ASCII-only (spec.md §1 Non-goals), so strings.ToLower/EqualFold
// (Unicode-aware) are deliberately not used for them.
func asciiLower(s string) string {
	return mapBytes(s, toLowerASCII)
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLowerASCII(a[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

// caseIter implements :upper / :lower / :case: a pure streaming,
// byte-at-a-time ASCII map (spec.md §4.2).
type caseIter struct {
	up   record.Iterator
	mode pipeline.CaseMode
}

func (it *caseIter) Next() (record.Record, bool, error) {
	r, ok, err := it.up.Next()
	if !ok || err != nil {
		return record.Record{}, ok, err
	}
	var f func(byte) byte
	switch it.mode {
	case pipeline.CaseUpper:
		f = toUpperASCII
	case pipeline.CaseLower:
		f = toLowerASCII
	default:
		f = flipASCII
	}
	return record.New(mapBytes(r.Text(), f)), true, nil
}
