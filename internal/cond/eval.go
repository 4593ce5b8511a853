package cond

import "github.com/oyealex/rp/internal/record"

func isAsciiWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLowerByte(b byte) bool { return b >= 'a' && b <= 'z' }
func isCasedByte(b byte) bool { return isUpperByte(b) || isLowerByte(b) }

func (n LenRange) Eval(r record.Record) (record.Record, bool, error) {
	l := r.Len()
	ok := (n.Min == nil || l >= *n.Min) && (n.Max == nil || l <= *n.Max)
	if n.Negated {
		ok = !ok
	}
	return r, ok, nil
}

func (n LenEq) Eval(r record.Record) (record.Record, bool, error) {
	ok := r.Len() == n.N
	if n.Negated {
		ok = !ok
	}
	return r, ok, nil
}

// numericValue tries the record's integer view first, falling back to
// its float view, per spec.md §4.4 ("attempt to parse the record as a
// signed integer or finite float").
func numericValue(r record.Record) (record.Record, float64, bool) {
	r, iv, iok := r.AsInt()
	if iok {
		return r, float64(iv), true
	}
	r, fv, fok := r.AsFloat()
	return r, fv, fok
}

func (n NumRange) Eval(r record.Record) (record.Record, bool, error) {
	r, v, ok := numericValue(r)
	if !ok {
		// a failed parse is always false, negation included.
		return r, false, nil
	}
	inRange := (n.Min == nil || v >= *n.Min) && (n.Max == nil || v <= *n.Max)
	if n.Negated {
		inRange = !inRange
	}
	return r, inRange, nil
}

func (n NumEq) Eval(r record.Record) (record.Record, bool, error) {
	r, v, ok := numericValue(r)
	if !ok {
		return r, false, nil
	}
	eq := v == n.Value
	if n.Negated {
		eq = !eq
	}
	return r, eq, nil
}

func (n NumKindNode) Eval(r record.Record) (record.Record, bool, error) {
	r, _, iok := r.AsInt()
	var ok bool
	switch n.Kind {
	case KindInteger:
		ok = iok
	case KindFloat:
		if iok {
			ok = false
		} else {
			var fok bool
			r, _, fok = r.AsFloat()
			ok = fok
		}
	default: // KindAny
		if iok {
			ok = true
		} else {
			var fok bool
			r, _, fok = r.AsFloat()
			ok = fok
		}
	}
	if n.Negated {
		ok = !ok
	}
	return r, ok, nil
}

func (Upper) Eval(r record.Record) (record.Record, bool, error) {
	text := r.Text()
	for i := 0; i < len(text); i++ {
		b := text[i]
		if isCasedByte(b) && !isUpperByte(b) {
			return r, false, nil
		}
	}
	return r, true, nil
}

func (Lower) Eval(r record.Record) (record.Record, bool, error) {
	text := r.Text()
	for i := 0; i < len(text); i++ {
		b := text[i]
		if isCasedByte(b) && !isLowerByte(b) {
			return r, false, nil
		}
	}
	return r, true, nil
}

func (Empty) Eval(r record.Record) (record.Record, bool, error) {
	return r, r.Len() == 0, nil
}

func (Blank) Eval(r record.Record) (record.Record, bool, error) {
	text := r.Text()
	for i := 0; i < len(text); i++ {
		if !isAsciiWhitespace(text[i]) {
			return r, false, nil
		}
	}
	return r, true, nil
}

// Regex is `reg <pattern>`; Eval delegates to the compiled regexp.
type Regex struct {
	Pattern string
	re      regexMatcher
}

// regexMatcher narrows *regexp.Regexp down to the one method this
// package needs, so tests can supply a fake without importing regexp.
type regexMatcher interface {
	MatchString(string) bool
}

func (n Regex) Eval(r record.Record) (record.Record, bool, error) {
	return r, n.re.MatchString(r.Text()), nil
}
