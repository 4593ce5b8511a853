// Package format implements the small {v} / {v:SPEC} template language
// used by :gen's optional fmt argument (spec.md §6). It is a
// hand-written parser rather than text/template: the spec's mini
// language isn't Go template syntax, and the teacher never reaches for
// text/template for this kind of narrow numeric formatting either.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oyealex/rp/internal/exitcode"
)

// Compile parses a format template containing zero or more {v} /
// {v:SPEC} placeholders and returns a function that renders it for a
// given integer value.
func Compile(tmpl string) (func(v int64) string, error) {
	segs, err := parseTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	return func(v int64) string {
		var b strings.Builder
		for _, s := range segs {
			if s.literal != "" || !s.isPlaceholder {
				b.WriteString(s.literal)
				continue
			}
			b.WriteString(s.render(v))
		}
		return b.String()
	}, nil
}

type segment struct {
	isPlaceholder bool
	literal       string
	render        func(v int64) string
}

func parseTemplate(tmpl string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder
	i := 0
	for i < len(tmpl) {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' { // literal "{{"
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: unterminated placeholder"))
			}
			inner := tmpl[i+1 : i+end]
			if lit.Len() > 0 {
				segs = append(segs, segment{literal: lit.String()})
				lit.Reset()
			}
			render, err := compilePlaceholder(inner)
			if err != nil {
				return nil, err
			}
			segs = append(segs, segment{isPlaceholder: true, render: render})
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' { // literal "}}"
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: unmatched '}'"))
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	return segs, nil
}

// compilePlaceholder handles the content between { and }: "v" or
// "v:SPEC".
func compilePlaceholder(inner string) (func(v int64) string, error) {
	name, spec, hasSpec := strings.Cut(inner, ":")
	if name != "v" {
		return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: unknown placeholder %q", inner))
	}
	if !hasSpec || spec == "" {
		return func(v int64) string { return strconv.FormatInt(v, 10) }, nil
	}
	return compileSpec(spec)
}

// compileSpec parses a numeric format spec: an optional '#' (base
// prefix), an optional zero-padded width (e.g. "04"), and exactly one
// base letter from {d, x, X, o, b}.
func compileSpec(spec string) (func(v int64) string, error) {
	rest := spec
	hashPrefix := false
	if strings.HasPrefix(rest, "#") {
		hashPrefix = true
		rest = rest[1:]
	}

	width := 0
	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	if j > 0 {
		w, err := strconv.Atoi(rest[:j])
		if err != nil {
			return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: invalid width in %q", spec))
		}
		width = w
		rest = rest[j:]
	}

	if len(rest) != 1 {
		return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: invalid spec %q", spec))
	}

	var base int
	var prefix string
	var upper bool
	switch rest[0] {
	case 'd':
		base, prefix = 10, ""
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix, upper = 16, "0x", true
	case 'o':
		base, prefix = 8, "0o"
	case 'b':
		base, prefix = 2, "0b"
	default:
		return nil, exitcode.New(exitcode.FormatError, fmt.Errorf("format: unrecognized base %q", spec))
	}
	if !hashPrefix {
		prefix = ""
	}

	return func(v int64) string {
		digits := strconv.FormatInt(v, base)
		neg := strings.HasPrefix(digits, "-")
		if neg {
			digits = digits[1:]
		}
		if upper {
			digits = strings.ToUpper(digits)
		}
		if width > 0 && len(digits) < width {
			digits = strings.Repeat("0", width-len(digits)) + digits
		}
		out := prefix + digits
		if neg {
			out = "-" + out
		}
		return out
	}, nil
}
