package cond

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse compiles one condition expression (the full text following
// :drop/:take/:drop while/:take while, already extracted as a single
// argument by the command parser) into a Node.
func Parse(expr string) (Node, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, fmt.Errorf("condition: empty expression")
	}

	negated := false
	if strings.HasPrefix(s, "!") {
		negated = true
		s = strings.TrimSpace(s[1:])
	}

	kw, rest := splitFirstWord(s)
	rest = strings.TrimSpace(rest)

	switch kw {
	case "len":
		if rest == "" {
			return nil, fmt.Errorf("condition: len requires MIN,MAX or =N")
		}
		return parseLenSpec(rest, negated)
	case "num":
		if rest == "" {
			return NumKindNode{Kind: KindAny, Negated: negated}, nil
		}
		word, trailing := splitFirstWord(rest)
		if strings.TrimSpace(trailing) != "" {
			return nil, fmt.Errorf("condition: unexpected trailing content after num %s", word)
		}
		switch word {
		case "integer":
			return NumKindNode{Kind: KindInteger, Negated: negated}, nil
		case "float":
			return NumKindNode{Kind: KindFloat, Negated: negated}, nil
		default:
			return parseNumSpec(word, negated)
		}
	case "upper":
		if negated || rest != "" {
			return nil, fmt.Errorf("condition: upper takes no modifiers")
		}
		return Upper{}, nil
	case "lower":
		if negated || rest != "" {
			return nil, fmt.Errorf("condition: lower takes no modifiers")
		}
		return Lower{}, nil
	case "empty":
		if negated || rest != "" {
			return nil, fmt.Errorf("condition: empty takes no modifiers")
		}
		return Empty{}, nil
	case "blank":
		if negated || rest != "" {
			return nil, fmt.Errorf("condition: blank takes no modifiers")
		}
		return Blank{}, nil
	case "reg":
		if negated {
			return nil, fmt.Errorf("condition: reg cannot be negated")
		}
		if rest == "" {
			return nil, fmt.Errorf("condition: reg requires a pattern")
		}
		re, err := regexp.Compile(rest)
		if err != nil {
			return nil, fmt.Errorf("condition: invalid regex %q: %w", rest, err)
		}
		return Regex{Pattern: rest, re: re}, nil
	default:
		return nil, fmt.Errorf("condition: unknown keyword %q", kw)
	}
}

// splitFirstWord splits s into its first whitespace-delimited word and
// everything after it (including the separating whitespace, untrimmed;
// callers trim it themselves, so a reg pattern loses its leading and
// trailing whitespace).
func splitFirstWord(s string) (word, rest string) {
	i := 0
	for i < len(s) && !isAsciiWhitespace(s[i]) {
		i++
	}
	word = s[:i]
	if i < len(s) {
		rest = s[i:]
	}
	return word, rest
}

func parseLenSpec(spec string, negated bool) (Node, error) {
	if strings.HasPrefix(spec, "=") {
		n, err := strconv.Atoi(spec[1:])
		if err != nil {
			return nil, fmt.Errorf("condition: len =N: %w", err)
		}
		return LenEq{N: n, Negated: negated}, nil
	}
	minStr, maxStr, err := splitRange(spec)
	if err != nil {
		return nil, fmt.Errorf("condition: len: %w", err)
	}
	var min, max *int
	if minStr != "" {
		v, err := strconv.Atoi(minStr)
		if err != nil {
			return nil, fmt.Errorf("condition: len: invalid min %q: %w", minStr, err)
		}
		min = &v
	}
	if maxStr != "" {
		v, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("condition: len: invalid max %q: %w", maxStr, err)
		}
		max = &v
	}
	if min == nil && max == nil {
		return nil, fmt.Errorf("condition: len: at least one of MIN, MAX must be given")
	}
	return LenRange{Min: min, Max: max, Negated: negated}, nil
}

func parseNumSpec(spec string, negated bool) (Node, error) {
	if strings.HasPrefix(spec, "=") {
		v, err := strconv.ParseFloat(spec[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("condition: num =V: %w", err)
		}
		return NumEq{Value: v, Negated: negated}, nil
	}
	minStr, maxStr, err := splitRange(spec)
	if err != nil {
		return nil, fmt.Errorf("condition: num: %w", err)
	}
	var min, max *float64
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, fmt.Errorf("condition: num: invalid min %q: %w", minStr, err)
		}
		min = &v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, fmt.Errorf("condition: num: invalid max %q: %w", maxStr, err)
		}
		max = &v
	}
	if min == nil && max == nil {
		return nil, fmt.Errorf("condition: num: at least one of MIN, MAX must be given")
	}
	return NumRange{Min: min, Max: max, Negated: negated}, nil
}

func splitRange(spec string) (min, max string, err error) {
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected MIN,MAX, got %q", spec)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
