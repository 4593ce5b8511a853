package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oyealex/rp/internal/cond"
	"github.com/oyealex/rp/internal/exitcode"
)

var inputCommands = map[string]bool{
	"in": true, "file": true, "clip": true, "of": true, "gen": true, "repeat": true,
}

var operatorCommands = map[string]bool{
	"peek": true, "upper": true, "lower": true, "case": true,
	"replace": true, "trim": true, "ltrim": true, "rtrim": true,
	"trimc": true, "ltrimc": true, "rtrimc": true,
	"uniq": true, "join": true, "drop": true, "take": true,
	"count": true, "sort": true,
}

// Build builds a Description from the stage-command tokens that remain
// after cliopts.Parse has consumed the leading option region. It is the
// four-pass scan of spec.md §4.1: source, operators, output.
func Build(tokens []string) (*Description, error) {
	c := newCursor(tokens)

	src, err := parseSource(c)
	if err != nil {
		return nil, err
	}

	var ops []Operator
	for {
		tok, ok := c.peek()
		if !ok {
			break
		}
		if !isStageToken(tok) {
			return nil, exitcode.New(exitcode.OpParse, fmt.Errorf("expected a stage command, got %q", tok))
		}
		name := tok[1:]
		if name == "to" {
			break
		}
		if !operatorCommands[name] {
			return nil, exitcode.New(exitcode.OpParse, fmt.Errorf("unknown operator %q", tok))
		}
		c.next()
		op, err := parseOperator(name, c)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	sink, err := parseSink(c)
	if err != nil {
		return nil, err
	}

	if !c.done() {
		rest, _ := c.peek()
		return nil, exitcode.New(exitcode.UnparsedRemain, fmt.Errorf("unparsed remainder starting at %q", rest))
	}

	return &Description{Source: src, Operators: ops, Sink: sink}, nil
}

func parseSource(c *cursor) (Source, error) {
	tok, ok := c.peek()
	if !ok {
		return StdinSource{}, nil
	}
	if !isStageToken(tok) {
		return nil, exitcode.New(exitcode.InputParse, fmt.Errorf("expected a stage command, got %q", tok))
	}
	name := tok[1:]
	if !inputCommands[name] {
		return StdinSource{}, nil
	}
	c.next()

	switch name {
	case "in":
		return StdinSource{}, nil
	case "file":
		paths := c.collectUntilBoundary()
		if len(paths) == 0 {
			return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":file requires at least one path"))
		}
		return FilesSource{Paths: paths}, nil
	case "clip":
		return ClipboardSource{}, nil
	case "of":
		return LiteralSource{Values: c.collectUntilBoundary()}, nil
	case "gen":
		return parseGenSource(c)
	case "repeat":
		return parseRepeatSource(c)
	}
	panic("unreachable")
}

func parseGenSource(c *cursor) (Source, error) {
	spec, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":gen requires start[,[end][,step]]"))
	}
	parts := strings.SplitN(spec, ",", 3)
	start, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":gen: invalid start %q: %w", parts[0], err))
	}
	var end *int64
	step := int64(1)
	if len(parts) >= 2 && strings.TrimSpace(parts[1]) != "" {
		v, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":gen: invalid end %q: %w", parts[1], err))
		}
		end = &v
	}
	if len(parts) >= 3 && strings.TrimSpace(parts[2]) != "" {
		v, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
		if err != nil {
			return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":gen: invalid step %q: %w", parts[2], err))
		}
		step = v
	}
	if step == 0 {
		return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":gen: step must not be zero"))
	}
	tmpl, _ := c.takeValue()
	return GenSource{Start: start, End: end, Step: step, Fmt: tmpl}, nil
}

func parseRepeatSource(c *cursor) (Source, error) {
	value, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":repeat requires a value"))
	}
	var count *int64
	if tok, ok := c.takeValue(); ok {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":repeat: invalid count %q: %w", tok, err))
		}
		count = &v
	}
	return RepeatSource{Value: value, Count: count}, nil
}

func parseOperator(name string, c *cursor) (Operator, error) {
	switch name {
	case "upper":
		return CaseOp{Mode: CaseUpper}, nil
	case "lower":
		return CaseOp{Mode: CaseLower}, nil
	case "case":
		return CaseOp{Mode: CaseFlip}, nil
	case "peek":
		return parsePeek(c)
	case "replace":
		return parseReplace(c)
	case "trim", "ltrim", "rtrim", "trimc", "ltrimc", "rtrimc":
		return parseTrim(name, c)
	case "uniq":
		_, nocase := c.takeKeyword("nocase")
		return UniqOp{Nocase: nocase}, nil
	case "join":
		return parseJoin(c)
	case "drop", "take":
		return parseFilter(name, c)
	case "count":
		return CountOp{}, nil
	case "sort":
		return parseSort(c)
	}
	return nil, exitcode.New(exitcode.OpParse, fmt.Errorf("unknown operator %q", name))
}

func parsePeek(c *cursor) (Operator, error) {
	file, _ := c.takeValue("append", "lf", "crlf")
	_, appendFlag := c.takeKeyword("append")
	newline := LF
	if _, ok := c.takeKeyword("crlf"); ok {
		newline = CRLF
	} else {
		c.takeKeyword("lf")
	}
	return PeekOp{File: file, Append: appendFlag, Newline: newline}, nil
}

func parseReplace(c *cursor) (Operator, error) {
	from, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":replace requires <from> <to>"))
	}
	to, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":replace requires <from> <to>"))
	}
	var count *int
	if tok, ok := c.takeValue("nocase"); ok {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":replace: invalid count %q: %w", tok, err))
		}
		count = &n
	}
	_, nocase := c.takeKeyword("nocase")
	return ReplaceOp{From: from, To: to, Count: count, Nocase: nocase}, nil
}

func parseTrim(name string, c *cursor) (Operator, error) {
	charSet := strings.HasSuffix(name, "c")
	base := strings.TrimSuffix(name, "c")
	var side TrimSide
	switch base {
	case "trim":
		side = TrimBoth
	case "ltrim":
		side = TrimLeft
	case "rtrim":
		side = TrimRight
	}
	pattern, hasPattern := c.takeValue("nocase")
	_, nocase := c.takeKeyword("nocase")
	return TrimOp{Side: side, CharSet: charSet, Pattern: pattern, HasPattern: hasPattern, Nocase: nocase}, nil
}

func parseJoin(c *cursor) (Operator, error) {
	op := JoinOp{}
	delim, ok := c.takeValue()
	if !ok {
		return op, nil
	}
	op.Delim = delim
	prefix, ok := c.takeValue()
	if !ok {
		return op, nil
	}
	op.Prefix = prefix
	postfix, ok := c.takeValue()
	if !ok {
		return op, nil
	}
	op.Postfix = postfix
	batchTok, ok := c.takeValue()
	if !ok {
		return op, nil
	}
	n, err := strconv.Atoi(batchTok)
	if err != nil {
		return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":join: invalid batch %q: %w", batchTok, err))
	}
	op.Batch = &n
	return op, nil
}

func parseFilter(name string, c *cursor) (Operator, error) {
	drop := name == "drop"
	while := false
	if _, ok := c.takeKeyword("while"); ok {
		while = true
	}
	exprTok, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":%s requires a condition", name))
	}
	node, err := cond.Parse(exprTok)
	if err != nil {
		code := exitcode.ArgumentParse
		if strings.Contains(err.Error(), "invalid regex") {
			code = exitcode.RegexCompile
		}
		return nil, exitcode.New(code, err)
	}
	return FilterOp{Cond: node, Drop: drop, While: while}, nil
}

func parseSort(c *cursor) (Operator, error) {
	op := SortOp{}
	if _, ok := c.takeKeyword("num"); ok {
		op.Num = true
		if tok, ok := c.takeValue("nocase", "desc", "random"); ok {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":sort: invalid default %q: %w", tok, err))
			}
			op.Default = &v
		}
	}
	for {
		if _, ok := c.takeKeyword("nocase"); ok {
			op.Nocase = true
			continue
		}
		if _, ok := c.takeKeyword("desc"); ok {
			op.Desc = true
			continue
		}
		if _, ok := c.takeKeyword("random"); ok {
			op.Random = true
			continue
		}
		break
	}
	if op.Random && (op.Num || op.Nocase || op.Desc) {
		return nil, exitcode.New(exitcode.ArgumentParse, fmt.Errorf(":sort: random is mutually exclusive with num/nocase/desc"))
	}
	return op, nil
}

func parseSink(c *cursor) (Sink, error) {
	tok, ok := c.peek()
	if !ok {
		return StdoutSink{}, nil
	}
	if !isStageToken(tok) || tok[1:] != "to" {
		return nil, exitcode.New(exitcode.OutputParse, fmt.Errorf("expected :to, got %q", tok))
	}
	c.next()
	target, ok := c.next()
	if !ok {
		return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":to requires a target (out|file|clip)"))
	}
	switch target {
	case "out":
		return StdoutSink{}, nil
	case "file":
		path, ok := c.next()
		if !ok {
			return nil, exitcode.New(exitcode.MissingArgument, fmt.Errorf(":to file requires a path"))
		}
		appendFlag, newline := parseSinkModifiers(c)
		return FileSink{Path: path, Append: appendFlag, Newline: newline}, nil
	case "clip":
		_, newline := parseSinkModifiers(c)
		return ClipboardSink{Newline: newline}, nil
	default:
		return nil, exitcode.New(exitcode.OutputParse, fmt.Errorf(":to: unknown target %q", target))
	}
}

func parseSinkModifiers(c *cursor) (appendFlag bool, newline Newline) {
	for {
		if _, ok := c.takeKeyword("append"); ok {
			appendFlag = true
			continue
		}
		if _, ok := c.takeKeyword("crlf"); ok {
			newline = CRLF
			continue
		}
		if _, ok := c.takeKeyword("lf"); ok {
			newline = LF
			continue
		}
		break
	}
	return appendFlag, newline
}
