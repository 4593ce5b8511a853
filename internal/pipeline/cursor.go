package pipeline

import "strings"

// cursor walks a token slice left to right without ever looking behind,
// matching the single left-to-right scan spec.md §4.1 describes for the
// command parser.
type cursor struct {
	toks []string
	pos  int
}

func newCursor(toks []string) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	return c.toks[c.pos], true
}

func (c *cursor) next() (string, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

func (c *cursor) done() bool {
	return c.pos >= len(c.toks)
}

func isStageToken(tok string) bool {
	return strings.HasPrefix(tok, ":")
}

// atStageBoundary reports whether the next token (if any) begins a new
// stage command, i.e. the current operator/source/sink has no more
// tokens to consume.
func (c *cursor) atStageBoundary() bool {
	tok, ok := c.peek()
	return !ok || isStageToken(tok)
}

// collectUntilBoundary consumes and returns every token up to the next
// stage command or end of input.
func (c *cursor) collectUntilBoundary() []string {
	var out []string
	for !c.atStageBoundary() {
		tok, _ := c.next()
		out = append(out, tok)
	}
	return out
}

// takeKeyword consumes and returns the next token if it is not a stage
// boundary and equals one of the given keywords.
func (c *cursor) takeKeyword(keywords ...string) (string, bool) {
	tok, ok := c.peek()
	if !ok || isStageToken(tok) {
		return "", false
	}
	for _, kw := range keywords {
		if tok == kw {
			c.next()
			return tok, true
		}
	}
	return "", false
}

// takeValue consumes and returns the next token if it is not a stage
// boundary and not equal to any of the reserved keywords (so a plain
// positional value isn't mistaken for a modifier).
func (c *cursor) takeValue(reserved ...string) (string, bool) {
	tok, ok := c.peek()
	if !ok || isStageToken(tok) {
		return "", false
	}
	for _, kw := range reserved {
		if tok == kw {
			return "", false
		}
	}
	c.next()
	return tok, true
}
