package source

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/record"
)

// lineIterator reads lines from a non-interactive reader (piped or
// redirected stdin, or a file), matching spec.md §4.3: the trailing
// terminator is stripped and a final unterminated line is still
// yielded. bufio.Scanner already does exactly this.
type lineIterator struct {
	scanner *bufio.Scanner
	source  string
}

func newLineIterator(r io.Reader) *lineIterator {
	return &lineIterator{scanner: bufio.NewScanner(r), source: "stdin"}
}

func (it *lineIterator) Next() (record.Record, bool, error) {
	if it.scanner.Scan() {
		return record.New(it.scanner.Text()), true, nil
	}
	if err := it.scanner.Err(); err != nil {
		return record.Record{}, false, exitcode.New(exitcode.FileRead, fmt.Errorf("%s: %w", it.source, err))
	}
	return record.Record{}, false, nil
}

// interactiveStdinIterator reads lines with github.com/chzyer/readline
// when stdin is a terminal, the way the teacher's internal/llmsh.Shell
// uses readline for its own interactive prompt. This only changes the
// editing experience for a human typing directly into rp; the emitted
// record stream is identical to the non-interactive reader.
type interactiveStdinIterator struct {
	rl   *readline.Instance
	done bool
}

func newInteractiveStdinIterator() (*interactiveStdinIterator, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rp> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, exitcode.New(exitcode.FileRead, fmt.Errorf("stdin: %w", err))
	}
	return &interactiveStdinIterator{rl: rl}, nil
}

func (it *interactiveStdinIterator) Next() (record.Record, bool, error) {
	if it.done {
		return record.Record{}, false, nil
	}
	line, err := it.rl.Readline()
	if err != nil {
		it.done = true
		it.rl.Close()
		if err == io.EOF || err == readline.ErrInterrupt {
			return record.Record{}, false, nil
		}
		return record.Record{}, false, exitcode.New(exitcode.FileRead, fmt.Errorf("stdin: %w", err))
	}
	return record.New(line), true, nil
}
