// Package driver wires a parsed pipeline.Description into a running
// record.Iterator chain and drains it into the sink, the way the
// teacher's cmd/llmcmd/main.go wires its own parsed config into a
// running broker before draining its result.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/ops"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
	"github.com/oyealex/rp/internal/sink"
	"github.com/oyealex/rp/internal/source"
)

// IO bundles the real process streams (or test doubles) the driver
// needs beyond the parsed pipeline itself.
type IO struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
	Clipboard   clipboard.Provider
}

// Run builds and drains the pipeline described by d. Under --dry-run it
// prints the resolved description (when --verbose) and returns without
// executing any stage. The SIGINT handler is installed once the operator
// chain is built; a SIGINT after that stops the sink pulling further
// records and the run ends as if the source had reached EOF. Operators
// that drain their upstream while being built (:count, :sort) do so
// before the handler is in place.
func Run(d *pipeline.Description, io_ IO) error {
	if io_.Stderr == nil {
		io_.Stderr = os.Stderr
	}
	if d.Options.Verbose {
		printDescription(d, io_.Stderr)
	}
	if d.Options.DryRun {
		return nil
	}

	srcIter, err := source.Build(d.Source, source.Context{
		Stdin:       io_.Stdin,
		Interactive: io_.Interactive,
		Clipboard:   io_.Clipboard,
	})
	if err != nil {
		return err
	}

	warn := func(format string, args ...any) {
		c := color.New(color.FgYellow)
		fmt.Fprint(io_.Stderr, c.Sprintf("rp: warning: "+format+"\n", args...))
	}

	opsCtx := ops.Context{Global: d.Options, Warn: warn, Stdout: io_.Stdout}
	it := srcIter
	for _, op := range d.Operators {
		it, err = ops.Build(op, it, opsCtx)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	it = &cancelable{up: it, ctx: ctx}

	_, err = sink.Run(d.Sink, it, sink.Context{Stdout: io_.Stdout, Clipboard: io_.Clipboard})
	return err
}

func printDescription(d *pipeline.Description, w io.Writer) {
	c := color.New(color.FgCyan)
	fmt.Fprint(w, c.Sprint(d.String()))
}

// cancelable stops yielding records once ctx is done, so a SIGINT
// between pulls ends the run cleanly instead of mid-write.
type cancelable struct {
	up  record.Iterator
	ctx context.Context
}

func (c *cancelable) Next() (record.Record, bool, error) {
	select {
	case <-c.ctx.Done():
		return record.Record{}, false, nil
	default:
	}
	return c.up.Next()
}
