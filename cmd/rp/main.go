package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/oyealex/rp/internal/clipboard"
	"github.com/oyealex/rp/internal/config"
	"github.com/oyealex/rp/internal/driver"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/help"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/mattn/go-isatty"
)

const (
	appName    = "rp"
	appVersion = "0.1.0"
)

func main() {
	opts, remaining, explicit, err := cliopts.ParseWithExplicit(os.Args[1:])
	switch {
	case errors.Is(err, cliopts.ErrShowHelp):
		fmt.Print(help.Text(opts.HelpTopic))
		os.Exit(exitcode.OK)
	case errors.Is(err, cliopts.ErrShowVersion):
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(exitcode.OK)
	case err != nil:
		fail(err)
	}

	env, err := config.Load()
	if err != nil {
		fail(err)
	}
	opts = env.ApplyDefaults(opts, explicit)

	desc, err := pipeline.Build(remaining)
	if err != nil {
		fail(err)
	}
	desc.Options = opts

	io := driver.IO{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()),
		Clipboard:   clipboard.New(),
	}
	if err := driver.Run(desc, io); err != nil {
		fail(err)
	}
}

func fail(err error) {
	var ec *exitcode.Error
	if errors.As(err, &ec) {
		fmt.Fprintf(os.Stderr, "rp: %v\n", ec.Err)
		os.Exit(ec.Code)
	}
	fmt.Fprintf(os.Stderr, "rp: %v\n", err)
	os.Exit(exitcode.OptionsParse)
}
