// Package config resolves process-wide defaults from the environment,
// the way the example pack's taskguild service uses envconfig in its
// internal/config/env.go. The values only fill in switches that were
// not given explicitly on the command line.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/oyealex/rp/internal/cliopts"
)

// Env holds the RP_-prefixed environment overrides for the process-wide
// switches of spec.md §3. A flag explicitly given on the command line
// always wins over these; Env only supplies what the user didn't type.
type Env struct {
	Nocase  bool `envconfig:"NOCASE" default:"false"`
	SkipErr bool `envconfig:"SKIP_ERR" default:"false"`
	Verbose bool `envconfig:"VERBOSE" default:"false"`
}

// Load reads RP_NOCASE, RP_SKIP_ERR and RP_VERBOSE from the environment.
func Load() (Env, error) {
	var e Env
	if err := envconfig.Process("rp", &e); err != nil {
		return Env{}, fmt.Errorf("config: %w", err)
	}
	return e, nil
}

// ApplyDefaults overlays e onto opts for every switch the user did not
// pass explicitly, identified by explicitlySet.
func (e Env) ApplyDefaults(opts cliopts.Options, explicitlySet map[string]bool) cliopts.Options {
	if !explicitlySet["nocase"] && e.Nocase {
		opts.NocaseGlobal = true
	}
	if !explicitlySet["skip-err"] && e.SkipErr {
		opts.SkipErrGlobal = true
	}
	if !explicitlySet["verbose"] && e.Verbose {
		opts.Verbose = true
	}
	return opts
}
