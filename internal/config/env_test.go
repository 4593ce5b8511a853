package config

import (
	"os"
	"testing"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("RP_NOCASE")
	os.Unsetenv("RP_SKIP_ERR")
	os.Unsetenv("RP_VERBOSE")
	e, err := Load()
	require.NoError(t, err)
	require.False(t, e.Nocase)
	require.False(t, e.SkipErr)
	require.False(t, e.Verbose)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RP_NOCASE", "true")
	e, err := Load()
	require.NoError(t, err)
	require.True(t, e.Nocase)
}

func TestApplyDefaultsOnlyFillsUnsetFlags(t *testing.T) {
	e := Env{Nocase: true, SkipErr: true, Verbose: true}
	opts := cliopts.Options{NocaseGlobal: false}
	explicit := map[string]bool{"nocase": true}

	out := e.ApplyDefaults(opts, explicit)
	require.False(t, out.NocaseGlobal, "explicit flag must not be overridden by env")
	require.True(t, out.SkipErrGlobal)
	require.True(t, out.Verbose)
}
