package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	desc, err := pipeline.Build([]string{":of", "a", "b", "c", ":upper"})
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = Run(desc, IO{Stdin: strings.NewReader(""), Stdout: &stdout})
	require.NoError(t, err)
	require.Equal(t, "A\nB\nC\n", stdout.String())
}

func TestRunDryRunDoesNotExecute(t *testing.T) {
	desc, err := pipeline.Build([]string{":of", "a"})
	require.NoError(t, err)
	desc.Options = cliopts.Options{DryRun: true, Verbose: true}

	var stdout, stderr bytes.Buffer
	err = Run(desc, IO{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	require.Empty(t, stdout.String())
	require.NotEmpty(t, stderr.String())
}
