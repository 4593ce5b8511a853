package cliopts

import (
	"errors"
	"testing"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, remaining, err := Parse([]string{"-v", "-n", ":of", "a"})
	require.NoError(t, err)
	require.True(t, opts.Verbose)
	require.True(t, opts.NocaseGlobal)
	require.Equal(t, []string{":of", "a"}, remaining)
}

func TestParseShowHelp(t *testing.T) {
	opts, _, err := Parse([]string{"-h", "cond"})
	require.ErrorIs(t, err, ErrShowHelp)
	require.Equal(t, "cond", opts.HelpTopic)
}

func TestParseShowHelpUnknownTopicIsIgnored(t *testing.T) {
	opts, _, err := Parse([]string{"-h", "bogus"})
	require.ErrorIs(t, err, ErrShowHelp)
	require.Equal(t, "", opts.HelpTopic)
}

func TestParseShowVersion(t *testing.T) {
	_, _, err := Parse([]string{"-V"})
	require.ErrorIs(t, err, ErrShowVersion)
}

func TestParseTokenMetaSplice(t *testing.T) {
	_, remaining, err := Parse([]string{"-t", ":of a b :to out"})
	require.NoError(t, err)
	require.Equal(t, []string{":of", "a", "b", ":to", "out"}, remaining)
}

func TestParseTokenOnlyExpandsFirstOccurrence(t *testing.T) {
	_, remaining, err := Parse([]string{"-t", `:of '-t' x`})
	require.NoError(t, err)
	require.Equal(t, []string{":of", "-t", "x"}, remaining)
}

func TestParseTokenMissingArgument(t *testing.T) {
	_, _, err := Parse([]string{"-t"})
	requireExitCode(t, err, exitcode.MissingArgument)
}

func TestParseExplicitFlagsTracked(t *testing.T) {
	_, _, explicit, err := ParseWithExplicit([]string{"-n"})
	require.NoError(t, err)
	require.True(t, explicit["nocase"])
	require.False(t, explicit["skip-err"])
}

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	var ec *exitcode.Error
	require.True(t, errors.As(err, &ec))
	require.Equal(t, want, ec.Code)
}
