package pipeline

import (
	"errors"
	"testing"

	"github.com/oyealex/rp/internal/exitcode"
	"github.com/stretchr/testify/require"
)

func TestBuildResolvesDefaults(t *testing.T) {
	d, err := Build(nil)
	require.NoError(t, err)
	require.Equal(t, StdinSource{}, d.Source)
	require.Empty(t, d.Operators)
	require.Equal(t, StdoutSink{}, d.Sink)
}

func TestBuildSource(t *testing.T) {
	d, err := Build([]string{":of", "a", "b", ":to", "out"})
	require.NoError(t, err)
	require.Equal(t, LiteralSource{Values: []string{"a", "b"}}, d.Source)
}

func TestBuildGenSource(t *testing.T) {
	d, err := Build([]string{":gen", "0,10,2"})
	require.NoError(t, err)
	end := int64(10)
	require.Equal(t, GenSource{Start: 0, End: &end, Step: 2}, d.Source)
}

func TestBuildGenRejectsZeroStep(t *testing.T) {
	_, err := Build([]string{":gen", "0,10,0"})
	requireExitCode(t, err, exitcode.ArgumentParse)
}

func TestBuildOperatorChain(t *testing.T) {
	d, err := Build([]string{":of", "apple", "banana", "apricot", ":uniq", ":take", "reg ^ap", ":count"})
	require.NoError(t, err)
	require.Len(t, d.Operators, 3)
	require.IsType(t, UniqOp{}, d.Operators[0])
	require.IsType(t, FilterOp{}, d.Operators[1])
	require.IsType(t, CountOp{}, d.Operators[2])
}

func TestBuildSortModifiers(t *testing.T) {
	d, err := Build([]string{":gen", "1,5", ":sort", "desc"})
	require.NoError(t, err)
	require.Equal(t, SortOp{Desc: true}, d.Operators[0])
}

func TestBuildSortRandomIsExclusive(t *testing.T) {
	_, err := Build([]string{":of", "a", ":sort", "random", "desc"})
	requireExitCode(t, err, exitcode.ArgumentParse)
}

func TestBuildUnknownOperator(t *testing.T) {
	_, err := Build([]string{":of", "a", ":bogus"})
	requireExitCode(t, err, exitcode.OpParse)
}

func TestBuildFileSink(t *testing.T) {
	d, err := Build([]string{":in", ":to", "file", "out.txt", "append", "crlf"})
	require.NoError(t, err)
	require.Equal(t, FileSink{Path: "out.txt", Append: true, Newline: CRLF}, d.Sink)
}

func TestBuildUnknownSinkTarget(t *testing.T) {
	_, err := Build([]string{":to", "bogus"})
	requireExitCode(t, err, exitcode.OutputParse)
}

func TestBuildRejectsUnparsedRemainder(t *testing.T) {
	_, err := Build([]string{":of", "a", ":to", "out", "extra"})
	requireExitCode(t, err, exitcode.UnparsedRemain)
}

func TestBuildMissingFilePaths(t *testing.T) {
	_, err := Build([]string{":file"})
	requireExitCode(t, err, exitcode.MissingArgument)
}

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	var ec *exitcode.Error
	require.True(t, errors.As(err, &ec))
	require.Equal(t, want, ec.Code)
}
