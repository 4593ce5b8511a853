package ops

import (
	"bytes"
	"testing"

	"github.com/oyealex/rp/internal/cliopts"
	"github.com/oyealex/rp/internal/cond"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
	"github.com/stretchr/testify/require"
)

func drainStrings(t *testing.T, it record.Iterator) []string {
	t.Helper()
	recs, err := record.Drain(it)
	require.NoError(t, err)
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text()
	}
	return out
}

func src(values ...string) record.Iterator {
	recs := make([]record.Record, len(values))
	for i, v := range values {
		recs[i] = record.New(v)
	}
	return record.NewSliceIterator(recs)
}

func TestCaseIter(t *testing.T) {
	it := &caseIter{up: src("Hello, World!"), mode: pipeline.CaseUpper}
	require.Equal(t, []string{"HELLO, WORLD!"}, drainStrings(t, it))

	it = &caseIter{up: src("Hello"), mode: pipeline.CaseFlip}
	require.Equal(t, []string{"hELLO"}, drainStrings(t, it))
}

func TestUniqIterNocase(t *testing.T) {
	it := newUniqIter(src("a", "A", "b", "a"), true)
	require.Equal(t, []string{"a", "b"}, drainStrings(t, it))
}

func TestUniqIterCaseSensitive(t *testing.T) {
	it := newUniqIter(src("a", "A", "a"), false)
	require.Equal(t, []string{"a", "A"}, drainStrings(t, it))
}

func TestReplaceIterNocase(t *testing.T) {
	it := &replaceIter{up: src("FooBar"), op: pipeline.ReplaceOp{From: "foo", To: "baz"}, nocase: true}
	require.Equal(t, []string{"bazBar"}, drainStrings(t, it))
}

func TestReplaceIterCount(t *testing.T) {
	n := 1
	it := &replaceIter{up: src("aaaa"), op: pipeline.ReplaceOp{From: "a", To: "b", Count: &n}}
	require.Equal(t, []string{"baaa"}, drainStrings(t, it))
}

func TestTrimIterDefaultWhitespace(t *testing.T) {
	it := &trimIter{up: src(" hi "), op: pipeline.TrimOp{Side: pipeline.TrimBoth}}
	require.Equal(t, []string{"hi"}, drainStrings(t, it))
}

func TestTrimIterCharSetNocase(t *testing.T) {
	it := &trimIter{up: src("XXhiXX"), op: pipeline.TrimOp{Side: pipeline.TrimBoth, CharSet: true, Pattern: "x", HasPattern: true}, nocase: true}
	require.Equal(t, []string{"hi"}, drainStrings(t, it))
}

func TestJoinWhole(t *testing.T) {
	it := newJoinIter(src("0", "2", "4", "6", "8", "10"), pipeline.JoinOp{Delim: ","})
	require.Equal(t, []string{"0,2,4,6,8,10"}, drainStrings(t, it))
}

func TestJoinBatch(t *testing.T) {
	n := 2
	it := newJoinIter(src("a", "b", "c"), pipeline.JoinOp{Delim: "-", Batch: &n})
	require.Equal(t, []string{"a-b", "c"}, drainStrings(t, it))
}

func TestFilterTakeWhile(t *testing.T) {
	node, err := cond.Parse("num =2")
	require.NoError(t, err)
	it := newFilterIter(src("2", "2", "3", "2"), pipeline.FilterOp{Cond: node, While: true})
	require.Equal(t, []string{"2", "2"}, drainStrings(t, it))
}

func TestFilterDropWhile(t *testing.T) {
	node, err := cond.Parse("num =2")
	require.NoError(t, err)
	it := newFilterIter(src("2", "2", "3", "2"), pipeline.FilterOp{Drop: true, Cond: node, While: true})
	require.Equal(t, []string{"3", "2"}, drainStrings(t, it))
}

func TestCountIter(t *testing.T) {
	it, err := newCountIter(src("a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, drainStrings(t, it))
}

func TestSortNumSkipErr(t *testing.T) {
	ctx := Context{Global: cliopts.Options{SkipErrGlobal: true}}
	it, err := newSortIter(src("3", "x", "1"), pipeline.SortOp{Num: true}, ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, drainStrings(t, it))
}

func TestSortNumFailsFatalByDefault(t *testing.T) {
	_, err := newSortIter(src("3", "x"), pipeline.SortOp{Num: true}, Context{})
	require.Error(t, err)
	var ec *exitcode.Error
	require.ErrorAs(t, err, &ec)
	require.Equal(t, exitcode.NumericParse, ec.Code)
}

func TestSortNumDefault(t *testing.T) {
	d := 0.0
	it, err := newSortIter(src("3", "x", "-1"), pipeline.SortOp{Num: true, Default: &d}, Context{})
	require.NoError(t, err)
	require.Equal(t, []string{"-1", "x", "3"}, drainStrings(t, it))
}

func TestSortDesc(t *testing.T) {
	it, err := newSortIter(src("1", "2", "3", "4", "5"), pipeline.SortOp{Num: true, Desc: true}, Context{})
	require.NoError(t, err)
	require.Equal(t, []string{"5", "4", "3", "2", "1"}, drainStrings(t, it))
}

func TestPeekDefaultStdout(t *testing.T) {
	var buf bytes.Buffer
	ctx := Context{Stdout: &buf}
	it, err := newPeekIter(pipeline.PeekOp{}, src("a", "b"), ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, drainStrings(t, it))
	require.Equal(t, "a\nb\n", buf.String())
}
