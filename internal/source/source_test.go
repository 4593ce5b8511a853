package source

import (
	"strings"
	"testing"

	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f fakeClipboard) Read() (string, error) { return f.text, f.err }
func (f fakeClipboard) Write(string) error    { return nil }

func drainAll(t *testing.T, it record.Iterator) []string {
	t.Helper()
	recs, err := record.Drain(it)
	require.NoError(t, err)
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text()
	}
	return out
}

func TestLineIterator(t *testing.T) {
	it := newLineIterator(strings.NewReader("a\nb\nc"))
	require.Equal(t, []string{"a", "b", "c"}, drainAll(t, it))
}

func TestLiteralIterator(t *testing.T) {
	it := newLiteralIterator([]string{"x", "y"})
	require.Equal(t, []string{"x", "y"}, drainAll(t, it))
}

func TestClipboardIteratorSplitsLines(t *testing.T) {
	it, err := newClipboardIterator(fakeClipboard{text: "a\r\nb\nc\n"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, drainAll(t, it))
}

func TestGenIteratorInclusiveBoundary(t *testing.T) {
	end := int64(10)
	it, err := newGenIterator(pipeline.GenSource{Start: 0, End: &end, Step: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"0", "2", "4", "6", "8", "10"}, drainAll(t, it))
}

func TestGenIteratorEmptyRangeIsNotAnError(t *testing.T) {
	end := int64(0)
	it, err := newGenIterator(pipeline.GenSource{Start: 5, End: &end, Step: 1})
	require.NoError(t, err)
	require.Empty(t, drainAll(t, it))
}

func TestGenIteratorFormat(t *testing.T) {
	end := int64(2)
	it, err := newGenIterator(pipeline.GenSource{Start: 0, End: &end, Step: 1, Fmt: "n={v:02d}"})
	require.NoError(t, err)
	require.Equal(t, []string{"n=00", "n=01", "n=02"}, drainAll(t, it))
}

func TestRepeatIteratorCounted(t *testing.T) {
	n := int64(3)
	it := newRepeatIterator(pipeline.RepeatSource{Value: "x", Count: &n})
	require.Equal(t, []string{"x", "x", "x"}, drainAll(t, it))
}

func TestRepeatIteratorUnboundedYieldsAtLeastN(t *testing.T) {
	it := newRepeatIterator(pipeline.RepeatSource{Value: "x"})
	for i := 0; i < 5; i++ {
		_, ok, err := it.Next()
		require.NoError(t, err)
		require.True(t, ok)
	}
}
