package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oyealex/rp/internal/pipeline"
	"github.com/oyealex/rp/internal/record"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written string
}

func (f *fakeClipboard) Read() (string, error) { return "", nil }
func (f *fakeClipboard) Write(text string) error {
	f.written = text
	return nil
}

func src(values ...string) record.Iterator {
	recs := make([]record.Record, len(values))
	for i, v := range values {
		recs[i] = record.New(v)
	}
	return record.NewSliceIterator(recs)
}

func TestRunStdout(t *testing.T) {
	var buf bytes.Buffer
	n, err := runStdout(src("a", "b"), &buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "a\nb\n", buf.String())
}

func TestRunFileTruncateDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	n, err := runFile(src("a", "b"), pipeline.FileSink{Path: path})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(got))
}

func TestRunFileAppendCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n"), 0o644))

	_, err := runFile(src("b"), pipeline.FileSink{Path: path, Append: true, Newline: pipeline.CRLF})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\r\nb\r\n", string(got))
}

func TestRunClipboardWritesOnceAtEnd(t *testing.T) {
	fc := &fakeClipboard{}
	n, err := runClipboard(src("a", "b", "c"), pipeline.ClipboardSink{}, fc)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "a\nb\nc", fc.written)
}
