package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/oyealex/rp/internal/exitcode"
	"github.com/oyealex/rp/internal/record"
)

// hasGlobMeta reports whether p contains a doublestar pattern
// meta-character; literal paths are left untouched so a path with no
// meta-characters keeps the spec's exact "open failure -> exit 12"
// contract even when the file does not exist yet.
func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// expandPaths resolves glob paths (grounded on gazelle_cc's own use of
// doublestar.Glob for source-file discovery) in argument order,
// leaving literal paths alone.
func expandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if !hasGlobMeta(p) {
			out = append(out, p)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS("."), p)
		if err != nil {
			return nil, exitcode.New(exitcode.FileOpen, fmt.Errorf("file: invalid glob %q: %w", p, err))
		}
		out = append(out, matches...)
	}
	return out, nil
}

// filesIterator yields lines from each path in order, concatenated,
// holding exactly one file handle open at a time (spec.md §5).
type filesIterator struct {
	paths   []string
	idx     int
	cur     *os.File
	scanner *bufio.Scanner
}

func newFilesIterator(paths []string) (*filesIterator, error) {
	expanded, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	return &filesIterator{paths: expanded}, nil
}

func (it *filesIterator) Next() (record.Record, bool, error) {
	for {
		if it.scanner == nil {
			if it.idx >= len(it.paths) {
				return record.Record{}, false, nil
			}
			path := it.paths[it.idx]
			it.idx++
			f, err := os.Open(path)
			if err != nil {
				return record.Record{}, false, exitcode.New(exitcode.FileOpen, fmt.Errorf("file: %w", err))
			}
			it.cur = f
			it.scanner = bufio.NewScanner(f)
		}
		if it.scanner.Scan() {
			return record.New(it.scanner.Text()), true, nil
		}
		if err := it.scanner.Err(); err != nil {
			it.closeCurrent()
			return record.Record{}, false, exitcode.New(exitcode.FileRead, fmt.Errorf("file: %w", err))
		}
		it.closeCurrent()
	}
}

func (it *filesIterator) closeCurrent() {
	if it.cur != nil {
		it.cur.Close()
	}
	it.cur = nil
	it.scanner = nil
}
