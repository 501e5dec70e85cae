// Package fs writes the generated list as a JSON artifact on the local
// filesystem.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/cespare/xxhash/v2"
)

// OutputPath returns the count-derived artifact path, e.g. dir/top_25.json.
func OutputPath(dir string, count int) string {
	return filepath.Join(dir, fmt.Sprintf("top_%d.json", count))
}

// Ensure Writer implements imdbtv.ListWriter at compile time.
var _ imdbtv.ListWriter = (*Writer)(nil)

// Writer writes entry lists as UTF-8 JSON files with atomic replace
// semantics: content goes to a temp file in the destination directory and is
// renamed into place, so a failed run never truncates or corrupts an
// existing artifact.
type Writer struct {
	dir  string
	path string
}

// Option configures a Writer.
type Option func(*Writer)

// WithPath pins the destination to an explicit file path instead of the
// count-derived name.
func WithPath(path string) Option {
	return func(w *Writer) {
		w.path = path
	}
}

// NewWriter creates a Writer that writes count-derived files under dir.
// An empty dir means the current directory.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write serializes entries as a JSON array of {"title", "tvdbId"} objects
// (2-space indent, HTML escaping off, trailing newline) and commits it to
// the destination. The returned result carries a content hash and whether
// the artifact changed since the previous run.
func (w *Writer) Write(ctx context.Context, count int, entries []imdbtv.ListEntry) (*imdbtv.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, err
		}
	}
	if entries == nil {
		// An empty list still serializes as [], not null.
		entries = []imdbtv.ListEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "encode list: %v", err)
	}

	dest := w.path
	if dest == "" {
		dest = OutputPath(w.dir, count)
	}

	sum := fmt.Sprintf("%016x", xxhash.Sum64(buf.Bytes()))
	changed := true
	if prev, err := os.ReadFile(dest); err == nil {
		changed = xxhash.Sum64(prev) != xxhash.Sum64(buf.Bytes())
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "create output directory %q: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp*")
	if err != nil {
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "create temp file in %q: %v", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "write %q: %v", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "close %q: %v", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "chmod %q: %v", tmpName, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return nil, imdbtv.Errorf(imdbtv.EINTERNAL, "commit %q: %v", dest, err)
	}

	return &imdbtv.WriteResult{
		Path:    dest,
		Bytes:   buf.Len(),
		Hash:    sum,
		Changed: changed,
	}, nil
}
