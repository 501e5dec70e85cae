package mock

import (
	"context"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

var _ imdbtv.ListWriter = (*ListWriter)(nil)

// ListWriter is a mock implementation of imdbtv.ListWriter.
type ListWriter struct {
	WriteFn func(ctx context.Context, count int, entries []imdbtv.ListEntry) (*imdbtv.WriteResult, error)
}

func (w *ListWriter) Write(ctx context.Context, count int, entries []imdbtv.ListEntry) (*imdbtv.WriteResult, error) {
	return w.WriteFn(ctx, count, entries)
}
