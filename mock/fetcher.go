// Package mock provides mock implementations of the imdbtv service
// interfaces for testing.
package mock

import (
	"context"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

var _ imdbtv.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of imdbtv.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
