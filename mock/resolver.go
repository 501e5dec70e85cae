package mock

import (
	"context"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

var _ imdbtv.IDResolver = (*IDResolver)(nil)

// IDResolver is a mock implementation of imdbtv.IDResolver.
type IDResolver struct {
	ResolveFn func(ctx context.Context, imdbID string) (string, error)
}

func (r *IDResolver) Resolve(ctx context.Context, imdbID string) (string, error) {
	return r.ResolveFn(ctx, imdbID)
}

var _ imdbtv.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of imdbtv.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
