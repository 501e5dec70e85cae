package imdbtv

import "context"

// IDResolver maps an IMDb id to the downstream identifier.
type IDResolver interface {
	// Resolve looks up the TVDB id for imdbID.
	// Returns ENOTFOUND when the lookup service has no mapping; that is a
	// valid outcome, not a transport failure. Each id is queried once.
	Resolve(ctx context.Context, imdbID string) (tvdbID string, err error)
}

// Limiter paces calls to an external service.
type Limiter interface {
	// Wait blocks until the rate limit allows the next request.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}
