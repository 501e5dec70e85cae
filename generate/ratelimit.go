package generate

import (
	"context"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"golang.org/x/time/rate"
)

var _ imdbtv.Limiter = (*LookupLimiter)(nil)

// LookupLimiter paces lookup requests using a token bucket with a burst of 1
// (no bursting allowed). All lookups hit the same host, so a single bucket
// is enough.
type LookupLimiter struct {
	limiter *rate.Limiter
}

// NewLookupLimiter creates a new LookupLimiter with the specified requests
// per second limit.
func NewLookupLimiter(rps float64) *LookupLimiter {
	return &LookupLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *LookupLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
