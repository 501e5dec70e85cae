// Package slog provides logging decorators for the imdbtv service
// interfaces using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

// Ensure LoggingResolver implements imdbtv.IDResolver.
var _ imdbtv.IDResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps an IDResolver with per-lookup debug logging.
// Misses are logged at warn level so dropped titles stay visible.
type LoggingResolver struct {
	next   imdbtv.IDResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next imdbtv.IDResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, imdbID string) (string, error) {
	begin := time.Now()
	tvdbID, err := r.next.Resolve(ctx, imdbID)
	if err != nil {
		r.logger.Warn("lookup miss",
			"imdb_id", imdbID,
			"code", imdbtv.ErrorCode(err),
			"reason", imdbtv.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	r.logger.Debug("lookup hit",
		"imdb_id", imdbID,
		"tvdb_id", tvdbID,
		"duration", time.Since(begin),
	)
	return tvdbID, nil
}
