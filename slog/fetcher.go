package slog

import (
	"context"
	"log/slog"
	"time"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

// Ensure LoggingFetcher implements imdbtv.PageFetcher.
var _ imdbtv.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with fetch timing and size logging.
type LoggingFetcher struct {
	next   imdbtv.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next imdbtv.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("page fetch failed",
			"url", url,
			"code", imdbtv.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Debug("page fetched",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
