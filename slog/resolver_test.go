package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/FelixClements/imdb-top-tv-list/mock"
	imdbtvslog "github.com/FelixClements/imdb-top-tv-list/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("passes through hits and logs them", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		resolver := imdbtvslog.NewLoggingResolver(&mock.IDResolver{
			ResolveFn: func(ctx context.Context, imdbID string) (string, error) {
				return "393342", nil
			},
		}, newTestLogger(&buf))

		id, err := resolver.Resolve(context.Background(), "tt13443470")
		require.NoError(t, err)
		assert.Equal(t, "393342", id)
		assert.Contains(t, buf.String(), "lookup hit")
		assert.Contains(t, buf.String(), "tt13443470")
	})

	t.Run("logs misses at warn level and propagates the error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		resolver := imdbtvslog.NewLoggingResolver(&mock.IDResolver{
			ResolveFn: func(ctx context.Context, imdbID string) (string, error) {
				return "", imdbtv.Errorf(imdbtv.ENOTFOUND, "no TVDB id for %s", imdbID)
			},
		}, newTestLogger(&buf))

		_, err := resolver.Resolve(context.Background(), "tt0000001")
		require.Error(t, err)
		assert.Equal(t, imdbtv.ENOTFOUND, imdbtv.ErrorCode(err))
		assert.Contains(t, buf.String(), "lookup miss")
		assert.Contains(t, buf.String(), "level=WARN")
	})
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("passes through the body and logs size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := imdbtvslog.NewLoggingFetcher(&mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			},
		}, newTestLogger(&buf))

		html, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html/>", html)
		assert.Contains(t, buf.String(), "page fetched")
	})

	t.Run("logs failures at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := imdbtvslog.NewLoggingFetcher(&mock.PageFetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", imdbtv.Errorf(imdbtv.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}, newTestLogger(&buf))

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "page fetch failed")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

// Compile-time interface checks.
var (
	_ imdbtv.IDResolver  = (*imdbtvslog.LoggingResolver)(nil)
	_ imdbtv.PageFetcher = (*imdbtvslog.LoggingFetcher)(nil)
)
