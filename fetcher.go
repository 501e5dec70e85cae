package imdbtv

import "context"

// PageFetcher retrieves raw HTML from URLs.
type PageFetcher interface {
	// Fetch performs a single GET against url and returns the response body.
	// The context controls timeout and cancellation. A transport failure or
	// non-2xx status is an error; no retry is attempted.
	Fetch(ctx context.Context, url string) (html string, err error)
}
