// Package tvmaze resolves IMDb ids to TVDB ids through the TVMaze lookup
// API, a keyless public endpoint. TVMaze carries the TVDB id under
// externals.thetvdb in its show responses.
package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

// Ensure Resolver implements imdbtv.IDResolver at compile time.
var _ imdbtv.IDResolver = (*Resolver)(nil)

// Resolver looks up TVDB ids via the TVMaze API.
type Resolver struct {
	client    *http.Client
	lookupURL string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupURL overrides the lookup endpoint template. The template must
// contain a single %s verb for the IMDb id. Used to point tests at a local
// server.
func WithLookupURL(template string) Option {
	return func(r *Resolver) {
		r.lookupURL = template
	}
}

// NewResolver creates a new Resolver with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewResolver(client *http.Client, opts ...Option) *Resolver {
	if client == nil {
		client = http.DefaultClient
	}
	r := &Resolver{
		client:    client,
		lookupURL: imdbtv.DefaultLookupURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// lookupResponse is the subset of the TVMaze show payload we read.
type lookupResponse struct {
	Externals struct {
		TheTVDB *int `json:"thetvdb"`
	} `json:"externals"`
}

// Resolve returns the TVDB id for imdbID as a decimal string.
// A lookup that responds without a mapping (HTTP 404, or a show with no
// thetvdb external) is ENOTFOUND. Transport failures and malformed bodies
// are plain lookup errors; callers decide whether those abort anything.
func (r *Resolver) Resolve(ctx context.Context, imdbID string) (string, error) {
	endpoint := fmt.Sprintf(r.lookupURL, url.QueryEscape(imdbID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", imdbtv.Errorf(imdbtv.EINVALID, "build lookup request for %s: %v", imdbID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", imdbtv.Errorf(imdbtv.EUNAVAILABLE, "lookup %s: %v", imdbID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", imdbtv.Errorf(imdbtv.ENOTFOUND, "no show found for %s", imdbID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", imdbtv.Errorf(imdbtv.EUNAVAILABLE, "lookup %s: HTTP %d", imdbID, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", imdbtv.Errorf(imdbtv.EINVALID, "malformed lookup response for %s: %v", imdbID, err)
	}

	if body.Externals.TheTVDB == nil || *body.Externals.TheTVDB <= 0 {
		return "", imdbtv.Errorf(imdbtv.ENOTFOUND, "no TVDB id for %s", imdbID)
	}

	return strconv.Itoa(*body.Externals.TheTVDB), nil
}
