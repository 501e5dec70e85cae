// Package goquery provides CSS-selector based title extraction from the
// scraped page. Each known page layout has its own selector; the extractor
// tries them in registration order so a redesign of the source page means
// adding one selector, not changing the pipeline.
package goquery

import (
	"regexp"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

// imdbIDRe matches an IMDb title id embedded in an href.
var imdbIDRe = regexp.MustCompile(`tt\d+`)

// rankPrefixRe matches the leading rank number on listing titles
// ("1. Wednesday" → "Wednesday").
var rankPrefixRe = regexp.MustCompile(`^\d+\.\s*`)

// Ensure Extractor implements imdbtv.TitleExtractor at compile time.
var _ imdbtv.TitleExtractor = (*Extractor)(nil)

// Extractor extracts title listings by trying layout selectors in order.
// The first selector whose markers appear in the page wins.
type Extractor struct {
	selectors []imdbtv.LayoutSelector
}

// NewExtractor creates an Extractor with the given layout selectors.
// With no arguments it registers the current popular-TV layout followed by
// the legacy lister layout as a fallback.
func NewExtractor(selectors ...imdbtv.LayoutSelector) *Extractor {
	if len(selectors) == 0 {
		selectors = []imdbtv.LayoutSelector{
			NewPopularSelector(),
			NewListerSelector(),
		}
	}
	return &Extractor{selectors: selectors}
}

// ExtractTitles parses the page and returns up to limit listings in document
// order, deduplicated by IMDb id. When no registered layout matches anything
// in the page the result is an EINVALID error: the page structure has
// changed and scraping must not silently produce an empty list.
func (e *Extractor) ExtractTitles(html string, limit int) ([]imdbtv.Listing, error) {
	if limit <= 0 {
		return nil, imdbtv.Errorf(imdbtv.EINVALID, "extraction limit must be positive, got %d", limit)
	}

	for _, s := range e.selectors {
		listings, err := s.Extract(html, limit)
		if err != nil {
			return nil, err
		}
		if len(listings) > 0 {
			return listings, nil
		}
	}

	return nil, imdbtv.Errorf(imdbtv.EINVALID, "no known title markers found; the source page layout may have changed")
}
