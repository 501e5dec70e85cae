package goquery

import (
	"strings"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/PuerkitoBio/goquery"
)

// Ensure PopularSelector implements imdbtv.LayoutSelector at compile time.
var _ imdbtv.LayoutSelector = (*PopularSelector)(nil)

// PopularSelector extracts listings from the current IMDb search layout,
// where each result title is an <a class="ipc-title-link-wrapper"> anchor
// wrapping an <h3 class="ipc-title__text"> heading.
type PopularSelector struct{}

// NewPopularSelector creates a new PopularSelector.
func NewPopularSelector() *PopularSelector {
	return &PopularSelector{}
}

// Name returns the selector's identifier.
func (s *PopularSelector) Name() string {
	return "popular"
}

// Extract returns listings found by the ipc-title-link-wrapper markers.
// The same title can appear more than once when trending badges wrap the
// same link; only the first occurrence of each IMDb id is kept.
func (s *PopularSelector) Extract(html string, limit int) ([]imdbtv.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, imdbtv.Errorf(imdbtv.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var listings []imdbtv.Listing

	doc.Find(`a.ipc-title-link-wrapper[href*="/title/tt"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists {
			return true
		}
		id := imdbIDRe.FindString(href)
		if id == "" || seen[id] {
			return true
		}

		title := strings.TrimSpace(sel.Find("h3.ipc-title__text").First().Text())
		if title == "" {
			// Some result variants omit the heading; the anchor text
			// still carries the title.
			title = strings.TrimSpace(sel.Text())
		}
		title = rankPrefixRe.ReplaceAllString(title, "")
		if title == "" {
			return true
		}

		seen[id] = true
		listings = append(listings, imdbtv.Listing{Title: title, ImdbID: id})
		return len(listings) < limit
	})

	return listings, nil
}
