package goquery

import (
	"strings"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/PuerkitoBio/goquery"
)

// Ensure ListerSelector implements imdbtv.LayoutSelector at compile time.
var _ imdbtv.LayoutSelector = (*ListerSelector)(nil)

// ListerSelector extracts listings from the legacy IMDb search layout
// (<div class="lister-item"> result blocks). Kept as a fallback for pages
// still served with the old markup.
type ListerSelector struct{}

// NewListerSelector creates a new ListerSelector.
func NewListerSelector() *ListerSelector {
	return &ListerSelector{}
}

// Name returns the selector's identifier.
func (s *ListerSelector) Name() string {
	return "lister"
}

// Extract returns listings found by the lister-item markers.
func (s *ListerSelector) Extract(html string, limit int) ([]imdbtv.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, imdbtv.Errorf(imdbtv.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var listings []imdbtv.Listing

	doc.Find("div.lister-item").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		a := sel.Find("h3.lister-item-header a").First()
		if a.Length() == 0 {
			return true
		}
		href, exists := a.Attr("href")
		if !exists {
			return true
		}
		id := imdbIDRe.FindString(href)
		if id == "" || seen[id] {
			return true
		}

		title := rankPrefixRe.ReplaceAllString(strings.TrimSpace(a.Text()), "")
		if title == "" {
			return true
		}

		seen[id] = true
		listings = append(listings, imdbtv.Listing{Title: title, ImdbID: id})
		return len(listings) < limit
	})

	return listings, nil
}
