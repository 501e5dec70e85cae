package mock

import (
	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

var _ imdbtv.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of imdbtv.TitleExtractor.
type TitleExtractor struct {
	ExtractTitlesFn func(html string, limit int) ([]imdbtv.Listing, error)
}

func (e *TitleExtractor) ExtractTitles(html string, limit int) ([]imdbtv.Listing, error) {
	return e.ExtractTitlesFn(html, limit)
}
