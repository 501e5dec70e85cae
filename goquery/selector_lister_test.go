package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	imdbtvgoquery "github.com/FelixClements/imdb-top-tv-list/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listerPage builds an HTML page in the legacy IMDb search layout.
func listerPage(items ...[2]string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, item := range items {
		fmt.Fprintf(&b,
			`<div class="lister-item"><h3 class="lister-item-header"><a href="/title/%s/">%s</a></h3></div>`,
			item[1], item[0])
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestListerSelector_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts titles and ids in document order", func(t *testing.T) {
		t.Parallel()

		html := listerPage(
			[2]string{"Breaking Bad", "tt0903747"},
			[2]string{"Chernobyl", "tt7366338"},
		)

		sel := imdbtvgoquery.NewListerSelector()
		listings, err := sel.Extract(html, 10)
		require.NoError(t, err)

		require.Len(t, listings, 2)
		assert.Equal(t, imdbtv.Listing{Title: "Breaking Bad", ImdbID: "tt0903747"}, listings[0])
		assert.Equal(t, imdbtv.Listing{Title: "Chernobyl", ImdbID: "tt7366338"}, listings[1])
	})

	t.Run("truncates to limit and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := listerPage(
			[2]string{"Breaking Bad", "tt0903747"},
			[2]string{"Breaking Bad", "tt0903747"},
			[2]string{"Chernobyl", "tt7366338"},
			[2]string{"The Wire", "tt0306414"},
		)

		sel := imdbtvgoquery.NewListerSelector()
		listings, err := sel.Extract(html, 2)
		require.NoError(t, err)

		require.Len(t, listings, 2)
		assert.Equal(t, "tt0903747", listings[0].ImdbID)
		assert.Equal(t, "tt7366338", listings[1].ImdbID)
	})

	t.Run("skips result blocks without a header anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>` +
			`<div class="lister-item"><p>ad block</p></div>` +
			`<div class="lister-item"><h3 class="lister-item-header"><a href="/title/tt0306414/">The Wire</a></h3></div>` +
			`</body></html>`

		sel := imdbtvgoquery.NewListerSelector()
		listings, err := sel.Extract(html, 10)
		require.NoError(t, err)

		require.Len(t, listings, 1)
		assert.Equal(t, "tt0306414", listings[0].ImdbID)
	})

	t.Run("returns empty for page without markers", func(t *testing.T) {
		t.Parallel()

		sel := imdbtvgoquery.NewListerSelector()
		listings, err := sel.Extract("<html><body></body></html>", 10)
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

// Compile-time verification that ListerSelector implements imdbtv.LayoutSelector.
var _ imdbtv.LayoutSelector = (*imdbtvgoquery.ListerSelector)(nil)
