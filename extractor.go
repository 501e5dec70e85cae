package imdbtv

// TitleExtractor extracts title listings from a scraped page.
type TitleExtractor interface {
	// ExtractTitles parses raw HTML and returns up to limit listings in
	// document order. Listings with a duplicate IMDb id are kept only at
	// their first occurrence. A page whose structure matches no known
	// layout is an EINVALID error.
	ExtractTitles(html string, limit int) ([]Listing, error)
}

// LayoutSelector extracts listings for one known page layout.
// The source page gets redesigned from time to time; each redesign becomes a
// new selector so a layout change means adding one extraction rule, not
// reshaping the pipeline.
type LayoutSelector interface {
	// Name returns the selector's identifier for logging.
	Name() string

	// Extract returns the listings found by this layout's markers, in
	// document order, deduplicated by IMDb id and truncated to limit.
	// An empty result means the layout's markers are absent from the page;
	// it is not an error.
	Extract(html string, limit int) ([]Listing, error)
}
