package imdbtv

import (
	"context"
	"regexp"
)

// imdbIDPattern matches IMDb title identifiers (e.g., "tt1234567").
var imdbIDPattern = regexp.MustCompile(`^tt\d+$`)

// Listing is a single title scraped from the source page: the display title
// plus IMDb's own identifier for it. Listings are ordered by page position.
type Listing struct {
	Title  string `json:"title"`
	ImdbID string `json:"imdbId"`
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return Errorf(EINVALID, "listing title required")
	}
	if !imdbIDPattern.MatchString(l.ImdbID) {
		return Errorf(EINVALID, "listing IMDb id %q is not of the form tt<digits>", l.ImdbID)
	}
	return nil
}

// ListEntry is the record emitted to the output artifact. Entries only exist
// for listings whose IMDb id resolved to a TVDB id.
type ListEntry struct {
	Title  string `json:"title"`
	TVDBID string `json:"tvdbId"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ListEntry) Validate() error {
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.TVDBID == "" {
		return Errorf(EINVALID, "entry TVDB id required")
	}
	return nil
}

// WriteResult describes a written artifact.
type WriteResult struct {
	// Path is the location of the written file.
	Path string

	// Bytes is the size of the written file.
	Bytes int

	// Hash is a content hash of the written bytes.
	Hash string

	// Changed reports whether the content differs from what the
	// destination held before the write.
	Changed bool
}

// ListWriter persists the final entry list as the output artifact.
// Implementations must be atomic: a failed write leaves any existing
// artifact untouched.
type ListWriter interface {
	// Write serializes entries and writes them to the destination derived
	// from count. An existing artifact at that destination is replaced.
	Write(ctx context.Context, count int, entries []ListEntry) (*WriteResult, error)
}
