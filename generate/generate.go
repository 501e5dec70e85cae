// Package generate provides list-generation orchestration. It coordinates
// fetching the source page, extracting title listings, resolving each IMDb
// id to a TVDB id, and writing the final artifact.
package generate

import (
	"context"
	"fmt"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"golang.org/x/sync/errgroup"
)

// Generator orchestrates one list-generation run.
type Generator struct {
	Fetcher   imdbtv.PageFetcher
	Extractor imdbtv.TitleExtractor
	Resolver  imdbtv.IDResolver
	Writer    imdbtv.ListWriter

	// Limiter, if set, paces resolver calls.
	Limiter imdbtv.Limiter

	// SourceURL is the page URL template with a %d verb for the count.
	// Empty means imdbtv.DefaultSourceURL.
	SourceURL string

	// Concurrency bounds parallel resolver calls. Values below 1 mean
	// sequential resolution in page order.
	Concurrency int
}

// Result holds the outcome of a generation run.
type Result struct {
	Requested int
	Scraped   int
	Resolved  int
	Missed    int
	Write     *imdbtv.WriteResult
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Listing   imdbtv.Listing
	TVDBID    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressResolved
	ProgressMissed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// resolveResult holds the outcome of resolving a single listing.
type resolveResult struct {
	position int
	listing  imdbtv.Listing
	tvdbID   string
	err      error
}

// Preview fetches and extracts up to count listings without resolving ids
// or writing anything.
func (g *Generator) Preview(ctx context.Context, count int) ([]imdbtv.Listing, error) {
	if count <= 0 {
		return nil, imdbtv.Errorf(imdbtv.EINVALID, "count must be positive, got %d", count)
	}

	html, err := g.Fetcher.Fetch(ctx, g.sourceURL(count))
	if err != nil {
		return nil, err
	}

	return g.Extractor.ExtractTitles(html, count)
}

// Run executes one full generation pass: fetch, extract, resolve, write.
//
// Resolver failures of any kind drop the affected listing and the run
// continues; the remaining entries keep their page order. Fetch failures,
// structural extraction failures, and write failures abort the run with the
// existing artifact untouched. A run in which nothing resolves is an
// ENOTFOUND error rather than an empty artifact.
func (g *Generator) Run(ctx context.Context, count int, progress ProgressFunc) (*Result, error) {
	listings, err := g.Preview(ctx, count)
	if err != nil {
		return nil, err
	}

	total := len(listings)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := g.resolveAll(ctx, listings)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Join resolver outcomes back in page order, dropping misses.
	entries := make([]imdbtv.ListEntry, 0, total)
	var missed int
	for _, r := range results {
		if r.err != nil {
			missed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressMissed,
					Completed: r.position + 1,
					Total:     total,
					Listing:   r.listing,
					Error:     r.err,
				})
			}
			continue
		}
		entries = append(entries, imdbtv.ListEntry{Title: r.listing.Title, TVDBID: r.tvdbID})
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressResolved,
				Completed: r.position + 1,
				Total:     total,
				Listing:   r.listing,
				TVDBID:    r.tvdbID,
			})
		}
	}

	if len(entries) == 0 {
		return nil, imdbtv.Errorf(imdbtv.ENOTFOUND, "none of the %d scraped titles resolved to a TVDB id", total)
	}

	write, err := g.Writer.Write(ctx, count, entries)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Requested: count,
		Scraped:   total,
		Resolved:  len(entries),
		Missed:    missed,
		Write:     write,
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// resolveAll resolves every listing, bounded by Concurrency, and returns the
// outcomes indexed by page position.
func (g *Generator) resolveAll(ctx context.Context, listings []imdbtv.Listing) []resolveResult {
	concurrency := g.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]resolveResult, len(listings))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, listing := range listings {
		i, listing := i, listing
		eg.Go(func() error {
			results[i] = g.resolveOne(gctx, i, listing)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// resolveOne resolves a single listing, honoring the rate limiter.
func (g *Generator) resolveOne(ctx context.Context, position int, listing imdbtv.Listing) resolveResult {
	result := resolveResult{position: position, listing: listing}

	if g.Limiter != nil {
		if err := g.Limiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	result.tvdbID, result.err = g.Resolver.Resolve(ctx, listing.ImdbID)
	return result
}

func (g *Generator) sourceURL(count int) string {
	template := g.SourceURL
	if template == "" {
		template = imdbtv.DefaultSourceURL
	}
	return fmt.Sprintf(template, count)
}
