package main

import (
	"fmt"
	nethttp "net/http"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/FelixClements/imdb-top-tv-list/fs"
	"github.com/FelixClements/imdb-top-tv-list/generate"
	"github.com/FelixClements/imdb-top-tv-list/goquery"
	imdbhttp "github.com/FelixClements/imdb-top-tv-list/http"
	imdbslog "github.com/FelixClements/imdb-top-tv-list/slog"
	"github.com/FelixClements/imdb-top-tv-list/tvmaze"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	// Flags override the config file, the config file overrides defaults.
	cfg := deps.Config
	if c.Count > 0 {
		cfg.Count = c.Count
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Rate > 0 {
		cfg.LookupRate = c.Rate
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtv.ErrorMessage(err))
		return err
	}

	fetcher := imdbslog.NewLoggingFetcher(
		imdbhttp.NewFetcher(
			imdbhttp.WithTimeout(cfg.Timeout()),
			imdbhttp.WithUserAgent(cfg.UserAgent),
		),
		deps.Logger,
	)

	gen := &generate.Generator{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		SourceURL: cfg.SourceURL,
	}

	if c.Preview {
		listings, err := gen.Preview(deps.Ctx, cfg.Count)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtv.ErrorMessage(err))
			return err
		}
		for _, l := range listings {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", l.ImdbID, l.Title)
		}
		return nil
	}

	gen.Resolver = imdbslog.NewLoggingResolver(
		tvmaze.NewResolver(
			&nethttp.Client{Timeout: cfg.Timeout()},
			tvmaze.WithLookupURL(cfg.LookupURL),
		),
		deps.Logger,
	)
	gen.Limiter = generate.NewLookupLimiter(cfg.LookupRate)
	gen.Concurrency = cfg.Concurrency

	var writerOpts []fs.Option
	if c.Output != "" {
		writerOpts = append(writerOpts, fs.WithPath(c.Output))
	}
	gen.Writer = fs.NewWriter(cfg.OutputDir, writerOpts...)

	progress := func(event generate.ProgressEvent) {
		switch event.Type {
		case generate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d titles\n", event.Total)
		case generate.ProgressMissed:
			fmt.Fprintf(deps.Stdout, "  skipping %s (%s): %s\n",
				event.Listing.Title, event.Listing.ImdbID, imdbtv.ErrorMessage(event.Error))
		}
	}

	result, err := gen.Run(deps.Ctx, cfg.Count, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbtv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d entries to %s", result.Resolved, result.Write.Path)
	if result.Missed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d unresolved)", result.Missed)
	}
	if !result.Write.Changed {
		fmt.Fprint(deps.Stdout, " (unchanged)")
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
