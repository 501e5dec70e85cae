package main

import (
	"context"
	"io"
	"log/slog"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config imdbtv.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to TOML config file" default:"imdbtv.toml"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Scrape the popular-TV page and write the Sonarr import list"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Count       int     `short:"n" default:"0" help:"How many shows to fetch (default 25, or the config value)"`
	Output      string  `short:"o" help:"Output JSON file (default top_<count>.json)"`
	UserAgent   string  `help:"User-Agent header for the page request"`
	Concurrency int     `short:"c" default:"0" help:"Concurrent lookup limit (default 1)"`
	Rate        float64 `default:"0" help:"Lookup requests per second (default 2)"`
	Preview     bool    `short:"p" help:"Print scraped titles without resolving or writing"`
}
