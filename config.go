package imdbtv

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Configuration defaults. The source URL template must contain a single %d
// verb for the requested count; the lookup URL template a single %s verb for
// the IMDb id.
const (
	DefaultCount       = 25
	DefaultSourceURL   = "https://www.imdb.com/search/title/?title_type=tv_series,tv_miniseries,tv_short,tv_movie,tv_episode&languages=en&count=%d"
	DefaultLookupURL   = "https://api.tvmaze.com/lookup/shows?imdb=%s"
	DefaultUserAgent   = "Mozilla/5.0 (compatible; imdb-top-tv-list/1.0; +https://github.com/FelixClements/imdb-top-tv-list)"
	DefaultConcurrency = 1
	DefaultLookupRate  = 2.0
	DefaultTimeout     = 15 * time.Second
)

// Config holds the knobs for a list-generation run.
type Config struct {
	// SourceURL is the template for the scraped page, with a %d verb for
	// the requested count.
	SourceURL string `toml:"source_url"`

	// LookupURL is the template for the id lookup endpoint, with a %s verb
	// for the IMDb id.
	LookupURL string `toml:"lookup_url"`

	// UserAgent is sent with the page request. The source page rejects
	// default HTTP client agents.
	UserAgent string `toml:"user_agent"`

	// Count is the default number of titles to fetch.
	Count int `toml:"count"`

	// OutputDir is where count-derived artifacts are written.
	// Empty means the current directory.
	OutputDir string `toml:"output_dir"`

	// Concurrency bounds parallel id lookups. 1 means sequential.
	Concurrency int `toml:"concurrency"`

	// LookupRate caps lookup requests per second.
	LookupRate float64 `toml:"lookup_rate"`

	// TimeoutSeconds bounds each HTTP request. Zero means the default.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		SourceURL:   DefaultSourceURL,
		LookupURL:   DefaultLookupURL,
		UserAgent:   DefaultUserAgent,
		Count:       DefaultCount,
		Concurrency: DefaultConcurrency,
		LookupRate:  DefaultLookupRate,
	}
}

// Timeout returns the configured HTTP timeout.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if !strings.Contains(c.SourceURL, "%d") {
		return Errorf(EINVALID, "source_url must contain a %%d verb for the count")
	}
	if !strings.Contains(c.LookupURL, "%s") {
		return Errorf(EINVALID, "lookup_url must contain a %%s verb for the IMDb id")
	}
	if c.Count <= 0 {
		return Errorf(EINVALID, "count must be positive, got %d", c.Count)
	}
	if c.Concurrency <= 0 {
		return Errorf(EINVALID, "concurrency must be positive, got %d", c.Concurrency)
	}
	if c.LookupRate <= 0 {
		return Errorf(EINVALID, "lookup_rate must be positive, got %g", c.LookupRate)
	}
	return nil
}

// LoadConfig reads a TOML config file layered over defaults.
// A missing file at path is not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, Errorf(EINTERNAL, "read config %q: %v", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, Errorf(EINVALID, "parse config %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
