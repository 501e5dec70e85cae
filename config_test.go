package imdbtv_test

import (
	"os"
	"path/filepath"
	"testing"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := imdbtv.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25, cfg.Count)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, imdbtv.DefaultTimeout, cfg.Timeout())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := imdbtv.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, imdbtv.DefaultConfig(), cfg)
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		content := "count = 50\nconcurrency = 4\nuser_agent = \"test-agent/1.0\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := imdbtv.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Count)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Equal(t, "test-agent/1.0", cfg.UserAgent)
		// Untouched keys keep their defaults.
		assert.Equal(t, imdbtv.DefaultSourceURL, cfg.SourceURL)
		assert.Equal(t, imdbtv.DefaultLookupURL, cfg.LookupURL)
	})

	t.Run("invalid TOML is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("count = ["), 0644))

		_, err := imdbtv.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, imdbtv.EINVALID, imdbtv.ErrorCode(err))
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("count = -1"), 0644))

		_, err := imdbtv.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, imdbtv.EINVALID, imdbtv.ErrorCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("source URL without count verb", func(t *testing.T) {
		t.Parallel()

		cfg := imdbtv.DefaultConfig()
		cfg.SourceURL = "https://example.com/popular"
		require.Error(t, cfg.Validate())
	})

	t.Run("lookup URL without id verb", func(t *testing.T) {
		t.Parallel()

		cfg := imdbtv.DefaultConfig()
		cfg.LookupURL = "https://example.com/lookup"
		require.Error(t, cfg.Validate())
	})

	t.Run("zero lookup rate", func(t *testing.T) {
		t.Parallel()

		cfg := imdbtv.DefaultConfig()
		cfg.LookupRate = 0
		require.Error(t, cfg.Validate())
	})
}
