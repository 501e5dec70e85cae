package imdbtv_test

import (
	"testing"

	imdbtv "github.com/FelixClements/imdb-top-tv-list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid listing", func(t *testing.T) {
		t.Parallel()

		l := imdbtv.Listing{Title: "Wednesday", ImdbID: "tt13443470"}
		require.NoError(t, l.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		l := imdbtv.Listing{ImdbID: "tt13443470"}
		err := l.Validate()
		require.Error(t, err)
		assert.Equal(t, imdbtv.EINVALID, imdbtv.ErrorCode(err))
	})

	t.Run("malformed IMDb id", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"", "13443470", "tt", "ttabc", "nm0000001"} {
			l := imdbtv.Listing{Title: "Wednesday", ImdbID: id}
			err := l.Validate()
			require.Error(t, err, "id %q", id)
			assert.Equal(t, imdbtv.EINVALID, imdbtv.ErrorCode(err))
		}
	})
}

func TestListEntry_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid entry", func(t *testing.T) {
		t.Parallel()

		e := imdbtv.ListEntry{Title: "Wednesday", TVDBID: "393342"}
		require.NoError(t, e.Validate())
	})

	t.Run("missing TVDB id", func(t *testing.T) {
		t.Parallel()

		e := imdbtv.ListEntry{Title: "Wednesday"}
		err := e.Validate()
		require.Error(t, err)
		assert.Equal(t, imdbtv.EINVALID, imdbtv.ErrorCode(err))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		e := imdbtv.ListEntry{TVDBID: "393342"}
		require.Error(t, e.Validate())
	})
}
