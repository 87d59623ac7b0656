package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
	"github.com/Adda-Baaj/bazar-khobor/internal/store"
)

func openTempStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndLoadRun(t *testing.T) {
	st := openTempStore(t)

	articles := []domain.Article{
		{ID: "a1", Title: "one", URL: "https://x.test/1", SeenDate: time.Date(2025, 1, 9, 8, 0, 0, 0, time.UTC)},
		{ID: "a2", Title: "two", URL: "https://x.test/2"},
	}

	query := `("MSFT" OR MSFT) AND sourcelang:english`
	require.NoError(t, st.SaveRun(query, articles))

	rec, found, err := st.LastRun(query)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, query, rec.Query)
	require.Equal(t, articles, rec.Articles)
	require.False(t, rec.RanAt.IsZero())
}

func TestLastRun_Missing(t *testing.T) {
	st := openTempStore(t)

	_, found, err := st.LastRun("never ran")
	require.NoError(t, err)
	require.False(t, found)
}

func TestKnownURLs(t *testing.T) {
	st := openTempStore(t)

	query := "some query"
	require.NoError(t, st.SaveRun(query, []domain.Article{
		{URL: "https://x.test/1"},
		{URL: "https://x.test/2"},
	}))

	urls, err := st.KnownURLs(query)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	require.Contains(t, urls, "https://x.test/1")

	urls, err = st.KnownURLs("other query")
	require.NoError(t, err)
	require.Empty(t, urls)
}

func TestSaveRun_Overwrites(t *testing.T) {
	st := openTempStore(t)

	query := "q"
	require.NoError(t, st.SaveRun(query, []domain.Article{{URL: "https://x.test/old"}}))
	require.NoError(t, st.SaveRun(query, []domain.Article{{URL: "https://x.test/new"}}))

	urls, err := st.KnownURLs(query)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	require.Contains(t, urls, "https://x.test/new")
}
