package gdelt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildQuery_SubjectOnly(t *testing.T) {
	q, err := BuildQuery("MSFT", nil, true)
	require.NoError(t, err)
	require.Equal(t, `("MSFT" OR MSFT) AND sourcelang:english`, q)
}

func TestBuildQuery_EmptySubject(t *testing.T) {
	_, err := BuildQuery("", nil, true)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = BuildQuery("   ", []string{"guidance"}, true)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildQuery_SingleKeyword(t *testing.T) {
	q, err := BuildQuery("NVIDIA", []string{"guidance"}, true)
	require.NoError(t, err)
	require.Equal(t, `("NVIDIA" OR NVIDIA) AND guidance AND sourcelang:english`, q)
}

func TestBuildQuery_MultipleKeywordsORGrouped(t *testing.T) {
	q, err := BuildQuery("MSFT", []string{"guidance", "investigation"}, true)
	require.NoError(t, err)
	require.Equal(t, `("MSFT" OR MSFT) AND (guidance OR investigation) AND sourcelang:english`, q)
}

func TestBuildQuery_MultiWordKeywordQuoted(t *testing.T) {
	q, err := BuildQuery("AAPL", []string{"supply chain"}, true)
	require.NoError(t, err)
	require.Contains(t, q, `"supply chain"`)
}

func TestBuildQuery_ShortKeywordsDropped(t *testing.T) {
	for _, keywords := range [][]string{
		{"ai"},
		{"a", "of", "x"},
		{"", "  ", "to"},
	} {
		q, err := BuildQuery("NVIDIA", keywords, true)
		require.NoError(t, err)
		require.Equal(t, `("NVIDIA" OR NVIDIA) AND sourcelang:english`, q,
			"keywords %v should all be dropped", keywords)
	}
}

func TestBuildQuery_ShortKeywordsDroppedAmongValid(t *testing.T) {
	q, err := BuildQuery("NVIDIA", []string{"ai", "earnings"}, true)
	require.NoError(t, err)
	require.Equal(t, `("NVIDIA" OR NVIDIA) AND earnings AND sourcelang:english`, q)
}

func TestBuildQuery_AllowNonEnglish(t *testing.T) {
	q, err := BuildQuery("MSFT", nil, false)
	require.NoError(t, err)
	require.NotContains(t, q, "sourcelang")
}

func TestBuildQuery_KeywordLengthInRunes(t *testing.T) {
	// Two runes, more than three bytes: still too short.
	q, err := BuildQuery("TSMC", []string{"日本"}, false)
	require.NoError(t, err)
	require.Equal(t, `("TSMC" OR TSMC)`, q)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{25, 25},
		{250, 250},
		{251, 250},
		{500, 250},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
