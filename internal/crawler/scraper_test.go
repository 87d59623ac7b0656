package crawler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
	"github.com/Adda-Baaj/bazar-khobor/pkg/httpclient"
)

type stubResponse struct {
	status int
	body   []byte
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.status }

// stubClient serves canned pages keyed by URL.
type stubClient struct {
	pages map[string]stubResponse
	err   error
}

func (s *stubClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	if resp, ok := s.pages[url]; ok {
		return resp, nil
	}
	return stubResponse{status: 404}, nil
}

func (s *stubClient) Post(_ context.Context, _ string, _ map[string]string, _ []byte) (httpclient.Response, error) {
	return nil, errors.New("not implemented")
}

func TestParseMeta(t *testing.T) {
	html := `<html><head>
		<title>Fallback Title</title>
		<meta property="og:title" content="OG Title"/>
		<meta property="og:description" content="OG description here"/>
	</head><body></body></html>`

	meta, err := parseMeta([]byte(html))
	require.NoError(t, err)
	require.Equal(t, "OG Title", meta.Title)
	require.Equal(t, "OG description here", meta.Description)
}

func TestParseMeta_FallsBackToTitleTag(t *testing.T) {
	html := `<html><head><title> Plain Title </title></head><body></body></html>`

	meta, err := parseMeta([]byte(html))
	require.NoError(t, err)
	require.Equal(t, "Plain Title", meta.Title)
	require.Empty(t, meta.Description)
}

func TestEnrich_FillsMetadata(t *testing.T) {
	client := &stubClient{pages: map[string]stubResponse{
		"https://x.test/1": {
			status: 200,
			body: []byte(`<html><head>
				<meta property="og:title" content="Full headline"/>
				<meta property="og:description" content="A proper summary"/>
			</head></html>`),
		},
	}}

	s := NewScraper(client, 2, 0, nil)
	out := s.Enrich(context.Background(), []domain.Article{
		{URL: "https://x.test/1", Title: "truncated..."},
	})

	require.Len(t, out, 1)
	require.Equal(t, "Full headline", out[0].Title)
	require.Equal(t, "A proper summary", out[0].Description)
}

func TestEnrich_KeepsOriginalOnFailure(t *testing.T) {
	client := &stubClient{pages: map[string]stubResponse{}} // everything 404s

	s := NewScraper(client, 2, 0, nil)
	in := []domain.Article{{URL: "https://x.test/missing", Title: "original title"}}
	out := s.Enrich(context.Background(), in)

	require.Equal(t, in, out)
}

func TestEnrich_Empty(t *testing.T) {
	s := NewScraper(&stubClient{}, 2, 0, nil)
	out := s.Enrich(context.Background(), nil)
	require.Empty(t, out)
}

func TestEnrich_CancelledContextReturnsOriginals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{pages: map[string]stubResponse{}}
	s := NewScraper(client, 2, 0, nil)

	in := []domain.Article{
		{URL: "https://x.test/1", Title: "one"},
		{URL: "https://x.test/2", Title: "two"},
	}
	out := s.Enrich(ctx, in)
	require.Equal(t, in, out)
}
