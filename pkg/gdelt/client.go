package gdelt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
	"github.com/Adda-Baaj/bazar-khobor/internal/logger"
	"github.com/Adda-Baaj/bazar-khobor/pkg/httpclient"
)

const (
	// DefaultEndpoint is the fixed DOC 2.0 article search endpoint.
	DefaultEndpoint = "https://api.gdeltproject.org/api/v2/doc/doc"

	defaultTimeout  = 10 * time.Second
	startDateLayout = "20060102150405"
	userAgent       = "bazar-khobor/1.0"
)

// SearchRequest describes one article search.
type SearchRequest struct {
	// Subject is the stock symbol or company name. Required.
	Subject string
	// Keywords narrow the search; entries shorter than MinKeywordLen runes
	// are dropped before query construction.
	Keywords []string
	// Days bounds the search window; 0 searches all available history.
	Days int
	// Limit caps the result count. Values above MaxRecords clamp down.
	Limit int
	// EnglishOnly restricts results to English-language sources.
	EnglishOnly bool
}

// docResponse mirrors the ArtList JSON payload.
type docResponse struct {
	Articles []docArticle `json:"articles"`
}

type docArticle struct {
	Title            string `json:"title"`
	URL              string `json:"url"`
	SeenDate         string `json:"seendate"`
	SourceCommonName string `json:"sourceCommonName"`
	SourceCountry    string `json:"sourcecountry"`
	Domain           string `json:"domain"`
	Language         string `json:"language"`
}

// Client issues article searches against a DOC API endpoint.
type Client struct {
	http     httpclient.Client
	endpoint string
	log      logger.Logger
	now      func() time.Time
}

// NewClient builds a search client. A nil http client gets a tuned default;
// an empty endpoint falls back to DefaultEndpoint.
func NewClient(client httpclient.Client, endpoint string, log logger.Logger) *Client {
	if client == nil {
		client = httpclient.NewRestyClient(defaultTimeout)
	}
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Client{
		http:     client,
		endpoint: endpoint,
		log:      log,
		now:      time.Now,
	}
}

// Search runs the full pipeline for one request: validate, build the query,
// execute the GET, parse and filter the response. The returned slice is
// deduplicated by URL, truncated to the clamped limit, and kept in the
// service's native order.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]domain.Article, error) {
	if req.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, req.Limit)
	}
	limit := ClampLimit(req.Limit)

	days := req.Days
	if days < 0 {
		days = 0
	}

	query, err := BuildQuery(req.Subject, req.Keywords, req.EnglishOnly)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("mode", "ArtList")
	params.Set("format", "json")
	params.Set("maxrecords", strconv.Itoa(limit))
	params.Set("sort", "datedesc")
	if days > 0 {
		start := c.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
		params.Set("startdatetime", start.Format(startDateLayout))
	}

	requestURL := c.endpoint + "?" + params.Encode()

	c.log.DebugObj("executing article search", "search_start", map[string]any{
		"query":      query,
		"maxrecords": limit,
		"days":       days,
	})

	resp, err := c.http.Get(ctx, requestURL, map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d body: %s", ErrNetwork, resp.StatusCode(), responseSnippet(body))
	}

	var parsed docResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode article list: %v (body: %s)", ErrParse, err, responseSnippet(body))
	}

	articles := Filter(buildArticles(parsed.Articles), limit, req.EnglishOnly)

	c.log.InfoObj("article search completed", "search_done", map[string]any{
		"query":    query,
		"returned": len(parsed.Articles),
		"kept":     len(articles),
	})

	return articles, nil
}

// Endpoint reports the endpoint this client targets.
func (c *Client) Endpoint() string { return c.endpoint }
