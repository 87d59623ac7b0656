package gdelt

import (
	"crypto/sha1" //nolint:gosec // non-cryptographic id generation
	"encoding/hex"
	"strings"
	"time"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
)

// hashURL generates a SHA-1 hash of the given URL string.
func hashURL(u string) string {
	sum := sha1.Sum([]byte(u))
	return hex.EncodeToString(sum[:])
}

// responseSnippet returns a truncated snippet of the response body for error
// messages and logging.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}

// seenDateLayout is the DOC API article timestamp format.
const seenDateLayout = "20060102T150405Z"

// parseSeenDate attempts to parse an article timestamp. Unparseable values
// yield the zero time rather than failing the whole response.
func parseSeenDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	if t, err := time.Parse(seenDateLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}

	return time.Time{}
}

// buildArticles constructs domain.Article records from parsed response
// entries. Entries without a URL are dropped here; ordering is preserved.
func buildArticles(entries []docArticle) []domain.Article {
	articles := make([]domain.Article, 0, len(entries))
	for _, entry := range entries {
		loc := strings.TrimSpace(entry.URL)
		if loc == "" {
			continue
		}

		articles = append(articles, domain.Article{
			ID:            hashURL(loc),
			Title:         strings.TrimSpace(entry.Title),
			URL:           loc,
			SourceName:    sourceName(entry),
			SourceCountry: strings.TrimSpace(entry.SourceCountry),
			Domain:        strings.TrimSpace(entry.Domain),
			Language:      strings.TrimSpace(entry.Language),
			SeenDate:      parseSeenDate(entry.SeenDate),
		})
	}
	return articles
}

// sourceName picks the best available display name for the outlet.
func sourceName(entry docArticle) string {
	for _, candidate := range []string{entry.SourceCommonName, entry.Domain, entry.SourceCountry} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return ""
}
