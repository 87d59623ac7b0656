package gdelt

import (
	"strings"

	"github.com/Adda-Baaj/bazar-khobor/internal/domain"
)

// Filter normalizes a parsed article list into the bounded result set:
// duplicates by URL collapse to the first occurrence, non-English records go
// when englishOnly is set, and the remainder truncates to limit. Input order
// is preserved.
func Filter(articles []domain.Article, limit int, englishOnly bool) []domain.Article {
	limit = ClampLimit(limit)

	seen := make(map[string]struct{}, len(articles))
	out := make([]domain.Article, 0, min(limit, len(articles)))

	for _, art := range articles {
		if art.URL == "" {
			continue
		}
		if _, dup := seen[art.URL]; dup {
			continue
		}
		if englishOnly && !isEnglish(art.Language) {
			continue
		}

		seen[art.URL] = struct{}{}
		out = append(out, art)
		if len(out) == limit {
			break
		}
	}

	return out
}

// isEnglish treats a missing language as English: the sourcelang clause has
// already filtered server-side, and the field is not always populated.
func isEnglish(language string) bool {
	language = strings.TrimSpace(language)
	return language == "" || strings.EqualFold(language, "english")
}
