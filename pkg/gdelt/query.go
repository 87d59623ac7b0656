package gdelt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxRecords is the hard cap the DOC API places on maxrecords.
	MaxRecords = 250
	// MinKeywordLen is the shortest keyword the DOC API accepts.
	MinKeywordLen = 3
)

// BuildQuery assembles the DOC API query string: the subject clause, an
// OR-group of keywords, and an optional source-language restriction, all
// AND-joined. Keywords shorter than MinKeywordLen runes are dropped.
func BuildQuery(subject string, keywords []string, englishOnly bool) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", fmt.Errorf("%w: a stock symbol or company name is required", ErrInvalidInput)
	}

	parts := []string{fmt.Sprintf(`("%s" OR %s)`, subject, subject)}

	if kept := usableKeywords(keywords); len(kept) > 0 {
		if len(kept) == 1 {
			parts = append(parts, kept[0])
		} else {
			parts = append(parts, "("+strings.Join(kept, " OR ")+")")
		}
	}

	if englishOnly {
		parts = append(parts, "sourcelang:english")
	}

	return strings.Join(parts, " AND "), nil
}

// usableKeywords trims, drops too-short entries, and normalizes the rest.
func usableKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || utf8.RuneCountInString(kw) < MinKeywordLen {
			continue
		}
		out = append(out, normalizeTerm(kw))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeTerm quotes multi-word terms so the API treats them as phrases.
func normalizeTerm(term string) string {
	if strings.Contains(term, " ") {
		return `"` + term + `"`
	}
	return term
}

// ClampLimit forces a requested record count into the API's [1, MaxRecords]
// window.
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxRecords {
		return MaxRecords
	}
	return limit
}
