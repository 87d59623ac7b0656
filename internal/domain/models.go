package domain

import "time"

// Domain contains core models and interfaces.

// Article is one matched news record. It is built from a single response
// entry, never mutated afterwards, and discarded after the run.
type Article struct {
	ID            string
	Title         string
	Description   string
	URL           string
	SourceName    string
	SourceCountry string
	Domain        string
	Language      string
	SeenDate      time.Time
}
