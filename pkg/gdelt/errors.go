package gdelt

import "errors"

var (
	// ErrInvalidInput flags requests rejected before any network call.
	ErrInvalidInput = errors.New("invalid search input")
	// ErrNetwork flags transport failures and non-2xx responses.
	ErrNetwork = errors.New("search request failed")
	// ErrParse flags response bodies that are not valid JSON.
	ErrParse = errors.New("search response malformed")
)
