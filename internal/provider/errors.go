// Package provider holds the types, errors and interfaces shared by the
// external dictionary, scraper and generative adapters.
package provider

import (
	"errors"
	"fmt"
)

// Names identify external providers for rate limiting, metrics and logs.
const (
	NameDictionary = "dictionary"
	NameScraper    = "scraper"
	NameGenerative = "generative"
)

var (
	// ErrNotFound is a valid negative answer from a provider, not a failure.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited means the provider answered 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrUnavailable covers network failures, timeouts and unexpected statuses.
	ErrUnavailable = errors.New("unavailable")
	// ErrMisconfigured is permanent, e.g. a missing API key.
	ErrMisconfigured = errors.New("misconfigured")
	// ErrMalformed is an unexpected response shape. It matches ErrUnavailable.
	ErrMalformed = fmt.Errorf("malformed response: %w", ErrUnavailable)
)

// IsTransient reports whether retrying the same call later may succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}

// Outcome classifies err into a short label for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrMisconfigured):
		return "misconfigured"
	default:
		return "unavailable"
	}
}
