package cuentica

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrTokenRequired  = errors.New("API token is required")
)

// RequestError represents a non-2xx response from the API. The body is kept
// verbatim; Cuentica error payloads are not structured enough to parse.
type RequestError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// RateLimitError represents a 429 response. ResetAt is the instant the rate
// limit window clears, taken from the X-RateLimit-Reset header. It is the
// zero time when the header was missing or unparsable.
type RateLimitError struct {
	ResetAt time.Time
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "rate limit exceeded"
	}

	return fmt.Sprintf("rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
