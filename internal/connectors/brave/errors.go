package brave

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the client was constructed without a
// subscription token. Fatal at startup, never per-request.
var ErrMissingAPIKey = errors.New("brave: BRAVE_API_KEY is required")

// RateLimitError indicates the local advisory limiter rejected a call
// before it was sent. It carries the counter values at rejection time.
type RateLimitError struct {
	SecondUsed int
	MonthUsed  int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("brave: rate limit exceeded (%d this second, %d this month)", e.SecondUsed, e.MonthUsed)
}

// APIError represents a non-200 response from any Brave endpoint.
// The raw body is preserved so callers can surface it verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brave: API error %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited checks if the error came from the local rate limiter.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsAPIError checks if the error is a non-200 API response, returning
// the typed error when it is.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
