package driven

import (
	"context"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

// SearchAPI is the outbound port for the Brave Search API.
// Implementations own the HTTP session and local rate limiting; every
// remote call is rate-limit-checked independently.
type SearchAPI interface {
	// WebSearch performs a general web search. Count is clamped to the
	// API maximum of 20 by the implementation.
	WebSearch(ctx context.Context, query string, count, offset int) ([]domain.WebResult, error)

	// LocationIDs discovers location identifiers for a local query.
	// The returned slice preserves API order and contains no empty ids.
	LocationIDs(ctx context.Context, query string, count int) ([]string, error)

	// POIs fetches point-of-interest details for the given location ids.
	POIs(ctx context.Context, ids []string) ([]domain.POI, error)

	// Descriptions fetches textual descriptions keyed by location id.
	Descriptions(ctx context.Context, ids []string) (map[string]string, error)

	// RateLimit reports the current local rate limiter counters.
	RateLimit() domain.RateLimitStatus
}
