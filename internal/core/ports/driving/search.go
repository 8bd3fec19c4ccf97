package driving

import (
	"context"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

// SearchService exposes the two search operations as formatted text,
// ready to be returned to an MCP caller unchanged.
type SearchService interface {
	// WebSearch returns one "Title/Description/URL" block per result,
	// blocks separated by a blank line. Zero results yield "".
	WebSearch(ctx context.Context, query string, count, offset int) (string, error)

	// LocalSearch returns one fixed-field block per POI separated by
	// "\n---\n", the literal "No local results found" when the POI
	// lookup is empty, or plain web search output when no locations
	// match the query at all.
	LocalSearch(ctx context.Context, query string, count int) (string, error)

	// RateLimit reports the current local rate limiter counters.
	RateLimit() domain.RateLimitStatus
}
