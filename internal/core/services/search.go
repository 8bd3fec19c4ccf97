package services

import (
	"context"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
	"github.com/custodia-labs/brave-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/brave-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/brave-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService turns Brave API responses into the textual results the
// MCP tools return. All state lives in the injected API client.
type SearchService struct {
	api driven.SearchAPI
}

// NewSearchService creates a new search service.
func NewSearchService(api driven.SearchAPI) *SearchService {
	return &SearchService{api: api}
}

// WebSearch performs a general web search and formats each hit as a
// Title/Description/URL block. Zero results format to an empty string.
func (s *SearchService) WebSearch(ctx context.Context, query string, count, offset int) (string, error) {
	logger.Debug("Web search: %q (count=%d, offset=%d)", query, count, offset)

	results, err := s.api.WebSearch(ctx, query, count, offset)
	if err != nil {
		return "", err
	}

	logger.Debug("Web search returned %d results", len(results))
	return formatWebResults(results), nil
}

// LocalSearch chains location discovery, POI details and POI
// descriptions. When discovery yields no ids it degrades to a plain
// web search instead of reporting no results.
func (s *SearchService) LocalSearch(ctx context.Context, query string, count int) (string, error) {
	logger.Debug("Local search: %q (count=%d)", query, count)

	ids, err := s.api.LocationIDs(ctx, query, count)
	if err != nil {
		return "", err
	}

	if len(ids) == 0 {
		logger.Debug("No locations matched, falling back to web search")
		return s.WebSearch(ctx, query, count, 0)
	}

	logger.Debug("Found %d location ids", len(ids))

	pois, err := s.api.POIs(ctx, ids)
	if err != nil {
		return "", err
	}

	descriptions, err := s.api.Descriptions(ctx, ids)
	if err != nil {
		return "", err
	}

	return formatLocalResults(pois, descriptions), nil
}

// RateLimit reports the current local limiter counters.
func (s *SearchService) RateLimit() domain.RateLimitStatus {
	return s.api.RateLimit()
}
