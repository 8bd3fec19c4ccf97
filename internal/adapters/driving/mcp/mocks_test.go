package mcp

import (
	"context"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	webResult   string
	webErr      error
	localResult string
	localErr    error
	status      domain.RateLimitStatus

	lastQuery  string
	lastCount  int
	lastOffset int
}

func (m *mockSearchService) WebSearch(_ context.Context, query string, count, offset int) (string, error) {
	m.lastQuery = query
	m.lastCount = count
	m.lastOffset = offset
	return m.webResult, m.webErr
}

func (m *mockSearchService) LocalSearch(_ context.Context, query string, count int) (string, error) {
	m.lastQuery = query
	m.lastCount = count
	return m.localResult, m.localErr
}

func (m *mockSearchService) RateLimit() domain.RateLimitStatus {
	return m.status
}
