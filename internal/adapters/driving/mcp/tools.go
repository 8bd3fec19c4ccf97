package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/brave-mcp/internal/logger"
)

const (
	// defaultWebCount is the result count when a caller omits it.
	defaultWebCount = 10

	// defaultLocalCount is the local search result count when omitted.
	defaultLocalCount = 5
)

// WebSearchInput is the input schema for the brave_web_search tool.
type WebSearchInput struct {
	Query  string `json:"query" jsonschema:"the search query (max 400 chars, 50 words)"`
	Count  int    `json:"count,omitempty" jsonschema:"number of results (1-20, default 10)"`
	Offset int    `json:"offset,omitempty" jsonschema:"pagination offset (max 9, default 0)"`
}

// LocalSearchInput is the input schema for the brave_local_search tool.
type LocalSearchInput struct {
	Query string `json:"query" jsonschema:"local search query (e.g. 'pizza near Central Park')"`
	Count int    `json:"count,omitempty" jsonschema:"number of results (1-20, default 5)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "brave_web_search",
		Description: "Performs a web search using the Brave Search API. " +
			"Ideal for general queries, news, articles, and online content. " +
			"Use this for broad information gathering, recent events, or when you need diverse web sources.",
	}, s.handleWebSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "brave_local_search",
		Description: "Searches for local businesses and places using Brave's Local Search API. " +
			"Best for queries related to physical locations, businesses, restaurants, services. " +
			"Returns names, addresses, ratings, phone numbers and opening hours. " +
			"Falls back to a web search when no locations match.",
	}, s.handleLocalSearch)
}

// handleWebSearch handles the brave_web_search tool invocation.
// Search failures are reported as text, never as protocol errors, so
// callers always receive a well-formed tool result.
func (s *Server) handleWebSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WebSearchInput,
) (*mcp.CallToolResult, any, error) {
	count := input.Count
	if count <= 0 {
		count = defaultWebCount
	}

	text, err := s.ports.Search.WebSearch(ctx, input.Query, count, input.Offset)
	if err != nil {
		logger.Warn("Web search failed: %v", err)
		text = fmt.Sprintf("Error during web search: %s", err)
	}

	return textResult(text), nil, nil
}

// handleLocalSearch handles the brave_local_search tool invocation.
func (s *Server) handleLocalSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LocalSearchInput,
) (*mcp.CallToolResult, any, error) {
	count := input.Count
	if count <= 0 {
		count = defaultLocalCount
	}

	text, err := s.ports.Search.LocalSearch(ctx, input.Query, count)
	if err != nil {
		logger.Warn("Local search failed: %v", err)
		text = fmt.Sprintf("Error during local search: %s", err)
	}

	return textResult(text), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
