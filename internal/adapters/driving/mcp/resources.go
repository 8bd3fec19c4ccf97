package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// rateLimitURI is the resource exposing the local rate limiter state.
const rateLimitURI = "brave://rate-limit"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         rateLimitURI,
		Name:        "rate-limit",
		Description: "Current counters of the local Brave API rate limiter",
		MIMEType:    "application/json",
	}, s.handleRateLimitResource)
}

// handleRateLimitResource returns a JSON snapshot of the rate limiter.
func (s *Server) handleRateLimitResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	status := s.ports.Search.RateLimit()

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling rate limit status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
