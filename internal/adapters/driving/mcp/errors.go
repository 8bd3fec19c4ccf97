// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes Brave web and local search as callable tools for AI
// assistants, and a resource reporting the local rate limiter state.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
