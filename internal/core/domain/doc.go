// Package domain contains the core types shared across the Brave MCP
// server: web search results, points of interest and rate limiter state.
// These types carry no behaviour beyond what is needed for formatting.
package domain
