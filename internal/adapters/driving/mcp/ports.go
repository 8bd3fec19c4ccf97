package mcp

import (
	"github.com/custodia-labs/brave-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection; the SearchService placed here is the process-wide shared
// instance, constructed once at startup and released at shutdown.
type Ports struct {
	// Search provides the web and local search operations.
	Search driving.SearchService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
