// Package driven defines the outbound ports of the Brave MCP server.
// Driven ports are implemented by infrastructure adapters such as the
// Brave API connector and consumed by the core services.
package driven
