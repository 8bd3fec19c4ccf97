// Package driving defines the inbound ports of the Brave MCP server,
// consumed by the MCP and CLI adapters.
package driving
