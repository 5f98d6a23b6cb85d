// Package server provides the MCP server context and the HTTP side of the
// todoist-mcp server.
//
// # Key Components
//
// ServerContext carries the Todoist client, the logger and the optional
// metrics recorder and audit logger to every tool handler.
//
// HTTPServer serves the MCP streamable HTTP transport at /mcp together with
// the health endpoints (/healthz, /readyz, /healthz/detailed).
//
// MetricsServer exposes Prometheus metrics on a dedicated address so that
// scraping never shares a port with MCP traffic.
//
// The stdio transport needs none of the HTTP components and is started
// directly from the serve command.
package server
