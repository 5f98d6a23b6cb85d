// Package logging provides structured logging utilities for todoist-mcp.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Logger construction (text or JSON handler, debug level switch)
//   - Consistent attribute naming across the codebase
//   - Token masking
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "createTask")
//	logger.Warn("todoist call failed",
//	    logging.Entity("task"),
//	    logging.HTTPStatus(404))
//
// # Output
//
// The MCP stdio transport owns stdout, so the process logger always writes
// to stderr. The API token is never logged, only SanitizeToken output.
package logging
