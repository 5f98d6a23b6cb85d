// Package common provides the tool registry and shared helpers for the MCP
// tool packages.
//
// Every tool is registered through a Registry, which wraps its handler in
// two layers:
//   - instrumentation: a tool.<name> span, tool and API metrics, and an
//     audit record per call
//   - validation: the raw arguments are checked against the tool's JSON
//     input schema before the handler runs
//
// Handlers report results through JSONResult, SuccessResult and Failure so
// that every tool answers with the same text envelope.
package common
