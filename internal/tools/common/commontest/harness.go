// Package commontest wires tool packages to a recording Todoist server for tests.
package commontest

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist/todoisttest"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

// RegisterFunc is the signature of the Register*Tools functions.
type RegisterFunc func(r *common.Registry, sc *server.ServerContext, readOnly bool) error

// Harness holds a registry whose tools talk to a todoisttest.Server.
type Harness struct {
	t        testing.TB
	Server   *todoisttest.Server
	Context  *server.ServerContext
	Registry *common.Registry
}

// New registers tools with register against a fresh todoisttest.Server.
func New(t testing.TB, register RegisterFunc, readOnly bool) *Harness {
	t.Helper()

	srv := todoisttest.NewServer(t)
	sc := server.NewServerContext(context.Background(), srv.API(), slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = sc.Shutdown() })

	r := common.NewRegistry(sc)
	if err := register(r, sc, readOnly); err != nil {
		t.Fatalf("failed to register tools: %v", err)
	}

	return &Harness{t: t, Server: srv, Context: sc, Registry: r}
}

// Call invokes a tool and fails the test on a transport level error.
func (h *Harness) Call(name string, args map[string]any) *mcp.CallToolResult {
	h.t.Helper()
	result, err := h.Registry.Call(context.Background(), name, args)
	if err != nil {
		h.t.Fatalf("call %s: %v", name, err)
	}
	if result == nil {
		h.t.Fatalf("call %s: nil result", name)
	}
	return result
}

// ToolNames returns the registered tool names, sorted.
func (h *Harness) ToolNames() []string {
	var names []string
	for _, tool := range h.Registry.Tools() {
		names = append(names, tool.Name)
	}
	return names
}

// Text returns the single text content of a result.
func Text(t testing.TB, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

// Decode parses the JSON text of a result.
func Decode(t testing.TB, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(Text(t, result)), &m); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	return m
}
