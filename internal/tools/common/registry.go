package common

import (
	"context"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/todoist-mcp/internal/server"
)

// Entry is a registered tool with its wrapped handler.
type Entry struct {
	Tool      mcp.Tool
	Entity    string
	Operation string

	handler mcpserver.ToolHandlerFunc
}

// Registry collects tools and their handlers before they are installed on
// an MCP server. Names are unique.
type Registry struct {
	sc      *server.ServerContext
	entries map[string]*Entry
}

// NewRegistry creates an empty registry for the given server context.
func NewRegistry(sc *server.ServerContext) *Registry {
	return &Registry{
		sc:      sc,
		entries: make(map[string]*Entry),
	}
}

// Add registers a tool. The handler is wrapped with argument validation
// and instrumentation.
func (r *Registry) Add(entity, operation string, tool mcp.Tool, handler mcpserver.ToolHandlerFunc) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if handler == nil {
		return fmt.Errorf("tool %q has no handler", tool.Name)
	}
	if _, exists := r.entries[tool.Name]; exists {
		return fmt.Errorf("tool %q is already registered", tool.Name)
	}

	v, err := newValidator(tool)
	if err != nil {
		return fmt.Errorf("tool %q: %w", tool.Name, err)
	}

	wrapped := InstrumentedToolHandler(tool.Name, entity, operation, r.sc,
		validatingHandler(v, r.sc, handler))

	r.entries[tool.Name] = &Entry{
		Tool:      tool,
		Entity:    entity,
		Operation: operation,
		handler:   wrapped,
	}
	return nil
}

// Lookup returns the wrapped handler of a tool.
func (r *Registry) Lookup(name string) (mcpserver.ToolHandlerFunc, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return entry.handler, true
}

// Call invokes a tool by name with the given arguments.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	if args != nil {
		request.Params.Arguments = args
	}
	return handler(ctx, request)
}

// Entries returns the registered entries sorted by tool name.
func (r *Registry) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Tool.Name < entries[j].Tool.Name
	})
	return entries
}

// Tools returns the registered tool definitions sorted by name.
func (r *Registry) Tools() []mcp.Tool {
	entries := r.Entries()
	tools := make([]mcp.Tool, len(entries))
	for i, entry := range entries {
		tools[i] = entry.Tool
	}
	return tools
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Install adds every registered tool to s.
func (r *Registry) Install(s *mcpserver.MCPServer) {
	for _, entry := range r.Entries() {
		s.AddTool(entry.Tool, entry.handler)
	}
}
