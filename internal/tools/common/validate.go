package common

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/todoist-mcp/internal/server"
)

// validator checks tool arguments against the tool's input schema.
type validator struct {
	resolved *jsonschema.Resolved
}

func newValidator(tool mcp.Tool) (*validator, error) {
	var raw []byte
	if len(tool.RawInputSchema) > 0 {
		raw = tool.RawInputSchema
	} else {
		data, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("marshal input schema: %w", err)
		}
		raw = data
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("decode input schema: %w", err)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve input schema: %w", err)
	}
	return &validator{resolved: resolved}, nil
}

// validate checks args, which may be nil or a nil map. The arguments are normalized
// through JSON first so that Go-typed values validate like decoded ones.
func (v *validator) validate(args any) error {
	if args == nil {
		args = map[string]any{}
	}

	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	if instance == nil {
		// A nil map is an empty argument object.
		instance = map[string]any{}
	}
	if _, ok := instance.(map[string]any); !ok {
		return fmt.Errorf("arguments must be an object")
	}

	return v.resolved.Validate(instance)
}

// validatingHandler rejects calls whose arguments fail the schema. Rejected
// calls never reach the handler.
func validatingHandler(v *validator, sc *server.ServerContext, handler mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := v.validate(request.Params.Arguments); err != nil {
			if info, ok := CallInfoFrom(ctx); ok {
				sc.Metrics().RecordValidationError(ctx, info.Tool)
			}
			return InvalidArguments(err), nil
		}

		if info, ok := CallInfoFrom(ctx); ok {
			info.validated = true
		}
		return handler(ctx, request)
	}
}
