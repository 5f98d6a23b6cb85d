package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/logging"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
)

// JSONResult returns a text result holding {key: v} as 2-space indented JSON.
func JSONResult(key string, v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(map[string]any{key: v}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// SuccessResult returns {"success": true}.
func SuccessResult() *mcp.CallToolResult {
	return JSONResult("success", true)
}

// InvalidArguments returns the error envelope for arguments rejected before any API call.
func InvalidArguments(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err))
}

// Failure logs err with the call context and returns the error envelope
// "<msg>: <reason>". Upstream response bodies only go to the log.
func Failure(ctx context.Context, sc *server.ServerContext, msg string, err error) *mcp.CallToolResult {
	logger := sc.Logger()
	attrs := []any{logging.Err(err)}

	info, hasInfo := CallInfoFrom(ctx)
	if hasInfo {
		attrs = append(attrs,
			logging.Tool(info.Tool),
			logging.Entity(info.Entity),
			logging.Operation(info.Operation))
	}

	code := todoist.StatusCode(err)
	if code != 0 {
		attrs = append(attrs, logging.HTTPStatus(code))
	}
	logger.WarnContext(ctx, msg, attrs...)

	if hasInfo {
		sc.Metrics().RecordAPIError(ctx, info.Entity, code)
	}

	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", msg, reason(err)))
}

// reason shortens an API error to its status line.
func reason(err error) string {
	var apiErr *todoist.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%d %s", apiErr.StatusCode, apiErr.Status)
	}
	return err.Error()
}
