package common

import "context"

// CallInfo describes the tool call in flight.
type CallInfo struct {
	Tool      string
	Entity    string
	Operation string

	// validated is set once the arguments passed schema validation.
	validated bool
	// local is set by handlers that answer without calling Todoist.
	local bool
}

type callInfoKey struct{}

func withCallInfo(ctx context.Context, info *CallInfo) context.Context {
	return context.WithValue(ctx, callInfoKey{}, info)
}

// CallInfoFrom returns the CallInfo of the current tool call.
func CallInfoFrom(ctx context.Context) (*CallInfo, bool) {
	info, ok := ctx.Value(callInfoKey{}).(*CallInfo)
	return info, ok
}

// MarkLocal records that the handler answered without an API call, so no
// Todoist operation is counted for it.
func MarkLocal(ctx context.Context) {
	if info, ok := CallInfoFrom(ctx); ok {
		info.local = true
	}
}

func (c *CallInfo) reachedAPI() bool {
	return c.validated && !c.local
}
