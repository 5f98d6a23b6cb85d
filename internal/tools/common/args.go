package common

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/todoist"
)

// Bind decodes the tool arguments into target. Optional arguments should
// be pointer fields so that absence can be told apart from a zero value.
func Bind(request mcp.CallToolRequest, target any) error {
	if request.Params.Arguments == nil {
		request.Params.Arguments = map[string]any{}
	}
	return request.BindArguments(target)
}

// String returns a set Optional for a non-empty string. Absent and empty
// strings are not transmitted.
func String(s *string) todoist.Optional[string] {
	if s == nil || *s == "" {
		return todoist.Optional[string]{}
	}
	return todoist.Set(*s)
}

// ClearableString is like String, but an empty string is an explicit clear
// and is transmitted as null.
func ClearableString(s *string) todoist.Optional[string] {
	switch {
	case s == nil:
		return todoist.Optional[string]{}
	case *s == "":
		return todoist.Clear[string]()
	default:
		return todoist.Set(*s)
	}
}

// Value returns a set Optional for any supplied value, including false and 0.
func Value[T any](v *T) todoist.Optional[T] {
	if v == nil {
		return todoist.Optional[T]{}
	}
	return todoist.Set(*v)
}

// Slice returns a set Optional for a supplied list, including an empty one.
func Slice[T any](items []T) todoist.Optional[[]T] {
	if items == nil {
		return todoist.Optional[[]T]{}
	}
	return todoist.Set(items)
}

// Deref returns the value of v, or its zero value when v is nil.
func Deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
