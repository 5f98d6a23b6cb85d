package common

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestOptionalBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want string
	}{
		{name: "string absent", got: String(nil), want: `null`},
		{name: "string empty", got: String(ptr("")), want: `null`},
		{name: "string set", got: String(ptr("x")), want: `"x"`},
		{name: "clearable empty", got: ClearableString(ptr("")), want: `null`},
		{name: "clearable set", got: ClearableString(ptr("7")), want: `"7"`},
		{name: "value false", got: Value(ptr(false)), want: `false`},
		{name: "value zero", got: Value(ptr(0)), want: `0`},
		{name: "slice empty", got: Slice([]string{}), want: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestOptionalBuilders_Presence(t *testing.T) {
	assert.True(t, String(nil).IsZero())
	assert.True(t, String(ptr("")).IsZero())
	assert.True(t, ClearableString(nil).IsZero())
	assert.True(t, ClearableString(ptr("")).IsNull())
	assert.False(t, Value(ptr(false)).IsZero())
	assert.True(t, Value[int](nil).IsZero())
	assert.True(t, Slice[string](nil).IsZero())
	assert.False(t, Slice([]string{}).IsZero())
}

func TestBind(t *testing.T) {
	var args struct {
		TaskID   *string `json:"taskId"`
		Priority *int    `json:"priority"`
	}

	req := mcp.CallToolRequest{}
	require.NoError(t, Bind(req, &args))
	assert.Nil(t, args.TaskID)

	req.Params.Arguments = map[string]any{"taskId": "42", "priority": float64(3)}
	require.NoError(t, Bind(req, &args))
	assert.Equal(t, "42", Deref(args.TaskID))
	assert.Equal(t, 3, Deref(args.Priority))
	assert.Equal(t, "", Deref[string](nil))
}
