package labels_tools

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/todoist-mcp/internal/tools/common/commontest"
)

const labelJSON = `{"id":"11","name":"errands","color":"charcoal","order":1,"is_favorite":false}`

func TestRegisterLabelsTools(t *testing.T) {
	h := commontest.New(t, RegisterLabelsTools, false)
	assert.Equal(t, []string{
		"createLabel",
		"deleteLabel",
		"getLabel",
		"getSharedLabels",
		"listLabels",
		"removeSharedLabel",
		"renameSharedLabel",
		"updateLabel",
	}, h.ToolNames())

	h = commontest.New(t, RegisterLabelsTools, true)
	assert.Equal(t, []string{"getLabel", "getSharedLabels", "listLabels"}, h.ToolNames())
}

func TestLabelTools(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodGet, "/labels", http.StatusOK, "["+labelJSON+"]")

		result := h.Call("listLabels", nil)

		require.False(t, result.IsError, commontest.Text(t, result))
		assert.Len(t, commontest.Decode(t, result)["labels"], 1)
	})

	t.Run("get", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodGet, "/labels/11", http.StatusOK, labelJSON)

		result := h.Call("getLabel", map[string]any{"labelId": "11"})

		require.False(t, result.IsError, commontest.Text(t, result))
		label := commontest.Decode(t, result)["label"].(map[string]any)
		assert.Equal(t, "errands", label["name"])
	})

	t.Run("delete", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodDelete, "/labels/11", http.StatusNoContent, "")

		result := h.Call("deleteLabel", map[string]any{"labelId": "11"})

		require.False(t, result.IsError, commontest.Text(t, result))
		assert.Equal(t, "{\n  \"success\": true\n}", commontest.Text(t, result))
	})
}

func TestLabelWritePayloads(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		path string
		want map[string]any
		key  string
	}{
		{
			name: "create name only",
			tool: "createLabel",
			args: map[string]any{"name": "errands"},
			path: "/labels",
			want: map[string]any{"name": "errands"},
			key:  "label",
		},
		{
			name: "create with zero order",
			tool: "createLabel",
			args: map[string]any{"name": "errands", "order": 0, "isFavorite": true},
			path: "/labels",
			want: map[string]any{"name": "errands", "order": float64(0), "is_favorite": true},
			key:  "label",
		},
		{
			name: "update color",
			tool: "updateLabel",
			args: map[string]any{"labelId": "11", "color": "red", "name": ""},
			path: "/labels/11",
			want: map[string]any{"color": "red"},
			key:  "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterLabelsTools, false)
			h.Server.Handle(http.MethodPost, tt.path, http.StatusOK, labelJSON)

			result := h.Call(tt.tool, tt.args)

			require.False(t, result.IsError, commontest.Text(t, result))
			assert.Equal(t, tt.want, h.Server.LastRequest().JSON(t))
			assert.Contains(t, commontest.Decode(t, result), tt.key)
		})
	}
}

func TestGetSharedLabels(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantQuery string
	}{
		{name: "all", args: nil, wantQuery: ""},
		{name: "omit personal", args: map[string]any{"omitPersonal": true}, wantQuery: "true"},
		{name: "explicit false", args: map[string]any{"omitPersonal": false}, wantQuery: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterLabelsTools, false)
			h.Server.Handle(http.MethodGet, "/labels/shared", http.StatusOK, `["team","waiting"]`)

			result := h.Call("getSharedLabels", tt.args)

			require.False(t, result.IsError, commontest.Text(t, result))
			assert.Equal(t, tt.wantQuery, h.Server.LastRequest().Query.Get("omit_personal"))
			assert.Equal(t, "{\n  \"labels\": [\n    \"team\",\n    \"waiting\"\n  ]\n}", commontest.Text(t, result))
		})
	}
}

func TestSharedLabelWriteTools(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodPost, "/labels/shared/rename", http.StatusNoContent, "")

		result := h.Call("renameSharedLabel", map[string]any{"name": "team", "newName": "crew"})

		require.False(t, result.IsError, commontest.Text(t, result))
		assert.Equal(t, map[string]any{"name": "team", "new_name": "crew"}, h.Server.LastRequest().JSON(t))
		assert.Equal(t, "{\n  \"success\": true\n}", commontest.Text(t, result))
	})

	t.Run("remove", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodPost, "/labels/shared/remove", http.StatusNoContent, "")

		result := h.Call("removeSharedLabel", map[string]any{"name": "team"})

		require.False(t, result.IsError, commontest.Text(t, result))
		assert.Equal(t, map[string]any{"name": "team"}, h.Server.LastRequest().JSON(t))
	})

	t.Run("rename without new name", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)

		result := h.Call("renameSharedLabel", map[string]any{"name": "team"})

		assert.True(t, result.IsError)
		assert.Empty(t, h.Server.Requests())
	})

	t.Run("remove upstream failure", func(t *testing.T) {
		h := commontest.New(t, RegisterLabelsTools, false)
		h.Server.Handle(http.MethodPost, "/labels/shared/remove", http.StatusUnauthorized, "")

		result := h.Call("removeSharedLabel", map[string]any{"name": "team"})

		assert.True(t, result.IsError)
		assert.Equal(t, "Failed to remove shared label: 401 Unauthorized", commontest.Text(t, result))
	})
}
