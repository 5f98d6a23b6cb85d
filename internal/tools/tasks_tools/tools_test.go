package tasks_tools

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/todoist-mcp/internal/tools/common/commontest"
)

const taskJSON = `{"id":"7","project_id":"1","content":"Buy milk","priority":2,"labels":[]}`

func TestRegisterTasksTools(t *testing.T) {
	tests := []struct {
		name     string
		readOnly bool
		want     []string
	}{
		{
			name: "all tools",
			want: []string{"completeTask", "createTask", "deleteTask", "getTask", "listTasks", "reopenTask", "updateTask"},
		},
		{
			name:     "read only",
			readOnly: true,
			want:     []string{"getTask", "listTasks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, tt.readOnly)
			assert.Equal(t, tt.want, h.ToolNames())
		})
	}
}

func TestCreateTask(t *testing.T) {
	h := commontest.New(t, RegisterTasksTools, false)
	h.Server.Handle(http.MethodPost, "/tasks", http.StatusOK, taskJSON)

	result := h.Call("createTask", map[string]any{"content": "Buy milk", "priority": 2})

	require.False(t, result.IsError, commontest.Text(t, result))
	assert.Equal(t, map[string]any{"content": "Buy milk", "priority": float64(2)}, h.Server.LastRequest().JSON(t))

	task := commontest.Decode(t, result)["task"].(map[string]any)
	assert.Equal(t, "7", task["id"])
	assert.Equal(t, "Buy milk", task["content"])
	assert.Contains(t, commontest.Text(t, result), "{\n  \"task\": {\n")
}

func TestCreateTask_Payload(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want map[string]any
	}{
		{
			name: "due string wins",
			args: map[string]any{
				"content":     "x",
				"dueString":   "tomorrow",
				"dueDate":     "2025-01-01",
				"dueDatetime": "2025-01-01T10:00:00Z",
			},
			want: map[string]any{"content": "x", "due_string": "tomorrow"},
		},
		{
			name: "due date wins over datetime",
			args: map[string]any{
				"content":     "x",
				"dueDate":     "2025-01-01",
				"dueDatetime": "2025-01-01T10:00:00Z",
				"dueLang":     "en",
			},
			want: map[string]any{"content": "x", "due_date": "2025-01-01", "due_lang": "en"},
		},
		{
			name: "empty strings are not sent",
			args: map[string]any{"content": "x", "description": "", "projectId": "", "dueString": ""},
			want: map[string]any{"content": "x"},
		},
		{
			name: "zero and false values are sent",
			args: map[string]any{"content": "x", "order": 0, "labels": []any{}},
			want: map[string]any{"content": "x", "order": float64(0), "labels": []any{}},
		},
		{
			name: "placement and duration",
			args: map[string]any{
				"content":      "x",
				"projectId":    "1",
				"sectionId":    "2",
				"parentId":     "3",
				"labels":       []any{"errands"},
				"duration":     30,
				"durationUnit": "minute",
			},
			want: map[string]any{
				"content":       "x",
				"project_id":    "1",
				"section_id":    "2",
				"parent_id":     "3",
				"labels":        []any{"errands"},
				"duration":      float64(30),
				"duration_unit": "minute",
			},
		},
		{
			name: "empty assignee clears",
			args: map[string]any{"content": "x", "assigneeId": ""},
			want: map[string]any{"content": "x", "assignee_id": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, false)
			h.Server.Handle(http.MethodPost, "/tasks", http.StatusOK, taskJSON)

			result := h.Call("createTask", tt.args)

			require.False(t, result.IsError, commontest.Text(t, result))
			assert.Equal(t, tt.want, h.Server.LastRequest().JSON(t))
		})
	}
}

func TestUpdateTask(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want map[string]any
	}{
		{
			name: "only supplied fields",
			args: map[string]any{"taskId": "7", "content": "Buy oat milk"},
			want: map[string]any{"content": "Buy oat milk"},
		},
		{
			name: "unassign",
			args: map[string]any{"taskId": "7", "assigneeId": ""},
			want: map[string]any{"assignee_id": nil},
		},
		{
			name: "assign",
			args: map[string]any{"taskId": "7", "assigneeId": "42", "priority": 4},
			want: map[string]any{"assignee_id": "42", "priority": float64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, false)
			h.Server.Handle(http.MethodPost, "/tasks/7", http.StatusOK, taskJSON)

			result := h.Call("updateTask", tt.args)

			require.False(t, result.IsError, commontest.Text(t, result))
			assert.Equal(t, tt.want, h.Server.LastRequest().JSON(t))
			assert.Contains(t, commontest.Decode(t, result), "success")
		})
	}
}

func TestTaskTools_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{name: "getTask without id", tool: "getTask", args: nil},
		{name: "createTask without content", tool: "createTask", args: map[string]any{"priority": 1}},
		{name: "priority out of range", tool: "createTask", args: map[string]any{"content": "x", "priority": 5}},
		{name: "labels not an array", tool: "createTask", args: map[string]any{"content": "x", "labels": "a"}},
		{name: "unknown duration unit", tool: "createTask", args: map[string]any{"content": "x", "duration": 1, "durationUnit": "week"}},
		{name: "duration without unit", tool: "createTask", args: map[string]any{"content": "x", "duration": 15}},
		{name: "unit without duration", tool: "updateTask", args: map[string]any{"taskId": "7", "durationUnit": "day"}},
		{name: "completeTask without id", tool: "completeTask", args: map[string]any{}},
		{name: "updateTask with numeric id", tool: "updateTask", args: map[string]any{"taskId": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, false)

			result := h.Call(tt.tool, tt.args)

			assert.True(t, result.IsError)
			assert.Contains(t, commontest.Text(t, result), "invalid arguments")
			assert.Empty(t, h.Server.Requests())
		})
	}
}

func TestTaskTools_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		method   string
		path     string
		status   int
		wantText string
	}{
		{
			name:     "task not found",
			tool:     "getTask",
			args:     map[string]any{"taskId": "404"},
			method:   http.MethodGet,
			path:     "/tasks/404",
			status:   http.StatusNotFound,
			wantText: "Failed to fetch task: 404 Not Found",
		},
		{
			name:     "server error on create",
			tool:     "createTask",
			args:     map[string]any{"content": "x"},
			method:   http.MethodPost,
			path:     "/tasks",
			status:   http.StatusInternalServerError,
			wantText: "Failed to create task: 500 Internal Server Error",
		},
		{
			name:     "forbidden delete",
			tool:     "deleteTask",
			args:     map[string]any{"taskId": "7"},
			method:   http.MethodDelete,
			path:     "/tasks/7",
			status:   http.StatusForbidden,
			wantText: "Failed to delete task: 403 Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, false)
			h.Server.Handle(tt.method, tt.path, tt.status, `{"error":"nope"}`)

			result := h.Call(tt.tool, tt.args)

			assert.True(t, result.IsError)
			assert.Equal(t, tt.wantText, commontest.Text(t, result))
			assert.Len(t, h.Server.Requests(), 1)
		})
	}
}

func TestListTasks(t *testing.T) {
	h := commontest.New(t, RegisterTasksTools, false)
	h.Server.Handle(http.MethodGet, "/tasks", http.StatusOK, "["+taskJSON+"]")

	result := h.Call("listTasks", map[string]any{
		"projectId": "1",
		"label":     "errands",
		"filter":    "today",
		"ids":       []any{"7", "8"},
	})

	require.False(t, result.IsError, commontest.Text(t, result))
	query := h.Server.LastRequest().Query
	assert.Equal(t, "1", query.Get("project_id"))
	assert.Equal(t, "errands", query.Get("label"))
	assert.Equal(t, "today", query.Get("filter"))
	assert.Equal(t, "7,8", query.Get("ids"))
	assert.False(t, query.Has("section_id"))

	tasks := commontest.Decode(t, result)["tasks"].([]any)
	assert.Len(t, tasks, 1)
}

func TestListTasks_Empty(t *testing.T) {
	h := commontest.New(t, RegisterTasksTools, false)
	h.Server.Handle(http.MethodGet, "/tasks", http.StatusOK, `[]`)

	result := h.Call("listTasks", nil)

	require.False(t, result.IsError)
	assert.Equal(t, "{\n  \"tasks\": []\n}", commontest.Text(t, result))
	assert.Empty(t, h.Server.LastRequest().Query)
}

func TestTaskLifecycleTools(t *testing.T) {
	tests := []struct {
		tool   string
		method string
		path   string
	}{
		{tool: "completeTask", method: http.MethodPost, path: "/tasks/7/close"},
		{tool: "reopenTask", method: http.MethodPost, path: "/tasks/7/reopen"},
		{tool: "deleteTask", method: http.MethodDelete, path: "/tasks/7"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			h := commontest.New(t, RegisterTasksTools, false)
			h.Server.Handle(tt.method, tt.path, http.StatusNoContent, "")

			result := h.Call(tt.tool, map[string]any{"taskId": "7"})

			require.False(t, result.IsError, commontest.Text(t, result))
			assert.Equal(t, "{\n  \"success\": true\n}", commontest.Text(t, result))
			req := h.Server.LastRequest()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
		})
	}
}
