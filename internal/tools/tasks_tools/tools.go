package tasks_tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

var errDurationPair = errors.New("duration and durationUnit must be given together")

// taskFields are the writable fields shared by createTask and updateTask
type taskFields struct {
	Description  *string  `json:"description"`
	Labels       []string `json:"labels"`
	Priority     *int     `json:"priority"`
	DueString    *string  `json:"dueString"`
	DueDate      *string  `json:"dueDate"`
	DueDatetime  *string  `json:"dueDatetime"`
	DueLang      *string  `json:"dueLang"`
	AssigneeID   *string  `json:"assigneeId"`
	Duration     *int     `json:"duration"`
	DurationUnit *string  `json:"durationUnit"`
}

// due returns the due fields with the string > date > datetime precedence applied.
func (f taskFields) due() todoist.DueFields {
	var due todoist.DueFields
	due.SetDue(common.Deref(f.DueString), common.Deref(f.DueDate), common.Deref(f.DueDatetime))
	due.DueLang = common.String(f.DueLang)
	return due
}

func (f taskFields) checkDuration() error {
	if (f.Duration == nil) != (common.Deref(f.DurationUnit) == "") {
		return errDurationPair
	}
	return nil
}

type createTaskInput struct {
	Content   string  `json:"content"`
	ProjectID *string `json:"projectId"`
	SectionID *string `json:"sectionId"`
	ParentID  *string `json:"parentId"`
	Order     *int    `json:"order"`
	taskFields
}

func (in createTaskInput) args() todoist.AddTaskArgs {
	return todoist.AddTaskArgs{
		Content:      in.Content,
		Description:  common.String(in.Description),
		ProjectID:    common.String(in.ProjectID),
		SectionID:    common.String(in.SectionID),
		ParentID:     common.String(in.ParentID),
		Order:        common.Value(in.Order),
		Labels:       common.Slice(in.Labels),
		Priority:     common.Value(in.Priority),
		AssigneeID:   common.ClearableString(in.AssigneeID),
		Duration:     common.Value(in.Duration),
		DurationUnit: common.String(in.DurationUnit),
		DueFields:    in.due(),
	}
}

type updateTaskInput struct {
	TaskID  string  `json:"taskId"`
	Content *string `json:"content"`
	taskFields
}

func (in updateTaskInput) args() todoist.UpdateTaskArgs {
	return todoist.UpdateTaskArgs{
		Content:      common.String(in.Content),
		Description:  common.String(in.Description),
		Labels:       common.Slice(in.Labels),
		Priority:     common.Value(in.Priority),
		AssigneeID:   common.ClearableString(in.AssigneeID),
		Duration:     common.Value(in.Duration),
		DurationUnit: common.String(in.DurationUnit),
		DueFields:    in.due(),
	}
}

type listTasksInput struct {
	ProjectID string   `json:"projectId"`
	SectionID string   `json:"sectionId"`
	Label     string   `json:"label"`
	Filter    string   `json:"filter"`
	IDs       []string `json:"ids"`
}

type taskIDInput struct {
	TaskID string `json:"taskId"`
}

// RegisterTasksTools registers all task tools. Mutating tools are skipped in read-only mode.
func RegisterTasksTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(r, sc); err != nil {
		return fmt.Errorf("failed to register task read tools: %w", err)
	}
	if readOnly {
		return nil
	}
	if err := registerWriteTools(r, sc); err != nil {
		return fmt.Errorf("failed to register task write tools: %w", err)
	}
	return nil
}

func taskWriteOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("description",
			mcp.Description("Task description, markdown is supported"),
		),
		mcp.WithArray("labels",
			mcp.Description("Label names to apply to the task"),
			mcp.WithStringItems(),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority from 1 (normal) to 4 (urgent)"),
			mcp.Min(1),
			mcp.Max(4),
		),
		mcp.WithString("dueString",
			mcp.Description("Natural language due date such as 'tomorrow at 5pm' or 'every monday'"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Due date as YYYY-MM-DD, ignored when dueString is given"),
		),
		mcp.WithString("dueDatetime",
			mcp.Description("Due date and time in RFC3339, ignored when dueString or dueDate is given"),
		),
		mcp.WithString("dueLang",
			mcp.Description("Two letter language code of dueString"),
		),
		mcp.WithString("assigneeId",
			mcp.Description("ID of the collaborator to assign, an empty string unassigns the task"),
		),
		mcp.WithNumber("duration",
			mcp.Description("Estimated duration amount, requires durationUnit"),
			mcp.Min(1),
		),
		mcp.WithString("durationUnit",
			mcp.Description("Unit of duration, requires duration"),
			mcp.Enum("minute", "day"),
		),
	}
}

func registerReadTools(r *common.Registry, sc *server.ServerContext) error {
	listTasksTool := mcp.NewTool("listTasks",
		mcp.WithDescription("List active tasks. Without arguments all active tasks are returned."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("projectId",
			mcp.Description("Only tasks of this project"),
		),
		mcp.WithString("sectionId",
			mcp.Description("Only tasks of this section"),
		),
		mcp.WithString("label",
			mcp.Description("Only tasks with this label name"),
		),
		mcp.WithString("filter",
			mcp.Description("Todoist filter query, e.g. 'today | overdue'"),
		),
		mcp.WithArray("ids",
			mcp.Description("Only tasks with these IDs"),
			mcp.WithStringItems(),
		),
	)

	err := r.Add(instrumentation.EntityTask, instrumentation.OperationList, listTasksTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in listTasksInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		tasks, err := sc.Todoist().GetTasks(ctx, todoist.GetTasksArgs{
			ProjectID: in.ProjectID,
			SectionID: in.SectionID,
			Label:     in.Label,
			Filter:    in.Filter,
			IDs:       in.IDs,
		})
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch tasks", err), nil
		}
		return common.JSONResult("tasks", tasks), nil
	})
	if err != nil {
		return err
	}

	getTaskTool := mcp.NewTool("getTask",
		mcp.WithDescription("Get a single task by ID"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("The ID of the task"),
		),
	)

	return r.Add(instrumentation.EntityTask, instrumentation.OperationGet, getTaskTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in taskIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		task, err := sc.Todoist().GetTask(ctx, in.TaskID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch task", err), nil
		}
		return common.JSONResult("task", task), nil
	})
}

func registerWriteTools(r *common.Registry, sc *server.ServerContext) error {
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new task. Without projectId the task goes to the Inbox."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Task title"),
		),
		mcp.WithString("projectId",
			mcp.Description("Project to create the task in"),
		),
		mcp.WithString("sectionId",
			mcp.Description("Section to create the task in"),
		),
		mcp.WithString("parentId",
			mcp.Description("Parent task, makes this a subtask"),
		),
		mcp.WithNumber("order",
			mcp.Description("Position among the sibling tasks"),
		),
	}
	createTaskTool := mcp.NewTool("createTask", append(createOpts, taskWriteOptions()...)...)

	err := r.Add(instrumentation.EntityTask, instrumentation.OperationCreate, createTaskTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in createTaskInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}
		if err := in.checkDuration(); err != nil {
			common.MarkLocal(ctx)
			return common.InvalidArguments(err), nil
		}

		task, err := sc.Todoist().AddTask(ctx, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to create task", err), nil
		}
		return common.JSONResult("task", task), nil
	})
	if err != nil {
		return err
	}

	updateOpts := []mcp.ToolOption{
		mcp.WithDescription("Update a task. Only the supplied fields are changed."),
		mcp.WithString("taskId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("The ID of the task"),
		),
		mcp.WithString("content",
			mcp.Description("New task title"),
		),
	}
	updateTaskTool := mcp.NewTool("updateTask", append(updateOpts, taskWriteOptions()...)...)

	err = r.Add(instrumentation.EntityTask, instrumentation.OperationUpdate, updateTaskTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in updateTaskInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}
		if err := in.checkDuration(); err != nil {
			common.MarkLocal(ctx)
			return common.InvalidArguments(err), nil
		}

		task, err := sc.Todoist().UpdateTask(ctx, in.TaskID, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to update task", err), nil
		}
		return common.JSONResult("success", task), nil
	})
	if err != nil {
		return err
	}

	// Tools taking only a task ID and returning no body
	simple := []struct {
		name        string
		description string
		operation   string
		failure     string
		call        func(api todoist.TaskService, ctx context.Context, id string) error
	}{
		{
			name:        "completeTask",
			description: "Mark a task as completed",
			operation:   instrumentation.OperationClose,
			failure:     "Failed to complete task",
			call:        todoist.TaskService.CloseTask,
		},
		{
			name:        "reopenTask",
			description: "Reopen a completed task",
			operation:   instrumentation.OperationReopen,
			failure:     "Failed to reopen task",
			call:        todoist.TaskService.ReopenTask,
		},
		{
			name:        "deleteTask",
			description: "Delete a task permanently",
			operation:   instrumentation.OperationDelete,
			failure:     "Failed to delete task",
			call:        todoist.TaskService.DeleteTask,
		},
	}

	for _, tt := range simple {
		tool := mcp.NewTool(tt.name,
			mcp.WithDescription(tt.description),
			mcp.WithString("taskId",
				mcp.Required(),
				mcp.MinLength(1),
				mcp.Description("The ID of the task"),
			),
		)

		err := r.Add(instrumentation.EntityTask, tt.operation, tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in taskIDInput
			if err := common.Bind(request, &in); err != nil {
				return common.InvalidArguments(err), nil
			}

			if err := tt.call(sc.Todoist(), ctx, in.TaskID); err != nil {
				return common.Failure(ctx, sc, tt.failure, err), nil
			}
			return common.SuccessResult(), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
