package projects_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

type projectIDInput struct {
	ProjectID string `json:"projectId"`
}

type createProjectInput struct {
	Name       string  `json:"name"`
	ParentID   *string `json:"parentId"`
	Color      *string `json:"color"`
	IsFavorite *bool   `json:"isFavorite"`
	ViewStyle  *string `json:"viewStyle"`
}

func (in createProjectInput) args() todoist.AddProjectArgs {
	return todoist.AddProjectArgs{
		Name:       in.Name,
		ParentID:   common.String(in.ParentID),
		Color:      common.String(in.Color),
		IsFavorite: common.Value(in.IsFavorite),
		ViewStyle:  common.String(in.ViewStyle),
	}
}

type updateProjectInput struct {
	ProjectID  string  `json:"projectId"`
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	IsFavorite *bool   `json:"isFavorite"`
	ViewStyle  *string `json:"viewStyle"`
}

func (in updateProjectInput) args() todoist.UpdateProjectArgs {
	return todoist.UpdateProjectArgs{
		Name:       common.String(in.Name),
		Color:      common.String(in.Color),
		IsFavorite: common.Value(in.IsFavorite),
		ViewStyle:  common.String(in.ViewStyle),
	}
}

// RegisterProjectsTools registers all project tools. Mutating tools are skipped in read-only mode.
func RegisterProjectsTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(r, sc); err != nil {
		return fmt.Errorf("failed to register project read tools: %w", err)
	}
	if readOnly {
		return nil
	}
	if err := registerWriteTools(r, sc); err != nil {
		return fmt.Errorf("failed to register project write tools: %w", err)
	}
	return nil
}

func projectIDOption() mcp.ToolOption {
	return mcp.WithString("projectId",
		mcp.Required(),
		mcp.MinLength(1),
		mcp.Description("The ID of the project"),
	)
}

func registerReadTools(r *common.Registry, sc *server.ServerContext) error {
	listProjectsTool := mcp.NewTool("listProjects",
		mcp.WithDescription("List all projects of the user"),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	err := r.Add(instrumentation.EntityProject, instrumentation.OperationList, listProjectsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := sc.Todoist().GetProjects(ctx)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch projects", err), nil
		}
		return common.JSONResult("projects", projects), nil
	})
	if err != nil {
		return err
	}

	getProjectTool := mcp.NewTool("getProject",
		mcp.WithDescription("Get a single project by ID"),
		mcp.WithReadOnlyHintAnnotation(true),
		projectIDOption(),
	)

	err = r.Add(instrumentation.EntityProject, instrumentation.OperationGet, getProjectTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in projectIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		project, err := sc.Todoist().GetProject(ctx, in.ProjectID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch project", err), nil
		}
		return common.JSONResult("project", project), nil
	})
	if err != nil {
		return err
	}

	collaboratorsTool := mcp.NewTool("getProjectCollaborators",
		mcp.WithDescription("List the collaborators of a shared project"),
		mcp.WithReadOnlyHintAnnotation(true),
		projectIDOption(),
	)

	return r.Add(instrumentation.EntityCollaborator, instrumentation.OperationList, collaboratorsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in projectIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		collaborators, err := sc.Todoist().GetProjectCollaborators(ctx, in.ProjectID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch project collaborators", err), nil
		}
		return common.JSONResult("collaborators", collaborators), nil
	})
}

func registerWriteTools(r *common.Registry, sc *server.ServerContext) error {
	createProjectTool := mcp.NewTool("createProject",
		mcp.WithDescription("Create a new project"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Project name"),
		),
		mcp.WithString("parentId",
			mcp.Description("Parent project, makes this a sub-project"),
		),
		mcp.WithString("color",
			mcp.Description("Color name, e.g. 'berry_red'"),
		),
		mcp.WithBoolean("isFavorite",
			mcp.Description("Mark the project as favorite"),
		),
		mcp.WithString("viewStyle",
			mcp.Description("How the project is displayed"),
			mcp.Enum("list", "board"),
		),
	)

	err := r.Add(instrumentation.EntityProject, instrumentation.OperationCreate, createProjectTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in createProjectInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		project, err := sc.Todoist().AddProject(ctx, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to create project", err), nil
		}
		return common.JSONResult("project", project), nil
	})
	if err != nil {
		return err
	}

	updateProjectTool := mcp.NewTool("updateProject",
		mcp.WithDescription("Update a project. Only the supplied fields are changed."),
		projectIDOption(),
		mcp.WithString("name",
			mcp.Description("New project name"),
		),
		mcp.WithString("color",
			mcp.Description("Color name, e.g. 'berry_red'"),
		),
		mcp.WithBoolean("isFavorite",
			mcp.Description("Mark or unmark the project as favorite"),
		),
		mcp.WithString("viewStyle",
			mcp.Description("How the project is displayed"),
			mcp.Enum("list", "board"),
		),
	)

	err = r.Add(instrumentation.EntityProject, instrumentation.OperationUpdate, updateProjectTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in updateProjectInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		project, err := sc.Todoist().UpdateProject(ctx, in.ProjectID, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to update project", err), nil
		}
		return common.JSONResult("success", project), nil
	})
	if err != nil {
		return err
	}

	// Tools taking only a project ID and returning no body
	simple := []struct {
		name        string
		description string
		operation   string
		failure     string
		call        func(api todoist.API, ctx context.Context, id string) error
	}{
		{
			name:        "archiveProject",
			description: "Archive a project and its sub-projects",
			operation:   instrumentation.OperationArchive,
			failure:     "Failed to archive project",
			call:        todoist.API.ArchiveProject,
		},
		{
			name:        "unarchiveProject",
			description: "Restore an archived project",
			operation:   instrumentation.OperationUnarchive,
			failure:     "Failed to unarchive project",
			call:        todoist.API.UnarchiveProject,
		},
		{
			name:        "deleteProject",
			description: "Delete a project with all its sections and tasks",
			operation:   instrumentation.OperationDelete,
			failure:     "Failed to delete project",
			call:        todoist.API.DeleteProject,
		},
	}

	for _, p := range simple {
		tool := mcp.NewTool(p.name,
			mcp.WithDescription(p.description),
			projectIDOption(),
		)

		err := r.Add(instrumentation.EntityProject, p.operation, tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in projectIDInput
			if err := common.Bind(request, &in); err != nil {
				return common.InvalidArguments(err), nil
			}

			if err := p.call(sc.Todoist(), ctx, in.ProjectID); err != nil {
				return common.Failure(ctx, sc, p.failure, err), nil
			}
			return common.SuccessResult(), nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
