package sections_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

type sectionIDInput struct {
	SectionID string `json:"sectionId"`
}

// RegisterSectionsTools registers all section tools. Mutating tools are skipped in read-only mode.
func RegisterSectionsTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(r, sc); err != nil {
		return fmt.Errorf("failed to register section read tools: %w", err)
	}
	if readOnly {
		return nil
	}
	if err := registerWriteTools(r, sc); err != nil {
		return fmt.Errorf("failed to register section write tools: %w", err)
	}
	return nil
}

func sectionIDOption() mcp.ToolOption {
	return mcp.WithString("sectionId",
		mcp.Required(),
		mcp.MinLength(1),
		mcp.Description("The ID of the section"),
	)
}

func registerReadTools(r *common.Registry, sc *server.ServerContext) error {
	listSectionsTool := mcp.NewTool("listSections",
		mcp.WithDescription("List the sections of a project. Returns an empty list without projectId."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project"),
		),
	)

	err := r.Add(instrumentation.EntitySection, instrumentation.OperationList, listSectionsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			ProjectID string `json:"projectId"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if in.ProjectID == "" {
			common.MarkLocal(ctx)
			return common.JSONResult("sections", []todoist.Section{}), nil
		}

		sections, err := sc.Todoist().GetSections(ctx, in.ProjectID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch sections", err), nil
		}
		return common.JSONResult("sections", sections), nil
	})
	if err != nil {
		return err
	}

	getSectionTool := mcp.NewTool("getSection",
		mcp.WithDescription("Get a single section by ID"),
		mcp.WithReadOnlyHintAnnotation(true),
		sectionIDOption(),
	)

	return r.Add(instrumentation.EntitySection, instrumentation.OperationGet, getSectionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in sectionIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		section, err := sc.Todoist().GetSection(ctx, in.SectionID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch section", err), nil
		}
		return common.JSONResult("section", section), nil
	})
}

func registerWriteTools(r *common.Registry, sc *server.ServerContext) error {
	createSectionTool := mcp.NewTool("createSection",
		mcp.WithDescription("Create a section in a project"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Section name"),
		),
		mcp.WithString("projectId",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("The ID of the project"),
		),
		mcp.WithNumber("order",
			mcp.Description("Position among the sections of the project"),
		),
	)

	err := r.Add(instrumentation.EntitySection, instrumentation.OperationCreate, createSectionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			Name      string `json:"name"`
			ProjectID string `json:"projectId"`
			Order     *int   `json:"order"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		section, err := sc.Todoist().AddSection(ctx, todoist.AddSectionArgs{
			Name:      in.Name,
			ProjectID: in.ProjectID,
			Order:     common.Value(in.Order),
		})
		if err != nil {
			return common.Failure(ctx, sc, "Failed to create section", err), nil
		}
		return common.JSONResult("section", section), nil
	})
	if err != nil {
		return err
	}

	updateSectionTool := mcp.NewTool("updateSection",
		mcp.WithDescription("Rename a section"),
		sectionIDOption(),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("New section name"),
		),
	)

	err = r.Add(instrumentation.EntitySection, instrumentation.OperationUpdate, updateSectionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			SectionID string `json:"sectionId"`
			Name      string `json:"name"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		section, err := sc.Todoist().UpdateSection(ctx, in.SectionID, todoist.UpdateSectionArgs{Name: in.Name})
		if err != nil {
			return common.Failure(ctx, sc, "Failed to update section", err), nil
		}
		return common.JSONResult("success", section), nil
	})
	if err != nil {
		return err
	}

	deleteSectionTool := mcp.NewTool("deleteSection",
		mcp.WithDescription("Delete a section with all its tasks"),
		sectionIDOption(),
	)

	return r.Add(instrumentation.EntitySection, instrumentation.OperationDelete, deleteSectionTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in sectionIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if err := sc.Todoist().DeleteSection(ctx, in.SectionID); err != nil {
			return common.Failure(ctx, sc, "Failed to delete section", err), nil
		}
		return common.SuccessResult(), nil
	})
}
