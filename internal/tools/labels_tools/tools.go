package labels_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

type labelIDInput struct {
	LabelID string `json:"labelId"`
}

type createLabelInput struct {
	Name       string  `json:"name"`
	Color      *string `json:"color"`
	Order      *int    `json:"order"`
	IsFavorite *bool   `json:"isFavorite"`
}

func (in createLabelInput) args() todoist.AddLabelArgs {
	return todoist.AddLabelArgs{
		Name:       in.Name,
		Color:      common.String(in.Color),
		Order:      common.Value(in.Order),
		IsFavorite: common.Value(in.IsFavorite),
	}
}

type updateLabelInput struct {
	LabelID    string  `json:"labelId"`
	Name       *string `json:"name"`
	Color      *string `json:"color"`
	Order      *int    `json:"order"`
	IsFavorite *bool   `json:"isFavorite"`
}

func (in updateLabelInput) args() todoist.UpdateLabelArgs {
	return todoist.UpdateLabelArgs{
		Name:       common.String(in.Name),
		Color:      common.String(in.Color),
		Order:      common.Value(in.Order),
		IsFavorite: common.Value(in.IsFavorite),
	}
}

// RegisterLabelsTools registers the personal and shared label tools.
// Mutating tools are skipped in read-only mode.
func RegisterLabelsTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	if err := registerLabelTools(r, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}
	if err := registerSharedLabelTools(r, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register shared label tools: %w", err)
	}
	return nil
}

func labelIDOption() mcp.ToolOption {
	return mcp.WithString("labelId",
		mcp.Required(),
		mcp.MinLength(1),
		mcp.Description("The ID of the label"),
	)
}

func labelFieldOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("color",
			mcp.Description("Color name, e.g. 'charcoal'"),
		),
		mcp.WithNumber("order",
			mcp.Description("Position in the label list"),
		),
		mcp.WithBoolean("isFavorite",
			mcp.Description("Mark the label as favorite"),
		),
	}
}

func registerLabelTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	listLabelsTool := mcp.NewTool("listLabels",
		mcp.WithDescription("List all personal labels"),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	err := r.Add(instrumentation.EntityLabel, instrumentation.OperationList, listLabelsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		labels, err := sc.Todoist().GetLabels(ctx)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch labels", err), nil
		}
		return common.JSONResult("labels", labels), nil
	})
	if err != nil {
		return err
	}

	getLabelTool := mcp.NewTool("getLabel",
		mcp.WithDescription("Get a single personal label by ID"),
		mcp.WithReadOnlyHintAnnotation(true),
		labelIDOption(),
	)

	err = r.Add(instrumentation.EntityLabel, instrumentation.OperationGet, getLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in labelIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		label, err := sc.Todoist().GetLabel(ctx, in.LabelID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch label", err), nil
		}
		return common.JSONResult("label", label), nil
	})
	if err != nil {
		return err
	}

	if readOnly {
		return nil
	}

	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a personal label"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Label name"),
		),
	}
	createLabelTool := mcp.NewTool("createLabel", append(createOpts, labelFieldOptions()...)...)

	err = r.Add(instrumentation.EntityLabel, instrumentation.OperationCreate, createLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in createLabelInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		label, err := sc.Todoist().AddLabel(ctx, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to create label", err), nil
		}
		return common.JSONResult("label", label), nil
	})
	if err != nil {
		return err
	}

	updateOpts := []mcp.ToolOption{
		mcp.WithDescription("Update a personal label. Only the supplied fields are changed."),
		labelIDOption(),
		mcp.WithString("name",
			mcp.Description("New label name"),
		),
	}
	updateLabelTool := mcp.NewTool("updateLabel", append(updateOpts, labelFieldOptions()...)...)

	err = r.Add(instrumentation.EntityLabel, instrumentation.OperationUpdate, updateLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in updateLabelInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		label, err := sc.Todoist().UpdateLabel(ctx, in.LabelID, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to update label", err), nil
		}
		return common.JSONResult("success", label), nil
	})
	if err != nil {
		return err
	}

	deleteLabelTool := mcp.NewTool("deleteLabel",
		mcp.WithDescription("Delete a personal label and remove it from all tasks"),
		labelIDOption(),
	)

	return r.Add(instrumentation.EntityLabel, instrumentation.OperationDelete, deleteLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in labelIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if err := sc.Todoist().DeleteLabel(ctx, in.LabelID); err != nil {
			return common.Failure(ctx, sc, "Failed to delete label", err), nil
		}
		return common.SuccessResult(), nil
	})
}

func registerSharedLabelTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	getSharedLabelsTool := mcp.NewTool("getSharedLabels",
		mcp.WithDescription("List the names of shared labels"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithBoolean("omitPersonal",
			mcp.Description("Leave out names that are also personal labels"),
		),
	)

	err := r.Add(instrumentation.EntitySharedLabel, instrumentation.OperationList, getSharedLabelsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			OmitPersonal bool `json:"omitPersonal"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		labels, err := sc.Todoist().GetSharedLabels(ctx, in.OmitPersonal)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to get shared labels", err), nil
		}
		return common.JSONResult("labels", labels), nil
	})
	if err != nil {
		return err
	}

	if readOnly {
		return nil
	}

	renameSharedLabelTool := mcp.NewTool("renameSharedLabel",
		mcp.WithDescription("Rename a shared label on all tasks"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Current label name"),
		),
		mcp.WithString("newName",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("New label name"),
		),
	)

	err = r.Add(instrumentation.EntitySharedLabel, instrumentation.OperationRename, renameSharedLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			Name    string `json:"name"`
			NewName string `json:"newName"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if err := sc.Todoist().RenameSharedLabel(ctx, in.Name, in.NewName); err != nil {
			return common.Failure(ctx, sc, "Failed to rename shared label", err), nil
		}
		return common.SuccessResult(), nil
	})
	if err != nil {
		return err
	}

	removeSharedLabelTool := mcp.NewTool("removeSharedLabel",
		mcp.WithDescription("Remove a shared label from all tasks"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Label name"),
		),
	)

	return r.Add(instrumentation.EntitySharedLabel, instrumentation.OperationRemove, removeSharedLabelTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			Name string `json:"name"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if err := sc.Todoist().RemoveSharedLabel(ctx, in.Name); err != nil {
			return common.Failure(ctx, sc, "Failed to remove shared label", err), nil
		}
		return common.SuccessResult(), nil
	})
}
