package comments_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/todoist-mcp/internal/instrumentation"
	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
	"github.com/teemow/todoist-mcp/internal/tools/common"
)

const missingParentMessage = "Either taskId or projectId is required"

// parentInput selects the task or project a comment belongs to
type parentInput struct {
	TaskID    string `json:"taskId"`
	ProjectID string `json:"projectId"`
}

func (p parentInput) missing() bool {
	return p.TaskID == "" && p.ProjectID == ""
}

type attachmentInput struct {
	FileName     string `json:"fileName"`
	FileURL      string `json:"fileUrl"`
	FileType     string `json:"fileType"`
	ResourceType string `json:"resourceType"`
}

type createCommentInput struct {
	Content    string           `json:"content"`
	Attachment *attachmentInput `json:"attachment"`
	parentInput
}

func (in createCommentInput) args() todoist.AddCommentArgs {
	args := todoist.AddCommentArgs{Content: in.Content}
	if in.TaskID != "" {
		args.TaskID = todoist.Set(in.TaskID)
	} else {
		args.ProjectID = todoist.Set(in.ProjectID)
	}
	if in.Attachment != nil {
		args.Attachment = todoist.Set(todoist.Attachment{
			FileName:     in.Attachment.FileName,
			FileURL:      in.Attachment.FileURL,
			FileType:     in.Attachment.FileType,
			ResourceType: in.Attachment.ResourceType,
		})
	}
	return args
}

type commentIDInput struct {
	CommentID string `json:"commentId"`
}

// RegisterCommentsTools registers all comment tools. Mutating tools are skipped in read-only mode.
func RegisterCommentsTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(r, sc); err != nil {
		return fmt.Errorf("failed to register comment read tools: %w", err)
	}
	if readOnly {
		return nil
	}
	if err := registerWriteTools(r, sc); err != nil {
		return fmt.Errorf("failed to register comment write tools: %w", err)
	}
	return nil
}

func parentOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("taskId",
			mcp.Description("The ID of the task, takes precedence over projectId"),
		),
		mcp.WithString("projectId",
			mcp.Description("The ID of the project"),
		),
	}
}

func commentIDOption() mcp.ToolOption {
	return mcp.WithString("commentId",
		mcp.Required(),
		mcp.MinLength(1),
		mcp.Description("The ID of the comment"),
	)
}

// requiredProperties marks nested object properties as required.
func requiredProperties(names ...string) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["required"] = names
	}
}

func registerReadTools(r *common.Registry, sc *server.ServerContext) error {
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List the comments of a task or a project"),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	listCommentsTool := mcp.NewTool("listComments", append(listOpts, parentOptions()...)...)

	err := r.Add(instrumentation.EntityComment, instrumentation.OperationList, listCommentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in parentInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}
		if in.missing() {
			common.MarkLocal(ctx)
			return mcp.NewToolResultError(missingParentMessage), nil
		}

		comments, err := sc.Todoist().GetComments(ctx, todoist.GetCommentsArgs{
			TaskID:    in.TaskID,
			ProjectID: in.ProjectID,
		})
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch comments", err), nil
		}
		return common.JSONResult("comments", comments), nil
	})
	if err != nil {
		return err
	}

	getCommentTool := mcp.NewTool("getComment",
		mcp.WithDescription("Get a single comment by ID"),
		mcp.WithReadOnlyHintAnnotation(true),
		commentIDOption(),
	)

	return r.Add(instrumentation.EntityComment, instrumentation.OperationGet, getCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in commentIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		comment, err := sc.Todoist().GetComment(ctx, in.CommentID)
		if err != nil {
			return common.Failure(ctx, sc, "Failed to fetch comment", err), nil
		}
		return common.JSONResult("comment", comment), nil
	})
}

func registerWriteTools(r *common.Registry, sc *server.ServerContext) error {
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Add a comment to a task or a project"),
		mcp.WithString("content",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Comment text, markdown is supported"),
		),
		mcp.WithObject("attachment",
			mcp.Description("File linked from the comment"),
			mcp.Properties(map[string]any{
				"fileName":     map[string]any{"type": "string", "description": "Name of the file"},
				"fileUrl":      map[string]any{"type": "string", "description": "URL of the file"},
				"fileType":     map[string]any{"type": "string", "description": "MIME type of the file"},
				"resourceType": map[string]any{"type": "string", "description": "Kind of attachment, e.g. 'file'"},
			}),
			requiredProperties("fileUrl"),
		),
	}
	createCommentTool := mcp.NewTool("createComment", append(createOpts, parentOptions()...)...)

	err := r.Add(instrumentation.EntityComment, instrumentation.OperationCreate, createCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in createCommentInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}
		if in.missing() {
			common.MarkLocal(ctx)
			return mcp.NewToolResultError(missingParentMessage), nil
		}

		comment, err := sc.Todoist().AddComment(ctx, in.args())
		if err != nil {
			return common.Failure(ctx, sc, "Failed to create comment", err), nil
		}
		return common.JSONResult("comment", comment), nil
	})
	if err != nil {
		return err
	}

	updateCommentTool := mcp.NewTool("updateComment",
		mcp.WithDescription("Replace the text of a comment"),
		commentIDOption(),
		mcp.WithString("content",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("New comment text"),
		),
	)

	err = r.Add(instrumentation.EntityComment, instrumentation.OperationUpdate, updateCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in struct {
			CommentID string `json:"commentId"`
			Content   string `json:"content"`
		}
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		comment, err := sc.Todoist().UpdateComment(ctx, in.CommentID, todoist.UpdateCommentArgs{Content: in.Content})
		if err != nil {
			return common.Failure(ctx, sc, "Failed to update comment", err), nil
		}
		return common.JSONResult("success", comment), nil
	})
	if err != nil {
		return err
	}

	deleteCommentTool := mcp.NewTool("deleteComment",
		mcp.WithDescription("Delete a comment"),
		commentIDOption(),
	)

	return r.Add(instrumentation.EntityComment, instrumentation.OperationDelete, deleteCommentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in commentIDInput
		if err := common.Bind(request, &in); err != nil {
			return common.InvalidArguments(err), nil
		}

		if err := sc.Todoist().DeleteComment(ctx, in.CommentID); err != nil {
			return common.Failure(ctx, sc, "Failed to delete comment", err), nil
		}
		return common.SuccessResult(), nil
	})
}
