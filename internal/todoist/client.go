package todoist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Client speaks the typed Todoist REST endpoints
type Client struct {
	conn *conn
}

func idPath(collection, id string) string {
	return "/" + collection + "/" + url.PathEscape(id)
}

// GetTasks lists active tasks matching the filter
func (c *Client) GetTasks(ctx context.Context, args GetTasksArgs) ([]Task, error) {
	var tasks []Task
	if err := c.conn.do(ctx, "failed to list tasks", http.MethodGet, "/tasks", args.query(), nil, &tasks); err != nil {
		return nil, err
	}
	return nonNil(tasks), nil
}

// GetTask retrieves a single active task
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.conn.do(ctx, "failed to get task", http.MethodGet, idPath("tasks", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// AddTask creates a task
func (c *Client) AddTask(ctx context.Context, args AddTaskArgs) (*Task, error) {
	var task Task
	if err := c.conn.do(ctx, "failed to create task", http.MethodPost, "/tasks", nil, args, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the updated task
func (c *Client) UpdateTask(ctx context.Context, id string, args UpdateTaskArgs) (*Task, error) {
	var task Task
	if err := c.conn.do(ctx, "failed to update task", http.MethodPost, idPath("tasks", id), nil, args, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CloseTask completes a task
func (c *Client) CloseTask(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to close task", http.MethodPost, idPath("tasks", id)+"/close", nil, nil, nil)
}

// ReopenTask reopens a completed task
func (c *Client) ReopenTask(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to reopen task", http.MethodPost, idPath("tasks", id)+"/reopen", nil, nil, nil)
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to delete task", http.MethodDelete, idPath("tasks", id), nil, nil, nil)
}

// GetProjects lists all projects
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.conn.do(ctx, "failed to list projects", http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return nonNil(projects), nil
}

// GetProject retrieves a project
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var project Project
	if err := c.conn.do(ctx, "failed to get project", http.MethodGet, idPath("projects", id), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// AddProject creates a project
func (c *Client) AddProject(ctx context.Context, args AddProjectArgs) (*Project, error) {
	var project Project
	if err := c.conn.do(ctx, "failed to create project", http.MethodPost, "/projects", nil, args, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update and returns the updated project
func (c *Client) UpdateProject(ctx context.Context, id string, args UpdateProjectArgs) (*Project, error) {
	var project Project
	if err := c.conn.do(ctx, "failed to update project", http.MethodPost, idPath("projects", id), nil, args, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project with its sections and tasks
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to delete project", http.MethodDelete, idPath("projects", id), nil, nil, nil)
}

// GetProjectCollaborators lists the users a project is shared with
func (c *Client) GetProjectCollaborators(ctx context.Context, id string) ([]Collaborator, error) {
	var collaborators []Collaborator
	if err := c.conn.do(ctx, "failed to list collaborators", http.MethodGet, idPath("projects", id)+"/collaborators", nil, nil, &collaborators); err != nil {
		return nil, err
	}
	return nonNil(collaborators), nil
}

// GetSections lists the sections of a project
func (c *Client) GetSections(ctx context.Context, projectID string) ([]Section, error) {
	q := url.Values{}
	setQuery(q, "project_id", projectID)

	var sections []Section
	if err := c.conn.do(ctx, "failed to list sections", http.MethodGet, "/sections", q, nil, &sections); err != nil {
		return nil, err
	}
	return nonNil(sections), nil
}

// GetSection retrieves a section
func (c *Client) GetSection(ctx context.Context, id string) (*Section, error) {
	var section Section
	if err := c.conn.do(ctx, "failed to get section", http.MethodGet, idPath("sections", id), nil, nil, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// AddSection creates a section
func (c *Client) AddSection(ctx context.Context, args AddSectionArgs) (*Section, error) {
	var section Section
	if err := c.conn.do(ctx, "failed to create section", http.MethodPost, "/sections", nil, args, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// UpdateSection renames a section and returns it
func (c *Client) UpdateSection(ctx context.Context, id string, args UpdateSectionArgs) (*Section, error) {
	var section Section
	if err := c.conn.do(ctx, "failed to update section", http.MethodPost, idPath("sections", id), nil, args, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection deletes a section with its tasks
func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to delete section", http.MethodDelete, idPath("sections", id), nil, nil, nil)
}

// GetComments lists the comments of a task or a project
func (c *Client) GetComments(ctx context.Context, args GetCommentsArgs) ([]Comment, error) {
	if args.TaskID == "" && args.ProjectID == "" {
		return nil, fmt.Errorf("failed to list comments: task or project id is required")
	}

	var comments []Comment
	if err := c.conn.do(ctx, "failed to list comments", http.MethodGet, "/comments", args.query(), nil, &comments); err != nil {
		return nil, err
	}
	return nonNil(comments), nil
}

// GetComment retrieves a comment
func (c *Client) GetComment(ctx context.Context, id string) (*Comment, error) {
	var comment Comment
	if err := c.conn.do(ctx, "failed to get comment", http.MethodGet, idPath("comments", id), nil, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// AddComment creates a comment on a task or project
func (c *Client) AddComment(ctx context.Context, args AddCommentArgs) (*Comment, error) {
	var comment Comment
	if err := c.conn.do(ctx, "failed to create comment", http.MethodPost, "/comments", nil, args, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment edits a comment and returns it
func (c *Client) UpdateComment(ctx context.Context, id string, args UpdateCommentArgs) (*Comment, error) {
	var comment Comment
	if err := c.conn.do(ctx, "failed to update comment", http.MethodPost, idPath("comments", id), nil, args, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment deletes a comment
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to delete comment", http.MethodDelete, idPath("comments", id), nil, nil, nil)
}

// GetLabels lists personal labels
func (c *Client) GetLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.conn.do(ctx, "failed to list labels", http.MethodGet, "/labels", nil, nil, &labels); err != nil {
		return nil, err
	}
	return nonNil(labels), nil
}

// GetLabel retrieves a personal label
func (c *Client) GetLabel(ctx context.Context, id string) (*Label, error) {
	var label Label
	if err := c.conn.do(ctx, "failed to get label", http.MethodGet, idPath("labels", id), nil, nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// AddLabel creates a personal label
func (c *Client) AddLabel(ctx context.Context, args AddLabelArgs) (*Label, error) {
	var label Label
	if err := c.conn.do(ctx, "failed to create label", http.MethodPost, "/labels", nil, args, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel applies a partial update and returns the updated label
func (c *Client) UpdateLabel(ctx context.Context, id string, args UpdateLabelArgs) (*Label, error) {
	var label Label
	if err := c.conn.do(ctx, "failed to update label", http.MethodPost, idPath("labels", id), nil, args, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel deletes a personal label
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.conn.do(ctx, "failed to delete label", http.MethodDelete, idPath("labels", id), nil, nil, nil)
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
