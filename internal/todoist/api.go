package todoist

import "context"

// TaskService manages tasks
type TaskService interface {
	GetTasks(ctx context.Context, args GetTasksArgs) ([]Task, error)
	GetTask(ctx context.Context, id string) (*Task, error)
	AddTask(ctx context.Context, args AddTaskArgs) (*Task, error)
	UpdateTask(ctx context.Context, id string, args UpdateTaskArgs) (*Task, error)
	CloseTask(ctx context.Context, id string) error
	ReopenTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

// ProjectService manages projects and their collaborators
type ProjectService interface {
	GetProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	AddProject(ctx context.Context, args AddProjectArgs) (*Project, error)
	UpdateProject(ctx context.Context, id string, args UpdateProjectArgs) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectCollaborators(ctx context.Context, id string) ([]Collaborator, error)
}

// ProjectArchiver archives and restores projects
type ProjectArchiver interface {
	ArchiveProject(ctx context.Context, id string) error
	UnarchiveProject(ctx context.Context, id string) error
}

// SectionService manages sections
type SectionService interface {
	GetSections(ctx context.Context, projectID string) ([]Section, error)
	GetSection(ctx context.Context, id string) (*Section, error)
	AddSection(ctx context.Context, args AddSectionArgs) (*Section, error)
	UpdateSection(ctx context.Context, id string, args UpdateSectionArgs) (*Section, error)
	DeleteSection(ctx context.Context, id string) error
}

// CommentService manages task and project comments
type CommentService interface {
	GetComments(ctx context.Context, args GetCommentsArgs) ([]Comment, error)
	GetComment(ctx context.Context, id string) (*Comment, error)
	AddComment(ctx context.Context, args AddCommentArgs) (*Comment, error)
	UpdateComment(ctx context.Context, id string, args UpdateCommentArgs) (*Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// LabelService manages personal labels
type LabelService interface {
	GetLabels(ctx context.Context) ([]Label, error)
	GetLabel(ctx context.Context, id string) (*Label, error)
	AddLabel(ctx context.Context, args AddLabelArgs) (*Label, error)
	UpdateLabel(ctx context.Context, id string, args UpdateLabelArgs) (*Label, error)
	DeleteLabel(ctx context.Context, id string) error
}

// SharedLabelService manages account wide shared label names
type SharedLabelService interface {
	GetSharedLabels(ctx context.Context, omitPersonal bool) ([]string, error)
	RenameSharedLabel(ctx context.Context, name, newName string) error
	RemoveSharedLabel(ctx context.Context, name string) error
}

// API is the full Todoist surface used by the MCP tools
type API interface {
	TaskService
	ProjectService
	ProjectArchiver
	SectionService
	CommentService
	LabelService
	SharedLabelService
}

// Todoist serves typed operations through Client and the remaining ones
// through RawClient, both over one connection.
type Todoist struct {
	*Client
	*RawClient
}

var _ API = (*Todoist)(nil)

// New creates the combined client
func New(opts Options) (*Todoist, error) {
	c, err := newConn(opts)
	if err != nil {
		return nil, err
	}
	return &Todoist{
		Client:    &Client{conn: c},
		RawClient: &RawClient{conn: c},
	}, nil
}
