package todoist

// Task represents a Todoist task
type Task struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	SectionID    *string   `json:"section_id"`
	ParentID     *string   `json:"parent_id"`
	Content      string    `json:"content"`
	Description  string    `json:"description"`
	IsCompleted  bool      `json:"is_completed"`
	Labels       []string  `json:"labels"`
	Order        int       `json:"order"`
	Priority     int       `json:"priority"`
	Due          *Due      `json:"due"`
	Duration     *Duration `json:"duration"`
	URL          string    `json:"url"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    string    `json:"created_at"`
	CreatorID    string    `json:"creator_id"`
	AssigneeID   *string   `json:"assignee_id"`
	AssignerID   *string   `json:"assigner_id"`
}

// Due is the due date of a task
type Due struct {
	String      string  `json:"string"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"is_recurring"`
	Datetime    *string `json:"datetime,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	Lang        string  `json:"lang,omitempty"`
}

// Duration is the estimated length of a task
type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"` // "minute" or "day"
}

// Project represents a Todoist project
type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ParentID       *string `json:"parent_id"`
	Order          int     `json:"order"`
	Color          string  `json:"color"`
	CommentCount   int     `json:"comment_count"`
	IsShared       bool    `json:"is_shared"`
	IsFavorite     bool    `json:"is_favorite"`
	IsInboxProject bool    `json:"is_inbox_project"`
	IsTeamInbox    bool    `json:"is_team_inbox"`
	IsArchived     bool    `json:"is_archived"`
	ViewStyle      string  `json:"view_style"` // "list" or "board"
	URL            string  `json:"url"`
}

// Collaborator is a user sharing a project
type Collaborator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Section represents a section within a project
type Section struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Order     int    `json:"order"`
	Name      string `json:"name"`
}

// Comment is a note attached to either a task or a project
type Comment struct {
	ID         string      `json:"id"`
	TaskID     *string     `json:"task_id"`
	ProjectID  *string     `json:"project_id"`
	PostedAt   string      `json:"posted_at"`
	Content    string      `json:"content"`
	Attachment *Attachment `json:"attachment"`
}

// Attachment is a file linked from a comment
type Attachment struct {
	FileName     string `json:"file_name,omitempty"`
	FileType     string `json:"file_type,omitempty"`
	FileURL      string `json:"file_url"`
	ResourceType string `json:"resource_type,omitempty"`
}

// Label represents a personal label
type Label struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Order      int    `json:"order"`
	IsFavorite bool   `json:"is_favorite"`
}
