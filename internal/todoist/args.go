package todoist

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Optional is a request field that is only transmitted when it was set.
// Struct fields of this type must carry the omitzero JSON option.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Clear returns an Optional that is transmitted as null, removing the remote value.
func Clear[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsZero reports whether the field was never set.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// IsNull reports whether the field is an explicit clear.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Get returns the value and whether one was set. A cleared field reports false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// DueFields holds the mutually exclusive due forms of a task write.
type DueFields struct {
	DueString   Optional[string] `json:"due_string,omitzero"`
	DueDate     Optional[string] `json:"due_date,omitzero"`
	DueDatetime Optional[string] `json:"due_datetime,omitzero"`
	DueLang     Optional[string] `json:"due_lang,omitzero"`
}

// SetDue keeps at most one due form. A natural language string wins over a
// date, and a date wins over a datetime. Empty values are ignored.
func (d *DueFields) SetDue(dueString, dueDate, dueDatetime string) {
	d.DueString, d.DueDate, d.DueDatetime = Optional[string]{}, Optional[string]{}, Optional[string]{}
	switch {
	case dueString != "":
		d.DueString = Set(dueString)
	case dueDate != "":
		d.DueDate = Set(dueDate)
	case dueDatetime != "":
		d.DueDatetime = Set(dueDatetime)
	}
}

// AddTaskArgs is the body of a task creation
type AddTaskArgs struct {
	Content      string             `json:"content"`
	Description  Optional[string]   `json:"description,omitzero"`
	ProjectID    Optional[string]   `json:"project_id,omitzero"`
	SectionID    Optional[string]   `json:"section_id,omitzero"`
	ParentID     Optional[string]   `json:"parent_id,omitzero"`
	Order        Optional[int]      `json:"order,omitzero"`
	Labels       Optional[[]string] `json:"labels,omitzero"`
	Priority     Optional[int]      `json:"priority,omitzero"`
	AssigneeID   Optional[string]   `json:"assignee_id,omitzero"`
	Duration     Optional[int]      `json:"duration,omitzero"`
	DurationUnit Optional[string]   `json:"duration_unit,omitzero"`
	DueFields
}

// UpdateTaskArgs is the partial body of a task update
type UpdateTaskArgs struct {
	Content      Optional[string]   `json:"content,omitzero"`
	Description  Optional[string]   `json:"description,omitzero"`
	Labels       Optional[[]string] `json:"labels,omitzero"`
	Priority     Optional[int]      `json:"priority,omitzero"`
	AssigneeID   Optional[string]   `json:"assignee_id,omitzero"`
	Duration     Optional[int]      `json:"duration,omitzero"`
	DurationUnit Optional[string]   `json:"duration_unit,omitzero"`
	DueFields
}

// GetTasksArgs filters a task listing
type GetTasksArgs struct {
	ProjectID string
	SectionID string
	Label     string
	Filter    string
	IDs       []string
}

func (a GetTasksArgs) query() url.Values {
	q := url.Values{}
	setQuery(q, "project_id", a.ProjectID)
	setQuery(q, "section_id", a.SectionID)
	setQuery(q, "label", a.Label)
	setQuery(q, "filter", a.Filter)
	if len(a.IDs) > 0 {
		q.Set("ids", strings.Join(a.IDs, ","))
	}
	return q
}

// AddProjectArgs is the body of a project creation
type AddProjectArgs struct {
	Name       string           `json:"name"`
	ParentID   Optional[string] `json:"parent_id,omitzero"`
	Color      Optional[string] `json:"color,omitzero"`
	IsFavorite Optional[bool]   `json:"is_favorite,omitzero"`
	ViewStyle  Optional[string] `json:"view_style,omitzero"`
}

// UpdateProjectArgs is the partial body of a project update
type UpdateProjectArgs struct {
	Name       Optional[string] `json:"name,omitzero"`
	Color      Optional[string] `json:"color,omitzero"`
	IsFavorite Optional[bool]   `json:"is_favorite,omitzero"`
	ViewStyle  Optional[string] `json:"view_style,omitzero"`
}

// AddSectionArgs is the body of a section creation
type AddSectionArgs struct {
	Name      string        `json:"name"`
	ProjectID string        `json:"project_id"`
	Order     Optional[int] `json:"order,omitzero"`
}

// UpdateSectionArgs is the body of a section rename
type UpdateSectionArgs struct {
	Name string `json:"name"`
}

// GetCommentsArgs selects the parent whose comments are listed.
// TaskID takes precedence when both are set.
type GetCommentsArgs struct {
	TaskID    string
	ProjectID string
}

func (a GetCommentsArgs) query() url.Values {
	q := url.Values{}
	if a.TaskID != "" {
		q.Set("task_id", a.TaskID)
	} else {
		setQuery(q, "project_id", a.ProjectID)
	}
	return q
}

// AddCommentArgs is the body of a comment creation.
// Exactly one of TaskID and ProjectID is transmitted.
type AddCommentArgs struct {
	Content    string               `json:"content"`
	TaskID     Optional[string]     `json:"task_id,omitzero"`
	ProjectID  Optional[string]     `json:"project_id,omitzero"`
	Attachment Optional[Attachment] `json:"attachment,omitzero"`
}

// UpdateCommentArgs is the body of a comment edit
type UpdateCommentArgs struct {
	Content string `json:"content"`
}

// AddLabelArgs is the body of a label creation
type AddLabelArgs struct {
	Name       string           `json:"name"`
	Color      Optional[string] `json:"color,omitzero"`
	Order      Optional[int]    `json:"order,omitzero"`
	IsFavorite Optional[bool]   `json:"is_favorite,omitzero"`
}

// UpdateLabelArgs is the partial body of a label update
type UpdateLabelArgs struct {
	Name       Optional[string] `json:"name,omitzero"`
	Color      Optional[string] `json:"color,omitzero"`
	Order      Optional[int]    `json:"order,omitzero"`
	IsFavorite Optional[bool]   `json:"is_favorite,omitzero"`
}

func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
