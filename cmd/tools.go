package cmd

import (
	"fmt"

	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/tools/comments_tools"
	"github.com/teemow/todoist-mcp/internal/tools/common"
	"github.com/teemow/todoist-mcp/internal/tools/labels_tools"
	"github.com/teemow/todoist-mcp/internal/tools/projects_tools"
	"github.com/teemow/todoist-mcp/internal/tools/sections_tools"
	"github.com/teemow/todoist-mcp/internal/tools/tasks_tools"
)

// toolRegistration registers one group of tools
type toolRegistration struct {
	name     string
	register func(r *common.Registry, sc *server.ServerContext, readOnly bool) error
}

var toolRegistrations = []toolRegistration{
	{name: "Tasks", register: tasks_tools.RegisterTasksTools},
	{name: "Projects", register: projects_tools.RegisterProjectsTools},
	{name: "Sections", register: sections_tools.RegisterSectionsTools},
	{name: "Comments", register: comments_tools.RegisterCommentsTools},
	{name: "Labels", register: labels_tools.RegisterLabelsTools},
}

// registerAllTools registers every tool group on r
func registerAllTools(r *common.Registry, sc *server.ServerContext, readOnly bool) error {
	for _, reg := range toolRegistrations {
		if err := reg.register(r, sc, readOnly); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}
	return nil
}
