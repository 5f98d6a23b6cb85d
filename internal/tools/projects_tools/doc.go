// Package projects_tools provides MCP tools for managing Todoist projects.
//
// # Available Tools
//
// Reading:
//   - listProjects: List all projects
//   - getProject: Get a single project
//   - getProjectCollaborators: List the users a project is shared with
//
// Writing (not registered in read-only mode):
//   - createProject: Create a project
//   - updateProject: Update the supplied fields of a project
//   - archiveProject: Archive a project
//   - unarchiveProject: Restore an archived project
//   - deleteProject: Delete a project with its sections and tasks
package projects_tools
